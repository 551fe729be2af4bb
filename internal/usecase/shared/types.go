package shared

import (
	"barberflow/internal/domain/calendar"
)

// BookingReceipt is the booking API's answer to a successful create.
type BookingReceipt struct {
	BookingID        int64
	ConfirmationCode string
	Message          string
}

// AdminBooking is the quick-create form submitted from the calendar.
type AdminBooking struct {
	ServiceID   int64
	BarberID    int64
	Date        string
	Time        string
	ClientName  string
	ClientPhone string
	ClientEmail string
	Notes       string
	Status      calendar.Status
}

// ClientProfile is what the booking API knows about a phone number.
type ClientProfile struct {
	Found     bool
	Name      string
	Email     string
	Blocked   bool
	LastVisit string
}
