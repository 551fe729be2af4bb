package commands

import (
	"context"

	"barberflow/internal/domain/calendar"
	"barberflow/internal/domain/wizard"
	"barberflow/internal/usecase/shared"
)

// CatalogReader lists what can be booked. The cache layer implements it in
// front of the booking API.
type CatalogReader interface {
	Services(ctx context.Context) ([]wizard.Service, error)
	Barbers(ctx context.Context) ([]wizard.Barber, error)
	Invalidate(ctx context.Context) error
}

// WizardGateway is the part of the booking API the customer wizard talks to.
type WizardGateway interface {
	AvailableSlots(ctx context.Context, key wizard.SlotKey) (wizard.SlotResult, error)
	CreateBooking(ctx context.Context, sub wizard.Submission) (shared.BookingReceipt, error)
	LookupClient(ctx context.Context, phone string) (shared.ClientProfile, error)
}

// CalendarGateway is the admin side of the booking API.
type CalendarGateway interface {
	ListEvents(ctx context.Context, key calendar.RangeKey) ([]calendar.Event, error)
	UpdateDatetime(ctx context.Context, id int64, span calendar.Span) error
	UpdateStatus(ctx context.Context, id int64, status calendar.Status) error
	DeleteBooking(ctx context.Context, id int64) error
	AdminCreateBooking(ctx context.Context, b shared.AdminBooking) (int64, error)
	EditBooking(ctx context.Context, id int64, b shared.AdminBooking) error
}
