package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	ErrInvalidSpan   = errors.New("event must end after it starts")
	ErrEventNotFound = errors.New("event not found")
)

// Span is an event's time interval. Start is always strictly before End.
type Span struct {
	Start time.Time
	End   time.Time
}

func NewSpan(start, end time.Time) (Span, error) {
	if !start.Before(end) {
		return Span{}, ErrInvalidSpan
	}
	return Span{Start: start, End: end}, nil
}

func (s Span) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

func (s Span) Equal(o Span) bool {
	return s.Start.Equal(o.Start) && s.End.Equal(o.End)
}

// Resource is a bookable column, one per barber.
type Resource struct {
	ID    int64
	Name  string
	Color string
}

// UnassignUnknown clears the resource of every event whose column is not in
// resources and returns the ids of the events it cleared.
func UnassignUnknown(events []Event, resources []Resource) []int64 {
	known := make(map[int64]struct{}, len(resources))
	for _, r := range resources {
		known[r.ID] = struct{}{}
	}

	var cleared []int64
	for i := range events {
		id := events[i].ResourceID
		if id == nil {
			continue
		}
		if _, ok := known[*id]; !ok {
			events[i].ResourceID = nil
			cleared = append(cleared, events[i].ID)
		}
	}
	return cleared
}

type Customer struct {
	Name  string
	Phone string
	Email string
}

type ServiceInfo struct {
	ID          int64
	Name        string
	Price       float64
	DurationMin int
}

type Event struct {
	ID               int64
	Span             Span
	ResourceID       *int64
	Status           Status
	Title            string
	Customer         Customer
	Service          ServiceInfo
	BarberName       string
	Notes            string
	ConfirmationCode string
}

// Tooltip is the hover text of an event block.
func (e Event) Tooltip() string {
	return e.Customer.Name + "\n" + e.BarberName + "\n" + e.Status.Label()
}

type DetailRow struct {
	Label string
	Value string
}

// Details lists the rows of the event details dialog. Rows with an empty
// optional value are left out.
func (e Event) Details(loc *time.Location) []DetailRow {
	start := e.Span.Start.In(loc)
	end := e.Span.End.In(loc)

	phone := e.Customer.Phone
	if phone == "" {
		phone = "N/A"
	}

	rows := []DetailRow{
		{Label: "Booking ID", Value: "#" + strconv.FormatInt(e.ID, 10)},
		{Label: "Client", Value: e.Customer.Name},
		{Label: "Phone", Value: phone},
	}
	if e.Customer.Email != "" {
		rows = append(rows, DetailRow{Label: "Email", Value: e.Customer.Email})
	}
	rows = append(rows,
		DetailRow{Label: "Service", Value: e.Service.Name},
		DetailRow{Label: "Price", Value: strconv.FormatFloat(e.Service.Price, 'f', -1, 64) + "₾"},
		DetailRow{Label: "Duration", Value: fmt.Sprintf("%d min", e.Service.DurationMin)},
		DetailRow{Label: "Barber", Value: e.BarberName},
		DetailRow{Label: "Date", Value: start.Format("Monday, 2 January 2006")},
		DetailRow{Label: "Time", Value: start.Format("15:04") + " - " + end.Format("15:04")},
	)
	if e.Notes != "" {
		rows = append(rows, DetailRow{Label: "Notes", Value: e.Notes})
	}
	rows = append(rows, DetailRow{Label: "Status", Value: e.Status.Label()})
	if e.ConfirmationCode != "" {
		rows = append(rows, DetailRow{Label: "Confirmation code", Value: e.ConfirmationCode})
	}
	return rows
}
