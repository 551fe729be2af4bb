//go:build unit || e2e

package builder

import (
	"time"

	"barberflow/internal/domain/calendar"
)

type EventBuilder struct {
	event calendar.Event
}

func NewEventBuilder() *EventBuilder {
	barberID := int64(3)
	start := time.Date(2025, time.November, 29, 10, 0, 0, 0, time.UTC)
	return &EventBuilder{
		event: calendar.Event{
			ID:         1,
			Span:       calendar.Span{Start: start, End: start.Add(30 * time.Minute)},
			ResourceID: &barberID,
			Status:     calendar.StatusPending,
			Title:      "Giorgi Giorgadze - Classic haircut",
			Customer: calendar.Customer{
				Name:  "Giorgi Giorgadze",
				Phone: "599123456",
				Email: "giorgi@example.com",
			},
			Service: calendar.ServiceInfo{
				ID:          1,
				Name:        "Classic haircut",
				Price:       30,
				DurationMin: 30,
			},
			BarberName:       "Davit Temuriani",
			ConfirmationCode: "MAD-ABC123",
		},
	}
}

func (b *EventBuilder) WithID(id int64) *EventBuilder {
	b.event.ID = id
	return b
}

func (b *EventBuilder) WithSpan(start, end time.Time) *EventBuilder {
	b.event.Span = calendar.Span{Start: start, End: end}
	return b
}

// WithResource places the event on a barber column; nil leaves it unassigned.
func (b *EventBuilder) WithResource(id *int64) *EventBuilder {
	b.event.ResourceID = id
	return b
}

func (b *EventBuilder) WithStatus(s calendar.Status) *EventBuilder {
	b.event.Status = s
	return b
}

func (b *EventBuilder) Build() calendar.Event {
	return b.event
}

// NewRangeKey returns the week of 24-30 November 2025 with the given filter.
func NewRangeKey(filter *int64) calendar.RangeKey {
	start := time.Date(2025, time.November, 24, 0, 0, 0, 0, time.UTC)
	return calendar.RangeKey{
		Range:          calendar.Range{Start: start, End: start.AddDate(0, 0, 7)},
		ResourceFilter: filter,
	}
}
