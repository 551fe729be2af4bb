package response

import (
	"time"

	"barberflow/internal/domain/calendar"
	"barberflow/internal/usecase/commands"
)

type CalendarOpenResponse struct {
	SessionID string `json:"session_id"`
}

type SpanResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// EditResponse reports where an optimistic edit ended up. On a revert Span
// is what the calendar shows again.
type EditResponse struct {
	EventID  int64        `json:"event_id"`
	Kind     string       `json:"kind"`
	State    string       `json:"state"`
	Restored bool         `json:"restored"`
	Span     SpanResponse `json:"span"`
}

type DateClickResponse struct {
	Action string `json:"action"`
	View   string `json:"view"`
	Date   string `json:"date"`
	Time   string `json:"time,omitempty"`
}

type BookingCreatedResponse struct {
	BookingID int64 `json:"booking_id"`
}

func FromEditResult(r *commands.EditResult, loc *time.Location) *EditResponse {
	span := r.Edit.Proposed
	if r.Edit.State == calendar.EditReverted {
		span = r.Edit.Prior
	}
	return &EditResponse{
		EventID:  r.Edit.EventID,
		Kind:     string(r.Edit.Kind),
		State:    string(r.Edit.State),
		Restored: r.Restored,
		Span:     SpanResponse{Start: span.Start.In(loc), End: span.End.In(loc)},
	}
}

func FromDateClick(a calendar.DateClickAction) *DateClickResponse {
	return &DateClickResponse{
		Action: string(a.Kind),
		View:   string(a.View),
		Date:   a.Date,
		Time:   a.Time,
	}
}
