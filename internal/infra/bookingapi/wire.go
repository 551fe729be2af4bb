package bookingapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"barberflow/internal/domain/calendar"
	"barberflow/internal/pkg/patch"
)

// envelope is the {success, message|error, errors} wrapper most endpoints use.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Errors  json.RawMessage `json:"errors"`
}

func decodeEnvelope(raw []byte) (envelope, bool) {
	var env envelope
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return env, false
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return env, false
	}
	return env, true
}

func (e envelope) text(fallback string) string {
	return patch.FirstNonZero(strings.TrimSpace(e.Error), strings.TrimSpace(e.Message), fallback)
}

// fields accepts {"field": "msg"} and {"field": ["msg", ...]} forms.
func (e envelope) fields() map[string]string {
	if len(e.Errors) == 0 {
		return nil
	}
	var byField map[string]json.RawMessage
	if err := json.Unmarshal(e.Errors, &byField); err != nil {
		return nil
	}

	out := make(map[string]string, len(byField))
	for field, raw := range byField {
		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			out[field] = single
			continue
		}
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
			out[field] = list[0]
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

type serviceWire struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
}

type barberWire struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

type slotsWire struct {
	IsWorking *bool  `json:"is_working"`
	Message   string `json:"message"`
	Slots     struct {
		Morning   []string `json:"morning"`
		Afternoon []string `json:"afternoon"`
		Evening   []string `json:"evening"`
	} `json:"slots"`
}

type createBookingWire struct {
	ServiceID     int64   `json:"service_id"`
	BarberID      int64   `json:"barber_id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type createdWire struct {
	BookingID        int64  `json:"booking_id"`
	ConfirmationCode string `json:"confirmation_code"`
	Message          string `json:"message"`
}

type adminBookingWire struct {
	ServiceID   int64   `json:"service_id"`
	BarberID    int64   `json:"barber_id"`
	BookingDate string  `json:"booking_date"`
	BookingTime string  `json:"booking_time"`
	ClientName  string  `json:"client_name"`
	ClientPhone string  `json:"client_phone"`
	ClientEmail *string `json:"client_email,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Status      string  `json:"status"`
}

type lookupWire struct {
	Found     bool   `json:"found"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsBlocked bool   `json:"is_blocked"`
	LastVisit string `json:"last_visit"`
}

type datetimeWire struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type statusWire struct {
	Status string `json:"status"`
}

// eventWire is one calendar event as the API sends it. The barber id shows
// up as barberId, barber_id or resourceId depending on the API version.
type eventWire struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Start            string  `json:"start"`
	End              string  `json:"end"`
	BarberID         *int64  `json:"barberId"`
	BarberIDSnake    *int64  `json:"barber_id"`
	ResourceID       *int64  `json:"resourceId"`
	BarberName       string  `json:"barberName"`
	ServiceID        int64   `json:"serviceId"`
	ServiceName      string  `json:"serviceName"`
	ServicePrice     float64 `json:"servicePrice"`
	ServiceDuration  int     `json:"serviceDuration"`
	CustomerName     string  `json:"customerName"`
	CustomerPhone    *string `json:"customerPhone"`
	CustomerEmail    *string `json:"customerEmail"`
	Notes            *string `json:"notes"`
	Status           string  `json:"status"`
	ConfirmationCode *string `json:"confirmationCode"`
}

type eventsEnvelope struct {
	Events []eventWire `json:"events"`
}

// decodeEvents accepts both a bare JSON list and {"success":true,"events":[...]}.
func decodeEvents(raw []byte) ([]eventWire, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var list []eventWire
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var env eventsEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	return env.Events, nil
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// parseTimestamp reads RFC 3339 values as-is and interprets timestamps
// without an offset in loc.
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func (w eventWire) toDomain(loc *time.Location) (calendar.Event, error) {
	start, err := parseTimestamp(w.Start, loc)
	if err != nil {
		return calendar.Event{}, err
	}
	end, err := parseTimestamp(w.End, loc)
	if err != nil {
		return calendar.Event{}, err
	}
	span, err := calendar.NewSpan(start, end)
	if err != nil {
		return calendar.Event{}, err
	}

	status, err := calendar.ParseStatus(w.Status)
	if err != nil {
		status = calendar.StatusPending
	}

	resourceID := w.BarberID
	if resourceID == nil {
		resourceID = w.BarberIDSnake
	}
	if resourceID == nil {
		resourceID = w.ResourceID
	}

	return calendar.Event{
		ID:         w.ID,
		Span:       span,
		ResourceID: resourceID,
		Status:     status,
		Title:      w.Title,
		Customer: calendar.Customer{
			Name:  w.CustomerName,
			Phone: deref(w.CustomerPhone),
			Email: deref(w.CustomerEmail),
		},
		Service: calendar.ServiceInfo{
			ID:          w.ServiceID,
			Name:        w.ServiceName,
			Price:       w.ServicePrice,
			DurationMin: w.ServiceDuration,
		},
		BarberName:       w.BarberName,
		Notes:            deref(w.Notes),
		ConfirmationCode: deref(w.ConfirmationCode),
	}, nil
}

func deref(s *string) string {
	return strings.TrimSpace(patch.Coalesce(s, ""))
}
