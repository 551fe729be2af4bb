package request

import (
	"strings"
	"time"

	"barberflow/internal/domain/calendar"
	"barberflow/internal/usecase/commands"
	"barberflow/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type OpenCalendarRequest struct {
	ViewportWidth int       `json:"viewport_width" binding:"required,min=1"`
	View          *string   `json:"view,omitempty"`
	Start         time.Time `json:"start" binding:"required"`
	End           time.Time `json:"end" binding:"required"`
	BarberID      *int64    `json:"barber_id,omitempty"`
}

type SetRangeRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
	View  string    `json:"view" binding:"required"`
}

// SetFilterRequest clears the filter when BarberID is omitted.
type SetFilterRequest struct {
	BarberID *int64 `json:"barber_id"`
}

type ViewportRequest struct {
	Width int `json:"width" binding:"required,min=1"`
}

type MoveEventRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

type ResizeEventRequest struct {
	End time.Time `json:"end" binding:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type DateClickRequest struct {
	At     time.Time `json:"at" binding:"required"`
	AllDay bool      `json:"all_day"`
}

// AdminBookingRequest is the booking form used by both quick-create and edit.
type AdminBookingRequest struct {
	ServiceID   int64  `json:"service_id" binding:"required,min=1"`
	BarberID    int64  `json:"barber_id" binding:"required,min=1"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`
	Notes       string `json:"notes"`
	Status      string `json:"status"`
}

func (r OpenCalendarRequest) ToCommand() (commands.OpenCalendarRequest, error) {
	rng, err := calendar.NewRange(r.Start, r.End)
	if err != nil {
		return commands.OpenCalendarRequest{}, err
	}

	req := commands.OpenCalendarRequest{
		Viewport: calendar.Viewport{Width: r.ViewportWidth},
		Range:    rng,
		Filter:   r.BarberID,
	}
	if r.View != nil {
		view, err := calendar.ParseViewType(*r.View)
		if err != nil {
			return commands.OpenCalendarRequest{}, err
		}
		req.View = &view
	}
	return req, nil
}

func (r SetRangeRequest) ToDomain() (calendar.Range, calendar.ViewType, error) {
	view, err := calendar.ParseViewType(r.View)
	if err != nil {
		return calendar.Range{}, "", err
	}
	rng, err := calendar.NewRange(r.Start, r.End)
	if err != nil {
		return calendar.Range{}, "", err
	}
	return rng, view, nil
}

func (r ChangeStatusRequest) ToDomain() (calendar.Status, error) {
	return calendar.ParseStatus(r.Status)
}

// ToDomain copies the form as typed. An empty status is left for the use case
// to default.
func (r AdminBookingRequest) ToDomain() (shared.AdminBooking, error) {
	var form shared.AdminBooking
	if err := copier.CopyWithOption(&form, &r, copier.Option{IgnoreEmpty: true}); err != nil {
		return shared.AdminBooking{}, err
	}
	form.Status = ""
	if s := strings.TrimSpace(r.Status); s != "" {
		status, err := calendar.ParseStatus(s)
		if err != nil {
			return shared.AdminBooking{}, err
		}
		form.Status = status
	}
	return form, nil
}
