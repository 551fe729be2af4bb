package bookingapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"barberflow/internal/domain/wizard"
	"barberflow/internal/infra"
	"barberflow/internal/pkg/ptr"
	"barberflow/internal/usecase/shared"
)

func (c *Client) ListServices(ctx context.Context) ([]wizard.Service, error) {
	var resp struct {
		Services []serviceWire `json:"services"`
	}
	err := c.do(ctx, request{endpoint: "list_services", method: http.MethodGet, path: "/services"}, &resp)
	if err != nil {
		return nil, err
	}

	out := make([]wizard.Service, 0, len(resp.Services))
	for _, s := range resp.Services {
		out = append(out, wizard.Service{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
			DurationMin: s.Duration,
		})
	}
	return out, nil
}

func (c *Client) ListBarbers(ctx context.Context) ([]wizard.Barber, error) {
	var resp struct {
		Barbers []barberWire `json:"barbers"`
	}
	err := c.do(ctx, request{endpoint: "list_barbers", method: http.MethodGet, path: "/barbers"}, &resp)
	if err != nil {
		return nil, err
	}

	out := make([]wizard.Barber, 0, len(resp.Barbers))
	for _, b := range resp.Barbers {
		out = append(out, wizard.Barber{ID: b.ID, Name: b.Name, Specialization: b.Specialization})
	}
	return out, nil
}

// AvailableSlots fetches the open times for key. A day off comes back as a
// result with Working=false rather than an error.
func (c *Client) AvailableSlots(ctx context.Context, key wizard.SlotKey) (wizard.SlotResult, error) {
	var resp slotsWire
	err := c.do(ctx, request{
		endpoint: "available_slots",
		method:   http.MethodGet,
		path:     "/available-slots/" + strconv.FormatInt(key.BarberID, 10) + "/" + url.PathEscape(key.Date),
		query:    url.Values{"service_id": {strconv.FormatInt(key.ServiceID, 10)}},
	}, &resp)
	if err != nil {
		return wizard.SlotResult{}, err
	}

	working := resp.IsWorking == nil || *resp.IsWorking
	return wizard.SlotResult{
		Working: working,
		Buckets: wizard.SlotBuckets{
			Morning:   nonNil(resp.Slots.Morning),
			Afternoon: nonNil(resp.Slots.Afternoon),
			Evening:   nonNil(resp.Slots.Evening),
		},
		Message: resp.Message,
	}, nil
}

func (c *Client) CreateBooking(ctx context.Context, sub wizard.Submission) (shared.BookingReceipt, error) {
	var resp createdWire
	err := c.do(ctx, request{
		endpoint: "create_booking",
		method:   http.MethodPost,
		path:     "/bookings/create",
		body: createBookingWire{
			ServiceID:     sub.ServiceID,
			BarberID:      sub.BarberID,
			Date:          sub.Date,
			Time:          sub.Time,
			CustomerName:  sub.CustomerName,
			CustomerPhone: sub.CustomerPhone,
			CustomerEmail: ptr.NonEmpty(sub.CustomerEmail),
			Notes:         ptr.NonEmpty(sub.Notes),
		},
		ack: true,
	}, &resp)
	if err != nil {
		return shared.BookingReceipt{}, err
	}
	if resp.BookingID == 0 {
		return shared.BookingReceipt{}, infra.WrapUpstreamErr(c.logger, infra.KindMalformed, http.StatusOK, "create_booking response without booking_id", nil)
	}

	return shared.BookingReceipt{
		BookingID:        resp.BookingID,
		ConfirmationCode: resp.ConfirmationCode,
		Message:          resp.Message,
	}, nil
}

func (c *Client) LookupClient(ctx context.Context, phone string) (shared.ClientProfile, error) {
	var resp lookupWire
	err := c.do(ctx, request{
		endpoint: "lookup_client",
		method:   http.MethodPost,
		path:     "/clients/lookup",
		body:     map[string]string{"phone": phone},
	}, &resp)
	if err != nil {
		return shared.ClientProfile{}, err
	}

	return shared.ClientProfile{
		Found:     resp.Found,
		Name:      resp.Name,
		Email:     resp.Email,
		Blocked:   resp.IsBlocked,
		LastVisit: resp.LastVisit,
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
