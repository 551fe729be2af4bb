package bookingapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"barberflow/internal/domain/calendar"
	"barberflow/internal/infra"
	"barberflow/internal/pkg/ptr"
	"barberflow/internal/usecase/shared"
)

// ListEvents fetches the bookings of key's range. Events the calendar cannot
// place (missing or inverted times) are dropped with a warning.
func (c *Client) ListEvents(ctx context.Context, key calendar.RangeKey) ([]calendar.Event, error) {
	query := url.Values{
		"start": {key.Range.Start.In(c.loc).Format(time.RFC3339)},
		"end":   {key.Range.End.In(c.loc).Format(time.RFC3339)},
	}
	if key.ResourceFilter != nil {
		query.Set("barber_id", strconv.FormatInt(*key.ResourceFilter, 10))
	}

	var raw json.RawMessage
	err := c.do(ctx, request{
		endpoint: "list_events",
		method:   http.MethodGet,
		path:     "/admin/all-bookings",
		query:    query,
	}, &raw)
	if err != nil {
		return nil, err
	}

	wires, err := decodeEvents(raw)
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindMalformed, http.StatusOK, "list_events decode events", err)
	}

	events := make([]calendar.Event, 0, len(wires))
	for _, w := range wires {
		ev, err := w.toDomain(c.loc)
		if err != nil {
			c.logger.Warn("Skipping unplaceable event",
				slog.Int64("event_id", w.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func (c *Client) UpdateDatetime(ctx context.Context, id int64, span calendar.Span) error {
	return c.do(ctx, request{
		endpoint: "update_datetime",
		method:   http.MethodPatch,
		path:     "/admin/bookings/" + strconv.FormatInt(id, 10) + "/update-datetime",
		body: datetimeWire{
			StartTime: span.Start.Format(time.RFC3339),
			EndTime:   span.End.Format(time.RFC3339),
		},
		ack: true,
	}, nil)
}

func (c *Client) UpdateStatus(ctx context.Context, id int64, status calendar.Status) error {
	return c.do(ctx, request{
		endpoint: "update_status",
		method:   http.MethodPost,
		path:     "/admin/bookings/" + strconv.FormatInt(id, 10) + "/update-status",
		body:     statusWire{Status: status.String()},
		ack:      true,
	}, nil)
}

func (c *Client) DeleteBooking(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		endpoint: "delete_booking",
		method:   http.MethodPost,
		path:     "/admin/bookings/delete/" + strconv.FormatInt(id, 10),
		ack:      true,
	}, nil)
}

func (c *Client) AdminCreateBooking(ctx context.Context, b shared.AdminBooking) (int64, error) {
	var resp createdWire
	err := c.do(ctx, request{
		endpoint: "admin_create_booking",
		method:   http.MethodPost,
		path:     "/admin/bookings/new",
		body:     toAdminBookingWire(b),
		ack:      true,
	}, &resp)
	if err != nil {
		return 0, err
	}
	if resp.BookingID == 0 {
		return 0, infra.WrapUpstreamErr(c.logger, infra.KindMalformed, http.StatusOK, "admin_create_booking response without booking_id", nil)
	}
	return resp.BookingID, nil
}

// EditBooking replaces every form field of booking id. The API recomputes the
// end time from the service duration.
func (c *Client) EditBooking(ctx context.Context, id int64, b shared.AdminBooking) error {
	return c.do(ctx, request{
		endpoint: "edit_booking",
		method:   http.MethodPost,
		path:     "/admin/bookings/edit/" + strconv.FormatInt(id, 10),
		body:     toAdminBookingWire(b),
		ack:      true,
	}, nil)
}

func toAdminBookingWire(b shared.AdminBooking) adminBookingWire {
	return adminBookingWire{
		ServiceID:   b.ServiceID,
		BarberID:    b.BarberID,
		BookingDate: b.Date,
		BookingTime: b.Time,
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		ClientEmail: ptr.NonEmpty(b.ClientEmail),
		Notes:       ptr.NonEmpty(b.Notes),
		Status:      b.Status.String(),
	}
}
