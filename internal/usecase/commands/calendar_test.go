//go:build unit

package commands_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"barberflow/internal/domain/calendar"
	"barberflow/internal/domain/staff"
	"barberflow/internal/domain/wizard"
	"barberflow/internal/infra"
	"barberflow/internal/infra/session"
	"barberflow/internal/pkg/clock"
	"barberflow/internal/pkg/errs"
	"barberflow/internal/pkg/ptr"
	"barberflow/internal/usecase/commands"
	"barberflow/internal/usecase/shared"
	"barberflow/tests/common/builder"
	commandsmock "barberflow/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	admin  = staff.Member{ID: 1, Role: staff.RoleAdmin}
	barber = staff.Member{ID: 3, Role: staff.RoleBarber}

	desktop = calendar.Viewport{Width: 1280}
	mobile  = calendar.Viewport{Width: 390}
)

type calendarFixture struct {
	uc       commands.CalendarCommands
	catalog  *commandsmock.MockCatalogReader
	gateway  *commandsmock.MockCalendarGateway
	sessions *session.Store[*shared.CalendarSession]
}

func newCalendarFixture(t *testing.T) *calendarFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	clk := clock.NewMockClock(time.Date(2025, time.November, 24, 9, 0, 0, 0, time.UTC))
	f := &calendarFixture{
		catalog:  commandsmock.NewMockCatalogReader(ctrl),
		gateway:  commandsmock.NewMockCalendarGateway(ctrl),
		sessions: session.NewStore[*shared.CalendarSession]("calendar", time.Hour, clk),
	}
	f.uc = commands.NewCalendarUseCase(f.catalog, f.gateway, f.sessions, 768, discardLogger(), nil)
	return f
}

func at(hour, minute int) time.Time {
	return time.Date(2025, time.November, 29, hour, minute, 0, 0, time.UTC)
}

// open starts a week-view session for member with events already loaded.
func (f *calendarFixture) open(t *testing.T, member staff.Member, events ...calendar.Event) string {
	t.Helper()
	f.catalog.EXPECT().Barbers(gomock.Any()).Return(builder.NewDraftBuilder().Catalog().Barbers, nil)
	f.gateway.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return(events, nil)

	view := calendar.ViewWeek
	id, err := f.uc.Open(context.Background(), member, commands.OpenCalendarRequest{
		Viewport: desktop,
		View:     &view,
		Range:    builder.NewRangeKey(nil).Range,
	})
	require.NoError(t, err)
	return id
}

func (f *calendarFixture) board(t *testing.T, id string) *calendar.Board {
	t.Helper()
	sess, ok := f.sessions.Get(id)
	require.True(t, ok)
	return sess.Board
}

func TestCalendar_Open(t *testing.T) {
	t.Run("barber sees only their own column", func(t *testing.T) {
		f := newCalendarFixture(t)
		var fetched calendar.RangeKey
		f.catalog.EXPECT().Barbers(gomock.Any()).Return([]wizard.Barber{{ID: 3, Name: "Davit"}, {ID: 4, Name: "Luka"}}, nil)
		f.gateway.EXPECT().ListEvents(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key calendar.RangeKey) ([]calendar.Event, error) {
				fetched = key
				return nil, nil
			})

		id, err := f.uc.Open(context.Background(), barber, commands.OpenCalendarRequest{
			Viewport: desktop,
			Range:    builder.NewRangeKey(nil).Range,
			Filter:   ptr.Of(int64(4)),
		})

		require.NoError(t, err)
		assert.Equal(t, ptr.Of(int64(3)), fetched.ResourceFilter)
		sess, _ := f.sessions.Get(id)
		require.Len(t, sess.Resources, 1)
		assert.Equal(t, int64(3), sess.Resources[0].ID)
		assert.Equal(t, calendar.ViewWeek, sess.View)
	})

	t.Run("failed first fetch still opens the session", func(t *testing.T) {
		f := newCalendarFixture(t)
		f.catalog.EXPECT().Barbers(gomock.Any()).Return(nil, nil)
		f.gateway.EXPECT().ListEvents(gomock.Any(), gomock.Any()).
			Return(nil, infra.UpstreamError{Kind: infra.KindUnavailable})

		id, err := f.uc.Open(context.Background(), admin, commands.OpenCalendarRequest{
			Viewport: mobile,
			Range:    builder.NewRangeKey(nil).Range,
		})

		require.NoError(t, err)
		b := f.board(t, id)
		assert.Equal(t, "Could not load bookings. Please try again.", b.LastError())
		assert.False(t, b.Loading())
		sess, _ := f.sessions.Get(id)
		assert.Equal(t, calendar.ViewDay, sess.View)
	})

	t.Run("catalog failure", func(t *testing.T) {
		f := newCalendarFixture(t)
		f.catalog.EXPECT().Barbers(gomock.Any()).Return(nil, infra.UpstreamError{Kind: infra.KindUnavailable})

		_, err := f.uc.Open(context.Background(), admin, commands.OpenCalendarRequest{Viewport: desktop})

		assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
	})
}

func TestCalendar_UnknownResource(t *testing.T) {
	f := newCalendarFixture(t)
	stray := builder.NewEventBuilder().WithID(8).WithResource(ptr.Of(int64(99))).Build()
	placed := builder.NewEventBuilder().WithID(9).WithResource(ptr.Of(int64(4))).Build()

	id := f.open(t, admin, stray, placed)

	b := f.board(t, id)
	ev, ok := b.Event(8)
	require.True(t, ok)
	assert.Nil(t, ev.ResourceID)
	ev, _ = b.Event(9)
	assert.Equal(t, ptr.Of(int64(4)), ev.ResourceID)
}

func TestCalendar_SetRange(t *testing.T) {
	t.Run("slower response for an older range is discarded", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin)
		ctx := context.Background()

		week := builder.NewRangeKey(nil).Range
		nextWeek := calendar.Range{Start: week.End, End: week.End.AddDate(0, 0, 7)}

		firstStarted := make(chan struct{})
		releaseFirst := make(chan struct{})
		gomock.InOrder(
			f.gateway.EXPECT().ListEvents(gomock.Any(), gomock.Any()).
				DoAndReturn(func(context.Context, calendar.RangeKey) ([]calendar.Event, error) {
					close(firstStarted)
					<-releaseFirst
					return []calendar.Event{builder.NewEventBuilder().WithID(1).Build()}, nil
				}),
			f.gateway.EXPECT().ListEvents(gomock.Any(), gomock.Any()).
				Return([]calendar.Event{builder.NewEventBuilder().WithID(2).Build()}, nil),
		)

		done := make(chan error, 1)
		go func() { done <- f.uc.SetRange(ctx, id, admin, week, calendar.ViewWeek) }()
		<-firstStarted

		require.NoError(t, f.uc.SetRange(ctx, id, admin, nextWeek, calendar.ViewWeek))
		close(releaseFirst)
		require.NoError(t, <-done)

		events := f.board(t, id).Events()
		require.Len(t, events, 1)
		assert.Equal(t, int64(2), events[0].ID)
		key, _ := f.board(t, id).Key()
		assert.True(t, key.Range.Start.Equal(nextWeek.Start))
	})

	t.Run("fetch failure is reported and keeps events", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin, builder.NewEventBuilder().Build())
		f.gateway.EXPECT().ListEvents(gomock.Any(), gomock.Any()).
			Return(nil, infra.UpstreamError{Kind: infra.KindUnavailable, Status: http.StatusServiceUnavailable})

		err := f.uc.SetRange(context.Background(), id, admin, builder.NewRangeKey(nil).Range, calendar.ViewWeek)

		assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
		assert.Len(t, f.board(t, id).Events(), 1)
	})
}

func TestCalendar_SetFilter(t *testing.T) {
	t.Run("admin filter is applied", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin)
		f.gateway.EXPECT().ListEvents(gomock.Any(), builder.NewRangeKey(ptr.Of(int64(4)))).Return(nil, nil)

		require.NoError(t, f.uc.SetFilter(context.Background(), id, admin, ptr.Of(int64(4))))
	})

	t.Run("barber cannot widen the filter", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, barber)
		f.gateway.EXPECT().ListEvents(gomock.Any(), builder.NewRangeKey(ptr.Of(int64(3)))).Return(nil, nil)

		require.NoError(t, f.uc.SetFilter(context.Background(), id, barber, nil))
	})

	t.Run("session of another member is not visible", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin)

		err := f.uc.SetFilter(context.Background(), id, staff.Member{ID: 2, Role: staff.RoleAdmin}, nil)

		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})
}

func TestCalendar_Move(t *testing.T) {
	original := builder.NewEventBuilder().WithID(7).WithSpan(at(10, 0), at(10, 30)).Build()

	t.Run("rejected move is reverted to the exact prior span", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin, original)
		f.gateway.EXPECT().UpdateDatetime(gomock.Any(), int64(7), calendar.Span{Start: at(11, 0), End: at(11, 30)}).
			Return(infra.UpstreamError{Kind: infra.KindRejected, Status: http.StatusConflict, Message: "Slot taken"})

		result, err := f.uc.Move(context.Background(), id, admin, 7, at(11, 0), at(11, 30))

		assert.True(t, errs.Is(err, errs.ErrUpstreamRejected))
		require.NotNil(t, result)
		assert.True(t, result.Restored)
		assert.Equal(t, calendar.EditReverted, result.Edit.State)
		ev, _ := f.board(t, id).Event(7)
		assert.True(t, ev.Span.Equal(original.Span))
		assert.Empty(t, f.board(t, id).PendingIDs())
	})

	t.Run("move the API did not acknowledge is reverted", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin, original)
		f.gateway.EXPECT().UpdateDatetime(gomock.Any(), int64(7), gomock.Any()).
			Return(infra.UpstreamError{Kind: infra.KindMalformed, Status: http.StatusOK, Message: "update_datetime response without acknowledgement"})

		result, err := f.uc.Move(context.Background(), id, admin, 7, at(11, 0), at(11, 30))

		assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
		require.NotNil(t, result)
		assert.Equal(t, calendar.EditReverted, result.Edit.State)
		ev, _ := f.board(t, id).Event(7)
		assert.True(t, ev.Span.Equal(original.Span))
	})

	t.Run("accepted move commits and refetches", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin, original)
		moved := builder.NewEventBuilder().WithID(7).WithSpan(at(11, 0), at(11, 30)).Build()
		gomock.InOrder(
			f.gateway.EXPECT().UpdateDatetime(gomock.Any(), int64(7), gomock.Any()).Return(nil),
			f.gateway.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return([]calendar.Event{moved}, nil),
		)

		result, err := f.uc.Move(context.Background(), id, admin, 7, at(11, 0), at(11, 30))

		require.NoError(t, err)
		assert.Equal(t, calendar.EditCommitted, result.Edit.State)
		ev, _ := f.board(t, id).Event(7)
		assert.Equal(t, at(11, 0), ev.Span.Start)
	})

	t.Run("month view is not editable", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin, original)
		f.gateway.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return([]calendar.Event{original}, nil)
		require.NoError(t, f.uc.SetRange(context.Background(), id, admin, builder.NewRangeKey(nil).Range, calendar.ViewMonth))

		_, err := f.uc.Move(context.Background(), id, admin, 7, at(11, 0), at(11, 30))

		assert.ErrorIs(t, err, commands.ErrViewNotEditable)
	})

	t.Run("barbers cannot reschedule", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, barber, original)

		_, err := f.uc.Move(context.Background(), id, barber, 7, at(11, 0), at(11, 30))

		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("resize to before the start is rejected locally", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin, original)

		_, err := f.uc.Resize(context.Background(), id, admin, 7, at(9, 0))

		assert.ErrorIs(t, err, calendar.ErrInvalidSpan)
	})
}

func TestCalendar_Mutations(t *testing.T) {
	ev := builder.NewEventBuilder().WithID(5).Build()

	t.Run("failed delete leaves the events untouched", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin, ev)
		f.gateway.EXPECT().DeleteBooking(gomock.Any(), int64(5)).
			Return(infra.UpstreamError{Kind: infra.KindUnavailable})

		err := f.uc.Delete(context.Background(), id, admin, 5)

		assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
		b := f.board(t, id)
		assert.Len(t, b.Events(), 1)
		assert.False(t, b.Busy(5))
	})

	t.Run("delete refetches the current range", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin, ev)
		gomock.InOrder(
			f.gateway.EXPECT().DeleteBooking(gomock.Any(), int64(5)).Return(nil),
			f.gateway.EXPECT().ListEvents(gomock.Any(), builder.NewRangeKey(nil)).Return(nil, nil),
		)

		require.NoError(t, f.uc.Delete(context.Background(), id, admin, 5))
		assert.Empty(t, f.board(t, id).Events())
	})

	t.Run("status change", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin, ev)
		confirmed := builder.NewEventBuilder().WithID(5).WithStatus(calendar.StatusConfirmed).Build()
		f.gateway.EXPECT().UpdateStatus(gomock.Any(), int64(5), calendar.StatusConfirmed).Return(nil)
		f.gateway.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return([]calendar.Event{confirmed}, nil)

		require.NoError(t, f.uc.ChangeStatus(context.Background(), id, admin, 5, calendar.StatusConfirmed))
		got, _ := f.board(t, id).Event(5)
		assert.Equal(t, calendar.StatusConfirmed, got.Status)
	})

	t.Run("unknown status is rejected without a call", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin, ev)

		err := f.uc.ChangeStatus(context.Background(), id, admin, 5, calendar.Status("archived"))

		assert.ErrorIs(t, err, calendar.ErrInvalidStatus)
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin, ev)

		err := f.uc.Delete(context.Background(), id, admin, 99)

		assert.ErrorIs(t, err, calendar.ErrEventNotFound)
	})
}

func TestCalendar_CreateBooking(t *testing.T) {
	t.Run("defaults to confirmed and refetches", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin)
		form := shared.AdminBooking{ServiceID: 1, BarberID: 3, Date: "2025-11-29", Time: "10:00", ClientName: "Nino", ClientPhone: "599000111"}
		want := form
		want.Status = calendar.StatusConfirmed
		f.gateway.EXPECT().AdminCreateBooking(gomock.Any(), want).Return(int64(55), nil)
		f.gateway.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return(nil, nil)

		got, err := f.uc.CreateBooking(context.Background(), id, admin, form)

		require.NoError(t, err)
		assert.Equal(t, int64(55), got)
	})

	t.Run("field errors are surfaced", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin)
		f.gateway.EXPECT().AdminCreateBooking(gomock.Any(), gomock.Any()).Return(int64(0), infra.UpstreamError{
			Kind:   infra.KindRejected,
			Status: http.StatusBadRequest,
			Fields: map[string]string{"client_phone": "required"},
		})

		_, err := f.uc.CreateBooking(context.Background(), id, admin, shared.AdminBooking{})

		assert.True(t, errs.Is(err, errs.ErrUpstreamRejected))
		ue, ok := infra.AsUpstreamError(err)
		require.True(t, ok)
		assert.Equal(t, "required", ue.Fields["client_phone"])
	})
}

func TestCalendar_EditBooking(t *testing.T) {
	ev := builder.NewEventBuilder().WithID(5).WithStatus(calendar.StatusConfirmed).Build()
	form := shared.AdminBooking{ServiceID: 2, BarberID: 4, Date: "2025-11-30", Time: "15:30", ClientName: "Nino", ClientPhone: "599000111"}

	t.Run("empty status keeps the current one and refetches", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin, ev)
		want := form
		want.Status = calendar.StatusConfirmed
		moved := builder.NewEventBuilder().WithID(5).WithSpan(at(15, 30), at(16, 0)).Build()
		gomock.InOrder(
			f.gateway.EXPECT().EditBooking(gomock.Any(), int64(5), want).Return(nil),
			f.gateway.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return([]calendar.Event{moved}, nil),
		)

		require.NoError(t, f.uc.EditBooking(context.Background(), id, admin, 5, form))

		got, _ := f.board(t, id).Event(5)
		assert.Equal(t, at(15, 30), got.Span.Start)
		assert.False(t, f.board(t, id).Busy(5))
	})

	t.Run("field errors are surfaced and the board is kept", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin, ev)
		f.gateway.EXPECT().EditBooking(gomock.Any(), int64(5), gomock.Any()).Return(infra.UpstreamError{
			Kind:   infra.KindRejected,
			Status: http.StatusBadRequest,
			Fields: map[string]string{"booking_time": "Not a valid time"},
		})

		err := f.uc.EditBooking(context.Background(), id, admin, 5, form)

		assert.True(t, errs.Is(err, errs.ErrUpstreamRejected))
		ue, ok := infra.AsUpstreamError(err)
		require.True(t, ok)
		assert.Equal(t, "Not a valid time", ue.Fields["booking_time"])
		got, _ := f.board(t, id).Event(5)
		assert.Equal(t, ev, got)
		assert.False(t, f.board(t, id).Busy(5))
	})

	t.Run("barbers cannot edit", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, barber, ev)

		err := f.uc.EditBooking(context.Background(), id, barber, 5, form)

		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newCalendarFixture(t)
		id := f.open(t, admin, ev)

		err := f.uc.EditBooking(context.Background(), id, admin, 99, form)

		assert.ErrorIs(t, err, calendar.ErrEventNotFound)
	})
}

func TestCalendar_DateClick(t *testing.T) {
	f := newCalendarFixture(t)
	id := f.open(t, admin)
	f.gateway.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return(nil, nil)
	require.NoError(t, f.uc.SetRange(context.Background(), id, admin, builder.NewRangeKey(nil).Range, calendar.ViewMonth))

	action, err := f.uc.DateClick(context.Background(), id, admin, at(0, 0), true)

	require.NoError(t, err)
	assert.Equal(t, calendar.ClickSwitchToDay, action.Kind)
	sess, _ := f.sessions.Get(id)
	assert.Equal(t, calendar.ViewDay, sess.View)
}

func TestCalendar_SetViewport(t *testing.T) {
	f := newCalendarFixture(t)
	id := f.open(t, admin)

	require.NoError(t, f.uc.SetViewport(context.Background(), id, admin, calendar.Viewport{Width: 1024}))
	sess, _ := f.sessions.Get(id)
	assert.Equal(t, calendar.ViewWeek, sess.View, "no breakpoint crossing keeps the view")

	require.NoError(t, f.uc.SetViewport(context.Background(), id, admin, mobile))
	assert.Equal(t, calendar.ViewDay, sess.View)
}
