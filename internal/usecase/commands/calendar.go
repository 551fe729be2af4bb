package commands

import (
	"context"
	"log/slog"
	"time"

	"barberflow/internal/domain/calendar"
	"barberflow/internal/domain/staff"
	"barberflow/internal/infra/metrics"
	"barberflow/internal/pkg/errs"
	"barberflow/internal/usecase/shared"
)

var (
	ErrViewNotEditable = errs.New("events cannot be rescheduled in this view")
	ErrForbidden       = errs.New("insufficient permissions")
)

const fetchFailedMessage = "Could not load bookings. Please try again."

// resourcePalette colors barber columns in catalog order.
var resourcePalette = []string{
	"#6366f1", "#0ea5e9", "#14b8a6", "#f97316", "#a855f7", "#84cc16", "#ec4899", "#64748b",
}

type OpenCalendarRequest struct {
	Viewport calendar.Viewport
	View     *calendar.ViewType
	Range    calendar.Range
	Filter   *int64
}

type EditResult struct {
	Edit calendar.Edit
	// Restored is false when a newer fetch replaced the event before the
	// revert, so the server copy was kept.
	Restored bool
}

type CalendarCommands interface {
	Open(ctx context.Context, member staff.Member, req OpenCalendarRequest) (string, error)
	SetRange(ctx context.Context, sessionID string, member staff.Member, rng calendar.Range, view calendar.ViewType) error
	SetFilter(ctx context.Context, sessionID string, member staff.Member, filter *int64) error
	SetViewport(ctx context.Context, sessionID string, member staff.Member, viewport calendar.Viewport) error
	Move(ctx context.Context, sessionID string, member staff.Member, eventID int64, start, end time.Time) (*EditResult, error)
	Resize(ctx context.Context, sessionID string, member staff.Member, eventID int64, end time.Time) (*EditResult, error)
	ChangeStatus(ctx context.Context, sessionID string, member staff.Member, eventID int64, status calendar.Status) error
	Delete(ctx context.Context, sessionID string, member staff.Member, eventID int64) error
	CreateBooking(ctx context.Context, sessionID string, member staff.Member, form shared.AdminBooking) (int64, error)
	EditBooking(ctx context.Context, sessionID string, member staff.Member, eventID int64, form shared.AdminBooking) error
	DateClick(ctx context.Context, sessionID string, member staff.Member, at time.Time, dateOnly bool) (calendar.DateClickAction, error)
}

type calendarUseCaseImpl struct {
	catalog    CatalogReader
	gateway    CalendarGateway
	sessions   shared.CalendarStore
	breakpoint int
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

func NewCalendarUseCase(
	catalog CatalogReader,
	gateway CalendarGateway,
	sessions shared.CalendarStore,
	breakpoint int,
	logger *slog.Logger,
	m *metrics.Metrics,
) CalendarCommands {
	return &calendarUseCaseImpl{
		catalog:    catalog,
		gateway:    gateway,
		sessions:   sessions,
		breakpoint: breakpoint,
		logger:     logger,
		metrics:    m,
	}
}

// Open loads the barber columns once and performs the first fetch. A failed
// event fetch still opens the session; the board carries the error.
func (uc *calendarUseCaseImpl) Open(ctx context.Context, member staff.Member, req OpenCalendarRequest) (string, error) {
	barbers, err := uc.catalog.Barbers(ctx)
	if err != nil {
		return "", errs.Wrapf(markUpstream(err), "load barbers for staff %d", member.ID)
	}

	own := member.OwnResource()
	resources := make([]calendar.Resource, 0, len(barbers))
	for i, b := range barbers {
		if own != nil && b.ID != *own {
			continue
		}
		resources = append(resources, calendar.Resource{
			ID:    b.ID,
			Name:  b.Name,
			Color: resourcePalette[i%len(resourcePalette)],
		})
	}

	view := calendar.InitialView(req.Viewport, uc.breakpoint)
	if req.View != nil {
		view = *req.View
	}

	sess := &shared.CalendarSession{
		Owner:     member,
		View:      view,
		Viewport:  req.Viewport,
		Resources: resources,
		Board:     calendar.NewBoard(),
	}
	id := uc.sessions.Create(sess)

	key := calendar.RangeKey{Range: req.Range, ResourceFilter: effectiveFilter(member, req.Filter)}
	sess.Lock()
	ticket := sess.Board.BeginFetch(key)
	sess.Unlock()
	_ = uc.fetch(ctx, sess, ticket)

	return id, nil
}

func (uc *calendarUseCaseImpl) SetRange(ctx context.Context, sessionID string, member staff.Member, rng calendar.Range, view calendar.ViewType) error {
	sess, err := uc.session(sessionID, member)
	if err != nil {
		return err
	}

	sess.Lock()
	sess.View = view
	key, _ := sess.Board.Key()
	key.Range = rng
	key.ResourceFilter = effectiveFilter(member, key.ResourceFilter)
	ticket := sess.Board.BeginFetch(key)
	sess.Unlock()

	return uc.fetch(ctx, sess, ticket)
}

func (uc *calendarUseCaseImpl) SetFilter(ctx context.Context, sessionID string, member staff.Member, filter *int64) error {
	sess, err := uc.session(sessionID, member)
	if err != nil {
		return err
	}

	sess.Lock()
	key, ok := sess.Board.Key()
	if !ok {
		sess.Unlock()
		return calendar.ErrInvalidRange
	}
	key.ResourceFilter = effectiveFilter(member, filter)
	ticket := sess.Board.BeginFetch(key)
	sess.Unlock()

	return uc.fetch(ctx, sess, ticket)
}

// SetViewport resets the view to the device default when the viewport
// crosses the mobile breakpoint.
func (uc *calendarUseCaseImpl) SetViewport(ctx context.Context, sessionID string, member staff.Member, viewport calendar.Viewport) error {
	sess, err := uc.session(sessionID, member)
	if err != nil {
		return err
	}

	sess.Lock()
	defer sess.Unlock()
	wasMobile := sess.Viewport.IsMobile(uc.breakpoint)
	sess.Viewport = viewport
	if wasMobile != viewport.IsMobile(uc.breakpoint) {
		sess.View = calendar.InitialView(viewport, uc.breakpoint)
	}
	return nil
}

func (uc *calendarUseCaseImpl) Move(ctx context.Context, sessionID string, member staff.Member, eventID int64, start, end time.Time) (*EditResult, error) {
	return uc.edit(ctx, sessionID, member, func(b *calendar.Board) (calendar.Edit, error) {
		return b.BeginMove(eventID, start, end)
	})
}

func (uc *calendarUseCaseImpl) Resize(ctx context.Context, sessionID string, member staff.Member, eventID int64, end time.Time) (*EditResult, error) {
	return uc.edit(ctx, sessionID, member, func(b *calendar.Board) (calendar.Edit, error) {
		return b.BeginResize(eventID, end)
	})
}

// edit applies the change optimistically, then commits or reverts once the
// API has answered.
func (uc *calendarUseCaseImpl) edit(ctx context.Context, sessionID string, member staff.Member, begin func(*calendar.Board) (calendar.Edit, error)) (*EditResult, error) {
	if !member.Role.AtLeast(staff.RoleReception) {
		return nil, ErrForbidden
	}
	sess, err := uc.session(sessionID, member)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	if !calendar.Editable(sess.View, sess.Viewport, uc.breakpoint) {
		sess.Unlock()
		return nil, ErrViewNotEditable
	}
	edit, err := begin(sess.Board)
	sess.Unlock()
	if err != nil {
		return nil, err
	}

	if apiErr := uc.gateway.UpdateDatetime(ctx, edit.EventID, edit.Proposed); apiErr != nil {
		sess.Lock()
		reverted, restored := sess.Board.Revert(edit)
		sess.Unlock()

		uc.metrics.ObserveEdit(string(edit.Kind), string(calendar.EditReverted))
		uc.logger.Warn("Calendar edit reverted",
			slog.Int64("event_id", edit.EventID),
			slog.String("kind", string(edit.Kind)),
			slog.Bool("restored", restored),
			slog.String("error", apiErr.Error()),
		)
		return &EditResult{Edit: reverted, Restored: restored}, markUpstream(apiErr)
	}

	sess.Lock()
	committed := sess.Board.Commit(edit)
	sess.Unlock()
	uc.metrics.ObserveEdit(string(edit.Kind), string(calendar.EditCommitted))

	uc.refetch(ctx, sess)
	return &EditResult{Edit: committed}, nil
}

func (uc *calendarUseCaseImpl) ChangeStatus(ctx context.Context, sessionID string, member staff.Member, eventID int64, status calendar.Status) error {
	if !status.IsValid() {
		return calendar.ErrInvalidStatus
	}
	return uc.mutate(ctx, sessionID, member, eventID, func(ctx context.Context, _ calendar.Event) error {
		return uc.gateway.UpdateStatus(ctx, eventID, status)
	})
}

func (uc *calendarUseCaseImpl) Delete(ctx context.Context, sessionID string, member staff.Member, eventID int64) error {
	return uc.mutate(ctx, sessionID, member, eventID, func(ctx context.Context, _ calendar.Event) error {
		return uc.gateway.DeleteBooking(ctx, eventID)
	})
}

// EditBooking replaces the booking's form fields. An empty status keeps the
// event's current one.
func (uc *calendarUseCaseImpl) EditBooking(ctx context.Context, sessionID string, member staff.Member, eventID int64, form shared.AdminBooking) error {
	return uc.mutate(ctx, sessionID, member, eventID, func(ctx context.Context, current calendar.Event) error {
		if form.Status == "" {
			form.Status = current.Status
		}
		if err := uc.gateway.EditBooking(ctx, eventID, form); err != nil {
			return err
		}
		uc.logger.Info("Booking edited from calendar",
			slog.Int64("booking_id", eventID),
			slog.Int64("staff_id", member.ID),
		)
		return nil
	})
}

// mutate leaves the board untouched on failure and refetches the current
// range on success.
func (uc *calendarUseCaseImpl) mutate(ctx context.Context, sessionID string, member staff.Member, eventID int64, call func(context.Context, calendar.Event) error) error {
	if !member.Role.AtLeast(staff.RoleReception) {
		return ErrForbidden
	}
	sess, err := uc.session(sessionID, member)
	if err != nil {
		return err
	}

	sess.Lock()
	err = sess.Board.BeginMutation(eventID)
	current, _ := sess.Board.Event(eventID)
	sess.Unlock()
	if err != nil {
		return err
	}

	err = call(ctx, current)

	sess.Lock()
	sess.Board.EndMutation(eventID)
	sess.Unlock()

	if err != nil {
		uc.logger.Warn("Calendar mutation failed",
			slog.Int64("event_id", eventID),
			slog.String("error", err.Error()),
		)
		return markUpstream(err)
	}

	uc.refetch(ctx, sess)
	return nil
}

func (uc *calendarUseCaseImpl) CreateBooking(ctx context.Context, sessionID string, member staff.Member, form shared.AdminBooking) (int64, error) {
	if !member.Role.AtLeast(staff.RoleReception) {
		return 0, ErrForbidden
	}
	sess, err := uc.session(sessionID, member)
	if err != nil {
		return 0, err
	}
	if form.Status == "" {
		form.Status = calendar.StatusConfirmed
	}

	id, err := uc.gateway.AdminCreateBooking(ctx, form)
	if err != nil {
		return 0, markUpstream(err)
	}
	uc.logger.Info("Booking created from calendar",
		slog.Int64("booking_id", id),
		slog.Int64("staff_id", member.ID),
	)

	uc.refetch(ctx, sess)
	return id, nil
}

func (uc *calendarUseCaseImpl) DateClick(ctx context.Context, sessionID string, member staff.Member, at time.Time, dateOnly bool) (calendar.DateClickAction, error) {
	sess, err := uc.session(sessionID, member)
	if err != nil {
		return calendar.DateClickAction{}, err
	}

	sess.Lock()
	defer sess.Unlock()
	action := calendar.DateClick(sess.View, at, dateOnly)
	if action.Kind == calendar.ClickSwitchToDay {
		sess.View = action.View
	}
	return action, nil
}

func (uc *calendarUseCaseImpl) session(id string, member staff.Member) (*shared.CalendarSession, error) {
	sess, ok := uc.sessions.Get(id)
	if !ok || sess.Owner.ID != member.ID {
		return nil, errs.ErrSessionNotFound
	}
	return sess, nil
}

// refetch reloads the current key. Failures land on the board, not the caller.
func (uc *calendarUseCaseImpl) refetch(ctx context.Context, sess *shared.CalendarSession) {
	sess.Lock()
	key, ok := sess.Board.Key()
	if !ok {
		sess.Unlock()
		return
	}
	ticket := sess.Board.BeginFetch(key)
	sess.Unlock()

	_ = uc.fetch(ctx, sess, ticket)
}

func (uc *calendarUseCaseImpl) fetch(ctx context.Context, sess *shared.CalendarSession, ticket calendar.FetchTicket) error {
	events, err := uc.gateway.ListEvents(ctx, ticket.Key)

	sess.Lock()
	defer sess.Unlock()

	if err != nil {
		uc.logger.Warn("Event fetch failed",
			slog.Time("start", ticket.Key.Range.Start),
			slog.Time("end", ticket.Key.Range.End),
			slog.String("error", err.Error()),
		)
		if !sess.Board.FetchFailed(ticket, rejectionMessage(err, fetchFailedMessage)) {
			uc.metrics.ObserveStale("events")
			return nil
		}
		return markUpstream(err)
	}

	for _, id := range calendar.UnassignUnknown(events, sess.Resources) {
		uc.logger.Warn("Event placed on an unknown barber, shown unassigned",
			slog.Int64("event_id", id),
		)
	}
	if !sess.Board.ApplyFetch(ticket, events) {
		uc.metrics.ObserveStale("events")
	}
	return nil
}

// effectiveFilter pins barbers to their own column.
func effectiveFilter(member staff.Member, requested *int64) *int64 {
	if own := member.OwnResource(); own != nil {
		return own
	}
	return requested
}
