package queries

import (
	"context"
	"time"

	"barberflow/internal/domain/calendar"
	"barberflow/internal/domain/staff"
	"barberflow/internal/pkg/errs"
	"barberflow/internal/usecase/shared"
)

type ResourceView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type EventView struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	ResourceID      *int64    `json:"resource_id,omitempty"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"status_label"`
	BackgroundColor string    `json:"background_color"`
	BorderColor     string    `json:"border_color"`
	TextColor       string    `json:"text_color"`
	Tooltip         string    `json:"tooltip"`
	CustomerName    string    `json:"customer_name"`
	ServiceName     string    `json:"service_name"`
	BarberName      string    `json:"barber_name"`
	Pending         bool      `json:"pending"`
	Editable        bool      `json:"editable"`
}

type CalendarView struct {
	SessionID      string         `json:"session_id"`
	View           string         `json:"view"`
	AvailableViews []string       `json:"available_views"`
	Mobile         bool           `json:"mobile"`
	Editable       bool           `json:"editable"`
	DragHint       bool           `json:"drag_hint"`
	RangeStart     *time.Time     `json:"range_start,omitempty"`
	RangeEnd       *time.Time     `json:"range_end,omitempty"`
	Filter         *int64         `json:"filter,omitempty"`
	FilterLocked   bool           `json:"filter_locked"`
	Resources      []ResourceView `json:"resources"`
	Events         []EventView    `json:"events"`
	PendingIDs     []int64        `json:"pending_ids"`
	Loading        bool           `json:"loading"`
	LastError      string         `json:"last_error,omitempty"`
}

type DetailRowView struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type StatusOption struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Current bool   `json:"current"`
}

type EventDetailsView struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Rows     []DetailRowView `json:"rows"`
	Statuses []StatusOption  `json:"statuses"`
	CanEdit  bool            `json:"can_edit"`
	Pending  bool            `json:"pending"`
}

type CalendarQueries interface {
	Get(ctx context.Context, sessionID string, member staff.Member) (*CalendarView, error)
	EventDetails(ctx context.Context, sessionID string, member staff.Member, eventID int64) (*EventDetailsView, error)
}

type calendarQueriesImpl struct {
	sessions   shared.CalendarStore
	breakpoint int
	loc        *time.Location
}

func NewCalendarQueries(sessions shared.CalendarStore, breakpoint int, loc *time.Location) CalendarQueries {
	return &calendarQueriesImpl{sessions: sessions, breakpoint: breakpoint, loc: loc}
}

func (q *calendarQueriesImpl) session(id string, member staff.Member) (*shared.CalendarSession, error) {
	sess, ok := q.sessions.Get(id)
	if !ok || sess.Owner.ID != member.ID {
		return nil, errs.ErrSessionNotFound
	}
	return sess, nil
}

func (q *calendarQueriesImpl) Get(ctx context.Context, sessionID string, member staff.Member) (*CalendarView, error) {
	sess, err := q.session(sessionID, member)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	interactive := calendar.Editable(sess.View, sess.Viewport, q.breakpoint)
	canEdit := interactive && member.Role.AtLeast(staff.RoleReception)

	view := &CalendarView{
		SessionID:    sessionID,
		View:         string(sess.View),
		Mobile:       sess.Viewport.IsMobile(q.breakpoint),
		Editable:     canEdit,
		DragHint:     canEdit,
		FilterLocked: member.OwnResource() != nil,
		Resources:    make([]ResourceView, 0, len(sess.Resources)),
		PendingIDs:   sess.Board.PendingIDs(),
		Loading:      sess.Board.Loading(),
		LastError:    sess.Board.LastError(),
	}
	for _, v := range calendar.AvailableViews(sess.Viewport, q.breakpoint) {
		view.AvailableViews = append(view.AvailableViews, string(v))
	}
	if key, ok := sess.Board.Key(); ok {
		start, end := key.Range.Start.In(q.loc), key.Range.End.In(q.loc)
		view.RangeStart = &start
		view.RangeEnd = &end
		view.Filter = key.ResourceFilter
	}
	for _, r := range sess.Resources {
		view.Resources = append(view.Resources, ResourceView{ID: r.ID, Name: r.Name, Color: r.Color})
	}

	events := sess.Board.Events()
	view.Events = make([]EventView, 0, len(events))
	for _, ev := range events {
		busy := sess.Board.Busy(ev.ID)
		colors := ev.Status.Colors()
		view.Events = append(view.Events, EventView{
			ID:              ev.ID,
			Title:           ev.Title,
			Start:           ev.Span.Start.In(q.loc),
			End:             ev.Span.End.In(q.loc),
			ResourceID:      ev.ResourceID,
			Status:          ev.Status.String(),
			StatusLabel:     ev.Status.Label(),
			BackgroundColor: colors.Background,
			BorderColor:     colors.Border,
			TextColor:       colors.Text,
			Tooltip:         ev.Tooltip(),
			CustomerName:    ev.Customer.Name,
			ServiceName:     ev.Service.Name,
			BarberName:      ev.BarberName,
			Pending:         busy,
			Editable:        canEdit && !busy,
		})
	}
	return view, nil
}

func (q *calendarQueriesImpl) EventDetails(ctx context.Context, sessionID string, member staff.Member, eventID int64) (*EventDetailsView, error) {
	sess, err := q.session(sessionID, member)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	ev, ok := sess.Board.Event(eventID)
	if !ok {
		return nil, calendar.ErrEventNotFound
	}

	details := ev.Details(q.loc)
	rows := make([]DetailRowView, 0, len(details))
	for _, r := range details {
		rows = append(rows, DetailRowView{Label: r.Label, Value: r.Value})
	}

	statuses := calendar.Statuses()
	options := make([]StatusOption, 0, len(statuses))
	for _, s := range statuses {
		options = append(options, StatusOption{Value: s.String(), Label: s.Label(), Current: s == ev.Status})
	}

	return &EventDetailsView{
		ID:       ev.ID,
		Title:    ev.Title,
		Rows:     rows,
		Statuses: options,
		CanEdit:  member.Role.AtLeast(staff.RoleReception),
		Pending:  sess.Board.Busy(ev.ID),
	}, nil
}
