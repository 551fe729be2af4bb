package calendar

import (
	"errors"
	"time"
)

var ErrInvalidView = errors.New("invalid calendar view")

type ViewType string

const (
	ViewMonth ViewType = "dayGridMonth"
	ViewWeek  ViewType = "timeGridWeek"
	ViewDay   ViewType = "timeGridDay"
)

func ParseViewType(s string) (ViewType, error) {
	switch v := ViewType(s); v {
	case ViewMonth, ViewWeek, ViewDay:
		return v, nil
	}
	return "", ErrInvalidView
}

func (v ViewType) IsTimeGrid() bool {
	return v == ViewWeek || v == ViewDay
}

// Viewport is the client's screen as reported when the calendar is opened.
type Viewport struct {
	Width int
}

func (v Viewport) IsMobile(breakpoint int) bool {
	return v.Width < breakpoint
}

// Editable reports whether drag and resize are enabled. Desktop allows week
// and day views, mobile only the day view, and month view is never editable.
func Editable(view ViewType, viewport Viewport, breakpoint int) bool {
	if viewport.IsMobile(breakpoint) {
		return view == ViewDay
	}
	return view.IsTimeGrid()
}

// InitialView is the view shown when the calendar is first opened.
func InitialView(viewport Viewport, breakpoint int) ViewType {
	if viewport.IsMobile(breakpoint) {
		return ViewDay
	}
	return ViewWeek
}

// AvailableViews lists the view switcher buttons.
func AvailableViews(viewport Viewport, breakpoint int) []ViewType {
	if viewport.IsMobile(breakpoint) {
		return []ViewType{ViewDay, ViewMonth}
	}
	return []ViewType{ViewMonth, ViewWeek, ViewDay}
}

type ClickKind string

const (
	ClickSwitchToDay ClickKind = "switch_to_day"
	ClickOpenCreate  ClickKind = "open_create"
)

const DefaultCreateTime = "10:00"

// DateClickAction is what a click on empty calendar space should do.
type DateClickAction struct {
	Kind ClickKind
	View ViewType
	Date string
	Time string
}

// DateClick resolves a click on an empty cell. In month view it drills into
// the day. In time views it opens the create form prefilled with the clicked
// slot, or DefaultCreateTime when only a date was clicked.
func DateClick(view ViewType, at time.Time, dateOnly bool) DateClickAction {
	date := at.Format("2006-01-02")
	if view == ViewMonth {
		return DateClickAction{Kind: ClickSwitchToDay, View: ViewDay, Date: date}
	}

	clock := at.Format("15:04")
	if dateOnly {
		clock = DefaultCreateTime
	}
	return DateClickAction{Kind: ClickOpenCreate, View: view, Date: date, Time: clock}
}
