package calendar

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid booking status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

type Colors struct {
	Background string
	Border     string
	Text       string
}

var statusLabels = map[Status]string{
	StatusPending:   "Pending",
	StatusConfirmed: "Confirmed",
	StatusCompleted: "Completed",
	StatusCancelled: "Cancelled",
	StatusNoShow:    "No-show",
}

var statusColors = map[Status]Colors{
	StatusPending:   {Background: "#f59e0b", Border: "#d97706", Text: "#ffffff"},
	StatusConfirmed: {Background: "#10b981", Border: "#059669", Text: "#ffffff"},
	StatusCompleted: {Background: "#3b82f6", Border: "#2563eb", Text: "#ffffff"},
	StatusCancelled: {Background: "#6b7280", Border: "#4b5563", Text: "#ffffff"},
	StatusNoShow:    {Background: "#ef4444", Border: "#dc2626", Text: "#ffffff"},
}

// ParseStatus accepts both "no-show" and "no_show".
func ParseStatus(s string) (Status, error) {
	normalized := Status(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	if _, ok := statusLabels[normalized]; !ok {
		return "", ErrInvalidStatus
	}
	return normalized, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return statusLabels[StatusPending]
}

// Colors falls back to the pending palette for unknown values.
func (s Status) Colors() Colors {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return statusColors[StatusPending]
}

func Statuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow}
}
