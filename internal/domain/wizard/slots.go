package wizard

import (
	"regexp"
	"slices"
)

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// SlotKey identifies one availability request. A response is applied only
// while the draft still points at the same key.
type SlotKey struct {
	BarberID  int64
	Date      string
	ServiceID int64
}

type SlotBuckets struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
}

func (b SlotBuckets) Total() int {
	return len(b.Morning) + len(b.Afternoon) + len(b.Evening)
}

func (b SlotBuckets) Contains(hhmm string) bool {
	return slices.Contains(b.Morning, hhmm) ||
		slices.Contains(b.Afternoon, hhmm) ||
		slices.Contains(b.Evening, hhmm)
}

// SlotResult is what the availability endpoint said about a key.
type SlotResult struct {
	Working bool
	Buckets SlotBuckets
	Message string
}

// SlotState is the slot area of the date/time step. Failed means the fetch
// itself errored, as opposed to a day off reported by the server.
type SlotState struct {
	Key     *SlotKey
	Loading bool
	Loaded  bool
	Failed  bool
	Working bool
	Buckets SlotBuckets
	Message string
}

func (s SlotState) matches(key SlotKey) bool {
	return s.Key != nil && *s.Key == key
}

// IsClock reports whether s looks like HH:MM.
func IsClock(s string) bool {
	return clockRegex.MatchString(s)
}
