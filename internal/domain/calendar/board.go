package calendar

import (
	"errors"
	"slices"
	"time"

	"barberflow/internal/pkg/ptr"
)

var (
	ErrEditInProgress = errors.New("another change to this event is still in progress")
	ErrInvalidRange   = errors.New("range end must be after start")
)

// Range is the half-open visible interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

func NewRange(start, end time.Time) (Range, error) {
	if !start.Before(end) {
		return Range{}, ErrInvalidRange
	}
	return Range{Start: start, End: end}, nil
}

// RangeKey identifies one event fetch. A nil ResourceFilter means all barbers.
type RangeKey struct {
	Range          Range
	ResourceFilter *int64
}

func (k RangeKey) Equal(o RangeKey) bool {
	return k.Range.Start.Equal(o.Range.Start) &&
		k.Range.End.Equal(o.Range.End) &&
		ptr.Equal(k.ResourceFilter, o.ResourceFilter)
}

type EditKind string

const (
	EditMove   EditKind = "move"
	EditResize EditKind = "resize"
)

type EditState string

const (
	EditPending   EditState = "pending"
	EditCommitted EditState = "committed"
	EditReverted  EditState = "reverted"
)

// Edit is one optimistic move or resize. Prior is the span captured when the
// edit began and is what a revert restores.
type Edit struct {
	EventID    int64
	Kind       EditKind
	Prior      Span
	Proposed   Span
	State      EditState
	generation uint64
}

// FetchTicket identifies one event fetch. Only the ticket of the latest
// BeginFetch can be applied.
type FetchTicket struct {
	Key RangeKey
	seq uint64
}

// Board is the schedule of one calendar session. It is not safe for
// concurrent use; the owning session serializes access.
type Board struct {
	key        RangeKey
	hasKey     bool
	fetchSeq   uint64
	loading    bool
	lastError  string
	generation uint64
	events     map[int64]Event
	edits      map[int64]Edit
	mutations  map[int64]struct{}
}

func NewBoard() *Board {
	return &Board{
		events:    map[int64]Event{},
		edits:     map[int64]Edit{},
		mutations: map[int64]struct{}{},
	}
}

func (b *Board) Key() (RangeKey, bool) {
	return b.key, b.hasKey
}

func (b *Board) Loading() bool {
	return b.loading
}

func (b *Board) LastError() string {
	return b.lastError
}

// BeginFetch makes key the current one. Results of any earlier fetch, even
// for the same key, will be discarded.
func (b *Board) BeginFetch(key RangeKey) FetchTicket {
	b.fetchSeq++
	b.key = key
	b.hasKey = true
	b.loading = true
	return FetchTicket{Key: key, seq: b.fetchSeq}
}

func (b *Board) current(t FetchTicket) bool {
	return b.hasKey && t.seq == b.fetchSeq && b.key.Equal(t.Key)
}

// ApplyFetch replaces the whole event set when t is still the latest fetch.
func (b *Board) ApplyFetch(t FetchTicket, events []Event) bool {
	if !b.current(t) {
		return false
	}

	next := make(map[int64]Event, len(events))
	for _, ev := range events {
		next[ev.ID] = ev
	}
	b.events = next
	b.generation++
	b.loading = false
	b.lastError = ""
	return true
}

// FetchFailed keeps the previous events and records the message.
func (b *Board) FetchFailed(t FetchTicket, message string) bool {
	if !b.current(t) {
		return false
	}
	b.loading = false
	b.lastError = message
	return true
}

func (b *Board) Event(id int64) (Event, bool) {
	ev, ok := b.events[id]
	return ev, ok
}

// Events returns the current events ordered by start time then id.
func (b *Board) Events() []Event {
	out := make([]Event, 0, len(b.events))
	for _, ev := range b.events {
		out = append(out, ev)
	}
	slices.SortFunc(out, func(a, c Event) int {
		if cmp := a.Span.Start.Compare(c.Span.Start); cmp != 0 {
			return cmp
		}
		switch {
		case a.ID < c.ID:
			return -1
		case a.ID > c.ID:
			return 1
		}
		return 0
	})
	return out
}

// Busy reports whether an edit or mutation for the event is outstanding.
func (b *Board) Busy(id int64) bool {
	_, editing := b.edits[id]
	_, mutating := b.mutations[id]
	return editing || mutating
}

// PendingIDs lists events with an outstanding edit or mutation.
func (b *Board) PendingIDs() []int64 {
	ids := make([]int64, 0, len(b.edits)+len(b.mutations))
	for id := range b.edits {
		ids = append(ids, id)
	}
	for id := range b.mutations {
		if _, dup := b.edits[id]; !dup {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

func (b *Board) BeginMove(id int64, start, end time.Time) (Edit, error) {
	if err := b.checkEditable(id); err != nil {
		return Edit{}, err
	}
	span, err := NewSpan(start, end)
	if err != nil {
		return Edit{}, err
	}
	return b.beginEdit(id, EditMove, span), nil
}

// BeginResize keeps the event's start and moves its end.
func (b *Board) BeginResize(id int64, end time.Time) (Edit, error) {
	if err := b.checkEditable(id); err != nil {
		return Edit{}, err
	}
	span, err := NewSpan(b.events[id].Span.Start, end)
	if err != nil {
		return Edit{}, err
	}
	return b.beginEdit(id, EditResize, span), nil
}

func (b *Board) checkEditable(id int64) error {
	if b.Busy(id) {
		return ErrEditInProgress
	}
	if _, ok := b.events[id]; !ok {
		return ErrEventNotFound
	}
	return nil
}

// beginEdit snapshots the prior span and applies the proposed one in a
// single step.
func (b *Board) beginEdit(id int64, kind EditKind, proposed Span) Edit {
	ev := b.events[id]
	edit := Edit{
		EventID:    id,
		Kind:       kind,
		Prior:      ev.Span,
		Proposed:   proposed,
		State:      EditPending,
		generation: b.generation,
	}
	ev.Span = proposed
	b.events[id] = ev
	b.edits[id] = edit
	return edit
}

// Commit makes the optimistic span final.
func (b *Board) Commit(edit Edit) Edit {
	delete(b.edits, edit.EventID)
	edit.State = EditCommitted
	return edit
}

// Revert restores the prior span exactly. It reports false and leaves the
// events alone when a newer fetch has replaced the event set meanwhile.
func (b *Board) Revert(edit Edit) (Edit, bool) {
	delete(b.edits, edit.EventID)
	edit.State = EditReverted
	if edit.generation != b.generation {
		return edit, false
	}
	ev, ok := b.events[edit.EventID]
	if !ok {
		return edit, false
	}
	ev.Span = edit.Prior
	b.events[edit.EventID] = ev
	return edit, true
}

// BeginMutation gates a delete or status change on the event.
func (b *Board) BeginMutation(id int64) error {
	if err := b.checkEditable(id); err != nil {
		return err
	}
	b.mutations[id] = struct{}{}
	return nil
}

func (b *Board) EndMutation(id int64) {
	delete(b.mutations, id)
}
