package wizard

import (
	"errors"
	"time"
)

// Draft is the in-progress booking of one wizard session. Every method
// returns a new Draft and leaves the receiver untouched.
type Draft struct {
	Step        Step
	ServiceID   *int64
	BarberID    *int64
	Date        *time.Time
	Time        *string
	Contact     *Contact
	Month       Month
	Slots       SlotState
	Submitting  bool
	LastError   string
	FieldErrors []FieldError
}

// Submission is the single payload sent when the customer confirms.
type Submission struct {
	ServiceID     int64
	BarberID      int64
	Date          string
	Time          string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Notes         string
}

func NewDraft(today time.Time) Draft {
	return Draft{
		Step:  StepServiceSelect,
		Month: MonthOf(today),
	}
}

// DateString returns the selected date as YYYY-MM-DD, or "" when unset.
func (d Draft) DateString() string {
	if d.Date == nil {
		return ""
	}
	return d.Date.Format(DateLayout)
}

func (d Draft) SelectService(id int64) (Draft, error) {
	if d.Submitting {
		return d, ErrSubmissionInProgress
	}
	if d.ServiceID != nil && *d.ServiceID == id {
		return d, nil
	}

	next := d
	next.ServiceID = &id
	next.BarberID = nil
	next.Date = nil
	next.Time = nil
	next.Slots = SlotState{}
	next.FieldErrors = nil
	return next.clampStep(), nil
}

func (d Draft) SelectBarber(id int64) (Draft, error) {
	if d.Submitting {
		return d, ErrSubmissionInProgress
	}
	if err := d.canEnter(StepBarberSelect); err != nil {
		return d, err
	}
	if d.BarberID != nil && *d.BarberID == id {
		return d, nil
	}

	next := d
	next.BarberID = &id
	next.Date = nil
	next.Time = nil
	next.Slots = SlotState{}
	return next.clampStep(), nil
}

// SelectDate sets the date and starts a slot load. The returned key must be
// passed back to ApplySlots or ApplySlotsFailure with the fetch result.
func (d Draft) SelectDate(date, today time.Time) (Draft, SlotKey, error) {
	if d.Submitting {
		return d, SlotKey{}, ErrSubmissionInProgress
	}
	if err := d.canEnter(StepDateTimeSelect); err != nil {
		return d, SlotKey{}, err
	}
	if date.Before(today) {
		return d, SlotKey{}, ErrDateUnavailable
	}

	key := SlotKey{
		BarberID:  *d.BarberID,
		Date:      date.Format(DateLayout),
		ServiceID: *d.ServiceID,
	}

	next := d
	next.Date = &date
	next.Time = nil
	next.Slots = SlotState{Key: &key, Loading: true}
	return next.clampStep(), key, nil
}

// ApplySlots stores a slot response. It reports false and leaves the draft
// unchanged when key no longer matches the current selection.
func (d Draft) ApplySlots(key SlotKey, result SlotResult) (Draft, bool) {
	if !d.Slots.matches(key) {
		return d, false
	}

	next := d
	next.Slots = SlotState{
		Key:     d.Slots.Key,
		Loaded:  true,
		Working: result.Working,
		Buckets: result.Buckets,
		Message: result.Message,
	}
	return next, true
}

func (d Draft) ApplySlotsFailure(key SlotKey, message string) (Draft, bool) {
	if !d.Slots.matches(key) {
		return d, false
	}

	next := d
	next.Slots = SlotState{
		Key:     d.Slots.Key,
		Loaded:  true,
		Failed:  true,
		Message: message,
	}
	return next, true
}

func (d Draft) SelectTime(hhmm string) (Draft, error) {
	if d.Submitting {
		return d, ErrSubmissionInProgress
	}
	if d.Date == nil {
		return d, &GuardError{Into: StepContactInfo, Missing: "date"}
	}
	if !d.Slots.Loaded || !d.Slots.Buckets.Contains(hhmm) {
		return d, ErrSlotUnavailable
	}

	next := d
	next.Time = &hhmm
	return next, nil
}

func (d Draft) ChangeMonth(delta int) Draft {
	next := d
	next.Month = d.Month.Add(delta)
	return next
}

// GoToStep moves back freely and forward only when every guard up to n holds.
func (d Draft) GoToStep(n Step) (Draft, error) {
	if !n.IsValid() {
		return d, ErrUnknownStep
	}
	if d.Submitting {
		return d, ErrSubmissionInProgress
	}
	if n > d.Step {
		if err := d.canEnter(n); err != nil {
			return d, err
		}
	}

	next := d
	next.Step = n
	return next, nil
}

func (d Draft) Next() (Draft, error) {
	return d.GoToStep(d.Step + 1)
}

// ConfirmContact validates the form. On failure the returned draft carries
// the field errors and stays on the contact step.
func (d Draft) ConfirmContact(in ContactInput) (Draft, error) {
	if d.Submitting {
		return d, ErrSubmissionInProgress
	}
	if err := d.canEnter(StepContactInfo); err != nil {
		return d, err
	}

	contact, err := ValidateContact(in)
	if err != nil {
		next := d
		next.Step = StepContactInfo
		var verr *ValidationError
		if errors.As(err, &verr) {
			next.FieldErrors = verr.Fields
		}
		return next, err
	}

	next := d
	next.Contact = &contact
	next.FieldErrors = nil
	next.LastError = ""
	next.Step = StepConfirmation
	return next, nil
}

// RejectContact records a field error found outside ValidateContact, for
// example a flagged customer, and keeps the draft on the contact step.
func (d Draft) RejectContact(field FieldError) Draft {
	next := d
	next.Contact = nil
	next.Step = StepContactInfo
	next.FieldErrors = []FieldError{field}
	return next
}

func (d Draft) BeginSubmit() (Draft, error) {
	if d.Submitting {
		return d, ErrSubmissionInProgress
	}
	if d.Step != StepConfirmation {
		return d, &GuardError{Into: StepConfirmation, Missing: "confirmation step"}
	}
	if err := d.canEnter(StepConfirmation); err != nil {
		return d, err
	}

	next := d
	next.Submitting = true
	next.LastError = ""
	next.FieldErrors = nil
	return next, nil
}

// SubmitFailed re-enables submission and keeps every entered field.
func (d Draft) SubmitFailed(message string, fields []FieldError) Draft {
	next := d
	next.Submitting = false
	next.LastError = message
	next.FieldErrors = fields
	return next
}

func (d Draft) Submission() (Submission, error) {
	if err := d.canEnter(StepConfirmation); err != nil {
		return Submission{}, err
	}

	return Submission{
		ServiceID:     *d.ServiceID,
		BarberID:      *d.BarberID,
		Date:          d.DateString(),
		Time:          *d.Time,
		CustomerName:  d.Contact.Name,
		CustomerPhone: d.Contact.Phone,
		CustomerEmail: d.Contact.Email,
		Notes:         d.Contact.Notes,
	}, nil
}

// CanEnter reports whether every guard from the barber step up to n holds.
func (d Draft) CanEnter(n Step) bool {
	return d.canEnter(n) == nil
}

func (d Draft) canEnter(n Step) error {
	for s := StepBarberSelect; s <= n; s++ {
		if err := d.guard(s); err != nil {
			return err
		}
	}
	return nil
}

func (d Draft) guard(into Step) error {
	switch into {
	case StepBarberSelect:
		if d.ServiceID == nil {
			return &GuardError{Into: into, Missing: "service"}
		}
	case StepDateTimeSelect:
		if d.BarberID == nil {
			return &GuardError{Into: into, Missing: "barber"}
		}
	case StepContactInfo:
		if d.Date == nil {
			return &GuardError{Into: into, Missing: "date"}
		}
		if d.Time == nil {
			return &GuardError{Into: into, Missing: "time"}
		}
	case StepConfirmation:
		if d.Contact == nil {
			return &GuardError{Into: into, Missing: "contact"}
		}
	}
	return nil
}

// clampStep walks the step back after an invalidation so the current step's
// guards always hold.
func (d Draft) clampStep() Draft {
	for d.Step > StepServiceSelect && !d.CanEnter(d.Step) {
		d.Step--
	}
	return d
}
