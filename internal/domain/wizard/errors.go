package wizard

import "errors"

var (
	ErrUnknownStep          = errors.New("unknown wizard step")
	ErrStepGuard            = errors.New("step guard not satisfied")
	ErrDateUnavailable      = errors.New("date is not selectable")
	ErrSlotUnavailable      = errors.New("time slot is not available")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrInvalidDate          = errors.New("invalid date format")
)

// GuardError names the precondition that blocked a transition.
type GuardError struct {
	Into    Step
	Missing string
}

func (e *GuardError) Error() string {
	return "cannot enter " + e.Into.String() + " step: " + e.Missing + " not set"
}

func (e *GuardError) Is(target error) bool {
	return target == ErrStepGuard
}

// FieldError is a single failing form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every failing field, not just the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msg := "validation failed: " + e.Fields[0].Field
	for _, f := range e.Fields[1:] {
		msg += ", " + f.Field
	}
	return msg
}

// Map returns the failures keyed by field name.
func (e *ValidationError) Map() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}
