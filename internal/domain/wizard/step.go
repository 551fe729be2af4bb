package wizard

type Step int

const (
	StepServiceSelect Step = iota + 1
	StepBarberSelect
	StepDateTimeSelect
	StepContactInfo
	StepConfirmation
)

var stepNames = map[Step]string{
	StepServiceSelect:  "service",
	StepBarberSelect:   "barber",
	StepDateTimeSelect: "datetime",
	StepContactInfo:    "contact",
	StepConfirmation:   "confirmation",
}

// Steps lists every step in wizard order.
func Steps() []Step {
	return []Step{StepServiceSelect, StepBarberSelect, StepDateTimeSelect, StepContactInfo, StepConfirmation}
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Step) IsValid() bool {
	return s >= StepServiceSelect && s <= StepConfirmation
}
