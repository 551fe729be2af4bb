//go:build unit || e2e

package builder

import (
	"time"

	"barberflow/internal/domain/wizard"
)

// DraftBuilder walks a wizard draft forward through the real transitions, so
// a built draft always satisfies the guards of its step.
type DraftBuilder struct {
	Today     time.Time
	ServiceID int64
	BarberID  int64
	Date      time.Time
	Time      string
	Slots     wizard.SlotBuckets
	Contact   wizard.ContactInput
}

func NewDraftBuilder() *DraftBuilder {
	today := time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)
	return &DraftBuilder{
		Today:     today,
		ServiceID: 1,
		BarberID:  3,
		Date:      today.AddDate(0, 0, 2),
		Time:      "14:00",
		Slots: wizard.SlotBuckets{
			Morning:   []string{"10:00", "10:30"},
			Afternoon: []string{"14:00", "14:30"},
			Evening:   []string{},
		},
		Contact: wizard.ContactInput{
			Name:  "Giorgi Giorgadze",
			Phone: "599-123-456",
			Email: "giorgi@example.com",
		},
	}
}

func (b *DraftBuilder) Catalog() wizard.Catalog {
	return wizard.Catalog{
		Services: []wizard.Service{
			{ID: 1, Name: "Classic haircut", Price: 30, DurationMin: 30},
			{ID: 2, Name: "Beard trim", Price: 20, DurationMin: 30},
		},
		Barbers: []wizard.Barber{
			{ID: 3, Name: "Davit Temuriani", Specialization: "Fades"},
			{ID: 4, Name: "Luka Beridze"},
		},
	}
}

// BuildAt returns a draft that has reached step. It panics when a transition
// fails, which only happens when the builder itself was misconfigured.
func (b *DraftBuilder) BuildAt(step wizard.Step) wizard.Draft {
	d := wizard.NewDraft(b.Today)
	if step < wizard.StepBarberSelect {
		return d
	}

	d = must(d.SelectService(b.ServiceID))
	d = must(d.GoToStep(wizard.StepBarberSelect))
	if step < wizard.StepDateTimeSelect {
		return d
	}

	d = must(d.SelectBarber(b.BarberID))
	d = must(d.GoToStep(wizard.StepDateTimeSelect))
	d, key, err := d.SelectDate(b.Date, b.Today)
	if err != nil {
		panic(err)
	}
	d, _ = d.ApplySlots(key, wizard.SlotResult{Working: true, Buckets: b.Slots})
	d = must(d.SelectTime(b.Time))
	if step < wizard.StepContactInfo {
		return d
	}

	d = must(d.GoToStep(wizard.StepContactInfo))
	if step < wizard.StepConfirmation {
		return d
	}

	return must(d.ConfirmContact(b.Contact))
}

func must(d wizard.Draft, err error) wizard.Draft {
	if err != nil {
		panic(err)
	}
	return d
}
