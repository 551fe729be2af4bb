package queries

import (
	"context"
	"time"

	"barberflow/internal/domain/wizard"
	"barberflow/internal/pkg/clock"
	"barberflow/internal/pkg/errs"
	"barberflow/internal/pkg/ptr"
	"barberflow/internal/usecase/shared"
)

const (
	dayOffMessage  = "The barber is not working on this day."
	noSlotsMessage = "No free times on this date."
)

var stepLabels = map[wizard.Step]string{
	wizard.StepServiceSelect:  "Service",
	wizard.StepBarberSelect:   "Barber",
	wizard.StepDateTimeSelect: "Date and time",
	wizard.StepContactInfo:    "Your details",
	wizard.StepConfirmation:   "Confirm",
}

type StepProgress struct {
	Step      int    `json:"step"`
	Name      string `json:"name"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Active    bool   `json:"active"`
	Reachable bool   `json:"reachable"`
}

type ServiceCard struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Selected    bool    `json:"selected"`
}

type BarberCard struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization,omitempty"`
	Selected       bool   `json:"selected"`
}

type SlotOption struct {
	Time     string `json:"time"`
	Selected bool   `json:"selected"`
}

// SlotSection is one non-empty bucket of the time picker.
type SlotSection struct {
	Key   string       `json:"key"`
	Label string       `json:"label"`
	Times []SlotOption `json:"times"`
}

type SlotsView struct {
	Loading  bool          `json:"loading"`
	Failed   bool          `json:"failed"`
	Message  string        `json:"message,omitempty"`
	Sections []SlotSection `json:"sections"`
}

// ContactView is the contact form. Prefilled marks values taken from a
// returning-client lookup.
type ContactView struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Prefilled bool   `json:"prefilled"`
}

type SummaryView struct {
	Service    string  `json:"service"`
	Barber     string  `json:"barber"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	TotalPrice float64 `json:"total_price"`
}

type WizardView struct {
	SessionID   string            `json:"session_id"`
	Step        int               `json:"step"`
	StepName    string            `json:"step_name"`
	Progress    []StepProgress    `json:"progress"`
	ServiceID   *int64            `json:"service_id,omitempty"`
	BarberID    *int64            `json:"barber_id,omitempty"`
	Date        string            `json:"date,omitempty"`
	Time        string            `json:"time,omitempty"`
	CanProceed  bool              `json:"can_proceed"`
	Services    []ServiceCard     `json:"services"`
	Barbers     []BarberCard      `json:"barbers"`
	Calendar    *wizard.MonthGrid `json:"calendar,omitempty"`
	Slots       *SlotsView        `json:"slots,omitempty"`
	Contact     *ContactView      `json:"contact,omitempty"`
	Summary     *SummaryView      `json:"summary,omitempty"`
	Submitting  bool              `json:"submitting"`
	LastError   string            `json:"last_error,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

type WizardQueries interface {
	Get(ctx context.Context, sessionID string) (*WizardView, error)
}

type wizardQueriesImpl struct {
	sessions shared.WizardStore
	clock    clock.Clock
	loc      *time.Location
}

func NewWizardQueries(sessions shared.WizardStore, clk clock.Clock, loc *time.Location) WizardQueries {
	return &wizardQueriesImpl{sessions: sessions, clock: clk, loc: loc}
}

func (q *wizardQueriesImpl) Get(ctx context.Context, sessionID string) (*WizardView, error) {
	sess, ok := q.sessions.Get(sessionID)
	if !ok {
		return nil, errs.ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	view := buildWizardView(sess.Draft, sess.Catalog, sess.Client, clock.Today(q.clock, q.loc), q.loc)
	view.SessionID = sessionID
	return view, nil
}

func buildWizardView(d wizard.Draft, catalog wizard.Catalog, client *shared.ClientProfile, today time.Time, loc *time.Location) *WizardView {
	view := &WizardView{
		Step:       int(d.Step),
		StepName:   d.Step.String(),
		Progress:   progress(d),
		ServiceID:  d.ServiceID,
		BarberID:   d.BarberID,
		Date:       d.DateString(),
		CanProceed: d.Step < wizard.StepConfirmation && d.CanEnter(d.Step+1),
		Services:   serviceCards(catalog.Services, d.ServiceID),
		Barbers:    barberCards(catalog.Barbers, d.BarberID),
		Time:       ptr.Deref(d.Time),
		Submitting: d.Submitting,
		LastError:  d.LastError,
	}
	if len(d.FieldErrors) > 0 {
		verr := wizard.ValidationError{Fields: d.FieldErrors}
		view.FieldErrors = verr.Map()
	}

	if d.Step == wizard.StepDateTimeSelect {
		grid := d.Month.Grid(today, d.Date, loc)
		view.Calendar = &grid
		view.Slots = slotsView(d)
	}
	if d.Step == wizard.StepContactInfo {
		view.Contact = contactView(d.Contact, client)
	}
	if d.Step == wizard.StepConfirmation {
		view.Contact = contactView(d.Contact, nil)
		view.Summary = summaryView(d, catalog)
	}
	return view
}

func progress(d wizard.Draft) []StepProgress {
	steps := wizard.Steps()
	out := make([]StepProgress, 0, len(steps))
	for _, s := range steps {
		out = append(out, StepProgress{
			Step:      int(s),
			Name:      s.String(),
			Label:     stepLabels[s],
			Completed: s < d.Step,
			Active:    s == d.Step,
			Reachable: s <= d.Step || d.CanEnter(s),
		})
	}
	return out
}

func serviceCards(services []wizard.Service, selected *int64) []ServiceCard {
	out := make([]ServiceCard, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceCard{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
			DurationMin: s.DurationMin,
			Selected:    selected != nil && *selected == s.ID,
		})
	}
	return out
}

func barberCards(barbers []wizard.Barber, selected *int64) []BarberCard {
	out := make([]BarberCard, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, BarberCard{
			ID:             b.ID,
			Name:           b.Name,
			Specialization: b.Specialization,
			Selected:       selected != nil && *selected == b.ID,
		})
	}
	return out
}

// slotsView hides empty buckets and explains an empty day with one message.
func slotsView(d wizard.Draft) *SlotsView {
	s := d.Slots
	if s.Key == nil {
		return nil
	}
	view := &SlotsView{Loading: s.Loading, Failed: s.Failed, Sections: []SlotSection{}}
	switch {
	case s.Loading:
		return view
	case s.Failed:
		view.Message = s.Message
		return view
	case !s.Working:
		view.Message = s.Message
		if view.Message == "" {
			view.Message = dayOffMessage
		}
		return view
	case s.Buckets.Total() == 0:
		view.Message = noSlotsMessage
		return view
	}

	var selected string
	if d.Time != nil {
		selected = *d.Time
	}
	for _, b := range []struct {
		key, label string
		times      []string
	}{
		{"morning", "Morning", s.Buckets.Morning},
		{"afternoon", "Afternoon", s.Buckets.Afternoon},
		{"evening", "Evening", s.Buckets.Evening},
	} {
		if len(b.times) == 0 {
			continue
		}
		section := SlotSection{Key: b.key, Label: b.label, Times: make([]SlotOption, 0, len(b.times))}
		for _, t := range b.times {
			section.Times = append(section.Times, SlotOption{Time: t, Selected: t == selected})
		}
		view.Sections = append(view.Sections, section)
	}
	return view
}

func contactView(c *wizard.Contact, client *shared.ClientProfile) *ContactView {
	if c != nil {
		return &ContactView{Name: c.Name, Phone: c.Phone, Email: c.Email, Notes: c.Notes}
	}
	if client != nil && client.Found && !client.Blocked {
		return &ContactView{Name: client.Name, Email: client.Email, Prefilled: true}
	}
	return &ContactView{}
}

func summaryView(d wizard.Draft, catalog wizard.Catalog) *SummaryView {
	if d.Contact == nil || d.ServiceID == nil || d.BarberID == nil || d.Date == nil || d.Time == nil {
		return nil
	}
	summary := &SummaryView{
		Date:  d.Date.Format("Monday, 2 January 2006"),
		Time:  *d.Time,
		Name:  d.Contact.Name,
		Phone: d.Contact.Phone,
		Email: d.Contact.Email,
		Notes: d.Contact.Notes,
	}
	if svc, err := catalog.Service(*d.ServiceID); err == nil {
		summary.Service = svc.Name
		summary.TotalPrice = svc.Price
	}
	if b, err := catalog.Barber(*d.BarberID); err == nil {
		summary.Barber = b.Name
	}
	return summary
}
