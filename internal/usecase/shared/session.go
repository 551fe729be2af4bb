package shared

import (
	"sync"

	"barberflow/internal/domain/calendar"
	"barberflow/internal/domain/staff"
	"barberflow/internal/domain/wizard"
)

// WizardSession is one mounted booking page. Callers hold the embedded mutex
// while reading or replacing Draft.
type WizardSession struct {
	sync.Mutex
	Draft   wizard.Draft
	Catalog wizard.Catalog
	Client  *ClientProfile
}

// CalendarSession is one mounted admin calendar.
type CalendarSession struct {
	sync.Mutex
	Owner     staff.Member
	View      calendar.ViewType
	Viewport  calendar.Viewport
	Resources []calendar.Resource
	Board     *calendar.Board
}

type WizardStore interface {
	Create(sess *WizardSession) string
	Get(id string) (*WizardSession, bool)
	Delete(id string)
}

type CalendarStore interface {
	Create(sess *CalendarSession) string
	Get(id string) (*CalendarSession, bool)
	Delete(id string)
}
