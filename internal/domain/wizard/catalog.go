package wizard

import "errors"

var (
	ErrUnknownService = errors.New("service not found")
	ErrUnknownBarber  = errors.New("barber not found")
)

type Service struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	DurationMin int
}

type Barber struct {
	ID             int64
	Name           string
	Specialization string
}

// Catalog is what the customer can choose from, loaded once per session.
type Catalog struct {
	Services []Service
	Barbers  []Barber
}

func (c Catalog) Service(id int64) (Service, error) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, nil
		}
	}
	return Service{}, ErrUnknownService
}

func (c Catalog) Barber(id int64) (Barber, error) {
	for _, b := range c.Barbers {
		if b.ID == id {
			return b, nil
		}
	}
	return Barber{}, ErrUnknownBarber
}
