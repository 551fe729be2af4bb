package request

import (
	"barberflow/internal/domain/wizard"

	"github.com/jinzhu/copier"
)

type SelectServiceRequest struct {
	ServiceID int64 `json:"service_id" binding:"required,min=1"`
}

type SelectBarberRequest struct {
	BarberID int64 `json:"barber_id" binding:"required,min=1"`
}

type ChangeMonthRequest struct {
	Delta int `json:"delta" binding:"required,oneof=-1 1"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SelectTimeRequest struct {
	Time string `json:"time" binding:"required"`
}

type GoToStepRequest struct {
	Step int `json:"step" binding:"required,min=1,max=5"`
}

type LookupClientRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// ContactRequest is bound without tags; every field is checked by the wizard
// so that all failures come back together.
type ContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

func (r GoToStepRequest) ToDomain() wizard.Step {
	return wizard.Step(r.Step)
}

func (r ContactRequest) ToDomain() (wizard.ContactInput, error) {
	var in wizard.ContactInput
	if err := copier.Copy(&in, &r); err != nil {
		return wizard.ContactInput{}, err
	}
	return in, nil
}
