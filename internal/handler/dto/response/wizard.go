package response

import (
	"barberflow/internal/usecase/commands"
	"barberflow/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type WizardStartResponse struct {
	SessionID string `json:"session_id"`
}

type SubmitResponse struct {
	BookingID        int64  `json:"booking_id"`
	ConfirmationCode string `json:"confirmation_code,omitempty"`
	RedirectURL      string `json:"redirect_url"`
}

// ClientLookupResponse never exposes whether a customer is blocked.
type ClientLookupResponse struct {
	Found     bool   `json:"found"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	LastVisit string `json:"last_visit,omitempty"`
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitResponse {
	out := &SubmitResponse{}
	_ = copier.Copy(out, r)
	return out
}

func FromClientProfile(p *shared.ClientProfile) *ClientLookupResponse {
	out := &ClientLookupResponse{}
	if p == nil || !p.Found || p.Blocked {
		return out
	}
	_ = copier.Copy(out, p)
	return out
}
