package commands

import (
	"maps"
	"slices"

	"barberflow/internal/domain/wizard"
	"barberflow/internal/infra"
	"barberflow/internal/pkg/errs"
)

// upstream form field names mapped onto the wizard's contact fields
var submissionFields = map[string]string{
	"customer_name":  wizard.FieldName,
	"customer_phone": wizard.FieldPhone,
	"customer_email": wizard.FieldEmail,
}

// catalogFields are rejections that mean the cached catalog no longer matches
// the API.
var catalogFields = []string{"service_id", "barber_id"}

// markUpstream classifies a gateway failure for the transport layer.
func markUpstream(err error) error {
	if err == nil {
		return nil
	}
	ue, ok := infra.AsUpstreamError(err)
	if !ok {
		return errs.Mark(err, errs.ErrUpstreamUnavailable)
	}
	switch ue.Kind {
	case infra.KindRejected, infra.KindNotFound:
		return errs.Mark(err, errs.ErrUpstreamRejected)
	default:
		return errs.Mark(err, errs.ErrUpstreamUnavailable)
	}
}

// rejectionMessage prefers the API's own wording for business rejections.
func rejectionMessage(err error, fallback string) string {
	ue, ok := infra.AsUpstreamError(err)
	if !ok || ue.Kind != infra.KindRejected || ue.Message == "" {
		return fallback
	}
	return ue.Message
}

// rejectionFields converts the API's field errors, sorted by field name.
func rejectionFields(err error, rename map[string]string) []wizard.FieldError {
	ue, ok := infra.AsUpstreamError(err)
	if !ok || len(ue.Fields) == 0 {
		return nil
	}

	out := make([]wizard.FieldError, 0, len(ue.Fields))
	for _, name := range slices.Sorted(maps.Keys(ue.Fields)) {
		field := name
		if renamed, ok := rename[name]; ok {
			field = renamed
		}
		out = append(out, wizard.FieldError{Field: field, Message: ue.Fields[name]})
	}
	return out
}

// staleCatalog reports whether the API rejected a catalog id.
func staleCatalog(err error) bool {
	ue, ok := infra.AsUpstreamError(err)
	if !ok {
		return false
	}
	for _, name := range catalogFields {
		if _, found := ue.Fields[name]; found {
			return true
		}
	}
	return false
}
