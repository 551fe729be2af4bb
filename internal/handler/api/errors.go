package api

import (
	"errors"
	"log/slog"
	"net/http"

	"barberflow/internal/domain/calendar"
	"barberflow/internal/domain/wizard"
	"barberflow/internal/handler/httperr"
	"barberflow/internal/infra"
	"barberflow/internal/pkg/errs"
	"barberflow/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// unprocessable lists errors that mean the request was understood but the
// current state does not allow it.
var unprocessable = []error{
	wizard.ErrUnknownService,
	wizard.ErrUnknownBarber,
	wizard.ErrUnknownStep,
	wizard.ErrDateUnavailable,
	wizard.ErrSlotUnavailable,
	wizard.ErrInvalidDate,
	calendar.ErrInvalidSpan,
	calendar.ErrInvalidRange,
	calendar.ErrInvalidView,
	calendar.ErrInvalidStatus,
	commands.ErrViewNotEditable,
}

// abortWithUseCaseError maps use case failures onto statuses. detail, when
// not nil, is merged into the response detail.
func abortWithUseCaseError(c *gin.Context, err error, detail gin.H) {
	abort := func(status int, msg string) {
		var d any
		if len(detail) > 0 {
			d = detail
		}
		httperr.AbortWithError(c, status, err, msg, d)
	}

	var verr *wizard.ValidationError
	var gerr *wizard.GuardError

	switch {
	case errors.As(err, &verr):
		detail = withDetail(detail, "fields", verr.Map())
		abort(http.StatusUnprocessableEntity, "Validation failed")
	case errors.As(err, &gerr):
		detail = withDetail(detail, "missing", gerr.Missing)
		abort(http.StatusUnprocessableEntity, "Step not available")
	case errs.Is(err, errs.ErrSessionNotFound):
		abort(http.StatusNotFound, "Session not found")
	case errs.Is(err, calendar.ErrEventNotFound):
		abort(http.StatusNotFound, "Event not found")
	case errs.Is(err, wizard.ErrSubmissionInProgress):
		abort(http.StatusConflict, "Submission already in progress")
	case errs.Is(err, calendar.ErrEditInProgress):
		abort(http.StatusConflict, "Another change to this booking is in progress")
	case errs.Is(err, commands.ErrForbidden):
		abort(http.StatusForbidden, "Insufficient permissions")
	case errs.Is(err, errs.ErrUpstreamRejected):
		msg := "Request rejected"
		if ue, ok := infra.AsUpstreamError(err); ok {
			if ue.Message != "" {
				msg = ue.Message
			}
			if len(ue.Fields) > 0 {
				detail = withDetail(detail, "fields", ue.Fields)
			}
		}
		abort(http.StatusUnprocessableEntity, msg)
	case errs.Is(err, errs.ErrUpstreamUnavailable):
		abort(http.StatusBadGateway, "Booking service unavailable")
	case isUnprocessable(err):
		abort(http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error("Unhandled use case error",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 8),
		)
		abort(http.StatusInternalServerError, "Internal error")
	}
}

func isUnprocessable(err error) bool {
	for _, target := range unprocessable {
		if errs.Is(err, target) {
			return true
		}
	}
	return false
}

func withDetail(detail gin.H, key string, value any) gin.H {
	if detail == nil {
		detail = gin.H{}
	}
	detail[key] = value
	return detail
}

func abortBadRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}
