package infra

import (
	"errors"
	"log/slog"

	"barberflow/internal/pkg/errs"
)

type UpstreamErrorKind string

// UpstreamError is every failure of the booking API, normalized at the client.
// Fields holds per-field messages when the API reported form errors.
type UpstreamError struct {
	Kind    UpstreamErrorKind
	Status  int
	Message string
	Fields  map[string]string
	err     error // wrapped low-level error
}

func (e UpstreamError) Error() string {
	msg := string(e.Kind) + ": " + e.Message
	if e.err != nil {
		return msg + ": " + e.err.Error()
	}
	return msg
}

func (e UpstreamError) Unwrap() error {
	return e.err
}

func WrapUpstreamErr(slogger *slog.Logger, kind UpstreamErrorKind, status int, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.Int("status", status),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("cause", err.Error()))
	}

	slogger.Warn("Upstream error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return UpstreamError{Kind: kind, Status: status, Message: msg, err: err}
}

func IsKind(err error, kind UpstreamErrorKind) bool {
	var e UpstreamError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// AsUpstreamError extracts the normalized error, if err carries one.
func AsUpstreamError(err error) (UpstreamError, bool) {
	var e UpstreamError
	ok := errors.As(err, &e)
	return e, ok
}

// Upstream error kinds
const (
	// network failure, timeout or 5xx
	KindUnavailable UpstreamErrorKind = "UNAVAILABLE"
	// the API answered success=false or a 4xx
	KindRejected UpstreamErrorKind = "REJECTED"
	KindNotFound UpstreamErrorKind = "NOT_FOUND"
	// the body could not be decoded into any known shape
	KindMalformed UpstreamErrorKind = "MALFORMED"
)

// NewRejection builds a rejection that carries the API's per-field messages.
func NewRejection(slogger *slog.Logger, kind UpstreamErrorKind, status int, msg string, fields map[string]string) error {
	slogger.Warn("Upstream rejected request: "+msg,
		slog.String("kind", string(kind)),
		slog.Int("status", status),
		slog.Int("field_errors", len(fields)),
	)

	return UpstreamError{Kind: kind, Status: status, Message: msg, Fields: fields}
}
