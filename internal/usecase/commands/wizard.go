package commands

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"barberflow/internal/domain/wizard"
	"barberflow/internal/infra/metrics"
	"barberflow/internal/pkg/clock"
	"barberflow/internal/pkg/errs"
	"barberflow/internal/usecase/shared"
)

const (
	slotsFailedMessage  = "Could not load available times. Please try again."
	submitFailedMessage = "Booking failed. Please try again."
	blockedMessage      = "Online booking is not available for this phone number. Please call the barbershop."
)

type SubmitResult struct {
	BookingID        int64
	ConfirmationCode string
	RedirectURL      string
}

type WizardCommands interface {
	Start(ctx context.Context) (string, error)
	SelectService(ctx context.Context, sessionID string, serviceID int64) error
	SelectBarber(ctx context.Context, sessionID string, barberID int64) error
	ChangeMonth(ctx context.Context, sessionID string, delta int) error
	SelectDate(ctx context.Context, sessionID string, date string) error
	SelectTime(ctx context.Context, sessionID string, hhmm string) error
	GoToStep(ctx context.Context, sessionID string, step wizard.Step) error
	Next(ctx context.Context, sessionID string) error
	LookupClient(ctx context.Context, sessionID string, phone string) (*shared.ClientProfile, error)
	ConfirmContact(ctx context.Context, sessionID string, in wizard.ContactInput) error
	Submit(ctx context.Context, sessionID string) (*SubmitResult, error)
}

type wizardUseCaseImpl struct {
	catalog     CatalogReader
	gateway     WizardGateway
	sessions    shared.WizardStore
	clock       clock.Clock
	loc         *time.Location
	successPath string
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

func NewWizardUseCase(
	catalog CatalogReader,
	gateway WizardGateway,
	sessions shared.WizardStore,
	clk clock.Clock,
	loc *time.Location,
	successPath string,
	logger *slog.Logger,
	m *metrics.Metrics,
) WizardCommands {
	return &wizardUseCaseImpl{
		catalog:     catalog,
		gateway:     gateway,
		sessions:    sessions,
		clock:       clk,
		loc:         loc,
		successPath: strings.TrimSuffix(successPath, "/"),
		logger:      logger,
		metrics:     m,
	}
}

func (uc *wizardUseCaseImpl) Start(ctx context.Context) (string, error) {
	services, err := uc.catalog.Services(ctx)
	if err != nil {
		return "", errs.Wrap(markUpstream(err), "load services")
	}
	barbers, err := uc.catalog.Barbers(ctx)
	if err != nil {
		return "", errs.Wrap(markUpstream(err), "load barbers")
	}

	sess := &shared.WizardSession{
		Draft:   wizard.NewDraft(uc.today()),
		Catalog: wizard.Catalog{Services: services, Barbers: barbers},
	}
	id := uc.sessions.Create(sess)
	uc.metrics.ObserveStep(wizard.StepServiceSelect.String())
	return id, nil
}

func (uc *wizardUseCaseImpl) SelectService(ctx context.Context, sessionID string, serviceID int64) error {
	return uc.update(sessionID, func(sess *shared.WizardSession) (wizard.Draft, error) {
		if _, err := sess.Catalog.Service(serviceID); err != nil {
			return sess.Draft, err
		}
		return sess.Draft.SelectService(serviceID)
	})
}

func (uc *wizardUseCaseImpl) SelectBarber(ctx context.Context, sessionID string, barberID int64) error {
	return uc.update(sessionID, func(sess *shared.WizardSession) (wizard.Draft, error) {
		if _, err := sess.Catalog.Barber(barberID); err != nil {
			return sess.Draft, err
		}
		return sess.Draft.SelectBarber(barberID)
	})
}

func (uc *wizardUseCaseImpl) ChangeMonth(ctx context.Context, sessionID string, delta int) error {
	return uc.update(sessionID, func(sess *shared.WizardSession) (wizard.Draft, error) {
		return sess.Draft.ChangeMonth(delta), nil
	})
}

// SelectDate releases the session lock while slots load. The response is
// applied only if the selection still asks for the same key.
func (uc *wizardUseCaseImpl) SelectDate(ctx context.Context, sessionID string, date string) error {
	sess, err := uc.session(sessionID)
	if err != nil {
		return err
	}
	day, err := wizard.ParseDate(date, uc.loc)
	if err != nil {
		return err
	}

	sess.Lock()
	draft, key, err := sess.Draft.SelectDate(day, uc.today())
	if err != nil {
		sess.Unlock()
		return err
	}
	sess.Draft = draft
	sess.Unlock()

	result, fetchErr := uc.gateway.AvailableSlots(ctx, key)

	sess.Lock()
	defer sess.Unlock()

	var applied bool
	if fetchErr != nil {
		uc.logger.Warn("Slot fetch failed",
			slog.Int64("barber_id", key.BarberID),
			slog.String("date", key.Date),
			slog.String("error", fetchErr.Error()),
		)
		sess.Draft, applied = sess.Draft.ApplySlotsFailure(key, rejectionMessage(fetchErr, slotsFailedMessage))
	} else {
		sess.Draft, applied = sess.Draft.ApplySlots(key, result)
	}
	if !applied {
		uc.metrics.ObserveStale("slots")
		uc.logger.Debug("Discarded stale slot response",
			slog.Int64("barber_id", key.BarberID),
			slog.String("date", key.Date),
		)
	}
	return nil
}

func (uc *wizardUseCaseImpl) SelectTime(ctx context.Context, sessionID string, hhmm string) error {
	return uc.update(sessionID, func(sess *shared.WizardSession) (wizard.Draft, error) {
		return sess.Draft.SelectTime(hhmm)
	})
}

func (uc *wizardUseCaseImpl) GoToStep(ctx context.Context, sessionID string, step wizard.Step) error {
	return uc.update(sessionID, func(sess *shared.WizardSession) (wizard.Draft, error) {
		return sess.Draft.GoToStep(step)
	})
}

func (uc *wizardUseCaseImpl) Next(ctx context.Context, sessionID string) error {
	return uc.update(sessionID, func(sess *shared.WizardSession) (wizard.Draft, error) {
		return sess.Draft.Next()
	})
}

// LookupClient never fails the wizard: an unreachable API just means no prefill.
func (uc *wizardUseCaseImpl) LookupClient(ctx context.Context, sessionID string, phone string) (*shared.ClientProfile, error) {
	sess, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.gateway.LookupClient(ctx, wizard.NormalizePhone(phone))
	if err != nil {
		uc.logger.Warn("Client lookup failed", slog.String("error", err.Error()))
		return &shared.ClientProfile{}, nil
	}

	sess.Lock()
	sess.Client = &profile
	sess.Unlock()
	return &profile, nil
}

// ConfirmContact validates the form, then refuses customers the shop has
// blocked from online booking.
func (uc *wizardUseCaseImpl) ConfirmContact(ctx context.Context, sessionID string, in wizard.ContactInput) error {
	sess, err := uc.session(sessionID)
	if err != nil {
		return err
	}

	contact, err := wizard.ValidateContact(in)
	if err != nil {
		sess.Lock()
		defer sess.Unlock()
		sess.Draft, err = sess.Draft.ConfirmContact(in)
		return err
	}

	blocked := uc.isBlocked(ctx, wizard.NormalizePhone(contact.Phone))

	sess.Lock()
	defer sess.Unlock()

	draft, err := sess.Draft.ConfirmContact(in)
	if err != nil {
		return err
	}
	if blocked {
		field := wizard.FieldError{Field: wizard.FieldPhone, Message: blockedMessage}
		sess.Draft = sess.Draft.RejectContact(field)
		return &wizard.ValidationError{Fields: []wizard.FieldError{field}}
	}
	uc.enter(sess.Draft, draft)
	sess.Draft = draft
	return nil
}

func (uc *wizardUseCaseImpl) isBlocked(ctx context.Context, phone string) bool {
	profile, err := uc.gateway.LookupClient(ctx, phone)
	if err != nil {
		uc.logger.Warn("Blocked-client check skipped", slog.String("error", err.Error()))
		return false
	}
	return profile.Found && profile.Blocked
}

func (uc *wizardUseCaseImpl) Submit(ctx context.Context, sessionID string) (*SubmitResult, error) {
	sess, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	draft, err := sess.Draft.BeginSubmit()
	if err != nil {
		sess.Unlock()
		return nil, err
	}
	sub, err := draft.Submission()
	if err != nil {
		sess.Unlock()
		return nil, err
	}
	sess.Draft = draft
	sess.Unlock()

	receipt, err := uc.gateway.CreateBooking(ctx, sub)
	if err != nil {
		sess.Lock()
		sess.Draft = sess.Draft.SubmitFailed(
			rejectionMessage(err, submitFailedMessage),
			rejectionFields(err, submissionFields),
		)
		sess.Unlock()

		if staleCatalog(err) {
			if ierr := uc.catalog.Invalidate(ctx); ierr != nil {
				uc.logger.Warn("Catalog invalidation failed", slog.String("error", ierr.Error()))
			}
		}

		marked := markUpstream(err)
		outcome := "rejected"
		if errs.Is(marked, errs.ErrUpstreamUnavailable) {
			outcome = "failed"
		}
		uc.metrics.ObserveSubmission(outcome)
		uc.logger.Warn("Booking submission failed",
			slog.Int64("service_id", sub.ServiceID),
			slog.Int64("barber_id", sub.BarberID),
			slog.String("date", sub.Date),
			slog.String("time", sub.Time),
			slog.String("error", err.Error()),
		)
		return nil, marked
	}

	uc.sessions.Delete(sessionID)
	uc.metrics.ObserveSubmission("created")
	uc.logger.Info("Booking created",
		slog.Int64("booking_id", receipt.BookingID),
		slog.String("date", sub.Date),
		slog.String("time", sub.Time),
	)

	return &SubmitResult{
		BookingID:        receipt.BookingID,
		ConfirmationCode: receipt.ConfirmationCode,
		RedirectURL:      uc.successPath + "/" + strconv.FormatInt(receipt.BookingID, 10),
	}, nil
}

func (uc *wizardUseCaseImpl) session(id string) (*shared.WizardSession, error) {
	sess, ok := uc.sessions.Get(id)
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	return sess, nil
}

// update applies a synchronous transition under the session lock.
func (uc *wizardUseCaseImpl) update(sessionID string, fn func(*shared.WizardSession) (wizard.Draft, error)) error {
	sess, err := uc.session(sessionID)
	if err != nil {
		return err
	}

	sess.Lock()
	defer sess.Unlock()

	draft, err := fn(sess)
	if err != nil {
		return err
	}
	uc.enter(sess.Draft, draft)
	sess.Draft = draft
	return nil
}

func (uc *wizardUseCaseImpl) enter(prev, next wizard.Draft) {
	if next.Step != prev.Step {
		uc.metrics.ObserveStep(next.Step.String())
	}
}

func (uc *wizardUseCaseImpl) today() time.Time {
	return clock.Today(uc.clock, uc.loc)
}
