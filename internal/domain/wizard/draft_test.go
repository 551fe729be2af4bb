//go:build unit

package wizard_test

import (
	"testing"
	"time"

	"barberflow/internal/domain/wizard"
	"barberflow/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_Guards(t *testing.T) {
	b := builder.NewDraftBuilder()

	t.Run("next from service step without a service is rejected", func(t *testing.T) {
		d := wizard.NewDraft(b.Today)

		got, err := d.Next()

		require.ErrorIs(t, err, wizard.ErrStepGuard)
		assert.Equal(t, wizard.StepServiceSelect, got.Step)
	})

	t.Run("skipping ahead past an unmet guard leaves the draft unchanged", func(t *testing.T) {
		d := b.BuildAt(wizard.StepBarberSelect)

		got, err := d.GoToStep(wizard.StepContactInfo)

		require.ErrorIs(t, err, wizard.ErrStepGuard)
		var gerr *wizard.GuardError
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, wizard.StepDateTimeSelect, gerr.Into)
		assert.Equal(t, d, got)
	})

	t.Run("time step requires both date and time", func(t *testing.T) {
		d := b.BuildAt(wizard.StepDateTimeSelect)
		noTime := d
		noTime.Time = nil

		_, err := noTime.Next()

		require.ErrorIs(t, err, wizard.ErrStepGuard)
	})

	t.Run("moving back keeps every selection", func(t *testing.T) {
		d := b.BuildAt(wizard.StepConfirmation)

		got, err := d.GoToStep(wizard.StepServiceSelect)

		require.NoError(t, err)
		assert.Equal(t, wizard.StepServiceSelect, got.Step)
		assert.Equal(t, d.ServiceID, got.ServiceID)
		assert.Equal(t, d.BarberID, got.BarberID)
		assert.Equal(t, d.Time, got.Time)
		assert.Equal(t, d.Contact, got.Contact)
	})

	t.Run("jump forward to a step whose guards all hold", func(t *testing.T) {
		d := b.BuildAt(wizard.StepConfirmation)
		back, err := d.GoToStep(wizard.StepServiceSelect)
		require.NoError(t, err)

		got, err := back.GoToStep(wizard.StepConfirmation)

		require.NoError(t, err)
		assert.Equal(t, wizard.StepConfirmation, got.Step)
	})

	t.Run("unknown step", func(t *testing.T) {
		_, err := wizard.NewDraft(b.Today).GoToStep(wizard.Step(9))
		assert.ErrorIs(t, err, wizard.ErrUnknownStep)
	})

	t.Run("barber cannot be chosen before a service", func(t *testing.T) {
		_, err := wizard.NewDraft(b.Today).SelectBarber(3)
		assert.ErrorIs(t, err, wizard.ErrStepGuard)
	})
}

func TestDraft_CascadingInvalidation(t *testing.T) {
	b := builder.NewDraftBuilder()

	t.Run("changing service clears barber, date, time and slots", func(t *testing.T) {
		d := b.BuildAt(wizard.StepContactInfo)

		got, err := d.SelectService(2)

		require.NoError(t, err)
		assert.Equal(t, int64(2), *got.ServiceID)
		assert.Nil(t, got.BarberID)
		assert.Nil(t, got.Date)
		assert.Nil(t, got.Time)
		assert.Equal(t, wizard.SlotState{}, got.Slots)
		assert.Equal(t, wizard.StepBarberSelect, got.Step)
	})

	t.Run("reselecting the same service keeps everything", func(t *testing.T) {
		d := b.BuildAt(wizard.StepContactInfo)

		got, err := d.SelectService(b.ServiceID)

		require.NoError(t, err)
		assert.Equal(t, d, got)
	})

	t.Run("changing barber clears date, time and slots", func(t *testing.T) {
		d := b.BuildAt(wizard.StepContactInfo)

		got, err := d.SelectBarber(4)

		require.NoError(t, err)
		assert.Equal(t, int64(4), *got.BarberID)
		assert.Equal(t, d.ServiceID, got.ServiceID)
		assert.Nil(t, got.Date)
		assert.Nil(t, got.Time)
		assert.Nil(t, got.Slots.Key)
		assert.Equal(t, wizard.StepDateTimeSelect, got.Step)
	})

	t.Run("contact survives a service change", func(t *testing.T) {
		d := b.BuildAt(wizard.StepConfirmation)

		got, err := d.SelectService(2)

		require.NoError(t, err)
		assert.Equal(t, d.Contact, got.Contact)
	})

	t.Run("input draft is never mutated", func(t *testing.T) {
		d := b.BuildAt(wizard.StepContactInfo)
		before := *d.BarberID

		_, err := d.SelectBarber(4)

		require.NoError(t, err)
		assert.Equal(t, before, *d.BarberID)
		assert.NotNil(t, d.Date)
	})
}

func TestDraft_SlotRaceGuard(t *testing.T) {
	b := builder.NewDraftBuilder()
	d := b.BuildAt(wizard.StepDateTimeSelect)
	d1 := b.Today.AddDate(0, 0, 3)
	d2 := b.Today.AddDate(0, 0, 4)

	d, key1, err := d.SelectDate(d1, b.Today)
	require.NoError(t, err)
	d, key2, err := d.SelectDate(d2, b.Today)
	require.NoError(t, err)
	assert.NotEqual(t, key1, key2)

	late := wizard.SlotResult{Working: true, Buckets: wizard.SlotBuckets{Morning: []string{"09:00"}}}
	fresh := wizard.SlotResult{Working: true, Buckets: wizard.SlotBuckets{Evening: []string{"18:00"}}}

	d, applied := d.ApplySlots(key2, fresh)
	require.True(t, applied)

	d, applied = d.ApplySlots(key1, late)
	assert.False(t, applied)
	assert.Equal(t, fresh.Buckets, d.Slots.Buckets)
	assert.Equal(t, key2, *d.Slots.Key)

	_, applied = d.ApplySlotsFailure(key1, "boom")
	assert.False(t, applied)
}

func TestDraft_SelectDate(t *testing.T) {
	b := builder.NewDraftBuilder()

	t.Run("past date is rejected", func(t *testing.T) {
		d := b.BuildAt(wizard.StepDateTimeSelect)

		_, _, err := d.SelectDate(b.Today.AddDate(0, 0, -1), b.Today)

		assert.ErrorIs(t, err, wizard.ErrDateUnavailable)
	})

	t.Run("today is selectable", func(t *testing.T) {
		d := b.BuildAt(wizard.StepDateTimeSelect)

		got, key, err := d.SelectDate(b.Today, b.Today)

		require.NoError(t, err)
		assert.Equal(t, "2025-11-20", key.Date)
		assert.True(t, got.Slots.Loading)
		assert.Nil(t, got.Time)
	})

	t.Run("selecting a date while at contact step clears time and steps back", func(t *testing.T) {
		d := b.BuildAt(wizard.StepContactInfo)

		got, _, err := d.SelectDate(b.Today.AddDate(0, 0, 5), b.Today)

		require.NoError(t, err)
		assert.Nil(t, got.Time)
		assert.Equal(t, wizard.StepDateTimeSelect, got.Step)
	})

	t.Run("slot failure is recorded for the current key", func(t *testing.T) {
		d := b.BuildAt(wizard.StepDateTimeSelect)
		d, key, err := d.SelectDate(b.Today.AddDate(0, 0, 5), b.Today)
		require.NoError(t, err)

		got, applied := d.ApplySlotsFailure(key, "barber does not work on Sunday")

		require.True(t, applied)
		assert.True(t, got.Slots.Failed)
		assert.False(t, got.Slots.Loading)
		assert.Equal(t, 0, got.Slots.Buckets.Total())
	})
}

func TestDraft_SelectTime(t *testing.T) {
	b := builder.NewDraftBuilder()
	d := b.BuildAt(wizard.StepDateTimeSelect)

	_, err := d.SelectTime("16:00")
	assert.ErrorIs(t, err, wizard.ErrSlotUnavailable)

	got, err := d.SelectTime("10:30")
	require.NoError(t, err)
	assert.Equal(t, "10:30", *got.Time)
}

func TestDraft_ChangeMonth(t *testing.T) {
	d := wizard.NewDraft(time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC))

	forward := d.ChangeMonth(1)
	assert.Equal(t, wizard.Month{Year: 2026, Month: time.January}, forward.Month)
	assert.Equal(t, wizard.Month{Year: 2025, Month: time.December}, d.Month)

	back := forward.ChangeMonth(-1).ChangeMonth(-11)
	assert.Equal(t, wizard.Month{Year: 2025, Month: time.January}, back.Month)
	assert.Equal(t, wizard.Month{Year: 2024, Month: time.December}, back.ChangeMonth(-1).Month)
}

func TestDraft_ConfirmContact(t *testing.T) {
	b := builder.NewDraftBuilder()

	t.Run("invalid contact lists every failing field", func(t *testing.T) {
		d := b.BuildAt(wizard.StepContactInfo)

		got, err := d.ConfirmContact(wizard.ContactInput{Name: "A", Phone: "12345", Email: "a@b"})

		require.Error(t, err)
		assert.Equal(t, wizard.StepContactInfo, got.Step)
		assert.Nil(t, got.Contact)
		want := []string{wizard.FieldName, wizard.FieldPhone, wizard.FieldEmail}
		var fields []string
		for _, f := range got.FieldErrors {
			fields = append(fields, f.Field)
		}
		assert.Equal(t, want, fields)
	})

	t.Run("valid contact enters confirmation", func(t *testing.T) {
		d := b.BuildAt(wizard.StepContactInfo)

		got, err := d.ConfirmContact(wizard.ContactInput{Name: "Al", Phone: "123-45-678"})

		require.NoError(t, err)
		assert.Equal(t, wizard.StepConfirmation, got.Step)
		assert.Empty(t, got.FieldErrors)
	})

	t.Run("rejected contact returns to the contact step", func(t *testing.T) {
		d := b.BuildAt(wizard.StepConfirmation)

		got := d.RejectContact(wizard.FieldError{Field: wizard.FieldPhone, Message: "blocked"})

		assert.Equal(t, wizard.StepContactInfo, got.Step)
		assert.Nil(t, got.Contact)
		assert.Len(t, got.FieldErrors, 1)
	})
}

func TestDraft_Submit(t *testing.T) {
	b := builder.NewDraftBuilder()

	t.Run("submission carries the single payload", func(t *testing.T) {
		d := b.BuildAt(wizard.StepConfirmation)

		got, err := d.Submission()

		require.NoError(t, err)
		want := wizard.Submission{
			ServiceID:     1,
			BarberID:      3,
			Date:          "2025-11-22",
			Time:          "14:00",
			CustomerName:  "Giorgi Giorgadze",
			CustomerPhone: "599-123-456",
			CustomerEmail: "giorgi@example.com",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("submission mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("second submit while in flight is rejected", func(t *testing.T) {
		d := b.BuildAt(wizard.StepConfirmation)

		inFlight, err := d.BeginSubmit()
		require.NoError(t, err)
		assert.True(t, inFlight.Submitting)

		_, err = inFlight.BeginSubmit()
		assert.ErrorIs(t, err, wizard.ErrSubmissionInProgress)

		_, err = inFlight.GoToStep(wizard.StepServiceSelect)
		assert.ErrorIs(t, err, wizard.ErrSubmissionInProgress)
	})

	t.Run("failure re-enables and keeps the entered data", func(t *testing.T) {
		d := b.BuildAt(wizard.StepConfirmation)
		inFlight, err := d.BeginSubmit()
		require.NoError(t, err)

		failed := inFlight.SubmitFailed("slot already taken", nil)

		assert.False(t, failed.Submitting)
		assert.Equal(t, "slot already taken", failed.LastError)
		opts := cmpopts.IgnoreFields(wizard.Draft{}, "LastError")
		if diff := cmp.Diff(d, failed, opts); diff != "" {
			t.Errorf("draft changed after failed submit (-want +got):\n%s", diff)
		}

		_, err = failed.BeginSubmit()
		assert.NoError(t, err)
	})

	t.Run("submit outside confirmation step is rejected", func(t *testing.T) {
		d := b.BuildAt(wizard.StepContactInfo)

		_, err := d.BeginSubmit()

		assert.ErrorIs(t, err, wizard.ErrStepGuard)
	})
}
