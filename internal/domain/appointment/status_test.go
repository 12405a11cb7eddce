package appointment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/domain/appointment"
	"github.com/salonsuite/salon-scheduler/internal/models"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from appointment.Status
		to   appointment.Status
		want bool
	}{
		{appointment.StatusPending, appointment.StatusConfirmed, true},
		{appointment.StatusPending, appointment.StatusCanceled, true},
		{appointment.StatusPending, appointment.StatusCompleted, true},

		{appointment.StatusConfirmed, appointment.StatusCanceled, true},
		{appointment.StatusConfirmed, appointment.StatusCompleted, true},
		{appointment.StatusConfirmed, appointment.StatusPending, false},

		{appointment.StatusCanceled, appointment.StatusPending, false},
		{appointment.StatusCanceled, appointment.StatusConfirmed, false},
		{appointment.StatusCanceled, appointment.StatusCompleted, false},

		{appointment.StatusCompleted, appointment.StatusPending, false},
		{appointment.StatusCompleted, appointment.StatusConfirmed, false},
		{appointment.StatusCompleted, appointment.StatusCanceled, false},
	}

	for _, tc := range cases {
		got := appointment.CanTransition(tc.from, tc.to)
		assert.Equalf(t, tc.want, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestCancel(t *testing.T) {
	ap := &models.Appointment{Status: string(appointment.StatusPending)}

	err := appointment.Cancel(ap)
	assert.NoError(t, err)
	assert.Equal(t, string(appointment.StatusCanceled), ap.Status)

	// Canceled is terminal.
	err = appointment.ChangeStatus(ap, appointment.StatusConfirmed)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestChangeStatus_SameStatusIsNoop(t *testing.T) {
	ap := &models.Appointment{Status: string(appointment.StatusConfirmed)}

	err := appointment.ChangeStatus(ap, appointment.StatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, string(appointment.StatusConfirmed), ap.Status)
}

func TestChangeStatus_UnknownStatus(t *testing.T) {
	ap := &models.Appointment{Status: string(appointment.StatusPending)}

	err := appointment.ChangeStatus(ap, appointment.Status("archived"))
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
