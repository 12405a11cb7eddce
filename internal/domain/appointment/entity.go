package appointment

import (
	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment) error {
	return ChangeStatus(ap, StatusCanceled)
}

func ChangeStatus(ap *models.Appointment, to Status) error {
	if !ValidStatus(to) {
		return apperr.Validation("invalid_status", "unknown appointment status")
	}

	from := Status(ap.Status)
	if from == to {
		return nil
	}

	if !CanTransition(from, to) {
		return apperr.Conflict(
			"invalid_status_transition",
			"appointment cannot move from "+string(from)+" to "+string(to),
		)
	}

	ap.Status = string(to)
	return nil
}
