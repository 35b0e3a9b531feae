package appointment

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Confirm devolve changed=false quando nada precisa ser gravado.
func Confirm(ap *models.Appointment) (changed bool, err error) {
	return apply(ap, StatusConfirmed)
}

func Cancel(ap *models.Appointment) (changed bool, err error) {
	return apply(ap, StatusCancelled)
}

func apply(ap *models.Appointment, target Status) (bool, error) {
	current := Status(ap.Status)
	next, err := Next(current, target)
	if err != nil {
		return false, err
	}
	if next == current {
		return false, nil
	}
	ap.Status = string(next)
	return true, nil
}
