package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanConfirm: só pendente vira confirmado
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: qualquer estado, exceto cancelado
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

// Next resolve o estado resultante de pedir a transição para target.
// Cancelar algo já cancelado devolve o próprio estado, sem erro.
func Next(current, target Status) (Status, error) {
	switch target {
	case StatusConfirmed:
		if err := CanConfirm(current); err != nil {
			return current, err
		}
		return StatusConfirmed, nil
	case StatusCancelled:
		if current == StatusCancelled {
			return current, nil
		}
		if err := CanCancel(current); err != nil {
			return current, err
		}
		return StatusCancelled, nil
	}
	return current, httperr.ErrBusiness("invalid_status")
}

func CanTransition(current, target Status) bool {
	_, err := Next(current, target)
	return err == nil
}
