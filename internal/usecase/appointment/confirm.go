package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
)

type ConfirmAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	loc     *time.Location
}

func NewConfirmAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	loc *time.Location,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:    repo,
		audit:   audit,
		metrics: m,
		loc:     loc,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	id string,
) (*dto.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := domain.Status(ap.Status)
	changed, err := domain.Confirm(ap)
	if err != nil {
		return nil, err
	}

	if changed {
		if err := uc.repo.UpdateStatus(ctx, id, previous, domain.StatusConfirmed); err != nil {
			return nil, err
		}
		uc.metrics.StatusTransitions.WithLabelValues(string(domain.StatusConfirmed)).Inc()

		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_confirmed",
			Entity:   "appointment",
			EntityID: id,
		})
	}

	out := dto.FromAppointment(*ap, uc.loc)
	return &out, nil
}
