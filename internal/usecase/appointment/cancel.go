package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
)

type CancelAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	loc     *time.Location
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	loc *time.Location,
) *CancelAppointment {
	return &CancelAppointment{
		repo:    repo,
		audit:   audit,
		metrics: m,
		loc:     loc,
	}
}

// Execute cancela o agendamento. Cancelar de novo não grava nada. Se o
// status mudou entre a leitura e a escrita, relê uma vez e tenta de novo.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id string,
) (*dto.Appointment, error) {

	for attempt := 0; ; attempt++ {
		ap, err := uc.repo.GetAppointment(ctx, id)
		if err != nil {
			return nil, err
		}

		previous := ap.Status
		changed, err := domain.Cancel(ap)
		if err != nil {
			return nil, err
		}

		if changed {
			err := uc.repo.UpdateStatus(ctx, id, domain.Status(previous), domain.StatusCancelled)
			if attempt == 0 && httperr.IsBusiness(err, "invalid_state") {
				continue
			}
			if err != nil {
				return nil, err
			}
			uc.metrics.StatusTransitions.WithLabelValues(string(domain.StatusCancelled)).Inc()

			uc.audit.Dispatch(audit.Event{
				Action:   "appointment_cancelled",
				Entity:   "appointment",
				EntityID: id,
				Metadata: map[string]any{"from": previous},
			})
		}

		out := dto.FromAppointment(*ap, uc.loc)
		return &out, nil
	}
}
