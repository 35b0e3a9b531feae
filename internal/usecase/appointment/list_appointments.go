package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointments) Execute(ctx context.Context) ([]dto.Appointment, error) {
	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromAppointments(appointments, uc.loc), nil
}
