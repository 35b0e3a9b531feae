package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/schedule"
)

// GetAgenda monta a visão de um dia do salão.
type GetAgenda struct {
	repo domain.Repository
	loc  *time.Location
}

func NewGetAgenda(
	repo domain.Repository,
	loc *time.Location,
) *GetAgenda {
	return &GetAgenda{
		repo: repo,
		loc:  loc,
	}
}

func (uc *GetAgenda) Execute(
	ctx context.Context,
	date string,
	filter string,
) (*dto.Agenda, error) {

	day, err := schedule.ParseDay(date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !schedule.ValidFilter(filter) {
		return nil, httperr.ErrBusiness("invalid_filter")
	}

	start := day.Start(uc.loc)
	end := start.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	// serviços já vêm do cadastro atual via preload
	agenda := schedule.BuildAgenda(
		dto.FromAppointments(appointments, uc.loc),
		nil,
		day,
		uc.loc,
		filter,
	)
	return &agenda, nil
}
