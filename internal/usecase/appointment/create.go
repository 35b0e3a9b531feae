package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in domain.Draft,
) (*dto.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Formulário, cliente e serviços
	// --------------------------------------------------
	draft, err := resolveDraft(ctx, uc.repo, uc.loc, in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Criação (sempre pendente)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:   draft.ClientID,
		ClientName: strings.TrimSpace(in.ClientName),
		StartsAt:   draft.StartsAt,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap, draft.ServiceIDs); err != nil {
		return nil, err
	}

	created, err := uc.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"services": draft.ServiceIDs},
	})

	out := dto.FromAppointment(*created, uc.loc)
	return &out, nil
}
