package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// Execute regrava os campos e substitui o conjunto de serviços inteiro.
// O status não muda na edição.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id string,
	in domain.Draft,
) (*dto.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	draft, err := resolveDraft(ctx, uc.repo, uc.loc, in)
	if err != nil {
		return nil, err
	}

	ap.ClientID = draft.ClientID
	ap.ClientName = strings.TrimSpace(in.ClientName)
	ap.StartsAt = draft.StartsAt
	ap.Notes = in.Notes
	ap.Client = nil
	ap.Items = nil

	if err := uc.repo.ReplaceAppointment(ctx, ap, draft.ServiceIDs); err != nil {
		return nil, err
	}

	updated, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: id,
		Metadata: map[string]any{"services": draft.ServiceIDs},
	})

	out := dto.FromAppointment(*updated, uc.loc)
	return &out, nil
}
