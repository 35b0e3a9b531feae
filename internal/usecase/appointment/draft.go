package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/schedule"
)

type resolvedDraft struct {
	StartsAt   time.Time
	ServiceIDs []string
	ClientID   *string
}

// resolveDraft valida o formulário e confere cliente e serviços no banco.
func resolveDraft(
	ctx context.Context,
	repo domain.Repository,
	loc *time.Location,
	in domain.Draft,
) (*resolvedDraft, error) {

	if err := domain.ValidateDraft(in); err != nil {
		return nil, err
	}

	start, err := schedule.JoinDateTime(in.Date, in.Time, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	ids := domain.NormalizeServiceIDs(in.ServiceIDs)
	services, err := repo.FindServices(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(services) != len(ids) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	var clientID *string
	if in.ClientID != nil && *in.ClientID != "" {
		client, err := repo.GetClient(ctx, *in.ClientID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrBusiness("client_not_found")
			}
			return nil, err
		}
		clientID = &client.ID
	}

	return &resolvedDraft{
		StartsAt:   start,
		ServiceIDs: ids,
		ClientID:   clientID,
	}, nil
}
