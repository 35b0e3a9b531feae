package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ServiceRepository interface {
	List(ctx context.Context) ([]models.Service, error)
	Get(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id string) error
}

type ServiceInput struct {
	Name        string
	Price       float64
	DurationMin int
	Description string
}

func (in ServiceInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return httperr.ErrBusiness("missing_name")
	}
	if in.Price < 0 {
		return httperr.ErrBusiness("invalid_price")
	}
	if in.DurationMin <= 0 {
		return httperr.ErrBusiness("invalid_duration")
	}
	return nil
}

// Services é o catálogo de serviços do salão. A listagem passa pelo cache;
// toda escrita invalida o cache.
type Services struct {
	repo    ServiceRepository
	cache   cache.Catalog
	audit   *audit.Dispatcher
	metrics *metrics.Metrics

	// gen muda a cada escrita; uma listagem lida antes de uma escrita não
	// volta para o cache
	mu  sync.Mutex
	gen uint64
}

func NewServices(
	repo ServiceRepository,
	c cache.Catalog,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
) *Services {
	return &Services{
		repo:    repo,
		cache:   c,
		audit:   audit,
		metrics: m,
	}
}

func (uc *Services) List(ctx context.Context) ([]dto.Service, error) {
	if services, ok := uc.cache.GetServices(ctx); ok {
		uc.metrics.CatalogCache.WithLabelValues("hit").Inc()
		return services, nil
	}
	uc.metrics.CatalogCache.WithLabelValues("miss").Inc()

	uc.mu.Lock()
	gen := uc.gen
	uc.mu.Unlock()

	services, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := dto.FromServices(services)

	uc.mu.Lock()
	if gen == uc.gen {
		uc.cache.SetServices(ctx, out)
	}
	uc.mu.Unlock()
	return out, nil
}

func (uc *Services) Create(ctx context.Context, in ServiceInput) (*dto.Service, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	service := &models.Service{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		DurationMin: in.DurationMin,
		Description: in.Description,
	}
	if err := uc.repo.Create(ctx, service); err != nil {
		return nil, err
	}

	uc.written(ctx, "service_created", service.ID)
	out := dto.FromService(*service)
	return &out, nil
}

func (uc *Services) Update(ctx context.Context, id string, in ServiceInput) (*dto.Service, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	service, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	service.Name = strings.TrimSpace(in.Name)
	service.Price = in.Price
	service.DurationMin = in.DurationMin
	service.Description = in.Description

	if err := uc.repo.Update(ctx, service); err != nil {
		return nil, err
	}

	uc.written(ctx, "service_updated", service.ID)
	out := dto.FromService(*service)
	return &out, nil
}

func (uc *Services) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.written(ctx, "service_deleted", id)
	return nil
}

func (uc *Services) written(ctx context.Context, action, id string) {
	uc.mu.Lock()
	uc.gen++
	uc.cache.Invalidate(ctx)
	uc.mu.Unlock()

	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "service",
		EntityID: id,
	})
}
