// Package cache guarda a lista de serviços entre requisições.
package cache

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

const servicesKey = "catalog:services"

// Catalog é o cache da lista de serviços. Falhas do cache nunca quebram a
// leitura: quem chama trata miss e erro do mesmo jeito.
type Catalog interface {
	GetServices(ctx context.Context) ([]dto.Service, bool)
	SetServices(ctx context.Context, services []dto.Service)
	Invalidate(ctx context.Context)
}
