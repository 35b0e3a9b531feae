package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type Memory struct {
	c *gocache.Cache
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{c: gocache.New(ttl, 2*ttl)}
}

func (m *Memory) GetServices(ctx context.Context) ([]dto.Service, bool) {
	v, ok := m.c.Get(servicesKey)
	if !ok {
		return nil, false
	}
	list, ok := v.([]dto.Service)
	if !ok {
		return nil, false
	}
	return append([]dto.Service(nil), list...), true
}

func (m *Memory) SetServices(ctx context.Context, services []dto.Service) {
	m.c.SetDefault(servicesKey, append([]dto.Service(nil), services...))
}

func (m *Memory) Invalidate(ctx context.Context) {
	m.c.Delete(servicesKey)
}
