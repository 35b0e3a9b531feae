package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

// Redis compartilha o cache entre instâncias da API.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &Redis{client: redis.NewClient(opts), ttl: ttl}, nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) GetServices(ctx context.Context) ([]dto.Service, bool) {
	raw, err := r.client.Get(ctx, servicesKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("catalog cache get failed")
		}
		return nil, false
	}

	var list []dto.Service
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Warn().Err(err).Msg("catalog cache payload invalid")
		return nil, false
	}
	return list, true
}

func (r *Redis) SetServices(ctx context.Context, services []dto.Service) {
	raw, err := json.Marshal(services)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, servicesKey, raw, r.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("catalog cache set failed")
	}
}

func (r *Redis) Invalidate(ctx context.Context) {
	if err := r.client.Del(ctx, servicesKey).Err(); err != nil {
		log.Warn().Err(err).Msg("catalog cache invalidate failed")
	}
}
