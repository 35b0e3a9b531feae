package audit

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
)

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Dispatcher struct {
	logger  *Logger
	metrics *metrics.Metrics
	queue   chan Event

	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
	done      chan struct{}
}

func NewDispatcher(logger *Logger, m *metrics.Metrics) *Dispatcher {
	d := &Dispatcher{
		logger:  logger,
		metrics: m,
		queue:   make(chan Event, 100),
		done:    make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Error().Err(err).Str("action", ev.Action).Msg("audit error")
		}
	}
}

// Dispatch nunca bloqueia a API: com a fila cheia o evento é descartado.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.metrics.AuditDropped.Inc()
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close esvazia a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
	})
	<-d.done
}
