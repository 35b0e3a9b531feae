package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

// Store é o contrato com o armazenamento durável (a API REST).
type Store interface {
	ListClients(ctx context.Context) ([]dto.Client, error)
	ListServices(ctx context.Context) ([]dto.Service, error)
	ListAppointments(ctx context.Context) ([]dto.Appointment, error)
	CreateAppointment(ctx context.Context, draft appointment.Draft) (*dto.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, draft appointment.Draft) (*dto.Appointment, error)
	SetStatus(ctx context.Context, id string, status appointment.Status) error
}

var (
	ErrTransitionFailed   = errors.New("status transition failed")
	ErrTransitionPending  = errors.New("status transition already in flight")
	ErrUnknownAppointment = errors.New("appointment not loaded")
)

// TransitionError indica que a gravação falhou e o estado local foi revertido.
// Pode ser repetida.
type TransitionError struct {
	ID   string
	From appointment.Status
	To   appointment.Status
	Err  error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("set %s from %s to %s: %v", e.ID, e.From, e.To, e.Err)
}

func (e *TransitionError) Unwrap() error { return e.Err }

func (e *TransitionError) Is(target error) bool { return target == ErrTransitionFailed }

// Board guarda as três listas carregadas da API durante a vida de uma tela.
// Listas ainda não carregadas se comportam como vazias.
type Board struct {
	store Store
	loc   *time.Location

	mu           sync.RWMutex
	clients      []dto.Client
	services     []dto.Service
	appointments []dto.Appointment
	inFlight     map[string]appointment.Status // id -> status anterior
}

func NewBoard(store Store, loc *time.Location) *Board {
	return &Board{
		store:    store,
		loc:      loc,
		inFlight: make(map[string]appointment.Status),
	}
}

// Load busca as três listas em paralelo. Cada lista que chega é aplicada
// mesmo que outra falhe; o erro devolvido junta as falhas.
func (b *Board) Load(ctx context.Context) error {
	var (
		wg                          sync.WaitGroup
		errClients, errSvc, errApps error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		list, err := b.store.ListClients(ctx)
		if err != nil {
			errClients = fmt.Errorf("load clients: %w", err)
			return
		}
		b.mu.Lock()
		b.clients = list
		b.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		list, err := b.store.ListServices(ctx)
		if err != nil {
			errSvc = fmt.Errorf("load services: %w", err)
			return
		}
		b.mu.Lock()
		b.services = list
		b.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		list, err := b.store.ListAppointments(ctx)
		if err != nil {
			errApps = fmt.Errorf("load appointments: %w", err)
			return
		}
		b.mu.Lock()
		b.appointments = list
		b.mu.Unlock()
	}()
	wg.Wait()

	return errors.Join(errClients, errSvc, errApps)
}

func (b *Board) Clients() []dto.Client {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]dto.Client(nil), b.clients...)
}

func (b *Board) Services() []dto.Service {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]dto.Service(nil), b.services...)
}

func (b *Board) Appointments() []dto.Appointment {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]dto.Appointment(nil), b.appointments...)
}

func (b *Board) Catalog() Catalog {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return NewCatalog(b.services)
}

func (b *Board) Day(day Day) []dto.Appointment {
	return ForDay(b.Appointments(), day, b.loc)
}

func (b *Board) Agenda(day Day, filter string) dto.Agenda {
	return BuildAgenda(b.Appointments(), b.Catalog(), day, b.loc, filter)
}

// Save cria (id vazio) ou edita um agendamento. O rascunho é validado antes
// de qualquer chamada de rede.
func (b *Board) Save(ctx context.Context, id string, draft appointment.Draft) (*dto.Appointment, error) {
	if err := appointment.ValidateDraft(draft); err != nil {
		return nil, err
	}

	var (
		saved *dto.Appointment
		err   error
	)
	if id == "" {
		saved, err = b.store.CreateAppointment(ctx, draft)
	} else {
		saved, err = b.store.UpdateAppointment(ctx, id, draft)
	}
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if i := b.indexOf(saved.ID); i >= 0 {
		b.appointments[i] = *saved
	} else {
		b.appointments = append(b.appointments, *saved)
	}
	// data e hora podem ter mudado: a lista volta a ficar em ordem crescente
	sort.SliceStable(b.appointments, func(i, j int) bool {
		return startsBefore(b.appointments[i], b.appointments[j], b.loc)
	})
	return saved, nil
}

// startsBefore ordena pelo início do agendamento. Registros sem data
// legível vão para o fim.
func startsBefore(a, c dto.Appointment, loc *time.Location) bool {
	ta, okA := startOf(a, loc)
	tc, okC := startOf(c, loc)
	switch {
	case okA && okC:
		return ta.Before(tc)
	default:
		return okA && !okC
	}
}

func startOf(ap dto.Appointment, loc *time.Location) (time.Time, bool) {
	if !ap.StartsAt.IsZero() {
		return ap.StartsAt.Time, true
	}
	t, err := JoinDateTime(ap.Date, ap.Time, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Transition aplica o novo status na hora e grava em segundo plano.
// O canal recebe no máximo um erro e é fechado ao fim da gravação. Em caso
// de falha o status anterior volta e o erro é um *TransitionError.
func (b *Board) Transition(ctx context.Context, id string, target appointment.Status) <-chan error {
	done := make(chan error, 1)

	b.mu.Lock()
	idx := b.indexOf(id)
	if idx < 0 {
		b.mu.Unlock()
		done <- ErrUnknownAppointment
		close(done)
		return done
	}
	if _, busy := b.inFlight[id]; busy {
		b.mu.Unlock()
		done <- ErrTransitionPending
		close(done)
		return done
	}

	from := appointment.Status(b.appointments[idx].Status)
	next, err := appointment.Next(from, target)
	if err != nil || next == from {
		b.mu.Unlock()
		if err != nil {
			done <- err
		}
		close(done)
		return done
	}

	b.appointments[idx].Status = string(next)
	b.inFlight[id] = from
	b.mu.Unlock()

	go func() {
		defer close(done)

		err := b.store.SetStatus(ctx, id, target)

		b.mu.Lock()
		delete(b.inFlight, id)
		if err != nil {
			if i := b.indexOf(id); i >= 0 && b.appointments[i].Status == string(next) {
				b.appointments[i].Status = string(from)
			}
		}
		b.mu.Unlock()

		if err != nil {
			done <- &TransitionError{ID: id, From: from, To: next, Err: err}
		}
	}()

	return done
}

// Pending informa se há gravação de status em andamento para id.
func (b *Board) Pending(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.inFlight[id]
	return ok
}

func (b *Board) indexOf(id string) int {
	for i := range b.appointments {
		if b.appointments[i].ID == id {
			return i
		}
	}
	return -1
}
