package schedule

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type fakeStore struct {
	mu sync.Mutex

	clients      []dto.Client
	services     []dto.Service
	appointments []dto.Appointment

	clientsErr error
	statusErr  error
	release    chan struct{}

	statusCalls []appointment.Status
	creates     int
}

func (f *fakeStore) ListClients(ctx context.Context) ([]dto.Client, error) {
	return f.clients, f.clientsErr
}

func (f *fakeStore) ListServices(ctx context.Context) ([]dto.Service, error) {
	return f.services, nil
}

func (f *fakeStore) ListAppointments(ctx context.Context) ([]dto.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeStore) CreateAppointment(ctx context.Context, d appointment.Draft) (*dto.Appointment, error) {
	f.mu.Lock()
	f.creates++
	f.mu.Unlock()
	return &dto.Appointment{ID: "new", ClientName: d.ClientName, Date: d.Date, Time: d.Time, Status: "pending"}, nil
}

func (f *fakeStore) UpdateAppointment(ctx context.Context, id string, d appointment.Draft) (*dto.Appointment, error) {
	return &dto.Appointment{ID: id, ClientName: d.ClientName, Date: d.Date, Time: d.Time, Status: "pending"}, nil
}

func (f *fakeStore) SetStatus(ctx context.Context, id string, status appointment.Status) error {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls = append(f.statusCalls, status)
	return f.statusErr
}

func loadedBoard(t *testing.T, store *fakeStore) *Board {
	t.Helper()
	b := NewBoard(store, brt)
	require.NoError(t, b.Load(context.Background()))
	return b
}

func statusOf(b *Board, id string) string {
	for _, ap := range b.Appointments() {
		if ap.ID == id {
			return ap.Status
		}
	}
	return ""
}

func TestBoard_NotLoadedIsEmpty(t *testing.T) {
	b := NewBoard(&fakeStore{}, brt)

	assert.Empty(t, b.Appointments())
	assert.Empty(t, b.Day(Day{Year: 2026, Month: time.January, Day: 31}))
	assert.Equal(t, 0.0, b.Agenda(Day{Year: 2026, Month: time.January, Day: 31}, "").ConfirmedRevenue)
}

func TestBoard_LoadKeepsPartialResults(t *testing.T) {
	store := &fakeStore{
		clientsErr:   errors.New("timeout"),
		services:     []dto.Service{svc("1", "Corte", 80, 60)},
		appointments: []dto.Appointment{{ID: "a", Status: "pending"}},
	}
	b := NewBoard(store, brt)

	err := b.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load clients")

	assert.Empty(t, b.Clients())
	assert.Len(t, b.Services(), 1)
	assert.Len(t, b.Appointments(), 1)
}

func TestBoard_TransitionOptimistic(t *testing.T) {
	store := &fakeStore{
		appointments: []dto.Appointment{{ID: "a", Status: "pending"}},
		release:      make(chan struct{}),
	}
	b := loadedBoard(t, store)

	done := b.Transition(context.Background(), "a", appointment.StatusConfirmed)

	// aplicado antes da gravação terminar
	assert.Equal(t, "confirmed", statusOf(b, "a"))
	assert.True(t, b.Pending("a"))

	close(store.release)
	assert.NoError(t, <-done)
	assert.False(t, b.Pending("a"))
	assert.Equal(t, "confirmed", statusOf(b, "a"))
}

func TestBoard_TransitionRollsBackOnFailure(t *testing.T) {
	store := &fakeStore{
		appointments: []dto.Appointment{{ID: "a", Status: "pending"}},
		statusErr:    errors.New("502 bad gateway"),
	}
	b := loadedBoard(t, store)

	err := <-b.Transition(context.Background(), "a", appointment.StatusCancelled)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransitionFailed)
	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, appointment.StatusPending, te.From)
	assert.Equal(t, "pending", statusOf(b, "a"))
	assert.False(t, b.Pending("a"))
}

func TestBoard_TransitionRejectedWithoutNetwork(t *testing.T) {
	store := &fakeStore{
		appointments: []dto.Appointment{{ID: "a", Status: "cancelled"}},
	}
	b := loadedBoard(t, store)

	err := <-b.Transition(context.Background(), "a", appointment.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	// cancelar de novo é no-op
	assert.NoError(t, <-b.Transition(context.Background(), "a", appointment.StatusCancelled))

	assert.Empty(t, store.statusCalls)
	assert.Equal(t, "cancelled", statusOf(b, "a"))
}

func TestBoard_TransitionWhileInFlight(t *testing.T) {
	store := &fakeStore{
		appointments: []dto.Appointment{{ID: "a", Status: "pending"}},
		release:      make(chan struct{}),
	}
	b := loadedBoard(t, store)

	first := b.Transition(context.Background(), "a", appointment.StatusConfirmed)
	second := <-b.Transition(context.Background(), "a", appointment.StatusCancelled)
	assert.ErrorIs(t, second, ErrTransitionPending)

	close(store.release)
	assert.NoError(t, <-first)
}

func TestBoard_TransitionUnknown(t *testing.T) {
	b := loadedBoard(t, &fakeStore{})
	assert.ErrorIs(t, <-b.Transition(context.Background(), "nope", appointment.StatusCancelled), ErrUnknownAppointment)
}

func TestBoard_SaveValidatesBeforeNetwork(t *testing.T) {
	store := &fakeStore{}
	b := loadedBoard(t, store)

	_, err := b.Save(context.Background(), "", appointment.Draft{ClientName: "Ana", Date: "2026-01-31", Time: "09:00"})
	assert.True(t, httperr.IsBusiness(err, "missing_services"))
	assert.Equal(t, 0, store.creates)

	saved, err := b.Save(context.Background(), "", appointment.Draft{
		ClientName: "Ana", ServiceIDs: []string{"1"}, Date: "2026-01-31", Time: "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", saved.ID)
	assert.Len(t, b.Appointments(), 1)

	_, err = b.Save(context.Background(), "new", appointment.Draft{
		ClientName: "Ana Maria", ServiceIDs: []string{"1"}, Date: "2026-01-31", Time: "10:00",
	})
	require.NoError(t, err)
	require.Len(t, b.Appointments(), 1)
	assert.Equal(t, "Ana Maria", b.Appointments()[0].ClientName)
}

func TestBoard_SaveKeepsDayAscending(t *testing.T) {
	store := &fakeStore{appointments: []dto.Appointment{
		{ID: "late", ClientName: "Bia", StartsAt: at(t, "2026-01-31T14:00:00-03:00"), Status: "pending"},
	}}
	b := loadedBoard(t, store)
	ctx := context.Background()
	day := Day{Year: 2026, Month: time.January, Day: 31}

	_, err := b.Save(ctx, "", appointment.Draft{
		ClientName: "Ana", ServiceIDs: []string{"1"}, Date: "2026-01-31", Time: "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "late"}, ids(b.Day(day)))

	// remarcado para depois do outro
	_, err = b.Save(ctx, "new", appointment.Draft{
		ClientName: "Ana", ServiceIDs: []string{"1"}, Date: "2026-01-31", Time: "15:30",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"late", "new"}, ids(b.Day(day)))
}

func TestStartsBefore_UnreadableLast(t *testing.T) {
	readable := dto.Appointment{ID: "a", Date: "2026-01-31", Time: "09:00"}
	broken := dto.Appointment{ID: "b", Date: "31/01", Time: "x"}

	assert.True(t, startsBefore(readable, broken, brt))
	assert.False(t, startsBefore(broken, readable, brt))
	assert.False(t, startsBefore(broken, broken, brt))
}
