package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/db/dbtest"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validators.Register()

	db := dbtest.Open(t)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg, "salon")
	d := audit.NewDispatcher(audit.New(db), m)
	t.Cleanup(d.Close)

	r := gin.New()
	RegisterRoutes(r, Deps{
		DB:       db,
		Config:   &config.Config{},
		Location: time.FixedZone("BRT", -3*3600),
		Cache:    cache.NewMemory(time.Minute),
		Audit:    d,
		Metrics:  m,
		Gatherer: reg,
	})
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealthAndMetrics(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "salon_http_requests_total")
}

func TestAppointmentFlow(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/clients", gin.H{
		"name":  "Maria Silva",
		"phone": "11987654321",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	client := decode[dto.Client](t, w)

	w = do(t, r, http.MethodPost, "/api/services", gin.H{
		"name":         "Corte Feminino",
		"price":        "80",
		"duration_min": 60,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	service := decode[dto.Service](t, w)
	assert.Equal(t, dto.Amount(80), service.Price)

	w = do(t, r, http.MethodPost, "/api/appointments", gin.H{
		"client_id":   client.ID,
		"client_name": client.Name,
		"service_ids": []string{service.ID},
		"date":        "2026-01-31",
		"time":        "09:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.Appointment](t, w)
	assert.Equal(t, "pending", created.Status)

	w = do(t, r, http.MethodPut, "/api/appointments/"+created.ID+"/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "confirmed", decode[dto.Appointment](t, w).Status)

	w = do(t, r, http.MethodPut, "/api/appointments/"+created.ID+"/confirm", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "invalid_state", decode[httperr.HTTPError](t, w).Code)

	w = do(t, r, http.MethodGet, "/api/agenda?date=2026-01-31", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	agenda := decode[dto.Agenda](t, w)
	assert.Equal(t, 1, agenda.Counts.Confirmed)
	assert.InDelta(t, 80.0, agenda.ConfirmedRevenue, 0.001)
	require.Len(t, agenda.Entries, 1)
	assert.Contains(t, agenda.Entries[0].WhatsAppLink, "wa.me/5511987654321")

	w = do(t, r, http.MethodGet, "/api/appointments/month?year=2026&month=1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	month := decode[dto.Month](t, w)
	require.Len(t, month.Days, 31)
	assert.Equal(t, 1, month.Days[30].Counts.Total)

	w = do(t, r, http.MethodDelete, "/api/services/"+service.ID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "service_in_use", decode[httperr.HTTPError](t, w).Code)

	w = do(t, r, http.MethodDelete, "/api/clients/"+client.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/api/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]dto.Appointment](t, w)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].ClientID)
	assert.Equal(t, "Maria Silva", list[0].ClientName)
}

func TestAppointmentValidation(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/appointments", gin.H{
		"client_name": "Maria",
		"date":        "2026-01-31",
		"time":        "09:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_services", decode[httperr.HTTPError](t, w).Code)

	w = do(t, r, http.MethodPost, "/api/appointments", gin.H{
		"client_name": "Maria",
		"service_ids": []string{"x"},
		"date":        "31/01/2026",
		"time":        "09:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode[httperr.HTTPError](t, w).Code)

	w = do(t, r, http.MethodPut, "/api/appointments/ghost/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/agenda?date=2026-01-31&status=done", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_filter", decode[httperr.HTTPError](t, w).Code)
}

func TestClientSearch(t *testing.T) {
	r := newRouter(t)

	for _, name := range []string{"Joana Prado", "Ana Lima", "Beatriz Souza"} {
		w := do(t, r, http.MethodPost, "/api/clients", gin.H{"name": name})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := do(t, r, http.MethodGet, "/api/clients", nil)
	all := decode[[]dto.Client](t, w)
	require.Len(t, all, 3)
	assert.Equal(t, "Ana Lima", all[0].Name)

	w = do(t, r, http.MethodGet, "/api/clients?query=souza", nil)
	found := decode[[]dto.Client](t, w)
	require.Len(t, found, 1)
	assert.Equal(t, "Beatriz Souza", found[0].Name)

	w = do(t, r, http.MethodPost, "/api/clients", gin.H{"name": "X", "email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMonthQueryValidation(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{
		"/api/appointments/month",
		"/api/appointments/month?year=2026",
		"/api/appointments/month?year=abc&month=1",
	} {
		w := do(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "missing_year_or_month", decode[httperr.HTTPError](t, w).Code, path)
	}

	w := do(t, r, http.MethodGet, "/api/appointments/month?year=2026&month=13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_month", decode[httperr.HTTPError](t, w).Code)
}
