package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appointmentsJSON = `[
  {"id":"a1","client_name":"Maria","client_phone":"11987654321","starts_at":"2026-01-31T12:00:00Z","status":"pending",
   "services":[{"id":"s1","name":"Corte","price":80,"duration_min":60}]},
  {"id":"a2","client_name":"Ana","starts_at":"2026-01-31T15:00:00Z","status":"cancelled",
   "services":[{"id":"s1","name":"Corte","price":80,"duration_min":60}]}
]`

func fakeAPI(t *testing.T, confirmStatus int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/appointments":
			_, _ = w.Write([]byte(appointmentsJSON))
		case "/api/services":
			_, _ = w.Write([]byte(`[{"id":"s1","name":"Corte","price":80,"duration_min":60}]`))
		case "/api/clients":
			_, _ = w.Write([]byte(`[]`))
		case "/api/appointments/a1/confirm":
			w.WriteHeader(confirmStatus)
			_, _ = w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_PrintsAgenda(t *testing.T) {
	srv := fakeAPI(t, http.StatusOK)

	var out bytes.Buffer
	err := run(context.Background(), options{
		api:    srv.URL,
		date:   "2026-01-31",
		status: "all",
		tz:     "America/Sao_Paulo",
	}, &out)
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "2026-01-31  total 2  pendentes 1  confirmados 0  cancelados 1")
	assert.Contains(t, s, "09:00")
	assert.Contains(t, s, "https://wa.me/5511987654321")
}

func TestRun_ConfirmUpdatesRevenue(t *testing.T) {
	srv := fakeAPI(t, http.StatusOK)

	var out bytes.Buffer
	err := run(context.Background(), options{
		api:     srv.URL,
		date:    "2026-01-31",
		status:  "confirmed",
		tz:      "America/Sao_Paulo",
		confirm: "a1",
	}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "receita R$ 80.00")
}

func TestRun_ConfirmRejected(t *testing.T) {
	srv := fakeAPI(t, http.StatusOK)

	err := run(context.Background(), options{
		api:     srv.URL,
		date:    "2026-01-31",
		status:  "all",
		tz:      "America/Sao_Paulo",
		confirm: "a2",
	}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRun_InvalidFilter(t *testing.T) {
	err := run(context.Background(), options{api: "http://127.0.0.1:0", status: "done"}, &bytes.Buffer{})
	assert.Error(t, err)
}
