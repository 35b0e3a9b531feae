// Package apiclient fala com a API do salão por HTTP e implementa o
// schedule.Store usado pelo Board.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/schedule"
)

// Error é uma resposta não-2xx da API.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Code)
}

// IsCode informa se err é um *Error com o código dado.
func IsCode(err error, code string) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithReadRetry define por quanto tempo leituras são repetidas em falha de
// rede ou 5xx. Zero desliga.
func WithReadRetry(maxElapsed time.Duration) Option {
	return func(c *Client) { c.readRetry = maxElapsed }
}

type Client struct {
	base      string
	http      *http.Client
	readRetry time.Duration
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base:      strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: 10 * time.Second},
		readRetry: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ======================================================
// CLIENTS
// ======================================================

type ClientInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (c *Client) ListClients(ctx context.Context) ([]dto.Client, error) {
	return c.SearchClients(ctx, "")
}

func (c *Client) SearchClients(ctx context.Context, query string) ([]dto.Client, error) {
	path := "/api/clients"
	if query != "" {
		path += "?" + url.Values{"query": {query}}.Encode()
	}
	var out []dto.Client
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateClient(ctx context.Context, in ClientInput) (*dto.Client, error) {
	var out dto.Client
	if err := c.do(ctx, http.MethodPost, "/api/clients", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateClient(ctx context.Context, id string, in ClientInput) (*dto.Client, error) {
	var out dto.Client
	if err := c.do(ctx, http.MethodPut, "/api/clients/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/clients/"+url.PathEscape(id), nil, nil)
}

// ======================================================
// SERVICES
// ======================================================

type ServiceInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Description string  `json:"description,omitempty"`
}

func (c *Client) ListServices(ctx context.Context) ([]dto.Service, error) {
	var out []dto.Service
	if err := c.get(ctx, "/api/services", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateService(ctx context.Context, in ServiceInput) (*dto.Service, error) {
	var out dto.Service
	if err := c.do(ctx, http.MethodPost, "/api/services", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, in ServiceInput) (*dto.Service, error) {
	var out dto.Service
	if err := c.do(ctx, http.MethodPut, "/api/services/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/services/"+url.PathEscape(id), nil, nil)
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (c *Client) ListAppointments(ctx context.Context) ([]dto.Appointment, error) {
	var out []dto.Appointment
	if err := c.get(ctx, "/api/appointments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAppointment(ctx context.Context, draft appointment.Draft) (*dto.Appointment, error) {
	var out dto.Appointment
	if err := c.do(ctx, http.MethodPost, "/api/appointments", draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id string, draft appointment.Draft) (*dto.Appointment, error) {
	var out dto.Appointment
	if err := c.do(ctx, http.MethodPut, "/api/appointments/"+url.PathEscape(id), draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetStatus só conhece os destinos confirmado e cancelado.
func (c *Client) SetStatus(ctx context.Context, id string, status appointment.Status) error {
	var action string
	switch status {
	case appointment.StatusConfirmed:
		action = "confirm"
	case appointment.StatusCancelled:
		action = "cancel"
	default:
		return fmt.Errorf("set status %q: unsupported target", status)
	}
	return c.do(ctx, http.MethodPut, "/api/appointments/"+url.PathEscape(id)+"/"+action, nil, nil)
}

func (c *Client) Agenda(ctx context.Context, date, filter string) (*dto.Agenda, error) {
	q := url.Values{"date": {date}}
	if filter != "" {
		q.Set("status", filter)
	}
	var out dto.Agenda
	if err := c.get(ctx, "/api/agenda?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Month(ctx context.Context, year, month int) (*dto.Month, error) {
	q := url.Values{
		"year":  {strconv.Itoa(year)},
		"month": {strconv.Itoa(month)},
	}
	var out dto.Month
	if err := c.get(ctx, "/api/appointments/month?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ======================================================
// TRANSPORT
// ======================================================

// get repete a leitura com backoff exponencial em falha de rede ou 5xx.
func (c *Client) get(ctx context.Context, path string, out any) error {
	if c.readRetry <= 0 {
		return c.do(ctx, http.MethodGet, path, nil, out)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxElapsedTime = c.readRetry

	return backoff.Retry(func() error {
		err := c.do(ctx, http.MethodGet, path, nil, out)
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status < 500 {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(b, ctx))
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// Compile-time check
var _ schedule.Store = (*Client)(nil)
