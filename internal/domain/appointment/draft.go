package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Draft é o formulário de criação/edição de um agendamento.
type Draft struct {
	ClientID   *string  `json:"client_id"`
	ClientName string   `json:"client_name"`
	ServiceIDs []string `json:"service_ids"`
	Date       string   `json:"date"` // YYYY-MM-DD
	Time       string   `json:"time"` // HH:MM
	Notes      string   `json:"notes"`
}

// ValidateDraft barra o envio antes de qualquer escrita.
func ValidateDraft(d Draft) error {
	if strings.TrimSpace(d.ClientName) == "" {
		return httperr.ErrBusiness("missing_client_name")
	}
	if len(NormalizeServiceIDs(d.ServiceIDs)) == 0 {
		return httperr.ErrBusiness("missing_services")
	}
	if strings.TrimSpace(d.Time) == "" {
		return httperr.ErrBusiness("missing_time")
	}
	if strings.TrimSpace(d.Date) == "" {
		return httperr.ErrBusiness("missing_date")
	}
	if _, err := time.Parse(timezone.TimeLayout, d.Time); err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse(timezone.DateLayout, d.Date); err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	return nil
}

// NormalizeServiceIDs remove vazios e repetidos, mantendo a ordem de seleção.
func NormalizeServiceIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
