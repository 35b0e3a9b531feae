package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Appointment é o formato de leitura: instante combinado mais data/hora
// já convertidas para o fuso do salão.
type Appointment struct {
	ID          string    `json:"id"`
	ClientID    *string   `json:"client_id"`
	ClientName  string    `json:"client_name"`
	ClientPhone *string   `json:"client_phone"`
	StartsAt    Instant   `json:"starts_at"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	Services    []Service `json:"services"`
}

func FromAppointment(ap models.Appointment, loc *time.Location) Appointment {
	local := ap.StartsAt.In(loc)

	out := Appointment{
		ID:         ap.ID,
		ClientID:   ap.ClientID,
		ClientName: ap.ClientName,
		StartsAt:   Instant{Time: local},
		Date:       local.Format(timezone.DateLayout),
		Time:       local.Format(timezone.TimeLayout),
		Status:     ap.Status,
		Notes:      ap.Notes,
		Services:   FromServices(ap.Services()),
	}

	if ap.Client != nil && ap.Client.Phone != "" {
		phone := ap.Client.Phone
		out.ClientPhone = &phone
	}

	return out
}

func FromAppointments(in []models.Appointment, loc *time.Location) []Appointment {
	out := make([]Appointment, 0, len(in))
	for _, ap := range in {
		out = append(out, FromAppointment(ap, loc))
	}
	return out
}
