package schedule

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Day é uma data de calendário, sem hora nem fuso.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(timezone.DateLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return DayOf(t, time.UTC), nil
}

// DayOf devolve o dia de calendário de t visto no fuso loc.
func DayOf(t time.Time, loc *time.Location) Day {
	t = t.In(loc)
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Start é a meia-noite do dia em loc.
func (d Day) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// appointmentDay resolve o dia de um agendamento. O instante tem prioridade;
// sem ele, vale o campo date. ok=false quando nenhum dos dois serve.
func appointmentDay(ap dto.Appointment, loc *time.Location) (Day, bool) {
	if !ap.StartsAt.IsZero() {
		return DayOf(ap.StartsAt.Time, loc), true
	}
	if ap.Date == "" {
		return Day{}, false
	}
	d, err := ParseDay(ap.Date)
	if err != nil {
		return Day{}, false
	}
	return d, true
}

// ForDay filtra os agendamentos do dia, preservando a ordem de entrada.
// Registros sem data legível ficam de fora.
func ForDay(list []dto.Appointment, day Day, loc *time.Location) []dto.Appointment {
	out := make([]dto.Appointment, 0)
	for _, ap := range list {
		d, ok := appointmentDay(ap, loc)
		if !ok {
			log.Debug().Str("appointment_id", ap.ID).Msg("appointment without readable date skipped")
			continue
		}
		if d != day {
			continue
		}
		out = append(out, ap)
	}
	return out
}

// JoinDateTime monta o instante a partir de "YYYY-MM-DD" e "HH:MM" em loc.
func JoinDateTime(date, hm string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(timezone.DateTimeLayout, date+" "+hm, loc)
}

// SplitInstant é o inverso de JoinDateTime.
func SplitInstant(t time.Time, loc *time.Location) (date string, hm string) {
	t = t.In(loc)
	return t.Format(timezone.DateLayout), t.Format(timezone.TimeLayout)
}
