// Package reminder monta, todo dia, os links de confirmação por WhatsApp
// dos agendamentos do dia.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/schedule"
)

type Source interface {
	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}

type Reminder struct {
	AppointmentID string
	ClientName    string
	Time          string
	Link          string
}

type Job struct {
	src Source
	loc *time.Location
	now func() time.Time
}

func NewJob(src Source, loc *time.Location) *Job {
	return &Job{
		src: src,
		loc: loc,
		now: time.Now,
	}
}

// Run devolve os lembretes do dia corrente: agendamentos não cancelados
// com telefone.
func (j *Job) Run(ctx context.Context) ([]Reminder, error) {
	day := schedule.DayOf(j.now(), j.loc)
	start := day.Start(j.loc)

	appointments, err := j.src.ListAppointmentsForPeriod(ctx, start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list appointments for %s: %w", day, err)
	}

	agenda := schedule.BuildAgenda(
		dto.FromAppointments(appointments, j.loc),
		nil,
		day,
		j.loc,
		schedule.FilterAll,
	)

	out := make([]Reminder, 0, len(agenda.Entries))
	for _, e := range agenda.Entries {
		if e.WhatsAppLink == "" {
			continue
		}
		out = append(out, Reminder{
			AppointmentID: e.ID,
			ClientName:    e.ClientName,
			Time:          e.Time,
			Link:          e.WhatsAppLink,
		})
	}
	return out, nil
}

// Start agenda o job com a expressão cron informada, no fuso do salão.
// O chamador encerra com Stop.
func Start(expr string, job *Job) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(job.loc))

	_, err := c.AddFunc(expr, func() {
		reminders, err := job.Run(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("reminder job failed")
			return
		}

		log.Info().Int("count", len(reminders)).Msg("reminders ready")
		for _, r := range reminders {
			log.Info().
				Str("appointment_id", r.AppointmentID).
				Str("client", r.ClientName).
				Str("time", r.Time).
				Str("link", r.Link).
				Msg("reminder")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule reminders %q: %w", expr, err)
	}

	c.Start()
	return c, nil
}
