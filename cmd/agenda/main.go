// agenda imprime o dia do salão a partir da API e permite confirmar ou
// cancelar agendamentos.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-scheduler/internal/apiclient"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/logging"
	"github.com/BruksfildServices01/salon-scheduler/internal/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type options struct {
	api      string
	date     string
	status   string
	tz       string
	confirm  string
	cancel   string
	logLevel string
}

func main() {
	var opts options
	flag.StringVar(&opts.api, "api", envOr("SALON_API_URL", "http://localhost:3001"), "API base URL")
	flag.StringVar(&opts.date, "date", "", "day to show (YYYY-MM-DD, default today)")
	flag.StringVar(&opts.status, "status", schedule.FilterAll, "status filter: all, pending, confirmed, cancelled")
	flag.StringVar(&opts.tz, "tz", envOr("SALON_TIMEZONE", timezone.DefaultTimezone), "salon time zone")
	flag.StringVar(&opts.confirm, "confirm", "", "appointment id to confirm")
	flag.StringVar(&opts.cancel, "cancel", "", "appointment id to cancel")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "log level")
	flag.Parse()

	logging.SetupWriter(os.Stderr, opts.logLevel, true)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, opts, os.Stdout); err != nil {
		log.Error().Err(err).Msg("agenda failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	loc := timezone.Location(opts.tz)

	day := schedule.DayOf(time.Now(), loc)
	if opts.date != "" {
		d, err := schedule.ParseDay(opts.date)
		if err != nil {
			return err
		}
		day = d
	}
	if !schedule.ValidFilter(opts.status) {
		return fmt.Errorf("invalid status filter %q", opts.status)
	}

	board := schedule.NewBoard(apiclient.New(opts.api), loc)
	if err := board.Load(ctx); err != nil {
		// listas que chegaram continuam valendo
		log.Warn().Err(err).Msg("partial load")
	}

	if opts.confirm != "" {
		if err := transition(ctx, board, opts.confirm, appointment.StatusConfirmed); err != nil {
			return err
		}
	}
	if opts.cancel != "" {
		if err := transition(ctx, board, opts.cancel, appointment.StatusCancelled); err != nil {
			return err
		}
	}

	printAgenda(out, board.Agenda(day, opts.status))
	return nil
}

// transition repete a gravação enquanto o erro for de gravação (revertida).
func transition(ctx context.Context, board *schedule.Board, id string, target appointment.Status) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3),
		ctx,
	)

	return backoff.RetryNotify(func() error {
		err := <-board.Transition(ctx, id, target)
		if err != nil && !errors.Is(err, schedule.ErrTransitionFailed) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, wait time.Duration) {
		log.Warn().Err(err).Dur("retry_in", wait).Str("appointment_id", id).Msg("status change failed")
	})
}

func printAgenda(out io.Writer, agenda dto.Agenda) {
	fmt.Fprintf(out, "%s  total %d  pendentes %d  confirmados %d  cancelados %d  receita R$ %.2f\n\n",
		agenda.Date,
		agenda.Counts.Total,
		agenda.Counts.Pending,
		agenda.Counts.Confirmed,
		agenda.Counts.Cancelled,
		agenda.ConfirmedRevenue,
	)

	if len(agenda.Entries) == 0 {
		fmt.Fprintln(out, "Nenhum agendamento.")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HORA\tCLIENTE\tSERVIÇOS\tMIN\tVALOR\tSTATUS\tID")
	for _, e := range agenda.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f\t%s\t%s\n",
			e.Time,
			e.ClientName,
			strings.Join(e.ServiceNames, ", "),
			e.TotalDuration,
			e.TotalPrice,
			e.Status,
			e.ID,
		)
	}
	_ = tw.Flush()

	for _, e := range agenda.Entries {
		if e.WhatsAppLink != "" {
			fmt.Fprintf(out, "\n%s: %s", e.ClientName, e.WhatsAppLink)
		}
	}
	fmt.Fprintln(out)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
