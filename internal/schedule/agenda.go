package schedule

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

const FilterAll = "all"

// BuildAgenda monta a visão do dia. filter vazio ou "all" lista tudo;
// contagens e receita sempre consideram o dia inteiro.
func BuildAgenda(
	list []dto.Appointment,
	catalog Catalog,
	day Day,
	loc *time.Location,
	filter string,
) dto.Agenda {

	if filter == "" {
		filter = FilterAll
	}

	today := ForDay(list, day, loc)

	out := dto.Agenda{
		Date:             day.String(),
		Filter:           filter,
		Counts:           CountByStatus(today),
		ConfirmedRevenue: ConfirmedRevenue(today, catalog),
		Entries:          make([]dto.AgendaEntry, 0, len(today)),
	}

	for _, ap := range today {
		if filter != FilterAll && ap.Status != filter {
			continue
		}

		totals := TotalsOf(ap, catalog)
		entry := dto.AgendaEntry{
			Appointment:   ap,
			TotalPrice:    totals.TotalPrice,
			TotalDuration: totals.TotalDuration,
			ServiceNames:  totals.ServiceNames,
		}

		if ap.ClientPhone != nil && appointment.Status(ap.Status) != appointment.StatusCancelled {
			hm := ap.Time
			if !ap.StartsAt.IsZero() {
				_, hm = SplitInstant(ap.StartsAt.Time, loc)
			}
			entry.WhatsAppLink = WhatsAppLink(*ap.ClientPhone, ap.ClientName, hm)
		}

		out.Entries = append(out.Entries, entry)
	}

	return out
}

// ValidFilter aceita "", "all" ou um status conhecido.
func ValidFilter(filter string) bool {
	return filter == "" || filter == FilterAll || appointment.Status(filter).IsValid()
}

// MonthGrid conta agendamentos por dia para o mês inteiro.
func MonthGrid(list []dto.Appointment, year int, month time.Month, loc *time.Location) dto.Month {
	byDay := make(map[Day][]dto.Appointment)
	for _, ap := range list {
		d, ok := appointmentDay(ap, loc)
		if !ok || d.Year != year || d.Month != month {
			continue
		}
		byDay[d] = append(byDay[d], ap)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	out := dto.Month{Year: year, Month: int(month)}
	for cur := first; cur.Month() == month; cur = cur.AddDate(0, 0, 1) {
		d := DayOf(cur, loc)
		out.Days = append(out.Days, dto.MonthDay{
			Date:   d.String(),
			Counts: CountByStatus(byDay[d]),
		})
	}
	return out
}
