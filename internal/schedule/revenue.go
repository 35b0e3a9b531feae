package schedule

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

// ConfirmedRevenue soma apenas os agendamentos confirmados.
func ConfirmedRevenue(day []dto.Appointment, catalog Catalog) float64 {
	var total float64
	for _, ap := range day {
		if appointment.Status(ap.Status) != appointment.StatusConfirmed {
			continue
		}
		total += TotalsOf(ap, catalog).TotalPrice
	}
	return total
}

func CountByStatus(list []dto.Appointment) dto.StatusCounts {
	var c dto.StatusCounts
	for _, ap := range list {
		c.Total++
		switch appointment.Status(ap.Status) {
		case appointment.StatusPending:
			c.Pending++
		case appointment.StatusConfirmed:
			c.Confirmed++
		case appointment.StatusCancelled:
			c.Cancelled++
		}
	}
	return c
}
