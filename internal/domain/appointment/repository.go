package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Client --------
	GetClient(
		ctx context.Context,
		id string,
	) (*models.Client, error)

	// -------- Service --------
	FindServices(
		ctx context.Context,
		ids []string,
	) ([]models.Service, error)

	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		serviceIDs []string,
	) error

	// ReplaceAppointment grava os campos e troca o conjunto de serviços inteiro.
	ReplaceAppointment(
		ctx context.Context,
		ap *models.Appointment,
		serviceIDs []string,
	) error

	// UpdateStatus grava to apenas se o status atual ainda for from.
	UpdateStatus(
		ctx context.Context,
		id string,
		from Status,
		to Status,
	) error

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
