package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// withDetails carrega cliente e serviços na ordem em que foram anexados.
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Client").
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Preload("Items.Service")
}

// --------------------------------------------------
// Client / Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	id string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) FindServices(
	ctx context.Context,
	ids []string,
) ([]models.Service, error) {

	var services []models.Service
	if len(ids) == 0 {
		return services, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	serviceIDs []string,
) error {

	ap.StartsAt = ap.StartsAt.UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(ap).Error; err != nil {
			return err
		}
		return insertItems(tx, ap.ID, serviceIDs)
	})
	return mapItemsError(err)
}

func (r *AppointmentGormRepository) ReplaceAppointment(
	ctx context.Context,
	ap *models.Appointment,
	serviceIDs []string,
) error {

	ap.StartsAt = ap.StartsAt.UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(ap).Error; err != nil {
			return err
		}
		if err := tx.
			Where("appointment_id = ?", ap.ID).
			Delete(&models.AppointmentService{}).Error; err != nil {
			return err
		}
		return insertItems(tx, ap.ID, serviceIDs)
	})
	return mapItemsError(err)
}

// mapItemsError cobre o serviço removido entre a validação e a gravação.
func mapItemsError(err error) error {
	if httperr.IsForeignKeyViolation(err) {
		return httperr.ErrBusiness("service_not_found")
	}
	return err
}

func insertItems(tx *gorm.DB, appointmentID string, serviceIDs []string) error {
	if len(serviceIDs) == 0 {
		return nil
	}
	items := make([]models.AppointmentService, 0, len(serviceIDs))
	for i, sid := range serviceIDs {
		items = append(items, models.AppointmentService{
			AppointmentID: appointmentID,
			ServiceID:     sid,
			Position:      i,
		})
	}
	return tx.Omit(clause.Associations).Create(&items).Error
}

// UpdateStatus só grava se o status atual ainda for from. Se outra escrita
// mudou o status depois da leitura, devolve invalid_state.
func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	id string,
	from domain.Status,
	to domain.Status,
) error {

	db := r.db.WithContext(ctx)
	res := db.
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(&models.Appointment{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return httperr.ErrBusiness("invalid_state")
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := withDetails(r.db.WithContext(ctx)).
		First(&ap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := withDetails(r.db.WithContext(ctx)).
		Order("starts_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := withDetails(r.db.WithContext(ctx)).
		Where("starts_at >= ? AND starts_at < ?", start.UTC(), end.UTC()).
		Order("starts_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
