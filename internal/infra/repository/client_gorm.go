package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// % e _ digitados na busca são literais
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// List devolve os clientes em ordem alfabética. query filtra por nome,
// telefone ou e-mail.
func (r *ClientGormRepository) List(ctx context.Context, query string) ([]models.Client, error) {
	q := r.db.WithContext(ctx)

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		like := "%" + likeEscaper.Replace(query) + "%"
		q = q.Where(
			`LOWER(name) LIKE ? ESCAPE '\' OR phone LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`,
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) Get(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *ClientGormRepository) Update(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// Delete desvincula os agendamentos do cliente antes de apagá-lo; o nome
// gravado no agendamento continua.
func (r *ClientGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&models.Appointment{}).
			Where("client_id = ?", id).
			Update("client_id", nil).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Client{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("client_not_found")
		}
		return nil
	})
}
