package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// ClientName é um snapshot do nome no momento do agendamento
	ClientID   *string `gorm:"size:36;index" json:"client_id"`
	Client     *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`
	ClientName string  `gorm:"size:100;not null" json:"client_name"`

	StartsAt time.Time `gorm:"index;not null" json:"starts_at"`
	Status   string    `gorm:"size:20;default:'pending'" json:"status"`
	Notes    string    `gorm:"size:255" json:"notes"`

	Items []AppointmentService `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE;" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Services devolve os serviços na ordem em que foram anexados.
func (a *Appointment) Services() []Service {
	out := make([]Service, 0, len(a.Items))
	for _, it := range a.Items {
		out = append(out, it.Service)
	}
	return out
}

// AppointmentService liga um agendamento a um serviço. A chave composta
// impede o mesmo serviço duas vezes no mesmo agendamento.
type AppointmentService struct {
	AppointmentID string  `gorm:"primaryKey;size:36" json:"appointment_id"`
	ServiceID     string  `gorm:"primaryKey;size:36;index" json:"service_id"`
	Position      int     `gorm:"not null;default:0" json:"position"`
	Service       Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:RESTRICT;" json:"service"`
}
