package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC  *ucAppointment.CreateAppointment
	updateUC  *ucAppointment.UpdateAppointment
	confirmUC *ucAppointment.ConfirmAppointment
	cancelUC  *ucAppointment.CancelAppointment
	listUC    *ucAppointment.ListAppointments
	agendaUC  *ucAppointment.GetAgenda
	monthUC   *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	confirmUC *ucAppointment.ConfirmAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listUC *ucAppointment.ListAppointments,
	agendaUC *ucAppointment.GetAgenda,
	monthUC *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:  createUC,
		updateUC:  updateUC,
		confirmUC: confirmUC,
		cancelUC:  cancelUC,
		listUC:    listUC,
		agendaUC:  agendaUC,
		monthUC:   monthUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// AppointmentRequest é o formulário de criação e edição. Campos vazios são
// tratados pela validação do domínio, com códigos próprios.
type AppointmentRequest struct {
	ClientID   *string  `json:"client_id"`
	ClientName string   `json:"client_name"`
	ServiceIDs []string `json:"service_ids"`
	Date       string   `json:"date" binding:"omitempty,ymd"`
	Time       string   `json:"time" binding:"omitempty,hhmm"`
	Notes      string   `json:"notes"`
}

func (r AppointmentRequest) draft() domain.Draft {
	return domain.Draft{
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
		ServiceIDs: r.ServiceIDs,
		Date:       r.Date,
		Time:       r.Time,
		Notes:      r.Notes,
	}
}

type AgendaQuery struct {
	Date   string `form:"date" binding:"required,ymd"`
	Status string `form:"status"`
}

type MonthQuery struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required"`
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	out, err := h.createUC.Execute(c.Request.Context(), req.draft())
	if err != nil {
		writeError(c, err, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	httpresp.Created(c, out)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	out, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), req.draft())
	if err != nil {
		writeError(c, err, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	out, err := h.confirmUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed_to_confirm_appointment", "Erro ao confirmar agendamento.")
		return
	}
	httpresp.OK(c, out)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	out, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	out, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}
	httpresp.OK(c, out)
}

func (h *AppointmentHandler) Agenda(c *gin.Context) {
	var q AgendaQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.agendaUC.Execute(c.Request.Context(), q.Date, q.Status)
	if err != nil {
		writeError(c, err, "failed_to_load_agenda", "Erro ao carregar agenda.")
		return
	}
	httpresp.OK(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	var q MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	out, err := h.monthUC.Execute(c.Request.Context(), q.Year, q.Month)
	if err != nil {
		writeError(c, err, "failed_to_list_month", "Erro ao carregar o mês.")
		return
	}
	httpresp.OK(c, out)
}
