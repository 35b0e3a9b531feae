package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/catalog"
)

type ServiceHandler struct {
	services *catalog.Services
}

func NewServiceHandler(services *catalog.Services) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// ServiceRequest aceita preço e duração como número ou texto, do jeito que
// vêm dos formulários.
type ServiceRequest struct {
	Name        string      `json:"name" binding:"required"`
	Price       dto.Amount  `json:"price"`
	DurationMin dto.Minutes `json:"duration_min"`
	Description string      `json:"description"`
}

func (r ServiceRequest) input() catalog.ServiceInput {
	return catalog.ServiceInput{
		Name:        r.Name,
		Price:       float64(r.Price),
		DurationMin: int(r.DurationMin),
		Description: r.Description,
	}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.services.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}
	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	out, err := h.services.Create(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, err, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}
	httpresp.Created(c, out)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	out, err := h.services.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		writeError(c, err, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}
	httpresp.OK(c, out)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.services.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}
	httpresp.NoContent(c)
}
