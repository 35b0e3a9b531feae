package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ClientHandler struct {
	repo  *repository.ClientGormRepository
	audit *audit.Dispatcher
}

func NewClientHandler(
	repo *repository.ClientGormRepository,
	audit *audit.Dispatcher,
) *ClientHandler {
	return &ClientHandler{
		repo:  repo,
		audit: audit,
	}
}

type ClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
}

// ======================================================
// LIST
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.repo.List(c.Request.Context(), c.Query("query"))
	if err != nil {
		writeError(c, err, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.OK(c, dto.FromClients(clients))
}

// ======================================================
// CREATE
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	client := models.Client{
		Name:  strings.TrimSpace(req.Name),
		Phone: strings.TrimSpace(req.Phone),
		Email: strings.TrimSpace(req.Email),
	}
	if err := h.repo.Create(c.Request.Context(), &client); err != nil {
		writeError(c, err, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: client.ID,
	})

	httpresp.Created(c, dto.FromClient(client))
}

// ======================================================
// UPDATE
// ======================================================
func (h *ClientHandler) Update(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	client, err := h.repo.Get(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	client.Name = strings.TrimSpace(req.Name)
	client.Phone = strings.TrimSpace(req.Phone)
	client.Email = strings.TrimSpace(req.Email)

	if err := h.repo.Update(ctx, client); err != nil {
		writeError(c, err, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: client.ID,
	})

	httpresp.OK(c, dto.FromClient(*client))
}

// ======================================================
// DELETE
// ======================================================
func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "failed_to_delete_client", "Erro ao remover cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: id,
	})

	httpresp.NoContent(c)
}
