package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FilaVirtual-api/internal/application/dto"
	"github.com/jhoicas/FilaVirtual-api/internal/application/usecase"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
)

// QueueHandler maneja la fila virtual del vendor autenticado: alta de turnos,
// avance de estado y consulta.
type QueueHandler struct {
	uc *usecase.QueueUseCase
}

// NewQueueHandler construye el handler de la fila.
func NewQueueHandler(uc *usecase.QueueUseCase) *QueueHandler {
	return &QueueHandler{uc: uc}
}

// Create godoc
// @Summary      Dar turno a un cliente
// @Tags         queue
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTicketRequest  true  "datos del cliente y pedido"
// @Success      201   {object}  dto.TicketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/queue/tickets [post]
func (h *QueueHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	for _, line := range in.Orders {
		if line.MenuItemID == "" || line.Quantity < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cada línea de pedido requiere menu_item_id y quantity >= 1"})
		}
	}
	out, err := h.uc.CreateTicket(c.Context(), GetVendorID(c), in)
	if err != nil {
		return queueError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Advance godoc
// @Summary      Avanzar el estado de un ticket
// @Tags         queue
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ticket ID"
// @Param        body  body  dto.AdvanceTicketRequest  true  "status destino"
// @Success      200   {object}  dto.TicketResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/queue/tickets/{id}/status [patch]
func (h *QueueHandler) Advance(c *fiber.Ctx) error {
	var in dto.AdvanceTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	out, err := h.uc.AdvanceTicket(c.Context(), GetVendorID(c), c.Params("id"), in.Status)
	if err != nil {
		return queueError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener ticket con su pedido
// @Tags         queue
// @Produce      json
// @Param        id   path      string  true  "ticket ID"
// @Success      200  {object}  dto.TicketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/queue/tickets/{id} [get]
func (h *QueueHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetTicket(GetVendorID(c), c.Params("id"))
	if err != nil {
		return queueError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tickets de la fila
// @Tags         queue
// @Produce      json
// @Param        status  query     string  false  "estados separados por coma (ej: waiting,preparing)"
// @Param        limit   query     int     false  "máximo por página (default 20)"
// @Param        offset  query     int     false  "desplazamiento"
// @Success      200     {object}  dto.TicketListResponse
// @Router       /api/queue/tickets [get]
func (h *QueueHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()

	var statuses []string
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}
	out, err := h.uc.ListTickets(GetVendorID(c), statuses, page.Limit, page.Offset)
	if err != nil {
		return queueError(c, err)
	}
	return c.JSON(out)
}

// queueError mapea errores de dominio de la fila a respuestas HTTP.
func queueError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ticket no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el ticket pertenece a otro vendor"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
