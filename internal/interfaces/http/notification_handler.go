package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FilaVirtual-api/internal/application/dto"
	"github.com/jhoicas/FilaVirtual-api/internal/application/usecase"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
)

// NotificationHandler maneja los avisos a clientes de la fila.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler de notificaciones.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// Send godoc
// @Summary      Enviar aviso al cliente de un ticket
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendNotificationRequest  true  "ticket_id, type, message"
// @Success      201   {object}  dto.NotificationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/notifications [post]
func (h *NotificationHandler) Send(c *fiber.Ctx) error {
	var in dto.SendNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TicketID == "" || in.Type == "" || in.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ticket_id, type y message son requeridos"})
	}
	out, err := h.uc.Send(c.Context(), GetVendorID(c), in)
	if err != nil {
		return notificationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByTicket godoc
// @Summary      Listar avisos de un ticket
// @Tags         notifications
// @Produce      json
// @Param        ticketId  path      string  true  "ticket ID"
// @Success      200       {array}   dto.NotificationResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/notifications/ticket/{ticketId} [get]
func (h *NotificationHandler) ListByTicket(c *fiber.Ctx) error {
	out, err := h.uc.ListByTicket(GetVendorID(c), c.Params("ticketId"))
	if err != nil {
		return notificationError(c, err)
	}
	return c.JSON(out)
}

func notificationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ticket no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el ticket pertenece a otro vendor"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de notificación inválido"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
