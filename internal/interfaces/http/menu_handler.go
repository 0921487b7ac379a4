package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FilaVirtual-api/internal/application/dto"
	"github.com/jhoicas/FilaVirtual-api/internal/application/usecase"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
)

// MenuHandler maneja el CRUD del menú del vendor autenticado.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler construye el handler del menú.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// Create godoc
// @Summary      Crear plato del menú
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMenuItemRequest  true  "name, price, prep_time_minutes"
// @Success      201   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/menu [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(GetVendorID(c), in)
	if err != nil {
		return menuError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar menú del vendor
// @Tags         menu
// @Produce      json
// @Param        active  query     bool  false  "solo platos activos"
// @Param        limit   query     int   false  "máximo por página (default 20)"
// @Param        offset  query     int   false  "desplazamiento"
// @Success      200     {object}  dto.MenuListResponse
// @Router       /api/menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	onlyActive := c.QueryBool("active", false)
	out, err := h.uc.List(GetVendorID(c), onlyActive, page.Limit, page.Offset)
	if err != nil {
		return menuError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar plato del menú
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "item ID"
// @Param        body  body  dto.UpdateMenuItemRequest  true  "campos del plato"
// @Success      200   {object}  dto.MenuItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/menu/{id} [put]
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetVendorID(c), c.Params("id"), in)
	if err != nil {
		return menuError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar plato del menú
// @Tags         menu
// @Produce      json
// @Param        id   path  string  true  "item ID"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu/{id} [delete]
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetVendorID(c), c.Params("id")); err != nil {
		return menuError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// menuError mapea errores de dominio del menú a respuestas HTTP.
func menuError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plato no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el plato pertenece a otro vendor"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
