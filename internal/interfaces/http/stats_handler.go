package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FilaVirtual-api/internal/application/dto"
	"github.com/jhoicas/FilaVirtual-api/internal/application/reports"
	"github.com/jhoicas/FilaVirtual-api/internal/application/usecase"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
)

// StatsHandler maneja las métricas diarias del vendor y su reporte PDF.
type StatsHandler struct {
	uc  *usecase.StatsUseCase
	pdf *reports.PDFUseCase
}

// NewStatsHandler construye el handler de métricas.
func NewStatsHandler(uc *usecase.StatsUseCase, pdf *reports.PDFUseCase) *StatsHandler {
	return &StatsHandler{uc: uc, pdf: pdf}
}

// Upsert godoc
// @Summary      Registrar métricas de un día
// @Tags         stats
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertDailyStatRequest  true  "métricas del día"
// @Success      200   {object}  dto.DailyStatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stats [put]
func (h *StatsHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertDailyStatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date es requerido (YYYY-MM-DD)"})
	}
	out, err := h.uc.Upsert(GetVendorID(c), in)
	if err != nil {
		return statsError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar métricas de un rango de fechas
// @Tags         stats
// @Produce      json
// @Param        from  query     string  false  "YYYY-MM-DD (default: hace 7 días)"
// @Param        to    query     string  false  "YYYY-MM-DD (default: hoy)"
// @Success      200   {object}  dto.StatsListResponse
// @Router       /api/stats [get]
func (h *StatsHandler) List(c *fiber.Ctx) error {
	var in dto.StatsRangeRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de rango inválidos"})
	}
	out, err := h.uc.ListRange(GetVendorID(c), in)
	if err != nil {
		return statsError(c, err)
	}
	return c.JSON(out)
}

// DownloadReport godoc
// @Summary      Descargar reporte PDF de métricas
// @Tags         stats
// @Produce      application/pdf
// @Param        from  query  string  false  "YYYY-MM-DD (default: hace 7 días)"
// @Param        to    query  string  false  "YYYY-MM-DD (default: hoy)"
// @Success      200   {file}    file
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stats/report [get]
func (h *StatsHandler) DownloadReport(c *fiber.Ctx) error {
	from, to, err := parseRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pdfBytes, filename, err := h.pdf.DownloadDailyReport(c.Context(), GetVendorID(c), from, to)
	if err != nil {
		return statsError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

// parseRange interpreta from/to con defaults de los últimos 7 días.
func parseRange(fromStr, toStr string) (from, to time.Time, err error) {
	to = time.Now().Truncate(24 * time.Hour)
	from = to.AddDate(0, 0, -6)
	if toStr != "" {
		if to, err = time.Parse("2006-01-02", toStr); err != nil {
			return from, to, fmt.Errorf("to inválido, formato YYYY-MM-DD")
		}
	}
	if fromStr != "" {
		if from, err = time.Parse("2006-01-02", fromStr); err != nil {
			return from, to, fmt.Errorf("from inválido, formato YYYY-MM-DD")
		}
	}
	return from, to, nil
}

func statsError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendor no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
