package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/FilaVirtual-api/internal/domain"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
)

// PDFUseCase genera el reporte PDF de métricas diarias para el panel de
// reportes del vendor.
type PDFUseCase struct {
	vendorRepo repository.VendorRepository
	statsRepo  repository.StatsRepository
	generator  ReportPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	vendorRepo repository.VendorRepository,
	statsRepo repository.StatsRepository,
	generator ReportPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{vendorRepo: vendorRepo, statsRepo: statsRepo, generator: generator}
}

// DownloadDailyReport carga el vendor y sus métricas del rango y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si el vendor no existe.
//   - domain.ErrInvalidInput    si el rango está invertido.
func (uc *PDFUseCase) DownloadDailyReport(
	ctx context.Context,
	vendorID string,
	from, to time.Time,
) (pdfBytes []byte, filename string, err error) {
	if to.Before(from) {
		return nil, "", fmt.Errorf("%w: rango invertido", domain.ErrInvalidInput)
	}

	vendor, err := uc.vendorRepo.GetByID(vendorID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener vendor: %w", err)
	}
	if vendor == nil {
		return nil, "", domain.ErrNotFound
	}

	stats, err := uc.statsRepo.ListByVendor(vendorID, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener métricas: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateDailyReportPDF(ctx, vendor, stats, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}

	filename = fmt.Sprintf("reporte_%s_%s_%s.pdf",
		vendorID, from.Format("20060102"), to.Format("20060102"))
	return pdfBytes, filename, nil
}
