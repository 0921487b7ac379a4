package reports

import (
	"context"
	"time"

	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
)

// ReportPDFGenerator define el puerto de salida para el render del reporte.
// La implementación concreta usa Maroto; para tests se inyecta un mock.
type ReportPDFGenerator interface {
	GenerateDailyReportPDF(
		ctx context.Context,
		vendor *entity.Vendor,
		stats []*entity.DailyStat,
		from, to time.Time,
	) ([]byte, error)
}
