package repository

import (
	"time"

	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
)

// StatsRepository define el puerto de lectura/escritura de métricas diarias.
type StatsRepository interface {
	// Upsert inserta o actualiza la fila (vendor_id, date).
	Upsert(stat *entity.DailyStat) error
	GetByVendorAndDate(vendorID string, date time.Time) (*entity.DailyStat, error)
	// ListByVendor lista métricas del vendor en el rango [from, to] ordenadas por fecha.
	ListByVendor(vendorID string, from, to time.Time) ([]*entity.DailyStat, error)
}
