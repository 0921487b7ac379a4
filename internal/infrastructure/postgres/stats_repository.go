package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo implementación del puerto StatsRepository sobre PostgreSQL.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

const statColumns = `id, vendor_id, date, COALESCE(total_customers, 0), COALESCE(avg_wait_minutes, 0),
	COALESCE(revenue, 0), COALESCE(abandonment_rate, 0), COALESCE(peak_hour, 0), created_at, updated_at`

// Upsert inserta o actualiza la fila (vendor_id, date).
func (r *StatsRepo) Upsert(stat *entity.DailyStat) error {
	query := `
		INSERT INTO daily_stats (id, vendor_id, date, total_customers, avg_wait_minutes,
			revenue, abandonment_rate, peak_hour, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (vendor_id, date) DO UPDATE SET
			total_customers = EXCLUDED.total_customers,
			avg_wait_minutes = EXCLUDED.avg_wait_minutes,
			revenue = EXCLUDED.revenue,
			abandonment_rate = EXCLUDED.abandonment_rate,
			peak_hour = EXCLUDED.peak_hour,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		stat.ID, stat.VendorID, stat.Date, stat.TotalCustomers, stat.AvgWaitMinutes,
		stat.Revenue, stat.AbandonmentRate, stat.PeakHour, stat.CreatedAt, stat.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert daily stat: %w", err)
	}
	return nil
}

// GetByVendorAndDate obtiene las métricas de un día.
func (r *StatsRepo) GetByVendorAndDate(vendorID string, date time.Time) (*entity.DailyStat, error) {
	query := `SELECT ` + statColumns + ` FROM daily_stats WHERE vendor_id = $1 AND date = $2`
	var s entity.DailyStat
	err := r.q.QueryRow(context.Background(), query, vendorID, date).Scan(
		&s.ID, &s.VendorID, &s.Date, &s.TotalCustomers, &s.AvgWaitMinutes,
		&s.Revenue, &s.AbandonmentRate, &s.PeakHour, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get daily stat: %w", err)
	}
	return &s, nil
}

// ListByVendor lista métricas del vendor en [from, to] ordenadas por fecha.
func (r *StatsRepo) ListByVendor(vendorID string, from, to time.Time) ([]*entity.DailyStat, error) {
	query := `SELECT ` + statColumns + ` FROM daily_stats
		WHERE vendor_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date`
	rows, err := r.q.Query(context.Background(), query, vendorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list daily stats: %w", err)
	}
	defer rows.Close()
	var list []*entity.DailyStat
	for rows.Next() {
		var s entity.DailyStat
		if err := rows.Scan(&s.ID, &s.VendorID, &s.Date, &s.TotalCustomers, &s.AvgWaitMinutes,
			&s.Revenue, &s.AbandonmentRate, &s.PeakHour, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan daily stat: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
