package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/FilaVirtual-api/internal/application/dto"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
)

const statsDateLayout = "2006-01-02"

// Rango por defecto del reporte: última semana.
const defaultStatsRangeDays = 7

// StatsUseCase maneja las métricas diarias del panel de reportes.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Upsert registra (o corrige) las métricas de un día del vendor.
func (uc *StatsUseCase) Upsert(vendorID string, in dto.UpsertDailyStatRequest) (*dto.DailyStatResponse, error) {
	date, err := time.Parse(statsDateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Date)
	}
	now := time.Now()
	stat := &entity.DailyStat{
		ID:              uuid.New().String(),
		VendorID:        vendorID,
		Date:            date,
		TotalCustomers:  in.TotalCustomers,
		AvgWaitMinutes:  in.AvgWaitMinutes,
		Revenue:         in.Revenue,
		AbandonmentRate: in.AbandonmentRate,
		PeakHour:        in.PeakHour,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Upsert(stat); err != nil {
		return nil, err
	}
	return entityToDailyStatResponse(stat), nil
}

// ListRange lista las métricas del vendor en [from, to]. Fechas vacías usan la
// última semana terminando hoy.
func (uc *StatsUseCase) ListRange(vendorID string, in dto.StatsRangeRequest) (*dto.StatsListResponse, error) {
	from, to, err := resolveRange(in)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByVendor(vendorID, from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DailyStatResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *entityToDailyStatResponse(s))
	}
	return &dto.StatsListResponse{Items: items}, nil
}

func resolveRange(in dto.StatsRangeRequest) (from, to time.Time, err error) {
	now := time.Now()
	to = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from = to.AddDate(0, 0, -(defaultStatsRangeDays - 1))

	if in.From != "" {
		from, err = time.Parse(statsDateLayout, in.From)
		if err != nil {
			return from, to, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.From)
		}
	}
	if in.To != "" {
		to, err = time.Parse(statsDateLayout, in.To)
		if err != nil {
			return from, to, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.To)
		}
	}
	if to.Before(from) {
		return from, to, fmt.Errorf("%w: rango invertido", domain.ErrInvalidInput)
	}
	return from, to, nil
}

func entityToDailyStatResponse(s *entity.DailyStat) *dto.DailyStatResponse {
	if s == nil {
		return nil
	}
	return &dto.DailyStatResponse{
		ID:              s.ID,
		VendorID:        s.VendorID,
		Date:            s.Date.Format(statsDateLayout),
		TotalCustomers:  s.TotalCustomers,
		AvgWaitMinutes:  s.AvgWaitMinutes,
		Revenue:         s.Revenue,
		AbandonmentRate: s.AbandonmentRate,
		PeakHour:        s.PeakHour,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
