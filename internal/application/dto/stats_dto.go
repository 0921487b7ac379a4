package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatsRangeRequest rango de fechas para reportes (YYYY-MM-DD).
type StatsRangeRequest struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// DailyStatResponse métricas de un día de un vendor.
type DailyStatResponse struct {
	ID              string          `json:"id"`
	VendorID        string          `json:"vendor_id"`
	Date            string          `json:"date"` // YYYY-MM-DD
	TotalCustomers  int             `json:"total_customers"`
	AvgWaitMinutes  decimal.Decimal `json:"avg_wait_minutes"`
	Revenue         decimal.Decimal `json:"revenue"`
	AbandonmentRate decimal.Decimal `json:"abandonment_rate"`
	PeakHour        int             `json:"peak_hour"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// StatsListResponse listado de métricas diarias de un rango.
type StatsListResponse struct {
	Items []DailyStatResponse `json:"items"`
}

// UpsertDailyStatRequest entrada para registrar las métricas de un día.
type UpsertDailyStatRequest struct {
	Date            string          `json:"date" validate:"required,datetime=2006-01-02"`
	TotalCustomers  int             `json:"total_customers" validate:"min=0"`
	AvgWaitMinutes  decimal.Decimal `json:"avg_wait_minutes"`
	Revenue         decimal.Decimal `json:"revenue"`
	AbandonmentRate decimal.Decimal `json:"abandonment_rate"`
	PeakHour        int             `json:"peak_hour" validate:"min=0,max=23"`
}
