package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyStat agrega las métricas de un Vendor para un día calendario.
type DailyStat struct {
	ID              string
	VendorID        string
	Date            time.Time
	TotalCustomers  int
	AvgWaitMinutes  decimal.Decimal
	Revenue         decimal.Decimal
	AbandonmentRate decimal.Decimal // 0..100
	PeakHour        int             // hora 0..23 con más tickets
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
