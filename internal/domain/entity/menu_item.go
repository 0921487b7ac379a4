package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem es un plato del menú de un Vendor.
type MenuItem struct {
	ID              string
	VendorID        string
	Name            string
	Price           decimal.Decimal
	PrepTimeMinutes int
	IsSpecial       bool
	IsBestseller    bool
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
