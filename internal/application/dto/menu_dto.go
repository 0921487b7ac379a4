package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest entrada para crear un plato del menú.
type CreateMenuItemRequest struct {
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	PrepTimeMinutes int             `json:"prep_time_minutes" validate:"min=0"`
	IsSpecial       bool            `json:"is_special"`
	IsBestseller    bool            `json:"is_bestseller"`
}

// UpdateMenuItemRequest entrada para actualizar un plato.
type UpdateMenuItemRequest struct {
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	PrepTimeMinutes int             `json:"prep_time_minutes" validate:"min=0"`
	IsSpecial       bool            `json:"is_special"`
	IsBestseller    bool            `json:"is_bestseller"`
	Active          bool            `json:"active"`
}

// MenuItemResponse salida de un plato.
type MenuItemResponse struct {
	ID              string          `json:"id"`
	VendorID        string          `json:"vendor_id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	PrepTimeMinutes int             `json:"prep_time_minutes"`
	IsSpecial       bool            `json:"is_special"`
	IsBestseller    bool            `json:"is_bestseller"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// MenuListResponse listado paginado del menú.
type MenuListResponse struct {
	Items []MenuItemResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
