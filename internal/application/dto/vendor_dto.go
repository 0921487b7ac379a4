package dto

import "time"

// CreateVendorRequest entrada para crear un vendor.
type CreateVendorRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	APIEndpoint string `json:"api_endpoint" validate:"omitempty,url"`
}

// UpdateVendorRequest entrada para actualizar un vendor. Campos opcionales
// (actualización parcial).
type UpdateVendorRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	APIEndpoint *string `json:"api_endpoint,omitempty" validate:"omitempty,url"`
}

// VendorResponse salida de un vendor.
type VendorResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	APIEndpoint string    `json:"api_endpoint,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VendorListResponse listado paginado de vendors.
type VendorListResponse struct {
	Items []VendorResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
