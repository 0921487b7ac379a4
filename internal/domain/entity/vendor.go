package entity

import "time"

// Vendor representa un puesto de comida registrado en la plataforma.
type Vendor struct {
	ID          string
	Name        string
	APIEndpoint string // opcional: endpoint del sistema propio del vendor
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
