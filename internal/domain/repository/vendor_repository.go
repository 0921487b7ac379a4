package repository

import "github.com/jhoicas/FilaVirtual-api/internal/domain/entity"

// VendorRepository define el puerto de persistencia para Vendor (DIP).
type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	GetByID(id string) (*entity.Vendor, error)
	List(limit, offset int) ([]*entity.Vendor, error)
	Update(vendor *entity.Vendor) error
}
