package repository

import "github.com/jhoicas/FilaVirtual-api/internal/domain/entity"

// MenuItemRepository define el puerto de persistencia para MenuItem (DIP).
type MenuItemRepository interface {
	Create(item *entity.MenuItem) error
	GetByID(id string) (*entity.MenuItem, error)
	ListByVendor(vendorID string, onlyActive bool, limit, offset int) ([]*entity.MenuItem, error)
	Update(item *entity.MenuItem) error
	Delete(id string) error
}
