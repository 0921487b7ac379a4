package repository

import "github.com/jhoicas/FilaVirtual-api/internal/domain/entity"

// StaffRepository define el puerto de persistencia para Staff (DIP).
//
// Convención del paquete: "no encontrado" se devuelve como (nil, nil);
// los errores reales de consulta llegan envueltos.
type StaffRepository interface {
	Create(staff *entity.Staff) error
	GetByID(id string) (*entity.Staff, error)
	GetByEmail(email string) (*entity.Staff, error)
	// GetWithVendor obtiene el staff por ID con su Vendor cargado (join).
	GetWithVendor(id string) (*entity.Staff, error)
	// GetByBadgeCode obtiene el staff por código de credencial QR, con Vendor.
	GetByBadgeCode(code string) (*entity.Staff, error)
	GetByAccountID(accountID string) (*entity.Staff, error)
	ListByVendor(vendorID string, limit, offset int) ([]*entity.Staff, error)
	// UpdateAccountID vincula el registro (match por email) con una cuenta real.
	// Idempotente: repetir la llamada con el mismo accountID no cambia nada.
	UpdateAccountID(email, accountID string) error
	Update(staff *entity.Staff) error
}
