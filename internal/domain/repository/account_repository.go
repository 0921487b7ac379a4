package repository

import "github.com/jhoicas/FilaVirtual-api/internal/domain/entity"

// AccountRepository define el puerto de persistencia para cuentas locales.
// Solo lo usa el proveedor de auth local (modo sin Supabase); cuando la auth
// es remota las cuentas viven en el colaborador externo.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByEmail(email string) (*entity.Account, error)
	GetByID(id string) (*entity.Account, error)
	Confirm(id string) error
}
