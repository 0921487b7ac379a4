package entity

import "time"

// Roles válidos para Staff.
const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

// PlaceholderAccountID es el account_id con el que se pre-aprovisiona un
// registro de staff antes de que exista su cuenta en el proveedor de auth.
// El bootstrap lo reemplaza por el ID real al crear/descubrir la cuenta.
const PlaceholderAccountID = "00000000-0000-0000-0000-000000000000"

// Staff asocia una cuenta del proveedor de auth con un Vendor y un rol.
// Puede existir antes que la cuenta misma (AccountID = placeholder).
type Staff struct {
	ID          string
	VendorID    string
	AccountID   string // user_id en el proveedor de auth; placeholder hasta el bootstrap
	Email       string
	Role        string // owner, staff
	QRBadgeCode string // código de credencial QR; vacío si no tiene
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Vendor se carga solo en consultas con join (GetWithVendor / GetByBadgeCode).
	Vendor *Vendor
}

// HasAccount indica si el registro ya está vinculado a una cuenta real.
func (s *Staff) HasAccount() bool {
	return s.AccountID != "" && s.AccountID != PlaceholderAccountID
}
