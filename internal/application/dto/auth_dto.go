package dto

import "time"

// LoginRequest entrada para login con email + password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT propio de la API y el staff autenticado.
type LoginResponse struct {
	Token string        `json:"token"`
	Staff StaffResponse `json:"staff"`
	// NeedsConfirmation true cuando la cuenta demo quedó creada pero el
	// proveedor exige confirmación: el caller debe ofrecer la ruta QR.
	NeedsConfirmation bool `json:"needs_confirmation,omitempty"`
}

// RegisterRequest entrada para registrar un miembro de staff de un vendor.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	VendorID string `json:"vendor_id" validate:"required,uuid"`
	Role     string `json:"role" validate:"omitempty,oneof=owner staff"`
}

// RegisterResponse salida del registro.
type RegisterResponse struct {
	Staff StaffResponse `json:"staff"`
	// NeedsConfirmation true si el proveedor no emitió sesión en el sign-up.
	NeedsConfirmation bool `json:"needs_confirmation,omitempty"`
}

// ConfirmRequest entrada para confirmar una cuenta pendiente (proveedor local).
type ConfirmRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// QRLoginRequest entrada para login con credencial QR (el código ya decodificado).
type QRLoginRequest struct {
	BadgeCode string `json:"badge_code" validate:"required"`
}

// QRLoginResponse salida del login QR. En el camino demo el token es la
// pseudo-sesión local; en el camino normal es un JWT de la API.
type QRLoginResponse struct {
	Token       string        `json:"token"`
	DemoSession bool          `json:"demo_session,omitempty"`
	Staff       StaffResponse `json:"staff"`
}

// DemoSessionResponse salida de validar la pseudo-sesión demo.
type DemoSessionResponse struct {
	Valid bool           `json:"valid"`
	Token string         `json:"token,omitempty"`
	Staff *StaffResponse `json:"staff,omitempty"`
}

// StaffResponse salida de un miembro de staff (sin datos sensibles).
type StaffResponse struct {
	ID         string          `json:"id"`
	VendorID   string          `json:"vendor_id"`
	Email      string          `json:"email"`
	Role       string          `json:"role"`
	HasAccount bool            `json:"has_account"`
	Vendor     *VendorResponse `json:"vendor,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
