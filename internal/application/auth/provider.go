package auth

import (
	"context"
	"time"

	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
)

// Session es la sesión emitida por el proveedor de identidad tras un sign-in
// o un sign-up sin confirmación pendiente.
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
}

// SignUpResult resultado de un registro en el proveedor.
// Session == nil significa que la cuenta quedó pendiente de confirmación por
// email y todavía no puede autenticarse.
type SignUpResult struct {
	Account *entity.Account
	Session *Session
}

// Provider define el puerto hacia el servicio externo de identidad
// (Supabase GoTrue en producción; un adaptador local sobre Postgres en dev).
//
// Errores tipados esperados de SignIn:
//   - domain.ErrInvalidCredentials → la identidad no existe o el password no coincide
//   - domain.ErrEmailNotConfirmed  → la cuenta existe pero está pendiente de confirmación
//
// Cualquier otro error se propaga tal cual.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*entity.Account, error)
	SignUp(ctx context.Context, email, password string, metadata map[string]string) (*SignUpResult, error)
}

// AccountConfirmer lo implementan los proveedores cuya confirmación de cuenta
// ocurre dentro de la propia API (el proveedor local). Con un proveedor remoto
// la confirmación la resuelve el enlace que envía el propio servicio por email,
// y este puerto no aplica.
type AccountConfirmer interface {
	ConfirmAccount(ctx context.Context, email string) error
}
