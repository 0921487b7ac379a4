package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
	"github.com/jhoicas/FilaVirtual-api/pkg/logger"
)

// Claves fijas del almacén de sesión demo.
const (
	sessionTokenKey = "demo_session_token"
	sessionStaffKey = "demo_staff_id"
)

// Store es el almacén clave/valor donde vive la pseudo-sesión demo.
// Inyectable para poder usar memoria en tests y Redis en despliegues.
// Get devuelve ("", nil) cuando la clave no existe: la ausencia no es error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// LocalSession es la pseudo-sesión creada por el fallback.
type LocalSession struct {
	Token   string
	StaffID string
}

// SessionValidation resultado de validar la pseudo-sesión.
// Valid == false cubre tanto "no hay sesión" como "el staff ya no existe".
type SessionValidation struct {
	Valid bool
	Staff *entity.Staff
	Token string
}

// DemoSessionManager implementa el fallback de sesión local: permite tratar al
// usuario demo como "logueado" cuando el proveedor no pudo emitir una sesión
// real de forma síncrona (confirmación pendiente tras el sign-up).
//
// Es un workaround explícito, no un mecanismo de seguridad: el token no lleva
// ninguna garantía criptográfica y el proveedor nunca lo verifica; solo
// habilita la navegación del dashboard demo.
type DemoSessionManager struct {
	store     Store
	staffRepo repository.StaffRepository
	demoEmail string
	log       *logger.Logger
}

// NewDemoSessionManager construye el manager del fallback.
func NewDemoSessionManager(store Store, staffRepo repository.StaffRepository, demoEmail string, log *logger.Logger) *DemoSessionManager {
	return &DemoSessionManager{store: store, staffRepo: staffRepo, demoEmail: demoEmail, log: log}
}

// Create genera el token (embebe staff ID y timestamp) y persiste ambos
// valores bajo las claves fijas. Solo falla si el almacén falla.
func (m *DemoSessionManager) Create(ctx context.Context, staffID string) (*LocalSession, error) {
	token := fmt.Sprintf("demo_session_%s_%d", staffID, time.Now().UnixMilli())

	if err := m.store.Set(ctx, sessionTokenKey, token); err != nil {
		return nil, fmt.Errorf("guardar token de sesión demo: %w", err)
	}
	if err := m.store.Set(ctx, sessionStaffKey, staffID); err != nil {
		return nil, fmt.Errorf("guardar staff de sesión demo: %w", err)
	}
	return &LocalSession{Token: token, StaffID: staffID}, nil
}

// Validate lee token y staff del almacén; si falta cualquiera de los dos la
// sesión es inválida. Si ambos existen, re-consulta el staff (con su vendor)
// para confirmar que el registro sigue existiendo; un fallo de consulta
// también invalida, sin importar la forma del token.
func (m *DemoSessionManager) Validate(ctx context.Context) *SessionValidation {
	token, err := m.store.Get(ctx, sessionTokenKey)
	if err != nil || token == "" {
		return &SessionValidation{Valid: false}
	}
	staffID, err := m.store.Get(ctx, sessionStaffKey)
	if err != nil || staffID == "" {
		return &SessionValidation{Valid: false}
	}

	staff, err := m.staffRepo.GetWithVendor(staffID)
	if err != nil {
		m.log.Warn().Err(err).Str("staff_id", staffID).Msg("validación de sesión demo: consulta de staff falló")
		return &SessionValidation{Valid: false}
	}
	if staff == nil {
		return &SessionValidation{Valid: false}
	}

	return &SessionValidation{Valid: true, Staff: staff, Token: token}
}

// Clear elimina ambos valores incondicionalmente. Idempotente.
func (m *DemoSessionManager) Clear(ctx context.Context) {
	if err := m.store.Remove(ctx, sessionTokenKey); err != nil {
		m.log.Warn().Err(err).Msg("limpiar token de sesión demo")
	}
	if err := m.store.Remove(ctx, sessionStaffKey); err != nil {
		m.log.Warn().Err(err).Msg("limpiar staff de sesión demo")
	}
}

// IsDemoIdentity predicado puro: true si y solo si el email es el demo.
func (m *DemoSessionManager) IsDemoIdentity(email string) bool {
	return email != "" && email == m.demoEmail
}
