package identity

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/FilaVirtual-api/internal/application/auth"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
)

var (
	_ auth.Provider         = (*LocalProvider)(nil)
	_ auth.AccountConfirmer = (*LocalProvider)(nil)
)

// LocalProvider implementa auth.Provider sobre la tabla accounts de Postgres
// con hashes bcrypt. Es el proveedor por defecto en desarrollo: no requiere
// proyecto Supabase y confirma las cuentas en el registro.
type LocalProvider struct {
	accounts    repository.AccountRepository
	autoConfirm bool
	sessionTTL  time.Duration
}

// NewLocalProvider construye el proveedor local. Con autoConfirm=true el
// sign-up deja la cuenta lista para autenticarse y emite sesión; con false
// emula el flujo de confirmación por email del proveedor remoto.
func NewLocalProvider(accounts repository.AccountRepository, autoConfirm bool) *LocalProvider {
	return &LocalProvider{
		accounts:    accounts,
		autoConfirm: autoConfirm,
		sessionTTL:  time.Hour,
	}
}

// SignIn valida email+password contra el hash almacenado. Cuenta inexistente
// y password incorrecto devuelven el mismo error para no filtrar existencia.
func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*entity.Account, error) {
	account, err := p.accounts.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("buscar cuenta: %w", err)
	}
	if account == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !account.Confirmed() {
		return nil, domain.ErrEmailNotConfirmed
	}
	account.PasswordHash = ""
	return account, nil
}

// SignUp crea la cuenta local. El metadata se acepta por contrato pero no se
// persiste: el vínculo con staff lo hace la capa de aplicación vía email.
func (p *LocalProvider) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*auth.SignUpResult, error) {
	existing, err := p.accounts.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("buscar cuenta: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}

	account := &entity.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if p.autoConfirm {
		now := time.Now()
		account.ConfirmedAt = &now
	}
	if err := p.accounts.Create(account); err != nil {
		return nil, fmt.Errorf("crear cuenta: %w", err)
	}

	account.PasswordHash = ""
	out := &auth.SignUpResult{Account: account}
	if p.autoConfirm {
		token, err := randomToken()
		if err != nil {
			return nil, fmt.Errorf("generar token de sesión: %w", err)
		}
		out.Session = &auth.Session{
			AccessToken: token,
			ExpiresAt:   time.Now().Add(p.sessionTTL),
		}
	}
	return out, nil
}

// ConfirmAccount marca la cuenta como confirmada. Emula el clic en el enlace
// de confirmación del flujo remoto cuando autoConfirm está apagado. Es
// idempotente: confirmar una cuenta ya confirmada no es error.
func (p *LocalProvider) ConfirmAccount(ctx context.Context, email string) error {
	account, err := p.accounts.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("buscar cuenta: %w", err)
	}
	if account == nil {
		return domain.ErrNotFound
	}
	if account.Confirmed() {
		return nil
	}
	if err := p.accounts.Confirm(account.ID); err != nil {
		return fmt.Errorf("confirmar cuenta: %w", err)
	}
	return nil
}

// randomToken genera un token opaco de 32 bytes en base64 URL-safe.
func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
