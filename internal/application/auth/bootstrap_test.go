package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FilaVirtual-api/internal/application/auth"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

const (
	demoEmail    = "admin@demo.com"
	demoPassword = "demo123"
	demoAcctID   = "acct-demo-1"
)

// fakeProvider simula el proveedor de identidad contando llamadas para poder
// verificar exactamente qué peticiones emite el bootstrap.
type fakeProvider struct {
	signInErr     error             // error a devolver en SignIn (nil = éxito)
	signUpErr     error             // error a devolver en SignUp
	signUpSession *auth.Session     // sesión que acompaña al sign-up (nil = confirmación pendiente)
	signInCalls   int
	signUpCalls   int
}

func (p *fakeProvider) SignIn(_ context.Context, email, password string) (*entity.Account, error) {
	p.signInCalls++
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	now := time.Now()
	return &entity.Account{ID: demoAcctID, Email: email, ConfirmedAt: &now}, nil
}

func (p *fakeProvider) SignUp(_ context.Context, email, _ string, _ map[string]string) (*auth.SignUpResult, error) {
	p.signUpCalls++
	if p.signUpErr != nil {
		return nil, p.signUpErr
	}
	return &auth.SignUpResult{
		Account: &entity.Account{ID: demoAcctID, Email: email},
		Session: p.signUpSession,
	}, nil
}

// fakeStaffRepo registra las actualizaciones de vínculo cuenta↔staff.
type fakeStaffRepo struct {
	updateCalls  int
	updateEmail  string
	updateAcctID string
	updateErr    error
	staff        *entity.Staff
}

func (r *fakeStaffRepo) Create(*entity.Staff) error                          { return nil }
func (r *fakeStaffRepo) GetByID(string) (*entity.Staff, error)               { return r.staff, nil }
func (r *fakeStaffRepo) GetByEmail(string) (*entity.Staff, error)            { return r.staff, nil }
func (r *fakeStaffRepo) GetWithVendor(string) (*entity.Staff, error)         { return r.staff, nil }
func (r *fakeStaffRepo) GetByBadgeCode(string) (*entity.Staff, error)        { return r.staff, nil }
func (r *fakeStaffRepo) GetByAccountID(string) (*entity.Staff, error)        { return r.staff, nil }
func (r *fakeStaffRepo) ListByVendor(string, int, int) ([]*entity.Staff, error) {
	return nil, nil
}
func (r *fakeStaffRepo) Update(*entity.Staff) error { return nil }

func (r *fakeStaffRepo) UpdateAccountID(email, accountID string) error {
	r.updateCalls++
	r.updateEmail = email
	r.updateAcctID = accountID
	return r.updateErr
}

func newBootstrap(p *fakeProvider, r *fakeStaffRepo) *auth.DemoBootstrap {
	return auth.NewDemoBootstrap(p, r, auth.DemoIdentity{Email: demoEmail, Password: demoPassword}, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests EnsureDemoAccount
// ──────────────────────────────────────────────────────────────────────────────

// Camino rápido: la cuenta ya existe y está confirmada. No debe emitirse
// ninguna petición de creación ni de actualización de staff.
func TestEnsureDemoAccount_CuentaExistente_CaminoRapido(t *testing.T) {
	provider := &fakeProvider{}
	repo := &fakeStaffRepo{}
	b := newBootstrap(provider, repo)

	res := b.EnsureDemoAccount(context.Background())

	require.Equal(t, auth.BootstrapSignedIn, res.Status)
	assert.True(t, res.Success())
	require.NotNil(t, res.Account)
	assert.Equal(t, demoAcctID, res.Account.ID)
	assert.False(t, res.NeedsConfirmation)

	assert.Equal(t, 1, provider.signInCalls)
	assert.Equal(t, 0, provider.signUpCalls, "no debe haber sign-up si el sign-in funcionó")
	assert.Equal(t, 0, repo.updateCalls, "el camino rápido no debe tocar el registro de staff")
}

// Backend limpio: el sign-in falla por credenciales y el bootstrap crea la
// cuenta con exactamente un sign-up y un update de staff.
func TestEnsureDemoAccount_BackendLimpio_CreaCuenta(t *testing.T) {
	provider := &fakeProvider{
		signInErr:     domain.ErrInvalidCredentials,
		signUpSession: &auth.Session{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)},
	}
	repo := &fakeStaffRepo{}
	b := newBootstrap(provider, repo)

	res := b.EnsureDemoAccount(context.Background())

	require.Equal(t, auth.BootstrapCreated, res.Status)
	assert.True(t, res.Success())
	assert.False(t, res.NeedsConfirmation, "con sesión emitida no hay confirmación pendiente")

	assert.Equal(t, 1, provider.signInCalls)
	assert.Equal(t, 1, provider.signUpCalls, "exactamente un sign-up")
	assert.Equal(t, 1, repo.updateCalls, "exactamente un update de staff")
	assert.Equal(t, demoEmail, repo.updateEmail)
	assert.Equal(t, demoAcctID, repo.updateAcctID)
}

// Sign-up sin sesión: la cuenta quedó creada pero el proveedor exige
// confirmación por email.
func TestEnsureDemoAccount_SignUpSinSesion_NeedsConfirmation(t *testing.T) {
	provider := &fakeProvider{
		signInErr:     domain.ErrInvalidCredentials,
		signUpSession: nil,
	}
	repo := &fakeStaffRepo{}
	b := newBootstrap(provider, repo)

	res := b.EnsureDemoAccount(context.Background())

	require.Equal(t, auth.BootstrapCreated, res.Status)
	assert.True(t, res.NeedsConfirmation)
}

// Cuenta creada pero sin confirmar: no debe re-intentarse el sign-up (fallaría
// por email duplicado y taparía el estado real).
func TestEnsureDemoAccount_PendienteConfirmacion_NoReintentaSignUp(t *testing.T) {
	provider := &fakeProvider{signInErr: domain.ErrEmailNotConfirmed}
	repo := &fakeStaffRepo{}
	b := newBootstrap(provider, repo)

	res := b.EnsureDemoAccount(context.Background())

	require.Equal(t, auth.BootstrapConfirmationPending, res.Status)
	assert.True(t, res.Success())
	assert.True(t, res.NeedsConfirmation)
	assert.Nil(t, res.Account)
	assert.Equal(t, 0, provider.signUpCalls, "una cuenta pendiente no debe re-crearse")
	assert.Equal(t, 0, repo.updateCalls)
}

// Fallo no clasificado en el sign-in: estado failed con código SIGNIN_FAILED.
func TestEnsureDemoAccount_SignInFallaPorOtraRazon(t *testing.T) {
	boom := errors.New("timeout del proveedor")
	provider := &fakeProvider{signInErr: boom}
	b := newBootstrap(provider, &fakeStaffRepo{})

	res := b.EnsureDemoAccount(context.Background())

	require.Equal(t, auth.BootstrapFailed, res.Status)
	assert.False(t, res.Success())
	assert.Equal(t, auth.CodeSignInFailed, res.Code)
	assert.ErrorIs(t, res.Err, boom)
	assert.Equal(t, 0, provider.signUpCalls)
}

// Fallo en el sign-up: estado failed con código SIGNUP_FAILED.
func TestEnsureDemoAccount_SignUpFalla(t *testing.T) {
	boom := errors.New("sign-up rechazado")
	provider := &fakeProvider{
		signInErr: domain.ErrInvalidCredentials,
		signUpErr: boom,
	}
	repo := &fakeStaffRepo{}
	b := newBootstrap(provider, repo)

	res := b.EnsureDemoAccount(context.Background())

	require.Equal(t, auth.BootstrapFailed, res.Status)
	assert.Equal(t, auth.CodeSignUpFailed, res.Code)
	assert.ErrorIs(t, res.Err, boom)
	assert.Equal(t, 0, repo.updateCalls, "sin cuenta creada no hay vínculo de staff")
}

// Un fallo al vincular el staff no tumba el bootstrap: la cuenta ya existe en
// el proveedor y el vínculo se recupera en la siguiente ejecución.
func TestEnsureDemoAccount_FalloDeVinculoNoEsFatal(t *testing.T) {
	provider := &fakeProvider{
		signInErr:     domain.ErrInvalidCredentials,
		signUpSession: &auth.Session{AccessToken: "tok"},
	}
	repo := &fakeStaffRepo{updateErr: errors.New("db caída")}
	b := newBootstrap(provider, repo)

	res := b.EnsureDemoAccount(context.Background())

	require.Equal(t, auth.BootstrapCreated, res.Status)
	assert.True(t, res.Success())
	assert.Equal(t, 1, repo.updateCalls)
}

// Idempotencia: repetir el bootstrap con la cuenta ya usable entra siempre por
// el camino rápido sin efectos adicionales.
func TestEnsureDemoAccount_RepetirEsIdempotente(t *testing.T) {
	provider := &fakeProvider{}
	repo := &fakeStaffRepo{}
	b := newBootstrap(provider, repo)

	for i := 0; i < 3; i++ {
		res := b.EnsureDemoAccount(context.Background())
		require.Equal(t, auth.BootstrapSignedIn, res.Status)
	}
	assert.Equal(t, 3, provider.signInCalls)
	assert.Equal(t, 0, provider.signUpCalls)
	assert.Equal(t, 0, repo.updateCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests IsDemoIdentity
// ──────────────────────────────────────────────────────────────────────────────

func TestIsDemoIdentity(t *testing.T) {
	b := newBootstrap(&fakeProvider{}, &fakeStaffRepo{})

	assert.True(t, b.IsDemoIdentity(demoEmail))
	assert.False(t, b.IsDemoIdentity("otro@demo.com"))
	assert.False(t, b.IsDemoIdentity(""), "email vacío nunca es la identidad demo")
}
