package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FilaVirtual-api/internal/application/auth"
	"github.com/jhoicas/FilaVirtual-api/internal/application/dto"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
	"github.com/jhoicas/FilaVirtual-api/pkg/logger"
)

const demoBadge = "DEMO_QR_123"

func newAuthUseCase(provider auth.Provider, repo *fakeStaffRepo) *auth.AuthUseCase {
	demo := auth.DemoIdentity{Email: demoEmail, Password: demoPassword}
	log := logger.Nop()
	bootstrap := auth.NewDemoBootstrap(provider, repo, demo, log)
	sessions := auth.NewDemoSessionManager(newFakeStore(), repo, demoEmail, log)
	return auth.NewAuthUseCase(provider, bootstrap, sessions, repo, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "filavirtual-test",
	}, demoBadge, log)
}

// Login con la identidad demo y cuenta ya usable: se emite JWT de la API.
func TestLogin_DemoConCuentaUsable(t *testing.T) {
	provider := &fakeProvider{}
	repo := &fakeStaffRepo{staff: demoStaff()}
	uc := newAuthUseCase(provider, repo)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: demoEmail, Password: demoPassword})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "staff-demo-1", out.Staff.ID)
	assert.Equal(t, 1, provider.signInCalls)
	assert.Equal(t, 0, provider.signUpCalls)
}

// Login demo con cuenta pendiente de confirmación: el caller recibe el error
// tipado para ofrecer la ruta QR.
func TestLogin_DemoPendienteConfirmacion(t *testing.T) {
	provider := &fakeProvider{signInErr: domain.ErrEmailNotConfirmed}
	uc := newAuthUseCase(provider, &fakeStaffRepo{staff: demoStaff()})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: demoEmail, Password: demoPassword})
	assert.ErrorIs(t, err, domain.ErrEmailNotConfirmed)
}

// Login demo en backend limpio sin sesión del sign-up: también pendiente.
func TestLogin_DemoCreadaSinSesion(t *testing.T) {
	provider := &fakeProvider{signInErr: domain.ErrInvalidCredentials, signUpSession: nil}
	uc := newAuthUseCase(provider, &fakeStaffRepo{staff: demoStaff()})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: demoEmail, Password: demoPassword})
	assert.ErrorIs(t, err, domain.ErrEmailNotConfirmed)
	assert.Equal(t, 1, provider.signUpCalls, "la cuenta sí debe quedar creada")
}

// Login normal (no demo) con credenciales inválidas propaga el error tipado.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	provider := &fakeProvider{signInErr: domain.ErrInvalidCredentials}
	uc := newAuthUseCase(provider, &fakeStaffRepo{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "otro@mercado.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, 0, provider.signUpCalls, "un email no demo jamás dispara el bootstrap")
}

// QR demo: dispara el bootstrap y entrega una pseudo-sesión local, no un JWT.
func TestQRLogin_BadgeDemo_CreaPseudoSesion(t *testing.T) {
	provider := &fakeProvider{}
	repo := &fakeStaffRepo{staff: demoStaff()}
	uc := newAuthUseCase(provider, repo)

	out, err := uc.QRLogin(context.Background(), dto.QRLoginRequest{BadgeCode: demoBadge})
	require.NoError(t, err)

	assert.True(t, out.DemoSession)
	assert.Contains(t, out.Token, "demo_session_", "el token demo es la pseudo-sesión local")
	assert.Equal(t, "staff-demo-1", out.Staff.ID)

	// La pseudo-sesión debe validar de inmediato.
	v := uc.ValidateDemoSession(context.Background())
	require.True(t, v.Valid)
	assert.Equal(t, out.Token, v.Token)
}

// QR demo seguido de logout: la pseudo-sesión queda invalidada.
func TestQRLogin_LogoutInvalidaSesion(t *testing.T) {
	uc := newAuthUseCase(&fakeProvider{}, &fakeStaffRepo{staff: demoStaff()})

	_, err := uc.QRLogin(context.Background(), dto.QRLoginRequest{BadgeCode: demoBadge})
	require.NoError(t, err)

	uc.ClearDemoSession(context.Background())
	assert.False(t, uc.ValidateDemoSession(context.Background()).Valid)
}

// QR con código desconocido: no encontrado, nunca bootstrap.
func TestQRLogin_BadgeDesconocido(t *testing.T) {
	provider := &fakeProvider{}
	uc := newAuthUseCase(provider, &fakeStaffRepo{})

	_, err := uc.QRLogin(context.Background(), dto.QRLoginRequest{BadgeCode: "QR_FALSO"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, provider.signInCalls)
	assert.Equal(t, 0, provider.signUpCalls)
}

// QR de staff real con cuenta vinculada: emite JWT normal.
func TestQRLogin_StaffConCuenta(t *testing.T) {
	staff := demoStaff()
	staff.AccountID = "acct-real"
	staff.QRBadgeCode = "QR_STAFF_7"
	uc := newAuthUseCase(&fakeProvider{}, &fakeStaffRepo{staff: staff})

	out, err := uc.QRLogin(context.Background(), dto.QRLoginRequest{BadgeCode: "QR_STAFF_7"})
	require.NoError(t, err)
	assert.False(t, out.DemoSession)
	assert.NotEmpty(t, out.Token)
}

// QR de staff sin cuenta vinculada: prohibido.
func TestQRLogin_StaffSinCuenta(t *testing.T) {
	staff := demoStaff()
	staff.AccountID = ""
	staff.QRBadgeCode = "QR_STAFF_8"
	uc := newAuthUseCase(&fakeProvider{}, &fakeStaffRepo{staff: staff})

	_, err := uc.QRLogin(context.Background(), dto.QRLoginRequest{BadgeCode: "QR_STAFF_8"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// confirmingProvider extiende el fake con confirmación local de cuentas.
type confirmingProvider struct {
	fakeProvider
	confirmed  []string
	confirmErr error
}

func (p *confirmingProvider) ConfirmAccount(ctx context.Context, email string) error {
	if p.confirmErr != nil {
		return p.confirmErr
	}
	p.confirmed = append(p.confirmed, email)
	return nil
}

// Con un proveedor que confirma localmente, ConfirmEmail delega en él.
func TestConfirmEmail_ProveedorLocal(t *testing.T) {
	provider := &confirmingProvider{}
	uc := newAuthUseCase(provider, &fakeStaffRepo{})

	err := uc.ConfirmEmail(context.Background(), "maria@mercado.co")
	require.NoError(t, err)
	assert.Equal(t, []string{"maria@mercado.co"}, provider.confirmed)
}

// Con un proveedor sin confirmación local (el remoto) la operación no aplica.
func TestConfirmEmail_ProveedorRemoto_NoSoportado(t *testing.T) {
	uc := newAuthUseCase(&fakeProvider{}, &fakeStaffRepo{})

	err := uc.ConfirmEmail(context.Background(), "maria@mercado.co")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El error del proveedor (cuenta inexistente) se propaga tipado.
func TestConfirmEmail_CuentaInexistente(t *testing.T) {
	provider := &confirmingProvider{confirmErr: domain.ErrNotFound}
	uc := newAuthUseCase(provider, &fakeStaffRepo{})

	err := uc.ConfirmEmail(context.Background(), "nadie@mercado.co")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
