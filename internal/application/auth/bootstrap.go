package auth

import (
	"context"
	"errors"

	"github.com/jhoicas/FilaVirtual-api/internal/domain"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
	"github.com/jhoicas/FilaVirtual-api/pkg/logger"
)

// Estados posibles de un intento de bootstrap de la cuenta demo.
const (
	// BootstrapSignedIn: la cuenta ya existía y el sign-in funcionó (camino rápido).
	BootstrapSignedIn = "signed_in"
	// BootstrapCreated: la cuenta se creó en esta llamada.
	BootstrapCreated = "created"
	// BootstrapConfirmationPending: la cuenta existe pero sigue pendiente de
	// confirmación por email; no se re-crea.
	BootstrapConfirmationPending = "confirmation_pending"
	// BootstrapFailed: el proveedor rechazó el sign-in o el sign-up.
	BootstrapFailed = "failed"
)

// Códigos de fallo para el caller (se mapean a ErrorResponse en el handler).
const (
	CodeSignInFailed = "SIGNIN_FAILED"
	CodeSignUpFailed = "SIGNUP_FAILED"
)

// BootstrapResult describe el resultado de un intento de bootstrap.
// Valor transitorio: se construye por llamada y lo consume el caller de inmediato.
type BootstrapResult struct {
	Status            string
	Account           *entity.Account // nil en confirmation_pending y failed
	NeedsConfirmation bool
	Code              string // solo en failed: SIGNIN_FAILED | SIGNUP_FAILED
	Err               error  // solo en failed
}

// Success indica si la cuenta demo quedó en un estado usable o recuperable.
func (r *BootstrapResult) Success() bool {
	return r.Status != BootstrapFailed
}

// DemoIdentity es el par email/password fijo con el que se muestra el producto
// sin onboarding real de vendors.
type DemoIdentity struct {
	Email    string
	Password string
}

// DemoBootstrap garantiza que la identidad demo exista y sea usable para
// sign-in, creándola en el proveedor la primera vez que alguien la usa.
type DemoBootstrap struct {
	provider  Provider
	staffRepo repository.StaffRepository
	demo      DemoIdentity
	log       *logger.Logger
}

// NewDemoBootstrap construye el flujo de bootstrap.
func NewDemoBootstrap(provider Provider, staffRepo repository.StaffRepository, demo DemoIdentity, log *logger.Logger) *DemoBootstrap {
	return &DemoBootstrap{provider: provider, staffRepo: staffRepo, demo: demo, log: log}
}

// Identity expone la identidad demo configurada.
func (b *DemoBootstrap) Identity() DemoIdentity { return b.demo }

// IsDemoIdentity indica si el email es exactamente la identidad demo.
func (b *DemoBootstrap) IsDemoIdentity(email string) bool {
	return email != "" && email == b.demo.Email
}

// EnsureDemoAccount reconcilia los tres estados posibles de la cuenta demo en
// el proveedor: ya confirmada, todavía no creada, o creada sin confirmar.
//
// Una sola pasada, sin reintentos ni deduplicación de llamadas concurrentes:
// repetir la llamada siempre es seguro porque el sign-in inicial corta en
// cuanto la cuenta queda usable.
//
// Efectos: puede crear una cuenta durable en el proveedor y vincular el
// registro de staff pre-aprovisionado (match por email) con el account ID
// real. Los dos pasos no son atómicos: si el proceso muere entre ambos, el
// siguiente bootstrap entra por el camino rápido y el vínculo se repara al
// re-ejecutar (UpdateAccountID es idempotente).
func (b *DemoBootstrap) EnsureDemoAccount(ctx context.Context) *BootstrapResult {
	// 1. Camino rápido: la cuenta ya existe y está confirmada. No se toca el
	// registro de staff (el vínculo se hizo, o se hará, en la creación).
	account, err := b.provider.SignIn(ctx, b.demo.Email, b.demo.Password)
	if err == nil {
		return &BootstrapResult{Status: BootstrapSignedIn, Account: account}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		// Heurística: el proveedor no distingue "no existe" de "password
		// incorrecto", pero para la identidad fija ambos implican crearla.
		return b.create(ctx)

	case errors.Is(err, domain.ErrEmailNotConfirmed):
		// La cuenta ya existe; re-crearla fallaría por email duplicado y
		// taparía el estado real. Se reporta pendiente y el caller ofrece la
		// ruta alterna (QR).
		b.log.Warn().Str("email", b.demo.Email).Msg("cuenta demo pendiente de confirmación")
		return &BootstrapResult{Status: BootstrapConfirmationPending, NeedsConfirmation: true}

	default:
		b.log.Error().Err(err).Msg("sign-in de cuenta demo rechazado")
		return &BootstrapResult{Status: BootstrapFailed, Code: CodeSignInFailed, Err: err}
	}
}

// create registra la cuenta demo en el proveedor y vincula el staff.
func (b *DemoBootstrap) create(ctx context.Context) *BootstrapResult {
	b.log.Info().Str("email", b.demo.Email).Msg("creando cuenta demo")

	res, err := b.provider.SignUp(ctx, b.demo.Email, b.demo.Password, map[string]string{
		"demo": "true",
		"role": entity.RoleOwner,
	})
	if err != nil {
		b.log.Error().Err(err).Msg("sign-up de cuenta demo rechazado")
		return &BootstrapResult{Status: BootstrapFailed, Code: CodeSignUpFailed, Err: err}
	}

	b.linkStaff(res.Account.ID)

	// Sin sesión en la respuesta = el proveedor exige confirmación por email
	// antes de que la cuenta sirva para sign-in.
	return &BootstrapResult{
		Status:            BootstrapCreated,
		Account:           res.Account,
		NeedsConfirmation: res.Session == nil,
	}
}

// linkStaff apunta el registro de staff pre-aprovisionado a la cuenta real.
// Un fallo aquí no tumba el bootstrap: la cuenta ya quedó creada y el vínculo
// se recupera en la siguiente ejecución.
func (b *DemoBootstrap) linkStaff(accountID string) {
	if err := b.staffRepo.UpdateAccountID(b.demo.Email, accountID); err != nil {
		b.log.Error().Err(err).Str("email", b.demo.Email).Msg("no se pudo vincular el staff demo")
	}
}
