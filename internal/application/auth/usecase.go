package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/FilaVirtual-api/internal/application/dto"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
	"github.com/jhoicas/FilaVirtual-api/pkg/jwt"
	"github.com/jhoicas/FilaVirtual-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens propios de la API.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login (password y QR), registro
// y la ruta demo (bootstrap + pseudo-sesión).
type AuthUseCase struct {
	provider  Provider
	bootstrap *DemoBootstrap
	sessions  *DemoSessionManager
	staffRepo repository.StaffRepository
	jwtCfg    JWTConfig
	demoBadge string
	log       *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	provider Provider,
	bootstrap *DemoBootstrap,
	sessions *DemoSessionManager,
	staffRepo repository.StaffRepository,
	jwtCfg JWTConfig,
	demoBadge string,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		provider:  provider,
		bootstrap: bootstrap,
		sessions:  sessions,
		staffRepo: staffRepo,
		jwtCfg:    jwtCfg,
		demoBadge: demoBadge,
		log:       log,
	}
}

// Login autentica contra el proveedor y emite un JWT de la API.
// Si las credenciales son exactamente la identidad demo, pasa primero por el
// bootstrap para garantizar que la cuenta exista.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	demo := uc.bootstrap.Identity()
	if uc.bootstrap.IsDemoIdentity(in.Email) && in.Password == demo.Password {
		res := uc.bootstrap.EnsureDemoAccount(ctx)
		switch res.Status {
		case BootstrapFailed:
			return nil, res.Err
		case BootstrapConfirmationPending:
			return nil, domain.ErrEmailNotConfirmed
		case BootstrapCreated:
			if res.NeedsConfirmation {
				// Cuenta creada pero sin sesión: el caller debe ofrecer la ruta QR.
				return nil, domain.ErrEmailNotConfirmed
			}
		}
		return uc.issueForEmail(in.Email)
	}

	account, err := uc.provider.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	staff, err := uc.staffRepo.GetByAccountID(account.ID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		// Cuenta sin registro de staff vinculado todavía: intentar por email.
		staff, err = uc.staffRepo.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
	}
	if staff == nil {
		return nil, domain.ErrStaffNotFound
	}
	return uc.issue(staff)
}

// Register crea la cuenta en el proveedor y el registro de staff del vendor.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	existing, err := uc.staffRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	res, err := uc.provider.SignUp(ctx, in.Email, in.Password, map[string]string{"role": role})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	staff := &entity.Staff{
		ID:        uuid.New().String(),
		VendorID:  in.VendorID,
		AccountID: res.Account.ID,
		Email:     in.Email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.staffRepo.Create(staff); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Staff:             *toStaffResponse(staff),
		NeedsConfirmation: res.Session == nil,
	}, nil
}

// ConfirmEmail confirma una cuenta pendiente cuando el proveedor soporta
// confirmación local. Con un proveedor remoto devuelve ErrInvalidInput: ahí
// la confirmación llega por el enlace de email del propio servicio.
func (uc *AuthUseCase) ConfirmEmail(ctx context.Context, email string) error {
	confirmer, ok := uc.provider.(AccountConfirmer)
	if !ok {
		return fmt.Errorf("%w: la confirmación la gestiona el proveedor de identidad externo", domain.ErrInvalidInput)
	}
	if err := confirmer.ConfirmAccount(ctx, email); err != nil {
		return err
	}
	uc.log.Info().Str("email", email).Msg("cuenta confirmada")
	return nil
}

// QRLogin autentica por código de credencial QR.
//
// El código demo dispara el bootstrap y, como el proveedor puede no emitir una
// sesión real de forma síncrona, la ruta demo usa la pseudo-sesión local en
// lugar de un JWT. Cualquier otro código se busca como credencial de staff;
// un código desconocido se reporta como no encontrado (el caller lo trata como
// credencial no reconocida).
func (uc *AuthUseCase) QRLogin(ctx context.Context, in dto.QRLoginRequest) (*dto.QRLoginResponse, error) {
	if in.BadgeCode == uc.demoBadge {
		res := uc.bootstrap.EnsureDemoAccount(ctx)
		if !res.Success() {
			return nil, res.Err
		}
		staff, err := uc.staffRepo.GetByEmail(uc.bootstrap.Identity().Email)
		if err != nil {
			return nil, err
		}
		if staff == nil {
			return nil, domain.ErrStaffNotFound
		}
		sess, err := uc.sessions.Create(ctx, staff.ID)
		if err != nil {
			return nil, err
		}
		return &dto.QRLoginResponse{Token: sess.Token, DemoSession: true, Staff: *toStaffResponse(staff)}, nil
	}

	staff, err := uc.staffRepo.GetByBadgeCode(in.BadgeCode)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrNotFound
	}
	if !staff.HasAccount() {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, staff.ID, staff.VendorID, staff.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.QRLoginResponse{Token: token, Staff: *toStaffResponse(staff)}, nil
}

// ValidateDemoSession expone la validación de la pseudo-sesión para el handler.
func (uc *AuthUseCase) ValidateDemoSession(ctx context.Context) *dto.DemoSessionResponse {
	v := uc.sessions.Validate(ctx)
	if !v.Valid {
		return &dto.DemoSessionResponse{Valid: false}
	}
	return &dto.DemoSessionResponse{Valid: true, Token: v.Token, Staff: toStaffResponse(v.Staff)}
}

// ClearDemoSession invalida la pseudo-sesión (logout demo).
func (uc *AuthUseCase) ClearDemoSession(ctx context.Context) {
	uc.sessions.Clear(ctx)
}

// issueForEmail busca el staff por email y emite el JWT.
func (uc *AuthUseCase) issueForEmail(email string) (*dto.LoginResponse, error) {
	staff, err := uc.staffRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrStaffNotFound
	}
	return uc.issue(staff)
}

func (uc *AuthUseCase) issue(staff *entity.Staff) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, staff.ID, staff.VendorID, staff.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Staff: *toStaffResponse(staff)}, nil
}

func toStaffResponse(s *entity.Staff) *dto.StaffResponse {
	if s == nil {
		return nil
	}
	out := &dto.StaffResponse{
		ID:         s.ID,
		VendorID:   s.VendorID,
		Email:      s.Email,
		Role:       s.Role,
		HasAccount: s.HasAccount(),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
	if s.Vendor != nil {
		out.Vendor = &dto.VendorResponse{
			ID:          s.Vendor.ID,
			Name:        s.Vendor.Name,
			APIEndpoint: s.Vendor.APIEndpoint,
			CreatedAt:   s.Vendor.CreatedAt,
			UpdatedAt:   s.Vendor.UpdatedAt,
		}
	}
	return out
}
