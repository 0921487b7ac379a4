package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FilaVirtual-api/internal/domain"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de cuentas
// ──────────────────────────────────────────────────────────────────────────────

type fakeAccountRepo struct {
	byEmail      map[string]*entity.Account
	confirmCalls int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]*entity.Account)}
}

func (f *fakeAccountRepo) Create(account *entity.Account) error {
	cp := *account
	f.byEmail[account.Email] = &cp
	return nil
}

func (f *fakeAccountRepo) GetByEmail(email string) (*entity.Account, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountRepo) GetByID(id string) (*entity.Account, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) Confirm(id string) error {
	f.confirmCalls++
	for _, a := range f.byEmail {
		if a.ID == id {
			now := time.Now()
			a.ConfirmedAt = &now
			return nil
		}
	}
	return domain.ErrNotFound
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de confirmación sin autoConfirm
// ──────────────────────────────────────────────────────────────────────────────

// Sin autoConfirm el sign-up deja la cuenta pendiente: el sign-in debe fallar
// con ErrEmailNotConfirmed hasta que ConfirmAccount la desbloquee.
func TestLocalProvider_ConfirmAccount_DesbloqueaSignIn(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAccountRepo()
	p := NewLocalProvider(repo, false)

	res, err := p.SignUp(ctx, "maria@mercado.co", "password123", nil)
	require.NoError(t, err)
	assert.Nil(t, res.Session, "sin autoConfirm no debe emitirse sesión")

	_, err = p.SignIn(ctx, "maria@mercado.co", "password123")
	require.ErrorIs(t, err, domain.ErrEmailNotConfirmed,
		"antes de confirmar el sign-in debe quedar bloqueado")

	require.NoError(t, p.ConfirmAccount(ctx, "maria@mercado.co"))

	account, err := p.SignIn(ctx, "maria@mercado.co", "password123")
	require.NoError(t, err, "tras confirmar el sign-in debe funcionar")
	assert.Equal(t, "maria@mercado.co", account.Email)
	assert.True(t, account.Confirmed())
}

// Confirmar dos veces no es error ni repite la escritura.
func TestLocalProvider_ConfirmAccount_Idempotente(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAccountRepo()
	p := NewLocalProvider(repo, false)

	_, err := p.SignUp(ctx, "pedro@mercado.co", "password123", nil)
	require.NoError(t, err)

	require.NoError(t, p.ConfirmAccount(ctx, "pedro@mercado.co"))
	require.NoError(t, p.ConfirmAccount(ctx, "pedro@mercado.co"))

	assert.Equal(t, 1, repo.confirmCalls,
		"la segunda confirmación no debe volver a escribir")
}

func TestLocalProvider_ConfirmAccount_CuentaInexistente(t *testing.T) {
	p := NewLocalProvider(newFakeAccountRepo(), false)

	err := p.ConfirmAccount(context.Background(), "nadie@mercado.co")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Con autoConfirm el flujo de confirmación no interviene: el sign-up ya deja
// la cuenta lista y con sesión.
func TestLocalProvider_AutoConfirm_NoRequiereConfirmacion(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAccountRepo()
	p := NewLocalProvider(repo, true)

	res, err := p.SignUp(ctx, "laura@mercado.co", "password123", nil)
	require.NoError(t, err)
	require.NotNil(t, res.Session, "con autoConfirm debe emitirse sesión")

	_, err = p.SignIn(ctx, "laura@mercado.co", "password123")
	require.NoError(t, err)
	assert.Zero(t, repo.confirmCalls)
}
