package auth_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FilaVirtual-api/internal/application/auth"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/pkg/logger"
)

// fakeStore almacén en memoria con fallo inyectable.
type fakeStore struct {
	values map[string]string
	getErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]string)}
}

func (s *fakeStore) Get(_ context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.values[key], nil
}

func (s *fakeStore) Set(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

func (s *fakeStore) Remove(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

func newSessionManager(store auth.Store, staff *entity.Staff) *auth.DemoSessionManager {
	repo := &fakeStaffRepo{staff: staff}
	return auth.NewDemoSessionManager(store, repo, demoEmail, logger.Nop())
}

func demoStaff() *entity.Staff {
	return &entity.Staff{
		ID:       "staff-demo-1",
		VendorID: "vendor-demo-1",
		Email:    demoEmail,
		Role:     entity.RoleOwner,
		Vendor:   &entity.Vendor{ID: "vendor-demo-1", Name: "Arepas Doña Rosa"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestDemoSession_Create_GuardaTokenYStaff(t *testing.T) {
	store := newFakeStore()
	m := newSessionManager(store, demoStaff())

	sess, err := m.Create(context.Background(), "staff-demo-1")
	require.NoError(t, err)

	assert.Equal(t, "staff-demo-1", sess.StaffID)
	assert.True(t, strings.HasPrefix(sess.Token, "demo_session_staff-demo-1_"),
		"el token debe embeber el staff ID: %s", sess.Token)
	assert.Equal(t, sess.Token, store.values["demo_session_token"])
	assert.Equal(t, "staff-demo-1", store.values["demo_staff_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Validate
// ──────────────────────────────────────────────────────────────────────────────

func TestDemoSession_Validate_SesionActiva(t *testing.T) {
	store := newFakeStore()
	m := newSessionManager(store, demoStaff())

	sess, err := m.Create(context.Background(), "staff-demo-1")
	require.NoError(t, err)

	v := m.Validate(context.Background())
	require.True(t, v.Valid)
	assert.Equal(t, sess.Token, v.Token)
	require.NotNil(t, v.Staff)
	assert.Equal(t, "staff-demo-1", v.Staff.ID)
	require.NotNil(t, v.Staff.Vendor, "el staff validado debe traer su vendor")
}

func TestDemoSession_Validate_SinSesion(t *testing.T) {
	m := newSessionManager(newFakeStore(), demoStaff())
	v := m.Validate(context.Background())
	assert.False(t, v.Valid)
	assert.Nil(t, v.Staff)
}

// Si falta cualquiera de los dos valores la sesión es inválida.
func TestDemoSession_Validate_ValoresParciales(t *testing.T) {
	cases := []struct {
		name string
		seed map[string]string
	}{
		{"solo token", map[string]string{"demo_session_token": "demo_session_x_1"}},
		{"solo staff", map[string]string{"demo_staff_id": "staff-demo-1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			for k, val := range tc.seed {
				store.values[k] = val
			}
			m := newSessionManager(store, demoStaff())
			assert.False(t, m.Validate(context.Background()).Valid)
		})
	}
}

// El staff referenciado ya no existe: la sesión es inválida aunque el token
// tenga la forma correcta.
func TestDemoSession_Validate_StaffInexistente(t *testing.T) {
	store := newFakeStore()
	m := newSessionManager(store, nil)

	_, err := m.Create(context.Background(), "staff-borrado")
	require.NoError(t, err)

	assert.False(t, m.Validate(context.Background()).Valid)
}

// Un fallo del almacén invalida en lugar de propagar error.
func TestDemoSession_Validate_FalloDelAlmacen(t *testing.T) {
	store := newFakeStore()
	store.getErr = fmt.Errorf("almacén caído")
	m := newSessionManager(store, demoStaff())

	assert.False(t, m.Validate(context.Background()).Valid)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Clear
// ──────────────────────────────────────────────────────────────────────────────

func TestDemoSession_Clear_InvalidaLaSesion(t *testing.T) {
	store := newFakeStore()
	m := newSessionManager(store, demoStaff())

	_, err := m.Create(context.Background(), "staff-demo-1")
	require.NoError(t, err)
	require.True(t, m.Validate(context.Background()).Valid)

	m.Clear(context.Background())
	assert.False(t, m.Validate(context.Background()).Valid)

	// Idempotente: limpiar sin sesión no debe explotar.
	m.Clear(context.Background())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests IsDemoIdentity
// ──────────────────────────────────────────────────────────────────────────────

func TestDemoSession_IsDemoIdentity(t *testing.T) {
	m := newSessionManager(newFakeStore(), demoStaff())
	assert.True(t, m.IsDemoIdentity(demoEmail))
	assert.False(t, m.IsDemoIdentity("intruso@demo.com"))
	assert.False(t, m.IsDemoIdentity(""))
}
