package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FilaVirtual-api/internal/application/usecase"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	apphttp "github.com/jhoicas/FilaVirtual-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes y helpers
// ──────────────────────────────────────────────────────────────────────────────

type fakeVendorRepo struct {
	vendors map[string]*entity.Vendor
	updated *entity.Vendor
}

func newFakeVendorRepo(vendors ...*entity.Vendor) *fakeVendorRepo {
	f := &fakeVendorRepo{vendors: make(map[string]*entity.Vendor)}
	for _, v := range vendors {
		f.vendors[v.ID] = v
	}
	return f
}

func (f *fakeVendorRepo) Create(v *entity.Vendor) error {
	f.vendors[v.ID] = v
	return nil
}

// GetByID imita al adaptador de Postgres: nil sin error cuando no existe.
func (f *fakeVendorRepo) GetByID(id string) (*entity.Vendor, error) {
	return f.vendors[id], nil
}

func (f *fakeVendorRepo) List(limit, offset int) ([]*entity.Vendor, error) {
	var list []*entity.Vendor
	for _, v := range f.vendors {
		list = append(list, v)
	}
	return list, nil
}

func (f *fakeVendorRepo) Update(v *entity.Vendor) error {
	f.updated = v
	f.vendors[v.ID] = v
	return nil
}

// buildVendorApp registra las rutas de vendors igual que el router real:
// lectura pública, actualización protegida y restringida a owners.
func buildVendorApp(repo *fakeVendorRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewVendorHandler(usecase.NewVendorUseCase(repo))
	app.Get("/api/vendors/:id", h.Get)
	app.Put("/api/vendors/:id",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(entity.RoleOwner),
		h.Update,
	)
	return app
}

func testVendor(id string) *entity.Vendor {
	now := time.Now()
	return &entity.Vendor{
		ID:        id,
		Name:      "Arepas Doña Rosa",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func doVendorPut(t *testing.T, app *fiber.App, id, body, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/api/vendors/"+id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/vendors/:id
// ──────────────────────────────────────────────────────────────────────────────

// Un vendor inexistente debe responder 404 con código NOT_FOUND, nunca un
// cuerpo null con 200: el repositorio reporta "no existe" como nil sin error
// y el handler tiene que traducirlo.
func TestVendorGet_NoExiste_Retorna404(t *testing.T) {
	app := buildVendorApp(newFakeVendorRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/vendors/no-existe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"vendor inexistente debe responder 404")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
	assert.NotEqual(t, "null", strings.TrimSpace(string(body)),
		"nunca debe serializarse null como cuerpo")
}

func TestVendorGet_Existente_Retorna200(t *testing.T) {
	app := buildVendorApp(newFakeVendorRepo(testVendor(testVendorID)))

	req := httptest.NewRequest(http.MethodGet, "/api/vendors/"+testVendorID, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, testVendorID, out["id"])
	assert.Equal(t, "Arepas Doña Rosa", out["name"])
}

// ──────────────────────────────────────────────────────────────────────────────
// PUT /api/vendors/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestVendorUpdate_OwnerActualizaSuPuesto(t *testing.T) {
	repo := newFakeVendorRepo(testVendor(testVendorID))
	app := buildVendorApp(repo)

	resp := doVendorPut(t, app, testVendorID,
		`{"name":"Arepas La Esquina"}`, tokenForRole(t, entity.RoleOwner))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Arepas La Esquina", out["name"])

	require.NotNil(t, repo.updated, "el repositorio debe recibir la actualización")
	assert.Equal(t, "Arepas La Esquina", repo.updated.Name)
}

// El token pertenece a otro vendor: no puede modificar un puesto ajeno.
func TestVendorUpdate_OtroPuesto_Retorna403(t *testing.T) {
	otherID := "00000000-0000-0000-0000-00000000009f"
	repo := newFakeVendorRepo(testVendor(otherID))
	app := buildVendorApp(repo)

	resp := doVendorPut(t, app, otherID,
		`{"name":"Intruso"}`, tokenForRole(t, entity.RoleOwner))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Nil(t, repo.updated, "no debe tocarse el repositorio")
}

func TestVendorUpdate_StaffBloqueado_Retorna403(t *testing.T) {
	repo := newFakeVendorRepo(testVendor(testVendorID))
	app := buildVendorApp(repo)

	resp := doVendorPut(t, app, testVendorID,
		`{"name":"Sin permiso"}`, tokenForRole(t, entity.RoleStaff))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Nil(t, repo.updated)
}

func TestVendorUpdate_NoExiste_Retorna404(t *testing.T) {
	app := buildVendorApp(newFakeVendorRepo())

	resp := doVendorPut(t, app, testVendorID,
		`{"name":"Fantasma"}`, tokenForRole(t, entity.RoleOwner))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVendorUpdate_NombreVacio_Retorna400(t *testing.T) {
	repo := newFakeVendorRepo(testVendor(testVendorID))
	app := buildVendorApp(repo)

	resp := doVendorPut(t, app, testVendorID,
		`{"name":""}`, tokenForRole(t, entity.RoleOwner))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, repo.updated)
}
