// Package identity implementa los adaptadores del puerto auth.Provider:
// el servicio de auth de Supabase (GoTrue) en producción y un proveedor
// local sobre Postgres para desarrollo.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/FilaVirtual-api/internal/application/auth"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
)

var _ auth.Provider = (*SupabaseClient)(nil)

// SupabaseClient implementa auth.Provider contra el endpoint GoTrue de un
// proyecto Supabase (/auth/v1). Usa net/http de la stdlib.
type SupabaseClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewSupabaseClient construye el cliente. baseURL es la URL del proyecto
// (ej. https://xyz.supabase.co); apiKey la anon key.
func NewSupabaseClient(baseURL, apiKey string) *SupabaseClient {
	return &SupabaseClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ── Estructuras del wire GoTrue ───────────────────────────────────────────────

type gotrueUser struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// gotrueResponse cubre las dos formas de respuesta: sesión completa
// (access_token + user) o solo el user cuando falta confirmación.
type gotrueResponse struct {
	AccessToken string      `json:"access_token"`
	ExpiresIn   int         `json:"expires_in"`
	User        *gotrueUser `json:"user"`

	// Campos top-level cuando la respuesta es el user directamente.
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// gotrueError cubre las variantes de cuerpo de error del servicio.
type gotrueError struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e *gotrueError) text() string {
	for _, s := range []string{e.Message, e.Msg, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// ── auth.Provider ─────────────────────────────────────────────────────────────

// SignIn autentica con email+password (grant_type=password).
func (c *SupabaseClient) SignIn(ctx context.Context, email, password string) (*entity.Account, error) {
	body := map[string]string{"email": email, "password": password}
	res, err := c.post(ctx, "/auth/v1/token?grant_type=password", body)
	if err != nil {
		return nil, err
	}
	if res.User == nil {
		return nil, fmt.Errorf("supabase: respuesta de sign-in sin user")
	}
	return &entity.Account{
		ID:          res.User.ID,
		Email:       res.User.Email,
		ConfirmedAt: res.User.ConfirmedAt,
		CreatedAt:   res.User.CreatedAt,
	}, nil
}

// SignUp registra la cuenta. Si el proyecto exige confirmación por email,
// GoTrue devuelve solo el user (sin access_token) y el resultado lleva
// Session == nil.
func (c *SupabaseClient) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*auth.SignUpResult, error) {
	body := map[string]any{"email": email, "password": password}
	if len(metadata) > 0 {
		body["data"] = metadata
	}
	res, err := c.post(ctx, "/auth/v1/signup", body)
	if err != nil {
		return nil, err
	}

	account := &entity.Account{}
	if res.User != nil {
		account.ID = res.User.ID
		account.Email = res.User.Email
		account.ConfirmedAt = res.User.ConfirmedAt
		account.CreatedAt = res.User.CreatedAt
	} else {
		account.ID = res.ID
		account.Email = res.Email
		account.ConfirmedAt = res.ConfirmedAt
		account.CreatedAt = res.CreatedAt
	}
	if account.ID == "" {
		return nil, fmt.Errorf("supabase: respuesta de sign-up sin user")
	}

	out := &auth.SignUpResult{Account: account}
	if res.AccessToken != "" {
		out.Session = &auth.Session{
			AccessToken: res.AccessToken,
			ExpiresAt:   time.Now().Add(time.Duration(res.ExpiresIn) * time.Second),
		}
	}
	return out, nil
}

// post arma la petición, ejecuta y decodifica. Los errores del servicio se
// pasan por el clasificador para obtener errores tipados de dominio.
func (c *SupabaseClient) post(ctx context.Context, path string, body any) (*gotrueResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("supabase: serializar petición: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("supabase: crear petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase: %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("supabase: leer respuesta: %w", err)
	}

	if resp.StatusCode >= 400 {
		var ge gotrueError
		_ = json.Unmarshal(raw, &ge)
		msg := ge.text()
		if typed := auth.ClassifyAuthMessage(msg); typed != nil {
			return nil, typed
		}
		if msg == "" {
			msg = string(raw)
		}
		return nil, fmt.Errorf("supabase: %s (HTTP %d): %s", path, resp.StatusCode, msg)
	}

	var out gotrueResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("supabase: decodificar respuesta: %w", err)
	}
	return &out, nil
}
