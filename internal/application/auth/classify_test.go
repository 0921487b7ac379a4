package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/FilaVirtual-api/internal/application/auth"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
)

// El matching por substring sobre los mensajes del proveedor vive en un solo
// lugar; esta tabla fija el contrato con los wordings conocidos de GoTrue.
func TestClassifyAuthMessage(t *testing.T) {
	cases := []struct {
		name string
		msg  string
		want error
	}{
		{"credenciales inválidas", "Invalid login credentials", domain.ErrInvalidCredentials},
		{"código invalid_credentials", "invalid_credentials", domain.ErrInvalidCredentials},
		{"código invalid_grant", "invalid_grant: bad password", domain.ErrInvalidCredentials},
		{"email sin confirmar", "Email not confirmed", domain.ErrEmailNotConfirmed},
		{"código email_not_confirmed", "error: email_not_confirmed", domain.ErrEmailNotConfirmed},
		{"email ya registrado", "User already registered", domain.ErrEmailAlreadyExists},
		{"variante already been registered", "A user with this email address has already been registered", domain.ErrEmailAlreadyExists},
		{"mensaje desconocido", "database connection lost", nil},
		{"mensaje vacío", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := auth.ClassifyAuthMessage(tc.msg)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

// El matching debe ser case-insensitive: el proveedor no garantiza mayúsculas.
func TestClassifyAuthMessage_CaseInsensitive(t *testing.T) {
	assert.ErrorIs(t, auth.ClassifyAuthMessage("INVALID LOGIN CREDENTIALS"), domain.ErrInvalidCredentials)
	assert.ErrorIs(t, auth.ClassifyAuthMessage("EMAIL NOT CONFIRMED"), domain.ErrEmailNotConfirmed)
}
