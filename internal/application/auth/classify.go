package auth

import (
	"strings"

	"github.com/jhoicas/FilaVirtual-api/internal/domain"
)

// ClassifyAuthMessage traduce el texto libre de error del proveedor remoto a
// un error tipado de dominio. GoTrue solo expone mensajes, no códigos, así que
// el matching por substring queda aislado aquí (y cubierto por unit tests);
// si el wording del proveedor cambia, este es el único lugar a tocar.
//
// Devuelve nil si el mensaje no corresponde a ninguna categoría conocida.
func ClassifyAuthMessage(msg string) error {
	m := strings.ToLower(msg)
	switch {
	case strings.Contains(m, "invalid login credentials"),
		strings.Contains(m, "invalid_credentials"),
		strings.Contains(m, "invalid_grant"):
		return domain.ErrInvalidCredentials
	case strings.Contains(m, "email not confirmed"),
		strings.Contains(m, "email_not_confirmed"):
		return domain.ErrEmailNotConfirmed
	case strings.Contains(m, "already registered"),
		strings.Contains(m, "already been registered"):
		return domain.ErrEmailAlreadyExists
	}
	return nil
}
