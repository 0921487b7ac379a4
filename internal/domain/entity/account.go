package entity

import "time"

// Account es el handle de una cuenta en el proveedor de auth (identidad
// email/password). No es dueño de este recurso el dominio: se consume como
// colaborador externo y aquí solo viven los campos que la aplicación necesita.
type Account struct {
	ID           string
	Email        string
	ConfirmedAt  *time.Time // nil = cuenta creada pero pendiente de confirmación
	PasswordHash string     // solo en el proveedor local; el remoto nunca lo expone
	CreatedAt    time.Time
}

// Confirmed indica si la cuenta ya puede autenticarse.
func (a *Account) Confirmed() bool {
	return a.ConfirmedAt != nil
}
