package entity

import "time"

// Tipos de notificación al cliente.
const (
	NotificationInApp    = "in_app"
	NotificationSMS      = "sms"
	NotificationWhatsApp = "whatsapp"
)

// ValidNotificationType valida el tipo contra el enum del esquema.
func ValidNotificationType(t string) bool {
	switch t {
	case NotificationInApp, NotificationSMS, NotificationWhatsApp:
		return true
	}
	return false
}

// Notification es un aviso enviado al cliente de un ticket (turno listo, etc.).
type Notification struct {
	ID        string
	TicketID  string
	Type      string // in_app, sms, whatsapp
	Message   string
	Delivered bool
	SentAt    *time.Time
	CreatedAt time.Time
}
