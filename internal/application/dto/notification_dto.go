package dto

import "time"

// SendNotificationRequest entrada para avisar al cliente de un ticket.
type SendNotificationRequest struct {
	TicketID string `json:"ticket_id" validate:"required,uuid"`
	Type     string `json:"type" validate:"required,oneof=in_app sms whatsapp"`
	Message  string `json:"message" validate:"required,min=1,max=500"`
}

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID        string     `json:"id"`
	TicketID  string     `json:"ticket_id"`
	Type      string     `json:"type"`
	Message   string     `json:"message"`
	Delivered bool       `json:"delivered"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
