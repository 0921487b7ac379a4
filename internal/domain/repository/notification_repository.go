package repository

import "github.com/jhoicas/FilaVirtual-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification (DIP).
type NotificationRepository interface {
	Create(n *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	ListByTicket(ticketID string) ([]*entity.Notification, error)
	// MarkDelivered marca la notificación como entregada y fija sent_at.
	MarkDelivered(id string) error
}
