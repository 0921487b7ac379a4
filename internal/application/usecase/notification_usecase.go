package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/FilaVirtual-api/internal/application/dto"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
	"github.com/jhoicas/FilaVirtual-api/pkg/logger"
)

// NotificationEvent es el mensaje que se publica al broker para los gateways
// de SMS/WhatsApp.
type NotificationEvent struct {
	NotificationID string `json:"notification_id"`
	TicketID       string `json:"ticket_id"`
	TicketCode     string `json:"ticket_code"`
	CustomerPhone  string `json:"customer_phone,omitempty"`
	Type           string `json:"type"`
	Message        string `json:"message"`
}

// NotificationPublisher define el puerto de salida hacia el broker.
// La implementación concreta usa RabbitMQ; en dev se inyecta nil y las
// notificaciones sms/whatsapp quedan pendientes de entrega.
type NotificationPublisher interface {
	PublishNotification(ctx context.Context, event NotificationEvent) error
}

// NotificationUseCase crea y despacha avisos a los clientes de la fila.
type NotificationUseCase struct {
	notifRepo  repository.NotificationRepository
	ticketRepo repository.QueueTicketRepository
	publisher  NotificationPublisher // puede ser nil
	log        *logger.Logger
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(
	notifRepo repository.NotificationRepository,
	ticketRepo repository.QueueTicketRepository,
	publisher NotificationPublisher,
	log *logger.Logger,
) *NotificationUseCase {
	return &NotificationUseCase{notifRepo: notifRepo, ticketRepo: ticketRepo, publisher: publisher, log: log}
}

// Send crea la notificación para el ticket y la despacha según su tipo:
// in_app se marca entregada de inmediato; sms/whatsapp se publican al broker
// y se marcan entregadas solo si el broker aceptó el evento.
func (uc *NotificationUseCase) Send(ctx context.Context, vendorID string, in dto.SendNotificationRequest) (*dto.NotificationResponse, error) {
	if !entity.ValidNotificationType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	ticket, err := uc.ticketRepo.GetByID(in.TicketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	if ticket.VendorID != vendorID {
		return nil, domain.ErrForbidden
	}

	n := &entity.Notification{
		ID:        uuid.New().String(),
		TicketID:  in.TicketID,
		Type:      in.Type,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	if err := uc.notifRepo.Create(n); err != nil {
		return nil, err
	}

	delivered := in.Type == entity.NotificationInApp
	if !delivered && uc.publisher != nil {
		event := NotificationEvent{
			NotificationID: n.ID,
			TicketID:       ticket.ID,
			TicketCode:     ticket.TicketCode,
			CustomerPhone:  ticket.CustomerPhone,
			Type:           in.Type,
			Message:        in.Message,
		}
		if err := uc.publisher.PublishNotification(ctx, event); err != nil {
			// La fila queda creada con delivered=false; el despacho se puede
			// reintentar desde el panel.
			uc.log.Error().Err(err).Str("notification_id", n.ID).Msg("publicar notificación al broker")
		} else {
			delivered = true
		}
	}

	if delivered {
		if err := uc.notifRepo.MarkDelivered(n.ID); err != nil {
			return nil, err
		}
		now := time.Now()
		n.Delivered = true
		n.SentAt = &now
	}
	return entityToNotificationResponse(n), nil
}

// ListByTicket lista las notificaciones de un ticket del vendor.
func (uc *NotificationUseCase) ListByTicket(vendorID, ticketID string) ([]dto.NotificationResponse, error) {
	ticket, err := uc.ticketRepo.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	if ticket.VendorID != vendorID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.notifRepo.ListByTicket(ticketID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *entityToNotificationResponse(n))
	}
	return items, nil
}

func entityToNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:        n.ID,
		TicketID:  n.TicketID,
		Type:      n.Type,
		Message:   n.Message,
		Delivered: n.Delivered,
		SentAt:    n.SentAt,
		CreatedAt: n.CreatedAt,
	}
}
