package repository

import "github.com/jhoicas/FilaVirtual-api/internal/domain/entity"

// QueueTicketRepository define el puerto de persistencia para QueueTicket (DIP).
type QueueTicketRepository interface {
	Create(ticket *entity.QueueTicket) error
	GetByID(id string) (*entity.QueueTicket, error)
	GetByCode(vendorID, ticketCode string) (*entity.QueueTicket, error)
	// ListByVendor lista tickets del vendor; statuses vacío = todos.
	ListByVendor(vendorID string, statuses []string, limit, offset int) ([]*entity.QueueTicket, error)
	// NextTicketNumber reserva el siguiente número de turno del vendor.
	NextTicketNumber(vendorID string) (int, error)
	Update(ticket *entity.QueueTicket) error
}

// OrderRepository define el puerto de persistencia para líneas de pedido.
type OrderRepository interface {
	Create(order *entity.Order) error
	ListByTicket(ticketID string) ([]*entity.Order, error)
}
