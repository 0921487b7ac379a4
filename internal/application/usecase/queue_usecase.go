package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/FilaVirtual-api/internal/application/dto"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
)

// Espera estimada por defecto cuando el ticket no trae pedido.
const defaultEstimatedWait = 10

// QueueTxRunner ejecuta fn con repos de tickets y pedidos atados a una misma
// transacción. Lo implementa postgres.TxRunner; en tests se inyecta un fake.
type QueueTxRunner interface {
	RunQueue(ctx context.Context, fn func(
		ticketRepo repository.QueueTicketRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// QueueUseCase maneja el ciclo de vida de los tickets de la fila virtual.
type QueueUseCase struct {
	txRunner   QueueTxRunner
	ticketRepo repository.QueueTicketRepository
	orderRepo  repository.OrderRepository
	menuRepo   repository.MenuItemRepository
}

// NewQueueUseCase construye el caso de uso.
func NewQueueUseCase(
	txRunner QueueTxRunner,
	ticketRepo repository.QueueTicketRepository,
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuItemRepository,
) *QueueUseCase {
	return &QueueUseCase{txRunner: txRunner, ticketRepo: ticketRepo, orderRepo: orderRepo, menuRepo: menuRepo}
}

// CreateTicket da un turno nuevo en estado waiting. El ticket y sus líneas de
// pedido se insertan en una sola transacción; el número de turno se reserva
// dentro de la misma.
func (uc *QueueUseCase) CreateTicket(ctx context.Context, vendorID string, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	estimated, err := uc.estimateWait(vendorID, in.Orders)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ticket := &entity.QueueTicket{
		ID:                   uuid.New().String(),
		VendorID:             vendorID,
		CustomerName:         in.CustomerName,
		CustomerPhone:        in.CustomerPhone,
		Status:               entity.StatusWaiting,
		EstimatedWaitMinutes: estimated,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	var orders []*entity.Order
	err = uc.txRunner.RunQueue(ctx, func(
		ticketRepo repository.QueueTicketRepository,
		orderRepo repository.OrderRepository,
	) error {
		number, err := ticketRepo.NextTicketNumber(vendorID)
		if err != nil {
			return err
		}
		ticket.TicketNumber = number
		ticket.TicketCode = fmt.Sprintf("T-%03d", number)

		if err := ticketRepo.Create(ticket); err != nil {
			return err
		}
		for _, line := range in.Orders {
			order := &entity.Order{
				ID:                  uuid.New().String(),
				TicketID:            ticket.ID,
				MenuItemID:          line.MenuItemID,
				Quantity:            line.Quantity,
				SpecialInstructions: line.SpecialInstructions,
				CreatedAt:           now,
			}
			if err := orderRepo.Create(order); err != nil {
				return err
			}
			orders = append(orders, order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entityToTicketResponse(ticket, orders), nil
}

// AdvanceTicket mueve el ticket al estado destino, estampando el timestamp del
// estado alcanzado. Devuelve domain.ErrInvalidTransition si el salto no está
// permitido por la progresión de la fila.
func (uc *QueueUseCase) AdvanceTicket(ctx context.Context, vendorID, ticketID, status string) (*dto.TicketResponse, error) {
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
	if !ticket.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, ticket.Status, status)
	}

	now := time.Now()
	ticket.Status = status
	ticket.UpdatedAt = now
	switch status {
	case entity.StatusOrdering:
		ticket.OrderStartTime = &now
	case entity.StatusPreparing:
		ticket.PrepStartTime = &now
	case entity.StatusReady:
		ticket.ReadyTime = &now
	case entity.StatusCompleted:
		ticket.CompletedTime = &now
		ticket.ActualWaitMinutes = int(now.Sub(ticket.CreatedAt).Minutes())
	case entity.StatusAbandoned:
		ticket.AbandonedTime = &now
	}

	if err := uc.ticketRepo.Update(ticket); err != nil {
		return nil, err
	}
	return entityToTicketResponse(ticket, nil), nil
}

// GetTicket obtiene un ticket con sus líneas de pedido.
func (uc *QueueUseCase) GetTicket(vendorID, ticketID string) (*dto.TicketResponse, error) {
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
	orders, err := uc.orderRepo.ListByTicket(ticketID)
	if err != nil {
		return nil, err
	}
	return entityToTicketResponse(ticket, orders), nil
}

// ListTickets lista los tickets del vendor; statuses vacío = todos.
func (uc *QueueUseCase) ListTickets(vendorID string, statuses []string, limit, offset int) (*dto.TicketListResponse, error) {
	list, err := uc.ticketRepo.ListByVendor(vendorID, statuses, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TicketResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *entityToTicketResponse(t, nil))
	}
	return &dto.TicketListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// estimateWait calcula la espera estimada a partir del pedido: suma de
// (cantidad × tiempo de preparación) de los platos pedidos.
func (uc *QueueUseCase) estimateWait(vendorID string, lines []dto.OrderLineRequest) (int, error) {
	if len(lines) == 0 {
		return defaultEstimatedWait, nil
	}
	total := 0
	for _, line := range lines {
		item, err := uc.menuRepo.GetByID(line.MenuItemID)
		if err != nil {
			return 0, err
		}
		if item == nil || item.VendorID != vendorID {
			return 0, fmt.Errorf("%w: plato %s", domain.ErrInvalidInput, line.MenuItemID)
		}
		total += line.Quantity * item.PrepTimeMinutes
	}
	if total <= 0 {
		total = defaultEstimatedWait
	}
	return total, nil
}

func entityToTicketResponse(t *entity.QueueTicket, orders []*entity.Order) *dto.TicketResponse {
	if t == nil {
		return nil
	}
	out := &dto.TicketResponse{
		ID:                   t.ID,
		VendorID:             t.VendorID,
		TicketNumber:         t.TicketNumber,
		TicketCode:           t.TicketCode,
		CustomerName:         t.CustomerName,
		CustomerPhone:        t.CustomerPhone,
		Status:               t.Status,
		EstimatedWaitMinutes: t.EstimatedWaitMinutes,
		ActualWaitMinutes:    t.ActualWaitMinutes,
		OrderStartTime:       t.OrderStartTime,
		PrepStartTime:        t.PrepStartTime,
		ReadyTime:            t.ReadyTime,
		CompletedTime:        t.CompletedTime,
		AbandonedTime:        t.AbandonedTime,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
	for _, o := range orders {
		out.Orders = append(out.Orders, dto.OrderLineResponse{
			ID:                  o.ID,
			MenuItemID:          o.MenuItemID,
			Quantity:            o.Quantity,
			SpecialInstructions: o.SpecialInstructions,
			CreatedAt:           o.CreatedAt,
		})
	}
	return out
}
