package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una línea de pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, ticket_id, menu_item_id, quantity, special_instructions, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.TicketID, order.MenuItemID, order.Quantity,
		order.SpecialInstructions, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListByTicket lista las líneas de pedido de un ticket.
func (r *OrderRepo) ListByTicket(ticketID string) ([]*entity.Order, error) {
	query := `
		SELECT id, ticket_id, menu_item_id, quantity, COALESCE(special_instructions, ''), created_at
		FROM orders WHERE ticket_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.TicketID, &o.MenuItemID, &o.Quantity,
			&o.SpecialInstructions, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
