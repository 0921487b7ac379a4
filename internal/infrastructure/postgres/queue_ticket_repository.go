package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
)

var _ repository.QueueTicketRepository = (*QueueTicketRepo)(nil)

// QueueTicketRepo implementación del puerto QueueTicketRepository sobre PostgreSQL.
type QueueTicketRepo struct {
	q Querier
}

// NewQueueTicketRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQueueTicketRepository(q Querier) *QueueTicketRepo {
	return &QueueTicketRepo{q: q}
}

const ticketColumns = `id, vendor_id, ticket_number, ticket_code, COALESCE(customer_name, ''),
	COALESCE(customer_phone, ''), status, COALESCE(estimated_wait_minutes, 0),
	COALESCE(actual_wait_minutes, 0), order_start_time, prep_start_time, ready_time,
	completed_time, abandoned_time, created_at, updated_at`

// Create persiste un ticket nuevo.
func (r *QueueTicketRepo) Create(ticket *entity.QueueTicket) error {
	query := `
		INSERT INTO queue_tickets (id, vendor_id, ticket_number, ticket_code, customer_name,
			customer_phone, status, estimated_wait_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		ticket.ID, ticket.VendorID, ticket.TicketNumber, ticket.TicketCode,
		ticket.CustomerName, ticket.CustomerPhone, ticket.Status,
		ticket.EstimatedWaitMinutes, ticket.CreatedAt, ticket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert queue ticket: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket por ID.
func (r *QueueTicketRepo) GetByID(id string) (*entity.QueueTicket, error) {
	return r.scanOne(`SELECT `+ticketColumns+` FROM queue_tickets WHERE id = $1`, id)
}

// GetByCode obtiene un ticket por código visible dentro del vendor.
func (r *QueueTicketRepo) GetByCode(vendorID, ticketCode string) (*entity.QueueTicket, error) {
	return r.scanOne(`SELECT `+ticketColumns+` FROM queue_tickets WHERE vendor_id = $1 AND ticket_code = $2`,
		vendorID, ticketCode)
}

// ListByVendor lista tickets del vendor; statuses vacío = todos.
func (r *QueueTicketRepo) ListByVendor(vendorID string, statuses []string, limit, offset int) ([]*entity.QueueTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM queue_tickets WHERE vendor_id = $1`
	args := []any{vendorID}
	if len(statuses) > 0 {
		query += ` AND status = ANY($2) ORDER BY ticket_number LIMIT $3 OFFSET $4`
		args = append(args, statuses, limit, offset)
	} else {
		query += ` ORDER BY ticket_number LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list queue tickets: %w", err)
	}
	defer rows.Close()
	var list []*entity.QueueTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// NextTicketNumber reserva el siguiente número de turno del vendor.
// Debe llamarse dentro de la tx que inserta el ticket: primero toma el lock de
// la fila del vendor, de modo que dos reservas concurrentes del mismo vendor
// se serializan y el MAX+1 no puede producir números duplicados. El lock se
// libera al commit/rollback de la tx.
func (r *QueueTicketRepo) NextTicketNumber(vendorID string) (int, error) {
	var id string
	err := r.q.QueryRow(context.Background(),
		`SELECT id FROM vendors WHERE id = $1 FOR UPDATE`, vendorID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("next ticket number: %w", domain.ErrNotFound)
		}
		return 0, fmt.Errorf("lock vendor %s: %w", vendorID, err)
	}

	query := `
		SELECT COALESCE(MAX(ticket_number), 0) + 1
		FROM queue_tickets WHERE vendor_id = $1`
	var n int
	if err := r.q.QueryRow(context.Background(), query, vendorID).Scan(&n); err != nil {
		return 0, fmt.Errorf("next ticket number: %w", err)
	}
	return n, nil
}

// Update actualiza un ticket (estado, timestamps y espera real).
func (r *QueueTicketRepo) Update(ticket *entity.QueueTicket) error {
	query := `
		UPDATE queue_tickets SET status = $2, estimated_wait_minutes = $3, actual_wait_minutes = $4,
		       order_start_time = $5, prep_start_time = $6, ready_time = $7,
		       completed_time = $8, abandoned_time = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ticket.ID, ticket.Status, ticket.EstimatedWaitMinutes, ticket.ActualWaitMinutes,
		ticket.OrderStartTime, ticket.PrepStartTime, ticket.ReadyTime,
		ticket.CompletedTime, ticket.AbandonedTime, ticket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update queue ticket: %w", err)
	}
	return nil
}

func (r *QueueTicketRepo) scanOne(query string, args ...any) (*entity.QueueTicket, error) {
	row := r.q.QueryRow(context.Background(), query, args...)
	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row rowScanner) (*entity.QueueTicket, error) {
	var t entity.QueueTicket
	err := row.Scan(
		&t.ID, &t.VendorID, &t.TicketNumber, &t.TicketCode, &t.CustomerName,
		&t.CustomerPhone, &t.Status, &t.EstimatedWaitMinutes, &t.ActualWaitMinutes,
		&t.OrderStartTime, &t.PrepStartTime, &t.ReadyTime,
		&t.CompletedTime, &t.AbandonedTime, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan queue ticket: %w", err)
	}
	return &t, nil
}
