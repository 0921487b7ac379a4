package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/FilaVirtual-api/internal/application/usecase"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.QueueTxRunner.
var _ usecase.QueueTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunQueue inicia una transacción, ejecuta fn con repos de tickets y pedidos
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunQueue(ctx context.Context, fn func(
	ticketRepo repository.QueueTicketRepository,
	orderRepo repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ticketRepo := NewQueueTicketRepository(tx)
	orderRepo := NewOrderRepository(tx)

	if err := fn(ticketRepo, orderRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
