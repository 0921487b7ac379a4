package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
// Solo se usa con el proveedor de identidad local (modo sin Supabase).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una cuenta local.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, email, password_hash, confirmed_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Email, account.PasswordHash, account.ConfirmedAt, account.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByEmail obtiene una cuenta por email.
func (r *AccountRepo) GetByEmail(email string) (*entity.Account, error) {
	return r.scanOne(`
		SELECT id, email, password_hash, confirmed_at, created_at
		FROM accounts WHERE email = $1`, email)
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	return r.scanOne(`
		SELECT id, email, password_hash, confirmed_at, created_at
		FROM accounts WHERE id = $1`, id)
}

// Confirm marca la cuenta como confirmada.
func (r *AccountRepo) Confirm(id string) error {
	query := `UPDATE accounts SET confirmed_at = $2 WHERE id = $1 AND confirmed_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, id, time.Now())
	if err != nil {
		return fmt.Errorf("confirm account: %w", err)
	}
	return nil
}

func (r *AccountRepo) scanOne(query string, args ...any) (*entity.Account, error) {
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.ConfirmedAt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}
