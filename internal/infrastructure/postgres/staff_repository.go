package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación del puerto StaffRepository sobre PostgreSQL.
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

const staffColumns = `id, vendor_id, user_id, email, role, COALESCE(qr_badge_code, ''), created_at, updated_at`

// Create persiste un nuevo miembro de staff.
func (r *StaffRepo) Create(staff *entity.Staff) error {
	query := `
		INSERT INTO staff (id, vendor_id, user_id, email, role, qr_badge_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		staff.ID, staff.VendorID, staff.AccountID, staff.Email, staff.Role,
		staff.QRBadgeCode, staff.CreatedAt, staff.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert staff: %w", errors.New("email o badge duplicado"))
		}
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

// GetByID obtiene un staff por ID.
func (r *StaffRepo) GetByID(id string) (*entity.Staff, error) {
	return r.scanOne(`SELECT ` + staffColumns + ` FROM staff WHERE id = $1`, id)
}

// GetByEmail obtiene un staff por email. Hay como máximo uno por email.
func (r *StaffRepo) GetByEmail(email string) (*entity.Staff, error) {
	return r.scanOne(`SELECT `+staffColumns+` FROM staff WHERE email = $1 LIMIT 1`, email)
}

// GetByAccountID obtiene el staff vinculado a una cuenta del proveedor.
func (r *StaffRepo) GetByAccountID(accountID string) (*entity.Staff, error) {
	return r.scanOne(`SELECT `+staffColumns+` FROM staff WHERE user_id = $1 LIMIT 1`, accountID)
}

// GetWithVendor obtiene el staff por ID con su vendor cargado (join).
func (r *StaffRepo) GetWithVendor(id string) (*entity.Staff, error) {
	return r.scanOneWithVendor(`
		SELECT s.id, s.vendor_id, s.user_id, s.email, s.role, COALESCE(s.qr_badge_code, ''),
		       s.created_at, s.updated_at,
		       v.id, v.name, COALESCE(v.api_endpoint, ''), v.created_at, v.updated_at
		FROM staff s JOIN vendors v ON v.id = s.vendor_id
		WHERE s.id = $1`, id)
}

// GetByBadgeCode obtiene el staff por código de credencial QR, con vendor.
func (r *StaffRepo) GetByBadgeCode(code string) (*entity.Staff, error) {
	return r.scanOneWithVendor(`
		SELECT s.id, s.vendor_id, s.user_id, s.email, s.role, COALESCE(s.qr_badge_code, ''),
		       s.created_at, s.updated_at,
		       v.id, v.name, COALESCE(v.api_endpoint, ''), v.created_at, v.updated_at
		FROM staff s JOIN vendors v ON v.id = s.vendor_id
		WHERE s.qr_badge_code = $1`, code)
}

// ListByVendor lista el staff de un vendor con paginación.
func (r *StaffRepo) ListByVendor(vendorID string, limit, offset int) ([]*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE vendor_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, vendorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()
	var list []*entity.Staff
	for rows.Next() {
		var s entity.Staff
		if err := rows.Scan(&s.ID, &s.VendorID, &s.AccountID, &s.Email, &s.Role,
			&s.QRBadgeCode, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// UpdateAccountID vincula el registro (match por email) con una cuenta real.
// Idempotente: re-ejecutar con el mismo accountID deja la fila igual.
func (r *StaffRepo) UpdateAccountID(email, accountID string) error {
	query := `UPDATE staff SET user_id = $2, updated_at = $3 WHERE email = $1`
	_, err := r.q.Exec(context.Background(), query, email, accountID, time.Now())
	if err != nil {
		return fmt.Errorf("update staff account: %w", err)
	}
	return nil
}

// Update actualiza un staff.
func (r *StaffRepo) Update(staff *entity.Staff) error {
	query := `
		UPDATE staff SET vendor_id = $2, user_id = $3, email = $4, role = $5,
		       qr_badge_code = NULLIF($6, ''), updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		staff.ID, staff.VendorID, staff.AccountID, staff.Email, staff.Role,
		staff.QRBadgeCode, staff.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	return nil
}

func (r *StaffRepo) scanOne(query string, args ...any) (*entity.Staff, error) {
	var s entity.Staff
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.VendorID, &s.AccountID, &s.Email, &s.Role,
		&s.QRBadgeCode, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return &s, nil
}

func (r *StaffRepo) scanOneWithVendor(query string, args ...any) (*entity.Staff, error) {
	var s entity.Staff
	var v entity.Vendor
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.VendorID, &s.AccountID, &s.Email, &s.Role,
		&s.QRBadgeCode, &s.CreatedAt, &s.UpdatedAt,
		&v.ID, &v.Name, &v.APIEndpoint, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff with vendor: %w", err)
	}
	s.Vendor = &v
	return &s, nil
}
