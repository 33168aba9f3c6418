package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/kostsaya/kost-manager/internal/model"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrTenantNotFound  = errors.New("tenant not found")
)

// Repository provides methods to interact with the payments and tenants tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new payment repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreatePayment inserts a new pending payment and returns its ID.
func (r *Repository) CreatePayment(ctx context.Context, p model.Payment) (uuid.UUID, error) {
	query := `
		INSERT INTO payments (
		    tenant_id, tenant_name, phone, email, month, room_number, amount, proof_url, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
    `

	tenantID := uuid.NullUUID{}
	if p.TenantID != nil {
		tenantID = uuid.NullUUID{UUID: *p.TenantID, Valid: true}
	}

	err := r.db.QueryRowContext(
		ctx, query,
		tenantID, p.TenantName, p.Phone, nullString(p.Email), p.Month,
		nullString(p.RoomNumber), p.Amount, nullString(p.ProofURL), model.StatusPending,
	).Scan(&p.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return p.ID, nil
}

// GetPaymentByID retrieves a single payment by its ID.
func (r *Repository) GetPaymentByID(ctx context.Context, id uuid.UUID) (model.Payment, error) {
	query := `
		SELECT id, tenant_id, tenant_name, phone, email, month, room_number,
		       amount, proof_url, status, admin_notes, created_at, updated_at
		FROM payments
		WHERE id = $1;
    `

	var (
		p          model.Payment
		tenantID   uuid.NullUUID
		email      sql.NullString
		roomNumber sql.NullString
		proofURL   sql.NullString
		adminNotes sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &tenantID, &p.TenantName, &p.Phone, &email, &p.Month, &roomNumber,
		&p.Amount, &proofURL, &p.Status, &adminNotes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Payment{}, ErrPaymentNotFound
		}

		return model.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}

	if tenantID.Valid {
		p.TenantID = &tenantID.UUID
	}
	p.Email = email.String
	p.RoomNumber = roomNumber.String
	p.ProofURL = proofURL.String
	p.AdminNotes = adminNotes.String

	return p, nil
}

// UpdateVerification writes the verification result for a payment in a
// single update: status, admin notes and the updated_at timestamp. This is
// the authoritative effect of a verification request.
func (r *Repository) UpdateVerification(ctx context.Context, id uuid.UUID, status, adminNotes string, updatedAt time.Time) error {
	query := `
		UPDATE payments
		SET status = $1, admin_notes = $2, updated_at = $3
		WHERE id = $4;
    `

	res, err := r.db.ExecContext(ctx, query, status, nullString(adminNotes), updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// GetPaymentStatusByID retrieves the status of a payment by its ID.
func (r *Repository) GetPaymentStatusByID(ctx context.Context, id uuid.UUID) (string, error) {
	query := `
		SELECT status
		FROM payments
		WHERE id = $1;
    `

	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrPaymentNotFound
		}

		return "", fmt.Errorf("failed to get payment status: %w", err)
	}

	return status, nil
}

// GetTenantByID retrieves a tenant by its ID.
func (r *Repository) GetTenantByID(ctx context.Context, id uuid.UUID) (model.Tenant, error) {
	query := `
		SELECT id, name, phone, email, room_number
		FROM tenants
		WHERE id = $1;
    `

	return r.scanTenant(r.db.QueryRowContext(ctx, query, id))
}

// GetTenantByPhone retrieves a tenant by its phone number.
func (r *Repository) GetTenantByPhone(ctx context.Context, phone string) (model.Tenant, error) {
	query := `
		SELECT id, name, phone, email, room_number
		FROM tenants
		WHERE phone = $1;
    `

	return r.scanTenant(r.db.QueryRowContext(ctx, query, phone))
}

func (r *Repository) scanTenant(row *sql.Row) (model.Tenant, error) {
	var (
		t          model.Tenant
		email      sql.NullString
		roomNumber sql.NullString
	)

	err := row.Scan(&t.ID, &t.Name, &t.Phone, &email, &roomNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Tenant{}, ErrTenantNotFound
		}

		return model.Tenant{}, fmt.Errorf("failed to get tenant: %w", err)
	}

	t.Email = email.String
	t.RoomNumber = roomNumber.String

	return t, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
