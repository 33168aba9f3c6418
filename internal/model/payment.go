package model

import (
	"time"

	"github.com/google/uuid"
)

// Payment statuses. A payment starts as pending and is moved to success or
// rejected exactly once per admin verification action.
const (
	StatusPending  = "pending"
	StatusSuccess  = "success"
	StatusRejected = "rejected"
)

// VerificationAction is the admin decision applied to a pending payment.
type VerificationAction string

const (
	ActionSuccess  VerificationAction = "success"
	ActionRejected VerificationAction = "rejected"
)

// Valid reports whether the action is one of the two allowed values.
func (a VerificationAction) Valid() bool {
	return a == ActionSuccess || a == ActionRejected
}

// Status returns the payment status the action transitions to.
func (a VerificationAction) Status() string {
	if a == ActionSuccess {
		return StatusSuccess
	}
	return StatusRejected
}

// Payment is a single payment-proof submission. Contact fields are
// denormalized at submission time and may duplicate the linked tenant's
// fields; TenantID is a weak reference used only for lookup.
type Payment struct {
	ID         uuid.UUID  `json:"id"`
	TenantID   *uuid.UUID `json:"tenant_id,omitempty"`
	TenantName string     `json:"tenant_name"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email,omitempty"`
	Month      string     `json:"month"`
	RoomNumber string     `json:"room_number,omitempty"`
	Amount     int64      `json:"amount,omitempty"`
	ProofURL   string     `json:"proof_url,omitempty"`
	Status     string     `json:"status"`
	AdminNotes string     `json:"admin_notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Tenant is a person renting a room, tracked independently of payments.
type Tenant struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email,omitempty"`
	RoomNumber string    `json:"room_number,omitempty"`
}
