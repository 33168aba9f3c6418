package dto

import (
	"github.com/kostsaya/kost-manager/internal/service/payment"
)

// CreateRequest is a tenant-facing payment-proof submission.
type CreateRequest struct {
	TenantID   string `json:"tenant_id" validate:"omitempty,uuid"`
	TenantName string `json:"tenant_name" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Month      string `json:"month" validate:"required"`
	RoomNumber string `json:"room_number"`
	Amount     int64  `json:"amount" validate:"omitempty,gt=0"`
	ProofURL   string `json:"proof_url"`
}

// VerifyRequest is the admin verification decision for a payment.
type VerifyRequest struct {
	Action     string `json:"action" validate:"required,oneof=success rejected"`
	AdminNotes string `json:"admin_notes"`
}

// VerifyResponse reports the committed status change together with the
// best-effort notification outcomes.
type VerifyResponse struct {
	Success       bool                       `json:"success"`
	Payment       payment.PaymentSummary     `json:"payment"`
	Notifications payment.NotificationReport `json:"notifications"`
	Message       string                     `json:"message"`
}
