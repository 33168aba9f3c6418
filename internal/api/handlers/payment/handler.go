package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/kostsaya/kost-manager/internal/api/dto"
	"github.com/kostsaya/kost-manager/internal/api/respond"
	"github.com/kostsaya/kost-manager/internal/config"
	"github.com/kostsaya/kost-manager/internal/model"
	paymentrepo "github.com/kostsaya/kost-manager/internal/repository/payment"
	paymentsvc "github.com/kostsaya/kost-manager/internal/service/payment"
)

type paymentService interface {
	CreatePayment(ctx context.Context, strategy retry.Strategy, p model.Payment) (uuid.UUID, error)
	GetPaymentStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error)
	VerifyPayment(ctx context.Context, strategy retry.Strategy, id uuid.UUID, action model.VerificationAction, adminNotes string) (paymentsvc.VerificationResult, error)
}

type Handler struct {
	service   paymentService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	s paymentService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Create accepts a tenant payment-proof submission and stores it as pending.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	p := model.Payment{
		TenantName: req.TenantName,
		Phone:      req.Phone,
		Email:      req.Email,
		Month:      req.Month,
		RoomNumber: req.RoomNumber,
		Amount:     req.Amount,
		ProofURL:   req.ProofURL,
		Status:     model.StatusPending,
	}

	if req.TenantID != "" {
		tenantID, err := uuid.Parse(req.TenantID)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid tenant_id"))
			return
		}
		p.TenantID = &tenantID
	}

	id, err := h.service.CreatePayment(c.Request.Context(), h.cfg.Retry, p)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("tenant", req.TenantName).Msg("failed to create payment")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// GetStatus returns the current verification status of a payment.
func (h *Handler) GetStatus(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	status, err := h.service.GetPaymentStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, paymentrepo.ErrPaymentNotFound) {
			zlog.Logger.Warn().Str("id", idStr).Msg("payment not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("payment not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", idStr).Msg("failed to get payment status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

// Verify applies the admin decision to a payment. Validation and
// persistence failures are the only error responses; notification failures
// are reported inside the 200 body.
func (h *Handler) Verify(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	var req dto.VerifyRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	result, err := h.service.VerifyPayment(
		c.Request.Context(), h.cfg.Retry, id,
		model.VerificationAction(req.Action), req.AdminNotes,
	)
	if err != nil {
		switch {
		case errors.Is(err, paymentsvc.ErrInvalidAction):
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid action"))
		case errors.Is(err, paymentrepo.ErrPaymentNotFound):
			zlog.Logger.Warn().Str("id", idStr).Msg("payment not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("payment not found"))
		default:
			zlog.Logger.Error().Err(err).Str("id", idStr).Msg("failed to verify payment")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.JSON(c.Writer, http.StatusOK, dto.VerifyResponse{
		Success:       true,
		Payment:       result.Payment,
		Notifications: result.Notifications,
		Message:       result.Message,
	})
}
