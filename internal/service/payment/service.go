package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/kostsaya/kost-manager/internal/model"
	"github.com/kostsaya/kost-manager/internal/notify"
	"github.com/kostsaya/kost-manager/internal/rabbitmq/queue"
)

// ErrInvalidAction is returned when a verification action is neither
// "success" nor "rejected". No data access happens in that case.
var ErrInvalidAction = errors.New("invalid verification action")

type paymentRepository interface {
	CreatePayment(ctx context.Context, p model.Payment) (uuid.UUID, error)
	GetPaymentByID(ctx context.Context, id uuid.UUID) (model.Payment, error)
	UpdateVerification(ctx context.Context, id uuid.UUID, status, adminNotes string, updatedAt time.Time) error
	GetPaymentStatusByID(ctx context.Context, id uuid.UUID) (string, error)
	GetTenantByID(ctx context.Context, id uuid.UUID) (model.Tenant, error)
	GetTenantByPhone(ctx context.Context, phone string) (model.Tenant, error)
}

type cache interface {
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

type dispatcher interface {
	Dispatch(ctx context.Context, action model.VerificationAction, phoneTarget, emailTarget string, data notify.TemplateData) notify.Report
}

type confirmationPublisher interface {
	Publish(msg queue.ConfirmationMessage, strategy retry.Strategy) error
}

// Service implements the payment use cases: proof submission, status
// lookup and admin verification with best-effort tenant notification.
type Service struct {
	repo       paymentRepository
	cache      cache
	dispatcher dispatcher
	publisher  confirmationPublisher
	paymentURL string
}

func NewService(repo paymentRepository, c cache, d dispatcher, pub confirmationPublisher, paymentURL string) *Service {
	return &Service{
		repo:       repo,
		cache:      c,
		dispatcher: d,
		publisher:  pub,
		paymentURL: paymentURL,
	}
}

// PaymentSummary is the slice of payment state returned after verification.
// Contact fields reflect the resolved contact identity, not necessarily the
// raw row values.
type PaymentSummary struct {
	ID         uuid.UUID `json:"id"`
	TenantName string    `json:"tenant_name"`
	Phone      string    `json:"phone,omitempty"`
	RoomNumber string    `json:"room_number,omitempty"`
	Month      string    `json:"month"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NotificationReport extends the dispatch report with the email address the
// notification was (or would have been) sent to, so the admin UI can fall
// back to manual contact.
type NotificationReport struct {
	notify.Report
	TenantEmail string `json:"tenant_email,omitempty"`
}

// VerificationResult is the full outcome of one verification request: the
// committed status change plus the best-effort notification results.
type VerificationResult struct {
	Payment       PaymentSummary     `json:"payment"`
	Notifications NotificationReport `json:"notifications"`
	Message       string             `json:"message"`
}

// VerifyPayment applies an admin decision to a payment.
//
// The status transition is the authoritative effect: it is written first,
// in a single update, and a failure there aborts the request. Notification
// delivery runs after the write and can partially or fully fail without
// affecting the committed transition; channel failures are captured in
// the result, never returned as errors.
func (s *Service) VerifyPayment(ctx context.Context, strategy retry.Strategy, id uuid.UUID, action model.VerificationAction, adminNotes string) (VerificationResult, error) {
	if !action.Valid() {
		return VerificationResult{}, ErrInvalidAction
	}

	p, err := s.repo.GetPaymentByID(ctx, id)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("get payment: %w", err)
	}

	status := action.Status()
	updatedAt := time.Now().UTC()

	if err := s.repo.UpdateVerification(ctx, id, status, adminNotes, updatedAt); err != nil {
		return VerificationResult{}, fmt.Errorf("update payment: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), status); err != nil {
		zlog.Logger.Warn().Err(err).Str("id", id.String()).Msg("failed to cache payment status")
	}

	// From here on the transition is committed; everything below is
	// best-effort and must not surface as an error.
	contact := resolveContact(ctx, s.repo, p)

	data := notify.TemplateData{
		TenantName: contact.Name,
		Month:      p.Month,
		RoomNumber: contact.RoomNumber,
		AdminNotes: adminNotes,
		PaymentURL: s.paymentURL,
	}

	report := s.dispatcher.Dispatch(ctx, action, contact.Phone, contact.Email, data)

	return VerificationResult{
		Payment: PaymentSummary{
			ID:         p.ID,
			TenantName: contact.Name,
			Phone:      contact.Phone,
			RoomNumber: contact.RoomNumber,
			Month:      p.Month,
			Status:     status,
			UpdatedAt:  updatedAt,
		},
		Notifications: NotificationReport{
			Report:      report,
			TenantEmail: contact.Email,
		},
		Message: summaryMessage(status, report),
	}, nil
}

// summaryMessage renders the four-way notification summary the admin UI
// displays verbatim: all sent / partial / all failed / nothing attempted.
func summaryMessage(status string, r notify.Report) string {
	base := fmt.Sprintf("Payment %s.", status)

	switch {
	case r.Attempted == 0:
		return base + " No notification channel available, contact the tenant manually."
	case r.Successful == r.Attempted:
		return base + " All notifications sent."
	case r.Successful > 0:
		return fmt.Sprintf("%s Partial notification success: %d/%d sent.", base, r.Successful, r.Attempted)
	default:
		return base + " All notifications failed, contact the tenant manually."
	}
}

// CreatePayment stores a new pending payment-proof submission and, when an
// email address is on file, enqueues a confirmation message. Publish
// failures are logged only: the submission itself has already succeeded.
func (s *Service) CreatePayment(ctx context.Context, strategy retry.Strategy, p model.Payment) (uuid.UUID, error) {
	id, err := s.repo.CreatePayment(ctx, p)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create payment: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), model.StatusPending); err != nil {
		zlog.Logger.Warn().Err(err).Str("id", id.String()).Msg("failed to cache payment status")
	}

	if s.publisher != nil && validEmail(p.Email) {
		msg := queue.ConfirmationMessage{
			PaymentID:  id,
			Email:      p.Email,
			TenantName: p.TenantName,
			Month:      p.Month,
			RoomNumber: p.RoomNumber,
		}

		if err := s.publisher.Publish(msg, strategy); err != nil {
			zlog.Logger.Warn().Err(err).Str("id", id.String()).Msg("failed to publish confirmation message")
		}
	}

	return id, nil
}

// GetPaymentStatusByID returns the payment status, preferring the cache and
// falling back to the database on a miss (refilling the cache afterwards).
func (s *Service) GetPaymentStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Warn().Err(err).Str("id", id.String()).Msg("failed to get payment status from cache")
	}

	if status == "" {
		status, err = s.repo.GetPaymentStatusByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("get payment status: %w", err)
		}

		if err := s.cache.SetWithRetry(ctx, strategy, id.String(), status); err != nil {
			zlog.Logger.Warn().Err(err).Str("id", id.String()).Msg("failed to cache payment status")
		}
	}

	return status, nil
}
