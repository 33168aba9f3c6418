package payment

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/kostsaya/kost-manager/internal/api/dto"
	"github.com/kostsaya/kost-manager/internal/config"
	mocks "github.com/kostsaya/kost-manager/internal/mocks/api/handlers/payment"
	"github.com/kostsaya/kost-manager/internal/model"
	"github.com/kostsaya/kost-manager/internal/notify"
	paymentrepo "github.com/kostsaya/kost-manager/internal/repository/payment"
	paymentsvc "github.com/kostsaya/kost-manager/internal/service/payment"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockpaymentService, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockpaymentService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	validate := validator.New()
	handler := NewHandler(mockService, validate, cfg)
	return handler, mockService, cfg
}

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	reqBody := dto.CreateRequest{
		TenantName: "Budi",
		Phone:      "08123456789",
		Email:      "budi@example.com",
		Month:      "Januari",
		RoomNumber: "A1",
		Amount:     500000,
		ProofURL:   "https://example.com/proof.jpg",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	p := model.Payment{
		TenantName: reqBody.TenantName,
		Phone:      reqBody.Phone,
		Email:      reqBody.Email,
		Month:      reqBody.Month,
		RoomNumber: reqBody.RoomNumber,
		Amount:     reqBody.Amount,
		ProofURL:   reqBody.ProofURL,
		Status:     model.StatusPending,
	}

	mockService.EXPECT().
		CreatePayment(gomock.Any(), cfg.Retry, p).
		Return(uuid.New(), nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_ValidationError(t *testing.T) {
	handler, _, _ := setupHandler(t)

	// Missing required month.
	reqBody := dto.CreateRequest{TenantName: "Budi", Phone: "08123456789"}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_GetStatus_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/payments/"+id.String()+"/status", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetPaymentStatusByID(gomock.Any(), cfg.Retry, id).
		Return(model.StatusPending, nil)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetStatus_NotFound(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/payments/"+id.String()+"/status", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetPaymentStatusByID(gomock.Any(), cfg.Retry, id).
		Return("", paymentrepo.ErrPaymentNotFound)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Verify_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	reqBody := dto.VerifyRequest{Action: "success", AdminNotes: "ok"}
	bodyBytes, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/"+id.String()+"/verify", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	result := paymentsvc.VerificationResult{
		Payment: paymentsvc.PaymentSummary{
			ID:         id,
			TenantName: "Budi",
			Status:     model.StatusSuccess,
		},
		Notifications: paymentsvc.NotificationReport{
			Report: notify.Report{
				Attempted:  2,
				Successful: 2,
				WhatsApp:   notify.Outcome{Channel: notify.ChannelWhatsApp, Attempted: true, Success: true, ProviderRef: "SM123"},
				Email:      notify.Outcome{Channel: notify.ChannelEmail, Attempted: true, Success: true},
			},
			TenantEmail: "budi@example.com",
		},
		Message: "Payment success. All notifications sent.",
	}

	mockService.EXPECT().
		VerifyPayment(gomock.Any(), cfg.Retry, id, model.ActionSuccess, "ok").
		Return(result, nil)

	handler.Verify(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var resp dto.VerifyResponse
	err := json.NewDecoder(w.Result().Body).Decode(&resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, model.StatusSuccess, resp.Payment.Status)
	assert.Equal(t, "SM123", resp.Notifications.WhatsApp.ProviderRef)
	assert.Contains(t, resp.Message, "All notifications sent")
}

func TestHandler_Verify_InvalidID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/not-a-uuid/verify", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	handler.Verify(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Verify_InvalidAction(t *testing.T) {
	handler, _, _ := setupHandler(t)
	id := uuid.New()

	// "approved" fails dto validation before the service is reached.
	reqBody := dto.VerifyRequest{Action: "approved"}
	bodyBytes, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/"+id.String()+"/verify", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	handler.Verify(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Verify_NotFound(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	reqBody := dto.VerifyRequest{Action: "rejected", AdminNotes: "no proof"}
	bodyBytes, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/"+id.String()+"/verify", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		VerifyPayment(gomock.Any(), cfg.Retry, id, model.ActionRejected, "no proof").
		Return(paymentsvc.VerificationResult{}, paymentrepo.ErrPaymentNotFound)

	handler.Verify(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
