package confirmation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/kostsaya/kost-manager/internal/mocks/notify"
	"github.com/kostsaya/kost-manager/internal/rabbitmq/queue"
)

func TestHandler_HandleMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientMock := mocks.NewMockemailClient(ctrl)
	h := NewHandler(clientMock)

	msg := queue.ConfirmationMessage{
		PaymentID:  uuid.New(),
		Email:      "budi@example.com",
		TenantName: "Budi",
		Month:      "Januari",
		RoomNumber: "A1",
	}

	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

	var gotSubject string

	clientMock.EXPECT().Configured().Return(true)
	clientMock.EXPECT().
		Send(msg.Email, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, subject, _, _ string) error {
			gotSubject = subject
			return nil
		})

	h.HandleMessage(context.Background(), msg, strategy)

	assert.Contains(t, gotSubject, "Bukti Transfer")
}

func TestHandler_HandleMessage_RetriesThenGivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientMock := mocks.NewMockemailClient(ctrl)
	h := NewHandler(clientMock)

	msg := queue.ConfirmationMessage{
		PaymentID: uuid.New(),
		Email:     "budi@example.com",
	}

	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

	clientMock.EXPECT().Configured().Return(true)
	clientMock.EXPECT().
		Send(msg.Email, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp: connection refused")).
		Times(3)

	// Exhausted attempts only log; the message dead-letters at the broker.
	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_RecoversOnSecondAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientMock := mocks.NewMockemailClient(ctrl)
	h := NewHandler(clientMock)

	msg := queue.ConfirmationMessage{
		PaymentID: uuid.New(),
		Email:     "budi@example.com",
	}

	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

	clientMock.EXPECT().Configured().Return(true)
	gomock.InOrder(
		clientMock.EXPECT().
			Send(msg.Email, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("smtp: temporary failure")),
		clientMock.EXPECT().
			Send(msg.Email, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil),
	)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientMock := mocks.NewMockemailClient(ctrl)
	h := NewHandler(clientMock)

	msg := queue.ConfirmationMessage{PaymentID: uuid.New(), Email: "budi@example.com"}

	// No Send expectation: an unconfigured client skips the message.
	clientMock.EXPECT().Configured().Return(false)

	h.HandleMessage(context.Background(), msg, retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2})
}
