package worker

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/kostsaya/kost-manager/internal/mocks/worker"
	"github.com/kostsaya/kost-manager/internal/rabbitmq/queue"
)

func TestNotifier_Run_HandleMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockconfirmationConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)

	n := NewNotifier(mockConsumer, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	msg := queue.ConfirmationMessage{
		PaymentID:  uuid.New(),
		Email:      "budi@example.com",
		TenantName: "Budi",
		Month:      "Januari",
		RoomNumber: "A1",
	}

	mockConsumer.EXPECT().Consume(gomock.Any(), strategy).DoAndReturn(
		func(out chan<- queue.ConfirmationMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	mockHandler.EXPECT().HandleMessage(gomock.Any(), msg, strategy)

	go n.Run(ctx, strategy, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestNotifier_Run_MultipleWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockconfirmationConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)

	n := NewNotifier(mockConsumer, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	first := queue.ConfirmationMessage{PaymentID: uuid.New(), Email: "a@example.com"}
	second := queue.ConfirmationMessage{PaymentID: uuid.New(), Email: "b@example.com"}

	mockConsumer.EXPECT().Consume(gomock.Any(), strategy).DoAndReturn(
		func(out chan<- queue.ConfirmationMessage, _ retry.Strategy) error {
			out <- first
			out <- second
			return nil
		},
	)

	mockHandler.EXPECT().HandleMessage(gomock.Any(), first, strategy)
	mockHandler.EXPECT().HandleMessage(gomock.Any(), second, strategy)

	go n.Run(ctx, strategy, 2)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestNotifier_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockconfirmationConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)

	n := NewNotifier(mockConsumer, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	// Consumer delivers nothing; the pool must still shut down on cancel.
	mockConsumer.EXPECT().Consume(gomock.Any(), strategy).Return(nil)

	done := make(chan struct{})
	go func() {
		n.Run(ctx, strategy, 1)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notifier did not stop after context cancellation")
	}
}
