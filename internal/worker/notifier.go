package worker

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/kostsaya/kost-manager/internal/rabbitmq/queue"
)

type confirmationConsumer interface {
	Consume(out chan<- queue.ConfirmationMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.ConfirmationMessage, strategy retry.Strategy)
}

// Notifier runs a pool of workers draining the confirmation queue.
type Notifier struct {
	queue   confirmationConsumer
	handler messageHandler
}

func NewNotifier(q confirmationConsumer, h messageHandler) *Notifier {
	return &Notifier{
		queue:   q,
		handler: h,
	}
}

func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	msgChan := make(chan queue.ConfirmationMessage)

	go func() {
		if err := n.queue.Consume(msgChan, strategy); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to consume messages")
		}
	}()

	for i := 0; i < workerCount; i++ {
		go func(id int) {
			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg := <-msgChan:
					n.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	zlog.Logger.Print("confirmation notifier stopped")
}
