package queue

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/kostsaya/kost-manager/internal/config"
)

// ConfirmationMessage asks the worker to send a submission-confirmation
// email for a freshly created payment.
type ConfirmationMessage struct {
	PaymentID  uuid.UUID `json:"payment_id"`
	Email      string    `json:"email"`
	TenantName string    `json:"tenant_name"`
	Month      string    `json:"month"`
	RoomNumber string    `json:"room_number,omitempty"`
}

// ConfirmationQueue wraps the exchange and queues used for submission
// confirmations: a main queue dead-lettering into the DLQ, and a retry
// queue that feeds messages back into the main queue after a TTL.
type ConfirmationQueue struct {
	Publisher  *rabbitmq.Publisher
	Consumer   *rabbitmq.Consumer
	routingKey string
}

func NewConfirmationQueue(ch *rabbitmq.Channel, cfg config.RabbitMQ) (*ConfirmationQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(cfg.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.Queue,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(cfg.RetryQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.DLQ,
	}

	mainQ, err := qm.DeclareQueue(cfg.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, cfg.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &ConfirmationQueue{Publisher: pub, Consumer: cons, routingKey: cfg.RoutingKey}, nil
}

func (q *ConfirmationQueue) Publish(msg ConfirmationMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

func (q *ConfirmationQueue) Consume(out chan<- ConfirmationMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var msg ConfirmationMessage
			if err := json.Unmarshal(m, &msg); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
				continue
			}

			out <- msg
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}
