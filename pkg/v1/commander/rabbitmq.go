package commander

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoRoutingKey is returned when RabbitMQSender has no routing key to publish to.
var ErrNoRoutingKey = errors.New("routing key is empty")

//go:generate mockery --name RabbitMQPublisher --filename rabbitmqpublisher.go

// RabbitMQPublisher is RabbitMQ messages publisher.
type RabbitMQPublisher interface {
	Publish(context.Context, string, []byte) error
}

// RabbitMQSender publishes commands to the scraper's commands routing key.
type RabbitMQSender struct {
	publisher     RabbitMQPublisher
	cmdRoutingKey string
}

// NewRabbitMQSender returns new RabbitMQSender publishing with publisher to cmdRoutingKey.
func NewRabbitMQSender(publisher RabbitMQPublisher, cmdRoutingKey string) RabbitMQSender {
	return RabbitMQSender{
		publisher:     publisher,
		cmdRoutingKey: cmdRoutingKey,
	}
}

// NewRabbitMQRunCommander returns RunCommander publishing run commands to cmdRoutingKey.
func NewRabbitMQRunCommander(publisher RabbitMQPublisher, cmdRoutingKey string) RunCommander {
	return NewRunCommander(NewRabbitMQSender(publisher, cmdRoutingKey))
}

// Send publishes message to RabbitMQSender's routing key.
func (s RabbitMQSender) Send(ctx context.Context, msg []byte) error {
	if s.cmdRoutingKey == "" {
		return ErrNoRoutingKey
	}

	if err := s.publisher.Publish(ctx, s.cmdRoutingKey, msg); err != nil {
		return fmt.Errorf("can't publish to %q: %w", s.cmdRoutingKey, err)
	}

	return nil
}
