// Package rabbitmq publishes and consumes scraper commands over AMQP.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// HandlerFunc is function which handles messages.
type HandlerFunc func(ctx context.Context, message []byte) error

// RabbitMQ consumes and publishes amqp messages.
type RabbitMQ struct {
	channel   *amqp.Channel
	exchange  string
	isRunning chan struct{}
}

// NewRabbitMQ returns new RabbitMQ.
// Ingestion runs take minutes, so consumers get one unacknowledged command at a time.
func NewRabbitMQ(connection *amqp.Connection, exchange string) (*RabbitMQ, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("can't open channel: %w", err)
	}

	if err := channel.Qos(1, 0, false); err != nil {
		return nil, errors.Join(fmt.Errorf("can't set channel prefetch: %w", err), channel.Close())
	}

	mq := RabbitMQ{
		channel:  channel,
		exchange: exchange,
	}

	return &mq, nil
}

// DeclareQueue declares durable direct exchange and durable queue bound to its routing key.
// Default exchange binds queues by their names, so binding is skipped for it.
func (mq *RabbitMQ) DeclareQueue(queue, routingKey string) error {
	if _, err := mq.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("can't declare queue %q: %w", queue, err)
	}

	if mq.exchange == "" {
		return nil
	}

	if err := mq.channel.ExchangeDeclare(mq.exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return fmt.Errorf("can't declare exchange %q: %w", mq.exchange, err)
	}

	if err := mq.channel.QueueBind(queue, routingKey, mq.exchange, false, nil); err != nil {
		return fmt.Errorf("can't bind queue %q to %q: %w", queue, routingKey, err)
	}

	return nil
}

// Publish publishes persistent message to routing key.
func (mq *RabbitMQ) Publish(ctx context.Context, routingKey string, message []byte) error {
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         message,
	}

	return mq.channel.PublishWithContext(
		ctx,
		mq.exchange,
		routingKey,
		false,
		false,
		msg,
	)
}

// Consume consumes messages from queue and passes deliveries to provided handler function.
// It returns channel with errors from handler function and consuming process.
// Function works asynchronously, it consumes messages in background as long as context is not closed.
func (mq *RabbitMQ) Consume(ctx context.Context, queue string, handler HandlerFunc) (<-chan error, error) {
	consumerID, err := uuid.NewUUID()
	if err != nil {
		return nil, fmt.Errorf("can't create consumer ID: %w", err)
	}

	deliveries, err := mq.channel.Consume(
		queue,
		"shelter-scraper-"+consumerID.String(),
		false, // auto acknowledge
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("can't start consuming: %w", err)
	}

	consumingErrors := make(chan error)
	mq.isRunning = make(chan struct{})
	go func() {
		defer close(mq.isRunning)
		defer close(consumingErrors)
		mq.consumeMessages(ctx, deliveries, consumingErrors, handler)
	}()

	return consumingErrors, nil
}

func (mq *RabbitMQ) consumeMessages(
	ctx context.Context,
	deliveries <-chan amqp.Delivery,
	consumingErrors chan error,
	handler HandlerFunc,
) {
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}
			if err := mq.handle(ctx, &delivery, consumingErrors, handler); err != nil {
				return
			}
		}
	}
}

// handle passes delivery to handler and acknowledges it.
// Failed commands are dropped, not requeued.
func (mq *RabbitMQ) handle(
	ctx context.Context,
	delivery *amqp.Delivery,
	consumingErrors chan error,
	handler HandlerFunc,
) error {
	if err := handler(ctx, delivery.Body); err != nil {
		_ = pushError(ctx, err, consumingErrors)
		if nackErr := delivery.Nack(false, false); nackErr != nil {
			return pushError(ctx, fmt.Errorf("can't nack message: %w", nackErr), consumingErrors)
		}
		return nil
	}

	if err := delivery.Ack(false); err != nil {
		return pushError(ctx, fmt.Errorf("can't ack message: %w", err), consumingErrors)
	}

	return nil
}

// Done returns channel which will be closed when consuming will be finished.
func (mq *RabbitMQ) Done() chan struct{} {
	return mq.isRunning
}

// Close closes RabbitMQ's channel.
func (mq *RabbitMQ) Close() error {
	if err := mq.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return fmt.Errorf("can't close channel: %w", err)
	}
	return nil
}

func pushError(ctx context.Context, err error, errChan chan error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case errChan <- err:
	}
	return nil
}
