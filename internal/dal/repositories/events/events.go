package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/corray333/grubdash/internal/dal/rabbitmq"
	"github.com/corray333/grubdash/internal/service/models/event"
	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"
)

const publishTimeout = 5 * time.Second

// publisher is the part of an AMQP channel the repository needs.
type publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQRepository sends domain events to RabbitMQ.
// With no exchange configured events go to the default exchange, routed to the queue.
type RabbitMQRepository struct {
	channel  publisher
	exchange string
	queue    string
}

// NewRabbitMQRepository declares the event queue and returns a repository publishing to it.
func NewRabbitMQRepository(client *rabbitmq.Client, exchange, queueName string) *RabbitMQRepository {
	queue, err := client.DeclareQueue(rabbitmq.DeclareQueueConfig{
		Name:       queueName,
		Durable:    true,
		Exclusive:  false,
		AutoDelete: false,
	})
	if err != nil {
		panic(err)
	}

	return newRepository(client.Channel(), exchange, queue.Name)
}

func newRepository(channel publisher, exchange, queue string) *RabbitMQRepository {
	return &RabbitMQRepository{
		channel:  channel,
		exchange: exchange,
		queue:    queue,
	}
}

// Publish sends events concurrently and returns the first failure.
func (r *RabbitMQRepository) Publish(ctx context.Context, events ...event.Event) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(3)

	for _, e := range events {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			msg, err := toPublishing(e)
			if err != nil {
				return err
			}

			if err := r.channel.Publish(r.exchange, r.routingKey(e), false, false, msg); err != nil {
				return fmt.Errorf("failed to publish %s: %w", e.Type, err)
			}

			return nil
		})
	}

	return g.Wait()
}

func (r *RabbitMQRepository) routingKey(e event.Event) string {
	if r.exchange == "" {
		return r.queue
	}

	return string(e.Type)
}

func toPublishing(e event.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to encode event %s: %w", e.ID, err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    e.ID,
		Type:         string(e.Type),
		Timestamp:    e.OccurredAt,
		Body:         body,
	}, nil
}
