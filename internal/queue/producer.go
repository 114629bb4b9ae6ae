package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"clientdesk/internal/models"
)

type Producer struct {
	ch *amqp.Channel
}

func NewProducer(ch *amqp.Channel) *Producer {
	return &Producer{ch: ch}
}

// Publish sends an activity entry onto the durable queue. Persistence is
// handled by the consuming worker.
func (p *Producer) Publish(ctx context.Context, activity models.Activity) error {
	body, err := json.Marshal(activity)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, "", QueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}
