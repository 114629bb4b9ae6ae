package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"clientdesk/internal/models"
	"clientdesk/internal/repositories"
)

// Worker drains the activity queue into the activities table.
type Worker struct {
	ch   *amqp.Channel
	repo repositories.ActivityRepository
}

func NewWorker(ch *amqp.Channel, repo repositories.ActivityRepository) *Worker {
	return &Worker{ch: ch, repo: repo}
}

func (w *Worker) Start(ctx context.Context) error {
	msgs, err := w.ch.Consume(QueueName, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			var activity models.Activity
			if err := json.Unmarshal(d.Body, &activity); err != nil {
				log.Printf("[queue] malformed activity, dropping: %v", err)
				_ = d.Nack(false, false)
				continue
			}
			if err := w.repo.Store(ctx, &activity); err != nil {
				// requeue once the DB is back; the entry must not be lost
				log.Printf("[queue] store activity: %v", err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}
