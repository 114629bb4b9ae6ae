package services

import (
	"context"
	"log"
	"time"

	"clientdesk/internal/models"
	"clientdesk/internal/queue"
	"clientdesk/internal/repositories"
)

// ActivityRecorder appends audit entries. Recording is fire-and-forget: a
// failed append must never fail the operation that triggered it.
type ActivityRecorder interface {
	Record(ctx context.Context, activity models.Activity)
}

type ActivityService struct {
	Repo     repositories.ActivityRepository
	Producer *queue.Producer
}

func NewActivityService(repo repositories.ActivityRepository, producer *queue.Producer) *ActivityService {
	return &ActivityService{Repo: repo, Producer: producer}
}

func (s *ActivityService) Record(ctx context.Context, activity models.Activity) {
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	if s.Producer != nil {
		if err := s.Producer.Publish(ctx, activity); err == nil {
			return
		} else {
			log.Printf("[activity] publish failed, falling back to direct insert: %v", err)
		}
	}
	if err := s.Repo.Store(ctx, &activity); err != nil {
		log.Printf("[activity] store %s: %v", activity.ActivityType, err)
	}
}

func (s *ActivityService) Recent(ctx context.Context, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.Repo.ListRecent(ctx, limit)
}
