package services

import (
	"context"
	"strings"
	"time"

	"clientdesk/internal/models"
	"clientdesk/internal/repositories"
)

type PipelineService struct {
	Repo repositories.PipelineRepository
}

func NewPipelineService(repo repositories.PipelineRepository) *PipelineService {
	return &PipelineService{Repo: repo}
}

func (s *PipelineService) Create(ctx context.Context, pipeline *models.Pipeline) error {
	if strings.TrimSpace(pipeline.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if len(pipeline.Lanes) == 0 {
		return &ValidationError{Field: "lanes", Message: "at least one lane is required"}
	}
	for _, lane := range pipeline.Lanes {
		if strings.TrimSpace(lane) == "" {
			return &ValidationError{Field: "lanes", Message: "lane names must not be empty"}
		}
	}
	now := time.Now()
	pipeline.CreatedAt = now
	pipeline.UpdatedAt = now
	return s.Repo.Store(ctx, pipeline)
}

func (s *PipelineService) GetByID(ctx context.Context, id int64) (*models.Pipeline, error) {
	pipeline, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pipeline == nil {
		return nil, &NotFoundError{Entity: "pipeline", ID: id}
	}
	return pipeline, nil
}

func (s *PipelineService) List(ctx context.Context) ([]models.Pipeline, error) {
	return s.Repo.FindAll(ctx)
}
