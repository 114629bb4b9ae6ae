package services

import (
	"context"
	"strings"
	"time"

	"clientdesk/internal/models"
	"clientdesk/internal/repositories"
)

// PreferenceService persists per-user settings server-side, currently the
// custom task action type labels.
type PreferenceService struct {
	Repo repositories.PreferenceRepository
}

func NewPreferenceService(repo repositories.PreferenceRepository) *PreferenceService {
	return &PreferenceService{Repo: repo}
}

// GetActionTypes never returns nil: a user without a record gets an empty set.
func (s *PreferenceService) GetActionTypes(ctx context.Context, userID int64) (*models.UserPreferences, error) {
	prefs, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = &models.UserPreferences{UserID: userID, CustomActionTypes: []string{}}
	}
	return prefs, nil
}

func (s *PreferenceService) PutActionTypes(ctx context.Context, userID int64, labels []string) (*models.UserPreferences, error) {
	seen := map[string]bool{}
	cleaned := []string{}
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		cleaned = append(cleaned, label)
	}
	prefs := &models.UserPreferences{
		UserID:            userID,
		CustomActionTypes: cleaned,
		UpdatedAt:         time.Now(),
	}
	if err := s.Repo.Put(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
