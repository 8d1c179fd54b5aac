package services

import (
	"context"
	"strings"

	"wishwall/internal/models"
)

// FeedbackRepository is the persistence surface the feedback service depends on.
type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, fb *models.Feedback) (*models.Feedback, error)
}

// FeedbackService exposes feedback submission to the HTTP layer.
type FeedbackService struct {
	repo FeedbackRepository
}

// NewFeedbackService creates a new instance of FeedbackService.
func NewFeedbackService(repo FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

// SubmitFeedback stores the trimmed feedback text.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, text string) (*models.Feedback, error) {
	fb := &models.Feedback{Feedback: strings.TrimSpace(text)}
	return s.repo.CreateFeedback(ctx, fb)
}
