package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/L4U04/salvaluno/internal/dto"
	"github.com/L4U04/salvaluno/internal/model"
	"github.com/L4U04/salvaluno/internal/repository"
)

// FeedbackService collects suggestions and bug reports from users.
type FeedbackService interface {
	Create(ctx context.Context, req *dto.CreateFeedbackRequest, userID string) (*dto.FeedbackResponse, error)
	ListMine(ctx context.Context, userID string) ([]dto.FeedbackResponse, error)
}

type feedbackService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFeedbackService creates a FeedbackService.
func NewFeedbackService(repo *repository.Repository, logger *zap.Logger) FeedbackService {
	return &feedbackService{repo: repo, logger: logger}
}

func (s *feedbackService) Create(ctx context.Context, req *dto.CreateFeedbackRequest, userID string) (*dto.FeedbackResponse, error) {
	feedback := model.Feedback{
		UserID:  &userID,
		Content: strings.TrimSpace(req.Content),
		Status:  "aberto",
	}
	if req.Category != "" {
		category := req.Category
		feedback.Category = &category
	}

	if err := s.repo.Feedback.Create(ctx, &feedback); err != nil {
		s.logger.Error("failed to create feedback", zap.Error(err))
		return nil, err
	}
	s.logger.Info("feedback received", zap.String("feedback_id", feedback.FeedbackID))

	resp := toFeedbackResponse(feedback)
	return &resp, nil
}

func (s *feedbackService) ListMine(ctx context.Context, userID string) ([]dto.FeedbackResponse, error) {
	entries, err := s.repo.Feedback.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list feedback", zap.Error(err))
		return nil, err
	}
	result := make([]dto.FeedbackResponse, 0, len(entries))
	for _, f := range entries {
		result = append(result, toFeedbackResponse(f))
	}
	return result, nil
}

func toFeedbackResponse(f model.Feedback) dto.FeedbackResponse {
	resp := dto.FeedbackResponse{
		ID:        f.FeedbackID,
		Content:   f.Content,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
	}
	if f.Category != nil {
		resp.Category = *f.Category
	}
	return resp
}
