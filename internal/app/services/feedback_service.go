package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/app/models/dto"
	"github.com/campushare/backend/internal/app/repositories"
	"github.com/campushare/backend/internal/pkg/apperrors"
	"github.com/campushare/backend/internal/pkg/auth"
	"github.com/campushare/backend/internal/pkg/helpers"
)

// FeedbackService handles feedback submissions and notifications
type FeedbackService struct {
	feedbackRepo     *repositories.FeedbackRepository
	notificationRepo *repositories.NotificationRepository
	logger           zerolog.Logger
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbackRepo *repositories.FeedbackRepository, notificationRepo *repositories.NotificationRepository, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{
		feedbackRepo:     feedbackRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Submit stores feedback from an authenticated user
func (s *FeedbackService) Submit(ctx context.Context, identity auth.Identity, req dto.CreateFeedbackRequest) (int64, error) {
	if identity.IsAdminSentinel() {
		return 0, apperrors.NewForbiddenError("the admin account cannot submit feedback")
	}

	fb := &models.Feedback{
		UserID:  identity.UserID,
		Subject: req.Subject,
		Message: req.Message,
	}

	id, err := s.feedbackRepo.Create(ctx, fb)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("feedbackID", id).Int64("userID", identity.UserID).Msg("Feedback submitted")
	return id, nil
}

// List returns feedback entries, newest first. Admin only.
func (s *FeedbackService) List(ctx context.Context, page, size int) (*dto.FeedbackListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	entries, totalItems, err := s.feedbackRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.FeedbackResponse, 0, len(entries))
	for _, fb := range entries {
		rows = append(rows, dto.FeedbackResponse{
			ID:        fb.ID,
			UserID:    fb.UserID,
			UserName:  fb.UserName,
			Subject:   fb.Subject,
			Message:   fb.Message,
			CreatedAt: fb.CreatedAt,
		})
	}

	return &dto.FeedbackListResponse{
		Feedback:   rows,
		Pagination: helpers.NewPaginationInfo(totalItems, page, limit),
	}, nil
}

// Delete removes a feedback entry. Admin only.
func (s *FeedbackService) Delete(ctx context.Context, id int64) error {
	return s.feedbackRepo.Delete(ctx, id)
}

// Notifications returns the caller's notifications, newest first
func (s *FeedbackService) Notifications(ctx context.Context, identity auth.Identity) ([]models.Notification, error) {
	if identity.IsAdminSentinel() {
		return []models.Notification{}, nil
	}
	notifications, err := s.notificationRepo.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

// MarkNotificationRead marks one of the caller's notifications as read
func (s *FeedbackService) MarkNotificationRead(ctx context.Context, identity auth.Identity, id int64) error {
	return s.notificationRepo.MarkRead(ctx, id, identity.UserID)
}
