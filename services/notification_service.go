package services

import (
	"context"
	"errors"
	"net/http"

	"marketplace-service/models"
	"marketplace-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationEmitter is the narrow fire-and-forget surface the engines use.
// Emit never returns an error: a lost notification must not fail an order or
// a booking, so persistence failures are logged and swallowed here.
type NotificationEmitter interface {
	Emit(ctx context.Context, userID uuid.UUID, title, message, notificationType string, relatedID *uuid.UUID)
}

type NotificationService interface {
	NotificationEmitter
	ListForUser(ctx context.Context, userID uuid.UUID, page, limit int) (*NotificationListResponse, *ServiceError)
	MarkRead(ctx context.Context, id, userID uuid.UUID) *ServiceError
}

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Meta          MetaData              `json:"meta"`
}

type notificationService struct {
	repo   repository.NotificationRepository
	logger *zap.Logger
}

func NewNotificationService(repo repository.NotificationRepository, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

func (s *notificationService) Emit(ctx context.Context, userID uuid.UUID, title, message, notificationType string, relatedID *uuid.UUID) {
	notification := &models.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		RelatedID: relatedID,
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		s.logger.Warn("notification emit failed",
			zap.String("user_id", userID.String()),
			zap.String("type", notificationType),
			zap.Error(err),
		)
	}
}

func (s *notificationService) ListForUser(ctx context.Context, userID uuid.UUID, page, limit int) (*NotificationListResponse, *ServiceError) {
	notifications, total, err := s.repo.FindByUserID(ctx, userID, page, limit)
	if err != nil {
		s.logger.Error("failed to fetch notifications", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch notifications"}
	}

	return &NotificationListResponse{
		Notifications: notifications,
		Meta:          buildMeta(page, limit, total),
	}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) *ServiceError {
	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Notification not found"}
		}
		s.logger.Error("failed to mark notification read", zap.String("id", id.String()), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to update notification"}
	}
	return nil
}
