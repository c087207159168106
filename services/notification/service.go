package notification

import (
	"context"
	"fmt"

	"pawhaven/config"
	"pawhaven/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultNotificationService enqueues dispatch tasks on the Redis-backed
// notification queue.
type DefaultNotificationService struct {
	Client *asynq.Client
	Logger *zap.Logger
}

// NewDefaultNotificationService builds the production dispatcher.
func NewDefaultNotificationService(logger *zap.Logger) *DefaultNotificationService {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyDB,
	})
	return &DefaultNotificationService{Client: client, Logger: logger}
}

// DispatchBookingStatus enqueues a booking-status message. The worker retries
// delivery up to the configured maximum before parking the task.
func (s *DefaultNotificationService) DispatchBookingStatus(ctx context.Context, p models.BookingStatusPayload) error {
	task, err := NewBookingStatusTask(p)
	if err != nil {
		return fmt.Errorf("failed to build notification task: %w", err)
	}

	opts := []asynq.Option{
		asynq.MaxRetry(config.AppConfig.NotifyMaxRetries),
		asynq.Queue("notifications"),
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue notification for booking %s: %w", p.BookingID, err)
	}

	s.Logger.Debug("notification enqueued",
		zap.String("bookingID", p.BookingID),
		zap.String("status", p.Status),
		zap.String("kind", p.Kind),
	)
	return nil
}
