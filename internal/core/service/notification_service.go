package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lifesource/lifesource-api/internal/core/ports"
)

// NotificationService broadcasts messages over the Broadcaster channel.
// There is no delivery pipeline; subscribers that miss a message miss it.
type NotificationService struct {
	broadcaster ports.Broadcaster
	logger      zerolog.Logger
}

func NewNotificationService(broadcaster ports.Broadcaster, logger zerolog.Logger) *NotificationService {
	return &NotificationService{broadcaster: broadcaster, logger: logger}
}

func (s *NotificationService) Broadcast(ctx context.Context, message string) (*ports.BroadcastResult, error) {
	receivers, err := s.broadcaster.Publish(ctx, message)
	if err != nil {
		s.logger.Error().Err(err).Msg("broadcast failed")
		return nil, err
	}

	s.logger.Info().Int64("receivers", receivers).Msg("notification broadcast")
	return &ports.BroadcastResult{Message: message, Receivers: receivers}, nil
}

func (s *NotificationService) Recent(ctx context.Context, limit int) ([]string, error) {
	return s.broadcaster.Recent(ctx, limit)
}
