package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gymclub/booking-system/internal/core/domain"
	"github.com/gymclub/booking-system/internal/core/ports"
)

// MessageService stores and lists contact-form messages.
type MessageService struct {
	repo   ports.MessageRepository
	logger zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, logger zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, logger: logger}
}

func (s *MessageService) Send(ctx context.Context, input ports.SendMessageInput) error {
	msg := &domain.Message{
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Body:      input.Body,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, msg); err != nil {
		s.logger.Error().Err(err).Msg("failed to store contact message")
		return err
	}
	return nil
}

func (s *MessageService) ListAll(ctx context.Context) ([]*domain.Message, error) {
	return s.repo.FindAll(ctx)
}
