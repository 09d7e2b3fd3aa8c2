package ports

import (
	"context"

	"github.com/gymclub/booking-system/internal/core/domain"
)

// MessageRepository defines persistence for contact messages.
type MessageRepository interface {
	Insert(ctx context.Context, msg *domain.Message) error
	FindAll(ctx context.Context) ([]*domain.Message, error)
}

// SendMessageInput carries a contact-form submission.
type SendMessageInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// MessageService stores and lists contact messages.
type MessageService interface {
	Send(ctx context.Context, input SendMessageInput) error
	ListAll(ctx context.Context) ([]*domain.Message, error)
}
