package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gymclub/booking-system/internal/api/metrics"
	"github.com/gymclub/booking-system/internal/core/domain"
	"github.com/gymclub/booking-system/internal/core/ports"
)

// OrderService manages the checkout and order-status lifecycle.
type OrderService struct {
	repo   ports.OrderRepository
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, audit ports.AuditSink, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, audit: audit, logger: logger}
}

// Submit creates an order stamped with the caller's identity, status pending,
// and a server-assigned timestamp. When the payment reference was already
// submitted, the earlier order is reported instead of inserting a duplicate,
// so a client retry after a partial failure cannot double-order.
func (s *OrderService) Submit(ctx context.Context, identity domain.Identity, input ports.SubmitOrderInput) (*ports.OrderResult, error) {
	if input.PaymentID != "" {
		existing, err := s.repo.FindByPaymentID(ctx, input.PaymentID)
		if err == nil && existing != nil {
			s.logger.Info().Str("payment_id", input.PaymentID).Msg("duplicate order submission replayed")
			return &ports.OrderResult{
				PaymentID:      existing.PaymentID,
				Status:         string(existing.Status),
				CreatedAt:      existing.CreatedAt,
				AlreadyExisted: true,
			}, nil
		}
	}

	order := &domain.Order{
		Username:  identity.Username,
		Email:     identity.Email,
		PaymentID: input.PaymentID,
		Items:     input.Items,
		Total:     input.Total,
		Status:    domain.OrderPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("email", identity.Email).Msg("failed to insert order")
		return nil, err
	}

	metrics.OrdersSubmittedTotal.Inc()
	s.logger.Info().Str("payment_id", order.PaymentID).Str("email", order.Email).Msg("order submitted")

	return &ports.OrderResult{
		PaymentID: order.PaymentID,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}, nil
}

// List returns all orders for admins and only the caller's own for everyone
// else. The filter is derived from the token identity, never from a query
// parameter.
func (s *OrderService) List(ctx context.Context, identity domain.Identity) ([]*domain.Order, error) {
	if identity.IsAdmin() {
		return s.repo.FindAll(ctx)
	}
	return s.repo.FindByEmail(ctx, identity.Email)
}

// UpdateStatus moves the order identified by its payment reference to status.
// Transitions follow the order state machine: a terminal status only accepts
// a same-value no-op.
func (s *OrderService) UpdateStatus(ctx context.Context, actor domain.Identity, paymentID string, status domain.OrderStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	order, err := s.repo.FindByPaymentID(ctx, paymentID)
	if err != nil {
		return err
	}

	if !order.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, order.Status, status)
	}

	if order.Status == status {
		// Repeated admin action with the same value: nothing to write.
		return nil
	}

	if err := s.repo.UpdateStatusByPaymentID(ctx, paymentID, status); err != nil {
		s.logger.Error().Err(err).Str("payment_id", paymentID).Msg("failed to update order status")
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues("order", string(status)).Inc()
	s.audit.Enqueue(ports.AuditEventInput{
		Entity:    "order",
		SubjectID: paymentID,
		Status:    string(status),
		Actor:     actor.Username,
		Timestamp: time.Now().UTC(),
	})

	s.logger.Info().Str("payment_id", paymentID).Str("status", string(status)).Str("actor", actor.Username).Msg("order status updated")
	return nil
}
