package ports

import (
	"context"
	"time"

	"github.com/gymclub/booking-system/internal/core/domain"
)

// OrderRepository defines persistence for orders.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	// FindByPaymentID returns the order created for the given payment
	// reference. ErrOrderNotFound when absent.
	FindByPaymentID(ctx context.Context, paymentID string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]*domain.Order, error)
	FindByEmail(ctx context.Context, email string) ([]*domain.Order, error)
	UpdateStatusByPaymentID(ctx context.Context, paymentID string, status domain.OrderStatus) error
}

// SubmitOrderInput carries the client-controlled part of a checkout. Identity,
// status, and timestamp fields are stamped server-side and any client-supplied
// values for them are discarded before this input is built.
type SubmitOrderInput struct {
	PaymentID string
	Items     []string
	Total     float64
}

// OrderResult is returned after a checkout submission.
type OrderResult struct {
	PaymentID string
	Status    string
	CreatedAt time.Time
	// AlreadyExisted is true when the payment reference matched an order
	// from an earlier submission and no new order was created.
	AlreadyExisted bool
}

// OrderService manages the checkout and order-status lifecycle.
type OrderService interface {
	Submit(ctx context.Context, identity domain.Identity, input SubmitOrderInput) (*OrderResult, error)
	// List returns all orders for admins and the caller's own orders for
	// everyone else.
	List(ctx context.Context, identity domain.Identity) ([]*domain.Order, error)
	// UpdateStatus moves the order identified by paymentID to status,
	// enforcing the transition table. Admin-only; the route guard has
	// already verified the role when this is reached.
	UpdateStatus(ctx context.Context, actor domain.Identity, paymentID string, status domain.OrderStatus) error
}
