package ports

import (
	"context"

	"github.com/gymclub/booking-system/internal/core/domain"
)

// CartRepository defines persistence for cart items.
type CartRepository interface {
	Insert(ctx context.Context, item *domain.CartItem) error
	FindByEmail(ctx context.Context, email string) ([]*domain.CartItem, error)
	// DeleteByEmail removes every cart item owned by email and returns the
	// number removed. Deleting from an empty cart returns 0 without error.
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

// CartService manages the caller's cart. Every operation is scoped to the
// identity resolved from the token; there is no admin cross-user view here.
type CartService interface {
	Add(ctx context.Context, identity domain.Identity, serviceID string) error
	// List resolves the caller's cart references against the catalog and
	// returns the joined services. References whose target no longer exists
	// are silently dropped.
	List(ctx context.Context, identity domain.Identity) ([]*domain.Service, error)
	Clear(ctx context.Context, identity domain.Identity) (int64, error)
}
