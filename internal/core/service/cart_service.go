package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gymclub/booking-system/internal/core/domain"
	"github.com/gymclub/booking-system/internal/core/ports"
)

// CartService manages a user's cart. Ownership is always the resolved token
// identity; client-supplied emails are never consulted, so a caller cannot
// add or clear items on another user's behalf.
type CartService struct {
	carts    ports.CartRepository
	services ports.ServiceRepository
	logger   zerolog.Logger
}

func NewCartService(carts ports.CartRepository, services ports.ServiceRepository, logger zerolog.Logger) *CartService {
	return &CartService{carts: carts, services: services, logger: logger}
}

// Add inserts a cart record stamped with the caller's email.
func (s *CartService) Add(ctx context.Context, identity domain.Identity, serviceID string) error {
	item := &domain.CartItem{
		Email:     identity.Email,
		ServiceID: serviceID,
		AddedAt:   time.Now().UTC(),
	}

	if err := s.carts.Insert(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("email", identity.Email).Msg("failed to add cart item")
		return err
	}
	return nil
}

// List joins the caller's cart references against the catalog. A reference
// whose service no longer exists is dropped from the result, not an error.
// Admins get no cross-user view on this path.
func (s *CartService) List(ctx context.Context, identity domain.Identity) ([]*domain.Service, error) {
	items, err := s.carts.FindByEmail(ctx, identity.Email)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []*domain.Service{}, nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ServiceID)
	}

	joined, err := s.services.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if dropped := len(ids) - len(joined); dropped > 0 {
		s.logger.Debug().Int("dropped", dropped).Str("email", identity.Email).Msg("stale cart references excluded")
	}
	return joined, nil
}

// Clear bulk-deletes the caller's cart and reports the count removed.
// Clearing an already empty cart succeeds with count 0.
func (s *CartService) Clear(ctx context.Context, identity domain.Identity) (int64, error) {
	deleted, err := s.carts.DeleteByEmail(ctx, identity.Email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", identity.Email).Msg("failed to clear cart")
		return 0, err
	}
	return deleted, nil
}
