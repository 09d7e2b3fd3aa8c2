package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gymclub/booking-system/internal/core/domain"
)

type stubCartRepo struct {
	items []*domain.CartItem
}

func (r *stubCartRepo) Insert(_ context.Context, item *domain.CartItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *stubCartRepo) FindByEmail(_ context.Context, email string) ([]*domain.CartItem, error) {
	var out []*domain.CartItem
	for _, item := range r.items {
		if item.Email == email {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubCartRepo) DeleteByEmail(_ context.Context, email string) (int64, error) {
	var kept []*domain.CartItem
	var deleted int64
	for _, item := range r.items {
		if item.Email == email {
			deleted++
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	return deleted, nil
}

type stubServiceRepo struct {
	services map[string]*domain.Service
}

func (r *stubServiceRepo) Insert(_ context.Context, svc *domain.Service) error {
	if r.services == nil {
		r.services = map[string]*domain.Service{}
	}
	r.services[svc.ID] = svc
	return nil
}

func (r *stubServiceRepo) FindAll(_ context.Context) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0, len(r.services))
	for _, svc := range r.services {
		out = append(out, svc)
	}
	return out, nil
}

func (r *stubServiceRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Service, error) {
	var out []*domain.Service
	for _, id := range ids {
		if svc, ok := r.services[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (r *stubServiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return domain.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}

func newCartFixture() (*CartService, *stubCartRepo, *stubServiceRepo) {
	carts := &stubCartRepo{}
	catalog := &stubServiceRepo{services: map[string]*domain.Service{
		"yoga": {ID: "yoga", Title: "Yoga Class"},
		"spin": {ID: "spin", Title: "Spin Class"},
	}}
	return NewCartService(carts, catalog, zerolog.Nop()), carts, catalog
}

func TestCartIsScopedToOwner(t *testing.T) {
	svc, _, _ := newCartFixture()
	ctx := context.Background()
	alice := domain.Identity{Username: "alice", Email: "alice@example.com"}
	bob := domain.Identity{Username: "bob", Email: "bob@example.com"}

	if err := svc.Add(ctx, alice, "yoga"); err != nil {
		t.Fatalf("Add(alice) error = %v", err)
	}
	if err := svc.Add(ctx, bob, "spin"); err != nil {
		t.Fatalf("Add(bob) error = %v", err)
	}

	got, err := svc.List(ctx, alice)
	if err != nil {
		t.Fatalf("List(alice) error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "yoga" {
		t.Errorf("List(alice) = %v, want exactly the yoga service", got)
	}

	got, err = svc.List(ctx, bob)
	if err != nil {
		t.Fatalf("List(bob) error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "spin" {
		t.Errorf("List(bob) = %v, want exactly the spin service", got)
	}
}

func TestCartClearOnlyRemovesCallerItems(t *testing.T) {
	svc, carts, _ := newCartFixture()
	ctx := context.Background()
	alice := domain.Identity{Email: "alice@example.com"}
	bob := domain.Identity{Email: "bob@example.com"}

	_ = svc.Add(ctx, alice, "yoga")
	_ = svc.Add(ctx, alice, "spin")
	_ = svc.Add(ctx, bob, "spin")

	deleted, err := svc.Clear(ctx, alice)
	if err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if deleted != 2 {
		t.Errorf("Clear() deleted = %d, want 2", deleted)
	}
	if len(carts.items) != 1 || carts.items[0].Email != "bob@example.com" {
		t.Errorf("bob's cart was touched by alice's clear: %+v", carts.items)
	}
}

func TestCartClearEmptyIsNoOp(t *testing.T) {
	svc, _, _ := newCartFixture()

	deleted, err := svc.Clear(context.Background(), domain.Identity{Email: "empty@example.com"})
	if err != nil {
		t.Fatalf("Clear() on empty cart error = %v", err)
	}
	if deleted != 0 {
		t.Errorf("Clear() on empty cart deleted = %d, want 0", deleted)
	}
}

func TestCartListDropsStaleReferences(t *testing.T) {
	svc, _, catalog := newCartFixture()
	ctx := context.Background()
	alice := domain.Identity{Email: "alice@example.com"}

	_ = svc.Add(ctx, alice, "yoga")
	_ = svc.Add(ctx, alice, "spin")
	delete(catalog.services, "spin")

	got, err := svc.List(ctx, alice)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "yoga" {
		t.Errorf("List() = %v, want the stale spin reference dropped", got)
	}
}

func TestCartListEmptyReturnsEmptySlice(t *testing.T) {
	svc, _, _ := newCartFixture()

	got, err := svc.List(context.Background(), domain.Identity{Email: "fresh@example.com"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got == nil {
		t.Error("List() on empty cart = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("List() on empty cart returned %d items", len(got))
	}
}
