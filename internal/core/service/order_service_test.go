package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gymclub/booking-system/internal/core/domain"
	"github.com/gymclub/booking-system/internal/core/ports"
)

type stubOrderRepo struct {
	orders []*domain.Order
}

func (r *stubOrderRepo) Insert(_ context.Context, order *domain.Order) error {
	r.orders = append(r.orders, order)
	return nil
}

func (r *stubOrderRepo) FindByPaymentID(_ context.Context, paymentID string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.PaymentID == paymentID {
			return o, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) FindAll(_ context.Context) ([]*domain.Order, error) {
	return r.orders, nil
}

func (r *stubOrderRepo) FindByEmail(_ context.Context, email string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if o.Email == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatusByPaymentID(_ context.Context, paymentID string, status domain.OrderStatus) error {
	for _, o := range r.orders {
		if o.PaymentID == paymentID {
			o.Status = status
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

type stubAuditSink struct {
	events []ports.AuditEventInput
}

func (s *stubAuditSink) Enqueue(event ports.AuditEventInput) {
	s.events = append(s.events, event)
}

func newOrderFixture() (*OrderService, *stubOrderRepo, *stubAuditSink) {
	repo := &stubOrderRepo{}
	audit := &stubAuditSink{}
	return NewOrderService(repo, audit, zerolog.Nop()), repo, audit
}

func TestSubmitStampsIdentityAndPending(t *testing.T) {
	svc, repo, _ := newOrderFixture()
	buyer := domain.Identity{Username: "alice", Email: "alice@example.com", Role: domain.RoleUser}

	result, err := svc.Submit(context.Background(), buyer, ports.SubmitOrderInput{
		PaymentID: "pay-001",
		Items:     []string{"yoga"},
		Total:     25,
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if result.AlreadyExisted {
		t.Error("first submission reported AlreadyExisted")
	}
	if result.Status != string(domain.OrderPending) {
		t.Errorf("result status = %q, want pending", result.Status)
	}

	order := repo.orders[0]
	if order.Email != "alice@example.com" || order.Username != "alice" {
		t.Errorf("order identity = %s/%s, want alice's token identity", order.Username, order.Email)
	}
	if order.Status != domain.OrderPending {
		t.Errorf("stored status = %q, want pending", order.Status)
	}
	if order.CreatedAt.IsZero() {
		t.Error("order timestamp was not stamped")
	}
}

func TestSubmitReplaysDuplicatePayment(t *testing.T) {
	svc, repo, _ := newOrderFixture()
	ctx := context.Background()
	buyer := domain.Identity{Username: "alice", Email: "alice@example.com"}
	input := ports.SubmitOrderInput{PaymentID: "pay-dup", Items: []string{"yoga"}, Total: 25}

	if _, err := svc.Submit(ctx, buyer, input); err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}
	result, err := svc.Submit(ctx, buyer, input)
	if err != nil {
		t.Fatalf("second Submit() error = %v", err)
	}
	if !result.AlreadyExisted {
		t.Error("replayed submission not reported as AlreadyExisted")
	}
	if len(repo.orders) != 1 {
		t.Errorf("stored orders = %d, want 1", len(repo.orders))
	}
}

func TestListScopesByRole(t *testing.T) {
	svc, repo, _ := newOrderFixture()
	ctx := context.Background()
	repo.orders = []*domain.Order{
		{PaymentID: "p1", Email: "alice@example.com", Status: domain.OrderPending},
		{PaymentID: "p2", Email: "bob@example.com", Status: domain.OrderPending},
	}

	admin := domain.Identity{Username: "root", Email: "root@example.com", Role: domain.RoleAdmin}
	all, err := svc.List(ctx, admin)
	if err != nil {
		t.Fatalf("List(admin) error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin sees %d orders, want 2", len(all))
	}

	alice := domain.Identity{Username: "alice", Email: "alice@example.com", Role: domain.RoleUser}
	own, err := svc.List(ctx, alice)
	if err != nil {
		t.Fatalf("List(alice) error = %v", err)
	}
	if len(own) != 1 || own[0].PaymentID != "p1" {
		t.Errorf("alice sees %v, want only her own order", own)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, repo, audit := newOrderFixture()
	repo.orders = []*domain.Order{{PaymentID: "p1", Status: domain.OrderPending}}

	err := svc.UpdateStatus(context.Background(), domain.Identity{Username: "root"}, "p1", "shipped")
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("UpdateStatus() error = %v, want ErrInvalidStatus", err)
	}
	if len(audit.events) != 0 {
		t.Error("rejected update still enqueued an audit event")
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc, _, _ := newOrderFixture()

	err := svc.UpdateStatus(context.Background(), domain.Identity{Username: "root"}, "ghost", domain.OrderApproved)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("UpdateStatus() error = %v, want ErrOrderNotFound", err)
	}
}

func TestUpdateStatusBlocksLeavingTerminalState(t *testing.T) {
	svc, repo, audit := newOrderFixture()
	repo.orders = []*domain.Order{{PaymentID: "p1", Status: domain.OrderApproved}}

	err := svc.UpdateStatus(context.Background(), domain.Identity{Username: "root"}, "p1", domain.OrderCancelled)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("UpdateStatus() error = %v, want ErrInvalidTransition", err)
	}
	if repo.orders[0].Status != domain.OrderApproved {
		t.Errorf("terminal status mutated to %q", repo.orders[0].Status)
	}
	if len(audit.events) != 0 {
		t.Error("blocked transition still enqueued an audit event")
	}
}

func TestUpdateStatusSameValueIsNoOp(t *testing.T) {
	svc, repo, audit := newOrderFixture()
	repo.orders = []*domain.Order{{PaymentID: "p1", Status: domain.OrderApproved}}

	if err := svc.UpdateStatus(context.Background(), domain.Identity{Username: "root"}, "p1", domain.OrderApproved); err != nil {
		t.Fatalf("same-value UpdateStatus() error = %v", err)
	}
	if len(audit.events) != 0 {
		t.Error("no-op update enqueued an audit event")
	}
}

func TestUpdateStatusAppliesAndAudits(t *testing.T) {
	svc, repo, audit := newOrderFixture()
	repo.orders = []*domain.Order{{PaymentID: "p1", Status: domain.OrderPending}}
	actor := domain.Identity{Username: "root", Role: domain.RoleAdmin}

	if err := svc.UpdateStatus(context.Background(), actor, "p1", domain.OrderApproved); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if repo.orders[0].Status != domain.OrderApproved {
		t.Errorf("stored status = %q, want approved", repo.orders[0].Status)
	}

	if len(audit.events) != 1 {
		t.Fatalf("audit events = %d, want 1", len(audit.events))
	}
	event := audit.events[0]
	if event.Entity != "order" || event.SubjectID != "p1" || event.Status != "approved" || event.Actor != "root" {
		t.Errorf("audit event = %+v, want order/p1/approved by root", event)
	}
}
