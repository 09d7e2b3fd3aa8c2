package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gymclub/booking-system/internal/core/domain"
	"github.com/gymclub/booking-system/internal/core/ports"
)

type stubAuditRepo struct {
	events    []*domain.AuditEvent
	insertErr error
}

func (r *stubAuditRepo) Insert(_ context.Context, event *domain.AuditEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.events = append(r.events, event)
	return nil
}

type stubDedup struct {
	seen     map[string]bool
	checkErr error
}

func (d *stubDedup) key(entity, subjectID, status string, ts time.Time) string {
	return entity + "|" + subjectID + "|" + status + "|" + ts.UTC().String()
}

func (d *stubDedup) IsDuplicate(_ context.Context, entity, subjectID, status string, ts time.Time) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.seen[d.key(entity, subjectID, status, ts)], nil
}

func (d *stubDedup) Mark(_ context.Context, entity, subjectID, status string, ts time.Time) error {
	if d.seen == nil {
		d.seen = map[string]bool{}
	}
	d.seen[d.key(entity, subjectID, status, ts)] = true
	return nil
}

func auditInput() ports.AuditEventInput {
	return ports.AuditEventInput{
		Entity:    "order",
		SubjectID: "pay-001",
		Status:    "approved",
		Actor:     "root",
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAuditProcessPersistsEvent(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, &stubDedup{}, zerolog.Nop())

	if err := svc.Process(context.Background(), auditInput()); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("persisted events = %d, want 1", len(repo.events))
	}
	event := repo.events[0]
	if event.Entity != "order" || event.SubjectID != "pay-001" || event.Actor != "root" {
		t.Errorf("persisted event = %+v", event)
	}
}

func TestAuditProcessSkipsDuplicates(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, &stubDedup{}, zerolog.Nop())
	ctx := context.Background()

	if err := svc.Process(ctx, auditInput()); err != nil {
		t.Fatalf("first Process() error = %v", err)
	}
	if err := svc.Process(ctx, auditInput()); err != nil {
		t.Fatalf("duplicate Process() error = %v", err)
	}
	if len(repo.events) != 1 {
		t.Errorf("persisted events = %d, want the duplicate skipped", len(repo.events))
	}
}

func TestAuditProcessSurvivesDedupFailure(t *testing.T) {
	repo := &stubAuditRepo{}
	dedup := &stubDedup{checkErr: errors.New("redis down")}
	svc := NewAuditService(repo, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), auditInput()); err != nil {
		t.Fatalf("Process() with broken dedup error = %v", err)
	}
	if len(repo.events) != 1 {
		t.Error("event lost when the dedup store was unavailable")
	}
}

func TestAuditProcessReportsInsertFailure(t *testing.T) {
	repo := &stubAuditRepo{insertErr: errors.New("mongo down")}
	svc := NewAuditService(repo, &stubDedup{}, zerolog.Nop())

	if err := svc.Process(context.Background(), auditInput()); err == nil {
		t.Error("Process() swallowed a persistence failure")
	}
}
