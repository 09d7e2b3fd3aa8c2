package ports

import (
	"context"
	"time"

	"github.com/gymclub/booking-system/internal/core/domain"
)

// AuditRepository appends audit events to the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditEventInput is the DTO handed from the workflow services to the audit
// pipeline.
type AuditEventInput struct {
	Entity    string // "order" | "review"
	SubjectID string // payment reference or review id
	Status    string
	Actor     string
	Timestamp time.Time
}

// AuditService processes status-change audit events.
type AuditService interface {
	Process(ctx context.Context, event AuditEventInput) error
}

// AuditSink is the interface the workflow services use to hand off events
// without waiting for them to be persisted.
type AuditSink interface {
	Enqueue(event AuditEventInput)
}
