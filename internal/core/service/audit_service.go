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

// DedupChecker abstracts the idempotency store (Redis) for audit events.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, entity, subjectID, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, entity, subjectID, status string, ts time.Time) error
}

type auditService struct {
	repo  ports.AuditRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewAuditService returns an AuditService implementation.
func NewAuditService(repo ports.AuditRepository, dedup DedupChecker, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single audit event. A dedup-store
// failure is logged and the event processed anyway: losing the check is
// preferable to losing the trail entry.
func (s *auditService) Process(ctx context.Context, in ports.AuditEventInput) error {
	start := time.Now()

	isDup, err := s.dedup.IsDuplicate(ctx, in.Entity, in.SubjectID, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("subject", in.SubjectID).Msg("audit dedup check failed, processing anyway")
	} else if isDup {
		metrics.AuditDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("subject", in.SubjectID).Str("status", in.Status).Msg("duplicate audit event skipped")
		return nil
	}
	metrics.AuditDedupTotal.WithLabelValues("miss").Inc()

	if markErr := s.dedup.Mark(ctx, in.Entity, in.SubjectID, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("subject", in.SubjectID).Msg("failed to set audit dedup key")
	}

	event := &domain.AuditEvent{
		Entity:    in.Entity,
		SubjectID: in.SubjectID,
		Status:    in.Status,
		Actor:     in.Actor,
		Timestamp: in.Timestamp,
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process audit event: %w", err)
	}

	metrics.AuditProcessedTotal.WithLabelValues(in.Entity).Inc()
	metrics.AuditProcessingDuration.WithLabelValues(in.Entity).Observe(time.Since(start).Seconds())

	return nil
}
