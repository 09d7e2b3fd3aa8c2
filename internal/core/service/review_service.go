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

// ReviewService manages the submit-to-approve review lifecycle.
type ReviewService struct {
	repo   ports.ReviewRepository
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, audit ports.AuditSink, logger zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, audit: audit, logger: logger}
}

// Submit stores a review stamped with the caller's username and name, forced
// to the pending status regardless of what the client sent.
func (s *ReviewService) Submit(ctx context.Context, identity domain.Identity, input ports.SubmitReviewInput) error {
	review := &domain.Review{
		Username:  identity.Username,
		Name:      identity.Name,
		Rating:    input.Rating,
		Text:      input.Text,
		Status:    domain.ReviewPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, review); err != nil {
		s.logger.Error().Err(err).Str("username", identity.Username).Msg("failed to insert review")
		return err
	}

	metrics.ReviewsSubmittedTotal.Inc()
	return nil
}

func (s *ReviewService) ListApproved(ctx context.Context) ([]*domain.Review, error) {
	return s.repo.FindByStatus(ctx, domain.ReviewApproved)
}

func (s *ReviewService) ListAll(ctx context.Context) ([]*domain.Review, error) {
	return s.repo.FindAll(ctx)
}

// UpdateStatus overwrites a review's moderation status. Unlike orders, admins
// may re-moderate: approved and rejected are interchangeable by repeat action.
func (s *ReviewService) UpdateStatus(ctx context.Context, actor domain.Identity, id string, status domain.ReviewStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues("review", string(status)).Inc()
	s.audit.Enqueue(ports.AuditEventInput{
		Entity:    "review",
		SubjectID: id,
		Status:    string(status),
		Actor:     actor.Username,
		Timestamp: time.Now().UTC(),
	})

	s.logger.Info().Str("review_id", id).Str("status", string(status)).Str("actor", actor.Username).Msg("review status updated")
	return nil
}
