package ports

import (
	"context"

	"github.com/gymclub/booking-system/internal/core/domain"
)

// ReviewRepository defines persistence for reviews.
type ReviewRepository interface {
	Insert(ctx context.Context, review *domain.Review) error
	FindByStatus(ctx context.Context, status domain.ReviewStatus) ([]*domain.Review, error)
	FindAll(ctx context.Context) ([]*domain.Review, error)
	// UpdateStatus overwrites the status of the review with the given id.
	// ErrReviewNotFound when absent.
	UpdateStatus(ctx context.Context, id string, status domain.ReviewStatus) error
}

// SubmitReviewInput carries the client-controlled part of a review. Author
// identity and the initial pending status are stamped server-side.
type SubmitReviewInput struct {
	Rating int
	Text   string
}

// ReviewService manages the submit-to-approve review lifecycle.
type ReviewService interface {
	Submit(ctx context.Context, identity domain.Identity, input SubmitReviewInput) error
	// ListApproved is the public view: approved reviews only.
	ListApproved(ctx context.Context) ([]*domain.Review, error)
	// ListAll is the admin moderation view: no status filter.
	ListAll(ctx context.Context) ([]*domain.Review, error)
	UpdateStatus(ctx context.Context, actor domain.Identity, id string, status domain.ReviewStatus) error
}
