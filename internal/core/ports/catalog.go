package ports

import (
	"context"

	"github.com/gymclub/booking-system/internal/core/domain"
)

// ServiceRepository defines persistence for catalog services.
type ServiceRepository interface {
	Insert(ctx context.Context, svc *domain.Service) error
	FindAll(ctx context.Context) ([]*domain.Service, error)
	// FindByIDs returns the services whose ids are in the given set. Ids
	// without a matching document are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Service, error)
	// Delete removes a service by id. ErrServiceNotFound when absent.
	Delete(ctx context.Context, id string) error
}

// ImageInput carries the uploaded attachment for a new catalog service.
type ImageInput struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// AddServiceInput carries all data needed to create a catalog service.
type AddServiceInput struct {
	Title       string
	Description string
	Price       string
	Image       ImageInput
}

// CatalogService defines use-case operations on the service catalog.
type CatalogService interface {
	Add(ctx context.Context, input AddServiceInput) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Remove(ctx context.Context, id string) error
}
