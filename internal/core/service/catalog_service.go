package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/rs/zerolog"

	"github.com/gymclub/booking-system/internal/core/domain"
	"github.com/gymclub/booking-system/internal/core/ports"
)

// CatalogService manages the bookable service catalog. All mutations are
// admin-gated at the route level.
type CatalogService struct {
	repo   ports.ServiceRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ServiceRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// Add stores a new catalog service with its image attachment. The uploaded
// file is renamed so stored names never collide and never carry
// client-controlled paths.
func (s *CatalogService) Add(ctx context.Context, input ports.AddServiceInput) (*domain.Service, error) {
	svc := &domain.Service{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Image: domain.Image{
			Name:        storedImageName(input.Image.Name),
			ContentType: input.Image.ContentType,
			Size:        input.Image.Size,
			Data:        input.Image.Data,
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, svc); err != nil {
		s.logger.Error().Err(err).Msg("failed to insert catalog service")
		return nil, err
	}

	s.logger.Info().Str("title", svc.Title).Str("image", svc.Image.Name).Msg("catalog service added")
	return svc, nil
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.FindAll(ctx)
}

func (s *CatalogService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("service_id", id).Msg("catalog service removed")
	return nil
}

// storedImageName keeps only the original extension and stamps the rest.
func storedImageName(original string) string {
	ext := path.Ext(path.Base(original))
	return fmt.Sprintf("svc_%d%s", time.Now().UnixNano(), ext)
}
