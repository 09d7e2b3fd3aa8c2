package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gymclub/booking-system/internal/core/domain"
	"github.com/gymclub/booking-system/internal/core/ports"
)

func TestCatalogAddRenamesImage(t *testing.T) {
	repo := &stubServiceRepo{services: map[string]*domain.Service{}}
	svc := NewCatalogService(repo, zerolog.Nop())

	created, err := svc.Add(context.Background(), ports.AddServiceInput{
		Title: "Yoga Class",
		Price: "25",
		Image: ports.ImageInput{
			Name:        "../../etc/passwd.png",
			ContentType: "image/png",
			Size:        3,
			Data:        []byte{1, 2, 3},
		},
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	name := created.Image.Name
	if !strings.HasPrefix(name, "svc_") || !strings.HasSuffix(name, ".png") {
		t.Errorf("stored image name = %q, want svc_<stamp>.png", name)
	}
	if strings.Contains(name, "/") || strings.Contains(name, "..") {
		t.Errorf("stored image name %q carries client path parts", name)
	}
	if created.CreatedAt.IsZero() {
		t.Error("service timestamp was not stamped")
	}
}

func TestCatalogRemoveUnknownService(t *testing.T) {
	repo := &stubServiceRepo{services: map[string]*domain.Service{}}
	svc := NewCatalogService(repo, zerolog.Nop())

	err := svc.Remove(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrServiceNotFound) {
		t.Errorf("Remove() error = %v, want ErrServiceNotFound", err)
	}
}
