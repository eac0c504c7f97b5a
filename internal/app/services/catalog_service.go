package services

import (
	"context"
	"fmt"

	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/app/repositories"
)

// CatalogService serves the read-only gallery and toppers collections.
type CatalogService interface {
	GetGallery(ctx context.Context) ([]*models.GalleryItem, error)
	GetToppers(ctx context.Context) ([]*models.Topper, error)
}

type catalogServiceImpl struct {
	galleryRepo *repositories.GalleryRepository
	topperRepo  *repositories.TopperRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(galleryRepo *repositories.GalleryRepository, topperRepo *repositories.TopperRepository) CatalogService {
	return &catalogServiceImpl{
		galleryRepo: galleryRepo,
		topperRepo:  topperRepo,
	}
}

func (s *catalogServiceImpl) GetGallery(ctx context.Context) ([]*models.GalleryItem, error) {
	items, err := s.galleryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing gallery: %w", err)
	}
	return items, nil
}

func (s *catalogServiceImpl) GetToppers(ctx context.Context) ([]*models.Topper, error) {
	toppers, err := s.topperRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing toppers: %w", err)
	}
	return toppers, nil
}
