package service

import (
	"context"

	"datafeed/internal/model"
	"datafeed/internal/repository"
	"datafeed/internal/utils"
)

// PropertyService handles property listing business logic
type PropertyService struct {
	repo      *repository.PostgresRepository
	imageRoot string
}

// NewPropertyService creates a new property service
func NewPropertyService(repo *repository.PostgresRepository, imageRoot string) *PropertyService {
	return &PropertyService{
		repo:      repo,
		imageRoot: imageRoot,
	}
}

// List returns a filtered, paged property listing
func (s *PropertyService) List(ctx context.Context, filters *model.PropertyFilters, limit, offset int) (*model.PropertyListResponse, error) {
	properties, total, err := s.repo.ListProperties(ctx, filters, limit, offset)
	if err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []model.SaleProperty{}
	}

	return &model.PropertyListResponse{
		Properties: properties,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Get retrieves a single property by reference
func (s *PropertyService) Get(ctx context.Context, ref string) (*model.SaleProperty, error) {
	return s.repo.SaleByReference(ctx, ref)
}

// Images lists the image files on disk for a property
func (s *PropertyService) Images(id string) ([]model.PropertyImage, error) {
	return utils.ScanPropertyImages(s.imageRoot, id)
}
