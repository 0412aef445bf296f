package service

import (
	"context"

	"aiactcheck/internal/model"
	"aiactcheck/internal/repository"
)

// UsecaseService handles use case CRUD operations
type UsecaseService struct {
	usecaseRepo repository.UsecaseRepo
}

// NewUsecaseService creates a new use case service
func NewUsecaseService(usecaseRepo repository.UsecaseRepo) *UsecaseService {
	return &UsecaseService{
		usecaseRepo: usecaseRepo,
	}
}

// Create creates a new use case
func (s *UsecaseService) Create(ctx context.Context, u *model.UseCase) (string, error) {
	return s.usecaseRepo.Create(ctx, u)
}

// GetByID retrieves a use case by ID
func (s *UsecaseService) GetByID(ctx context.Context, id string) (*model.UseCase, error) {
	return s.usecaseRepo.GetByID(ctx, id)
}

// GetByOwner retrieves all use cases for an assessor
func (s *UsecaseService) GetByOwner(ctx context.Context, ownerID string) ([]*model.UseCase, error) {
	return s.usecaseRepo.GetByOwner(ctx, ownerID)
}

// Update updates an existing use case
func (s *UsecaseService) Update(ctx context.Context, u *model.UseCase) error {
	return s.usecaseRepo.Update(ctx, u)
}

// Delete deletes a use case
func (s *UsecaseService) Delete(ctx context.Context, id string) error {
	return s.usecaseRepo.Delete(ctx, id)
}
