package services

import (
	"errors"
	"fmt"

	"eventify/internal/logger"
	"eventify/internal/models"
	"eventify/internal/storage"
)

type CategoryService struct {
	store storage.Store
	log   *logger.Logger
}

func NewCategoryService(store storage.Store, log *logger.Logger) *CategoryService {
	return &CategoryService{store: store, log: log}
}

func (s *CategoryService) Create(req *models.CategoryCreateRequest) (*models.Category, error) {
	category := &models.Category{
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	}

	if err := s.store.CreateCategory(category); err != nil {
		if errors.Is(err, storage.ErrDuplicateCategory) {
			return nil, ErrCategoryNameTaken
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Get(id int64) (*models.Category, error) {
	return s.store.GetCategory(id)
}

func (s *CategoryService) List(offset, limit int) ([]*models.Category, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.store.ListCategories(offset, limit)
}

func (s *CategoryService) Update(id int64, req *models.CategoryUpdateRequest) (*models.Category, error) {
	category, err := s.store.GetCategory(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}

	if err := s.store.UpdateCategory(category); err != nil {
		if errors.Is(err, storage.ErrDuplicateCategory) {
			return nil, ErrCategoryNameTaken
		}
		return nil, err
	}
	return category, nil
}

// Delete refuses to remove a category that still has events attached.
func (s *CategoryService) Delete(id int64) error {
	if _, err := s.store.GetCategory(id); err != nil {
		return err
	}

	count, err := s.store.CountEventsByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.store.DeleteCategory(id)
}
