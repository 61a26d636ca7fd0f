package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"
	"github.com/Deepti-Velip/Cafe-Management-backend/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func validCategory(c string) bool {
	switch c {
	case entity.CategoryFood, entity.CategoryBeverage, entity.CategoryDessert:
		return true
	}
	return false
}

func (s *MenuService) List(ctx context.Context, category string) ([]entity.Menu, error) {
	if category != "" && !validCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	return s.Repo.List(ctx, category)
}

func (s *MenuService) Get(ctx context.Context, id uint) (*entity.Menu, error) {
	m, err := s.Repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuNotFound
	}
	return m, err
}

func (s *MenuService) Create(ctx context.Context, m *entity.Menu) error {
	if m.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if m.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if m.Category == "" {
		m.Category = entity.CategoryFood
	}
	if !validCategory(m.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, m.Category)
	}
	return s.Repo.Create(ctx, m)
}

func (s *MenuService) Update(ctx context.Context, id uint, updates map[string]any) (*entity.Menu, error) {
	if v, ok := updates["category"].(string); ok && !validCategory(v) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, v)
	}
	if v, ok := updates["price"].(float64); ok && v <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	n, err := s.Repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrMenuNotFound
	}
	return s.Get(ctx, id)
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMenuNotFound
	}
	return nil
}
