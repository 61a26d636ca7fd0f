package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"
	"github.com/Deepti-Velip/Cafe-Management-backend/repository"

	"gorm.io/gorm"
)

type TableService struct {
	Repo *repository.TableRepository
}

func NewTableService(repo *repository.TableRepository) *TableService {
	return &TableService{Repo: repo}
}

func validTableStatus(s string) bool {
	switch s {
	case entity.TableAvailable, entity.TableOccupied, entity.TableReserved:
		return true
	}
	return false
}

func (s *TableService) Create(ctx context.Context, t *entity.Table) error {
	if t.TableNo < 1 {
		return fmt.Errorf("%w: table_no is required", ErrValidation)
	}
	if t.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be >= 1", ErrValidation)
	}
	if t.Status == "" {
		t.Status = entity.TableAvailable
	}
	if !validTableStatus(t.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, t.Status)
	}
	// table_no ซ้ำชน uniqueIndex
	if err := s.Repo.Create(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: table_no %d already exists", ErrValidation, t.TableNo)
		}
		return err
	}
	return nil
}

func (s *TableService) List(ctx context.Context) ([]entity.Table, error) {
	return s.Repo.List(ctx)
}

func (s *TableService) Get(ctx context.Context, id uint) (*entity.Table, error) {
	t, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTableNotFound
	}
	return t, err
}

func (s *TableService) FindByNumber(ctx context.Context, tableNo int) (*entity.Table, error) {
	t, err := s.Repo.FindByNumber(ctx, tableNo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTableNotFound
	}
	return t, err
}

func (s *TableService) Update(ctx context.Context, id uint, updates map[string]any) (*entity.Table, error) {
	if v, ok := updates["capacity"].(float64); ok && v < 1 {
		return nil, fmt.Errorf("%w: capacity must be >= 1", ErrValidation)
	}
	if v, ok := updates["status"].(string); ok && !validTableStatus(v) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, v)
	}
	n, err := s.Repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrTableNotFound
	}
	return s.Get(ctx, id)
}

// TransitionStatus = ทางที่ staff ปล่อยโต๊ะกลับเป็น available หลังเคลียร์โต๊ะ
func (s *TableService) TransitionStatus(ctx context.Context, id uint, status string) (*entity.Table, error) {
	if !validTableStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	ok, err := s.Repo.TransitionStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTableNotFound
	}
	return s.Get(ctx, id)
}

func (s *TableService) Delete(ctx context.Context, id uint) error {
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTableNotFound
	}
	return nil
}
