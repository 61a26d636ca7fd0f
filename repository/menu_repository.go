package repository

import (
	"context"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) List(ctx context.Context, category string) ([]entity.Menu, error) {
	q := r.DB.WithContext(ctx).Model(&entity.Menu{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var menu []entity.Menu
	err := withRetry(func() error {
		return q.Find(&menu).Error
	})
	return menu, err
}

func (r *MenuRepository) Get(ctx context.Context, id uint) (*entity.Menu, error) {
	var m entity.Menu
	err := withRetry(func() error {
		return r.DB.WithContext(ctx).First(&m, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetBasics เอาเฉพาะ id, price ไว้ snapshot ราคาเข้าตะกร้า
func (r *MenuRepository) GetBasics(ctx context.Context, id uint) (*entity.Menu, error) {
	var m entity.Menu
	err := withRetry(func() error {
		return r.DB.WithContext(ctx).Select("id, price").First(&m, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(ctx context.Context, m *entity.Menu) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *MenuRepository) Update(ctx context.Context, id uint, updates map[string]any) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Menu{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&entity.Menu{}, id)
	return res.RowsAffected, res.Error
}
