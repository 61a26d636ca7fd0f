package repository

import (
	"context"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	err := withRetry(func() error {
		return r.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	err := withRetry(func() error {
		return r.DB.WithContext(ctx).First(&u, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

type UserFilter struct {
	Search string // ชื่อหรือ email
	Role   string
	Access *bool
}

func (r *UserRepository) List(ctx context.Context, f UserFilter) ([]entity.User, error) {
	q := r.DB.WithContext(ctx).Model(&entity.User{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR email LIKE ?", like, like)
	}
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if f.Access != nil {
		q = q.Where("access = ?", *f.Access)
	}
	var users []entity.User
	err := withRetry(func() error {
		return q.Find(&users).Error
	})
	return users, err
}

func (r *UserRepository) Update(ctx context.Context, id uint, updates map[string]any) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&entity.User{}, id)
	return res.RowsAffected, res.Error
}
