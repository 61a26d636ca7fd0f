package repository

import (
	"context"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) GetWithItems(ctx context.Context, id uint) (*entity.Cart, error) {
	var c entity.Cart
	err := withRetry(func() error {
		return r.DB.WithContext(ctx).Preload("Items").First(&c, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) List(ctx context.Context) ([]entity.Cart, error) {
	var carts []entity.Cart
	err := withRetry(func() error {
		return r.DB.WithContext(ctx).Preload("Items").Find(&carts).Error
	})
	return carts, err
}

func (r *CartRepository) Create(ctx context.Context, c *entity.Cart) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *CartRepository) GetItem(ctx context.Context, cartID, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := withRetry(func() error {
		return r.DB.WithContext(ctx).Where("id = ? AND cart_id = ?", itemID, cartID).First(&it).Error
	})
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) UpdateItemQty(ctx context.Context, cartID, itemID uint, qty int) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&entity.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("qty", qty)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *CartRepository) AddItem(ctx context.Context, it *entity.CartItem) error {
	return r.DB.WithContext(ctx).Create(it).Error
}

func (r *CartRepository) RemoveItem(ctx context.Context, cartID, itemID uint) (bool, error) {
	res := r.DB.WithContext(ctx).Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&entity.CartItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Delete ลบทั้งตะกร้า — ตอน checkout นี่คือขั้นตอนสุดท้ายเสมอ
func (r *CartRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", id).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Cart{}, id).Error
	})
}
