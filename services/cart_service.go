package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"
	"github.com/Deepti-Velip/Cafe-Management-backend/repository"

	"gorm.io/gorm"
)

type CartService struct {
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{CartRepo: cr, MenuRepo: mr}
}

type CartLineIn struct {
	MenuID uint `json:"menuItem" binding:"required"`
	Qty    int  `json:"quantity" binding:"required,min=1"`
}

// Create สร้างตะกร้าใหม่ snapshot ราคาเมนู ณ ตอนนี้ลงทุก line
// แก้ราคาเมนูทีหลังไม่มีผลกับตะกร้าที่เปิดไว้แล้ว
func (s *CartService) Create(ctx context.Context, lines []CartLineIn) (*entity.Cart, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: items is required", ErrValidation)
	}

	items := make([]entity.CartItem, 0, len(lines))
	for _, ln := range lines {
		if ln.Qty < 1 {
			return nil, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
		}
		m, err := s.MenuRepo.GetBasics(ctx, ln.MenuID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: menu item %d not found", ErrValidation, ln.MenuID)
			}
			return nil, err
		}
		items = append(items, entity.CartItem{
			MenuID: m.ID,
			Qty:    ln.Qty,
			Price:  m.Price,
		})
	}

	cart := entity.Cart{Items: items}
	if err := s.CartRepo.Create(ctx, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *CartService) Get(ctx context.Context, id uint) (*entity.Cart, error) {
	c, err := s.CartRepo.GetWithItems(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartNotFound
	}
	return c, err
}

func (s *CartService) List(ctx context.Context) ([]entity.Cart, error) {
	return s.CartRepo.List(ctx)
}

func (s *CartService) AddItem(ctx context.Context, cartID uint, ln CartLineIn) (*entity.Cart, error) {
	if ln.Qty < 1 {
		return nil, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
	}
	if _, err := s.CartRepo.GetWithItems(ctx, cartID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	m, err := s.MenuRepo.GetBasics(ctx, ln.MenuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item %d not found", ErrValidation, ln.MenuID)
		}
		return nil, err
	}
	it := entity.CartItem{CartID: cartID, MenuID: m.ID, Qty: ln.Qty, Price: m.Price}
	if err := s.CartRepo.AddItem(ctx, &it); err != nil {
		return nil, err
	}
	return s.Get(ctx, cartID)
}

func (s *CartService) UpdateItemQty(ctx context.Context, cartID, itemID uint, qty int) (*entity.Cart, error) {
	if qty < 1 {
		return nil, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
	}
	ok, err := s.CartRepo.UpdateItemQty(ctx, cartID, itemID, qty)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCartItemNotFound
	}
	return s.Get(ctx, cartID)
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID uint) (*entity.Cart, error) {
	ok, err := s.CartRepo.RemoveItem(ctx, cartID, itemID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCartItemNotFound
	}
	return s.Get(ctx, cartID)
}

func (s *CartService) Delete(ctx context.Context, id uint) error {
	if _, err := s.CartRepo.GetWithItems(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartNotFound
		}
		return err
	}
	return s.CartRepo.Delete(ctx, id)
}
