package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"
	"github.com/Deepti-Velip/Cafe-Management-backend/repository"

	"gorm.io/gorm"
)

// StatusNotifier = ช่องทาง push สถานะแบบ real-time (ws hub)
// services ไม่รู้จัก websocket ตรง ๆ main เป็นคนเสียบให้
type StatusNotifier interface {
	PublishStatus(orderID uint, status string)
}

type OrderService struct {
	Repo     *repository.OrderRepository
	Notifier StatusNotifier // nil ได้ (เช่นใน test)
}

func NewOrderService(repo *repository.OrderRepository) *OrderService {
	return &OrderService{Repo: repo}
}

func (s *OrderService) Get(ctx context.Context, id uint) (*entity.Order, error) {
	o, err := s.Repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (s *OrderService) List(ctx context.Context, f repository.OrderFilter) ([]entity.Order, error) {
	if f.Status != "" && !ValidOrderStatus(f.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, f.Status)
	}
	return s.Repo.List(ctx, f)
}

// UpdateStatus = ทางเดียวที่สถานะ order เปลี่ยนได้ ทั้ง REST และ ws วิ่งเข้าที่นี่
// state machine ตัดสินความถูกต้อง แล้ว commit ด้วย compare-and-set
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, requested string) (*entity.Order, error) {
	if !ValidOrderStatus(requested) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, requested)
	}

	// CAS อาจแพ้ให้ update ที่มาพร้อมกัน → อ่านใหม่แล้วตัดสินอีกรอบ
	for attempt := 0; attempt < 3; attempt++ {
		order, err := s.Repo.Get(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, err
		}

		// ขอสถานะเดิมซ้ำ = no-op สำเร็จ ไม่ publish ซ้ำ
		if order.Status == requested {
			return order, nil
		}
		if !CanTransition(order.Status, requested) {
			return nil, &IllegalTransitionError{Current: order.Status, Requested: requested}
		}

		ok, err := s.Repo.UpdateStatusFromTo(ctx, orderID, order.Status, requested)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue // สถานะขยับระหว่างอ่านกับเขียน
		}

		order.Status = requested
		if s.Notifier != nil {
			s.Notifier.PublishStatus(orderID, requested)
		}
		return order, nil
	}

	// แพ้ CAS สามรอบ: รายงานจากสถานะล่าสุดที่เห็น
	order, err := s.Repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == requested {
		return order, nil
	}
	return nil, &IllegalTransitionError{Current: order.Status, Requested: requested}
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}
