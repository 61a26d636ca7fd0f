package repository

import (
	"context"
	"errors"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"

	"gorm.io/gorm"
)

// programming-contract violation: order ใหม่ต้องเริ่มที่ pending เท่านั้น
var ErrBadInitialStatus = errors.New("new order must have pending status")

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// Create บันทึก order พร้อม items ใน insert ชุดเดียว
func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	if o.Status != entity.OrderPending {
		return ErrBadInitialStatus
	}
	return r.DB.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) Get(ctx context.Context, id uint) (*entity.Order, error) {
	var o entity.Order
	err := withRetry(func() error {
		return r.DB.WithContext(ctx).Preload("Items").First(&o, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderFilter struct {
	Status string
	Search string // match order id หรือชื่อเมนูใน items
	SortBy string // created_at (default) | updated_at
}

func (r *OrderRepository) List(ctx context.Context, f OrderFilter) ([]entity.Order, error) {
	q := r.DB.WithContext(ctx).Model(&entity.Order{}).Preload("Items")

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		sub := r.DB.Model(&entity.OrderItem{}).
			Select("order_items.order_id").
			Joins("JOIN menus ON menus.id = order_items.menu_id").
			Where("menus.name LIKE ?", like)
		q = q.Where("CAST(orders.id AS TEXT) LIKE ? OR orders.id IN (?)", like, sub)
	}

	sortBy := "created_at"
	if f.SortBy == "updated_at" {
		sortBy = "updated_at"
	}

	var orders []entity.Order
	err := withRetry(func() error {
		return q.Order(sortBy + " DESC").Find(&orders).Error
	})
	return orders, err
}

// UpdateStatusFromTo = compare-and-set กันสอง update อ่านสถานะเดียวกันแล้ว commit ชนกัน
func (r *OrderRepository) UpdateStatusFromTo(ctx context.Context, orderID uint, from, to string) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&entity.Order{}, id)
	return res.RowsAffected, res.Error
}

// HardDelete ใช้ compensate checkout ที่ล้ม: เอา order ที่เพิ่งสร้างออกจริง ๆ ไม่ใช่ soft delete
func (r *OrderRepository) HardDelete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.Order{}, id).Error
	})
}

// OpenOrderTableRow ใช้ใน reconcile: order ที่ยังเปิดอยู่ + สถานะโต๊ะปัจจุบัน
type OpenOrderTableRow struct {
	OrderID     uint
	TableID     uint
	TableStatus string
}

func (r *OrderRepository) OpenOrdersWithUnoccupiedTables(ctx context.Context) ([]OpenOrderTableRow, error) {
	var rows []OpenOrderTableRow
	err := withRetry(func() error {
		return r.DB.WithContext(ctx).Table("orders AS o").
			Select("o.id AS order_id, o.table_id, t.status AS table_status").
			Joins("JOIN tables t ON t.id = o.table_id").
			Where("o.deleted_at IS NULL").
			Where("o.status IN ?", []string{entity.OrderPending, entity.OrderInProgress}).
			Where("t.status <> ?", entity.TableOccupied).
			Scan(&rows).Error
	})
	return rows, err
}
