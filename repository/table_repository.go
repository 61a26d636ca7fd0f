package repository

import (
	"context"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"

	"gorm.io/gorm"
)

type TableRepository struct{ DB *gorm.DB }

func NewTableRepository(db *gorm.DB) *TableRepository { return &TableRepository{DB: db} }

// GET /tables?table_no=
func (r *TableRepository) FindByNumber(ctx context.Context, tableNo int) (*entity.Table, error) {
	var t entity.Table
	err := withRetry(func() error {
		return r.DB.WithContext(ctx).Where("table_no = ?", tableNo).First(&t).Error
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) FindByID(ctx context.Context, id uint) (*entity.Table, error) {
	var t entity.Table
	err := withRetry(func() error {
		return r.DB.WithContext(ctx).First(&t, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) List(ctx context.Context) ([]entity.Table, error) {
	var tables []entity.Table
	err := withRetry(func() error {
		return r.DB.WithContext(ctx).Order("table_no").Find(&tables).Error
	})
	return tables, err
}

func (r *TableRepository) Create(ctx context.Context, t *entity.Table) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *TableRepository) Update(ctx context.Context, id uint, updates map[string]any) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Table{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *TableRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&entity.Table{}, id)
	return res.RowsAffected, res.Error
}

// TransitionStatus อัปเดต status ฟิลด์เดียวแบบ atomic
// RowsAffected == 0 = ไม่พบโต๊ะ (แยกจาก storage error) — policy ความถูกต้องของ transition อยู่ฝั่ง caller
func (r *TableRepository) TransitionStatus(ctx context.Context, id uint, status string) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Table{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// OccupyIfFree ใช้ตอน checkout: flip เป็น occupied เฉพาะเมื่อยังไม่ occupied
// กันสอง checkout จองโต๊ะเดียวกันพร้อมกัน
func (r *TableRepository) OccupyIfFree(ctx context.Context, id uint) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Table{}).
		Where("id = ? AND status <> ?", id, entity.TableOccupied).
		Update("status", entity.TableOccupied)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
