package entity

import (
	"gorm.io/gorm"
)

// Cart มีอายุสั้น: สร้างตอนลูกค้าเริ่มสั่ง แล้วถูกลบเมื่อ checkout สำเร็จ
type Cart struct {
	gorm.Model
	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
