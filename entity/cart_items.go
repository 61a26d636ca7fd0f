package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	Qty int `json:"qty"`
	// ราคา snapshot ตอนหยิบลงตะกร้า — แก้ราคาเมนูทีหลังไม่กระทบตะกร้าเดิม
	Price int64 `json:"price"`
}
