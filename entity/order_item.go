package entity

import (
	"gorm.io/gorm"
)

// OrderItem เก็บเฉพาะเมนู+จำนวน ราคาถูก fold รวมไว้ใน Order.Total ตอนสร้างครั้งเดียว
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	Qty int `json:"qty"`
}
