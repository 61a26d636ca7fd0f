package entity

import (
	"gorm.io/gorm"
)

const (
	CategoryFood     = "Food"
	CategoryBeverage = "Beverage"
	CategoryDessert  = "Dessert"
)

type Menu struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"` // minor units (satang/cent)
	Category    string `gorm:"default:Food" json:"category"`

	// preload เฉพาะตอนต้องการ
	OrderItems []OrderItem `json:"-"`
	CartItems  []CartItem  `json:"-"`
}
