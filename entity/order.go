package entity

import (
	"gorm.io/gorm"
)

const (
	OrderPending    = "pending"
	OrderInProgress = "in_progress"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

type Order struct {
	gorm.Model
	Total  int64  `gorm:"not null" json:"total"`
	Status string `gorm:"not null;default:pending" json:"status"`

	TableID uint  `gorm:"not null" json:"tableId"`
	Table   Table `json:"-"` // preload เฉพาะตอนต้องการ detail

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
