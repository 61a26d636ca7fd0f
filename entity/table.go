package entity

import (
	"gorm.io/gorm"
)

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

type Table struct {
	gorm.Model
	TableNo  int    `gorm:"uniqueIndex;not null" json:"table_no"`
	Capacity int    `gorm:"not null" json:"capacity"` // min 1 seat
	Status   string `gorm:"not null;default:available" json:"status"`

	Orders []Order `json:"-"`
}
