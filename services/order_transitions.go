package services

import (
	"github.com/Deepti-Velip/Cafe-Management-backend/entity"
)

// ตารางสถานะที่ไปต่อได้ completed/cancelled เป็น terminal
var orderTransitions = map[string][]string{
	entity.OrderPending:    {entity.OrderInProgress, entity.OrderCancelled},
	entity.OrderInProgress: {entity.OrderCompleted, entity.OrderCancelled},
	entity.OrderCompleted:  {},
	entity.OrderCancelled:  {},
}

func ValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition: ขอสถานะเดิมซ้ำ = no-op สำเร็จ ไม่ใช่ error
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
