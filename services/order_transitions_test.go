package services

import (
	"testing"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{entity.OrderPending, entity.OrderInProgress, true},
		{entity.OrderPending, entity.OrderCancelled, true},
		{entity.OrderPending, entity.OrderCompleted, false}, // ข้ามขั้นไม่ได้
		{entity.OrderInProgress, entity.OrderCompleted, true},
		{entity.OrderInProgress, entity.OrderCancelled, true},
		{entity.OrderInProgress, entity.OrderPending, false},
		{entity.OrderCompleted, entity.OrderPending, false},
		{entity.OrderCompleted, entity.OrderInProgress, false},
		{entity.OrderCompleted, entity.OrderCancelled, false},
		{entity.OrderCancelled, entity.OrderPending, false},
		{entity.OrderCancelled, entity.OrderCompleted, false},
		// ขอสถานะเดิมซ้ำ = no-op สำเร็จ
		{entity.OrderPending, entity.OrderPending, true},
		{entity.OrderCompleted, entity.OrderCompleted, true},
		{entity.OrderCancelled, entity.OrderCancelled, true},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{
		entity.OrderPending, entity.OrderInProgress, entity.OrderCompleted, entity.OrderCancelled,
	} {
		if !ValidOrderStatus(s) {
			t.Errorf("ValidOrderStatus(%s) = false", s)
		}
	}
	for _, s := range []string{"", "done", "PENDING", "delivering"} {
		if ValidOrderStatus(s) {
			t.Errorf("ValidOrderStatus(%q) = true", s)
		}
	}
}
