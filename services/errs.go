package services

import (
	"errors"
	"fmt"
)

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("item not found in cart")
	ErrTableNotFound    = errors.New("table not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrMenuNotFound     = errors.New("menu item not found")
	ErrUserNotFound     = errors.New("user not found")

	// wrap รายละเอียดด้วย fmt.Errorf("%w: ...", ErrValidation)
	ErrValidation = errors.New("validation failed")

	// โต๊ะถูก checkout อื่นชิงไปก่อน
	ErrTableOccupied = errors.New("table already occupied")
)

// IllegalTransitionError = state machine ปฏิเสธ คืนสถานะปัจจุบันให้ caller เสมอ
type IllegalTransitionError struct {
	Current   string
	Requested string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition %s -> %s", e.Current, e.Requested)
}

// PartialCompletionError = order ถูกสร้างแล้ว แต่ขั้นตอนถัดไปของ checkout ล้มเหลว
// สถานะโต๊ะ/ตะกร้าอาจไม่ตรงความจริง ต้องผ่าน Reconcile ไม่ใช่ retry ทั้งก้อน
type PartialCompletionError struct {
	OrderID uint
	TableID uint
	CartID  uint
	Step    string
	Err     error
}

func (e *PartialCompletionError) Error() string {
	return fmt.Sprintf("checkout partially completed: order %d created but %s failed: %v", e.OrderID, e.Step, e.Err)
}

func (e *PartialCompletionError) Unwrap() error { return e.Err }
