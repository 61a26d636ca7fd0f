package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

const readAttempts = 3

// withRetry ใช้กับ read เท่านั้น — not-found และ context expiry ถือเป็นคำตอบสุดท้าย
// write ใน checkout ห้าม retry แบบนี้ (เสี่ยง effect ซ้ำ)
func withRetry(fn func() error) error {
	var err error
	for i := 0; i < readAttempts; i++ {
		err = fn()
		if err == nil ||
			errors.Is(err, gorm.ErrRecordNotFound) ||
			errors.Is(err, context.DeadlineExceeded) ||
			errors.Is(err, context.Canceled) {
			return err
		}
		time.Sleep(time.Duration(i+1) * 50 * time.Millisecond)
	}
	return err
}
