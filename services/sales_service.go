package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"

	"gorm.io/gorm"
)

type SalesService struct {
	DB *gorm.DB
}

func NewSalesService(db *gorm.DB) *SalesService { return &SalesService{DB: db} }

type SalesRow struct {
	Period  string `json:"period"`
	Orders  int64  `json:"orders"`
	Revenue int64  `json:"revenue"`
}

// Summary รวมยอดขายจาก order ที่ completed เท่านั้น group รายวันหรือรายเดือน
func (s *SalesService) Summary(ctx context.Context, start, end time.Time, trend string) ([]SalesRow, error) {
	format := "%Y-%m-%d"
	switch trend {
	case "", "daily":
	case "monthly":
		format = "%Y-%m"
	default:
		return nil, fmt.Errorf("%w: trend must be daily or monthly", ErrValidation)
	}

	q := s.DB.WithContext(ctx).Model(&entity.Order{}).
		Select("strftime(?, created_at) AS period, COUNT(*) AS orders, SUM(total) AS revenue", format).
		Where("status = ?", entity.OrderCompleted)
	if !start.IsZero() && !end.IsZero() {
		q = q.Where("created_at BETWEEN ? AND ?", start, end)
	}

	var rows []SalesRow
	err := q.Group("period").Order("period").Scan(&rows).Error
	return rows, err
}
