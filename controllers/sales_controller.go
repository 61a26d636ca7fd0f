package controllers

import (
	"time"

	"github.com/Deepti-Velip/Cafe-Management-backend/pkg/resp"
	"github.com/Deepti-Velip/Cafe-Management-backend/services"

	"github.com/gin-gonic/gin"
)

type SalesController struct{ Svc *services.SalesService }

func NewSalesController(s *services.SalesService) *SalesController { return &SalesController{Svc: s} }

// GET /api/sales?start=YYYY-MM-DD&end=YYYY-MM-DD&trend=daily|monthly
func (sc *SalesController) Summary(c *gin.Context) {
	var start, end time.Time
	if s := c.Query("start"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			resp.BadRequest(c, "invalid start date")
			return
		}
		start = t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			resp.BadRequest(c, "invalid end date")
			return
		}
		// รวมทั้งวันสุดท้าย
		end = t.Add(24*time.Hour - time.Nanosecond)
	}

	rows, err := sc.Svc.Summary(c.Request.Context(), start, end, c.DefaultQuery("trend", "daily"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, rows)
}
