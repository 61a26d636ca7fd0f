package controllers

import (
	"errors"
	"net/http"

	"github.com/Deepti-Velip/Cafe-Management-backend/pkg/resp"
	"github.com/Deepti-Velip/Cafe-Management-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// map error class → HTTP status ใช้ร่วมกันทุก controller
func writeServiceError(c *gin.Context, err error) {
	var illegal *services.IllegalTransitionError
	var partial *services.PartialCompletionError

	switch {
	case errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrMenuNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, err.Error())

	case errors.As(err, &illegal):
		// แนบสถานะปัจจุบันกลับไปเสมอ
		c.JSON(http.StatusConflict, gin.H{
			"ok":            false,
			"error":         illegal.Error(),
			"currentStatus": illegal.Current,
		})

	case errors.Is(err, services.ErrTableOccupied):
		resp.Conflict(c, err.Error())

	case errors.As(err, &partial):
		// ห้ามกลืน: order เกิดแล้วแต่สถานะโต๊ะ/ตะกร้าไม่ตรง ให้ caller รู้ orderId ไว้ reconcile
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"error":   partial.Error(),
			"orderId": partial.OrderID,
		})

	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())

	default:
		resp.ServerError(c, err)
	}
}
