package controllers

import (
	"strconv"

	"github.com/Deepti-Velip/Cafe-Management-backend/pkg/resp"
	"github.com/Deepti-Velip/Cafe-Management-backend/repository"
	"github.com/Deepti-Velip/Cafe-Management-backend/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc      *services.OrderService
	Checkout *services.CheckoutService
}

func NewOrderController(svc *services.OrderService, checkout *services.CheckoutService) *OrderController {
	return &OrderController{Svc: svc, Checkout: checkout}
}

// POST /api/orders/cart/:cartId — checkout ตะกร้าเป็น order ผูกโต๊ะ
func (oc *OrderController) CreateFromCart(c *gin.Context) {
	cartID, err := strconv.Atoi(c.Param("cartId"))
	if err != nil || cartID < 1 {
		resp.BadRequest(c, "invalid cart id")
		return
	}

	var body struct {
		TableNo int `json:"table_no" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	orderID, err := oc.Checkout.Checkout(c.Request.Context(), uint(cartID), body.TableNo)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"orderId": orderID})
}

// GET /api/orders?status=&search=&sortBy=
func (oc *OrderController) List(c *gin.Context) {
	f := repository.OrderFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		SortBy: c.DefaultQuery("sortBy", "created_at"),
	}
	orders, err := oc.Svc.List(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := oc.Svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT /api/orders/:id/status — staff เปลี่ยนสถานะ ผ่าน state machine เสมอ
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.UpdateStatus(c.Request.Context(), uint(id), body.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /api/orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid order id")
		return
	}
	if err := oc.Svc.Delete(c.Request.Context(), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Order deleted"})
}

// POST /api/orders/reconcile — กวาดโต๊ะที่สถานะไม่ตรงกับ order ที่ค้างจาก partial checkout
func (oc *OrderController) Reconcile(c *gin.Context) {
	fixed, err := oc.Checkout.Reconcile(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"fixed": fixed})
}
