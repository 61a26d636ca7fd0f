package controllers

import (
	"strconv"

	"github.com/Deepti-Velip/Cafe-Management-backend/pkg/resp"
	"github.com/Deepti-Velip/Cafe-Management-backend/services"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// POST /api/carts
func (h *CartController) Create(c *gin.Context) {
	var body struct {
		Items []services.CartLineIn `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.Create(c.Request.Context(), body.Items)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, cart)
}

// GET /api/carts
func (h *CartController) List(c *gin.Context) {
	carts, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, carts)
}

// GET /api/carts/:id
func (h *CartController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid cart id")
		return
	}
	cart, err := h.Svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /api/carts/:id/items
func (h *CartController) AddItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid cart id")
		return
	}
	var ln services.CartLineIn
	if err := c.ShouldBindJSON(&ln); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.AddItem(c.Request.Context(), uint(id), ln)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, cart)
}

// PUT /api/carts/:id/items/:itemId
func (h *CartController) UpdateItem(c *gin.Context) {
	cartID, err := strconv.Atoi(c.Param("id"))
	if err != nil || cartID < 1 {
		resp.BadRequest(c, "invalid cart id")
		return
	}
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil || itemID < 1 {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.UpdateItemQty(c.Request.Context(), uint(cartID), uint(itemID), body.Quantity)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/carts/:id/items/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	cartID, err := strconv.Atoi(c.Param("id"))
	if err != nil || cartID < 1 {
		resp.BadRequest(c, "invalid cart id")
		return
	}
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil || itemID < 1 {
		resp.BadRequest(c, "invalid item id")
		return
	}
	cart, err := h.Svc.RemoveItem(c.Request.Context(), uint(cartID), uint(itemID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/carts/:id
func (h *CartController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid cart id")
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Cart deleted"})
}
