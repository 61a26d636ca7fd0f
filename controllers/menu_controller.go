package controllers

import (
	"strconv"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"
	"github.com/Deepti-Velip/Cafe-Management-backend/pkg/resp"
	"github.com/Deepti-Velip/Cafe-Management-backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /api/menu?category=
func (mc *MenuController) List(c *gin.Context) {
	menu, err := mc.Svc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, menu)
}

// GET /api/menu/:id
func (mc *MenuController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid menu id")
		return
	}
	item, err := mc.Svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/menu (staff/admin)
func (mc *MenuController) Create(c *gin.Context) {
	var body struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Price       int64  `json:"price" binding:"required,min=1"`
		Category    string `json:"category"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item := entity.Menu{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Category:    body.Category,
	}
	if err := mc.Svc.Create(c.Request.Context(), &item); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /api/menu/:id (staff/admin)
func (mc *MenuController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid menu id")
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Svc.Update(c.Request.Context(), uint(id), updates)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/menu/:id (staff/admin)
func (mc *MenuController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid menu id")
		return
	}
	if err := mc.Svc.Delete(c.Request.Context(), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Item deleted successfully"})
}
