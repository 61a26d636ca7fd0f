package controllers

import (
	"strconv"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"
	"github.com/Deepti-Velip/Cafe-Management-backend/pkg/resp"
	"github.com/Deepti-Velip/Cafe-Management-backend/services"

	"github.com/gin-gonic/gin"
)

type TableController struct{ Svc *services.TableService }

func NewTableController(s *services.TableService) *TableController { return &TableController{Svc: s} }

// POST /api/tables
func (tc *TableController) Create(c *gin.Context) {
	var body struct {
		TableNo  int    `json:"table_no" binding:"required,min=1"`
		Capacity int    `json:"capacity" binding:"required,min=1"`
		Status   string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t := entity.Table{TableNo: body.TableNo, Capacity: body.Capacity, Status: body.Status}
	if err := tc.Svc.Create(c.Request.Context(), &t); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, t)
}

// GET /api/tables — มี ?table_no= ก็หาโต๊ะเดียวจากเลขโต๊ะ
func (tc *TableController) List(c *gin.Context) {
	if q := c.Query("table_no"); q != "" {
		tableNo, err := strconv.Atoi(q)
		if err != nil || tableNo < 1 {
			resp.BadRequest(c, "invalid table_no")
			return
		}
		t, err := tc.Svc.FindByNumber(c.Request.Context(), tableNo)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		resp.OK(c, t)
		return
	}

	tables, err := tc.Svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, tables)
}

// GET /api/tables/:id
func (tc *TableController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid table id")
		return
	}
	t, err := tc.Svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, t)
}

// PUT /api/tables/:id — staff แก้ capacity หรือปล่อยโต๊ะกลับ available
func (tc *TableController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid table id")
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := tc.Svc.Update(c.Request.Context(), uint(id), updates)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, t)
}

// DELETE /api/tables/:id
func (tc *TableController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid table id")
		return
	}
	if err := tc.Svc.Delete(c.Request.Context(), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Table deleted"})
}
