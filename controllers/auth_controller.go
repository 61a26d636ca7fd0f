package controllers

import (
	"strconv"

	"github.com/Deepti-Velip/Cafe-Management-backend/pkg/resp"
	"github.com/Deepti-Velip/Cafe-Management-backend/repository"
	"github.com/Deepti-Velip/Cafe-Management-backend/services"
	"github.com/Deepti-Velip/Cafe-Management-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var body struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := ac.Svc.Register(c.Request.Context(), body.Name, body.Email, body.Password, body.Role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := ac.Svc.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	user, err := ac.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}

// GET /api/auth/users?search=&role=&access= (admin)
func (ac *AuthController) ListUsers(c *gin.Context) {
	f := repository.UserFilter{
		Search: c.Query("search"),
		Role:   c.Query("role"),
	}
	if v := c.Query("access"); v != "" {
		access := v == "true"
		f.Access = &access
	}
	users, err := ac.Svc.ListUsers(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, users)
}

// PUT /api/auth/users/:id/access (admin)
func (ac *AuthController) UpdateAccess(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid user id")
		return
	}
	var body struct {
		Access *bool `json:"access" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := ac.Svc.UpdateAccess(c.Request.Context(), uint(id), *body.Access)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}

// PUT /api/auth/users/:id/role (admin)
func (ac *AuthController) UpdateRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid user id")
		return
	}
	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := ac.Svc.UpdateRole(c.Request.Context(), uint(id), body.Role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}

// DELETE /api/auth/users/:id (admin)
func (ac *AuthController) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid user id")
		return
	}
	if err := ac.Svc.DeleteUser(c.Request.Context(), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "User deleted successfully"})
}
