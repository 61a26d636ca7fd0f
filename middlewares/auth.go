package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Deepti-Velip/Cafe-Management-backend/configs"
	"github.com/Deepti-Velip/Cafe-Management-backend/entity"
	"github.com/Deepti-Velip/Cafe-Management-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// ตรวจ token, เช็ค access flag และ (ถ้ามี) บังคับ role
func AuthMiddleware(cfg *configs.Config, db *gorm.DB, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		// user ต้องยังมีอยู่และ access ยังเปิด
		var user entity.User
		if err := db.Select("id, role, access").First(&user, claims.UserID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not found"})
			c.Abort()
			return
		}
		if !user.Access {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "access denied, contact admin"})
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("role", user.Role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if user.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
