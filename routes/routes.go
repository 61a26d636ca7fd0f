package routes

import (
	"github.com/Deepti-Velip/Cafe-Management-backend/configs"
	"github.com/Deepti-Velip/Cafe-Management-backend/controllers"
	"github.com/Deepti-Velip/Cafe-Management-backend/entity"
	"github.com/Deepti-Velip/Cafe-Management-backend/middlewares"
	"github.com/Deepti-Velip/Cafe-Management-backend/repository"
	"github.com/Deepti-Velip/Cafe-Management-backend/services"
	"github.com/Deepti-Velip/Cafe-Management-backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes ประกอบ repo → service → controller แล้วผูก route ทั้งหมด
// คืน hub ให้ main เป็นคน Run/Stop
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) *ws.OrderHub {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	tableSvc := services.NewTableService(tableRepo)
	cartSvc := services.NewCartService(cartRepo, menuRepo)
	orderSvc := services.NewOrderService(orderRepo)
	checkoutSvc := services.NewCheckoutService(cartRepo, orderRepo, tableRepo)
	salesSvc := services.NewSalesService(db)

	// ws hub — REST กับ ws ใช้ OrderService ตัวเดียวกัน สถานะเปลี่ยนที่ไหนก็ publish เหมือนกัน
	hub := ws.NewOrderHub(orderSvc)
	orderSvc.Notifier = hub

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, checkoutSvc)
	salesCtrl := controllers.NewSalesController(salesSvc)

	staffOnly := middlewares.AuthMiddleware(cfg, db, entity.RoleStaff, entity.RoleAdmin)
	adminOnly := middlewares.AuthMiddleware(cfg, db, entity.RoleAdmin)

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg, db), authCtrl.Me)

		users := a.Group("/users", adminOnly)
		{
			users.GET("", authCtrl.ListUsers)
			users.PUT("/:id/access", authCtrl.UpdateAccess)
			users.PUT("/:id/role", authCtrl.UpdateRole)
			users.DELETE("/:id", authCtrl.DeleteUser)
		}
	}

	// Menu — อ่านได้ทุกคน แก้ได้เฉพาะ staff/admin
	m := api.Group("/menu")
	{
		m.GET("", menuCtrl.List)
		m.GET("/:id", menuCtrl.Detail)
		m.POST("", staffOnly, menuCtrl.Create)
		m.PUT("/:id", staffOnly, menuCtrl.Update)
		m.DELETE("/:id", staffOnly, menuCtrl.Delete)
	}

	// Carts — เปิดให้ลูกค้าหน้าร้านใช้ ไม่ต้อง login
	carts := api.Group("/carts")
	{
		carts.POST("", cartCtrl.Create)
		carts.GET("", cartCtrl.List)
		carts.GET("/:id", cartCtrl.Detail)
		carts.DELETE("/:id", cartCtrl.Delete)
		carts.POST("/:id/items", cartCtrl.AddItem)
		carts.PUT("/:id/items/:itemId", cartCtrl.UpdateItem)
		carts.DELETE("/:id/items/:itemId", cartCtrl.RemoveItem)
	}

	// Orders
	o := api.Group("/orders")
	{
		o.POST("/cart/:cartId", orderCtrl.CreateFromCart)
		o.GET("", orderCtrl.List)
		o.GET("/:id", orderCtrl.Detail)
		o.PUT("/:id/status", staffOnly, orderCtrl.UpdateStatus)
		o.DELETE("/:id", staffOnly, orderCtrl.Delete)
		o.POST("/reconcile", staffOnly, orderCtrl.Reconcile)
	}

	// Tables
	t := api.Group("/tables")
	{
		t.GET("", tableCtrl.List)
		t.GET("/:id", tableCtrl.Detail)
		t.POST("", staffOnly, tableCtrl.Create)
		t.PUT("/:id", staffOnly, tableCtrl.Update)
		t.DELETE("/:id", staffOnly, tableCtrl.Delete)
	}

	// Sales
	api.GET("/sales", staffOnly, salesCtrl.Summary)

	// Real-time order status
	r.GET("/ws/orders", hub.HandleWebSocket)

	return hub
}
