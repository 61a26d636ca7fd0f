package main

import (
	"fmt"
	"log"

	"github.com/Deepti-Velip/Cafe-Management-backend/configs"
	"github.com/Deepti-Velip/Cafe-Management-backend/middlewares"
	"github.com/Deepti-Velip/Cafe-Management-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedFixtures(); err != nil {
		log.Fatalf("seed fixtures failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.AllowOrigins))

	hub := routes.RegisterRoutes(r, db, cfg)
	go hub.Run()
	defer hub.Stop()

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
