package configs

import (
	"fmt"
	"log"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรกจาก env
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:     "Admin Seed",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     entity.RoleAdmin,
		Access:   true,
	}
	return db.Create(&admin).Error
}

// SeedFixtures เติมโต๊ะ + เมนูเริ่มต้นสำหรับ dev (idempotent)
func SeedFixtures() error {
	db := DB()

	var tables int64
	if err := db.Model(&entity.Table{}).Count(&tables).Error; err != nil {
		return err
	}
	if tables == 0 {
		for i := 1; i <= 10; i++ {
			t := entity.Table{TableNo: i, Capacity: 2 + i%6, Status: entity.TableAvailable}
			if err := db.Create(&t).Error; err != nil {
				return err
			}
		}
		log.Println("seeded 10 tables")
	}

	var menus int64
	if err := db.Model(&entity.Menu{}).Count(&menus).Error; err != nil {
		return err
	}
	if menus == 0 {
		categories := []string{entity.CategoryFood, entity.CategoryBeverage, entity.CategoryDessert}
		for i := 1; i <= 20; i++ {
			m := entity.Menu{
				Name:        fmt.Sprintf("Menu Item %d", i),
				Description: fmt.Sprintf("Delicious dish number %d", i),
				Price:       int64(1000 + i*250),
				Category:    categories[i%len(categories)],
			}
			if err := db.Create(&m).Error; err != nil {
				return err
			}
		}
		log.Println("seeded 20 menu items")
	}

	return nil
}
