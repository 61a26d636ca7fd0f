package services

import (
	"testing"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlite in-memory แยก DB ต่อ test ด้วยชื่อไฟล์ตามชื่อ test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// sqlite เขียนพร้อมกันหลาย conn แล้ว lock — บังคับ conn เดียวพอ
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Menu{},
		&entity.Table{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedMenu(t *testing.T, db *gorm.DB, name string, price int64) *entity.Menu {
	t.Helper()
	m := entity.Menu{Name: name, Price: price, Category: entity.CategoryFood}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	return &m
}

func seedTable(t *testing.T, db *gorm.DB, tableNo int, status string) *entity.Table {
	t.Helper()
	tb := entity.Table{TableNo: tableNo, Capacity: 4, Status: status}
	if err := db.Create(&tb).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return &tb
}

func seedCart(t *testing.T, db *gorm.DB, items []entity.CartItem) *entity.Cart {
	t.Helper()
	c := entity.Cart{Items: items}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	return &c
}

func seedOrder(t *testing.T, db *gorm.DB, tableID uint, status string, total int64) *entity.Order {
	t.Helper()
	o := entity.Order{TableID: tableID, Status: status, Total: total}
	if err := db.Create(&o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return &o
}
