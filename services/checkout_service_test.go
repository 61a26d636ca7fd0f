package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"
	"github.com/Deepti-Velip/Cafe-Management-backend/repository"

	"gorm.io/gorm"
)

func newCheckout(db *gorm.DB) *CheckoutService {
	return NewCheckoutService(
		repository.NewCartRepository(db),
		repository.NewOrderRepository(db),
		repository.NewTableRepository(db),
	)
}

func TestCheckoutSuccess(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckout(db)

	menuA := seedMenu(t, db, "Latte", 1000)
	menuB := seedMenu(t, db, "Croissant", 500)
	seedTable(t, db, 4, entity.TableAvailable)
	cart := seedCart(t, db, []entity.CartItem{
		{MenuID: menuA.ID, Qty: 2, Price: 1000},
		{MenuID: menuB.ID, Qty: 1, Price: 500},
	})

	orderID, err := svc.Checkout(context.Background(), cart.ID, 4)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	var order entity.Order
	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if order.Total != 2500 {
		t.Errorf("total = %d, want 2500", order.Total)
	}
	if order.Status != entity.OrderPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	if len(order.Items) != 2 {
		t.Errorf("items = %d, want 2", len(order.Items))
	}

	// โต๊ะต้อง occupied
	var table entity.Table
	if err := db.Where("table_no = ?", 4).First(&table).Error; err != nil {
		t.Fatalf("load table: %v", err)
	}
	if table.Status != entity.TableOccupied {
		t.Errorf("table status = %s, want occupied", table.Status)
	}
	if order.TableID != table.ID {
		t.Errorf("order bound to table %d, want %d", order.TableID, table.ID)
	}

	// ตะกร้าต้องหายไปแล้ว
	var gone entity.Cart
	if err := db.First(&gone, cart.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("cart still retrievable after checkout: %v", err)
	}
}

func TestCheckoutCartPriceIsSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckout(db)

	menu := seedMenu(t, db, "Mocha", 1200)
	seedTable(t, db, 2, entity.TableAvailable)
	cart := seedCart(t, db, []entity.CartItem{{MenuID: menu.ID, Qty: 3, Price: 1200}})

	// ขึ้นราคาเมนูหลังของลงตะกร้าแล้ว — ต้องไม่กระทบยอด
	if err := db.Model(&entity.Menu{}).Where("id = ?", menu.ID).Update("price", 9999).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}

	orderID, err := svc.Checkout(context.Background(), cart.ID, 2)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	var order entity.Order
	if err := db.First(&order, orderID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if order.Total != 3600 {
		t.Errorf("total = %d, want 3600 (snapshot price)", order.Total)
	}
}

func TestCheckoutCartNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckout(db)
	seedTable(t, db, 1, entity.TableAvailable)

	_, err := svc.Checkout(context.Background(), 999, 1)
	if !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("err = %v, want ErrCartNotFound", err)
	}

	// ต้องไม่มี side effect ใด ๆ
	var orders int64
	db.Model(&entity.Order{}).Count(&orders)
	if orders != 0 {
		t.Errorf("orders created = %d, want 0", orders)
	}
	var table entity.Table
	db.Where("table_no = ?", 1).First(&table)
	if table.Status != entity.TableAvailable {
		t.Errorf("table status = %s, want available", table.Status)
	}
}

func TestCheckoutTableNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckout(db)

	menu := seedMenu(t, db, "Espresso", 800)
	cart := seedCart(t, db, []entity.CartItem{{MenuID: menu.ID, Qty: 1, Price: 800}})

	_, err := svc.Checkout(context.Background(), cart.ID, 42)
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("err = %v, want ErrTableNotFound", err)
	}

	// ตะกร้าต้องอยู่ครบ retry ได้
	var kept entity.Cart
	if err := db.Preload("Items").First(&kept, cart.ID).Error; err != nil {
		t.Fatalf("cart should survive failed checkout: %v", err)
	}
	if len(kept.Items) != 1 {
		t.Errorf("cart items = %d, want 1", len(kept.Items))
	}
	var orders int64
	db.Model(&entity.Order{}).Count(&orders)
	if orders != 0 {
		t.Errorf("orders created = %d, want 0", orders)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckout(db)
	seedTable(t, db, 1, entity.TableAvailable)
	cart := seedCart(t, db, nil)

	_, err := svc.Checkout(context.Background(), cart.ID, 1)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestCheckoutTableAlreadyOccupied(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckout(db)

	menu := seedMenu(t, db, "Flat White", 1100)
	seedTable(t, db, 7, entity.TableOccupied)
	cart := seedCart(t, db, []entity.CartItem{{MenuID: menu.ID, Qty: 1, Price: 1100}})

	_, err := svc.Checkout(context.Background(), cart.ID, 7)
	if !errors.Is(err, ErrTableOccupied) {
		t.Fatalf("err = %v, want ErrTableOccupied", err)
	}

	// order ที่สร้างระหว่างทางต้องถูก compensate ออกหมด ตะกร้าไม่ถูกแตะ
	var orders int64
	db.Unscoped().Model(&entity.Order{}).Count(&orders)
	if orders != 0 {
		t.Errorf("orders left behind = %d, want 0", orders)
	}
	var kept entity.Cart
	if err := db.First(&kept, cart.ID).Error; err != nil {
		t.Fatalf("cart should survive occupied-table conflict: %v", err)
	}
}

func TestCheckoutFromReservedTable(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckout(db)

	menu := seedMenu(t, db, "Tea", 600)
	seedTable(t, db, 3, entity.TableReserved)
	cart := seedCart(t, db, []entity.CartItem{{MenuID: menu.ID, Qty: 2, Price: 600}})

	// reserved → occupied ได้ (ลูกค้าที่จองมาถึงแล้วสั่ง)
	orderID, err := svc.Checkout(context.Background(), cart.ID, 3)
	if err != nil {
		t.Fatalf("checkout from reserved table: %v", err)
	}
	var order entity.Order
	if err := db.First(&order, orderID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	var table entity.Table
	db.Where("table_no = ?", 3).First(&table)
	if table.Status != entity.TableOccupied {
		t.Errorf("table status = %s, want occupied", table.Status)
	}
}

func TestReconcileFixesUnoccupiedTable(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckout(db)

	// สภาพหลัง PartialCompletion: order เปิดอยู่แต่โต๊ะยัง available
	table := seedTable(t, db, 5, entity.TableAvailable)
	seedOrder(t, db, table.ID, entity.OrderPending, 1500)

	fixed, err := svc.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if fixed != 1 {
		t.Errorf("fixed = %d, want 1", fixed)
	}
	var got entity.Table
	db.First(&got, table.ID)
	if got.Status != entity.TableOccupied {
		t.Errorf("table status = %s, want occupied", got.Status)
	}

	// รันซ้ำต้องไม่แก้อะไรเพิ่ม (idempotent)
	fixed, err = svc.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("reconcile again: %v", err)
	}
	if fixed != 0 {
		t.Errorf("second pass fixed = %d, want 0", fixed)
	}
}

func TestReconcileIgnoresClosedOrders(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckout(db)

	table := seedTable(t, db, 6, entity.TableAvailable)
	seedOrder(t, db, table.ID, entity.OrderCompleted, 900)

	fixed, err := svc.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if fixed != 0 {
		t.Errorf("fixed = %d, want 0 (completed order should not re-occupy table)", fixed)
	}
}
