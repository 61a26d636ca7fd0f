package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"
	"github.com/Deepti-Velip/Cafe-Management-backend/repository"

	"gorm.io/gorm"
)

// store ไม่มี cross-document transaction: checkout จึงเป็นลำดับ best-effort
// create order → occupy table → delete cart
// เรียงแบบนี้เพื่อให้ของที่มีค่าที่สุด (order) ไม่หายแม้ขั้นหลังล้ม
type CheckoutService struct {
	Carts  *repository.CartRepository
	Orders *repository.OrderRepository
	Tables *repository.TableRepository
}

func NewCheckoutService(
	carts *repository.CartRepository,
	orders *repository.OrderRepository,
	tables *repository.TableRepository,
) *CheckoutService {
	return &CheckoutService{Carts: carts, Orders: orders, Tables: tables}
}

// กัน checkout ค้างไม่จำกัด — โต๊ะจะถูกปล่อยให้คาสถานะไม่ได้
const checkoutTimeout = 5 * time.Second

// Checkout แปลง cart หนึ่งใบเป็น order หนึ่งรายการผูกกับโต๊ะหนึ่งตัว
// fail ก่อนสร้าง order = ไม่มี side effect ใด ๆ (cart อยู่ครบ retry ได้)
func (s *CheckoutService) Checkout(ctx context.Context, cartID uint, tableNo int) (uint, error) {
	ctx, cancel := context.WithTimeout(ctx, checkoutTimeout)
	defer cancel()

	// 1. โหลดตะกร้า
	cart, err := s.Carts.GetWithItems(ctx, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCartNotFound
		}
		return 0, err
	}
	if len(cart.Items) == 0 {
		return 0, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	// 2. หาโต๊ะจากเลขโต๊ะ
	table, err := s.Tables.FindByNumber(ctx, tableNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrTableNotFound
		}
		return 0, err
	}

	// 3. ยอดรวมจากราคาที่ snapshot ไว้ในตะกร้า ไม่อ่านราคาเมนูสดซ้ำ
	var total int64
	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		if it.Qty < 1 {
			return 0, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
		}
		total += it.Price * int64(it.Qty)
		items = append(items, entity.OrderItem{MenuID: it.MenuID, Qty: it.Qty})
	}

	// 4. สร้าง order (order + items เป็น insert ชุดเดียว)
	order := entity.Order{
		Total:   total,
		Status:  entity.OrderPending,
		TableID: table.ID,
		Items:   items,
	}
	if err := s.Orders.Create(ctx, &order); err != nil {
		return 0, err
	}

	// 5. flip โต๊ะเป็น occupied — เช็คซ้ำตรงนี้กันสอง checkout ชิงโต๊ะเดียวกัน
	ok, err := s.Tables.OccupyIfFree(ctx, table.ID)
	if err != nil {
		return order.ID, &PartialCompletionError{
			OrderID: order.ID, TableID: table.ID, CartID: cart.ID,
			Step: "occupy table", Err: err,
		}
	}
	if !ok {
		// โต๊ะถูกชิงไปแล้ว: compensate ด้วยการถอน order ที่เพิ่งสร้าง ตะกร้าไม่ถูกแตะ
		if derr := s.Orders.HardDelete(ctx, order.ID); derr != nil {
			return order.ID, &PartialCompletionError{
				OrderID: order.ID, TableID: table.ID, CartID: cart.ID,
				Step: "compensate order", Err: derr,
			}
		}
		return 0, ErrTableOccupied
	}

	// 6. เก็บตะกร้า — ต้องเป็นขั้นตอนสุดท้ายเสมอ
	if err := s.Carts.Delete(ctx, cart.ID); err != nil {
		return order.ID, &PartialCompletionError{
			OrderID: order.ID, TableID: table.ID, CartID: cart.ID,
			Step: "delete cart", Err: err,
		}
	}

	return order.ID, nil
}

// Reconcile กวาดความไม่ตรงกันจาก PartialCompletion:
// order ที่ยังเปิดอยู่แต่โต๊ะไม่ occupied → flip โต๊ะให้ตรง (idempotent, รันซ้ำได้)
func (s *CheckoutService) Reconcile(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, checkoutTimeout)
	defer cancel()

	rows, err := s.Orders.OpenOrdersWithUnoccupiedTables(ctx)
	if err != nil {
		return 0, err
	}

	fixed := 0
	for _, row := range rows {
		ok, err := s.Tables.TransitionStatus(ctx, row.TableID, entity.TableOccupied)
		if err != nil {
			return fixed, err
		}
		if ok {
			fixed++
		}
	}
	return fixed, nil
}
