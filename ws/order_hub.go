package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/Deepti-Velip/Cafe-Management-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// roomConn = สิ่งที่ hub ต้องการจาก connection จริง (*websocket.Conn ก็เข้าได้ ตัวปลอมใน test ก็เข้าได้)
type roomConn interface {
	WriteJSON(v any) error
	Close() error
}

type client struct {
	id   string // uuid ไว้ดู log ว่า conn ไหนเป็น conn ไหน
	conn roomConn
}

type subscription struct {
	client  *client
	orderID uint
}

type statusEvent struct {
	OrderID uint
	Status  string
}

// ข้อความขาออกไปหา subscriber
type statusUpdateMsg struct {
	Event   string `json:"event"`
	OrderID uint   `json:"orderId"`
	Status  string `json:"status"`
}

// OrderHub = ศูนย์กลาง fan-out สถานะ order แบบ real-time
// สมาชิกห้องอยู่ในหน่วยความจำเท่านั้น restart แล้วหาย client ต้อง join ใหม่เอง
type OrderHub struct {
	rooms      map[uint]map[*client]bool // orderID -> set of clients
	register   chan subscription
	unregister chan subscription
	drop       chan *client // disconnect: หลุดจากทุกห้อง
	broadcast  chan statusEvent
	stop       chan struct{}
	mu         sync.Mutex
	orders     *services.OrderService
}

func NewOrderHub(orders *services.OrderService) *OrderHub {
	return &OrderHub{
		rooms:      make(map[uint]map[*client]bool),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		drop:       make(chan *client),
		broadcast:  make(chan statusEvent),
		stop:       make(chan struct{}),
		orders:     orders,
	}
}

// PublishStatus implements services.StatusNotifier
// REST update ก็วิ่งเข้าทางนี้เหมือนกัน ห้องเดียวกันเห็นเหตุการณ์เดียวกันเสมอ
func (h *OrderHub) PublishStatus(orderID uint, status string) {
	h.broadcast <- statusEvent{OrderID: orderID, Status: status}
}

// Run ฟัง register/unregister/drop/broadcast ไปเรื่อย ๆ จนถูก Stop
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.rooms[sub.orderID] == nil {
				h.rooms[sub.orderID] = make(map[*client]bool)
			}
			h.rooms[sub.orderID][sub.client] = true // join ซ้ำ = idempotent
			h.mu.Unlock()

		case sub := <-h.unregister:
			// ออกจากห้องเดียว conn ยังอยู่
			h.mu.Lock()
			if room, ok := h.rooms[sub.orderID]; ok {
				delete(room, sub.client)
				if len(room) == 0 {
					delete(h.rooms, sub.orderID)
				}
			}
			h.mu.Unlock()

		case cl := <-h.drop:
			// disconnect: ถอดออกจากทุกห้องแล้วปิด conn
			h.mu.Lock()
			for orderID, room := range h.rooms {
				delete(room, cl)
				if len(room) == 0 {
					delete(h.rooms, orderID)
				}
			}
			h.mu.Unlock()
			cl.conn.Close()

		case ev := <-h.broadcast:
			// ส่งทีละ conn — conn ไหนพังก็ตัดทิ้ง ไม่ลามไป conn อื่น
			h.mu.Lock()
			for cl := range h.rooms[ev.OrderID] {
				msg := statusUpdateMsg{Event: "orderStatusUpdated", OrderID: ev.OrderID, Status: ev.Status}
				if err := cl.conn.WriteJSON(msg); err != nil {
					log.Printf("ws write error (client %s): %v", cl.id, err)
					cl.conn.Close()
					delete(h.rooms[ev.OrderID], cl)
				}
			}
			h.mu.Unlock()

		case <-h.stop:
			h.mu.Lock()
			for _, room := range h.rooms {
				for cl := range room {
					cl.conn.Close()
				}
			}
			h.rooms = make(map[uint]map[*client]bool)
			h.mu.Unlock()
			return
		}
	}
}

func (h *OrderHub) Stop() {
	close(h.stop)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	cl := &client{id: uuid.NewString(), conn: conn}
	log.Printf("ws client connected: %s", cl.id)

	go h.listen(cl, conn)
}

// listen อ่านข้อความจาก client: join/leave ห้อง หรือสั่งอัปเดตสถานะ
func (h *OrderHub) listen(cl *client, conn *websocket.Conn) {
	defer func() {
		h.drop <- cl
		log.Printf("ws client disconnected: %s", cl.id)
	}()

	for {
		_, msgData, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var payload struct {
			Event   string `json:"event"`
			OrderID uint   `json:"orderId"`
			Status  string `json:"status"`
		}
		if err := json.Unmarshal(msgData, &payload); err != nil {
			log.Printf("ws invalid payload (client %s): %v", cl.id, err)
			continue
		}

		switch payload.Event {
		case "joinOrderRoom":
			h.register <- subscription{client: cl, orderID: payload.OrderID}

		case "leaveOrderRoom":
			h.unregister <- subscription{client: cl, orderID: payload.OrderID}

		case "updateOrderStatus":
			// วิ่งผ่าน state machine เหมือน REST — สำเร็จแล้ว OrderService จะ publish กลับมาเอง
			if _, err := h.orders.UpdateStatus(context.Background(), payload.OrderID, payload.Status); err != nil {
				log.Printf("ws status update rejected (client %s, order %d): %v", cl.id, payload.OrderID, err)
			}

		default:
			log.Printf("ws unknown event %q (client %s)", payload.Event, cl.id)
		}
	}
}
