package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"boutique/internal/entities"
	"boutique/pkg/logger"
	"github.com/gorilla/websocket"
)

const (
	MessageTypeOrderStatusChanged = "order.status.changed"

	broadcastBuffer = 256
	clientBuffer    = 64
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = (pongWait * 9) / 10
	maxMessageSize  = 512
)

var (
	ErrBroadcastFull = errors.New("websocket broadcast queue is full")
	ErrHubStopped    = errors.New("websocket hub is stopped")
)

type Message struct {
	Type      string `json:"type"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

type client struct {
	conn *websocket.Conn
	send chan Message
	hub  *Hub
}

// Hub рассылает события смены статуса всем подключенным клиентам.
// Карту клиентов меняет только горутина Run.
type Hub struct {
	log        logger.Logger
	clients    map[*client]struct{}
	broadcast  chan Message
	register   chan *client
	unregister chan *client
	done       chan struct{}
	count      int
	mu         sync.RWMutex
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		log:        log.With(logger.NewField("component", "websocket_hub")),
		clients:    make(map[*client]struct{}),
		broadcast:  make(chan Message, broadcastBuffer),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
}

// Run обслуживает подписки до отмены контекста, после чего закрывает всех клиентов.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			h.log.Info("websocket hub stopped")
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.setCount(len(h.clients))
			h.log.Info("client connected", logger.NewField("client_count", len(h.clients)))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				h.log.Info("client disconnected", logger.NewField("client_count", len(h.clients)))
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// медленный клиент, отключаем
					h.drop(c)
					h.log.Warn("client send buffer full, disconnecting")
				}
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
	h.setCount(len(h.clients))
}

func (h *Hub) setCount(n int) {
	h.mu.Lock()
	h.count = n
	h.mu.Unlock()
}

// Publish ставит событие в очередь рассылки и не ждет доставки.
func (h *Hub) Publish(ctx context.Context, event entities.OrderStatusChanged) error {
	msg := Message{
		Type:      MessageTypeOrderStatusChanged,
		Data:      event,
		Timestamp: event.ChangedAt.UTC().Format(time.RFC3339),
	}

	select {
	case <-h.done:
		return ErrHubStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case h.broadcast <- msg:
		return nil
	default:
		return ErrBroadcastFull
	}
}

// Attach регистрирует уже апгрейженное соединение и запускает его read/write циклы.
func (h *Hub) Attach(conn *websocket.Conn) {
	c := &client{
		conn: conn,
		send: make(chan Message, clientBuffer),
		hub:  h,
	}

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go c.writePump(h.log)
	go c.readPump(h.log)
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

func (c *client) readPump(log logger.Logger) {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		// входящие сообщения не нужны, читаем ради control frames
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn("websocket read error", logger.NewField("error", err))
			}
			return
		}
	}
}

func (c *client) writePump(log logger.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(msg)
			if err != nil {
				log.Error("encode websocket message", logger.NewField("error", err))
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
