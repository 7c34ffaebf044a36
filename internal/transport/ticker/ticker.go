// Package ticker streams market sales to websocket subscribers
package ticker

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/gorilla/websocket"

	"github.com/tides-game/tides-api/internal/engine/rpgtoolkit"
	"github.com/tides-game/tides-api/internal/entities"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 64
)

// Tick is one sale as sent to subscribers
type Tick struct {
	Type         string `json:"type"`
	SettlementID string `json:"settlement_id"`
	SpeciesID    uint64 `json:"species_id"`
	Weight       uint16 `json:"weight"`
	Freshness    uint64 `json:"freshness"`
	SalePrice    uint64 `json:"sale_price"`
	CurrentValue uint64 `json:"current_value"`
	SoldAt       int64  `json:"sold_at"`
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans sale ticks out to every connected websocket
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*subscriber]struct{}
	closed  bool
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*subscriber]struct{}),
	}
}

// Attach subscribes the hub to sales on the bus and returns the subscription ID
func (h *Hub) Attach(bus events.EventBus) string {
	return rpgtoolkit.SubscribeSales(bus, h.OnSale)
}

// OnSale broadcasts a settlement. Subscribers that cannot keep up are dropped.
func (h *Hub) OnSale(_ context.Context, settlement *entities.Settlement, market *entities.MarketRecord) {
	msg, err := json.Marshal(Tick{
		Type:         "sale",
		SettlementID: settlement.ID,
		SpeciesID:    settlement.SpeciesID,
		Weight:       settlement.Weight,
		Freshness:    settlement.Freshness,
		SalePrice:    settlement.SalePrice,
		CurrentValue: market.CurrentValue,
		SoldAt:       settlement.SoldAt,
	})
	if err != nil {
		slog.Error("failed to encode tick", "settlement_id", settlement.ID, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.clients {
		select {
		case sub.send <- msg:
		default:
			slog.Warn("dropping slow ticker subscriber", "remote", sub.conn.RemoteAddr().String())
			h.removeLocked(sub)
		}
	}
}

// Clients returns the number of connected subscribers
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and streams ticks until the client leaves
func (h *Hub) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		rw.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	conn, err := h.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		slog.Debug("ticker upgrade failed", "error", err)
		return
	}

	sub := &subscriber{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()
		return
	}
	h.clients[sub] = struct{}{}
	h.mu.Unlock()

	slog.Debug("ticker subscriber joined", "remote", conn.RemoteAddr().String())

	go h.writeLoop(sub)
	h.readLoop(sub)
}

// readLoop discards client frames and notices disconnects
func (h *Hub) readLoop(sub *subscriber) {
	defer h.remove(sub)

	_ = sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	sub.conn.SetPongHandler(func(string) error {
		return sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(sub *subscriber) {
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ping.Stop()
		_ = sub.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-sub.send:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = sub.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
				return
			}
			if err := sub.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ping.C:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) remove(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(sub)
}

func (h *Hub) removeLocked(sub *subscriber) {
	if _, ok := h.clients[sub]; !ok {
		return
	}
	delete(h.clients, sub)
	close(sub.send)
}

// Close disconnects every subscriber and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for sub := range h.clients {
		h.removeLocked(sub)
	}
}
