// Package ws pushes live booking and availability updates to subscribed
// clients, keyed by business id.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins; tighten for production
		return true
	},
}

var (
	subscribers = make(map[string][]*websocket.Conn)
	mu          sync.Mutex
)

type updateMessage struct {
	Type       string `json:"type"`
	BusinessID string `json:"businessId"`
}

// Subscribe handles GET /ws/business/:businessId. The connection stays open
// until the client disconnects.
func Subscribe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	key := ps.ByName("businessId")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	mu.Lock()
	subscribers[key] = append(subscribers[key], conn)
	mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	mu.Lock()
	conns := subscribers[key]
	remaining := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			remaining = append(remaining, c)
		}
	}
	subscribers[key] = remaining
	mu.Unlock()

	conn.Close()
}

// BroadcastUpdate notifies every subscriber of a business that something
// changed. Dead connections are dropped on write failure.
func BroadcastUpdate(businessID, updateType string) {
	data, _ := json.Marshal(updateMessage{Type: updateType, BusinessID: businessID})

	mu.Lock()
	defer mu.Unlock()

	conns := subscribers[businessID]
	alive := conns[:0]
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err == nil {
			alive = append(alive, conn)
		} else {
			conn.Close()
		}
	}
	subscribers[businessID] = alive
}
