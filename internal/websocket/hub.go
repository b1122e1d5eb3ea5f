package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/shopstack/studio-api/internal/model"
)

// Client represents a WebSocket client subscribed to one production run
type Client struct {
	ProductionID string
	Conn         *websocket.Conn
	Send         chan []byte
}

// Hub maintains active WebSocket connections
type Hub struct {
	// Clients grouped by production ID
	clients map[string]map[*Client]bool

	// Register requests
	register chan *Client

	// Unregister requests
	unregister chan *Client

	// Broadcast messages to production subscribers
	broadcast chan *BroadcastMessage

	mu sync.RWMutex
}

// BroadcastMessage represents a message to broadcast
type BroadcastMessage struct {
	ProductionID string
	Message      []byte
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.ProductionID] == nil {
				h.clients[client.ProductionID] = make(map[*Client]bool)
			}
			h.clients[client.ProductionID][client] = true
			h.mu.Unlock()
			log.Printf("Client registered for production %s", client.ProductionID)

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.ProductionID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.Send)
					if len(clients) == 0 {
						delete(h.clients, client.ProductionID)
					}
				}
			}
			h.mu.Unlock()
			log.Printf("Client unregistered from production %s", client.ProductionID)

		case msg := <-h.broadcast:
			h.mu.RLock()
			if clients, ok := h.clients[msg.ProductionID]; ok {
				for client := range clients {
					select {
					case client.Send <- msg.Message:
					default:
						close(client.Send)
						delete(clients, client)
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a new client
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// BroadcastProgress sends a progress update to all production subscribers
func (h *Hub) BroadcastProgress(productionID string, phase model.PhaseID, progress int, status model.JobStatus, step string) {
	h.send(productionID, model.WSProgressMessage{
		Type:         model.WSMessageTypeProgress,
		ProductionID: productionID,
		Phase:        phase,
		Progress:     progress,
		Status:       status,
		CurrentStep:  step,
	})
}

// BroadcastLog streams one audit line to all production subscribers
func (h *Hub) BroadcastLog(productionID string, entry model.ProductionLog) {
	h.send(productionID, model.WSLogMessage{
		Type:         model.WSMessageTypeLog,
		ProductionID: productionID,
		Entry:        entry,
	})
}

// BroadcastComplete sends a completion message to all production subscribers
func (h *Hub) BroadcastComplete(productionID string, result interface{}) {
	h.send(productionID, model.WSCompleteMessage{
		Type:         model.WSMessageTypeComplete,
		ProductionID: productionID,
		Result:       result,
	})
}

// BroadcastError sends an error message to all production subscribers
func (h *Hub) BroadcastError(productionID string, code, message string) {
	h.send(productionID, model.WSErrorMessage{
		Type:         model.WSMessageTypeError,
		ProductionID: productionID,
		Error: model.WSError{
			Code:    code,
			Message: message,
		},
	})
}

func (h *Hub) send(productionID string, msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Failed to marshal websocket message: %v", err)
		return
	}

	h.broadcast <- &BroadcastMessage{
		ProductionID: productionID,
		Message:      data,
	}
}

// HandleConnection handles a WebSocket connection
func (h *Hub) HandleConnection(c *websocket.Conn, productionID string) {
	client := &Client{
		ProductionID: productionID,
		Conn:         c,
		Send:         make(chan []byte, 256),
	}

	h.Register(client)
	defer h.Unregister(client)

	// Start writer goroutine
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case message, ok := <-client.Send:
				if !ok {
					c.WriteMessage(websocket.CloseMessage, []byte{})
					return
				}
				if err := c.WriteMessage(websocket.TextMessage, message); err != nil {
					return
				}

			case <-ticker.C:
				// Send ping for keep-alive
				if err := c.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	// Reader loop
	for {
		_, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		// Handle client messages (ping/pong)
		var msg model.WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}

		if msg.Type == model.WSMessageTypePing {
			pong := model.WSMessage{Type: model.WSMessageTypePong}
			data, _ := json.Marshal(pong)
			client.Send <- data
		}
	}
}
