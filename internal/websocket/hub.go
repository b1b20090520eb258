// Package websocket streams pick events to draft-board viewers.
package websocket

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for now (should be restricted in production)
	},
}

// Client represents one connected draft-board viewer.
type Client struct {
	SessionID string
	Conn      *websocket.Conn
	Send      chan []byte
	Hub       *Hub
}

// Hub maintains active board viewers grouped by draft session and
// fans pick events out to them.
type Hub struct {
	clients        map[*Client]bool
	sessionClients map[string][]*Client
	register       chan *Client
	unregister     chan *Client
	logger         *logrus.Logger
	mutex          sync.RWMutex
}

// NewHub creates a new board-feed hub.
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:        make(map[*Client]bool),
		sessionClients: make(map[string][]*Client),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		logger:         logger,
	}
}

// Run handles client registration and unregistration. Call in its own
// goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.sessionClients[client.SessionID] = append(h.sessionClients[client.SessionID], client)
			h.mutex.Unlock()

			h.logger.WithFields(logrus.Fields{
				"session_id":    client.SessionID,
				"total_clients": h.ConnectionCount(),
			}).Info("Board viewer connected")

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)

				viewers := h.sessionClients[client.SessionID]
				for i, c := range viewers {
					if c == client {
						h.sessionClients[client.SessionID] = append(viewers[:i], viewers[i+1:]...)
						break
					}
				}
				if len(h.sessionClients[client.SessionID]) == 0 {
					delete(h.sessionClients, client.SessionID)
				}
			}
			h.mutex.Unlock()

			h.logger.WithField("session_id", client.SessionID).Info("Board viewer disconnected")
		}
	}
}

// HandleWebSocket upgrades a board-feed connection for one session.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session ID"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Error("Failed to upgrade WebSocket connection")
		return
	}

	client := &Client{
		SessionID: sessionID,
		Conn:      conn,
		Send:      make(chan []byte, 256),
		Hub:       h,
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// BroadcastToSession sends a message to every viewer of one draft.
func (h *Hub) BroadcastToSession(sessionID string, message interface{}) {
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal WebSocket message")
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	viewers := h.sessionClients[sessionID]
	kept := viewers[:0]
	for _, client := range viewers {
		select {
		case client.Send <- data:
			kept = append(kept, client)
		default:
			// Slow viewer: drop it from both maps so later broadcasts
			// never hit its closed channel.
			close(client.Send)
			delete(h.clients, client)
			h.logger.WithField("session_id", sessionID).Warn("Dropped slow board viewer")
		}
	}
	if len(kept) == 0 {
		delete(h.sessionClients, sessionID)
	} else {
		h.sessionClients[sessionID] = kept
	}
}

// ConnectionCount returns the total number of active connections.
func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// readPump drains the connection until the viewer goes away.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		_, _, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.WithError(err).Error("WebSocket error")
			}
			break
		}
	}
}

// writePump forwards hub messages to the connection.
func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			c.Hub.logger.WithError(err).Error("Failed to write WebSocket message")
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
