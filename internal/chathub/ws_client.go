package chathub

import (
	"encoding/json"
	"log"
	"time"

	"pairgogo/backend/internal/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// WebSocketClient implements chathub.Client over a gorilla/websocket
// connection. Inbound frames are relayed verbatim to the match's channel as
// client events; persistence only ever happens through the REST send path.
type WebSocketClient struct {
	ConnID  string
	UserID  string
	MatchID uint
	Conn    *websocket.Conn
	Hub     *Hub
	Send    chan models.Event
}

// NewWebSocketClient wraps an upgraded connection. userID may be empty when
// the client connected without identifying itself.
func NewWebSocketClient(hub *Hub, conn *websocket.Conn, matchID uint, userID string) *WebSocketClient {
	return &WebSocketClient{
		ConnID:  uuid.New().String(),
		UserID:  userID,
		MatchID: matchID,
		Conn:    conn,
		Hub:     hub,
		Send:    make(chan models.Event, 256),
	}
}

func (c *WebSocketClient) GetConnID() string                   { return c.ConnID }
func (c *WebSocketClient) GetUserID() string                   { return c.UserID }
func (c *WebSocketClient) GetMatchID() uint                    { return c.MatchID }
func (c *WebSocketClient) GetSendChannel() chan<- models.Event { return c.Send }

// Run starts the read and write pumps.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close closes the Send channel, which stops the write pump. The read pump
// stops on its own once the connection is closed.
func (c *WebSocketClient) Close() {
	close(c.Send)
}

func (c *WebSocketClient) readPump() {
	defer func() {
		select {
		case c.Hub.UnregisterCh <- c:
		case <-c.Hub.done:
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading from client %s: %v", c.ConnID, err)
			}
			break
		}

		if !json.Valid(raw) {
			log.Printf("Invalid JSON from client %s, skipping", c.ConnID)
			continue
		}

		// Opaque passthrough: the payload is relayed as-is, tagged as a
		// transient client event rather than a persisted message.
		c.Hub.BroadcastToMatch(c.MatchID, models.NewClientEvent(raw))
	}
}

func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed by the hub.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(event)
			if err != nil {
				log.Printf("Error encoding event for client %s: %v", c.ConnID, err)
				continue
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
