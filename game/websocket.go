package game

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/notpritamm/emergent-wordle/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// inboundChat is the only message shape clients push over the socket.
type inboundChat struct {
	Content string `json:"content"`
	Sender  string `json:"sender"`
}

// WebsocketHandler upgrades GET /api/ws/:roomId?username= and runs the
// connection's pumps. Membership is checked up front; the HTTP join
// endpoint is the way in.
func (h *Handler) WebsocketHandler(ctx *gin.Context) {
	roomID := ctx.Param("roomId")
	username := ctx.Query("username")
	if username == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "username-required"})
		return
	}

	detail, err := h.registry.RoomDetail(roomID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "room-not-found"})
		return
	}
	member := false
	for _, m := range detail.Members {
		if m == username {
			member = true
			break
		}
	}
	if !member {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "not-a-member"})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		logger.Errorf("ws upgrade failed for %s: %v", username, err)
		return
	}

	c := h.hub.register(roomID, username, conn)
	go c.writePump()
	go c.readPump(h.registry)
}

// readPump consumes inbound chat frames until the socket dies. Malformed
// frames and rate-limited floods are dropped, never fatal; the sender field
// is overridden with the authenticated connection identity.
func (c *client) readPump(registry *Registry) {
	defer c.hub.unregister(c)

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		if !c.limiter.Allow() {
			continue
		}

		var msg inboundChat
		if err := json.Unmarshal(data, &msg); err != nil || msg.Content == "" {
			logger.Debugf("dropping malformed ws frame from %s", c.username)
			continue
		}

		if err := registry.PostChat(c.roomID, c.username, msg.Content); err != nil {
			logger.Debugf("chat from %s rejected: %v", c.username, err)
		}
	}
}

// writePump drains the outbound buffer and keeps the connection alive with
// pings. Closing the send channel ends the pump and the socket.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
