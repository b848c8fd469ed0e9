package game

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/notpritamm/emergent-wordle/logger"
)

const clientSendBuffer = 256

// Hub owns every live connection, keyed room id then username. A username
// holds at most one connection per room; reconnecting replaces the old one
// (last writer wins). The hub only reads game state, it never mutates it.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[string]*client
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[string]*client)}
}

type client struct {
	hub      *Hub
	roomID   string
	username string
	conn     *websocket.Conn
	send     chan []byte
	limiter  *rate.Limiter
	once     sync.Once
}

// register attaches a connection, displacing any previous connection held
// by the same username in the same room.
func (h *Hub) register(roomID, username string, conn *websocket.Conn) *client {
	c := &client{
		hub:      h,
		roomID:   roomID,
		username: username,
		conn:     conn,
		send:     make(chan []byte, clientSendBuffer),
		limiter:  rate.NewLimiter(1, 5),
	}

	h.mu.Lock()
	peers, ok := h.rooms[roomID]
	if !ok {
		peers = make(map[string]*client)
		h.rooms[roomID] = peers
	}
	if prev, ok := peers[username]; ok {
		prev.shutdown()
	}
	peers[username] = c
	h.mu.Unlock()

	logger.Debugf("ws connected: %s in room %s", username, roomID)
	return c
}

// unregister detaches c unless a newer connection already replaced it.
func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if peers, ok := h.rooms[c.roomID]; ok && peers[c.username] == c {
		delete(peers, c.username)
		if len(peers) == 0 {
			delete(h.rooms, c.roomID)
		}
	}
	h.mu.Unlock()
	c.shutdown()
}

// shutdown closes the outbound channel once; the write pump finishes the
// socket teardown.
func (c *client) shutdown() {
	c.once.Do(func() { close(c.send) })
}

// Broadcast serializes the event once and enqueues it to every connection
// in the room. It is called while the room authority holds the room lock,
// which is what gives all consumers the same event order. A client whose
// buffer is full is dead weight and gets dropped rather than stalling the
// room.
func (h *Hub) Broadcast(roomID string, event any) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Errorf("marshal broadcast for room %s: %v", roomID, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	peers, ok := h.rooms[roomID]
	for username, c := range peers {
		select {
		case c.send <- data:
		default:
			logger.Warningf("dropping slow ws client %s in room %s", username, roomID)
			delete(peers, username)
			c.shutdown()
		}
	}
	if ok && len(peers) == 0 {
		delete(h.rooms, roomID)
	}
}

// DisconnectUser forcibly closes one user's connection for a room; used
// when the host removes a member.
func (h *Hub) DisconnectUser(roomID, username string) {
	h.mu.Lock()
	c, ok := h.rooms[roomID][username]
	if ok {
		delete(h.rooms[roomID], username)
		if len(h.rooms[roomID]) == 0 {
			delete(h.rooms, roomID)
		}
	}
	h.mu.Unlock()
	if ok {
		c.shutdown()
	}
}
