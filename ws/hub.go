package ws

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Hub tracks which connections belong to which rooms. Room membership is
// transient: it exists only while a connection is open and is dropped
// silently on disconnect.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]bool)}
}

// Join adds a connection to a room. A connection may be in several rooms at
// once; joining a room twice is a no-op.
func (h *Hub) Join(room string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[room]; !ok {
		h.rooms[room] = make(map[*Client]bool)
	}
	h.rooms[room][c] = true

	log.Debug().Str("room", room).Str("user", c.userID).Msg("client joined room")
}

// Remove drops the connection from every room it joined. Called once when a
// connection closes; no counterparty is notified.
func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room, members := range h.rooms {
		if members[c] {
			delete(members, c)
			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}
}

// EmitToRoom delivers the payload to every member of the room except the
// sender. Members with a full send buffer are skipped; an empty or unknown
// room delivers to nobody. Returns the number of connections reached.
// Non-delivery is not an error anywhere on this path.
func (h *Hub) EmitToRoom(room string, sender *Client, payload []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for member := range h.rooms[room] {
		if member == sender {
			continue
		}
		select {
		case member.send <- payload:
			delivered++
		default:
			log.Warn().Str("room", room).Str("user", member.userID).Msg("dropping live message, send buffer full")
		}
	}
	return delivered
}
