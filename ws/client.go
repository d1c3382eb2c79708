package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"bandhan/middleware"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 4096
)

// Event is the envelope for every frame on the wire, in both directions.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type roomPayload struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
}

type liveMessagePayload struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
}

// Client is one websocket connection owned by an authenticated user.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID string
	send   chan []byte
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades an HTTP request to a websocket connection. The client
// authenticates with a token query parameter; the upgrade is refused without
// a valid one. A fresh connection belongs to no room until it sends a
// joinRoom event.
func Handler(hub *Hub, tokens *middleware.TokenManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "Token required", http.StatusUnauthorized)
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error().Err(err).Msg("websocket upgrade failed")
			return
		}

		client := &Client{
			hub:    hub,
			conn:   conn,
			userID: claims.UserID,
			send:   make(chan []byte, 256),
		}

		client.enqueue("connected", map[string]interface{}{
			"userId": client.userID,
			"time":   time.Now().Unix(),
		})

		go client.writePump()
		go client.readPump()
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Remove(c)
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("user", c.userID).Msg("websocket read error")
			}
			return
		}
		c.handleEvent(raw)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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

// handleEvent dispatches one inbound frame. Unknown event types are ignored.
func (c *Client) handleEvent(raw []byte) {
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		log.Warn().Err(err).Str("user", c.userID).Msg("malformed websocket event")
		return
	}

	switch ev.Type {
	case "joinRoom":
		var p roomPayload
		if err := json.Unmarshal(ev.Payload, &p); err != nil || p.SenderID == "" || p.ReceiverID == "" {
			return
		}
		room := RoomKey(p.SenderID, p.ReceiverID)
		c.hub.Join(room, c)
		c.enqueue("roomJoined", map[string]interface{}{"room": room})

	case "sendMessage":
		var p liveMessagePayload
		if err := json.Unmarshal(ev.Payload, &p); err != nil || p.SenderID == "" || p.ReceiverID == "" {
			return
		}
		room := RoomKey(p.SenderID, p.ReceiverID)
		out, err := json.Marshal(Event{
			Type:    "receiveMessage",
			Payload: mustRaw(map[string]interface{}{"senderId": p.SenderID, "message": p.Message}),
		})
		if err != nil {
			return
		}
		// The sender already rendered the message locally; relay it to
		// the other members of the room only.
		c.hub.EmitToRoom(room, c, out)

	case "ping":
		c.enqueue("pong", map[string]interface{}{"time": time.Now().Unix()})
	}
}

// enqueue marshals an event and queues it on this connection, dropping it if
// the buffer is full.
func (c *Client) enqueue(eventType string, payload map[string]interface{}) {
	out, err := json.Marshal(Event{Type: eventType, Payload: mustRaw(payload)})
	if err != nil {
		return
	}
	select {
	case c.send <- out:
	default:
	}
}

func mustRaw(v interface{}) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}
