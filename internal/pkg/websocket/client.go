package websocket

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Full schedules are re-sent on
	// every change, so the limit is generous.
	maxMessageSize = 256 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for development, in production you should restrict this
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CursorPosition is a presence hint, not authoritative state. Updates may be
// dropped or coalesced under load.
type CursorPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Envelope is the JSON message exchanged over a collaboration connection.
// Schedule payloads are opaque to the broker: clients always re-broadcast
// their full schedule, so receivers apply whole documents, never deltas.
type Envelope struct {
	Event    string          `json:"event"`
	RoomID   string          `json:"roomId,omitempty"`
	Schedule json.RawMessage `json:"schedule,omitempty"`
	Cursor   *CursorPosition `json:"cursor,omitempty"`
}

// Client is a middleman between one websocket connection and the hub.
type Client struct {
	hub *Hub

	// The WebSocket connection
	conn *websocket.Conn

	// Buffered channel of outbound messages
	send chan []byte

	// Room this client currently participates in; owned by the hub
	room string

	// Set once the hub has closed the send channel
	closed bool

	// Logger instance
	logger zerolog.Logger
}

// readPump pumps events from the websocket connection to the hub.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Info().Msg("WebSocket closed normally")
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn().Err(err).Msg("Unexpected WebSocket close")
			} else {
				c.logger.Debug().Err(err).Msg("WebSocket read error")
			}
			break
		}

		var msg Envelope
		if err := json.Unmarshal(message, &msg); err != nil {
			c.logger.Error().
				Err(err).
				Str("message", string(message)).
				Msg("Failed to unmarshal client event")
			continue
		}

		c.handleEvent(&msg)
	}
}

// handleEvent routes one inbound envelope to the hub.
func (c *Client) handleEvent(msg *Envelope) {
	switch msg.Event {
	case EventJoinRoom:
		if msg.RoomID == "" {
			c.logger.Warn().Msg("join-room without room id ignored")
			return
		}
		c.hub.join <- &joinRequest{client: c, roomID: msg.RoomID}

	case EventLeaveRoom:
		c.hub.leave <- c

	case EventUpdateSchedule:
		out, err := json.Marshal(Envelope{Event: EventScheduleUpdated, Schedule: msg.Schedule})
		if err != nil {
			c.logger.Error().Err(err).Msg("Failed to marshal schedule event")
			return
		}
		c.hub.broadcast <- &broadcastRequest{roomID: msg.RoomID, sender: c, data: out}

	case EventUpdateCursor:
		out, err := json.Marshal(Envelope{Event: EventCursorUpdated, Cursor: msg.Cursor})
		if err != nil {
			c.logger.Error().Err(err).Msg("Failed to marshal cursor event")
			return
		}
		c.hub.broadcast <- &broadcastRequest{roomID: msg.RoomID, sender: c, data: out}

	default:
		c.logger.Warn().Str("event", msg.Event).Msg("Unknown event ignored")
	}
}

// writePump pumps events from the hub to the websocket connection.
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
				// The hub closed the channel
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
