package websocket

import (
	"sync"

	"github.com/rs/zerolog"
)

// Event names exchanged with clients. The client-to-server events carry a
// room id; the server-to-client events are scoped by the receiver's room.
const (
	EventJoinRoom        = "join-room"
	EventLeaveRoom       = "leave-room"
	EventUpdateSchedule  = "update-schedule"
	EventScheduleUpdated = "schedule-updated"
	EventUpdateCursor    = "update-cursor"
	EventCursorUpdated   = "cursor-updated"
)

// Hub maintains the set of live collaboration rooms and relays schedule and
// cursor events between the members of each room. Rooms are ephemeral: one
// is created on first join and discarded when its last member leaves. The
// hub never stores schedule state and never replays history to late joiners;
// concurrent edits resolve last-broadcast-wins at each receiver.
type Hub struct {
	// Connected clients organized by room id
	rooms map[string]map[*Client]bool

	// Join requests from clients
	join chan *joinRequest

	// Leave requests: the client leaves its room but keeps the connection
	leave chan *Client

	// Unregister requests: the connection is gone
	unregister chan *Client

	// Outbound events from clients, relayed to their room
	broadcast chan *broadcastRequest

	// Mutex for concurrent access to the rooms map
	mu sync.RWMutex

	// Logger for hub operations
	logger zerolog.Logger
}

// joinRequest asks the hub to place a client into a room.
type joinRequest struct {
	client *Client
	roomID string
}

// broadcastRequest is a pre-encoded event destined for every member of a
// room except the sender.
type broadcastRequest struct {
	roomID string
	sender *Client
	data   []byte
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		join:       make(chan *joinRequest),
		leave:      make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *broadcastRequest),
		logger:     logger,
	}
}

// Run starts the hub, handling room membership and broadcasts.
func (h *Hub) Run() {
	for {
		select {
		case req := <-h.join:
			h.joinRoom(req.client, req.roomID)

		case client := <-h.leave:
			h.leaveRoom(client, false)

		case client := <-h.unregister:
			h.leaveRoom(client, true)

		case req := <-h.broadcast:
			h.broadcastToRoom(req)
		}
	}
}

// joinRoom adds a client to a room, creating the room on first join. A
// client already in another room is moved: membership is at most one room
// at a time.
func (h *Hub) joinRoom(client *Client, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client.room != "" && client.room != roomID {
		h.removeFromRoom(client, client.room)
	}

	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[*Client]bool)
	}
	h.rooms[roomID][client] = true
	client.room = roomID

	h.logger.Info().
		Str("roomID", roomID).
		Int("members", len(h.rooms[roomID])).
		Msg("Participant joined room")
}

// leaveRoom removes a client from its room. closeSend is true when the
// underlying connection is gone for good.
func (h *Hub) leaveRoom(client *Client, closeSend bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if roomID := client.room; roomID != "" {
		if members, ok := h.rooms[roomID]; ok && members[client] {
			h.removeFromRoom(client, roomID)
			h.logger.Info().
				Str("roomID", roomID).
				Msg("Participant left room")
		}
		client.room = ""
	}

	if closeSend && !client.closed {
		client.closed = true
		close(client.send)
	}
}

// removeFromRoom deletes the membership entry and garbage-collects the room
// once empty. Caller must hold the lock.
func (h *Hub) removeFromRoom(client *Client, roomID string) {
	delete(h.rooms[roomID], client)
	if len(h.rooms[roomID]) == 0 {
		delete(h.rooms, roomID)
		h.logger.Debug().Str("roomID", roomID).Msg("Room discarded")
	}
}

// broadcastToRoom delivers an event to every member of the room except the
// sender. Delivery is fire-and-forget: members whose send buffer is full
// simply miss this event; schedule and cursor state are re-sent on the next
// change, so no retry is attempted. Senders that are not members of the
// room are ignored.
func (h *Hub) broadcastToRoom(req *broadcastRequest) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members, ok := h.rooms[req.roomID]
	if !ok || !members[req.sender] {
		h.logger.Debug().
			Str("roomID", req.roomID).
			Msg("Broadcast ignored: sender not in room")
		return
	}

	for member := range members {
		if member == req.sender {
			continue
		}
		select {
		case member.send <- req.data:
		default:
			h.logger.Debug().
				Str("roomID", req.roomID).
				Msg("Dropped event for slow room member")
		}
	}
}

// RoomSize returns the number of connected participants in a room.
func (h *Hub) RoomSize(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if members, ok := h.rooms[roomID]; ok {
		return len(members)
	}
	return 0
}
