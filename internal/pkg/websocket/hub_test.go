package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub) *Client {
	return &Client{
		hub:    hub,
		send:   make(chan []byte, 8),
		logger: zerolog.Nop(),
	}
}

func drain(c *Client) [][]byte {
	var out [][]byte
	for {
		select {
		case msg := <-c.send:
			out = append(out, msg)
		default:
			return out
		}
	}
}

func TestBroadcastSkipsSenderAndOutsiders(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	sender := newTestClient(hub)
	peer := newTestClient(hub)
	outsider := newTestClient(hub)

	hub.joinRoom(sender, "session-1")
	hub.joinRoom(peer, "session-1")
	hub.joinRoom(outsider, "session-2")

	payload, _ := json.Marshal(Envelope{Event: EventScheduleUpdated, Schedule: json.RawMessage(`{"years":[]}`)})
	hub.broadcastToRoom(&broadcastRequest{roomID: "session-1", sender: sender, data: payload})

	assert.Empty(t, drain(sender), "sender must not receive its own broadcast")
	assert.Empty(t, drain(outsider), "participant who never joined the room must not receive broadcasts")

	received := drain(peer)
	require.Len(t, received, 1)

	var msg Envelope
	require.NoError(t, json.Unmarshal(received[0], &msg))
	assert.Equal(t, EventScheduleUpdated, msg.Event)
}

func TestBroadcastFromNonMemberIgnored(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	member := newTestClient(hub)
	stranger := newTestClient(hub)

	hub.joinRoom(member, "session-1")

	hub.broadcastToRoom(&broadcastRequest{roomID: "session-1", sender: stranger, data: []byte(`{}`)})
	assert.Empty(t, drain(member))
}

func TestLeaveStopsDeliveryAndDiscardsEmptyRoom(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	a := newTestClient(hub)
	b := newTestClient(hub)

	hub.joinRoom(a, "session-1")
	hub.joinRoom(b, "session-1")
	require.Equal(t, 2, hub.RoomSize("session-1"))

	hub.leaveRoom(b, false)
	hub.broadcastToRoom(&broadcastRequest{roomID: "session-1", sender: a, data: []byte(`{}`)})
	assert.Empty(t, drain(b), "leaving a room stops delivery")

	hub.leaveRoom(a, false)
	assert.Equal(t, 0, hub.RoomSize("session-1"))

	// A room with zero members accepts a fresh join as if new.
	c := newTestClient(hub)
	hub.joinRoom(c, "session-1")
	assert.Equal(t, 1, hub.RoomSize("session-1"))
}

func TestJoinSwitchesRoom(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	a := newTestClient(hub)

	hub.joinRoom(a, "session-1")
	hub.joinRoom(a, "session-2")

	assert.Equal(t, 0, hub.RoomSize("session-1"))
	assert.Equal(t, 1, hub.RoomSize("session-2"))
}

func TestSlowMemberDropsEventWithoutBlocking(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	sender := newTestClient(hub)
	slow := &Client{hub: hub, send: make(chan []byte), logger: zerolog.Nop()} // no buffer, nobody reading

	hub.joinRoom(sender, "session-1")
	hub.joinRoom(slow, "session-1")

	done := make(chan struct{})
	go func() {
		hub.broadcastToRoom(&broadcastRequest{roomID: "session-1", sender: sender, data: []byte(`{}`)})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a slow member")
	}
}

func TestUnregisterClosesSendOnce(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	a := newTestClient(hub)

	hub.joinRoom(a, "session-1")
	hub.leaveRoom(a, true)
	require.True(t, a.closed)

	// A second unregister (read and write pumps both exiting) must not panic.
	hub.leaveRoom(a, true)

	_, open := <-a.send
	assert.False(t, open)
}

func TestRunLoopMembership(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	a := newTestClient(hub)
	b := newTestClient(hub)

	hub.join <- &joinRequest{client: a, roomID: "session-9"}
	hub.join <- &joinRequest{client: b, roomID: "session-9"}

	require.Eventually(t, func() bool {
		return hub.RoomSize("session-9") == 2
	}, time.Second, 5*time.Millisecond)

	hub.broadcast <- &broadcastRequest{roomID: "session-9", sender: a, data: []byte(`{}`)}

	require.Eventually(t, func() bool {
		return len(b.send) == 1
	}, time.Second, 5*time.Millisecond)

	hub.leave <- b
	require.Eventually(t, func() bool {
		return hub.RoomSize("session-9") == 1
	}, time.Second, 5*time.Millisecond)
}
