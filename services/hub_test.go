package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kutsarap/bingo-rooms/game"
	"github.com/kutsarap/bingo-rooms/models"
)

// Test clients have no websocket; the buffered send channel is the
// observable output of the gateway.

func newTestHub() *Hub {
	return NewHub(game.NewRegistry())
}

func addTestClient(h *Hub, id string) *Client {
	c := &Client{id: id, hub: h, send: make(chan []byte, 256)}
	h.register(c)
	return c
}

func send(h *Hub, c *Client, payload map[string]any) {
	b, _ := json.Marshal(payload)
	h.handle(c, b)
}

// nextEvent pops one pending event; handle is synchronous, so every
// expected event is already queued by the time it returns.
func nextEvent(t *testing.T, c *Client) outboundEvent {
	t.Helper()
	select {
	case b := <-c.send:
		var ev outboundEvent
		require.NoError(t, json.Unmarshal(b, &ev))
		return ev
	default:
		t.Fatal("expected a pending event")
		return outboundEvent{}
	}
}

func drain(c *Client) {
	for {
		select {
		case <-c.send:
		default:
			return
		}
	}
}

// createTestRoom drives the createRoom flow and returns the room code.
func createTestRoom(t *testing.T, h *Hub, c *Client, name string) string {
	t.Helper()
	send(h, c, map[string]any{"type": EventCreateRoom, "playerName": name})
	created := nextEvent(t, c)
	require.Equal(t, EventRoomCreated, created.Type)
	require.Len(t, created.RoomCode, 6)
	drain(c)
	return created.RoomCode
}

func TestCreateRoomFlow(t *testing.T) {
	h := newTestHub()
	alice := addTestClient(h, "conn-alice")

	send(h, alice, map[string]any{"type": EventCreateRoom, "playerName": "Alice"})

	created := nextEvent(t, alice)
	assert.Equal(t, EventRoomCreated, created.Type)
	assert.Len(t, created.RoomCode, 6)

	assert.Equal(t, EventHostAssigned, nextEvent(t, alice).Type)

	roster := nextEvent(t, alice)
	assert.Equal(t, EventUpdatePlayers, roster.Type)
	assert.Equal(t, []string{"Alice"}, roster.Players)

	assert.Equal(t, created.RoomCode, alice.roomCode)
}

func TestJoinRoomFlow(t *testing.T) {
	h := newTestHub()
	alice := addTestClient(h, "conn-alice")
	bob := addTestClient(h, "conn-bob")
	code := createTestRoom(t, h, alice, "Alice")

	send(h, bob, map[string]any{"type": EventJoinRoom, "roomCode": code, "playerName": "Bob"})

	joined := nextEvent(t, bob)
	assert.Equal(t, EventRoomJoined, joined.Type)
	assert.Equal(t, code, joined.RoomCode)

	assigned := nextEvent(t, bob)
	assert.Equal(t, EventPlayerAssigned, assigned.Type)
	require.NotNil(t, assigned.Card)
	assert.Equal(t, models.FreeSpace, assigned.Card[models.FreeRow][models.FreeCol])

	roster := nextEvent(t, bob)
	assert.Equal(t, EventUpdatePlayers, roster.Type)
	assert.Equal(t, []string{"Alice", "Bob"}, roster.Players)

	// the existing member sees the refreshed roster too
	roster = nextEvent(t, alice)
	assert.Equal(t, EventUpdatePlayers, roster.Type)
	assert.Equal(t, []string{"Alice", "Bob"}, roster.Players)
}

func TestJoinUnknownRoom(t *testing.T) {
	h := newTestHub()
	bob := addTestClient(h, "conn-bob")

	send(h, bob, map[string]any{"type": EventJoinRoom, "roomCode": "ZZZZZZ", "playerName": "Bob"})

	ev := nextEvent(t, bob)
	assert.Equal(t, EventErrorMessage, ev.Type)
	assert.Equal(t, "room not found", ev.Message)
	assert.Empty(t, bob.roomCode)
}

func TestStartGameHostOnly(t *testing.T) {
	h := newTestHub()
	alice := addTestClient(h, "conn-alice")
	bob := addTestClient(h, "conn-bob")
	code := createTestRoom(t, h, alice, "Alice")
	send(h, bob, map[string]any{"type": EventJoinRoom, "roomCode": code, "playerName": "Bob"})
	drain(alice)
	drain(bob)

	// non-host start is silently inert
	send(h, bob, map[string]any{"type": EventStartGame, "roomCode": code})
	assert.Empty(t, alice.send)
	assert.Empty(t, bob.send)

	send(h, alice, map[string]any{"type": EventStartGame, "roomCode": code})
	assert.Equal(t, EventGameStarted, nextEvent(t, alice).Type)
	assert.Equal(t, EventGameStarted, nextEvent(t, bob).Type)
}

func TestDrawNumberFlow(t *testing.T) {
	h := newTestHub()
	alice := addTestClient(h, "conn-alice")
	bob := addTestClient(h, "conn-bob")
	code := createTestRoom(t, h, alice, "Alice")
	send(h, bob, map[string]any{"type": EventJoinRoom, "roomCode": code, "playerName": "Bob"})
	send(h, alice, map[string]any{"type": EventStartGame, "roomCode": code})
	drain(alice)
	drain(bob)

	// non-host draw is silently inert
	send(h, bob, map[string]any{"type": EventDrawNumber, "roomCode": code})
	assert.Empty(t, alice.send)
	assert.Empty(t, bob.send)

	send(h, alice, map[string]any{"type": EventDrawNumber, "roomCode": code})
	drawn := nextEvent(t, alice)
	assert.Equal(t, EventNumberDrawn, drawn.Type)
	assert.True(t, drawn.Number >= 1 && drawn.Number <= models.MaxNumber)
	assert.Equal(t, drawn, nextEvent(t, bob))
}

func TestDrawExhaustionNotice(t *testing.T) {
	h := newTestHub()
	alice := addTestClient(h, "conn-alice")
	code := createTestRoom(t, h, alice, "Alice")
	send(h, alice, map[string]any{"type": EventStartGame, "roomCode": code})
	drain(alice)

	seen := make(map[int]bool, models.MaxNumber)
	for i := 0; i < models.MaxNumber; i++ {
		send(h, alice, map[string]any{"type": EventDrawNumber, "roomCode": code})
		ev := nextEvent(t, alice)
		require.Equal(t, EventNumberDrawn, ev.Type)
		require.False(t, seen[ev.Number], "number %d drawn twice", ev.Number)
		seen[ev.Number] = true
	}

	send(h, alice, map[string]any{"type": EventDrawNumber, "roomCode": code})
	ev := nextEvent(t, alice)
	assert.Equal(t, EventGameMessage, ev.Type)
	assert.Equal(t, "All numbers have been drawn!", ev.Message)
}

func TestResetGameFlow(t *testing.T) {
	h := newTestHub()
	alice := addTestClient(h, "conn-alice")
	bob := addTestClient(h, "conn-bob")
	code := createTestRoom(t, h, alice, "Alice")
	send(h, bob, map[string]any{"type": EventJoinRoom, "roomCode": code, "playerName": "Bob"})
	send(h, alice, map[string]any{"type": EventStartGame, "roomCode": code})
	drain(alice)
	drain(bob)

	send(h, bob, map[string]any{"type": EventResetGame, "roomCode": code})
	assert.Empty(t, alice.send)

	send(h, alice, map[string]any{"type": EventResetGame, "roomCode": code})
	assert.Equal(t, EventGameReset, nextEvent(t, alice).Type)
	assert.Equal(t, EventGameReset, nextEvent(t, bob).Type)

	room, ok := h.registry.Get(code)
	require.True(t, ok)
	assert.False(t, room.IsActive())
}

func TestBingoCalledFlow(t *testing.T) {
	h := newTestHub()
	alice := addTestClient(h, "conn-alice")
	bob := addTestClient(h, "conn-bob")
	code := createTestRoom(t, h, alice, "Alice")
	send(h, bob, map[string]any{"type": EventJoinRoom, "roomCode": code, "playerName": "Bob"})
	send(h, alice, map[string]any{"type": EventStartGame, "roomCode": code})
	drain(alice)
	drain(bob)

	// the host holds no card, its claim is silently rejected
	send(h, alice, map[string]any{"type": EventBingoCalled, "room": code, "playerName": "Alice"})
	assert.Empty(t, alice.send)

	// a claim before any draw fails: the free space alone never wins
	send(h, bob, map[string]any{"type": EventBingoCalled, "room": code, "playerName": "Bob"})
	assert.Empty(t, bob.send)

	// exhaust the pool so every card wins, then claim
	for i := 0; i < models.MaxNumber; i++ {
		send(h, alice, map[string]any{"type": EventDrawNumber, "roomCode": code})
	}
	drain(alice)
	drain(bob)

	send(h, bob, map[string]any{"type": EventBingoCalled, "room": code, "playerName": "Bob"})
	win := nextEvent(t, alice)
	assert.Equal(t, EventBingoWinner, win.Type)
	assert.Equal(t, "Bob", win.PlayerName)
	assert.Equal(t, win, nextEvent(t, bob))

	room, ok := h.registry.Get(code)
	require.True(t, ok)
	assert.False(t, room.IsActive(), "a declared win ends the game")

	// repeated claims after the game ended stay silent
	send(h, bob, map[string]any{"type": EventBingoCalled, "room": code, "playerName": "Bob"})
	assert.Empty(t, bob.send)
}

func TestChatRelay(t *testing.T) {
	h := newTestHub()
	alice := addTestClient(h, "conn-alice")
	bob := addTestClient(h, "conn-bob")
	code := createTestRoom(t, h, alice, "Alice")
	send(h, bob, map[string]any{"type": EventJoinRoom, "roomCode": code, "playerName": "Bob"})
	drain(alice)
	drain(bob)

	send(h, bob, map[string]any{"type": EventChatMessage, "room": code, "message": "good luck!", "sender": "Bob"})

	for _, c := range []*Client{alice, bob} {
		ev := nextEvent(t, c)
		assert.Equal(t, EventChatMessage, ev.Type)
		assert.Equal(t, "good luck!", ev.Message)
		assert.Equal(t, "Bob", ev.Sender)
	}

	room, ok := h.registry.Get(code)
	require.True(t, ok)
	assert.False(t, room.IsActive(), "chat must not touch game state")
}

func TestDisconnectPromotesEarliestJoiner(t *testing.T) {
	h := newTestHub()
	alice := addTestClient(h, "conn-alice")
	bob := addTestClient(h, "conn-bob")
	carol := addTestClient(h, "conn-carol")
	code := createTestRoom(t, h, alice, "Alice")
	send(h, bob, map[string]any{"type": EventJoinRoom, "roomCode": code, "playerName": "Bob"})
	send(h, carol, map[string]any{"type": EventJoinRoom, "roomCode": code, "playerName": "Carol"})
	drain(alice)
	drain(bob)
	drain(carol)

	h.disconnect(alice)

	assert.Equal(t, EventHostAssigned, nextEvent(t, bob).Type)
	roster := nextEvent(t, bob)
	assert.Equal(t, EventUpdatePlayers, roster.Type)
	assert.Equal(t, []string{"Bob", "Carol"}, roster.Players)

	roster = nextEvent(t, carol)
	assert.Equal(t, EventUpdatePlayers, roster.Type)
	assert.Equal(t, []string{"Bob", "Carol"}, roster.Players)

	room, ok := h.registry.Get(code)
	require.True(t, ok, "room survives while players remain")
	assert.Equal(t, "conn-bob", room.HostID())
}

func TestLastDisconnectDestroysRoom(t *testing.T) {
	h := newTestHub()
	alice := addTestClient(h, "conn-alice")
	code := createTestRoom(t, h, alice, "Alice")

	h.disconnect(alice)

	_, ok := h.registry.Get(code)
	assert.False(t, ok)
	assert.Equal(t, 0, h.registry.Count())
}

func TestStaleRoomReferencesAreInert(t *testing.T) {
	h := newTestHub()
	ghost := addTestClient(h, "conn-ghost")

	for _, typ := range []string{EventStartGame, EventDrawNumber, EventResetGame, EventBingoCalled, EventChatMessage} {
		send(h, ghost, map[string]any{"type": typ, "roomCode": "GONE42"})
		assert.Empty(t, ghost.send, "%s on a dead room must be a no-op", typ)
	}
}

func TestMalformedPayloadIsIgnored(t *testing.T) {
	h := newTestHub()
	c := addTestClient(h, "conn-1")

	h.handle(c, []byte("not json"))
	send(h, c, map[string]any{"type": "teleport"})
	assert.Empty(t, c.send)
}
