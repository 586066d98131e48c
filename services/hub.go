package services

import (
	"encoding/json"
	"sync"

	"github.com/kutsarap/bingo-rooms/game"
	"github.com/kutsarap/bingo-rooms/utils/logger"
)

// Hub is the event gateway. It maps inbound client events onto room
// state machine operations and fans the results back out to the
// members of the affected room.
type Hub struct {
	registry *game.Registry

	mu      sync.RWMutex
	clients map[string]*Client // connection id -> client
}

func NewHub(registry *game.Registry) *Hub {
	return &Hub{
		registry: registry,
		clients:  make(map[string]*Client),
	}
}

// -------------------- Client management --------------------

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	logger.Infof("[Hub] client %s connected (total=%d)", c.id, h.clientCount())
}

// disconnect tears a client out of its room and forgets it. Safe to
// call more than once.
func (h *Hub) disconnect(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c.id]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c.id)
	h.mu.Unlock()

	h.leaveRoom(c)
	c.Close()
	logger.Infof("[Hub] client %s disconnected (total=%d)", c.id, h.clientCount())
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// leaveRoom removes the client from its current room, promoting a new
// host or destroying the room as membership dictates.
func (h *Hub) leaveRoom(c *Client) {
	code := c.roomCode
	if code == "" {
		return
	}
	c.roomCode = ""

	room, ok := h.registry.Get(code)
	if !ok {
		return
	}
	res, ok := room.Leave(c.id)
	if !ok {
		return
	}
	logger.Infof("[Room %s] %s left", code, res.Name)

	if res.Empty {
		h.registry.Remove(code)
		logger.Infof("[Room %s] destroyed, no players left", code)
		return
	}
	if res.NewHost != "" {
		h.sendTo(res.NewHost, outboundEvent{Type: EventHostAssigned})
		logger.Infof("[Room %s] host reassigned", code)
	}
	h.broadcast(room, outboundEvent{Type: EventUpdatePlayers, Players: room.PlayerNames()})
}

// -------------------- Inbound dispatch --------------------

// handle dispatches one inbound frame. Unknown rooms on anything but a
// join are ignored; a stale client must never crash the process.
func (h *Hub) handle(c *Client, raw []byte) {
	var ev inboundEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		logger.Infof("[Client %s] invalid message: %v", c.id, err)
		return
	}

	switch ev.Type {
	case EventCreateRoom:
		h.handleCreateRoom(c, &ev)
	case EventJoinRoom:
		h.handleJoinRoom(c, &ev)
	case EventStartGame:
		h.handleStartGame(c, &ev)
	case EventDrawNumber:
		h.handleDrawNumber(c, &ev)
	case EventResetGame:
		h.handleResetGame(c, &ev)
	case EventBingoCalled:
		h.handleBingoCalled(c, &ev)
	case EventChatMessage:
		h.handleChat(c, &ev)
	default:
		logger.Infof("[Client %s] unknown event: %q", c.id, ev.Type)
	}
}

func (h *Hub) handleCreateRoom(c *Client, ev *inboundEvent) {
	if c.roomCode != "" {
		h.leaveRoom(c)
	}
	room := h.registry.Create(c.id, ev.PlayerName)
	c.roomCode = room.Code

	c.enqueue(encodeEvent(outboundEvent{Type: EventRoomCreated, RoomCode: room.Code}))
	c.enqueue(encodeEvent(outboundEvent{Type: EventHostAssigned}))
	h.broadcast(room, outboundEvent{Type: EventUpdatePlayers, Players: room.PlayerNames()})
	logger.Infof("[Room %s] created by %s", room.Code, ev.PlayerName)
}

func (h *Hub) handleJoinRoom(c *Client, ev *inboundEvent) {
	room, ok := h.registry.Get(ev.roomRef())
	if !ok {
		c.enqueue(encodeEvent(outboundEvent{Type: EventErrorMessage, Message: "room not found"}))
		return
	}
	if c.roomCode != "" {
		h.leaveRoom(c)
	}
	card := room.Join(c.id, ev.PlayerName)
	c.roomCode = room.Code

	c.enqueue(encodeEvent(outboundEvent{Type: EventRoomJoined, RoomCode: room.Code}))
	c.enqueue(encodeEvent(outboundEvent{Type: EventPlayerAssigned, Card: card}))
	h.broadcast(room, outboundEvent{Type: EventUpdatePlayers, Players: room.PlayerNames()})
	logger.Infof("[Room %s] %s joined (players=%d)", room.Code, ev.PlayerName, room.PlayerCount())
}

func (h *Hub) handleStartGame(c *Client, ev *inboundEvent) {
	room, ok := h.registry.Get(ev.roomRef())
	if !ok {
		return
	}
	if !room.Start(c.id) {
		// not the host, silently inert
		return
	}
	h.broadcast(room, outboundEvent{Type: EventGameStarted})
	logger.Infof("[Room %s] game started", room.Code)
}

func (h *Hub) handleDrawNumber(c *Client, ev *inboundEvent) {
	room, ok := h.registry.Get(ev.roomRef())
	if !ok {
		return
	}
	n, drew, allowed := room.Draw(c.id)
	if !allowed {
		return
	}
	if !drew {
		h.broadcast(room, outboundEvent{Type: EventGameMessage, Message: "All numbers have been drawn!"})
		logger.Infof("[Room %s] number pool exhausted", room.Code)
		return
	}
	h.broadcast(room, outboundEvent{Type: EventNumberDrawn, Number: n})
	logger.Infof("[Room %s] number drawn: %d", room.Code, n)
}

func (h *Hub) handleResetGame(c *Client, ev *inboundEvent) {
	room, ok := h.registry.Get(ev.roomRef())
	if !ok {
		return
	}
	if !room.Reset(c.id) {
		return
	}
	h.broadcast(room, outboundEvent{Type: EventGameReset})
	logger.Infof("[Room %s] game reset", room.Code)
}

// handleBingoCalled verifies the claim against the card the server
// assigned to this connection; the card in the payload is accepted on
// the wire but never trusted. Failed claims are silent.
func (h *Hub) handleBingoCalled(c *Client, ev *inboundEvent) {
	room, ok := h.registry.Get(ev.roomRef())
	if !ok {
		return
	}
	winner, won := room.CallBingo(c.id)
	if !won {
		logger.Infof("[Room %s] rejected bingo claim from %s", room.Code, ev.PlayerName)
		return
	}
	h.broadcast(room, outboundEvent{Type: EventBingoWinner, PlayerName: winner})
	logger.Infof("[Room %s] BINGO winner: %s", room.Code, winner)
}

// handleChat relays a chat line to the room. No state effect.
func (h *Hub) handleChat(c *Client, ev *inboundEvent) {
	room, ok := h.registry.Get(ev.roomRef())
	if !ok {
		return
	}
	h.broadcast(room, outboundEvent{Type: EventChatMessage, Sender: ev.Sender, Message: ev.Message})
}

// -------------------- Broadcast --------------------

// broadcast sends one event to every member of the room. Targets are
// snapshotted under the read lock and written to outside it.
func (h *Hub) broadcast(room *game.Room, ev outboundEvent) {
	b := encodeEvent(ev)
	ids := room.PlayerIDs()

	h.mu.RLock()
	targets := make([]*Client, 0, len(ids))
	for _, id := range ids {
		if cl, ok := h.clients[id]; ok {
			targets = append(targets, cl)
		}
	}
	h.mu.RUnlock()

	for _, cl := range targets {
		cl.enqueue(b)
	}
}

func (h *Hub) sendTo(connID string, ev outboundEvent) {
	h.mu.RLock()
	cl, ok := h.clients[connID]
	h.mu.RUnlock()
	if ok {
		cl.enqueue(encodeEvent(ev))
	}
}
