package game

import (
	"sync"

	"github.com/kutsarap/bingo-rooms/models"
)

// Room owns one game session: membership, host authority, the draw
// pool and the active flag. The reference ruleset relied on
// single-threaded event dispatch; here every mutation goes through the
// room mutex to keep the same guarantees under goroutines.
type Room struct {
	Code string

	mu      sync.RWMutex
	host    string
	players map[string]*models.Player
	order   []string // connection ids in join order
	pool    *Pool
	active  bool
}

func NewRoom(code string) *Room {
	return &Room{
		Code:    code,
		players: make(map[string]*models.Player),
		pool:    NewPool(),
	}
}

// AddHost seats the creating connection as host and sole player. The
// host receives no card.
func (r *Room) AddHost(connID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.host = connID
	r.players[connID] = &models.Player{ID: connID, Name: name}
	r.order = append(r.order, connID)
}

// Join adds a player and deals it a fresh card. Joining an active game
// is allowed; the late joiner has missed earlier draws.
func (r *Room) Join(connID, name string) *models.Card {
	card := GenerateCard()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[connID] = &models.Player{ID: connID, Name: name, Card: &card}
	r.order = append(r.order, connID)
	return &card
}

// Start begins a game: host only. Drawn numbers are cleared and the
// pool reinitialized.
func (r *Room) Start(connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if connID != r.host {
		return false
	}
	r.active = true
	r.pool.Reset()
	return true
}

// Draw pulls the next number: host only, active game only. drew is
// false on an exhausted pool; allowed is false when the guard rejected
// the call, so the two outcomes stay distinguishable.
func (r *Room) Draw(connID string) (n int, drew bool, allowed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if connID != r.host || !r.active {
		return 0, false, false
	}
	n, drew = r.pool.Draw()
	return n, drew, true
}

// Reset returns the room to the lobby: host only. Drawn numbers are
// cleared, the pool reinitialized, cards kept.
func (r *Room) Reset(connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if connID != r.host {
		return false
	}
	r.active = false
	r.pool.Reset()
	return true
}

// CallBingo verifies a win claim against the card the server assigned
// to the claiming connection and the authoritative drawn set. Claims
// outside an active game, or from a connection holding no card, fail.
// A verified claim ends the game and returns the winner's name.
func (r *Room) CallBingo(connID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return "", false
	}
	p, ok := r.players[connID]
	if !ok || p.Card == nil {
		return "", false
	}
	if !IsWinningCard(*p.Card, r.pool.Drawn()) {
		return "", false
	}
	r.active = false
	return p.Name, true
}

// LeaveResult describes the membership change caused by a departure.
type LeaveResult struct {
	Name    string
	WasHost bool
	NewHost string // connection id of the promoted host, if any
	Empty   bool
}

// Leave removes a connection. A departing host hands the role to the
// earliest-joined remaining player. The caller destroys empty rooms
// through the registry.
func (r *Room) Leave(connID string) (LeaveResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[connID]
	if !ok {
		return LeaveResult{}, false
	}
	delete(r.players, connID)
	for i, id := range r.order {
		if id == connID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	res := LeaveResult{Name: p.Name, WasHost: connID == r.host}
	if res.WasHost {
		r.host = ""
		if len(r.order) > 0 {
			r.host = r.order[0]
			res.NewHost = r.host
		}
	}
	res.Empty = len(r.players) == 0
	return res, true
}

// PlayerNames returns display names in join order.
func (r *Room) PlayerNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.order))
	for _, id := range r.order {
		names = append(names, r.players[id].Name)
	}
	return names
}

// PlayerIDs returns connection ids in join order.
func (r *Room) PlayerIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

func (r *Room) HostID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.host
}

// HostName returns the host's display name, or "" for a hostless room.
func (r *Room) HostName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.players[r.host]; ok {
		return p.Name
	}
	return ""
}

func (r *Room) IsActive() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

func (r *Room) PlayerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

func (r *Room) DrawnCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pool.DrawnCount()
}
