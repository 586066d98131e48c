package game

import (
	"math/rand"
	"sort"
	"sync"
)

// Room codes skip lookalike characters (0/O, 1/I/L).
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 6
)

// Registry owns the live rooms. It is created once at startup and
// injected where room lookup is needed; there is no package-level room
// state.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// Create allocates a room under a fresh code with the creator seated
// as host and sole player.
func (reg *Registry) Create(connID, name string) *Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	code := reg.newCode()
	room := NewRoom(code)
	room.AddHost(connID, name)
	reg.rooms[code] = room
	return room
}

// newCode retries until the generated code is unused. Caller holds the
// registry lock.
func (reg *Registry) newCode() string {
	for {
		b := make([]byte, codeLength)
		for i := range b {
			b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
		}
		if _, taken := reg.rooms[string(b)]; !taken {
			return string(b)
		}
	}
}

func (reg *Registry) Get(code string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[code]
	return room, ok
}

func (reg *Registry) Remove(code string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.rooms, code)
}

// Codes returns the open room codes, sorted for stable output.
func (reg *Registry) Codes() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	codes := make([]string, 0, len(reg.rooms))
	for code := range reg.rooms {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (reg *Registry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}
