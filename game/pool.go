package game

import (
	"math/rand"

	"github.com/kutsarap/bingo-rooms/models"
)

// Pool is one room's draw-without-replacement state: the 1-75 universe
// partitioned into available and drawn numbers. Not safe for concurrent
// use on its own; the owning Room serializes access.
type Pool struct {
	available []int
	drawn     map[int]struct{}
}

func NewPool() *Pool {
	p := &Pool{}
	p.Reset()
	return p
}

// Reset restores the full universe and clears drawn numbers.
func (p *Pool) Reset() {
	p.available = make([]int, models.MaxNumber)
	for i := range p.available {
		p.available[i] = i + 1
	}
	p.drawn = make(map[int]struct{}, models.MaxNumber)
}

// Draw moves one uniformly chosen number from available to drawn. The
// second return is false once the pool is exhausted; that is the normal
// end-of-game signal, not an error.
func (p *Pool) Draw() (int, bool) {
	if len(p.available) == 0 {
		return 0, false
	}
	i := rand.Intn(len(p.available))
	n := p.available[i]
	p.available[i] = p.available[len(p.available)-1]
	p.available = p.available[:len(p.available)-1]
	p.drawn[n] = struct{}{}
	return n, true
}

// Drawn returns the set of numbers drawn since the last reset.
func (p *Pool) Drawn() map[int]struct{} { return p.drawn }

func (p *Pool) DrawnCount() int { return len(p.drawn) }

func (p *Pool) Remaining() int { return len(p.available) }
