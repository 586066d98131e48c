package game

import "github.com/kutsarap/bingo-rooms/models"

// cell is a [row, col] coordinate on the 5x5 grid.
type cell [2]int

// pattern is a set of cells that wins when fully covered.
type pattern []cell

// winPatterns is the fixed catalog: 5 rows, 5 columns, 6 diagonal
// segments, 12 two-by-two boxes, the four corners and 6 flowers.
var winPatterns = buildPatterns()

func buildPatterns() []pattern {
	patterns := make([]pattern, 0, 35)

	for row := 0; row < models.CardSize; row++ {
		line := make(pattern, 0, models.CardSize)
		for col := 0; col < models.CardSize; col++ {
			line = append(line, cell{row, col})
		}
		patterns = append(patterns, line)
	}

	for col := 0; col < models.CardSize; col++ {
		line := make(pattern, 0, models.CardSize)
		for row := 0; row < models.CardSize; row++ {
			line = append(line, cell{row, col})
		}
		patterns = append(patterns, line)
	}

	// Diagonal segments. Not all are full diagonals: two skip the
	// center, four are offset four-cell runs. The ruleset lists these
	// exact six.
	patterns = append(patterns,
		pattern{{0, 4}, {1, 3}, {3, 1}, {4, 0}},
		pattern{{0, 0}, {1, 1}, {3, 3}, {4, 4}},
		pattern{{0, 3}, {1, 2}, {2, 1}, {3, 0}},
		pattern{{1, 4}, {2, 3}, {3, 2}, {4, 1}},
		pattern{{0, 1}, {1, 2}, {2, 3}, {3, 4}},
		pattern{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
	)

	// Two-by-two boxes, anchored at the top-left cell. Twelve specific
	// placements, not all sixteen.
	boxAnchors := []cell{
		{0, 0}, {0, 1}, {0, 2}, {0, 3},
		{1, 0}, {1, 3},
		{2, 0}, {2, 3},
		{3, 0}, {3, 1}, {3, 2}, {3, 3},
	}
	for _, a := range boxAnchors {
		r, c := a[0], a[1]
		patterns = append(patterns, pattern{{r, c}, {r, c + 1}, {r + 1, c}, {r + 1, c + 1}})
	}

	// Four corners.
	patterns = append(patterns, pattern{{0, 0}, {0, 4}, {4, 0}, {4, 4}})

	// Flowers: the four cells at the given radius around a center.
	flowers := []struct{ row, col, radius int }{
		{2, 2, 2},
		{2, 2, 1},
		{1, 1, 1},
		{1, 3, 1},
		{3, 1, 1},
		{3, 3, 1},
	}
	for _, f := range flowers {
		patterns = append(patterns, pattern{
			{f.row - f.radius, f.col},
			{f.row, f.col - f.radius},
			{f.row, f.col + f.radius},
			{f.row + f.radius, f.col},
		})
	}

	return patterns
}

// IsWinningCard reports whether any catalog pattern on the card is
// fully covered by the drawn set. A cell is covered when it holds the
// free-space sentinel or its value has been drawn. Which pattern
// matched is not reported.
func IsWinningCard(card models.Card, drawn map[int]struct{}) bool {
	covered := func(c cell) bool {
		v := card[c[0]][c[1]]
		if v == models.FreeSpace {
			return true
		}
		_, ok := drawn[v]
		return ok
	}

	for _, p := range winPatterns {
		match := true
		for _, c := range p {
			if !covered(c) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
