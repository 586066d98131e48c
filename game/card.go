package game

import (
	"math/rand"

	"github.com/kutsarap/bingo-rooms/models"
)

// GenerateCard produces a fresh card: five unique values per column,
// drawn uniformly from the column's 15-value range, then the center
// cell is overwritten with the free space.
func GenerateCard() models.Card {
	var card models.Card
	for col := 0; col < models.CardSize; col++ {
		values := drawColumn(col)
		for row := 0; row < models.CardSize; row++ {
			card[row][col] = values[row]
		}
	}
	card[models.FreeRow][models.FreeCol] = models.FreeSpace
	return card
}

// drawColumn resamples on duplicates until five unique values are
// collected, keeping draw order.
func drawColumn(col int) []int {
	lo, hi := models.ColumnRange(col)
	span := hi - lo + 1

	values := make([]int, 0, models.CardSize)
	seen := make(map[int]bool, models.CardSize)
	for len(values) < models.CardSize {
		n := rand.Intn(span) + lo
		if seen[n] {
			continue
		}
		seen[n] = true
		values = append(values, n)
	}
	return values
}
