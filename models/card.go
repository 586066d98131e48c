package models

// Classic 75-ball column layout: B 1-15, I 16-30, N 31-45, G 46-60, O 61-75.
const (
	CardSize   = 5
	ColumnSpan = 15
	MaxNumber  = 75

	// FreeSpace marks the permanently covered center cell.
	FreeSpace = 0
	FreeRow   = 2
	FreeCol   = 2
)

// Card is a 5x5 bingo card, row-major: Card[row][col]. The center cell
// holds FreeSpace. A card is immutable once issued to a player.
type Card [CardSize][CardSize]int

// ColumnRange returns the inclusive value range for a column.
func ColumnRange(col int) (lo, hi int) {
	lo = col*ColumnSpan + 1
	return lo, lo + ColumnSpan - 1
}
