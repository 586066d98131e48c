package models

// Player is one connection's membership in a room. The host holds no
// card; it runs the game rather than playing it.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Card *Card  `json:"card,omitempty"`
}
