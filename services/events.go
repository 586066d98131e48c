package services

import (
	"encoding/json"

	"github.com/kutsarap/bingo-rooms/models"
	"github.com/kutsarap/bingo-rooms/utils/logger"
)

// Wire event names. Inbound names match what the web client emits,
// outbound names match what it listens for.
const (
	// Client -> server
	EventCreateRoom  = "createRoom"
	EventJoinRoom    = "joinRoom"
	EventStartGame   = "startGame"
	EventDrawNumber  = "drawNumber"
	EventResetGame   = "resetGame"
	EventBingoCalled = "bingoCalled"
	EventChatMessage = "chat_message"

	// Server -> client
	EventRoomCreated    = "roomCreated"
	EventRoomJoined     = "roomJoined"
	EventHostAssigned   = "hostAssigned"
	EventPlayerAssigned = "playerAssigned"
	EventUpdatePlayers  = "updatePlayers"
	EventGameStarted    = "gameStarted"
	EventGameReset      = "gameReset"
	EventNumberDrawn    = "numberDrawn"
	EventGameMessage    = "gameMessage"
	EventBingoWinner    = "bingoWinner"
	EventErrorMessage   = "errorMessage"
)

// inboundEvent is the envelope clients send. The room field name
// varies per event (joinRoom says roomCode, bingoCalled and
// chat_message say room); both are accepted everywhere.
type inboundEvent struct {
	Type       string       `json:"type"`
	PlayerName string       `json:"playerName"`
	RoomCode   string       `json:"roomCode"`
	Room       string       `json:"room"`
	Card       *models.Card `json:"card"`
	Message    string       `json:"message"`
	Sender     string       `json:"sender"`
}

// roomRef returns whichever room field the client populated.
func (e *inboundEvent) roomRef() string {
	if e.RoomCode != "" {
		return e.RoomCode
	}
	return e.Room
}

// outboundEvent is the envelope the server sends. Fields a given event
// does not use are omitted from the JSON.
type outboundEvent struct {
	Type       string       `json:"type"`
	RoomCode   string       `json:"roomCode,omitempty"`
	Card       *models.Card `json:"card,omitempty"`
	Players    []string     `json:"players,omitempty"`
	Number     int          `json:"number,omitempty"`
	Message    string       `json:"message,omitempty"`
	PlayerName string       `json:"playerName,omitempty"`
	Sender     string       `json:"sender,omitempty"`
}

func encodeEvent(ev outboundEvent) []byte {
	b, err := json.Marshal(ev)
	if err != nil {
		logger.Errorf("[Events] marshal %s: %v", ev.Type, err)
		return nil
	}
	return b
}
