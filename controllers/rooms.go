package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kutsarap/bingo-rooms/game"
)

// RoomSummary is the REST view of a room.
type RoomSummary struct {
	Code       string   `json:"code"`
	Host       string   `json:"host"`
	Players    []string `json:"players"`
	Active     bool     `json:"active"`
	DrawnCount int      `json:"drawnCount"`
}

// ListRooms returns summaries of all open rooms.
func ListRooms(reg *game.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		codes := reg.Codes()
		rooms := make([]RoomSummary, 0, len(codes))
		for _, code := range codes {
			if room, ok := reg.Get(code); ok {
				rooms = append(rooms, summarize(room))
			}
		}
		c.JSON(http.StatusOK, gin.H{"rooms": rooms})
	}
}

// RoomStatus returns one room's summary by code.
func RoomStatus(reg *game.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		room, ok := reg.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, summarize(room))
	}
}

func summarize(room *game.Room) RoomSummary {
	return RoomSummary{
		Code:       room.Code,
		Host:       room.HostName(),
		Players:    room.PlayerNames(),
		Active:     room.IsActive(),
		DrawnCount: room.DrawnCount(),
	}
}
