package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kutsarap/bingo-rooms/controllers"
	"github.com/kutsarap/bingo-rooms/game"
	"github.com/kutsarap/bingo-rooms/services"
)

// SetupRoutes mounts the REST surface and the websocket endpoint.
func SetupRoutes(r *gin.Engine, reg *game.Registry, hub *services.Hub) {
	api := r.Group("/api")

	// ----------------------
	// Room routes
	// ----------------------
	api.GET("/rooms", controllers.ListRooms(reg))        // List open rooms
	api.GET("/rooms/:code", controllers.RoomStatus(reg)) // One room's status

	// WebSocket game endpoint
	r.GET("/ws", hub.HandleWebSocket)
}
