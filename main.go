package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kutsarap/bingo-rooms/config"
	"github.com/kutsarap/bingo-rooms/game"
	"github.com/kutsarap/bingo-rooms/routes"
	"github.com/kutsarap/bingo-rooms/services"
	"github.com/kutsarap/bingo-rooms/utils/logger"
)

// setupRouter wires middleware, REST routes and the websocket endpoint.
func setupRouter(cfg *config.Config, reg *game.Registry, hub *services.Hub) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, reg, hub)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	return r
}

func main() {
	cfg := config.Load()

	// Room registry is created here and injected; rooms live and die
	// entirely in memory.
	registry := game.NewRegistry()
	hub := services.NewHub(registry)

	router := setupRouter(cfg, registry, hub)

	logger.Infof("🎱 Bingo rooms server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
