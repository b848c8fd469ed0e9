package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/notpritamm/emergent-wordle/config"
	"github.com/notpritamm/emergent-wordle/game"
	"github.com/notpritamm/emergent-wordle/leaderboard"
	"github.com/notpritamm/emergent-wordle/logger"
	"github.com/notpritamm/emergent-wordle/user"
)

func createServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if len(allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowCredentials: true,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{
				"Content-Type",
				"Origin",
				"Upgrade",
				"Connection",
				"Sec-WebSocket-Key",
				"Sec-WebSocket-Version",
				"Sec-WebSocket-Extensions",
				"Sec-WebSocket-Protocol",
			},
		}))
	} else {
		r.Use(cors.Default())
	}

	return r
}

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)
	if cfg.GinMode != "release" {
		logger.SetDebug()
	}

	hub := game.NewHub()
	scores := leaderboard.NewService()
	users := user.NewStore()
	registry := game.NewRegistry(hub, scores)

	handler := game.NewHandler(registry, hub, users, scores)

	r := createServer(cfg.AllowedOrigins)
	handler.RegisterRoutes(r)

	logger.Infof("api listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("couldn't start server: %v", err)
	}
}
