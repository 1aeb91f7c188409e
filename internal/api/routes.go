package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/Levilutz/word-hunt/internal/api/handlers"
	"github.com/Levilutz/word-hunt/internal/config"
	"github.com/Levilutz/word-hunt/internal/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *sqlx.DB, rdb *redis.Client, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.Session(cfg))

	router.GET("/health", handlers.HealthCheck)

	// Matchmaking
	router.POST("/match", handlers.Match(db, rdb, cfg))
	router.GET("/match/status", handlers.MatchStatus(db, rdb, cfg))

	// Versus games
	game := router.Group("/game")
	{
		game.GET("/:id", handlers.GetGame(db, cfg))
		game.POST("/:id/start", handlers.StartGame(db, cfg))
		game.POST("/:id/submit-words", handlers.SubmitWords(db, cfg))
		game.POST("/:id/done", handlers.DeclareDone(db, cfg))
	}
}
