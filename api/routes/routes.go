package routes

import (
	"github.com/eventpix/luckydraw-backend/internal/config"
	"github.com/eventpix/luckydraw-backend/internal/handlers"
	"github.com/eventpix/luckydraw-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies bundles the handlers the router needs
type HandlerDependencies struct {
	EntryHandler *handlers.EntryHandler
	DrawHandler  *handlers.DrawHandler
	StatsHandler *handlers.StatsHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	api := router.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		// Entry routes
		api.POST("/entries", deps.EntryHandler.CreateEntry)

		// Draw configuration routes
		configs := api.Group("/draw-configs")
		{
			configs.POST("", deps.DrawHandler.CreateConfig)
			configs.GET("/:id", deps.DrawHandler.GetConfig)
			configs.POST("/:id/execute", deps.DrawHandler.ExecuteDraw)
			configs.POST("/:id/cancel", deps.DrawHandler.CancelDraw)
			configs.POST("/:id/redraw", deps.DrawHandler.Redraw)
		}

		// Event-scoped read routes
		events := api.Group("/events")
		{
			events.GET("/:eventId/winners", deps.DrawHandler.GetWinnersByEvent)
			events.GET("/:eventId/stats", deps.StatsHandler.GetEventStats)
			events.GET("/:eventId/participants/:fingerprint", deps.StatsHandler.GetParticipantStats)
		}
	}

	return router
}
