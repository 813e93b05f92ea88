package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/opengrants/hackhub-backend/internal/config"
	"github.com/opengrants/hackhub-backend/internal/handlers"
	"github.com/opengrants/hackhub-backend/internal/middleware"
)

// HandlerDependencies carries the handlers wired in main
type HandlerDependencies struct {
	AuthHandler      *handlers.AuthHandler
	HackathonHandler *handlers.HackathonHandler
	RewardHandler    *handlers.RewardHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		hackathons := protected.Group("/organizations/:orgId/hackathons/:hackathonId")
		{
			hackathons.GET("", deps.HackathonHandler.GetHackathon)
			hackathons.GET("/participants", deps.HackathonHandler.ListParticipants)
			hackathons.GET("/stats", deps.HackathonHandler.GetStats)
			hackathons.GET("/escrow", deps.RewardHandler.GetEscrow)
			hackathons.POST("/rewards/ranks", deps.RewardHandler.AssignRanks)
			hackathons.POST("/rewards/milestones", deps.RewardHandler.CreateWinnerMilestones)
			hackathons.POST("/winners/announce", deps.RewardHandler.AnnounceWinners)
		}
	}

	return router
}
