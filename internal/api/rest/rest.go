package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/banka-network/banka-backend/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	router.GET("/", handler.Root)

	api := router.Group("/api")
	{
		// Health check (no auth)
		api.GET("/health", handler.HealthCheck)

		// Authentication
		api.POST("/auth/register", handler.Register)
		api.POST("/auth/login", handler.Login)
		api.GET("/profile", middleware.Auth(authCfg), handler.GetProfile)

		// Events (public read access, organizer writes)
		api.POST("/events", middleware.Auth(authCfg), handler.CreateEvent)
		api.GET("/events", middleware.Auth(authCfg), handler.ListMyEvents)
		api.GET("/events/public", handler.ListPublicEvents)
		api.GET("/events/:event_id", handler.GetEvent)

		// Tokens
		api.POST("/events/:event_id/tokens", middleware.Auth(authCfg), handler.CreateToken)
		api.GET("/events/:event_id/tokens", handler.ListEventTokens)
		api.GET("/tokens/:token_id", handler.GetToken)
		api.POST("/tokens/:token_id/deactivate", middleware.Auth(authCfg), handler.DeactivateToken)

		// Users (public profile, self-only operations)
		api.GET("/users/:user_id", handler.GetUser)
		self := api.Group("/users/:user_id", middleware.Auth(authCfg), middleware.RequireSelf())
		{
			self.POST("/purchase", handler.Purchase)
			self.POST("/transfer", handler.Transfer)
			self.GET("/transactions", handler.GetTransactions)
		}

		// Vendor QR payload (public)
		api.GET("/generate-qr/:vendor_address", handler.GenerateQR)
	}
}
