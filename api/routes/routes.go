package routes

import (
	"github.com/bloodlink/bloodlink-backend/internal/config"
	"github.com/bloodlink/bloodlink-backend/internal/handlers"
	"github.com/bloodlink/bloodlink-backend/internal/middleware"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies collects the handlers wired in main
type HandlerDependencies struct {
	AuthHandler         *handlers.AuthHandler
	UserHandler         *handlers.UserHandler
	BloodRequestHandler *handlers.BloodRequestHandler
	EventHandler        *handlers.EventHandler
	InventoryHandler    *handlers.InventoryHandler
	AdminHandler        *handlers.AdminHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
			auth.GET("/logout", deps.AuthHandler.Logout)
		}
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		users := protected.Group("/users")
		{
			users.GET("", deps.UserHandler.GetAllUsers)
			users.GET("/me", deps.UserHandler.GetMe)
			users.PUT("/me", deps.UserHandler.UpdateProfile)
			users.GET("/:userId", deps.UserHandler.GetUserByID)
			users.DELETE("/:userId", deps.UserHandler.DeleteUser)
		}

		requests := protected.Group("/blood-requests")
		{
			requests.GET("", deps.BloodRequestHandler.GetAllRequests)
			requests.POST("", deps.BloodRequestHandler.CreateRequest)
			requests.GET("/mine", deps.BloodRequestHandler.GetMyRequests)
			requests.GET("/mine/deleted", deps.BloodRequestHandler.GetMyDeletedRequests)
			requests.GET("/my-responses", deps.BloodRequestHandler.GetMyResponses)
			requests.POST("/:requestId/respond", deps.BloodRequestHandler.RespondToRequest)
			requests.GET("/:requestId/responses", deps.BloodRequestHandler.GetRequestResponses)
			requests.PUT("/:requestId/status", deps.BloodRequestHandler.UpdateRequestStatus)
			requests.DELETE("/:requestId", deps.BloodRequestHandler.DeleteRequest)
			requests.PUT("/responses/:responseId/status", deps.BloodRequestHandler.UpdateResponseStatus)
		}

		events := protected.Group("/events")
		{
			events.GET("", deps.EventHandler.GetAllEvents)
			events.POST("", deps.EventHandler.CreateEvent)
			events.GET("/:eventId", deps.EventHandler.GetEventByID)
			events.POST("/:eventId/register", deps.EventHandler.RegisterForEvent)
			events.GET("/:eventId/registration", deps.EventHandler.CheckRegistration)
			events.GET("/:eventId/registrations", deps.EventHandler.GetEventRegistrations)
			events.PUT("/registrations/:registrationId/status", deps.EventHandler.UpdateRegistrationStatus)
		}

		protected.GET("/registrations/mine", deps.EventHandler.GetMyRegistrations)

		inventory := protected.Group("/inventory")
		{
			inventory.GET("", deps.InventoryHandler.GetInventory)
			inventory.PUT("", deps.InventoryHandler.UpdateInventory)
			inventory.GET("/all", deps.InventoryHandler.GetAllInventories)
		}

		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/stats", deps.AdminHandler.GetDashboardStats)
		}
	}

	return router
}
