package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloodlink/bloodlink-backend/api/routes"
	"github.com/bloodlink/bloodlink-backend/internal/config"
	"github.com/bloodlink/bloodlink-backend/internal/handlers"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
	mongorepo "github.com/bloodlink/bloodlink-backend/internal/repositories/mongodb"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/bloodlink/bloodlink-backend/pkg/mongodb"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real deployments set environment variables.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var userRepo repositories.UserRepository = mongorepo.NewUserRepository(db)
	var requestRepo repositories.BloodRequestRepository = mongorepo.NewBloodRequestRepository(db)
	var responseRepo repositories.BloodRequestResponseRepository = mongorepo.NewBloodRequestResponseRepository(db)
	var eventRepo repositories.EventRepository = mongorepo.NewEventRepository(db)
	var registrationRepo repositories.EventRegistrationRepository = mongorepo.NewEventRegistrationRepository(db)
	var inventoryRepo repositories.BloodInventoryRepository = mongorepo.NewBloodInventoryRepository(db)

	// Services. The eligibility service doubles as the donation
	// listener: completed responses and approved registrations start
	// the donor's cooldown.
	eligibilityService := services.NewEligibilityService(userRepo)
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	requestService := services.NewBloodRequestService(requestRepo, responseRepo, eligibilityService, eligibilityService)
	eventService := services.NewEventService(eventRepo, registrationRepo, eligibilityService, eligibilityService)
	inventoryService := services.NewInventoryService(inventoryRepo)
	adminService := services.NewAdminService(userRepo, requestRepo, eventRepo)

	// Handlers
	deps := routes.HandlerDependencies{
		AuthHandler:         handlers.NewAuthHandler(authService),
		UserHandler:         handlers.NewUserHandler(userService),
		BloodRequestHandler: handlers.NewBloodRequestHandler(requestService),
		EventHandler:        handlers.NewEventHandler(eventService),
		InventoryHandler:    handlers.NewInventoryHandler(inventoryService),
		AdminHandler:        handlers.NewAdminHandler(adminService),
	}

	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
