package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"github.com/opengrants/hackhub-backend/api/routes"
	"github.com/opengrants/hackhub-backend/internal/cache"
	"github.com/opengrants/hackhub-backend/internal/config"
	"github.com/opengrants/hackhub-backend/internal/handlers"
	mongorepo "github.com/opengrants/hackhub-backend/internal/repositories/mongodb"
	"github.com/opengrants/hackhub-backend/internal/services"
	"github.com/opengrants/hackhub-backend/pkg/escrow"
	"github.com/opengrants/hackhub-backend/pkg/mongodb"
)

func main() {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to MongoDB
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

	// Initialize repositories
	orgRepo := mongorepo.NewOrganizationRepository(db)
	hackathonRepo := mongorepo.NewHackathonRepository(db)
	participantRepo := mongorepo.NewParticipantRepository(db)
	userRepo := mongorepo.NewUserRepository(db)

	// Shared infrastructure
	responseCache := cache.New(clockwork.NewRealClock())
	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	escrowClient := escrow.NewClient(cfg.Escrow.HorizonURL, cfg.Escrow.MockClient)

	// Initialize services
	orgService := services.NewOrganizationService(orgRepo)
	rewardService := services.NewRewardService(orgService, hackathonRepo, participantRepo, mongoClient, escrowClient, responseCache, cacheTTL)
	hackathonService := services.NewHackathonService(hackathonRepo, participantRepo, responseCache, cacheTTL)
	authService := services.NewAuthService(userRepo, cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	hackathonHandler := handlers.NewHackathonHandler(hackathonService)
	rewardHandler := handlers.NewRewardHandler(rewardService)

	handlerDeps := routes.HandlerDependencies{
		AuthHandler:      authHandler,
		HackathonHandler: hackathonHandler,
		RewardHandler:    rewardHandler,
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	// Run server in a goroutine so that it doesn't block
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
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
