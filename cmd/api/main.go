package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventpix/luckydraw-backend/api/routes"
	"github.com/eventpix/luckydraw-backend/internal/config"
	"github.com/eventpix/luckydraw-backend/internal/handlers"
	"github.com/eventpix/luckydraw-backend/internal/repositories"
	mongorepo "github.com/eventpix/luckydraw-backend/internal/repositories/mongodb"
	"github.com/eventpix/luckydraw-backend/internal/rng"
	"github.com/eventpix/luckydraw-backend/internal/services"
	mongodb "github.com/eventpix/luckydraw-backend/pkg/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real deployments rely on the environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(config.GetEnv("CONFIG_PATH", "."))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

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
	var configRepo repositories.DrawConfigRepository = mongorepo.NewDrawConfigRepository(db)
	var entryRepo repositories.EntryRepository = mongorepo.NewEntryRepository(db)
	var winnerRepo repositories.WinnerRepository = mongorepo.NewWinnerRepository(db)
	var photoRepo repositories.PhotoRepository = mongorepo.NewPhotoRepository(db)
	var txnRunner repositories.TransactionRunner = mongorepo.NewTxnRunner(mongoClient.Mongo())

	// Winner selection always runs on the CSPRNG-backed source in production
	randomSource := rng.NewCryptoSource()

	// Services
	drawService := services.NewDrawService(configRepo, entryRepo, winnerRepo, photoRepo, txnRunner, randomSource)
	redrawService := services.NewRedrawService(configRepo, entryRepo, winnerRepo, photoRepo, txnRunner, randomSource)
	entryService := services.NewEntryService(configRepo, entryRepo)
	statsService := services.NewStatsService(configRepo, entryRepo, winnerRepo)

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		EntryHandler: handlers.NewEntryHandler(entryService),
		DrawHandler:  handlers.NewDrawHandler(drawService, redrawService),
		StatsHandler: handlers.NewStatsHandler(statsService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

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
