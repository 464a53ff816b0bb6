package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/internmatch/backend/config"
	httpDelivery "github.com/internmatch/backend/internal/delivery/http"
	"github.com/internmatch/backend/internal/domain"
	"github.com/internmatch/backend/internal/infrastructure/memstore"
	"github.com/internmatch/backend/internal/infrastructure/postgres"
	"github.com/internmatch/backend/internal/infrastructure/storage"
	"github.com/internmatch/backend/internal/usecase"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting InternMatch Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Store: %s", cfg.Store.Type)
	log.Printf("Uploads: %s", cfg.Uploads.Backend)

	ctx := context.Background()

	// Initialize the persistence store
	var (
		students    domain.StudentRepository
		internships domain.InternshipRepository
		pinger      domain.Pinger
	)
	switch cfg.Store.Type {
	case "postgres":
		store, err := postgres.NewStore(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}
		defer store.Close()
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		students, internships, pinger = store, store, store
	default:
		store := memstore.NewStore()
		students, internships, pinger = store, store, store
		log.Printf("WARNING: using in-memory store - data is lost on restart")
	}

	// Initialize the file store
	var (
		files      domain.FileStore
		uploadsDir string
	)
	switch cfg.Uploads.Backend {
	case "s3":
		s3Store, err := storage.NewS3Store(ctx, storage.S3Config{
			Bucket:        cfg.Uploads.S3Bucket,
			Region:        cfg.Uploads.S3Region,
			Endpoint:      cfg.Uploads.S3Endpoint,
			AccessKey:     cfg.Uploads.S3AccessKey,
			SecretKey:     cfg.Uploads.S3SecretKey,
			PublicBaseURL: cfg.Uploads.PublicBaseURL,
		})
		if err != nil {
			log.Fatalf("Failed to initialize S3 uploads: %v", err)
		}
		files = s3Store
	default:
		localStore, err := storage.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.PublicBaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize local uploads: %v", err)
		}
		files = localStore
		uploadsDir = localStore.Dir()
	}

	// Initialize usecase layer
	tokens := usecase.NewTokenService(usecase.TokenServiceConfig{
		Secret:          cfg.Auth.JWTSecret,
		ExpirationHours: cfg.Auth.JWTExpirationHours,
	})
	authService := usecase.NewAuthService(students, files, tokens, usecase.AuthServiceConfig{
		BcryptCost: cfg.Auth.BcryptCost,
	})
	catalogService := usecase.NewCatalogService(internships)
	matchService := usecase.NewMatchService(students, internships, usecase.MatchServiceConfig{
		DefaultLimit: cfg.Match.DefaultLimit,
	})

	log.Printf("Match default limit: %d", cfg.Match.DefaultLimit)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(authService, catalogService, matchService, pinger)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, tokens, uploadsDir)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
