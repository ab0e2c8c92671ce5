package main

import (
	"context"
	"log"

	"github.com/jdelgad07/twitterclone/backend/internal/router"
	"github.com/jdelgad07/twitterclone/backend/pkg/config"
	"github.com/jdelgad07/twitterclone/backend/pkg/firebase"
	"github.com/jdelgad07/twitterclone/backend/pkg/secrets"
	"github.com/jdelgad07/twitterclone/backend/pkg/storage"
	"github.com/jdelgad07/twitterclone/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx := context.Background()

	// Resolve store credentials and connect
	dsn, err := secrets.ResolveDSN(ctx)
	if err != nil {
		log.Fatalf("Failed to resolve database credentials: %v", err)
	}
	db, err := config.InitDB(dsn)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Initialize Firebase
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Initialize the upload bucket client when configured
	var uploads *storage.Client
	if cfg.GCSBucket != "" {
		uploads, err = storage.NewClient(ctx, cfg.GCSBucket, cfg.GCSCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize GCS client: %v", err)
		}
		defer uploads.Close()
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db, firebaseApp.AuthClient, uploads)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
