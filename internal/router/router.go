package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/jdelgad07/twitterclone/backend/internal/handlers"
	"github.com/jdelgad07/twitterclone/backend/internal/middleware"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"github.com/jdelgad07/twitterclone/backend/internal/repositories"
	"github.com/jdelgad07/twitterclone/backend/internal/services"
	"github.com/jdelgad07/twitterclone/backend/pkg/storage"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, firebaseAuthClient *auth.Client, uploads *storage.Client) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Follow{},
		&models.Block{},
		&models.Like{},
		&models.Retweet{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	blockRepo := repositories.NewPostgresBlockRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	retweetRepo := repositories.NewPostgresRetweetRepository(db)

	// --- Initialize Services ---
	userService := services.NewUserService(userRepo, followRepo, blockRepo)
	relationshipService := services.NewRelationshipService(userRepo, followRepo, blockRepo)
	engagementService := services.NewEngagementService(userRepo, postRepo, likeRepo, retweetRepo, blockRepo)
	postService := services.NewPostService(userRepo, postRepo)
	timelineService := services.NewTimelineService(userRepo, postRepo, likeRepo, retweetRepo, blockRepo)

	// --- Protected routes (require authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient))
	log.Println("Authentication middleware applied to /api/v1 group.")

	userHandler := handlers.NewUserHandler(userService)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	relationshipHandler := handlers.NewRelationshipHandler(relationshipService)
	relationshipHandler.RegisterRelationshipRoutes(api)
	log.Println("Relationship routes configured.")

	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	engagementHandler := handlers.NewEngagementHandler(engagementService)
	engagementHandler.RegisterEngagementRoutes(api)
	log.Println("Engagement routes configured.")

	timelineHandler := handlers.NewTimelineHandler(timelineService)
	timelineHandler.RegisterTimelineRoutes(api)
	log.Println("Timeline routes configured.")

	if uploads != nil {
		uploadHandler := handlers.NewUploadHandler(uploads)
		uploadHandler.RegisterUploadRoutes(api)
		log.Println("Upload routes configured.")
	} else {
		log.Println("Upload bucket not configured, upload routes disabled.")
	}

	log.Println("All routes configured.")
}
