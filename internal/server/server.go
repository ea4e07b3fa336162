// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"platefinder/internal/config"
	"platefinder/internal/database"
	"platefinder/internal/middleware"
	"platefinder/internal/places"
	"platefinder/internal/repository"
	"platefinder/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config             *config.Config
	db                 *gorm.DB
	promMiddleware     *fiberprometheus.FiberPrometheus
	profileRepo        repository.ProfileRepository
	reviewRepo         repository.ReviewRepository
	reservationRepo    repository.ReservationRepository
	favoriteRepo       repository.FavoriteRepository
	placesClient       *places.Client
	profileService     *service.ProfileService
	reviewService      *service.ReviewService
	reservationService *service.ReservationService
	favoriteService    *service.FavoriteService
	imageService       *service.ImageService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Schema bootstrap must finish before the first request that touches the
	// additive profile columns; failures are logged and tolerated.
	if err := database.EnsureProfileColumns(db); err != nil {
		middleware.Logger.Error("Schema bootstrap failed", "error", err.Error())
	}

	return NewServerWithDeps(cfg, db)
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Use this in tests or when a bootstrap layer establishes the DB itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) (*Server, error) {
	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	imageService, err := service.NewImageService(profileRepo, cfg.ImageDir)
	if err != nil {
		return nil, err
	}

	// Initialize Prometheus metrics
	prom := middleware.InitMetrics("platefinder-api")

	server := &Server{
		config:          cfg,
		db:              db,
		promMiddleware:  prom,
		profileRepo:     profileRepo,
		reviewRepo:      reviewRepo,
		reservationRepo: reservationRepo,
		favoriteRepo:    favoriteRepo,
		placesClient:    places.NewClientWithOptions(cfg.PlacesAPIKey, cfg.PlacesBaseURL, nil),
		imageService:    imageService,
	}
	server.profileService = service.NewProfileService(profileRepo)
	server.reviewService = service.NewReviewService(reviewRepo)
	server.reservationService = service.NewReservationService(reservationRepo)
	server.favoriteService = service.NewFavoriteService(favoriteRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS also answers the OPTIONS preflight for /nearby_restaurants.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Liveness string plus health probes
	app.Get("/", s.Home)
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Reviews
	app.Get("/reviews", s.GetReviews)
	app.Post("/reviews", s.CreateReview)

	// Profiles
	app.Post("/profile", s.SaveProfile)
	app.Get("/profile/:user_id", s.GetProfile)

	// Reservations
	app.Post("/reservations", s.CreateReservation)
	app.Get("/reservations/:user_id", s.GetReservations)

	// Places proxy
	app.Post("/nearby_restaurants", s.NearbyRestaurants)
	app.Get("/place_photos", s.GetPlacePhoto)

	// Favorites
	app.Post("/favorites", s.AddFavorite)
	app.Get("/favorites/:user_id", s.GetFavorites)
	app.Delete("/favorites/:user_id/:place_id", s.RemoveFavorite)

	// Profile images
	app.Post("/upload_profile_image", s.UploadProfileImage)
	app.Get("/profile_image/:filename", s.GetProfileImage)
}

// Shutdown releases server-held resources after the HTTP listener stops.
func (s *Server) Shutdown(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Home handles the root liveness string.
func (s *Server) Home(c *fiber.Ctx) error {
	return c.SendString("PlateFinder API is running")
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	status := fiber.StatusOK

	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
		status = fiber.StatusServiceUnavailable
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status":   dbStatus,
		"database": dbStatus,
	})
}
