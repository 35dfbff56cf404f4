package main

import (
	"context"
	"mime"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/esignstudio/studio_backend/config"
	"github.com/esignstudio/studio_backend/fallback"
	"github.com/esignstudio/studio_backend/logging"
	"github.com/esignstudio/studio_backend/middleware"
	"github.com/esignstudio/studio_backend/repositories"
	"github.com/esignstudio/studio_backend/routes"
	"github.com/esignstudio/studio_backend/views"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	log := logging.New()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env file not found, using environment")
	}

	// Ensure correct MIME type for SVG files
	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	avail := config.NewAvailability(log)
	client := config.ConnectDB(avail, log)
	db := config.GetDatabase(client)
	store := repositories.NewMongoStore(db)

	if avail.Connected() {
		repositories.EnsureDefaults(context.Background(), store, log)
	} else {
		log.Warn().Str("source", fallback.FromFallback.String()).Msg("starting in degraded mode")
	}

	rdb := config.ConnectRedis(log)

	e := echo.New()
	e.HideBanner = true

	renderer, err := views.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}
	e.Renderer = renderer
	e.Validator = &CustomValidator{validator: validator.New()}

	rateLimiter := middleware.NewRateLimiter()

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityConfig{
		AllowInlineJS: true,
	}))

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "studio-dev-secret"
		log.Warn().Msg("SESSION_SECRET not set, using insecure default")
	}
	e.Use(middleware.Sessions(sessionSecret))

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		database := "connected"
		if !avail.Connected() {
			database = "disconnected"
		}
		return c.JSON(http.StatusOK, map[string]string{
			"status":   "healthy",
			"database": database,
		})
	})

	if err := os.MkdirAll("public/uploads", 0o755); err != nil {
		log.Error().Err(err).Msg("failed to create uploads directory")
	}
	e.Static("/uploads", "public/uploads")
	e.Static("/images", "public/images")

	routes.SetupRoutes(e, routes.Deps{
		Store: store,
		Avail: avail,
		Redis: rdb,
		Log:   log,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Info().Str("port", port).Bool("connected", avail.Connected()).Msg("starting server")
	if err := e.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
