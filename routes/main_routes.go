package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/esignstudio/studio_backend/config"
	"github.com/esignstudio/studio_backend/repositories"
)

// Deps carries everything the route handlers need.
type Deps struct {
	Store *repositories.Store
	Avail *config.Availability
	Redis *redis.Client
	Log   *zerolog.Logger
}

// SetupRoutes registers the public site and the admin area.
func SetupRoutes(e *echo.Echo, deps Deps) {
	RegisterPublicRoutes(e, deps)
	RegisterAdminRoutes(e, deps)
}
