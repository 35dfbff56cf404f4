package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/esignstudio/studio_backend/controllers"
	"github.com/esignstudio/studio_backend/middleware"
)

// RegisterPublicRoutes sets up the visitor-facing pages and the booking
// flow, which requires a signed-in user.
func RegisterPublicRoutes(e *echo.Echo, deps Deps) {
	homeController := controllers.NewHomeController(deps.Store, deps.Avail, deps.Log)
	authController := controllers.NewAuthController(deps.Store, deps.Avail, deps.Log)
	bookingController := controllers.NewBookingController(deps.Store, deps.Avail, deps.Log)

	e.GET("/", homeController.Home)
	e.GET("/signup", authController.ShowSignup)
	e.POST("/register", authController.Register)
	e.GET("/login", authController.ShowLogin)
	e.POST("/login", authController.Login)
	e.GET("/logout", authController.Logout)

	booking := e.Group("", middleware.RequireUser())
	booking.GET("/book/:serviceId", bookingController.ShowForm)
	booking.POST("/book-service", bookingController.Create)
}
