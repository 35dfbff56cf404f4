package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/esignstudio/studio_backend/controllers"
	"github.com/esignstudio/studio_backend/middleware"
)

// RegisterAdminRoutes sets up the admin login pair and the guarded
// dashboard area.
func RegisterAdminRoutes(e *echo.Echo, deps Deps) {
	adminController := controllers.NewAdminController(deps.Store, deps.Avail, deps.Redis, deps.Log)
	serviceController := controllers.NewServiceController(deps.Store, deps.Avail, deps.Log)
	carouselController := controllers.NewCarouselController(deps.Store, deps.Avail, deps.Log)

	e.GET("/admin/login", adminController.ShowLogin)
	e.POST("/admin/login", adminController.Login)

	admin := e.Group("/admin", middleware.RequireAdmin())
	admin.GET("/dashboard", adminController.Dashboard)
	admin.POST("/settings", adminController.UpdateSettings)
	admin.POST("/upload-logo", adminController.UploadLogo)
	admin.GET("/logout", adminController.Logout)

	admin.POST("/services", serviceController.Create)
	admin.POST("/services/:id/edit", serviceController.Update)
	admin.POST("/services/:id/delete", serviceController.Delete)
	admin.POST("/services/:id/upload-image", serviceController.UploadImage)

	admin.POST("/carousel", carouselController.Create)
	admin.POST("/carousel/:id/edit", carouselController.Update)
	admin.POST("/carousel/:id/delete", carouselController.Delete)
}
