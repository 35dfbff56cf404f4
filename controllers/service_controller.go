package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/esignstudio/studio_backend/config"
	"github.com/esignstudio/studio_backend/models"
	"github.com/esignstudio/studio_backend/repositories"
	"github.com/esignstudio/studio_backend/utils"
)

// ServiceController handles admin service management.
type ServiceController struct {
	store *repositories.Store
	avail *config.Availability
	log   *zerolog.Logger
}

func NewServiceController(store *repositories.Store, avail *config.Availability, log *zerolog.Logger) *ServiceController {
	return &ServiceController{store: store, avail: avail, log: log}
}

// Create adds a service from the dashboard form, with an optional image.
func (sc *ServiceController) Create(c echo.Context) error {
	if !sc.avail.Connected() {
		utils.Flash(c, utils.FlashError, degradedWriteMessage)
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	var req models.ServiceRequest
	if err := c.Bind(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Error adding service")
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}
	if err := c.Validate(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Error adding service")
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	service := models.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Price:       req.Price,
		Features:    parseFeatures(req.Features),
		IsActive:    parseBool(req.IsActive, true),
		Order:       req.Order,
	}
	if fileHeader, err := c.FormFile("serviceImage"); err == nil {
		imagePath, saveErr := utils.SaveUpload(fileHeader)
		if saveErr != nil {
			sc.log.Error().Err(saveErr).Msg("error saving service image")
			utils.Flash(c, utils.FlashError, "Error adding service")
			return c.Redirect(http.StatusFound, "/admin/dashboard")
		}
		service.ImagePath = imagePath
	}

	if err := sc.store.Services.Create(c.Request().Context(), &service); err != nil {
		sc.log.Error().Err(err).Msg("error adding service")
		utils.Flash(c, utils.FlashError, "Error adding service")
	} else {
		utils.Flash(c, utils.FlashSuccess, "Service added successfully!")
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Update edits a service in place.
func (sc *ServiceController) Update(c echo.Context) error {
	if !sc.avail.Connected() {
		utils.Flash(c, utils.FlashError, degradedWriteMessage)
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	var req models.ServiceRequest
	if err := c.Bind(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Error updating service")
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}
	if err := c.Validate(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Error updating service")
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	service := models.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Price:       req.Price,
		Features:    parseFeatures(req.Features),
		IsActive:    parseBool(req.IsActive, true),
		Order:       req.Order,
	}
	if err := sc.store.Services.Update(c.Request().Context(), c.Param("id"), &service); err != nil {
		sc.log.Error().Err(err).Msg("error updating service")
		utils.Flash(c, utils.FlashError, "Error updating service")
	} else {
		utils.Flash(c, utils.FlashSuccess, "Service updated successfully!")
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Delete removes a service.
func (sc *ServiceController) Delete(c echo.Context) error {
	if !sc.avail.Connected() {
		utils.Flash(c, utils.FlashError, degradedWriteMessage)
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	if err := sc.store.Services.Delete(c.Request().Context(), c.Param("id")); err != nil {
		sc.log.Error().Err(err).Msg("error deleting service")
		utils.Flash(c, utils.FlashError, "Error deleting service")
	} else {
		utils.Flash(c, utils.FlashSuccess, "Service deleted successfully!")
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// UploadImage replaces one service's image.
func (sc *ServiceController) UploadImage(c echo.Context) error {
	if !sc.avail.Connected() {
		utils.Flash(c, utils.FlashError, degradedWriteMessage)
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	fileHeader, err := c.FormFile("serviceImage")
	if err != nil {
		utils.Flash(c, utils.FlashError, "No file uploaded")
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	imagePath, err := utils.SaveUpload(fileHeader)
	if err != nil {
		sc.log.Error().Err(err).Msg("error saving service image")
		utils.Flash(c, utils.FlashError, "Error uploading service image")
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	if err := sc.store.Services.SetImage(c.Request().Context(), c.Param("id"), imagePath); err != nil {
		sc.log.Error().Err(err).Msg("error updating service image")
		utils.Flash(c, utils.FlashError, "Error uploading service image")
	} else {
		utils.Flash(c, utils.FlashSuccess, "Service image uploaded successfully!")
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// parseFeatures splits the comma-separated form field, dropping blanks.
func parseFeatures(raw string) []string {
	features := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			features = append(features, trimmed)
		}
	}
	return features
}

// parseBool reads a checkbox/hidden form value, keeping def when absent
// or unparseable.
func parseBool(value string, def bool) bool {
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return parsed
}
