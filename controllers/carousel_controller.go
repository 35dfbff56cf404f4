package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/esignstudio/studio_backend/config"
	"github.com/esignstudio/studio_backend/models"
	"github.com/esignstudio/studio_backend/repositories"
	"github.com/esignstudio/studio_backend/utils"
)

// CarouselController handles admin carousel management.
type CarouselController struct {
	store *repositories.Store
	avail *config.Availability
	log   *zerolog.Logger
}

func NewCarouselController(store *repositories.Store, avail *config.Availability, log *zerolog.Logger) *CarouselController {
	return &CarouselController{store: store, avail: avail, log: log}
}

// Create adds a slide from the dashboard form, with an optional image.
func (cc *CarouselController) Create(c echo.Context) error {
	if !cc.avail.Connected() {
		utils.Flash(c, utils.FlashError, degradedWriteMessage)
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	var req models.CarouselSlideRequest
	if err := c.Bind(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Error adding carousel slide")
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}
	if err := c.Validate(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Error adding carousel slide")
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	slide := models.CarouselSlide{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		LinkURL:  req.LinkURL,
		Order:    req.Order,
		IsActive: parseBool(req.IsActive, true),
	}
	if fileHeader, err := c.FormFile("carouselImage"); err == nil {
		imagePath, saveErr := utils.SaveUpload(fileHeader)
		if saveErr != nil {
			cc.log.Error().Err(saveErr).Msg("error saving carousel image")
			utils.Flash(c, utils.FlashError, "Error adding carousel slide")
			return c.Redirect(http.StatusFound, "/admin/dashboard")
		}
		slide.ImagePath = imagePath
	}

	if err := cc.store.Carousel.Create(c.Request().Context(), &slide); err != nil {
		cc.log.Error().Err(err).Msg("error adding carousel slide")
		utils.Flash(c, utils.FlashError, "Error adding carousel slide")
	} else {
		utils.Flash(c, utils.FlashSuccess, "Carousel slide added successfully!")
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Update edits a slide in place. The stored image is kept unless a new
// one is uploaded.
func (cc *CarouselController) Update(c echo.Context) error {
	if !cc.avail.Connected() {
		utils.Flash(c, utils.FlashError, degradedWriteMessage)
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	var req models.CarouselSlideRequest
	if err := c.Bind(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Error updating carousel slide")
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}
	if err := c.Validate(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Error updating carousel slide")
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	slide := models.CarouselSlide{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		LinkURL:  req.LinkURL,
		Order:    req.Order,
		IsActive: parseBool(req.IsActive, true),
	}
	if fileHeader, err := c.FormFile("carouselImage"); err == nil {
		imagePath, saveErr := utils.SaveUpload(fileHeader)
		if saveErr != nil {
			cc.log.Error().Err(saveErr).Msg("error saving carousel image")
			utils.Flash(c, utils.FlashError, "Error updating carousel slide")
			return c.Redirect(http.StatusFound, "/admin/dashboard")
		}
		slide.ImagePath = imagePath
	}

	if err := cc.store.Carousel.Update(c.Request().Context(), c.Param("id"), &slide); err != nil {
		cc.log.Error().Err(err).Msg("error updating carousel slide")
		utils.Flash(c, utils.FlashError, "Error updating carousel slide")
	} else {
		utils.Flash(c, utils.FlashSuccess, "Carousel slide updated successfully!")
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Delete removes a slide.
func (cc *CarouselController) Delete(c echo.Context) error {
	if !cc.avail.Connected() {
		utils.Flash(c, utils.FlashError, degradedWriteMessage)
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	if err := cc.store.Carousel.Delete(c.Request().Context(), c.Param("id")); err != nil {
		cc.log.Error().Err(err).Msg("error deleting carousel slide")
		utils.Flash(c, utils.FlashError, "Error deleting carousel slide")
	} else {
		utils.Flash(c, utils.FlashSuccess, "Carousel slide deleted successfully!")
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}
