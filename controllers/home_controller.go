package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/esignstudio/studio_backend/config"
	"github.com/esignstudio/studio_backend/fallback"
	"github.com/esignstudio/studio_backend/middleware"
	"github.com/esignstudio/studio_backend/repositories"
	"github.com/esignstudio/studio_backend/utils"
)

// HomeController renders the public home page.
type HomeController struct {
	store *repositories.Store
	avail *config.Availability
	log   *zerolog.Logger
}

func NewHomeController(store *repositories.Store, avail *config.Availability, log *zerolog.Logger) *HomeController {
	return &HomeController{store: store, avail: avail, log: log}
}

// Home serves store-backed content when available and the static
// fallback otherwise. Never errors to the browser.
func (hc *HomeController) Home(c echo.Context) error {
	ctx := c.Request().Context()

	settings := fallback.Settings()
	services := fallback.Services()
	slides := fallback.CarouselSlides()
	source := fallback.FromFallback

	if hc.avail.Connected() {
		stored, settingsErr := hc.store.Settings.Get(ctx)
		activeServices, servicesErr := hc.store.Services.Active(ctx)
		activeSlides, slidesErr := hc.store.Carousel.Active(ctx)

		// A missing settings singleton just means defaults; any other
		// failure serves the full fallback page, as the original does.
		settingsOK := settingsErr == nil || errors.Is(settingsErr, repositories.ErrNotFound)
		if settingsOK && servicesErr == nil && slidesErr == nil {
			if settingsErr == nil {
				settings = *stored
			}
			services = activeServices
			slides = activeSlides
			source = fallback.FromStore
		} else {
			hc.log.Error().
				AnErr("settings", settingsErr).
				AnErr("services", servicesErr).
				AnErr("carousel", slidesErr).
				Msg("error loading homepage content, serving fallback")
		}
	}

	title := settings.SiteTitle
	if title == "" {
		title = "ESIGN IMAGE STUDIO - Capturing Life's Moments"
	}
	companyName := settings.SiteName
	if companyName == "" {
		companyName = "ESIGN IMAGE STUDIO"
	}

	success, errs := utils.TakeFlashes(c)
	return c.Render(http.StatusOK, "index.html", echo.Map{
		"Title":          title,
		"CompanyName":    companyName,
		"Settings":       settings,
		"Services":       services,
		"CarouselSlides": slides,
		"UserID":         middleware.UserID(c),
		"Source":         source.String(),
		"Success":        success,
		"Errors":         errs,
	})
}
