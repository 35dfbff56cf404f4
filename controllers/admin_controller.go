package controllers

import (
	"errors"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/esignstudio/studio_backend/config"
	"github.com/esignstudio/studio_backend/fallback"
	"github.com/esignstudio/studio_backend/middleware"
	"github.com/esignstudio/studio_backend/models"
	"github.com/esignstudio/studio_backend/repositories"
	"github.com/esignstudio/studio_backend/utils"
)

const rememberCookieName = "studio_remember"

// Flash shown when a mutation arrives while the store is down. Degraded
// mode is read-only: nothing is buffered for later replay.
const degradedWriteMessage = "Database unavailable — changes were not saved"

// AdminController handles the dashboard, admin sessions, site settings
// and the logo upload.
type AdminController struct {
	store *repositories.Store
	avail *config.Availability
	rdb   *redis.Client
	log   *zerolog.Logger
}

func NewAdminController(store *repositories.Store, avail *config.Availability, rdb *redis.Client, log *zerolog.Logger) *AdminController {
	return &AdminController{store: store, avail: avail, rdb: rdb, log: log}
}

// ShowLogin renders the admin login page, first trying to restore the
// session from a remember-me token.
func (ac *AdminController) ShowLogin(c echo.Context) error {
	if middleware.AdminID(c) != "" {
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	if cookie, err := c.Cookie(rememberCookieName); err == nil && cookie.Value != "" {
		adminID, lookupErr := utils.LookupAdminToken(c.Request().Context(), ac.rdb, cookie.Value)
		if lookupErr == nil && adminID != "" {
			if signErr := middleware.SignInAdmin(c, adminID); signErr == nil {
				return c.Redirect(http.StatusFound, "/admin/dashboard")
			}
		}
	}

	success, errs := utils.TakeFlashes(c)
	return c.Render(http.StatusOK, "admin_login.html", echo.Map{
		"Success": success,
		"Errors":  errs,
	})
}

// Login establishes the admin session against the store, or against the
// fallback credentials when the store is down.
func (ac *AdminController) Login(c echo.Context) error {
	var req models.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Invalid credentials")
		return c.Redirect(http.StatusFound, "/admin/login")
	}
	if err := c.Validate(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Invalid credentials")
		return c.Redirect(http.StatusFound, "/admin/login")
	}

	if !ac.avail.Connected() {
		return ac.fallbackLogin(c, &req)
	}

	admin, err := ac.store.Admins.ByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUnavailable) {
			// The store dropped mid-request; the fallback path still works.
			return ac.fallbackLogin(c, &req)
		}
		utils.Flash(c, utils.FlashError, "Invalid credentials")
		return c.Redirect(http.StatusFound, "/admin/login")
	}

	if !utils.CheckPasswordHash(req.Password, admin.Password) {
		utils.Flash(c, utils.FlashError, "Invalid credentials")
		return c.Redirect(http.StatusFound, "/admin/login")
	}

	if err := middleware.SignInAdmin(c, admin.ID.Hex()); err != nil {
		ac.log.Error().Err(err).Msg("session save error")
		utils.Flash(c, utils.FlashError, "Login error")
		return c.Redirect(http.StatusFound, "/admin/login")
	}

	if req.RememberMe != "" {
		ac.rememberAdmin(c, admin.ID.Hex(), admin.Email)
	}

	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// fallbackLogin compares against the static credentials and assigns the
// sentinel identity that never resolves to a store record.
func (ac *AdminController) fallbackLogin(c echo.Context, req *models.AdminLoginRequest) error {
	email, password := fallback.AdminCredentials()
	if req.Email != email || req.Password != password {
		utils.Flash(c, utils.FlashError, "Invalid credentials")
		return c.Redirect(http.StatusFound, "/admin/login")
	}

	if err := middleware.SignInAdmin(c, fallback.AdminID); err != nil {
		ac.log.Error().Err(err).Msg("session save error")
		utils.Flash(c, utils.FlashError, "Login error")
		return c.Redirect(http.StatusFound, "/admin/login")
	}
	ac.log.Warn().Msg("admin signed in with fallback credentials")
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (ac *AdminController) rememberAdmin(c echo.Context, adminID, email string) {
	token := utils.NewRememberToken()
	if err := utils.StoreAdminToken(c.Request().Context(), ac.rdb, token, adminID, email); err != nil {
		ac.log.Warn().Err(err).Msg("remember-me disabled")
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     rememberCookieName,
		Value:    token,
		Path:     "/admin",
		HttpOnly: true,
		MaxAge:   int(utils.RememberTTL.Seconds()),
	})
}

// Dashboard renders the aggregate admin view.
func (ac *AdminController) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	settings := fallback.Settings()
	services := fallback.Services()
	slides := fallback.CarouselSlides()
	bookings := []models.BookingDetail{}
	connected := ac.avail.Connected()
	source := fallback.FromFallback

	if connected {
		stored, settingsErr := ac.store.Settings.Get(ctx)
		allServices, servicesErr := ac.store.Services.All(ctx)
		allSlides, slidesErr := ac.store.Carousel.All(ctx)
		allBookings, bookingsErr := ac.store.Bookings.AllDetailed(ctx)

		settingsOK := settingsErr == nil || errors.Is(settingsErr, repositories.ErrNotFound)
		if settingsOK && servicesErr == nil && slidesErr == nil && bookingsErr == nil {
			if settingsErr == nil {
				settings = *stored
			}
			services = allServices
			slides = allSlides
			bookings = allBookings
			source = fallback.FromStore
		} else {
			ac.log.Error().
				AnErr("settings", settingsErr).
				AnErr("services", servicesErr).
				AnErr("carousel", slidesErr).
				AnErr("bookings", bookingsErr).
				Msg("error loading dashboard, serving fallback")
			connected = false
		}
	}

	success, errs := utils.TakeFlashes(c)
	return c.Render(http.StatusOK, "admin_dashboard.html", echo.Map{
		"Settings":       settings,
		"Services":       services,
		"CarouselSlides": slides,
		"Bookings":       bookings,
		"Connected":      connected,
		"Source":         source.String(),
		"Success":        success,
		"Errors":         errs,
	})
}

// UpdateSettings upserts the settings singleton from the form.
func (ac *AdminController) UpdateSettings(c echo.Context) error {
	if !ac.avail.Connected() {
		utils.Flash(c, utils.FlashError, degradedWriteMessage)
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	var req models.SiteSettingsRequest
	if err := c.Bind(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Error updating settings")
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	settings := models.SiteSettings{
		SiteName:     req.SiteName,
		SiteTitle:    req.SiteTitle,
		ProjectTitle: req.ProjectTitle,
		HeroTitle:    req.HeroTitle,
		HeroSubtitle: req.HeroSubtitle,
		Email:        req.Email,
		Phone:        req.Phone,
		AboutText:    req.AboutText,
	}
	if err := ac.store.Settings.Upsert(c.Request().Context(), &settings); err != nil {
		ac.log.Error().Err(err).Msg("error updating settings")
		utils.Flash(c, utils.FlashError, "Error updating settings")
	} else {
		utils.Flash(c, utils.FlashSuccess, "Settings updated successfully!")
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// UploadLogo stores the uploaded logo and points the settings at it.
func (ac *AdminController) UploadLogo(c echo.Context) error {
	if !ac.avail.Connected() {
		utils.Flash(c, utils.FlashError, degradedWriteMessage)
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		utils.Flash(c, utils.FlashError, "No file uploaded")
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	logoPath, err := utils.SaveUpload(fileHeader)
	if err != nil {
		ac.log.Error().Err(err).Msg("error saving logo")
		utils.Flash(c, utils.FlashError, "Error uploading logo")
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	}

	if err := ac.store.Settings.SetLogo(c.Request().Context(), logoPath); err != nil {
		ac.log.Error().Err(err).Msg("error updating logo path")
		utils.Flash(c, utils.FlashError, "Error uploading logo")
	} else {
		utils.Flash(c, utils.FlashSuccess, "Logo uploaded successfully!")
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout destroys the admin session and drops any remember-me token.
func (ac *AdminController) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(rememberCookieName); err == nil && cookie.Value != "" {
		_ = utils.RemoveAdminToken(c.Request().Context(), ac.rdb, cookie.Value)
		c.SetCookie(&http.Cookie{Name: rememberCookieName, Value: "", Path: "/admin", MaxAge: -1})
	}
	if err := middleware.Destroy(c); err != nil {
		ac.log.Error().Err(err).Msg("session destroy error")
	}
	return c.Redirect(http.StatusFound, "/admin/login")
}
