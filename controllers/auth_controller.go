package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/esignstudio/studio_backend/config"
	"github.com/esignstudio/studio_backend/middleware"
	"github.com/esignstudio/studio_backend/models"
	"github.com/esignstudio/studio_backend/repositories"
	"github.com/esignstudio/studio_backend/utils"
)

// AuthController handles public signup, login and logout.
type AuthController struct {
	store *repositories.Store
	avail *config.Availability
	log   *zerolog.Logger
}

func NewAuthController(store *repositories.Store, avail *config.Availability, log *zerolog.Logger) *AuthController {
	return &AuthController{store: store, avail: avail, log: log}
}

// ShowSignup renders the signup page.
func (ac *AuthController) ShowSignup(c echo.Context) error {
	success, errs := utils.TakeFlashes(c)
	return c.Render(http.StatusOK, "signup.html", echo.Map{
		"Title":   "Sign Up - ESIGN IMAGE STUDIO",
		"Success": success,
		"Errors":  errs,
	})
}

// ShowLogin renders the login page.
func (ac *AuthController) ShowLogin(c echo.Context) error {
	success, errs := utils.TakeFlashes(c)
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"Title":   "Login - ESIGN IMAGE STUDIO",
		"Success": success,
		"Errors":  errs,
	})
}

// Register creates a user account from the signup form.
func (ac *AuthController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Registration failed. Please check your details.")
		return c.Redirect(http.StatusFound, "/signup")
	}
	if err := c.Validate(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Registration failed. Please check your details.")
		return c.Redirect(http.StatusFound, "/signup")
	}

	if !ac.avail.Connected() {
		utils.Flash(c, utils.FlashError, "Registration is temporarily unavailable. Please try again later.")
		return c.Redirect(http.StatusFound, "/signup")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		ac.log.Error().Err(err).Msg("error hashing password")
		utils.Flash(c, utils.FlashError, "Registration failed. Please try again.")
		return c.Redirect(http.StatusFound, "/signup")
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Phone:    req.Phone,
		Location: req.Location,
	}
	if err := ac.store.Users.Create(c.Request().Context(), &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.Flash(c, utils.FlashError, "Registration failed. Email might already exist.")
		} else {
			ac.log.Error().Err(err).Msg("error creating user")
			utils.Flash(c, utils.FlashError, "Registration failed. Please try again later.")
		}
		return c.Redirect(http.StatusFound, "/signup")
	}

	utils.Flash(c, utils.FlashSuccess, "Account created successfully! Please login.")
	return c.Redirect(http.StatusFound, "/login")
}

// Login establishes the user session.
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Invalid credentials")
		return c.Redirect(http.StatusFound, "/login")
	}
	if err := c.Validate(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Invalid credentials")
		return c.Redirect(http.StatusFound, "/login")
	}

	user, err := ac.store.Users.ByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Flash(c, utils.FlashError, "Invalid credentials")
		} else {
			ac.log.Error().Err(err).Msg("login error")
			utils.Flash(c, utils.FlashError, "Login error")
		}
		return c.Redirect(http.StatusFound, "/login")
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		utils.Flash(c, utils.FlashError, "Invalid credentials")
		return c.Redirect(http.StatusFound, "/login")
	}

	if err := middleware.SignInUser(c, user.ID.Hex()); err != nil {
		ac.log.Error().Err(err).Msg("session save error")
		utils.Flash(c, utils.FlashError, "Login error")
		return c.Redirect(http.StatusFound, "/login")
	}
	return c.Redirect(http.StatusFound, "/")
}

// Logout destroys the session.
func (ac *AuthController) Logout(c echo.Context) error {
	if err := middleware.Destroy(c); err != nil {
		ac.log.Error().Err(err).Msg("session destroy error")
	}
	return c.Redirect(http.StatusFound, "/")
}
