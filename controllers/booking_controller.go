package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/esignstudio/studio_backend/config"
	"github.com/esignstudio/studio_backend/middleware"
	"github.com/esignstudio/studio_backend/models"
	"github.com/esignstudio/studio_backend/repositories"
	"github.com/esignstudio/studio_backend/utils"
)

// BookingController handles the public booking flow.
type BookingController struct {
	store *repositories.Store
	avail *config.Availability
	log   *zerolog.Logger
}

func NewBookingController(store *repositories.Store, avail *config.Availability, log *zerolog.Logger) *BookingController {
	return &BookingController{store: store, avail: avail, log: log}
}

// ShowForm renders the booking page for one service. Unknown or
// unreachable services send the visitor back home.
func (bc *BookingController) ShowForm(c echo.Context) error {
	service, err := bc.store.Services.ByID(c.Request().Context(), c.Param("serviceId"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	success, errs := utils.TakeFlashes(c)
	return c.Render(http.StatusOK, "book_service.html", echo.Map{
		"Service": service,
		"Success": success,
		"Errors":  errs,
	})
}

// Create persists a booking for the signed-in user; status defaults to
// pending.
func (bc *BookingController) Create(c echo.Context) error {
	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Booking failed")
		return c.Redirect(http.StatusFound, "/")
	}
	if err := c.Validate(&req); err != nil {
		utils.Flash(c, utils.FlashError, "Booking failed")
		return c.Redirect(http.StatusFound, "/")
	}

	userID, err := primitive.ObjectIDFromHex(middleware.UserID(c))
	if err != nil {
		return c.Redirect(http.StatusFound, "/login")
	}
	serviceID, err := primitive.ObjectIDFromHex(req.ServiceID)
	if err != nil {
		utils.Flash(c, utils.FlashError, "Booking failed")
		return c.Redirect(http.StatusFound, "/")
	}

	bookingDate, err := parseBookingDate(req.BookingDate)
	if err != nil {
		utils.Flash(c, utils.FlashError, "Booking failed")
		return c.Redirect(http.StatusFound, "/")
	}

	booking := models.Booking{
		UserID:      userID,
		ServiceID:   serviceID,
		BookingDate: bookingDate,
		Notes:       req.Notes,
	}
	if err := bc.store.Bookings.Create(c.Request().Context(), &booking); err != nil {
		bc.log.Error().Err(err).Msg("error creating booking")
		utils.Flash(c, utils.FlashError, "Booking failed")
		return c.Redirect(http.StatusFound, "/")
	}

	utils.Flash(c, utils.FlashSuccess, "Service booked successfully!")
	return c.Redirect(http.StatusFound, "/")
}

func parseBookingDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04", time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	_, err := time.Parse("2006-01-02", value)
	return time.Time{}, err
}
