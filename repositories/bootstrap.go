package repositories

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/esignstudio/studio_backend/fallback"
	"github.com/esignstudio/studio_backend/models"
	"github.com/esignstudio/studio_backend/utils"
)

// EnsureDefaults seeds the default admin, settings singleton, services
// and carousel slides into empty collections. Runs once at startup and
// only when the store is reachable; every failure is logged and
// swallowed so a flaky store never blocks boot.
func EnsureDefaults(ctx context.Context, store *Store, log *zerolog.Logger) {
	if _, err := store.Admins.First(ctx); errors.Is(err, ErrNotFound) {
		email, password := fallback.AdminCredentials()
		hashed, hashErr := utils.HashPassword(password)
		if hashErr != nil {
			log.Error().Err(hashErr).Msg("error hashing default admin password")
		} else if createErr := store.Admins.Create(ctx, &models.Admin{Email: email, Password: hashed}); createErr != nil {
			log.Error().Err(createErr).Msg("error creating default admin")
		} else {
			log.Info().Str("email", email).Msg("default admin created")
		}
	}

	if _, err := store.Settings.Get(ctx); errors.Is(err, ErrNotFound) {
		defaults := models.DefaultSiteSettings()
		if upsertErr := store.Settings.Upsert(ctx, &defaults); upsertErr != nil {
			log.Error().Err(upsertErr).Msg("error creating default settings")
		} else {
			log.Info().Msg("default settings created")
		}
	}

	if services, err := store.Services.All(ctx); err == nil && len(services) == 0 {
		for _, service := range fallback.Services() {
			seed := service
			if createErr := store.Services.Create(ctx, &seed); createErr != nil {
				log.Error().Err(createErr).Str("title", seed.Title).Msg("error creating default service")
			}
		}
		log.Info().Msg("default services created")
	}

	if slides, err := store.Carousel.All(ctx); err == nil && len(slides) == 0 {
		defaults := []models.CarouselSlide{
			{
				Title:     "Wedding Photography",
				Subtitle:  "Capturing your special day with elegance",
				ImagePath: "https://www.ktpress.rw/wp-content/uploads/2019/07/Bertrand.jpg",
				LinkURL:   "/signup",
				Order:     1,
				IsActive:  true,
			},
			{
				Title:     "Portrait Sessions",
				Subtitle:  "Professional headshots & portraits",
				ImagePath: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQTV-XMZQ1wSkHHeyBzPsXTMBbs3zrY0oIr3Q&s",
				LinkURL:   "/signup",
				Order:     2,
				IsActive:  true,
			},
			{
				Title:     "Event Coverage",
				Subtitle:  "Corporate & social events",
				ImagePath: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTqV3jXUW7KxcCISRfqZTm7OJYMpYaYJDbkOQ&s",
				LinkURL:   "/signup",
				Order:     3,
				IsActive:  true,
			},
		}
		for i := range defaults {
			if createErr := store.Carousel.Create(ctx, &defaults[i]); createErr != nil {
				log.Error().Err(createErr).Str("title", defaults[i].Title).Msg("error creating default slide")
			}
		}
		log.Info().Msg("default carousel slides created")
	}
}
