// Package fallback supplies the static in-memory content served while
// the document store is unreachable. It is strictly read-only: admin
// mutations attempted in degraded mode are rejected by the handlers,
// never written here.
package fallback

import (
	"os"

	"github.com/esignstudio/studio_backend/models"
)

// AdminID is the sentinel session identity assigned after a successful
// fallback admin login. It never resolves to a store record.
const AdminID = "fallback-admin"

// Source tags page data with where it came from, so handlers and
// templates branch explicitly instead of duck-typing.
type Source int

const (
	FromStore Source = iota
	FromFallback
)

func (s Source) String() string {
	if s == FromFallback {
		return "fallback"
	}
	return "store"
}

// Settings returns the static site settings snapshot.
func Settings() models.SiteSettings {
	return models.SiteSettings{
		SiteName:  "ESIGN IMAGE STUDIO",
		SiteTitle: "ESIGN IMAGE STUDIO - Capturing Life's Moments",
		LogoPath:  "/images/WhatsApp Image 2025-10-28 at 15.42.31.jpeg",
		Email:     "hello@omikozphotography.com",
		Phone:     "+1 (555) 123-4567",
		AboutText: "With years of experience in capturing precious moments...",
	}
}

// Services returns the four static services. Callers get a fresh slice
// on every call.
func Services() []models.Service {
	return []models.Service{
		{Title: "Photography", Description: "Professional portrait, landscape, and commercial photography", Icon: "📷", IsActive: true},
		{Title: "Videography", Description: "High-quality video production for all occasions", Icon: "🎥", IsActive: true},
		{Title: "Event Coverage", Description: "Complete coverage for weddings, parties, and corporate events", Icon: "🎉", IsActive: true},
		{Title: "Photo Editing", Description: "Professional retouching and enhancement services", Icon: "✨", IsActive: true},
	}
}

// CarouselSlides returns the (empty) carousel shown in degraded mode.
func CarouselSlides() []models.CarouselSlide {
	return []models.CarouselSlide{}
}

// AdminCredentials returns the fallback admin login, sourced from the
// environment with hard defaults.
func AdminCredentials() (email, password string) {
	email = os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@omikoz.com"
	}
	password = os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	return email, password
}
