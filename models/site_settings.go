package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteSettings is the singleton holding the public site's identity and
// contact details. Kept singular by upsert convention, not enforced.
type SiteSettings struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SiteName     string             `json:"siteName" bson:"siteName"`
	SiteTitle    string             `json:"siteTitle" bson:"siteTitle"`
	ProjectTitle string             `json:"projectTitle" bson:"projectTitle"`
	HeroTitle    string             `json:"heroTitle" bson:"heroTitle"`
	HeroSubtitle string             `json:"heroSubtitle" bson:"heroSubtitle"`
	LogoPath     string             `json:"logoPath" bson:"logoPath"`
	Email        string             `json:"email" bson:"email"`
	Phone        string             `json:"phone" bson:"phone"`
	AboutText    string             `json:"aboutText" bson:"aboutText"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// DefaultSiteSettings returns the schema defaults used when the
// singleton is first created.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:     "ESIGN IMAGE STUDIO",
		SiteTitle:    "Omikoz Photography - Capturing Life's Moments",
		ProjectTitle: "Professional Photography Services",
		HeroTitle:    "Capturing Life's Beautiful Moments",
		HeroSubtitle: "Professional photography that tells your story",
		LogoPath:     "/images/WhatsApp Image 2025-10-28 at 15.42.31.jpeg",
		Email:        "hello@esignimagestudio.com",
		Phone:        "+250 789 811 738",
		AboutText:    "With years of experience in capturing precious moments...",
	}
}

// SiteSettingsRequest is the admin settings form body.
type SiteSettingsRequest struct {
	SiteName     string `form:"siteName"`
	SiteTitle    string `form:"siteTitle"`
	ProjectTitle string `form:"projectTitle"`
	HeroTitle    string `form:"heroTitle"`
	HeroSubtitle string `form:"heroSubtitle"`
	Email        string `form:"email"`
	Phone        string `form:"phone"`
	AboutText    string `form:"aboutText"`
}
