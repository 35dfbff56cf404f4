package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultSlideLink is applied when a slide is created without a link.
const DefaultSlideLink = "/signup"

// CarouselSlide is a hero carousel entry on the home page.
type CarouselSlide struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Subtitle  string             `json:"subtitle" bson:"subtitle"`
	ImagePath string             `json:"imagePath" bson:"imagePath"`
	LinkURL   string             `json:"linkUrl" bson:"linkUrl"`
	Order     int                `json:"order" bson:"order"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CarouselSlideRequest is the admin create/edit form body.
type CarouselSlideRequest struct {
	Title    string `form:"title" validate:"required"`
	Subtitle string `form:"subtitle" validate:"required"`
	LinkURL  string `form:"linkUrl"`
	Order    int    `form:"order" validate:"gte=0"`
	IsActive string `form:"isActive"`
}
