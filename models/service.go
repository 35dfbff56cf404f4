package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultServiceIcon is applied when a service is created without one.
const DefaultServiceIcon = "📷"

// Service is a bookable studio offering shown on the public site.
type Service struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Icon        string             `json:"icon" bson:"icon"`
	ImagePath   string             `json:"imagePath" bson:"imagePath"`
	Price       string             `json:"price" bson:"price"`
	Features    []string           `json:"features" bson:"features"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	Order       int                `json:"order" bson:"order"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ServiceRequest is the admin create/edit form body. Features arrive as
// one comma-separated field; IsActive as "true"/"false".
type ServiceRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Icon        string `form:"icon"`
	Price       string `form:"price"`
	Features    string `form:"features"`
	Order       int    `form:"order" validate:"gte=0"`
	IsActive    string `form:"isActive"`
}
