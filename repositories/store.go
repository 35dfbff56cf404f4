// Package repositories is the typed adapter over the document store.
// Each entity gets a small interface so handlers can be exercised
// against in-memory implementations in tests.
package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/esignstudio/studio_backend/models"
)

const opTimeout = 10 * time.Second

type AdminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
	First(ctx context.Context) (*models.Admin, error)
	ByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByID(ctx context.Context, id string) (*models.User, error)
}

type ServiceStore interface {
	Create(ctx context.Context, service *models.Service) error
	// All returns every service ordered by the ascending sort key.
	All(ctx context.Context) ([]models.Service, error)
	// Active returns publicly visible services, ordered.
	Active(ctx context.Context) ([]models.Service, error)
	ByID(ctx context.Context, id string) (*models.Service, error)
	// Update replaces the editable fields and stamps updatedAt.
	Update(ctx context.Context, id string, service *models.Service) error
	SetImage(ctx context.Context, id, imagePath string) error
	Delete(ctx context.Context, id string) error
}

type SettingsStore interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	// Upsert writes the singleton keyed on the empty filter. A
	// concurrent first write can race into two documents; the original
	// accepts that and so do we.
	Upsert(ctx context.Context, settings *models.SiteSettings) error
	SetLogo(ctx context.Context, logoPath string) error
}

type CarouselStore interface {
	Create(ctx context.Context, slide *models.CarouselSlide) error
	All(ctx context.Context) ([]models.CarouselSlide, error)
	Active(ctx context.Context) ([]models.CarouselSlide, error)
	// Update replaces the editable fields; ImagePath only when non-empty.
	Update(ctx context.Context, id string, slide *models.CarouselSlide) error
	Delete(ctx context.Context, id string) error
}

type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	// AllDetailed lists bookings newest first with user and service
	// references resolved.
	AllDetailed(ctx context.Context) ([]models.BookingDetail, error)
}

// Store bundles the per-entity repositories for wiring.
type Store struct {
	Admins   AdminStore
	Users    UserStore
	Services ServiceStore
	Settings SettingsStore
	Carousel CarouselStore
	Bookings BookingStore
}

// NewMongoStore wires the MongoDB-backed repositories.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Admins:   &mongoAdmins{collection: db.Collection("admins")},
		Users:    &mongoUsers{collection: db.Collection("users")},
		Services: &mongoServices{collection: db.Collection("services")},
		Settings: &mongoSettings{collection: db.Collection("sitesettings")},
		Carousel: &mongoCarousel{collection: db.Collection("carouselslides")},
		Bookings: &mongoBookings{collection: db.Collection("bookings")},
	}
}

// oid parses a hex document id; unknown or malformed ids behave like a
// missing document.
func oid(id string) (primitive.ObjectID, error) {
	parsed, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return parsed, nil
}

func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}
