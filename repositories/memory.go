package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/esignstudio/studio_backend/models"
)

// NewMemoryStore wires map-backed repositories with the same semantics
// as the Mongo ones (defaults, timestamps, unique emails, ordering).
// Used by handler tests.
func NewMemoryStore() *Store {
	users := &memoryUsers{byID: map[string]models.User{}}
	services := &memoryServices{byID: map[string]models.Service{}}
	return &Store{
		Admins:   &memoryAdmins{byID: map[string]models.Admin{}},
		Users:    users,
		Services: services,
		Settings: &memorySettings{},
		Carousel: &memoryCarousel{byID: map[string]models.CarouselSlide{}},
		Bookings: &memoryBookings{byID: map[string]models.Booking{}, users: users, services: services},
	}
}

type memoryAdmins struct {
	mu   sync.RWMutex
	byID map[string]models.Admin
}

func (m *memoryAdmins) Create(_ context.Context, admin *models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == admin.Email {
			return ErrDuplicate
		}
	}
	stamp(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	m.byID[admin.ID.Hex()] = *admin
	return nil
}

func (m *memoryAdmins) First(_ context.Context) (*models.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, admin := range m.byID {
		found := admin
		return &found, nil
	}
	return nil, ErrNotFound
}

func (m *memoryAdmins) ByEmail(_ context.Context, email string) (*models.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, admin := range m.byID {
		if admin.Email == email {
			found := admin
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

type memoryUsers struct {
	mu   sync.RWMutex
	byID map[string]models.User
}

func (m *memoryUsers) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == user.Email {
			return ErrDuplicate
		}
	}
	stamp(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	m.byID[user.ID.Hex()] = *user
	return nil
}

func (m *memoryUsers) ByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.byID {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryUsers) ByID(_ context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

type memoryServices struct {
	mu   sync.RWMutex
	byID map[string]models.Service
}

func (m *memoryServices) Create(_ context.Context, service *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	applyServiceDefaults(service)
	stamp(&service.ID, &service.CreatedAt, &service.UpdatedAt)
	m.byID[service.ID.Hex()] = *service
	return nil
}

func (m *memoryServices) All(_ context.Context) ([]models.Service, error) {
	return m.list(func(models.Service) bool { return true }), nil
}

func (m *memoryServices) Active(_ context.Context) ([]models.Service, error) {
	return m.list(func(s models.Service) bool { return s.IsActive }), nil
}

func (m *memoryServices) list(keep func(models.Service) bool) []models.Service {
	m.mu.RLock()
	defer m.mu.RUnlock()
	services := []models.Service{}
	for _, service := range m.byID {
		if keep(service) {
			services = append(services, service)
		}
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Order < services[j].Order })
	return services
}

func (m *memoryServices) ByID(_ context.Context, id string) (*models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	service, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &service, nil
}

func (m *memoryServices) Update(_ context.Context, id string, service *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	existing.Title = service.Title
	existing.Description = service.Description
	existing.Icon = service.Icon
	existing.Price = service.Price
	existing.Features = service.Features
	existing.IsActive = service.IsActive
	existing.Order = service.Order
	existing.UpdatedAt = time.Now()
	m.byID[id] = existing
	return nil
}

func (m *memoryServices) SetImage(_ context.Context, id, imagePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	existing.ImagePath = imagePath
	existing.UpdatedAt = time.Now()
	m.byID[id] = existing
	return nil
}

func (m *memoryServices) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memorySettings struct {
	mu       sync.RWMutex
	settings *models.SiteSettings
}

func (m *memorySettings) Get(_ context.Context) (*models.SiteSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return nil, ErrNotFound
	}
	found := *m.settings
	return &found, nil
}

func (m *memorySettings) Upsert(_ context.Context, settings *models.SiteSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	if m.settings == nil {
		created := *settings
		created.ID = primitive.NewObjectID()
		created.CreatedAt = now
		created.UpdatedAt = now
		m.settings = &created
		return nil
	}
	logo := m.settings.LogoPath
	id := m.settings.ID
	createdAt := m.settings.CreatedAt
	updated := *settings
	updated.ID = id
	updated.LogoPath = logo
	updated.CreatedAt = createdAt
	updated.UpdatedAt = now
	m.settings = &updated
	return nil
}

func (m *memorySettings) SetLogo(_ context.Context, logoPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings == nil {
		m.settings = &models.SiteSettings{
			ID:        primitive.NewObjectID(),
			LogoPath:  logoPath,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		return nil
	}
	m.settings.LogoPath = logoPath
	m.settings.UpdatedAt = time.Now()
	return nil
}

type memoryCarousel struct {
	mu   sync.RWMutex
	byID map[string]models.CarouselSlide
}

func (m *memoryCarousel) Create(_ context.Context, slide *models.CarouselSlide) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	applySlideDefaults(slide)
	stamp(&slide.ID, &slide.CreatedAt, &slide.UpdatedAt)
	m.byID[slide.ID.Hex()] = *slide
	return nil
}

func (m *memoryCarousel) All(_ context.Context) ([]models.CarouselSlide, error) {
	return m.list(func(models.CarouselSlide) bool { return true }), nil
}

func (m *memoryCarousel) Active(_ context.Context) ([]models.CarouselSlide, error) {
	return m.list(func(s models.CarouselSlide) bool { return s.IsActive }), nil
}

func (m *memoryCarousel) list(keep func(models.CarouselSlide) bool) []models.CarouselSlide {
	m.mu.RLock()
	defer m.mu.RUnlock()
	slides := []models.CarouselSlide{}
	for _, slide := range m.byID {
		if keep(slide) {
			slides = append(slides, slide)
		}
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].Order < slides[j].Order })
	return slides
}

func (m *memoryCarousel) Update(_ context.Context, id string, slide *models.CarouselSlide) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	existing.Title = slide.Title
	existing.Subtitle = slide.Subtitle
	existing.LinkURL = slide.LinkURL
	existing.Order = slide.Order
	existing.IsActive = slide.IsActive
	if slide.ImagePath != "" {
		existing.ImagePath = slide.ImagePath
	}
	existing.UpdatedAt = time.Now()
	m.byID[id] = existing
	return nil
}

func (m *memoryCarousel) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memoryBookings struct {
	mu       sync.RWMutex
	byID     map[string]models.Booking
	users    *memoryUsers
	services *memoryServices
}

func (m *memoryBookings) Create(_ context.Context, booking *models.Booking) error {
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	if !models.IsValidBookingStatus(booking.Status) {
		return fmt.Errorf("invalid booking status %q", booking.Status)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stamp(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	m.byID[booking.ID.Hex()] = *booking
	return nil
}

func (m *memoryBookings) AllDetailed(ctx context.Context) ([]models.BookingDetail, error) {
	m.mu.RLock()
	bookings := make([]models.Booking, 0, len(m.byID))
	for _, booking := range m.byID {
		bookings = append(bookings, booking)
	}
	m.mu.RUnlock()

	sort.Slice(bookings, func(i, j int) bool { return bookings[i].CreatedAt.After(bookings[j].CreatedAt) })

	details := []models.BookingDetail{}
	for _, booking := range bookings {
		user, err := m.users.ByID(ctx, booking.UserID.Hex())
		if err != nil {
			continue
		}
		service, err := m.services.ByID(ctx, booking.ServiceID.Hex())
		if err != nil {
			continue
		}
		details = append(details, models.BookingDetail{Booking: booking, User: *user, Service: *service})
	}
	return details, nil
}

func stamp(id *primitive.ObjectID, createdAt, updatedAt *time.Time) {
	if id.IsZero() {
		*id = primitive.NewObjectID()
	}
	now := time.Now()
	*createdAt = now
	*updatedAt = now
}
