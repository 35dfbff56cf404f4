package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esignstudio/studio_backend/config"
	"github.com/esignstudio/studio_backend/middleware"
	"github.com/esignstudio/studio_backend/models"
	"github.com/esignstudio/studio_backend/repositories"
	"github.com/esignstudio/studio_backend/utils"
	"github.com/esignstudio/studio_backend/views"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

type testApp struct {
	e     *echo.Echo
	store *repositories.Store
	avail *config.Availability
}

func newTestApp(t *testing.T, connected bool) *testApp {
	t.Helper()
	log := zerolog.Nop()
	avail := config.NewAvailability(&log)
	avail.SetConnected(connected)
	store := repositories.NewMemoryStore()

	e := echo.New()
	renderer, err := views.New()
	require.NoError(t, err)
	e.Renderer = renderer
	e.Validator = &testValidator{validator: validator.New()}
	e.Use(middleware.Sessions("test-secret"))

	SetupRoutes(e, Deps{Store: store, Avail: avail, Redis: nil, Log: &log})
	return &testApp{e: e, store: store, avail: avail}
}

type seedData struct {
	ServiceID     string
	AdminEmail    string
	AdminPassword string
}

// seed puts a known admin, one active and one inactive service, and a
// carousel slide into the store.
func seed(t *testing.T, store *repositories.Store) seedData {
	t.Helper()
	ctx := context.Background()

	hashed, err := utils.HashPassword("admin-secret")
	require.NoError(t, err)
	admin := models.Admin{Email: "owner@studio.test", Password: hashed}
	require.NoError(t, store.Admins.Create(ctx, &admin))

	active := models.Service{Title: "Drone Photography", Description: "Aerial shoots", IsActive: true, Order: 1}
	require.NoError(t, store.Services.Create(ctx, &active))
	inactive := models.Service{Title: "Photo Editing", Description: "Retouching", IsActive: false, Order: 2}
	require.NoError(t, store.Services.Create(ctx, &inactive))

	slide := models.CarouselSlide{Title: "Golden Hour", Subtitle: "Evening sessions", IsActive: true}
	require.NoError(t, store.Carousel.Create(ctx, &slide))

	return seedData{
		ServiceID:     active.ID.Hex(),
		AdminEmail:    admin.Email,
		AdminPassword: "admin-secret",
	}
}

// client carries session cookies across requests like a browser would.
type client struct {
	e       *echo.Echo
	cookies []*http.Cookie
}

func (cl *client) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, cookie := range cl.cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	cl.e.ServeHTTP(rec, req)
	for _, cookie := range rec.Result().Cookies() {
		cl.setCookie(cookie)
	}
	return rec
}

func (cl *client) setCookie(incoming *http.Cookie) {
	for i, existing := range cl.cookies {
		if existing.Name == incoming.Name {
			cl.cookies[i] = incoming
			return
		}
	}
	cl.cookies = append(cl.cookies, incoming)
}

func TestHomeServesFallbackWhenDisconnected(t *testing.T) {
	app := newTestApp(t, false)
	cl := &client{e: app.e}

	rec := cl.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, `data-source="fallback"`)
	assert.Contains(t, body, "ESIGN IMAGE STUDIO")
	assert.Contains(t, body, "Photography")
	assert.Contains(t, body, "Videography")
	assert.Contains(t, body, "Event Coverage")
	assert.Contains(t, body, "Photo Editing")
}

func TestHomeServesStoreContentWhenConnected(t *testing.T) {
	app := newTestApp(t, true)
	seed(t, app.store)
	cl := &client{e: app.e}

	rec := cl.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, `data-source="store"`)
	assert.Contains(t, body, "Drone Photography")
	assert.NotContains(t, body, "Photo Editing", "inactive stored services stay hidden")
}

func TestFlashIsShownOnceThenGone(t *testing.T) {
	app := newTestApp(t, true)
	cl := &client{e: app.e}

	form := url.Values{
		"name":     {"Dana"},
		"email":    {"dana@example.com"},
		"password": {"secret1"},
	}
	rec := cl.do(http.MethodPost, "/register", form)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))

	rec = cl.do(http.MethodGet, "/login", nil)
	assert.Contains(t, rec.Body.String(), "Account created successfully! Please login.")

	rec = cl.do(http.MethodGet, "/login", nil)
	assert.NotContains(t, rec.Body.String(), "Account created successfully! Please login.")
}

func TestRegisterRejectedWhenDegraded(t *testing.T) {
	app := newTestApp(t, false)
	cl := &client{e: app.e}

	form := url.Values{
		"name":     {"Dana"},
		"email":    {"dana@example.com"},
		"password": {"secret1"},
	}
	rec := cl.do(http.MethodPost, "/register", form)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/signup", rec.Header().Get("Location"))

	rec = cl.do(http.MethodGet, "/signup", nil)
	assert.Contains(t, rec.Body.String(), "Registration is temporarily unavailable")
}

func TestBookingFlow(t *testing.T) {
	app := newTestApp(t, true)
	seeded := seed(t, app.store)
	cl := &client{e: app.e}

	// Anonymous visitors never reach the booking form.
	rec := cl.do(http.MethodGet, "/book/"+seeded.ServiceID, nil)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))

	register := url.Values{
		"name":     {"Eli"},
		"email":    {"eli@example.com"},
		"password": {"secret1"},
	}
	rec = cl.do(http.MethodPost, "/register", register)
	require.Equal(t, http.StatusFound, rec.Code)

	login := url.Values{"email": {"eli@example.com"}, "password": {"secret1"}}
	rec = cl.do(http.MethodPost, "/login", login)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	rec = cl.do(http.MethodGet, "/book/"+seeded.ServiceID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Drone Photography")

	book := url.Values{
		"serviceId":   {seeded.ServiceID},
		"bookingDate": {"2026-09-12"},
		"notes":       {"rooftop shoot"},
	}
	rec = cl.do(http.MethodPost, "/book-service", book)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	rec = cl.do(http.MethodGet, "/", nil)
	assert.Contains(t, rec.Body.String(), "Service booked successfully!")

	details, err := app.store.Bookings.AllDetailed(context.Background())
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "pending", string(details[0].Status))
	assert.Equal(t, "Eli", details[0].User.Name)
	assert.Equal(t, "rooftop shoot", details[0].Notes)
}

func TestFallbackAdminLoginAndDegradedDashboard(t *testing.T) {
	app := newTestApp(t, false)
	cl := &client{e: app.e}

	// Wrong password stays out.
	rec := cl.do(http.MethodPost, "/admin/login", url.Values{
		"email":    {"admin@omikoz.com"},
		"password": {"wrong"},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/admin/login", rec.Header().Get("Location"))

	rec = cl.do(http.MethodPost, "/admin/login", url.Values{
		"email":    {"admin@omikoz.com"},
		"password": {"admin123"},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	rec = cl.do(http.MethodGet, "/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-connected="false"`)
	assert.Contains(t, body, "Photography")
}

func TestDegradedAdminMutationRejected(t *testing.T) {
	app := newTestApp(t, false)
	cl := &client{e: app.e}

	rec := cl.do(http.MethodPost, "/admin/login", url.Values{
		"email":    {"admin@omikoz.com"},
		"password": {"admin123"},
	})
	require.Equal(t, http.StatusFound, rec.Code)

	rec = cl.do(http.MethodPost, "/admin/settings", url.Values{"siteName": {"New Name"}})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	rec = cl.do(http.MethodGet, "/admin/dashboard", nil)
	assert.Contains(t, rec.Body.String(), "changes were not saved")
	// And nothing was written.
	_, err := app.store.Settings.Get(context.Background())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestAdminServiceAndCarouselManagement(t *testing.T) {
	app := newTestApp(t, true)
	seeded := seed(t, app.store)
	cl := &client{e: app.e}

	rec := cl.do(http.MethodPost, "/admin/login", url.Values{
		"email":    {seeded.AdminEmail},
		"password": {seeded.AdminPassword},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	rec = cl.do(http.MethodPost, "/admin/services", url.Values{
		"title":       {"Studio Rental"},
		"description": {"Hourly studio hire"},
		"features":    {"Lighting rig, Backdrops"},
		"isActive":    {"true"},
	})
	require.Equal(t, http.StatusFound, rec.Code)

	ctx := context.Background()
	services, err := app.store.Services.Active(ctx)
	require.NoError(t, err)
	var created *string
	for i := range services {
		if services[i].Title == "Studio Rental" {
			id := services[i].ID.Hex()
			created = &id
			assert.Equal(t, "📷", services[i].Icon)
			assert.Equal(t, []string{"Lighting rig", "Backdrops"}, services[i].Features)
		}
	}
	require.NotNil(t, created, "new service is active and listed")

	rec = cl.do(http.MethodPost, "/admin/carousel", url.Values{
		"title":    {"Autumn Minis"},
		"subtitle": {"Book your session"},
	})
	require.Equal(t, http.StatusFound, rec.Code)

	slides, err := app.store.Carousel.Active(ctx)
	require.NoError(t, err)
	found := false
	for _, slide := range slides {
		if slide.Title == "Autumn Minis" {
			found = true
			assert.Equal(t, "/signup", slide.LinkURL)
		}
	}
	assert.True(t, found)

	rec = cl.do(http.MethodPost, "/admin/services/"+*created+"/delete", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	rec = cl.do(http.MethodGet, "/admin/dashboard", nil)
	assert.Contains(t, rec.Body.String(), "Service deleted successfully!")
}

func TestAdminSettingsUpdate(t *testing.T) {
	app := newTestApp(t, true)
	seeded := seed(t, app.store)
	cl := &client{e: app.e}

	rec := cl.do(http.MethodPost, "/admin/login", url.Values{
		"email":    {seeded.AdminEmail},
		"password": {seeded.AdminPassword},
	})
	require.Equal(t, http.StatusFound, rec.Code)

	rec = cl.do(http.MethodPost, "/admin/settings", url.Values{
		"siteName":  {"Northlight Studio"},
		"siteTitle": {"Northlight Studio - Portraits"},
		"email":     {"hi@northlight.example"},
	})
	require.Equal(t, http.StatusFound, rec.Code)

	settings, err := app.store.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Northlight Studio", settings.SiteName)

	rec = cl.do(http.MethodGet, "/", nil)
	assert.Contains(t, rec.Body.String(), "Northlight Studio - Portraits")
}
