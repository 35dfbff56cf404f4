package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsSnapshot(t *testing.T) {
	settings := Settings()
	assert.Equal(t, "ESIGN IMAGE STUDIO", settings.SiteName)
	assert.Equal(t, "ESIGN IMAGE STUDIO - Capturing Life's Moments", settings.SiteTitle)
	assert.Equal(t, "hello@omikozphotography.com", settings.Email)
	assert.Equal(t, "+1 (555) 123-4567", settings.Phone)
}

func TestServicesAreFreshCopies(t *testing.T) {
	services := Services()
	require.Len(t, services, 4)
	assert.Equal(t, "Photography", services[0].Title)
	assert.Equal(t, "📷", services[0].Icon)
	for _, svc := range services {
		assert.True(t, svc.IsActive)
	}

	services[0].Title = "mutated"
	assert.Equal(t, "Photography", Services()[0].Title, "callers must not share a backing slice")
}

func TestCarouselSlidesEmptyButNotNil(t *testing.T) {
	slides := CarouselSlides()
	require.NotNil(t, slides)
	assert.Empty(t, slides)
}

func TestAdminCredentialsFromEnv(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "boss@example.com")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	email, password := AdminCredentials()
	assert.Equal(t, "boss@example.com", email)
	assert.Equal(t, "hunter2", password)
}

func TestAdminCredentialsDefaults(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")
	email, password := AdminCredentials()
	assert.Equal(t, "admin@omikoz.com", email)
	assert.Equal(t, "admin123", password)
}
