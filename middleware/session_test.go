package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(Sessions("test-secret"))

	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	e.GET("/book/:serviceId", ok, RequireUser())
	e.POST("/book-service", ok, RequireUser())

	admin := e.Group("/admin", RequireAdmin())
	admin.GET("/dashboard", ok)
	admin.POST("/settings", ok)
	admin.POST("/services", ok)
	admin.POST("/carousel", ok)
	return e
}

func TestRequireUserRedirectsAnonymous(t *testing.T) {
	e := newGuardedEcho(t)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/book/abc", nil),
		httptest.NewRequest(http.MethodPost, "/book-service", nil),
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	}
}

func TestRequireAdminRedirectsAnonymous(t *testing.T) {
	e := newGuardedEcho(t)

	for _, target := range []struct {
		method, path string
	}{
		{http.MethodGet, "/admin/dashboard"},
		{http.MethodPost, "/admin/settings"},
		{http.MethodPost, "/admin/services"},
		{http.MethodPost, "/admin/carousel"},
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(target.method, target.path, nil))
		assert.Equal(t, http.StatusFound, rec.Code, "%s %s", target.method, target.path)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
	}
}

func TestSignInPassesGuard(t *testing.T) {
	e := echo.New()
	e.Use(Sessions("test-secret"))
	e.GET("/signin", func(c echo.Context) error {
		require.NoError(t, SignInUser(c, "64f000000000000000000001"))
		return c.NoContent(http.StatusOK)
	})
	e.GET("/book/:serviceId", func(c echo.Context) error {
		return c.String(http.StatusOK, UserID(c))
	}, RequireUser())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/signin", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/book/abc", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "64f000000000000000000001", rec.Body.String())
}

func TestUserSessionDoesNotGrantAdmin(t *testing.T) {
	e := echo.New()
	e.Use(Sessions("test-secret"))
	e.GET("/signin", func(c echo.Context) error {
		require.NoError(t, SignInUser(c, "64f000000000000000000001"))
		return c.NoContent(http.StatusOK)
	})
	e.GET("/admin/dashboard", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequireAdmin())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/signin", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestDestroyClearsIdentity(t *testing.T) {
	e := echo.New()
	e.Use(Sessions("test-secret"))
	e.GET("/signin", func(c echo.Context) error {
		require.NoError(t, SignInAdmin(c, "64f000000000000000000002"))
		return c.NoContent(http.StatusOK)
	})
	e.GET("/signout", func(c echo.Context) error {
		require.NoError(t, Destroy(c))
		return c.NoContent(http.StatusOK)
	})
	e.GET("/admin/dashboard", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequireAdmin())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/signin", nil))
	signed := rec.Result().Cookies()

	req := httptest.NewRequest(http.MethodGet, "/signout", nil)
	for _, cookie := range signed {
		req.AddCookie(cookie)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	cleared := rec.Result().Cookies()

	req = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, cookie := range cleared {
		req.AddCookie(cookie)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
}
