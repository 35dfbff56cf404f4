// middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// SessionName is the cookie holding both site identities and flashes.
const SessionName = "studio_session"

const (
	sessionKeyUserID  = "userId"
	sessionKeyAdminID = "adminId"
)

// Sessions returns the cookie-session middleware.
func Sessions(secret string) echo.MiddlewareFunc {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   86400 * 7,
	}
	return session.Middleware(store)
}

// UserID returns the booking-user identity, or "" for anonymous.
func UserID(c echo.Context) string {
	return identity(c, sessionKeyUserID)
}

// AdminID returns the admin identity, or "" when not signed in.
func AdminID(c echo.Context) string {
	return identity(c, sessionKeyAdminID)
}

func identity(c echo.Context, key string) string {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return ""
	}
	id, _ := sess.Values[key].(string)
	return id
}

// SignInUser stores the user identity in the session.
func SignInUser(c echo.Context, id string) error {
	return setIdentity(c, sessionKeyUserID, id)
}

// SignInAdmin stores the admin identity in the session.
func SignInAdmin(c echo.Context, id string) error {
	return setIdentity(c, sessionKeyAdminID, id)
}

func setIdentity(c echo.Context, key, id string) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	sess.Values[key] = id
	return sess.Save(c.Request(), c.Response())
}

// Destroy invalidates the whole session, both identities included.
func Destroy(c echo.Context) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	sess.Options.MaxAge = -1
	sess.Values = map[interface{}]interface{}{}
	return sess.Save(c.Request(), c.Response())
}

// RequireUser gates booking routes; anonymous requests are sent to the
// login page instead of getting an error status.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if UserID(c) == "" {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}

// RequireAdmin gates every admin route except the login pair.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if AdminID(c) == "" {
				return c.Redirect(http.StatusFound, "/admin/login")
			}
			return next(c)
		}
	}
}
