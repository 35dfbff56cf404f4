// utils/flash.go
package utils

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/esignstudio/studio_backend/middleware"
)

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash queues a one-shot message on the session, shown on the next
// rendered page and then gone.
func Flash(c echo.Context, kind, message string) {
	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return
	}
	sess.AddFlash(message, kind)
	_ = sess.Save(c.Request(), c.Response())
}

// TakeFlashes drains both flash queues. Reading is destructive: a
// second call within the same session returns empty slices.
func TakeFlashes(c echo.Context) (successes, errors []string) {
	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return nil, nil
	}
	successes = toStrings(sess.Flashes(FlashSuccess))
	errors = toStrings(sess.Flashes(FlashError))
	// Save persists the removal; without it the messages would survive.
	_ = sess.Save(c.Request(), c.Response())
	return successes, errors
}

func toStrings(flashes []interface{}) []string {
	if len(flashes) == 0 {
		return nil
	}
	messages := make([]string, 0, len(flashes))
	for _, flash := range flashes {
		if message, ok := flash.(string); ok {
			messages = append(messages, message)
		}
	}
	return messages
}
