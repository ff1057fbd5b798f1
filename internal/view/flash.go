package view

import (
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "portfolio-flash"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// Flash holds the one-shot messages shown at the top of the next page.
type Flash struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f Flash) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil && sess == nil {
		slog.WarnContext(c.Request().Context(), "flash session unavailable", "error", err)
		return
	}
	sess.AddFlash(message, key)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.WarnContext(c.Request().Context(), "failed to save flash", "error", err)
	}
}

// SetFlashSuccess queues a success message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError queues an error message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears the queued messages.
func GetFlashData(c echo.Context) Flash {
	var f Flash
	sess, err := session.Get(flashSessionName, c)
	if err != nil && sess == nil {
		return f
	}

	success := sess.Flashes(flashKeySuccess)
	failure := sess.Flashes(flashKeyError)
	if len(success) == 0 && len(failure) == 0 {
		return f
	}
	f.Success = toStrings(success)
	f.Error = toStrings(failure)
	_ = sess.Save(c.Request(), c.Response())
	return f
}

func toStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
