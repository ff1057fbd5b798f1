package view

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// Redirect sends a 303 to url. htmx requests get an HX-Redirect header
// instead so the whole page navigates rather than the swap target.
func Redirect(c echo.Context, url string) error {
	if IsHTMX(c) {
		c.Response().Header().Set("HX-Redirect", url)
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusSeeOther, url)
}

// IsBoosted reports whether htmx issued the request for a boosted link or
// form, which expects a full page rather than a fragment.
func IsBoosted(c echo.Context) bool {
	return c.Request().Header.Get("HX-Boosted") == "true"
}

// IsFragment reports whether the request wants only a partial swap.
func IsFragment(c echo.Context) bool {
	return IsHTMX(c) && !IsBoosted(c)
}
