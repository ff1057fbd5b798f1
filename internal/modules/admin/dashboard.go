package admin

import (
	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/portfolio"
	views "github.com/ruebensh/portfolio/web/src/templates/admin"
)

// recentActivity is how many feed entries the dashboard shows.
const recentActivity = 15

// DashboardGet shows totals and the activity feed.
func (h *Handler) DashboardGet(c echo.Context) error {
	d, err := portfolio.LoadDashboard(c.Request().Context(), h.api, token(c))
	if err != nil {
		return h.unavailable(c, "Dashboard", err)
	}
	return h.render(c, "Dashboard", views.Dashboard(d, h.feed.Recent(recentActivity)))
}
