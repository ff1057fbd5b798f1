package admin

import (
	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/activity"
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/handlers"
	views "github.com/ruebensh/portfolio/web/src/templates/admin"
)

const settingsPath = "/admin/settings"

// SettingsGet renders the profile form.
func (h *Handler) SettingsGet(c echo.Context) error {
	s, err := h.api.Settings(c.Request().Context())
	if err != nil {
		return h.unavailable(c, "Settings", err)
	}
	return h.render(c, "Settings", views.Settings(s, h.asset))
}

// SettingsSave replaces the profile. A new avatar or CV file replaces the
// stored URL; otherwise the hidden URL fields keep the current ones.
func (h *Handler) SettingsSave(c echo.Context) error {
	ctx := c.Request().Context()
	var s domain.Settings
	if err := handlers.Bind(c, &s); err != nil {
		return h.fail(c, settingsPath, err, MsgSaveFailed)
	}
	for _, f := range []struct {
		field string
		dst   *string
	}{
		{"avatar", &s.AvatarURL},
		{"cv", &s.CVURL},
	} {
		fh, err := optionalFile(c, f.field)
		if err != nil {
			return h.fail(c, settingsPath, err, MsgUploadFailed)
		}
		if fh == nil {
			continue
		}
		url, err := h.upload(c, fh)
		if err != nil {
			return h.fail(c, settingsPath, err, MsgUploadFailed)
		}
		*f.dst = url
	}
	if err := h.api.SaveSettings(ctx, token(c), s); err != nil {
		return h.fail(c, settingsPath, err, MsgSaveFailed)
	}
	h.recorder.Record(ctx, activity.KindSaved, "settings")
	return h.done(c, settingsPath, MsgSaved)
}
