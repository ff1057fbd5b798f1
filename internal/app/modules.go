package app

import (
	"github.com/ruebensh/portfolio/internal/module"
	"github.com/ruebensh/portfolio/internal/modules/admin"
	"github.com/ruebensh/portfolio/internal/modules/chat"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		chat.New(chat.Dependencies{
			Assistant: deps.Backend,
			Sessions:  deps.Sessions,
			Renderer:  deps.Renderer,
			SiteTitle: deps.Config.SiteTitle,
		}),
		admin.New(admin.Dependencies{
			API:      deps.Backend,
			Sessions: deps.Sessions,
			Stager:   deps.Stager,
			Recorder: deps.Recorder,
			Feed:     deps.Feed,
			Renderer: deps.Renderer,
			Asset:    deps.Backend.AssetURL,
		}),
	}
}
