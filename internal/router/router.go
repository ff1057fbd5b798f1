// Package router maps hash fragments and request paths onto the site's pages.
// The route table is flat: static paths plus one parameterised project path.
package router

import "strings"

// Route names.
const (
	Home              = "home"
	Projects          = "projects"
	ProjectDetail     = "project"
	Certificates      = "certificates"
	Resume            = "resume"
	About             = "about"
	Chat              = "chat"
	AdminDashboard    = "admin"
	AdminLogin        = "admin-login"
	AdminProjects     = "admin-projects"
	AdminCertificates = "admin-certificates"
	AdminSkills       = "admin-skills"
	AdminExperience   = "admin-experience"
	AdminAbout        = "admin-about"
	AdminSettings     = "admin-settings"
	AdminMessages     = "admin-messages"
)

// Route is a resolved page.
type Route struct {
	Path   string
	Name   string
	Params map[string]string
}

var static = map[string]string{
	"/":                   Home,
	"/projects":           Projects,
	"/certificates":       Certificates,
	"/resume":             Resume,
	"/about":              About,
	"/chat":               Chat,
	"/admin":              AdminDashboard,
	"/admin/login":        AdminLogin,
	"/admin/projects":     AdminProjects,
	"/admin/certificates": AdminCertificates,
	"/admin/skills":       AdminSkills,
	"/admin/experience":   AdminExperience,
	"/admin/about":        AdminAbout,
	"/admin/settings":     AdminSettings,
	"/admin/messages":     AdminMessages,
}

// Normalize turns "#/projects/", "/projects" or "" into a clean path. The
// result always starts with "/" and only the root keeps a trailing slash.
func Normalize(fragment string) string {
	p := strings.TrimSpace(fragment)
	p = strings.TrimPrefix(p, "#")
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

// Resolve maps a location hash onto a route.
func Resolve(fragment string) Route {
	return Match(Normalize(fragment))
}

// Match applies the route table to a normalised path. Unknown admin paths
// fall back to the dashboard and every other unknown path to home.
func Match(path string) Route {
	path = Normalize(path)
	if name, ok := static[path]; ok {
		return Route{Path: path, Name: name}
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	if segments[0] == "project" && len(segments) > 1 && segments[1] != "" {
		return Route{
			Path:   "/project/" + segments[1],
			Name:   ProjectDetail,
			Params: map[string]string{"slug": segments[1]},
		}
	}
	if segments[0] == "admin" {
		return Route{Path: "/admin", Name: AdminDashboard}
	}
	return Route{Path: "/", Name: Home}
}

// Param returns a path parameter or "".
func (r Route) Param(name string) string {
	return r.Params[name]
}

// IsAdmin reports whether the route belongs to the admin area.
func (r Route) IsAdmin() bool {
	return strings.HasPrefix(r.Path, "/admin")
}

// Active reports whether a nav entry pointing at href should be highlighted
// for this route. The project detail page highlights the projects entry.
func (r Route) Active(href string) bool {
	if href == r.Path {
		return true
	}
	return r.Name == ProjectDetail && href == "/projects"
}
