package portfolio

import (
	"context"
	"fmt"

	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/middleware"
	"golang.org/x/sync/errgroup"
)

// Content is the read side of the backend used by the public pages.
type Content interface {
	Projects(ctx context.Context) ([]domain.Project, error)
	Certificates(ctx context.Context) ([]domain.Certificate, error)
	Skills(ctx context.Context) ([]domain.SkillCategory, error)
	Experience(ctx context.Context) ([]domain.ExperienceEntry, error)
	About(ctx context.Context) (domain.AboutContent, error)
	Settings(ctx context.Context) (domain.Settings, error)
}

// AdminContent adds the reads that need an admin token.
type AdminContent interface {
	Content
	Messages(ctx context.Context, token string) ([]domain.Message, error)
}

// Home is everything the home page shows.
type Home struct {
	Settings   domain.Settings
	Skills     []domain.SkillCategory
	Experience []domain.ExperienceEntry
}

// LoadHome fetches the home page sections concurrently. Each section falls
// back to its empty value on failure without affecting the others.
func LoadHome(ctx context.Context, src Content) Home {
	log := middleware.FromContext(ctx)
	var (
		h Home
		g errgroup.Group
	)
	g.Go(func() error {
		s, err := src.Settings(ctx)
		if err != nil {
			log.Warn("home: settings unavailable", "error", err)
		}
		h.Settings = s.WithDefaults()
		return nil
	})
	g.Go(func() error {
		skills, err := src.Skills(ctx)
		if err != nil {
			log.Warn("home: skills unavailable", "error", err)
		}
		h.Skills = skills
		return nil
	})
	g.Go(func() error {
		exp, err := src.Experience(ctx)
		if err != nil {
			log.Warn("home: experience unavailable", "error", err)
		}
		h.Experience = exp
		return nil
	})
	_ = g.Wait()
	return h
}

// AboutPage is the about page data.
type AboutPage struct {
	About    domain.AboutContent
	Settings domain.Settings
}

// LoadAbout fetches the about record and the settings together. If either
// fails the whole load fails.
func LoadAbout(ctx context.Context, src Content) (AboutPage, error) {
	var p AboutPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := src.About(gctx)
		if err != nil {
			return fmt.Errorf("about: %w", err)
		}
		p.About = a.Normalize()
		return nil
	})
	g.Go(func() error {
		s, err := src.Settings(gctx)
		if err != nil {
			return fmt.Errorf("settings: %w", err)
		}
		p.Settings = s.WithDefaults()
		return nil
	})
	if err := g.Wait(); err != nil {
		return AboutPage{}, err
	}
	return p, nil
}

// Dashboard is the admin overview.
type Dashboard struct {
	Projects   []domain.Project
	Messages   []domain.Message
	Experience []domain.ExperienceEntry
	Unread     int
}

// LoadDashboard fetches projects, messages and experience together, all or
// nothing.
func LoadDashboard(ctx context.Context, src AdminContent, token string) (Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		projects, err := src.Projects(gctx)
		if err != nil {
			return fmt.Errorf("projects: %w", err)
		}
		d.Projects = projects
		return nil
	})
	g.Go(func() error {
		messages, err := src.Messages(gctx, token)
		if err != nil {
			return fmt.Errorf("messages: %w", err)
		}
		d.Messages = messages
		return nil
	})
	g.Go(func() error {
		exp, err := src.Experience(gctx)
		if err != nil {
			return fmt.Errorf("experience: %w", err)
		}
		d.Experience = exp
		return nil
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	d.Unread = UnreadCount(d.Messages)
	return d, nil
}
