package portfolio_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("backend down")

// stubContent serves fixed values and fails the resources named in fail.
type stubContent struct {
	fail  map[string]bool
	calls atomic.Int32
}

func (s *stubContent) err(name string) error {
	s.calls.Add(1)
	if s.fail[name] {
		return errDown
	}
	return nil
}

func (s *stubContent) Projects(context.Context) ([]domain.Project, error) {
	return []domain.Project{{ID: "1", Title: "Site"}}, s.err("projects")
}

func (s *stubContent) Certificates(context.Context) ([]domain.Certificate, error) {
	return nil, s.err("certificates")
}

func (s *stubContent) Skills(ctx context.Context) ([]domain.SkillCategory, error) {
	if err := s.err("skills"); err != nil {
		return nil, err
	}
	return []domain.SkillCategory{{Category: "Backend"}}, nil
}

func (s *stubContent) Experience(context.Context) ([]domain.ExperienceEntry, error) {
	if err := s.err("experience"); err != nil {
		return nil, err
	}
	return []domain.ExperienceEntry{{Role: "Dev"}}, nil
}

func (s *stubContent) About(context.Context) (domain.AboutContent, error) {
	if err := s.err("about"); err != nil {
		return domain.AboutContent{}, err
	}
	return domain.AboutContent{Story: "Hello"}, nil
}

func (s *stubContent) Settings(context.Context) (domain.Settings, error) {
	if err := s.err("settings"); err != nil {
		return domain.Settings{}, err
	}
	return domain.Settings{Author: "Ruben"}, nil
}

func (s *stubContent) Messages(context.Context, string) ([]domain.Message, error) {
	if err := s.err("messages"); err != nil {
		return nil, err
	}
	return []domain.Message{{ID: "1"}, {ID: "2", Read: true}}, nil
}

func TestLoadHome(t *testing.T) {
	t.Run("all sections load", func(t *testing.T) {
		src := &stubContent{}
		h := portfolio.LoadHome(context.Background(), src)
		assert.Equal(t, "Ruben", h.Settings.Author)
		assert.Len(t, h.Skills, 1)
		assert.Len(t, h.Experience, 1)
		assert.Equal(t, int32(3), src.calls.Load())
	})

	t.Run("a failing section does not affect the others", func(t *testing.T) {
		src := &stubContent{fail: map[string]bool{"skills": true}}
		h := portfolio.LoadHome(context.Background(), src)
		assert.Empty(t, h.Skills)
		assert.Len(t, h.Experience, 1)
		assert.Equal(t, "Ruben", h.Settings.Author)
	})

	t.Run("failed settings still get default stats", func(t *testing.T) {
		src := &stubContent{fail: map[string]bool{"settings": true}}
		h := portfolio.LoadHome(context.Background(), src)
		assert.Equal(t, domain.DefaultProjectCount, h.Settings.ProjectCount)
	})
}

func TestLoadAbout(t *testing.T) {
	t.Run("joins about and settings", func(t *testing.T) {
		p, err := portfolio.LoadAbout(context.Background(), &stubContent{})
		require.NoError(t, err)
		assert.Equal(t, "Hello", p.About.Story)
		assert.Equal(t, "Ruben", p.Settings.Author)
	})

	t.Run("either failure fails both", func(t *testing.T) {
		for _, name := range []string{"about", "settings"} {
			p, err := portfolio.LoadAbout(context.Background(), &stubContent{fail: map[string]bool{name: true}})
			assert.ErrorIs(t, err, errDown)
			assert.Empty(t, p.About.Story)
			assert.Empty(t, p.Settings.Author)
		}
	})
}

func TestLoadDashboard(t *testing.T) {
	d, err := portfolio.LoadDashboard(context.Background(), &stubContent{}, "tok")
	require.NoError(t, err)
	assert.Len(t, d.Projects, 1)
	assert.Len(t, d.Messages, 2)
	assert.Equal(t, 1, d.Unread)

	_, err = portfolio.LoadDashboard(context.Background(), &stubContent{fail: map[string]bool{"messages": true}}, "tok")
	assert.ErrorIs(t, err, errDown)
}
