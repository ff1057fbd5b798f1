package portfolio_test

import (
	"testing"

	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillEdits(t *testing.T) {
	skills := []domain.SkillCategory{{Category: "Frontend", Items: []domain.Skill{{Name: "React", Level: 90}}}}

	t.Run("add category", func(t *testing.T) {
		out, err := portfolio.AddCategory(skills, "Backend")
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "Backend", out[1].Category)
		assert.Len(t, skills, 1, "input must not change")

		_, err = portfolio.AddCategory(skills, "frontend")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("add skill clamps the level", func(t *testing.T) {
		out, err := portfolio.AddSkill(skills, 0, domain.Skill{Name: "Vue", Level: 140})
		require.NoError(t, err)
		assert.Equal(t, domain.Skill{Name: "Vue", Level: 100}, out[0].Items[1])
		assert.Len(t, skills[0].Items, 1, "input must not change")
	})

	t.Run("remove skill and category", func(t *testing.T) {
		out, err := portfolio.RemoveSkill(skills, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, out[0].Items)
		assert.Len(t, skills[0].Items, 1)

		out, err = portfolio.RemoveCategory(skills, 0)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("out of range indexes are invalid input", func(t *testing.T) {
		_, err := portfolio.RemoveCategory(skills, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = portfolio.RemoveSkill(skills, 0, 5)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = portfolio.AddSkill(skills, -1, domain.Skill{Name: "Go"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestExperienceEdits(t *testing.T) {
	entries := []domain.ExperienceEntry{{Role: "Dev", Company: "Acme", Impacts: []domain.TextItem{"Shipped"}}}

	t.Run("new entries go first with an initial logo", func(t *testing.T) {
		out := portfolio.AddExperience(entries, domain.ExperienceEntry{Role: "Lead", Company: "globex"})
		require.Len(t, out, 2)
		assert.Equal(t, "Lead", out[0].Role)
		assert.Equal(t, "G", out[0].Logo)
		assert.NotNil(t, out[0].Impacts)
	})

	t.Run("impacts", func(t *testing.T) {
		out, err := portfolio.AddImpact(entries, 0, "Cut costs")
		require.NoError(t, err)
		assert.Equal(t, []string{"Shipped", "Cut costs"}, domain.Strings(out[0].Impacts))
		assert.Len(t, entries[0].Impacts, 1, "input must not change")

		out, err = portfolio.RemoveImpact(out, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"Cut costs"}, domain.Strings(out[0].Impacts))

		_, err = portfolio.RemoveImpact(entries, 0, 3)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = portfolio.AddImpact(entries, 2, "x")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("remove entry", func(t *testing.T) {
		out, err := portfolio.RemoveExperience(entries, 0)
		require.NoError(t, err)
		assert.Empty(t, out)

		_, err = portfolio.RemoveExperience(entries, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAboutEdits(t *testing.T) {
	about := domain.AboutContent{Story: "Hi", Values: []domain.TextItem{"Craft"}}

	t.Run("lists", func(t *testing.T) {
		out, err := portfolio.AddAboutItem(about, domain.AboutCurrentlyLearning, "Rust")
		require.NoError(t, err)
		assert.Equal(t, []string{"Rust"}, domain.Strings(out.CurrentlyLearning))

		out, err = portfolio.RemoveAboutItem(about, domain.AboutValues, 0)
		require.NoError(t, err)
		assert.Empty(t, out.Values)
		assert.Len(t, about.Values, 1, "input must not change")

		_, err = portfolio.RemoveAboutItem(about, domain.AboutValues, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = portfolio.AddAboutItem(about, "hobbies", "chess")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("education and certificates", func(t *testing.T) {
		out := portfolio.AddEducation(about, domain.Education{Degree: "BSc", Institution: "TUIT", Year: "2024"})
		out = portfolio.AddAboutCertificate(out, domain.AboutCertificate{Name: "CKA", Issuer: "CNCF", Year: "2025"})
		assert.Len(t, out.Education, 1)
		assert.Len(t, out.Certificates, 1)

		out, err := portfolio.RemoveEducation(out, 0)
		require.NoError(t, err)
		assert.Empty(t, out.Education)

		_, err = portfolio.RemoveAboutCertificate(out, 4)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("story", func(t *testing.T) {
		out := portfolio.SetStory(about, "  New story ")
		assert.Equal(t, "New story", out.Story)
		assert.Equal(t, "Hi", about.Story)
	})
}
