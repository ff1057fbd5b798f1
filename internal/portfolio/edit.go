package portfolio

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ruebensh/portfolio/internal/domain"
)

// The edits below never mutate their input. Each returns a fresh list that
// the admin handlers save back as a whole.

func checkIndex(what string, i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %s index %d out of range [0,%d)", domain.ErrInvalidInput, what, i, n)
	}
	return nil
}

func removeAt[T any](what string, list []T, i int) ([]T, error) {
	if err := checkIndex(what, i, len(list)); err != nil {
		return nil, err
	}
	return slices.Delete(slices.Clone(list), i, i+1), nil
}

// cloneSkills copies the categories and their item slices.
func cloneSkills(skills []domain.SkillCategory) []domain.SkillCategory {
	out := make([]domain.SkillCategory, len(skills))
	for i, c := range skills {
		out[i] = domain.SkillCategory{Category: c.Category, Items: slices.Clone(c.Items)}
	}
	return out
}

// AddCategory appends an empty skill category. Names must be unique.
func AddCategory(skills []domain.SkillCategory, name string) ([]domain.SkillCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", domain.ErrInvalidInput)
	}
	for _, c := range skills {
		if strings.EqualFold(c.Category, name) {
			return nil, fmt.Errorf("%w: category %q already exists", domain.ErrInvalidInput, name)
		}
	}
	out := cloneSkills(skills)
	return append(out, domain.SkillCategory{Category: name, Items: []domain.Skill{}}), nil
}

// RemoveCategory drops the category at i together with its skills.
func RemoveCategory(skills []domain.SkillCategory, i int) ([]domain.SkillCategory, error) {
	return removeAt("category", cloneSkills(skills), i)
}

// AddSkill appends a skill to the category at i. Levels are clamped to 0..100.
func AddSkill(skills []domain.SkillCategory, i int, skill domain.Skill) ([]domain.SkillCategory, error) {
	if err := checkIndex("category", i, len(skills)); err != nil {
		return nil, err
	}
	skill.Name = strings.TrimSpace(skill.Name)
	if skill.Name == "" {
		return nil, fmt.Errorf("%w: skill name is required", domain.ErrInvalidInput)
	}
	skill.Level = min(max(skill.Level, 0), 100)
	out := cloneSkills(skills)
	out[i].Items = append(out[i].Items, skill)
	return out, nil
}

// RemoveSkill drops skill j from the category at i.
func RemoveSkill(skills []domain.SkillCategory, i, j int) ([]domain.SkillCategory, error) {
	if err := checkIndex("category", i, len(skills)); err != nil {
		return nil, err
	}
	items, err := removeAt("skill", skills[i].Items, j)
	if err != nil {
		return nil, err
	}
	out := cloneSkills(skills)
	out[i].Items = items
	return out, nil
}

func cloneExperience(entries []domain.ExperienceEntry) []domain.ExperienceEntry {
	out := make([]domain.ExperienceEntry, len(entries))
	for i, e := range entries {
		e.Impacts = slices.Clone(e.Impacts)
		out[i] = e
	}
	return out
}

// AddExperience puts a new position at the top of the timeline. A blank logo
// becomes the company's initial.
func AddExperience(entries []domain.ExperienceEntry, e domain.ExperienceEntry) []domain.ExperienceEntry {
	if e.Logo == "" {
		e.Logo = e.LogoText()
	}
	if e.Impacts == nil {
		e.Impacts = []domain.TextItem{}
	}
	return append([]domain.ExperienceEntry{e}, cloneExperience(entries)...)
}

// RemoveExperience drops the position at i.
func RemoveExperience(entries []domain.ExperienceEntry, i int) ([]domain.ExperienceEntry, error) {
	return removeAt("experience", cloneExperience(entries), i)
}

// AddImpact appends an impact line to the position at i.
func AddImpact(entries []domain.ExperienceEntry, i int, text string) ([]domain.ExperienceEntry, error) {
	if err := checkIndex("experience", i, len(entries)); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: impact text is required", domain.ErrInvalidInput)
	}
	out := cloneExperience(entries)
	out[i].Impacts = append(out[i].Impacts, domain.TextItem(text))
	return out, nil
}

// RemoveImpact drops impact j from the position at i.
func RemoveImpact(entries []domain.ExperienceEntry, i, j int) ([]domain.ExperienceEntry, error) {
	if err := checkIndex("experience", i, len(entries)); err != nil {
		return nil, err
	}
	impacts, err := removeAt("impact", entries[i].Impacts, j)
	if err != nil {
		return nil, err
	}
	out := cloneExperience(entries)
	out[i].Impacts = impacts
	return out, nil
}

func cloneAbout(a domain.AboutContent) domain.AboutContent {
	a = a.Normalize()
	a.Education = slices.Clone(a.Education)
	a.Certificates = slices.Clone(a.Certificates)
	a.Values = slices.Clone(a.Values)
	a.CurrentlyLearning = slices.Clone(a.CurrentlyLearning)
	a.CurrentlyWorking = slices.Clone(a.CurrentlyWorking)
	return a
}

// SetStory replaces the about story.
func SetStory(a domain.AboutContent, story string) domain.AboutContent {
	out := cloneAbout(a)
	out.Story = strings.TrimSpace(story)
	return out
}

// AddEducation appends a degree.
func AddEducation(a domain.AboutContent, e domain.Education) domain.AboutContent {
	out := cloneAbout(a)
	out.Education = append(out.Education, e)
	return out
}

// RemoveEducation drops the degree at i.
func RemoveEducation(a domain.AboutContent, i int) (domain.AboutContent, error) {
	out := cloneAbout(a)
	list, err := removeAt("education", out.Education, i)
	if err != nil {
		return domain.AboutContent{}, err
	}
	out.Education = list
	return out, nil
}

// AddAboutCertificate appends a certificate line.
func AddAboutCertificate(a domain.AboutContent, c domain.AboutCertificate) domain.AboutContent {
	out := cloneAbout(a)
	out.Certificates = append(out.Certificates, c)
	return out
}

// RemoveAboutCertificate drops the certificate line at i.
func RemoveAboutCertificate(a domain.AboutContent, i int) (domain.AboutContent, error) {
	out := cloneAbout(a)
	list, err := removeAt("certificate", out.Certificates, i)
	if err != nil {
		return domain.AboutContent{}, err
	}
	out.Certificates = list
	return out, nil
}

// aboutList returns a pointer to the named text list.
func aboutList(a *domain.AboutContent, name string) (*[]domain.TextItem, error) {
	switch name {
	case domain.AboutValues:
		return &a.Values, nil
	case domain.AboutCurrentlyLearning:
		return &a.CurrentlyLearning, nil
	case domain.AboutCurrentlyWorking:
		return &a.CurrentlyWorking, nil
	default:
		return nil, fmt.Errorf("%w: unknown list %q", domain.ErrInvalidInput, name)
	}
}

// AddAboutItem appends text to one of the values, currentlyLearning or
// currentlyWorking lists.
func AddAboutItem(a domain.AboutContent, list, text string) (domain.AboutContent, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.AboutContent{}, fmt.Errorf("%w: text is required", domain.ErrInvalidInput)
	}
	out := cloneAbout(a)
	items, err := aboutList(&out, list)
	if err != nil {
		return domain.AboutContent{}, err
	}
	*items = append(*items, domain.TextItem(text))
	return out, nil
}

// RemoveAboutItem drops entry i of the named list.
func RemoveAboutItem(a domain.AboutContent, list string, i int) (domain.AboutContent, error) {
	out := cloneAbout(a)
	items, err := aboutList(&out, list)
	if err != nil {
		return domain.AboutContent{}, err
	}
	trimmed, err := removeAt(list, *items, i)
	if err != nil {
		return domain.AboutContent{}, err
	}
	*items = trimmed
	return out, nil
}
