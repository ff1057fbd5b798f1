package domain

import (
	"strings"
	"time"
)

// Defaults applied when the backend leaves a display field blank.
const (
	DefaultCategory        = "General"
	DefaultStatus          = "Live"
	DefaultProjectCount    = "10+"
	DefaultExperienceYears = "1+ Years"
)

// Project is a portfolio entry shown on the projects page.
type Project struct {
	ID          ID     `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	LiveURL     string `json:"liveUrl,omitempty"`
	Category    string `json:"category,omitempty"`
	Status      string `json:"status,omitempty"`
}

// DisplayCategory returns the category, or "General" when it is blank.
func (p Project) DisplayCategory() string {
	if strings.TrimSpace(p.Category) == "" {
		return DefaultCategory
	}
	return p.Category
}

// DisplayStatus returns the status, or "Live" when it is blank.
func (p Project) DisplayStatus() string {
	if strings.TrimSpace(p.Status) == "" {
		return DefaultStatus
	}
	return p.Status
}

// Skill is one named proficiency inside a category.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillCategory groups skills under a heading such as "Frontend".
type SkillCategory struct {
	Category string  `json:"category"`
	Items    []Skill `json:"items"`
}

// ExperienceEntry is one position on the resume timeline. EndDate is nil for
// the current position.
type ExperienceEntry struct {
	ID        ID         `json:"id,omitempty"`
	Role      string     `json:"role"`
	Company   string     `json:"company"`
	Logo      string     `json:"logo,omitempty"`
	StartDate string     `json:"startDate"`
	EndDate   *string    `json:"endDate"`
	Impacts   []TextItem `json:"impacts"`
}

// LogoText is the short badge shown next to the company name.
func (e ExperienceEntry) LogoText() string {
	if e.Logo != "" {
		return e.Logo
	}
	if e.Company == "" {
		return "?"
	}
	return strings.ToUpper(e.Company[:1])
}

// Period renders "Jan 2023 - Present" style ranges.
func (e ExperienceEntry) Period() string {
	end := "Present"
	if e.EndDate != nil {
		end = FormatMonth(*e.EndDate)
	}
	return FormatMonth(e.StartDate) + " - " + end
}

// FormatMonth turns an ISO date into "Jan 2006". Unparseable input is returned
// unchanged, and an empty value or "Present" reads as "Present".
func FormatMonth(value string) string {
	if value == "" || value == "Present" {
		return "Present"
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return value
}

// Education is a degree listed on the about page.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// AboutCertificate is a certificate mentioned in the about story. It is
// distinct from the downloadable Certificate records.
type AboutCertificate struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// AboutContent is the singleton record behind the about page.
type AboutContent struct {
	Story             string             `json:"story"`
	Education         []Education        `json:"education"`
	Certificates      []AboutCertificate `json:"certificates"`
	Values            []TextItem         `json:"values"`
	CurrentlyLearning []TextItem         `json:"currentlyLearning"`
	CurrentlyWorking  []TextItem         `json:"currentlyWorking"`
}

// Certificate is an uploaded credential with a downloadable file.
type Certificate struct {
	ID          ID     `json:"id,omitempty"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	FileURL     string `json:"fileUrl"`
	Description string `json:"description,omitempty"`
}

// IsPDF reports whether the certificate file should be embedded as a document
// rather than shown as an image.
func (c Certificate) IsPDF() bool {
	return strings.HasSuffix(strings.ToLower(c.FileURL), ".pdf")
}

// Message is a contact-form submission.
type Message struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Text      string    `json:"text"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Settings holds the site-wide profile shown in the hero, footer and resume.
type Settings struct {
	Author          string `json:"author" form:"author" validate:"max=120"`
	Title           string `json:"title" form:"title" validate:"max=200"`
	Description     string `json:"description" form:"description" validate:"max=2000"`
	AvatarURL       string `json:"avatarUrl" form:"avatarUrl"`
	CVURL           string `json:"cvUrl" form:"cvUrl"`
	Email           string `json:"email" form:"email" validate:"omitempty,email"`
	Phone           string `json:"phone" form:"phone" validate:"max=40"`
	Github          string `json:"github" form:"github"`
	Linkedin        string `json:"linkedin" form:"linkedin"`
	Telegram        string `json:"telegram" form:"telegram"`
	Instagram       string `json:"instagram" form:"instagram"`
	ProjectCount    string `json:"projectCount" form:"projectCount" validate:"max=20"`
	ExperienceYears string `json:"experienceYears" form:"experienceYears" validate:"max=20"`
	MainStack       string `json:"mainStack" form:"mainStack" validate:"max=120"`
}

// WithDefaults fills the stat fields the profile card always shows.
func (s Settings) WithDefaults() Settings {
	if s.ProjectCount == "" {
		s.ProjectCount = DefaultProjectCount
	}
	if s.ExperienceYears == "" {
		s.ExperienceYears = DefaultExperienceYears
	}
	return s
}

// Social is one rendered social link.
type Social struct {
	Label string
	URL   string
}

// Socials returns the non-empty social links in display order. Bare handles
// are turned into https URLs.
func (s Settings) Socials() []Social {
	var out []Social
	add := func(label, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		out = append(out, Social{Label: label, URL: ExternalURL(value)})
	}
	add("GitHub", s.Github)
	add("LinkedIn", s.Linkedin)
	add("Telegram", s.Telegram)
	add("Instagram", s.Instagram)
	return out
}

// ExternalURL prefixes https:// when the value has no scheme.
func ExternalURL(value string) string {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return "https://" + value
}

// Normalize replaces nil lists with empty ones so saves never send null.
func (a AboutContent) Normalize() AboutContent {
	if a.Education == nil {
		a.Education = []Education{}
	}
	if a.Certificates == nil {
		a.Certificates = []AboutCertificate{}
	}
	if a.Values == nil {
		a.Values = []TextItem{}
	}
	if a.CurrentlyLearning == nil {
		a.CurrentlyLearning = []TextItem{}
	}
	if a.CurrentlyWorking == nil {
		a.CurrentlyWorking = []TextItem{}
	}
	return a
}
