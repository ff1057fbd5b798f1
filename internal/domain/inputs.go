package domain

import "strings"

// LoginInput is the admin login form.
type LoginInput struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

// ContactInput is the public contact form. It is posted to the backend as is.
type ContactInput struct {
	Name    string `form:"name" json:"name" validate:"notblank,max=120"`
	Email   string `form:"email" json:"email" validate:"required,email"`
	Message string `form:"message" json:"message" validate:"notblank,max=5000"`
}

// ChatInput is one visitor turn in the chat widget.
type ChatInput struct {
	Message string `form:"message" validate:"notblank,max=2000"`
}

// ProjectInput is the admin project form. ImageURL is filled from an upload or
// kept from the existing record.
type ProjectInput struct {
	Title       string `form:"title" json:"title" validate:"notblank,max=200"`
	Description string `form:"description" json:"description" validate:"max=5000"`
	LiveURL     string `form:"liveUrl" json:"liveUrl" validate:"omitempty,url"`
	Category    string `form:"category" json:"category" validate:"max=80"`
	Status      string `form:"status" json:"status" validate:"max=40"`
	ImageURL    string `form:"imageUrl" json:"imageUrl"`
}

// Project converts the input into the record shape the backend stores.
func (in ProjectInput) Project() Project {
	return Project{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    in.ImageURL,
		LiveURL:     strings.TrimSpace(in.LiveURL),
		Category:    strings.TrimSpace(in.Category),
		Status:      strings.TrimSpace(in.Status),
	}
}

// CertificateInput is the text part of the multipart certificate form.
type CertificateInput struct {
	Title       string `form:"title" validate:"notblank,max=200"`
	Issuer      string `form:"issuer" validate:"notblank,max=200"`
	Date        string `form:"date" validate:"required"`
	Description string `form:"description" validate:"max=2000"`
}

// CategoryInput names a new skill category.
type CategoryInput struct {
	Category string `form:"category" validate:"notblank,max=80"`
}

// SkillInput adds one skill to the category at Index.
type SkillInput struct {
	Index int    `form:"index" validate:"gte=0"`
	Name  string `form:"name" validate:"notblank,max=80"`
	Level int    `form:"level" validate:"gte=0,lte=100"`
}

// ExperienceInput is a new resume position. Dates use the HTML month or date
// input formats.
type ExperienceInput struct {
	Role      string `form:"role" validate:"notblank,max=120"`
	Company   string `form:"company" validate:"notblank,max=120"`
	Logo      string `form:"logo" validate:"max=8"`
	StartDate string `form:"startDate" validate:"required"`
	EndDate   string `form:"endDate"`
}

// Entry converts the input into an ExperienceEntry. A blank end date means
// the position is current.
func (in ExperienceInput) Entry() ExperienceEntry {
	e := ExperienceEntry{
		Role:      strings.TrimSpace(in.Role),
		Company:   strings.TrimSpace(in.Company),
		Logo:      strings.TrimSpace(in.Logo),
		StartDate: in.StartDate,
		Impacts:   []TextItem{},
	}
	if end := strings.TrimSpace(in.EndDate); end != "" {
		e.EndDate = &end
	}
	return e
}

// ImpactInput adds one impact line to the experience entry at Index.
type ImpactInput struct {
	Index int    `form:"index" validate:"gte=0"`
	Text  string `form:"text" validate:"notblank,max=500"`
}

// EducationInput is one degree on the about page.
type EducationInput struct {
	Degree      string `form:"degree" validate:"notblank,max=200"`
	Institution string `form:"institution" validate:"notblank,max=200"`
	Year        string `form:"year" validate:"max=20"`
}

// AboutCertificateInput is one certificate line on the about page.
type AboutCertificateInput struct {
	Name   string `form:"name" validate:"notblank,max=200"`
	Issuer string `form:"issuer" validate:"max=200"`
	Year   string `form:"year" validate:"max=20"`
}

// About list names accepted by AboutItemInput.
const (
	AboutValues            = "values"
	AboutCurrentlyLearning = "currentlyLearning"
	AboutCurrentlyWorking  = "currentlyWorking"
)

// AboutItemInput adds a line to one of the about page text lists.
type AboutItemInput struct {
	List string `form:"list" validate:"oneof=values currentlyLearning currentlyWorking"`
	Text string `form:"text" validate:"notblank,max=300"`
}

// StoryInput replaces the about story.
type StoryInput struct {
	Story string `form:"story" validate:"max=20000"`
}

// ReplyInput is an admin reply to a contact message.
type ReplyInput struct {
	Text string `form:"text" json:"text" validate:"notblank,max=5000"`
}
