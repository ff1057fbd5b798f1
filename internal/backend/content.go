package backend

import (
	"context"
	"net/http"

	"github.com/ruebensh/portfolio/internal/domain"
)

// Projects returns every project in backend order.
func (c *Client) Projects(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	if err := c.get(ctx, "/projects", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Certificates returns every uploaded certificate.
func (c *Client) Certificates(ctx context.Context) ([]domain.Certificate, error) {
	var out []domain.Certificate
	if err := c.get(ctx, "/certificates", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Skills returns the skill categories.
func (c *Client) Skills(ctx context.Context) ([]domain.SkillCategory, error) {
	var out []domain.SkillCategory
	if err := c.get(ctx, "/skills", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Experience returns the resume timeline.
func (c *Client) Experience(ctx context.Context) ([]domain.ExperienceEntry, error) {
	var out []domain.ExperienceEntry
	if err := c.get(ctx, "/experience", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// About returns the about page record.
func (c *Client) About(ctx context.Context) (domain.AboutContent, error) {
	var out domain.AboutContent
	if err := c.get(ctx, "/about", "", &out); err != nil {
		return domain.AboutContent{}, err
	}
	return out, nil
}

// Settings returns the site profile.
func (c *Client) Settings(ctx context.Context) (domain.Settings, error) {
	var out domain.Settings
	if err := c.get(ctx, "/settings", "", &out); err != nil {
		return domain.Settings{}, err
	}
	return out, nil
}

// SendMessage posts a contact-form submission.
func (c *Client) SendMessage(ctx context.Context, in domain.ContactInput) error {
	return c.sendJSON(ctx, http.MethodPost, "/messages", "", in, nil)
}

// Chat sends one visitor turn to the assistant and returns its reply.
func (c *Client) Chat(ctx context.Context, message, sessionID string) (string, error) {
	in := struct {
		Message   string `json:"message"`
		SessionID string `json:"sessionId"`
	}{message, sessionID}
	var out struct {
		Text string `json:"text"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/ai/chat", "", in, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}
