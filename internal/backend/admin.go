package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ruebensh/portfolio/internal/domain"
)

// Login exchanges admin credentials for an access token. Rejected
// credentials are reported as domain.ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, in domain.LoginInput) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	err := c.sendJSON(ctx, http.MethodPost, "/auth/login", "", in, &out)
	if err != nil {
		var be *Error
		if errors.As(err, &be) && (be.Status == http.StatusUnauthorized || be.Status == http.StatusBadRequest || be.Status == http.StatusForbidden) {
			return "", fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, be.Message)
		}
		return "", err
	}
	if out.AccessToken == "" {
		return "", errors.New("login response carried no access_token")
	}
	return out.AccessToken, nil
}

// Messages lists contact submissions in backend order.
func (c *Client) Messages(ctx context.Context, token string) ([]domain.Message, error) {
	var out []domain.Message
	if err := c.get(ctx, "/messages", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkMessageRead flags a message as read.
func (c *Client) MarkMessageRead(ctx context.Context, token string, id domain.ID) error {
	return c.sendJSON(ctx, http.MethodPatch, "/messages/"+escape(id)+"/read", token, nil, nil)
}

// ReplyMessage asks the API to email a reply to the sender.
func (c *Client) ReplyMessage(ctx context.Context, token string, id domain.ID, in domain.ReplyInput) error {
	return c.sendJSON(ctx, http.MethodPost, "/messages/"+escape(id)+"/reply", token, in, nil)
}

// DeleteMessage removes a message.
func (c *Client) DeleteMessage(ctx context.Context, token string, id domain.ID) error {
	return c.sendJSON(ctx, http.MethodDelete, "/messages/"+escape(id), token, nil, nil)
}

// CreateProject stores a new project.
func (c *Client) CreateProject(ctx context.Context, token string, p domain.Project) error {
	p.ID = ""
	return c.sendJSON(ctx, http.MethodPost, "/projects/admin", token, p, nil)
}

// UpdateProject replaces the project with the given id.
func (c *Client) UpdateProject(ctx context.Context, token string, id domain.ID, p domain.Project) error {
	p.ID = ""
	return c.sendJSON(ctx, http.MethodPost, "/projects/admin/"+escape(id), token, p, nil)
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, token string, id domain.ID) error {
	return c.sendJSON(ctx, http.MethodDelete, "/projects/admin/"+escape(id), token, nil, nil)
}

// DeleteCertificate removes a certificate and its file.
func (c *Client) DeleteCertificate(ctx context.Context, token string, id domain.ID) error {
	return c.sendJSON(ctx, http.MethodDelete, "/certificates/admin/"+escape(id), token, nil, nil)
}

// SaveSkills replaces the whole skills list.
func (c *Client) SaveSkills(ctx context.Context, token string, skills []domain.SkillCategory) error {
	if skills == nil {
		skills = []domain.SkillCategory{}
	}
	in := struct {
		Skills []domain.SkillCategory `json:"skills"`
	}{skills}
	return c.sendJSON(ctx, http.MethodPost, "/skills/admin", token, in, nil)
}

// experienceWrite is the save shape: impacts go out as bare strings.
type experienceWrite struct {
	Role      string   `json:"role"`
	Company   string   `json:"company"`
	Logo      string   `json:"logo,omitempty"`
	StartDate string   `json:"startDate"`
	EndDate   *string  `json:"endDate"`
	Impacts   []string `json:"impacts"`
}

// SaveExperience replaces the whole resume timeline.
func (c *Client) SaveExperience(ctx context.Context, token string, entries []domain.ExperienceEntry) error {
	items := make([]experienceWrite, len(entries))
	for i, e := range entries {
		items[i] = experienceWrite{
			Role:      e.Role,
			Company:   e.Company,
			Logo:      e.Logo,
			StartDate: e.StartDate,
			EndDate:   e.EndDate,
			Impacts:   domain.Strings(e.Impacts),
		}
	}
	in := struct {
		Experience []experienceWrite `json:"experience"`
	}{items}
	return c.sendJSON(ctx, http.MethodPost, "/experience/admin", token, in, nil)
}

// SaveAbout replaces the about record. Text lists are written as {text} objects.
func (c *Client) SaveAbout(ctx context.Context, token string, about domain.AboutContent) error {
	return c.sendJSON(ctx, http.MethodPost, "/about/admin", token, about.Normalize(), nil)
}

// SaveSettings replaces the site profile.
func (c *Client) SaveSettings(ctx context.Context, token string, s domain.Settings) error {
	return c.sendJSON(ctx, http.MethodPost, "/settings/admin", token, s, nil)
}

func escape(id domain.ID) string {
	return url.PathEscape(id.String())
}
