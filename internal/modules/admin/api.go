package admin

import (
	"context"

	"github.com/ruebensh/portfolio/internal/backend"
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/portfolio"
)

// API is the part of the backend client the admin area uses.
// *backend.Client satisfies it.
type API interface {
	portfolio.AdminContent

	Login(ctx context.Context, in domain.LoginInput) (string, error)

	MarkMessageRead(ctx context.Context, token string, id domain.ID) error
	ReplyMessage(ctx context.Context, token string, id domain.ID, in domain.ReplyInput) error
	DeleteMessage(ctx context.Context, token string, id domain.ID) error

	CreateProject(ctx context.Context, token string, p domain.Project) error
	UpdateProject(ctx context.Context, token string, id domain.ID, p domain.Project) error
	DeleteProject(ctx context.Context, token string, id domain.ID) error

	CreateCertificate(ctx context.Context, token string, in domain.CertificateInput, up backend.Upload) error
	DeleteCertificate(ctx context.Context, token string, id domain.ID) error

	SaveSkills(ctx context.Context, token string, skills []domain.SkillCategory) error
	SaveExperience(ctx context.Context, token string, entries []domain.ExperienceEntry) error
	SaveAbout(ctx context.Context, token string, about domain.AboutContent) error
	SaveSettings(ctx context.Context, token string, s domain.Settings) error

	UploadFile(ctx context.Context, token string, up backend.Upload) (string, error)
}

var _ API = (*backend.Client)(nil)
