package admin_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/activity"
	"github.com/ruebensh/portfolio/internal/backend"
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/handlers"
	"github.com/ruebensh/portfolio/internal/modules/admin"
	"github.com/ruebensh/portfolio/internal/pubsub"
	"github.com/ruebensh/portfolio/internal/rendering"
	"github.com/ruebensh/portfolio/internal/session"
	"github.com/ruebensh/portfolio/internal/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI records writes and serves canned reads.
type fakeAPI struct {
	mu sync.Mutex

	token    string
	loginErr error
	saveErr  error

	projects []domain.Project
	skills   []domain.SkillCategory
	about    domain.AboutContent
	messages []domain.Message
	settings domain.Settings

	created       []domain.Project
	updated       []domain.ID
	certificates  []string
	savedSkills   []domain.SkillCategory
	savedExp      []domain.ExperienceEntry
	savedAbout    *domain.AboutContent
	savedSettings *domain.Settings
	deleted       []domain.ID
	uploads       int
	tokens        []string
}

func (f *fakeAPI) seen(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
}

func (f *fakeAPI) Projects(context.Context) ([]domain.Project, error) { return f.projects, nil }
func (f *fakeAPI) Certificates(context.Context) ([]domain.Certificate, error) {
	return nil, nil
}
func (f *fakeAPI) Skills(context.Context) ([]domain.SkillCategory, error) { return f.skills, nil }
func (f *fakeAPI) Experience(context.Context) ([]domain.ExperienceEntry, error) {
	return nil, nil
}
func (f *fakeAPI) About(context.Context) (domain.AboutContent, error) { return f.about, nil }
func (f *fakeAPI) Settings(context.Context) (domain.Settings, error)  { return f.settings, nil }
func (f *fakeAPI) Messages(_ context.Context, token string) ([]domain.Message, error) {
	f.seen(token)
	return f.messages, nil
}

func (f *fakeAPI) Login(_ context.Context, in domain.LoginInput) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAPI) MarkMessageRead(context.Context, string, domain.ID) error { return f.saveErr }
func (f *fakeAPI) ReplyMessage(context.Context, string, domain.ID, domain.ReplyInput) error {
	return f.saveErr
}
func (f *fakeAPI) DeleteMessage(_ context.Context, token string, id domain.ID) error {
	f.seen(token)
	f.deleted = append(f.deleted, id)
	return f.saveErr
}
func (f *fakeAPI) CreateProject(_ context.Context, _ string, p domain.Project) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.created = append(f.created, p)
	return nil
}
func (f *fakeAPI) UpdateProject(_ context.Context, _ string, id domain.ID, p domain.Project) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.updated = append(f.updated, id)
	f.created = append(f.created, p)
	return nil
}
func (f *fakeAPI) DeleteProject(_ context.Context, _ string, id domain.ID) error {
	f.deleted = append(f.deleted, id)
	return f.saveErr
}
func (f *fakeAPI) CreateCertificate(_ context.Context, _ string, in domain.CertificateInput, up backend.Upload) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.certificates = append(f.certificates, in.Title+":"+up.Filename)
	return nil
}
func (f *fakeAPI) DeleteCertificate(context.Context, string, domain.ID) error { return f.saveErr }
func (f *fakeAPI) SaveSkills(_ context.Context, token string, skills []domain.SkillCategory) error {
	f.seen(token)
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedSkills = skills
	return nil
}
func (f *fakeAPI) SaveExperience(_ context.Context, _ string, entries []domain.ExperienceEntry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedExp = entries
	return nil
}
func (f *fakeAPI) SaveAbout(_ context.Context, _ string, about domain.AboutContent) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedAbout = &about
	return nil
}
func (f *fakeAPI) SaveSettings(_ context.Context, _ string, s domain.Settings) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedSettings = &s
	return nil
}
func (f *fakeAPI) UploadFile(context.Context, string, backend.Upload) (string, error) {
	f.uploads++
	return "/uploads/file.png", nil
}

var _ admin.API = (*fakeAPI)(nil)

// browser carries cookies between requests like a real client.
type browser struct {
	t       *testing.T
	e       *echo.Echo
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, api admin.API) (*browser, *activity.Feed) {
	t.Helper()
	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.Use(echosession.Middleware(session.NewStore("a-very-secret-key-for-testing-!", "", false)))

	bus := pubsub.NewWatermillBridge(nil)
	t.Cleanup(func() { _ = bus.Close() })
	feed := activity.NewFeed(activity.DefaultCapacity)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, feed.Attach(ctx, bus))

	m := admin.New(admin.Dependencies{
		API:       api,
		Sessions:  session.NewManager(),
		Stager:    storage.NewStager(storage.NewAferoStore(afero.NewMemMapFs()), 1<<20, []string{"image/png"}),
		Recorder:  activity.NewRecorder(bus),
		Feed:      feed,
		Renderer:  rendering.NewUniversalRenderer(),
		Asset:     func(s string) string { return s },
		LoginRate: 1000,
	})
	require.NoError(t, m.Boot(context.Background(), e.Group("/admin"), nil))
	return &browser{t: t, e: e, cookies: map[string]*http.Cookie{}}, feed
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.e.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return b.do(req)
}

func (b *browser) login() {
	rec := b.post("/admin/login", url.Values{"email": {"admin@example.com"}, "password": {"secret"}})
	require.Equal(b.t, http.StatusSeeOther, rec.Code)
	require.Equal(b.t, "/admin", rec.Header().Get(echo.HeaderLocation))
}

func TestAdminGuard(t *testing.T) {
	b, _ := newBrowser(t, &fakeAPI{token: "tok"})

	rec := b.get("/admin/projects")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login?next=%2Fadmin%2Fprojects", rec.Header().Get(echo.HeaderLocation))

	rec = b.get("/admin/login")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin sign in")
}

func TestLogin(t *testing.T) {
	t.Run("stores the token and opens the dashboard", func(t *testing.T) {
		api := &fakeAPI{token: "tok", messages: []domain.Message{{ID: "1", Name: "Ann"}}}
		b, _ := newBrowser(t, api)
		b.login()

		rec := b.get("/admin")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Dashboard")
		assert.Contains(t, api.tokens, "tok")
	})

	t.Run("bad credentials stay on the login page", func(t *testing.T) {
		b, _ := newBrowser(t, &fakeAPI{loginErr: fmt.Errorf("%w: nope", domain.ErrInvalidCredentials)})
		rec := b.post("/admin/login", url.Values{"email": {"admin@example.com"}, "password": {"wrong"}})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/login", rec.Header().Get(echo.HeaderLocation))

		rec = b.get("/admin/login")
		assert.Contains(t, rec.Body.String(), admin.MsgBadLogin)
		assert.Equal(t, http.StatusSeeOther, b.get("/admin").Code)
	})

	t.Run("next is limited to the admin area", func(t *testing.T) {
		for next, want := range map[string]string{
			"/admin/skills":      "/admin/skills",
			"//evil.example.com": "/admin",
			"https://evil.test":  "/admin",
			"/admin/login":       "/admin",
		} {
			b, _ := newBrowser(t, &fakeAPI{token: "tok"})
			rec := b.post("/admin/login", url.Values{"email": {"a@b.co"}, "password": {"x"}, "next": {next}})
			assert.Equal(t, want, rec.Header().Get(echo.HeaderLocation), next)
		}
	})

	t.Run("logout ends the session", func(t *testing.T) {
		b, _ := newBrowser(t, &fakeAPI{token: "tok"})
		b.login()
		rec := b.post("/admin/logout", nil)
		assert.Equal(t, "/admin/login", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, http.StatusSeeOther, b.get("/admin").Code)
	})
}

func TestRejectedTokenEndsSession(t *testing.T) {
	api := &fakeAPI{token: "tok", saveErr: fmt.Errorf("backend returned 401: %w", domain.ErrUnauthorized)}
	b, _ := newBrowser(t, api)
	b.login()

	rec := b.post("/admin/skills/categories", url.Values{"category": {"Tools"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get(echo.HeaderLocation))

	rec = b.get("/admin/skills")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderLocation), "/admin/login"))
}

func TestSkillsEditing(t *testing.T) {
	api := &fakeAPI{token: "tok", skills: []domain.SkillCategory{{Category: "Backend", Items: []domain.Skill{{Name: "Go", Level: 90}}}}}
	b, feed := newBrowser(t, api)
	b.login()

	t.Run("add skill saves the whole list", func(t *testing.T) {
		rec := b.post("/admin/skills/items", url.Values{"index": {"0"}, "name": {"SQL"}, "level": {"70"}})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/skills", rec.Header().Get(echo.HeaderLocation))
		require.Len(t, api.savedSkills, 1)
		assert.Equal(t, []domain.Skill{{Name: "Go", Level: 90}, {Name: "SQL", Level: 70}}, api.savedSkills[0].Items)
		assert.Len(t, api.skills[0].Items, 1, "fetched list must not be mutated")
	})

	t.Run("out of range index is flashed", func(t *testing.T) {
		api.savedSkills = nil
		rec := b.post("/admin/skills/categories/5/delete", nil)
		assert.Equal(t, "/admin/skills", rec.Header().Get(echo.HeaderLocation))
		assert.Nil(t, api.savedSkills)
	})

	t.Run("invalid level is rejected before saving", func(t *testing.T) {
		rec := b.post("/admin/skills/items", url.Values{"index": {"0"}, "name": {"Rust"}, "level": {"140"}})
		assert.Equal(t, "/admin/skills", rec.Header().Get(echo.HeaderLocation))
		assert.Nil(t, api.savedSkills)
	})

	assert.Eventually(t, func() bool { return feed.Len() > 0 }, time.Second, 10*time.Millisecond)
}

func TestAboutItems(t *testing.T) {
	api := &fakeAPI{token: "tok", about: domain.AboutContent{Values: []domain.TextItem{"Craft"}}}
	b, _ := newBrowser(t, api)
	b.login()

	b.post("/admin/about/items", url.Values{"list": {"currentlyLearning"}, "text": {"Rust"}})
	require.NotNil(t, api.savedAbout)
	assert.Equal(t, []domain.TextItem{"Rust"}, api.savedAbout.CurrentlyLearning)
	assert.Equal(t, []domain.TextItem{"Craft"}, api.savedAbout.Values)

	api.savedAbout = nil
	b.post("/admin/about/items", url.Values{"list": {"hobbies"}, "text": {"Chess"}})
	assert.Nil(t, api.savedAbout)
}

func TestHTMXDelete(t *testing.T) {
	api := &fakeAPI{token: "tok"}
	b, _ := newBrowser(t, api)
	b.login()

	req := httptest.NewRequest(http.MethodDelete, "/admin/messages/42", nil)
	req.Header.Set("HX-Request", "true")
	rec := b.do(req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "/admin/messages", rec.Header().Get("HX-Redirect"))
	assert.Equal(t, []domain.ID{"42"}, api.deleted)
	assert.Contains(t, api.tokens, "tok")
}

func TestMessagesSearch(t *testing.T) {
	api := &fakeAPI{token: "tok", messages: []domain.Message{
		{ID: "1", Name: "Alice", Email: "alice@example.com", Text: "Hello"},
		{ID: "2", Name: "Bob", Email: "bob@example.com", Text: "Hi", Read: true},
	}}
	b, _ := newBrowser(t, api)
	b.login()

	rec := b.get("/admin/messages?q=alice")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Messages (1 unread)")
	assert.Contains(t, body, "alice@example.com")
	assert.NotContains(t, body, "bob@example.com")
}

func TestSettingsUpload(t *testing.T) {
	multipartBody := func(t *testing.T, content []byte) (*bytes.Buffer, string) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("author", "Ruben"))
		require.NoError(t, w.WriteField("avatarUrl", "/uploads/old.png"))
		part, err := w.CreateFormFile("avatar", "me.png")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
		require.NoError(t, w.Close())
		return &buf, w.FormDataContentType()
	}
	send := func(b *browser, body *bytes.Buffer, ct string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/admin/settings", body)
		req.Header.Set(echo.HeaderContentType, ct)
		return b.do(req)
	}

	t.Run("accepted image replaces the avatar", func(t *testing.T) {
		api := &fakeAPI{token: "tok"}
		b, _ := newBrowser(t, api)
		b.login()

		png := append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
		body, ct := multipartBody(t, png)
		rec := send(b, body, ct)
		assert.Equal(t, "/admin/settings", rec.Header().Get(echo.HeaderLocation))
		require.NotNil(t, api.savedSettings)
		assert.Equal(t, "/uploads/file.png", api.savedSettings.AvatarURL)
		assert.Equal(t, "Ruben", api.savedSettings.Author)
		assert.Equal(t, 1, api.uploads)
	})

	t.Run("rejected type never reaches the API", func(t *testing.T) {
		api := &fakeAPI{token: "tok"}
		b, _ := newBrowser(t, api)
		b.login()

		body, ct := multipartBody(t, []byte("#!/bin/sh\necho pwned\n"))
		rec := send(b, body, ct)
		assert.Equal(t, "/admin/settings", rec.Header().Get(echo.HeaderLocation))
		assert.Zero(t, api.uploads)
		assert.Nil(t, api.savedSettings)
	})
}

const projectsURL = "/admin/projects"

func multipartRequest(t *testing.T, path string, fields map[string]string, fileField, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestProjects(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

	t.Run("create with an image uploads it first", func(t *testing.T) {
		api := &fakeAPI{token: "tok"}
		b, _ := newBrowser(t, api)
		b.login()

		rec := b.do(multipartRequest(t, "/admin/projects",
			map[string]string{"title": "Site", "category": "Web", "status": "Live"}, "image", "shot.png", png))
		assert.Equal(t, projectsURL, rec.Header().Get(echo.HeaderLocation))
		require.Len(t, api.created, 1)
		assert.Equal(t, "Site", api.created[0].Title)
		assert.Equal(t, "/uploads/file.png", api.created[0].ImageURL)
		assert.Equal(t, 1, api.uploads)
	})

	t.Run("create without image keeps the given url", func(t *testing.T) {
		api := &fakeAPI{token: "tok"}
		b, _ := newBrowser(t, api)
		b.login()

		b.post("/admin/projects", url.Values{"title": {"Cli"}, "imageUrl": {"/uploads/cli.png"}})
		require.Len(t, api.created, 1)
		assert.Equal(t, "/uploads/cli.png", api.created[0].ImageURL)
		assert.Zero(t, api.uploads)
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		api := &fakeAPI{token: "tok"}
		b, _ := newBrowser(t, api)
		b.login()

		rec := b.post("/admin/projects", url.Values{"title": {"  "}})
		assert.Equal(t, projectsURL, rec.Header().Get(echo.HeaderLocation))
		assert.Empty(t, api.created)
	})

	t.Run("update and edit form", func(t *testing.T) {
		api := &fakeAPI{token: "tok", projects: []domain.Project{{ID: "7", Title: "Old"}}}
		b, _ := newBrowser(t, api)
		b.login()

		rec := b.get("/admin/projects?edit=7")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Old")

		rec = b.post("/admin/projects/7", url.Values{"title": {"New"}})
		assert.Equal(t, projectsURL, rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, []domain.ID{"7"}, api.updated)

		rec = b.get("/admin/projects?edit=99")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestCertificates(t *testing.T) {
	pdf := []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")
	fields := map[string]string{"title": "Go Expert", "issuer": "Acme", "date": "2024-05-01"}

	t.Run("file is required", func(t *testing.T) {
		api := &fakeAPI{token: "tok"}
		b, _ := newBrowser(t, api)
		b.login()

		rec := b.do(multipartRequest(t, "/admin/certificates", fields, "", "", nil))
		assert.Equal(t, "/admin/certificates", rec.Header().Get(echo.HeaderLocation))
		assert.Empty(t, api.certificates)
	})

	t.Run("disallowed type is not forwarded", func(t *testing.T) {
		api := &fakeAPI{token: "tok"}
		b, _ := newBrowser(t, api)
		b.login()

		// The test stager only allows PNG.
		b.do(multipartRequest(t, "/admin/certificates", fields, "file", "cert.pdf", pdf))
		assert.Empty(t, api.certificates)
	})
}

func TestExperienceEditing(t *testing.T) {
	api := &fakeAPI{token: "tok"}
	b, _ := newBrowser(t, api)
	b.login()

	rec := b.post("/admin/experience", url.Values{"role": {"Dev"}, "company": {"Acme"}, "startDate": {"2024-01"}})
	assert.Equal(t, "/admin/experience", rec.Header().Get(echo.HeaderLocation))
	require.Len(t, api.savedExp, 1)
	assert.Equal(t, "Dev", api.savedExp[0].Role)
	assert.Nil(t, api.savedExp[0].EndDate)

	api.savedExp = nil
	b.post("/admin/experience/impacts", url.Values{"index": {"3"}, "text": {"Shipped"}})
	assert.Nil(t, api.savedExp)
}

func TestDashboardActivity(t *testing.T) {
	api := &fakeAPI{token: "tok", projects: []domain.Project{{ID: "1", Title: "Site"}}}
	b, feed := newBrowser(t, api)
	b.login()

	b.post("/admin/projects", url.Values{"title": {"Cli"}})
	// login + create
	require.Eventually(t, func() bool { return feed.Len() == 2 }, time.Second, 10*time.Millisecond)

	rec := b.get("/admin")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "project Cli")
}

func TestUnknownAdminPage(t *testing.T) {
	b, _ := newBrowser(t, &fakeAPI{token: "tok"})
	b.login()
	rec := b.get("/admin/nope")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get(echo.HeaderLocation))
}
