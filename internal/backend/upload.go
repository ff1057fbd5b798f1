package backend

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/ruebensh/portfolio/internal/domain"
)

// Upload is a file to forward to the API. ContentType should be the sniffed
// type, not the one the browser claimed.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// UploadFile stores a file on the API's static root and returns its path.
func (c *Client) UploadFile(ctx context.Context, token string, up Upload) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.sendMultipart(ctx, "/upload/file", token, nil, up, &out); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", fmt.Errorf("upload response carried no url")
	}
	return out.URL, nil
}

// CreateCertificate creates a certificate record together with its file.
func (c *Client) CreateCertificate(ctx context.Context, token string, in domain.CertificateInput, up Upload) error {
	fields := [][2]string{
		{"title", strings.TrimSpace(in.Title)},
		{"issuer", strings.TrimSpace(in.Issuer)},
		{"date", in.Date},
		{"description", strings.TrimSpace(in.Description)},
	}
	return c.sendMultipart(ctx, "/certificates/admin", token, fields, up, nil)
}

// sendMultipart streams fields and the file as multipart/form-data under the
// form field "file".
func (c *Client) sendMultipart(ctx context.Context, path, token string, fields [][2]string, up Upload, out any) error {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeMultipart(mw, fields, up))
	}()
	defer pr.Close()

	return c.do(ctx, call{
		method:      http.MethodPost,
		path:        path,
		token:       token,
		contentType: mw.FormDataContentType(),
		body:        pr,
	}, out)
}

func writeMultipart(mw *multipart.Writer, fields [][2]string, up Upload) error {
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return err
		}
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(up.Filename)))
	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, up.Body); err != nil {
		return fmt.Errorf("copy upload: %w", err)
	}
	return mw.Close()
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// escapeQuotes matches the escaping multipart.Writer.CreateFormFile applies.
func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
