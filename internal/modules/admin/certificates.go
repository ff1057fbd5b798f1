package admin

import (
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/activity"
	"github.com/ruebensh/portfolio/internal/backend"
	"github.com/ruebensh/portfolio/internal/domain"
	"github.com/ruebensh/portfolio/internal/handlers"
	"github.com/ruebensh/portfolio/internal/storage"
	views "github.com/ruebensh/portfolio/web/src/templates/admin"
)

const certificatesPath = "/admin/certificates"

// CertificatesGet lists certificates with the upload form.
func (h *Handler) CertificatesGet(c echo.Context) error {
	certs, err := h.api.Certificates(c.Request().Context())
	if err != nil {
		return h.unavailable(c, "Certificates", err)
	}
	return h.render(c, "Certificates", views.Certificates(certs, h.asset))
}

// CertificateCreate uploads a certificate file together with its details.
func (h *Handler) CertificateCreate(c echo.Context) error {
	ctx := c.Request().Context()
	var in domain.CertificateInput
	if err := handlers.Bind(c, &in); err != nil {
		return h.fail(c, certificatesPath, err, MsgSaveFailed)
	}
	fh, err := optionalFile(c, "file")
	if err == nil && fh == nil {
		err = fmt.Errorf("%w: file is required", domain.ErrInvalidInput)
	}
	if err != nil {
		return h.fail(c, certificatesPath, err, MsgSaveFailed)
	}

	err = h.stager.Forward(ctx, fh, func(st *storage.Staged, body io.Reader) error {
		return h.api.CreateCertificate(ctx, token(c), in, backend.Upload{
			Filename:    st.Filename,
			ContentType: st.ContentType,
			Body:        body,
		})
	})
	if err != nil {
		return h.fail(c, certificatesPath, uploadError(err), MsgUploadFailed)
	}
	h.recorder.Record(ctx, activity.KindCreated, "certificate "+in.Title)
	return h.done(c, certificatesPath, "Certificate uploaded.")
}

// CertificateDelete removes a certificate.
func (h *Handler) CertificateDelete(c echo.Context) error {
	id := domain.ID(c.Param("id"))
	if err := h.api.DeleteCertificate(c.Request().Context(), token(c), id); err != nil {
		return h.fail(c, certificatesPath, err, "Could not delete the certificate.")
	}
	h.recorder.Record(c.Request().Context(), activity.KindDeleted, "certificate #"+id.String())
	return h.done(c, certificatesPath, MsgDeleted)
}
