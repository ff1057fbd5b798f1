package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	// ErrTooLarge is returned for files over the configured limit.
	ErrTooLarge = errors.New("file exceeds the upload limit")
	// ErrTypeNotAllowed is returned when the sniffed type is not on the allow-list.
	ErrTypeNotAllowed = errors.New("file type is not allowed")
	// ErrEmptyFile is returned for zero-byte uploads.
	ErrEmptyFile = errors.New("file is empty")
)

// Staged is an upload that passed the checks and waits in the store.
type Staged struct {
	Path        string
	Filename    string
	ContentType string
	Size        int64
}

// Stager spools uploads into a Store, sniffs their type from the content and
// enforces the size limit and the type allow-list before anything leaves the
// site.
type Stager struct {
	store    Store
	maxBytes int64
	allowed  []string
}

// NewStager creates a stager. A maxBytes of zero disables the size check and
// an empty allow-list accepts every type.
func NewStager(store Store, maxBytes int64, allowed []string) *Stager {
	types := make([]string, 0, len(allowed))
	for _, t := range allowed {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return &Stager{store: store, maxBytes: maxBytes, allowed: types}
}

// Stage copies the upload into the store and checks it. On any failure the
// staged copy is removed.
func (s *Stager) Stage(ctx context.Context, fh *multipart.FileHeader) (*Staged, error) {
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, fh.Size, s.maxBytes)
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := filepath.Base(fh.Filename)
	staged := &Staged{
		Path:     path.Join("staging", uuid.NewString()+"-"+name),
		Filename: name,
	}

	var reader io.Reader = src
	if s.maxBytes > 0 {
		reader = io.LimitReader(src, s.maxBytes+1)
	}
	written, err := s.store.Save(ctx, staged.Path, reader)
	if err != nil {
		s.Discard(ctx, staged)
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	staged.Size = written

	if err := s.check(ctx, staged); err != nil {
		s.Discard(ctx, staged)
		return nil, err
	}
	return staged, nil
}

func (s *Stager) check(ctx context.Context, staged *Staged) error {
	if staged.Size == 0 {
		return ErrEmptyFile
	}
	if s.maxBytes > 0 && staged.Size > s.maxBytes {
		return fmt.Errorf("%w: limit %d bytes", ErrTooLarge, s.maxBytes)
	}

	f, err := s.store.Open(ctx, staged.Path)
	if err != nil {
		return fmt.Errorf("open staged upload: %w", err)
	}
	defer f.Close()
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return fmt.Errorf("detect type: %w", err)
	}
	staged.ContentType = mt.String()

	if !s.Allowed(mt) {
		return fmt.Errorf("%w: %s", ErrTypeNotAllowed, mt.String())
	}
	return nil
}

// Allowed reports whether mt or one of its parents is on the allow-list.
func (s *Stager) Allowed(mt *mimetype.MIME) bool {
	if len(s.allowed) == 0 {
		return true
	}
	for m := mt; m != nil; m = m.Parent() {
		for _, a := range s.allowed {
			if m.Is(a) {
				return true
			}
		}
	}
	return false
}

// Open reads back a staged file.
func (s *Stager) Open(ctx context.Context, staged *Staged) (io.ReadCloser, error) {
	return s.store.Open(ctx, staged.Path)
}

// Discard removes a staged file. Failures are only logged.
func (s *Stager) Discard(ctx context.Context, staged *Staged) {
	if err := s.store.Delete(ctx, staged.Path); err != nil {
		slog.WarnContext(ctx, "failed to discard staged upload", "path", staged.Path, "error", err)
	}
}

// Forward stages fh, hands the staged content to send and removes the staged
// copy afterwards. send is never called for a rejected file.
func (s *Stager) Forward(ctx context.Context, fh *multipart.FileHeader, send func(staged *Staged, body io.Reader) error) error {
	staged, err := s.Stage(ctx, fh)
	if err != nil {
		return err
	}
	defer s.Discard(ctx, staged)

	body, err := s.Open(ctx, staged)
	if err != nil {
		return fmt.Errorf("open staged upload: %w", err)
	}
	defer body.Close()
	return send(staged, body)
}
