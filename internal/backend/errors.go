package backend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ruebensh/portfolio/internal/domain"
)

// Error is a non-2xx response from the API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.Status)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// Is lets callers match auth and lookup failures with the domain sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case domain.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// newError reads the response body for a message. The API answers with
// {"message": "..."} or, for validation failures, {"message": ["...", "..."]}.
func newError(resp *http.Response) *Error {
	e := &Error{Status: resp.StatusCode}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload struct {
		Message json.RawMessage `json:"message"`
	}
	if json.Unmarshal(b, &payload) == nil && len(payload.Message) > 0 {
		var s string
		if json.Unmarshal(payload.Message, &s) == nil {
			e.Message = s
			return e
		}
		var list []string
		if json.Unmarshal(payload.Message, &list) == nil {
			e.Message = strings.Join(list, "; ")
			return e
		}
	}
	if text := strings.TrimSpace(string(b)); text != "" && !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "<") {
		e.Message = text
		return e
	}
	e.Message = http.StatusText(resp.StatusCode)
	return e
}
