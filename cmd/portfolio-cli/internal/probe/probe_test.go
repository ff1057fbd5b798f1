package probe_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ruebensh/portfolio/cmd/portfolio-cli/internal/probe"
	"github.com/ruebensh/portfolio/internal/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/about" {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		if r.URL.Path == "/settings" {
			_, _ = w.Write([]byte(`{}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer api.Close()

	results := probe.Run(context.Background(), probe.Endpoints(backend.New(api.URL, time.Second)))
	require.Len(t, results, 6)
	assert.Equal(t, "projects", results[0].Name)
	assert.Equal(t, 1, probe.Failed(results))

	var about probe.Result
	for _, r := range results {
		if r.Name == "about" {
			about = r
		}
	}
	assert.False(t, about.OK)
	assert.Contains(t, about.Error, "503")

	var buf bytes.Buffer
	probe.WriteTable(&buf, results)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 8)
	assert.Contains(t, buf.String(), "FAIL")
}
