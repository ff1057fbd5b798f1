// Package testutils builds configuration for tests that start the whole
// server.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/ruebensh/portfolio/internal/config"
)

// TestSessionSecret signs session cookies in tests.
const TestSessionSecret = "a-very-secret-key-for-testing-!"

// ConfigForTests returns a config pointing at apiURL. The environment is set
// with t.Setenv so it is restored after the test; values from a .env.test
// file at the project root, when one exists, take precedence over the
// defaults but not over apiURL.
func ConfigForTests(t *testing.T, apiURL string) *config.Config {
	t.Helper()

	defaults := map[string]string{
		"ADDR":                 ":0",
		"SITE_TITLE":           "Test Portfolio",
		"SESSION_SECRET":       TestSessionSecret,
		"BACKEND_TIMEOUT":      "2s",
		"UPLOAD_MAX_BYTES":     "1048576",
		"UPLOAD_ALLOWED_TYPES": "image/png,application/pdf",
		"UPLOAD_DIR":           "",
		"TRACING_ENABLED":      "false",
	}
	if root, ok := projectRoot(); ok {
		if env, err := godotenv.Read(filepath.Join(root, ".env.test")); err == nil {
			for key, value := range env {
				defaults[key] = value
			}
		}
	}
	defaults["API_BASE_URL"] = apiURL

	for key, value := range defaults {
		t.Setenv(key, value)
	}

	cfg, err := config.Parse()
	if err != nil {
		t.Fatalf("failed to parse test config: %v", err)
	}
	return cfg
}

// projectRoot walks up from the working directory to the directory holding
// go.mod.
func projectRoot() (string, bool) {
	path, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, true
		}
		if path == filepath.Dir(path) {
			return "", false
		}
		path = filepath.Dir(path)
	}
}
