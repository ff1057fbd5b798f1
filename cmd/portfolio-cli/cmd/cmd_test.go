package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ruebensh/portfolio/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestResolveCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out := run(t, "resolve", "#/project/42", "--format", "text")
		assert.Contains(t, out, "path: /project/42")
		assert.Contains(t, out, "name: project")
		assert.Contains(t, out, "param slug: 42")
	})

	t.Run("json", func(t *testing.T) {
		out := run(t, "resolve", "#/nowhere", "--format", "json")
		var route router.Route
		require.NoError(t, json.Unmarshal([]byte(out), &route))
		assert.Equal(t, "/", route.Path)
		assert.Equal(t, router.Home, route.Name)
	})
}

func TestVersionCommand(t *testing.T) {
	assert.Contains(t, run(t, "version"), "Portfolio CLI v")
}
