package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRegistry_GetProfiles(t *testing.T) {
	path := writeFile(t, "config", `
[default]
region = us-east-1

[profile dev]
region = us-west-2

[profile billing]
region = us-east-1
output = json
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "dev", "billing"}, profiles)
}

func TestRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestLoadSettings(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		settings, err := LoadSettings("")
		require.NoError(t, err)
		assert.Equal(t, 90, settings.WindowDays)
		assert.Equal(t, 4, settings.FanOut)
		assert.Equal(t, "localhost:8080", settings.Server.Addr)
		assert.Empty(t, settings.Tags)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeFile(t, "radar.yaml", `
window_days: 30
fan_out: 2
tags:
  Environment: Production
  Owner: FinanceTeam
server:
  addr: ":9090"
`)

		settings, err := LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, 30, settings.WindowDays)
		assert.Equal(t, 2, settings.FanOut)
		assert.Equal(t, ":9090", settings.Server.Addr)
		assert.Equal(t, map[string]string{
			"Environment": "Production",
			"Owner":       "FinanceTeam",
		}, settings.Tags)
	})

	t.Run("tag key casing is preserved", func(t *testing.T) {
		path := writeFile(t, "radar.yaml", `
tags:
  Environment: Production
  CostCenter: "1042"
  team: platform
`)

		settings, err := LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"Environment": "Production",
			"CostCenter":  "1042",
			"team":        "platform",
		}, settings.Tags)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		path := writeFile(t, "radar.yaml", "window_days: 14\n")

		settings, err := LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, 14, settings.WindowDays)
		assert.Equal(t, 4, settings.FanOut)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
