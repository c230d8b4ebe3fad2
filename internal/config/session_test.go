package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/pointset/internal/fsutil"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestEmptySessionConfigDefaults(t *testing.T) {
	cfg := EmptySessionConfig()

	assert.Equal(t, "> ", cfg.GetPrompt())
	assert.False(t, cfg.GetQuiet())
	assert.Equal(t, 6.0, cfg.GetPlotWidthInches())
	assert.Equal(t, 6.0, cfg.GetPlotHeightInches())
	assert.Equal(t, "pointset", cfg.GetPlotTitle())
	assert.NoError(t, cfg.Validate())
}

func TestLoadSessionConfig(t *testing.T) {
	t.Run("partial config keeps defaults", func(t *testing.T) {
		path := writeConfig(t, "pointset.json", `{"prompt": "pts> ", "quiet": true}`)

		cfg, err := LoadSessionConfig(fsutil.OSFileSystem{}, path)
		require.NoError(t, err)
		assert.Equal(t, "pts> ", cfg.GetPrompt())
		assert.True(t, cfg.GetQuiet())
		assert.Equal(t, 6.0, cfg.GetPlotWidthInches())
	})

	t.Run("plot settings", func(t *testing.T) {
		path := writeConfig(t, "pointset.json", `{"plot_width_inches": 8, "plot_height_inches": 4.5, "plot_title": "scan"}`)

		cfg, err := LoadSessionConfig(fsutil.OSFileSystem{}, path)
		require.NoError(t, err)
		assert.Equal(t, 8.0, cfg.GetPlotWidthInches())
		assert.Equal(t, 4.5, cfg.GetPlotHeightInches())
		assert.Equal(t, "scan", cfg.GetPlotTitle())
	})

	t.Run("wrong extension", func(t *testing.T) {
		path := writeConfig(t, "pointset.yaml", `prompt: x`)
		_, err := LoadSessionConfig(fsutil.OSFileSystem{}, path)
		assert.ErrorContains(t, err, ".json extension")
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeConfig(t, "pointset.json", `{"prompt": `)
		_, err := LoadSessionConfig(fsutil.OSFileSystem{}, path)
		assert.ErrorContains(t, err, "failed to parse config JSON")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, "pointset.json", `{"plot_width_inches": 0}`)
		_, err := LoadSessionConfig(fsutil.OSFileSystem{}, path)
		assert.ErrorContains(t, err, "plot_width_inches must be positive")
	})
}

func TestValidate(t *testing.T) {
	empty := ""
	negative := -1.0

	tests := []struct {
		name    string
		cfg     SessionConfig
		wantErr bool
	}{
		{"empty config", SessionConfig{}, false},
		{"empty prompt", SessionConfig{Prompt: &empty}, true},
		{"negative height", SessionConfig{PlotHeightInches: &negative}, true},
		{"negative width", SessionConfig{PlotWidthInches: &negative}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		cfg, err := LoadOrDefault(fsutil.OSFileSystem{}, filepath.Join(t.TempDir(), "absent.json"))
		require.NoError(t, err)
		assert.Equal(t, "> ", cfg.GetPrompt())
	})

	t.Run("invalid file falls back to defaults", func(t *testing.T) {
		path := writeConfig(t, "pointset.json", `{"prompt": ""}`)
		cfg, err := LoadOrDefault(fsutil.OSFileSystem{}, path)
		require.Error(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "> ", cfg.GetPrompt())
	})
}

func TestLoadSessionConfigFromMemory(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	mfs.WriteFile(DefaultConfigPath, []byte(`{"prompt": "mem> "}`))

	cfg, err := LoadOrDefault(mfs, DefaultConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "mem> ", cfg.GetPrompt())

	t.Run("unreadable file reports the cause", func(t *testing.T) {
		mfs.Deny("config")
		cfg, err := LoadOrDefault(mfs, DefaultConfigPath)
		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.Equal(t, "> ", cfg.GetPrompt())
	})
}
