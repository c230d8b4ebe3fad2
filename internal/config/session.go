package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/banshee-data/pointset/internal/fsutil"
)

// DefaultConfigPath is where the session config is looked up, relative to
// the working directory. The file is optional.
const DefaultConfigPath = "config/pointset.defaults.json"

const (
	defaultPrompt     = "> "
	defaultPlotWidth  = 6.0
	defaultPlotHeight = 6.0
	defaultPlotTitle  = "pointset"
)

// SessionConfig holds the optional settings for an interactive session.
// Fields omitted from the JSON file fall back to the defaults returned by the
// Get* accessors, so partial configs are safe.
type SessionConfig struct {
	Prompt *string `json:"prompt,omitempty"`
	Quiet  *bool   `json:"quiet,omitempty"`

	// Plot params
	PlotWidthInches  *float64 `json:"plot_width_inches,omitempty"`
	PlotHeightInches *float64 `json:"plot_height_inches,omitempty"`
	PlotTitle        *string  `json:"plot_title,omitempty"`
}

// EmptySessionConfig returns a SessionConfig with all fields set to nil.
func EmptySessionConfig() *SessionConfig {
	return &SessionConfig{}
}

// LoadSessionConfig loads a SessionConfig from a JSON file on fsys.
// The file must have a .json extension and be under 1MB.
func LoadSessionConfig(fsys fsutil.FileSystem, path string) (*SessionConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := fsys.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	f, err := fsys.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxFileSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptySessionConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config at path. A missing file yields an empty
// config and no error; any other failure is returned together with an empty
// config so the caller can log it and carry on.
func LoadOrDefault(fsys fsutil.FileSystem, path string) (*SessionConfig, error) {
	cfg, err := LoadSessionConfig(fsys, path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return EmptySessionConfig(), nil
	}
	return EmptySessionConfig(), err
}

// Validate checks that the configuration values are valid.
func (c *SessionConfig) Validate() error {
	if c.Prompt != nil && *c.Prompt == "" {
		return fmt.Errorf("prompt must not be empty")
	}
	if c.PlotWidthInches != nil && *c.PlotWidthInches <= 0 {
		return fmt.Errorf("plot_width_inches must be positive, got %f", *c.PlotWidthInches)
	}
	if c.PlotHeightInches != nil && *c.PlotHeightInches <= 0 {
		return fmt.Errorf("plot_height_inches must be positive, got %f", *c.PlotHeightInches)
	}
	return nil
}

// GetPrompt returns the prompt or the default.
func (c *SessionConfig) GetPrompt() string {
	if c.Prompt == nil {
		return defaultPrompt
	}
	return *c.Prompt
}

// GetQuiet returns the quiet value or the default.
func (c *SessionConfig) GetQuiet() bool {
	if c.Quiet == nil {
		return false
	}
	return *c.Quiet
}

// GetPlotWidthInches returns the plot_width_inches value or the default.
func (c *SessionConfig) GetPlotWidthInches() float64 {
	if c.PlotWidthInches == nil {
		return defaultPlotWidth
	}
	return *c.PlotWidthInches
}

// GetPlotHeightInches returns the plot_height_inches value or the default.
func (c *SessionConfig) GetPlotHeightInches() float64 {
	if c.PlotHeightInches == nil {
		return defaultPlotHeight
	}
	return *c.PlotHeightInches
}

// GetPlotTitle returns the plot_title value or the default.
func (c *SessionConfig) GetPlotTitle() string {
	if c.PlotTitle == nil {
		return defaultPlotTitle
	}
	return *c.PlotTitle
}
