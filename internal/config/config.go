// Package config handles updater settings parsing and location resolution.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Settings controls where the updater looks for releases and how.
type Settings struct {
	// Owner and Repo name the release registry to poll.
	Owner string `yaml:"owner" toml:"owner" json:"owner"`
	Repo  string `yaml:"repo" toml:"repo" json:"repo"`

	// Branch is the remote branch the source-checkout fallback syncs with.
	Branch string `yaml:"branch" toml:"branch" json:"branch"`

	// TimeoutSeconds bounds the release feed request.
	TimeoutSeconds int `yaml:"timeout_seconds" toml:"timeout_seconds" json:"timeout_seconds"`

	// ManualURL is shown to the user when no automatic artifact matches.
	ManualURL string `yaml:"manual_url,omitempty" toml:"manual_url,omitempty" json:"manual_url,omitempty"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Owner:          "redjoy12",
		Repo:           "Work-Logger",
		Branch:         "main",
		TimeoutSeconds: 10,
		ManualURL:      "https://github.com/redjoy12/Work-Logger/releases/latest",
	}
}

// Format represents the file format of a settings file.
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatTOML
	FormatJSON
)

// Load reads settings from path. An empty path searches the default
// locations; a missing file yields the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (Settings, error) {
	settings := Default()

	if path == "" {
		path = findDefault()
		if path == "" {
			return settings, nil
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}

	switch detectFormat(path, content) {
	case FormatTOML:
		err = toml.Unmarshal(content, &settings)
	case FormatJSON:
		err = json.Unmarshal(content, &settings)
	default:
		err = yaml.Unmarshal(content, &settings)
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	if settings.TimeoutSeconds <= 0 {
		settings.TimeoutSeconds = Default().TimeoutSeconds
	}

	return settings, nil
}

// findDefault returns the first existing settings file under ~/.worklogger.
func findDefault() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"updater.toml", "updater.yaml", "updater.yml", "updater.json"} {
		candidate := filepath.Join(home, ".worklogger", name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// detectFormat determines the file format based on extension or content.
func detectFormat(path string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	}

	// Content sniffing for extensionless files
	return sniffFormat(content)
}

// sniffFormat attempts to detect format from content.
func sniffFormat(content []byte) Format {
	trimmed := strings.TrimSpace(string(content))

	// JSON starts with { or [
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return FormatJSON
	}

	// TOML assignments use bare "key = value" lines
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, "=") && !strings.Contains(line, ":") {
			return FormatTOML
		}
		break
	}

	return FormatYAML
}
