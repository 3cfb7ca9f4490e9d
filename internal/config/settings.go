package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings represents the structure of ~/.svnbranch/settings.json
type Settings struct {
	Debug          *bool  `json:"debug,omitempty"`
	MaxLogFiles    *int   `json:"max_log_files,omitempty"`
	NonInteractive *bool  `json:"non_interactive,omitempty"`
	Password       string `json:"password,omitempty"`
	SvnBinary      string `json:"svn_binary,omitempty"`
	SvnmuccBinary  string `json:"svnmucc_binary,omitempty"`
	Username       string `json:"username,omitempty"`
}

// LoadSettings loads settings from $SVNBRANCH_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.SvnBinary != "" {
		settings.SvnBinary = ExpandPath(settings.SvnBinary)
	}
	if settings.SvnmuccBinary != "" {
		settings.SvnmuccBinary = ExpandPath(settings.SvnmuccBinary)
	}

	return &settings, nil
}

// SaveSettings saves settings to $SVNBRANCH_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// BoolValue returns the pointed-to value or the fallback when unset
func BoolValue(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// IntValue returns the pointed-to value or the fallback when unset
func IntValue(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
