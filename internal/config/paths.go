package config

import (
	"os"
	"path/filepath"
)

// GetHome returns SVNBRANCH_HOME or the ~/.svnbranch default
func GetHome() string {
	home := os.Getenv("SVNBRANCH_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".svnbranch"
		}
		return filepath.Join(homeDir, ".svnbranch")
	}
	return ExpandPath(home)
}

// GetDBPath returns $SVNBRANCH_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetSettingsPath returns $SVNBRANCH_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetPolicyPath returns $SVNBRANCH_HOME/policy.yaml
func GetPolicyPath() string {
	return filepath.Join(GetHome(), "policy.yaml")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
