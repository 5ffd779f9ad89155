// ABOUTME: Standard filesystem paths for dsviz configuration and data
// ABOUTME: Resolves ~/.dsviz/ for global and .dsviz/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".dsviz"
	projectDirName = ".dsviz"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.dsviz/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.dsviz/ in root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}

// ThemesDir returns the directory searched for <name>.yaml theme files.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}

// LogFile returns the default debug log location.
func LogFile() string {
	return filepath.Join(GlobalDir(), "dsviz.log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
