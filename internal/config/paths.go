package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirName is the name of the emograph directory in a project root or the
// user's home directory.
const DirName = ".emograph"

// FileName is the name of the config file inside DirName.
const FileName = "config.yaml"

// LexiconFileName is where init exports the default lexicon.
const LexiconFileName = "lexicon.yaml"

// GlobalPath returns the path to the global .emograph directory.
// On Unix: ~/.emograph
// On Windows: %USERPROFILE%\.emograph
func GlobalPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, DirName), nil
}

// LocalPath returns the path to the .emograph directory for the given
// project root.
func LocalPath(projectRoot string) string {
	return filepath.Join(projectRoot, DirName)
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}
