// Package storage persists perft results and resolves the data directories
// they live in.
package storage

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chesscore"

// EnvDataDir overrides the platform data directory when set.
const EnvDataDir = "CHESSCORE_DATA"

// GetDataDir returns the platform-specific data directory for the application,
// creating it if needed.
// - $CHESSCORE_DATA if set
// - macOS: ~/Library/Application Support/chesscore/
// - Linux: $XDG_DATA_HOME/chesscore/ or ~/.local/share/chesscore/
// - Windows: %APPDATA%/chesscore/
func GetDataDir() (string, error) {
	dataDir, err := dataDirFor(runtime.GOOS, os.Getenv, os.UserHomeDir)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// dataDirFor resolves the data directory without touching the filesystem.
func dataDirFor(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	if dir := getenv(EnvDataDir); dir != "" {
		return dir, nil
	}

	var baseDir string
	switch goos {
	case "darwin":
		homeDir, err := home()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := home()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		// Linux and other Unix-like, XDG_DATA_HOME first
		baseDir = getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := home()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	return filepath.Join(baseDir, appName), nil
}

// GetDatabaseDir returns the directory for the BadgerDB perft database.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "perft")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}

	log.Printf("Database directory: %s", dbDir)

	return dbDir, nil
}
