package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "skillcheck"

// ConfigDirEnv overrides the configuration directory when set.
const ConfigDirEnv = "SKILLCHECK_CONFIG_DIR"

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the skillcheck configuration directory.
// The SKILLCHECK_CONFIG_DIR environment variable takes precedence over
// <ConfigHome>/skillcheck.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default configuration file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DataDirEnv overrides the data directory when set.
const DataDirEnv = "SKILLCHECK_DATA_DIR"

// DataDir returns the skillcheck data directory.
// The SKILLCHECK_DATA_DIR environment variable takes precedence over
// <xdg.DataHome>/skillcheck.
func DataDir() string {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(xdg.DataHome, AppName)
}

// BackupDir returns the directory holding copies of overwritten skill files.
func BackupDir() string {
	return filepath.Join(DataDir(), "backups")
}
