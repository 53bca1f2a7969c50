// Package paths resolves skillcheck's configuration and data locations.
//
// It wraps github.com/adrg/xdg for XDG Base Directory compliance, so the
// default configuration file lives at ~/.config/skillcheck/config.yaml and
// backups of overwritten skill files under ~/.local/share/skillcheck/backups
// on Linux. Set SKILLCHECK_CONFIG_DIR or SKILLCHECK_DATA_DIR to use other
// directories.
package paths
