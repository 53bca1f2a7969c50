package backup

import (
	"io/fs"
	"time"

	"github.com/thoreinstein/skillcheck/internal/errors"
)

// ManifestVersion is the manifest format version.
const ManifestVersion = 1

// DefaultRetentionCount is the number of backups kept by default.
const DefaultRetentionCount = 5

// manifestName is the manifest file inside each backup directory.
const manifestName = "manifest.yaml"

// Sentinel errors for backup operations.
var (
	// ErrNoBackupsFound indicates the backup directory holds no backups.
	ErrNoBackupsFound = errors.New("no backups found")

	// ErrInvalidID indicates a backup ID that is not a plain directory name.
	ErrInvalidID = errors.New("invalid backup ID")

	// ErrBackupCorrupted indicates the stored copy no longer matches its hash.
	ErrBackupCorrupted = errors.New("backup corrupted")
)

// Manifest describes one saved copy of a skill file.
// It is stored as manifest.yaml next to the copy.
type Manifest struct {
	Version      int         `yaml:"version"`
	CreatedAt    time.Time   `yaml:"created_at"`
	OriginalPath string      `yaml:"original_path"`
	FileName     string      `yaml:"file_name"`
	SHA256       string      `yaml:"sha256"`
	Mode         fs.FileMode `yaml:"mode"`

	// ID is the backup directory name. Populated on load.
	ID string `yaml:"-"`
}
