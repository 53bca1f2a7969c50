package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/skillcheck/internal/errors"
	"github.com/thoreinstein/skillcheck/internal/paths"
	"github.com/thoreinstein/skillcheck/pkg/fileutil"
)

// idLayout names backup directories. Sub-second precision keeps two saves
// in the same second apart.
const idLayout = "20060102T150405.000000000"

// Manager saves, restores and prunes copies of skill files.
type Manager struct {
	rootDir        string
	retentionCount int
	now            func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithBackupDir sets the root backup directory.
func WithBackupDir(dir string) Option {
	return func(m *Manager) {
		m.rootDir = dir
	}
}

// WithRetentionCount sets the number of backups Save keeps.
func WithRetentionCount(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retentionCount = n
		}
	}
}

// NewManager creates a new backup Manager with the given options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		rootDir:        paths.BackupDir(),
		retentionCount: DefaultRetentionCount,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Save copies the file at path into a new backup directory, writes its
// manifest, and prunes backups beyond the retention count.
func (m *Manager) Save(path string) (*Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolving path")
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Newf("%s is not a regular file", path)
	}

	data, err := fileutil.ReadRegularFile(abs)
	if err != nil {
		return nil, err
	}

	created := m.now().UTC()
	id := created.Format(idLayout)
	dir := filepath.Join(m.rootDir, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating backup directory")
	}

	manifest := &Manifest{
		Version:      ManifestVersion,
		CreatedAt:    created,
		OriginalPath: abs,
		FileName:     filepath.Base(abs),
		SHA256:       hashBytes(data),
		Mode:         info.Mode().Perm(),
		ID:           id,
	}

	if err := fileutil.AtomicWriteFile(filepath.Join(dir, manifest.FileName), data, manifest.Mode); err != nil {
		return nil, errors.Wrap(err, "copying file")
	}
	if err := writeManifest(filepath.Join(dir, manifestName), manifest); err != nil {
		return nil, err
	}

	if err := m.Prune(m.retentionCount); err != nil {
		return nil, err
	}
	return manifest, nil
}

// Restore writes the saved copy back to its original location after
// verifying its hash.
func (m *Manager) Restore(id string) (*Manifest, error) {
	manifest, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	data, err := fileutil.ReadRegularFile(m.CopyPath(*manifest))
	if err != nil {
		return nil, errors.Wrap(err, "reading backup copy")
	}
	if hashBytes(data) != manifest.SHA256 {
		return nil, errors.Wrapf(ErrBackupCorrupted, "backup %s hash mismatch", id)
	}

	if err := os.MkdirAll(filepath.Dir(manifest.OriginalPath), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating parent directory")
	}
	if err := fileutil.AtomicWriteFile(manifest.OriginalPath, data, manifest.Mode); err != nil {
		return nil, errors.Wrapf(err, "restoring %s", manifest.OriginalPath)
	}
	return manifest, nil
}

// List returns all backups, newest first.
func (m *Manager) List() ([]Manifest, error) {
	entries, err := os.ReadDir(m.rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoBackupsFound
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	manifests := make([]Manifest, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest, err := m.Get(entry.Name())
		if err != nil {
			// Skip directories without a readable manifest
			continue
		}
		manifests = append(manifests, *manifest)
	}

	if len(manifests) == 0 {
		return nil, ErrNoBackupsFound
	}

	slices.SortFunc(manifests, func(a, b Manifest) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return manifests, nil
}

// Prune removes all but the newest keep backups.
func (m *Manager) Prune(keep int) error {
	if keep < 0 {
		return errors.New("keep must be non-negative")
	}

	manifests, err := m.List()
	if err != nil {
		if errors.Is(err, ErrNoBackupsFound) {
			return nil
		}
		return err
	}

	for i := keep; i < len(manifests); i++ {
		if err := os.RemoveAll(filepath.Join(m.rootDir, manifests[i].ID)); err != nil {
			return errors.Wrapf(err, "removing backup %s", manifests[i].ID)
		}
	}
	return nil
}

// CopyPath returns where the saved copy described by manifest is stored.
func (m *Manager) CopyPath(manifest Manifest) string {
	return filepath.Join(m.rootDir, manifest.ID, manifest.FileName)
}

// Get loads the manifest of one backup.
func (m *Manager) Get(id string) (*Manifest, error) {
	if id == "" {
		return nil, errors.New("backup ID is required")
	}
	if filepath.Base(id) != id || id == "." || id == ".." {
		return nil, errors.Wrapf(ErrInvalidID, "%q", id)
	}

	data, err := os.ReadFile(filepath.Join(m.rootDir, id, manifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNoBackupsFound, "backup %s", id)
		}
		return nil, errors.Wrap(err, "reading manifest")
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}
	manifest.ID = id
	return &manifest, nil
}

func writeManifest(path string, manifest *Manifest) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return errors.Wrap(err, "encoding manifest")
	}
	if err := fileutil.AtomicWriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "writing manifest")
	}
	return nil
}

func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
