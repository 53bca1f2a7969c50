// Package backup keeps copies of skill files before they are overwritten.
//
// Each backup is a directory named after its UTC creation time holding the
// copied file and a manifest.yaml with the original path, permissions and a
// SHA256 hash:
//
//	~/.local/share/skillcheck/backups/
//	└── 20260123T100712.000000000/
//	    ├── manifest.yaml
//	    └── SKILL.md
//
// [Manager.Save] prunes to the newest [DefaultRetentionCount] backups after
// every save. [Manager.Restore] refuses to write a copy whose hash no longer
// matches its manifest.
//
//	mgr := backup.NewManager()
//	manifest, err := mgr.Save("skills/pdf/SKILL.md")
//	...
//	_, err = mgr.Restore(manifest.ID)
package backup
