package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillcheck/internal/backup"
	"github.com/thoreinstein/skillcheck/internal/cli/prompt"
	"github.com/thoreinstein/skillcheck/internal/errors"
	"github.com/thoreinstein/skillcheck/internal/logging"
)

func init() {
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "List and restore skill files replaced by init",
	Long: `skillcheck init saves the SKILL.md it replaces. The newest 5 copies are
kept under $XDG_DATA_HOME/skillcheck/backups.`,
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved copies, newest first",
	Args:  cobra.NoArgs,
	RunE:  runBackupList,
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore [id]",
	Short: "Write a saved copy back to its original path",
	Long: `Write a saved copy back to its original path.

Without an ID, and when run in a terminal, a fuzzy finder lists the saved
copies with a preview of each.`,
	Example: `  skillcheck backup list
  skillcheck backup restore 20260123T100712.000000000

  # Pick interactively
  skillcheck backup restore`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackupRestore,
}

func runBackupList(cmd *cobra.Command, _ []string) error {
	manifests, err := backup.NewManager().List()
	if errors.Is(err, backup.ErrNoBackupsFound) {
		fmt.Fprintln(cmd.OutOrStdout(), "No backups found.")
		return nil
	}
	if err != nil {
		return errors.NewSystemError(err, "")
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tPATH")
	for _, m := range manifests {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, m.CreatedAt.Local().Format("2006-01-02 15:04:05"), m.OriginalPath)
	}
	return errors.Wrap(w.Flush(), "writing backup list")
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	mgr := backup.NewManager()

	var id string
	if len(args) == 1 {
		id = args[0]
	} else {
		picked, err := pickBackup(cmd, mgr)
		if errors.Is(err, prompt.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
		id = picked
	}

	manifest, err := mgr.Restore(id)
	if err != nil {
		if errors.Is(err, backup.ErrNoBackupsFound) || errors.Is(err, backup.ErrInvalidID) {
			return errors.NewUserError(err, "Run: skillcheck backup list")
		}
		return errors.NewSystemError(err, "")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Restored %s\n", manifest.OriginalPath)
	return nil
}

// pickBackup lets the user choose a backup in a fuzzy finder.
func pickBackup(cmd *cobra.Command, mgr *backup.Manager) (string, error) {
	if !logging.IsTTY(cmd.InOrStdin()) {
		return "", errors.NewUserError(errors.New("backup ID is required"), "Run: skillcheck backup list")
	}

	manifests, err := mgr.List()
	if err != nil {
		if errors.Is(err, backup.ErrNoBackupsFound) {
			return "", errors.NewUserError(err, "")
		}
		return "", errors.NewSystemError(err, "")
	}

	idx, err := prompt.Pick(manifests,
		func(m backup.Manifest) string {
			return fmt.Sprintf("%s  %s", m.CreatedAt.Local().Format("2006-01-02 15:04:05"), m.OriginalPath)
		},
		func(m backup.Manifest) string {
			data, err := os.ReadFile(mgr.CopyPath(m))
			if err != nil {
				return err.Error()
			}
			return string(data)
		})
	if err != nil {
		return "", err
	}
	return manifests[idx].ID, nil
}
