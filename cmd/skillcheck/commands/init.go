package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillcheck/internal/backup"
	"github.com/thoreinstein/skillcheck/internal/cli/prompt"
	"github.com/thoreinstein/skillcheck/internal/editor"
	"github.com/thoreinstein/skillcheck/internal/errors"
	"github.com/thoreinstein/skillcheck/internal/logging"
	skillvalidator "github.com/thoreinstein/skillcheck/internal/skill/validator"
	"github.com/thoreinstein/skillcheck/internal/validator"
	"github.com/thoreinstein/skillcheck/pkg/fileutil"
	"github.com/thoreinstein/skillcheck/pkg/frontmatter"
)

// skillFileName is the file created inside the skill directory.
const skillFileName = "SKILL.md"

var (
	initName        string
	initDescription string
	initLicense     string
	initForce       bool
	initEdit        bool
)

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "skill name (default: derived from directory)")
	initCmd.Flags().StringVarP(&initDescription, "description", "d", "", "skill description, ideally with a \"Use this when\" trigger")
	initCmd.Flags().StringVar(&initLicense, "license", "MIT", "license; empty to omit")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing SKILL.md")
	initCmd.Flags().BoolVarP(&initEdit, "edit", "e", false, "open the new file in $EDITOR, then check it again")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <dir>",
	Short: "Scaffold a SKILL.md that passes every check",
	Long: `Create <dir>/SKILL.md with frontmatter and every recommended section.

The generated file is validated before it is written. Errors (for example an
uppercase --name) abort without writing; warnings (for example a short
--description) are printed and the file is still written.

If SKILL.md already exists, init asks before overwriting when run in a
terminal and refuses otherwise; --force skips the question. The previous
file is saved first and can be brought back with "skillcheck backup restore".

With --edit the file is opened in $EDITOR (falling back to $VISUAL, nano,
vi) and checked again once the editor exits.`,
	Example: `  # Scaffold with defaults derived from the directory name
  skillcheck init skills/pdf-extractor

  # Provide metadata explicitly
  skillcheck init skills/pdf --name pdf-extractor \
    -d "Extracts text from PDFs. Use this when a user shares a PDF."

  # Scaffold, fill it in, and see the report
  skillcheck init skills/my-skill --edit`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

// skillMeta is the frontmatter written by init. Field order is output order.
type skillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	License     string `yaml:"license,omitempty"`
}

// nameSanitizer matches runs of characters that do not belong in a skill name.
var nameSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

// sanitizeName derives a lowercase, hyphenated name from a directory name.
func sanitizeName(dir string) string {
	name := nameSanitizer.ReplaceAllString(strings.ToLower(dir), "-")
	name = strings.Trim(name, "-")
	if name == "" {
		return "new-skill"
	}
	return name
}

func runInit(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())

	dir, err := filepath.Abs(args[0])
	if err != nil {
		return errors.Wrap(err, "resolving path")
	}

	name := initName
	if name == "" {
		name = sanitizeName(filepath.Base(dir))
	}
	description := initDescription
	if description == "" {
		description = fmt.Sprintf("Describe what %s does. Use this when the task matches its purpose.", name)
	}

	content, err := frontmatter.Format(skillMeta{
		Name:        name,
		Description: description,
		License:     initLicense,
	}, skillBody(name))
	if err != nil {
		return errors.NewSystemError(err, "")
	}

	result := skillvalidator.New(skillvalidator.WithLogger(logger)).Validate(string(content))
	if !result.Passed() {
		_ = validator.NewReporter(cmd.ErrOrStderr()).Report(filepath.Join(args[0], skillFileName), result)
		return errors.NewReportedError(errors.ErrValidationFailed, errors.ExitUser)
	}
	for _, w := range result.Warnings() {
		logger.Warn("scaffold warning", "field", w.Field, "message", w.Message)
	}

	skillFile := filepath.Join(dir, skillFileName)
	if _, err := os.Stat(skillFile); err == nil {
		if !initForce && !confirmOverwrite(cmd, skillFile) {
			return errors.NewUserError(
				errors.Wrap(errors.ErrAlreadyExists, skillFile),
				"Use --force to overwrite")
		}
		manifest, err := backup.NewManager().Save(skillFile)
		if err != nil {
			return errors.NewSystemError(errors.Wrap(err, "backing up existing file"), "")
		}
		logger.Info("saved previous version", "backup", manifest.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "Saved previous version as backup %s\n", manifest.ID)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "creating directory"), "")
	}
	if err := fileutil.AtomicWriteFile(skillFile, content, 0o644); err != nil {
		return errors.NewSystemError(err, "")
	}

	logger.Info("wrote skill", "path", skillFile)
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", skillFile)

	if !initEdit {
		return nil
	}
	return editAndRecheck(cmd, skillFile)
}

// confirmOverwrite asks whether to replace an existing file. Without a
// terminal on stdin the answer is no.
func confirmOverwrite(cmd *cobra.Command, path string) bool {
	in := cmd.InOrStdin()
	if !logging.IsTTY(in) {
		return false
	}
	ok, err := prompt.NewConfirmer(in, cmd.ErrOrStderr()).Confirm(path + " exists. Overwrite?")
	if err != nil {
		logging.FromContext(cmd.Context()).Debug("overwrite prompt", "error", err)
		return false
	}
	return ok
}

// editAndRecheck opens path in the user's editor and reports on the result.
func editAndRecheck(cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	logger.Debug("opening editor", "editor", editor.Detect(), "path", path)

	err := editor.Open(ctx, path, editor.Streams{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	})
	if err != nil {
		return errors.NewUserError(err, "Set $EDITOR to an installed editor")
	}

	result, err := skillvalidator.New(skillvalidator.WithLogger(logger)).ValidateFile(path)
	if err != nil {
		return reportUnreadable(cmd, path, err)
	}
	if err := validator.NewReporter(cmd.OutOrStdout()).Report(path, result); err != nil {
		return errors.NewSystemError(err, "")
	}
	if !result.Passed() {
		return errors.NewReportedError(errors.ErrValidationFailed, errors.ExitUser)
	}
	return nil
}

// skillBody returns the Markdown body for a new skill. It contains every
// section the checks look for.
func skillBody(name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", name)
	sb.WriteString("## When to Use\n\n")
	sb.WriteString("Describe the requests or situations that should trigger this skill.\n\n")
	sb.WriteString("## Process\n\n")
	sb.WriteString("1. Gather the inputs the task needs.\n")
	sb.WriteString("2. Perform the work step by step.\n")
	sb.WriteString("3. Check the result against the success criteria.\n\n")
	sb.WriteString("## Examples\n\n")
	sb.WriteString("```bash\n")
	fmt.Fprintf(&sb, "# invoke %s here\n", name)
	sb.WriteString("```\n\n")
	sb.WriteString("## Success Criteria\n\n")
	sb.WriteString("The task is complete when the output matches the request.\n")
	return sb.String()
}
