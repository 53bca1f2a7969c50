// Package commands implements the CLI commands for skillcheck.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/skillcheck/cmd"
	"github.com/thoreinstein/skillcheck/internal/config"
	"github.com/thoreinstein/skillcheck/internal/errors"
	"github.com/thoreinstein/skillcheck/internal/logging"
	skillvalidator "github.com/thoreinstein/skillcheck/internal/skill/validator"
	"github.com/thoreinstein/skillcheck/internal/validator"
)

// usageLine is printed when no path is given.
const usageLine = "Usage: skillcheck path/to/SKILL.md"

// debugEnv enables debug (1, true) or trace (2) logging when no -v flag is given.
const debugEnv = "SKILLCHECK_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// colorMode holds the value of the --color flag.
var colorMode string

// activeConfig is the configuration loaded by initConfig.
var activeConfig = config.Default()

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// logFileHandle is closed by Execute once the command finishes.
var logFileHandle io.Closer

// errUsage signals that no path argument was supplied.
var errUsage = errors.New("missing path argument")

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error log output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: $XDG_CONFIG_HOME/skillcheck/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "",
		"colorize the report: auto, always, never (default from config)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("skillcheck version {{.Version}}\n")

	// Errors are printed by Execute
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, err := config.Load(configFile)
	configLoadErr = err
	if err != nil {
		cfg = config.Default()
	}
	activeConfig = cfg
}

var rootCmd = &cobra.Command{
	Use:   "skillcheck <path/to/SKILL.md>",
	Short: "Lint a skill definition file",
	Long: `skillcheck lint-checks a single SKILL.md file: a "---" delimited
frontmatter block followed by Markdown instructions.

Errors (missing frontmatter, missing name or description, malformed name,
body shorter than 100 characters) fail the check. Warnings (short
description, missing trigger phrase or license, missing recommended
sections, numbered steps, code examples or success criteria) are reported
but never fail it.

A file whose name matches a subcommand (init, backup, config, version,
help) must be given with a path prefix, e.g. ./init.

Exit codes:
  0 - No errors (warnings allowed)
  1 - Validation errors, missing or unreadable file, or missing argument`,
	Example: `  # Check a skill
  skillcheck skills/pdf-extractor/SKILL.md

  # Show which checks fired
  skillcheck -vv SKILL.md

  # Scaffold a new skill that passes every check
  skillcheck init skills/my-skill`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Only a file named with --config is fatal; a broken file found in
		// the config directory falls back to defaults.
		if configLoadErr != nil && configFile != "" && cmd.Name() != "version" {
			return errors.NewConfigError(configLoadErr)
		}
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if configLoadErr != nil && configFile == "" {
			logging.FromContext(cmd.Context()).Warn("ignoring invalid config, using defaults",
				"path", viper.ConfigFileUsed(), "error", configLoadErr)
		}
		return applyColor(cmd)
	},
	RunE: runCheck,
}

// runCheck validates the file named by args[0] and prints the report.
func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return errors.NewReportedError(errUsage, errors.ExitUser)
	}
	path := args[0]
	logger := logging.FromContext(cmd.Context())

	v := skillvalidator.New(skillvalidator.WithLogger(logger))
	result, err := v.ValidateFile(path)
	if err != nil {
		return reportUnreadable(cmd, path, err)
	}

	if err := validator.NewReporter(cmd.OutOrStdout()).Report(path, result); err != nil {
		return errors.NewSystemError(err, "")
	}

	logger.Info("validation finished",
		"path", path,
		"errors", len(result.Errors()),
		"warnings", len(result.Warnings()))

	if !result.Passed() {
		return errors.NewReportedError(errors.ErrValidationFailed, errors.ExitUser)
	}
	return nil
}

// reportUnreadable prints the "File not found" line for any path that could
// not be read and returns the matching reported error.
func reportUnreadable(cmd *cobra.Command, path string, err error) error {
	logging.FromContext(cmd.Context()).Debug("cannot read skill file", "path", path, "error", err)
	fmt.Fprintf(cmd.ErrOrStderr(), "File not found: %s\n", path)
	return errors.NewReportedError(err, errors.ExitUser)
}

// setupLogging configures the default logger based on flags, environment and config.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pass only one of -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			switch os.Getenv(debugEnv) {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logging.Format(activeConfig.LogFormat)
	if cmd.Flags().Changed("log-format") {
		format = logging.Format(logFormat)
	}
	if format != logging.FormatText && format != logging.FormatJSON {
		return errors.NewUserError(errors.Newf("invalid log format %q", format), "Use --log-format text or json")
	}

	opts := &slog.HandlerOptions{Level: level}
	handler := logging.NewFormatHandler(cmd.ErrOrStderr(), format, opts)

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		logFileHandle = f
		handler = logging.NewMultiHandler(handler, slog.NewJSONHandler(f, opts))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// applyColor sets report colorization from --color or the config file.
func applyColor(cmd *cobra.Command) error {
	mode := activeConfig.Color
	if cmd.Flags().Changed("color") {
		mode = colorMode
	}

	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	case config.ColorAuto, "":
		color.NoColor = !logging.SupportsColor(cmd.OutOrStdout())
	default:
		return errors.NewUserError(errors.Newf("invalid color mode %q", mode), "Use --color auto, always or never")
	}
	return nil
}

// Execute runs the root command and prints any unreported error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if logFileHandle != nil {
		_ = logFileHandle.Close()
		logFileHandle = nil
	}
	if err == nil {
		return nil
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Reported {
		return err
	}

	stderr := rootCmd.ErrOrStderr()
	fmt.Fprintf(stderr, "Error: %v\n", err)
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(stderr, "%s\n", exitErr.Suggestion)
	}
	return err
}
