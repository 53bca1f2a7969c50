package commands

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/skillcheck/internal/errors"
)

// configShowFormat holds the value of the config show --format flag.
var configShowFormat string

func init() {
	configShowCmd.Flags().StringVar(&configShowFormat, "format", "yaml", "output format: yaml, toml")
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect skillcheck configuration",
	Long: `Inspect the configuration skillcheck runs with.

Configuration is read from $XDG_CONFIG_HOME/skillcheck/config.yaml (or the
file named by --config) and can be overridden with SKILLCHECK_* environment
variables. An invalid file found there is ignored with a warning. It only affects presentation (colors, log format);
checks and messages are fixed.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Example: `  skillcheck config show
  skillcheck config show --format toml
  SKILLCHECK_COLOR=never skillcheck config show`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	var (
		data []byte
		err  error
	)
	switch configShowFormat {
	case "yaml":
		data, err = yaml.Marshal(activeConfig)
	case "toml":
		data, err = toml.Marshal(activeConfig)
	default:
		return errors.NewUserError(errors.Newf("invalid format %q", configShowFormat), "Use --format yaml or toml")
	}
	if err != nil {
		return errors.NewSystemError(errors.Wrap(err, "encoding config"), "")
	}

	source := viper.ConfigFileUsed()
	if source == "" || configLoadErr != nil {
		source = "defaults"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return errors.Wrap(err, "writing config")
}
