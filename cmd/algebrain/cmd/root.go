package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/voodooEntity/algebrain"
)

var settingsFile string

var rootCmd = &cobra.Command{
	Use:   "algebrain",
	Short: "Inspect the algebrain structure catalogue",
	Long: `Inspect the algebrain structure catalogue.

Builds an engine with the builtin Monoid/Group instances and lets you
list its contents, resolve an instance for given operand types or audit
the registry for ambiguities.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "path to a YAML settings file")
}

// newEngine builds the engine the subcommands inspect. Settings from the
// optional file win, the logger always goes to stderr to keep command
// output clean.
func newEngine() (*algebrain.Engine, error) {
	settings := algebrain.Settings{}
	if settingsFile != "" {
		loaded, err := algebrain.LoadSettings(settingsFile)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}
	settings.Logger = log.New(os.Stderr, "", 0)
	return algebrain.New(settings), nil
}
