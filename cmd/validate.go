package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/spiderkit/spider/internal/config"
)

var validateAllowEmpty bool

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the spider config without generating anything",
	Long: `Run schema and filesystem validation over the spider config and report
the first problem found. Nothing is generated.

The exit status reports validity, so the command is usable as a
pre-generation check in scripts and CI.`,
	Aliases: []string{"v"},
	Args:    cobra.NoArgs,
	RunE:    runValidateCommand,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateAllowEmpty, "allow-empty", false,
		"accept a config that declares nothing to generate")
}

func runValidateCommand(cmd *cobra.Command, args []string) error {
	fs := afero.NewOsFs()

	path, err := config.Locate(fs, cfgFile)
	if err != nil {
		return err
	}

	raw, err := config.Load(fs, path)
	if err != nil {
		return err
	}

	if err := config.Validate(fs, raw, config.Options{AllowEmpty: validateAllowEmpty}); err != nil {
		return err
	}

	cmd.Printf("%s is valid\n", path)
	return nil
}
