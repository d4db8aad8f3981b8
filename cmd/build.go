package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/spiderkit/spider/internal/config"
	"github.com/spiderkit/spider/internal/generator"
)

var (
	buildFontsOnly bool
	buildOutput    string
)

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Validate the config and generate asset reference classes",
	Long: `Validate the spider config, scan the declared asset directories, and
generate one Dart reference class per group, plus the export/part
aggregation file and the existence-check tests when enabled.

Validation is all-or-nothing: no file is written when the config is
invalid. Generation overwrites prior output.

Examples:
  spider build                    # Generate everything the config declares
  spider build --fonts-only       # Generate only the font family class
  spider build --output ./gen     # Write output under ./gen`,
	Aliases: []string{"b"},
	Args:    cobra.NoArgs,
	RunE:    runBuildCommand,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolVar(&buildFontsOnly, "fonts-only", false, "validate and generate only the fonts declaration")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output root directory (default: current directory)")
}

func runBuildCommand(cmd *cobra.Command, args []string) error {
	log := newLogger().WithComponent("build")
	fs := afero.NewOsFs()

	path, err := config.Locate(fs, cfgFile)
	if err != nil {
		return err
	}
	log.Debug("using config file", "path", path)

	raw, err := config.Load(fs, path)
	if err != nil {
		return err
	}

	cfg, err := config.Parse(fs, raw, config.Options{FontsOnly: buildFontsOnly})
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.Globals.ProjectName = config.ProjectName(fs)

	if err := generator.New(fs, buildOutput, log).Generate(cfg); err != nil {
		return err
	}

	log.Info("generation complete", "groups", len(cfg.Groups))
	return nil
}
