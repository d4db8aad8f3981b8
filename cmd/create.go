package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/spiderkit/spider/internal/generator"
)

// createCmd represents the create command.
var createCmd = &cobra.Command{
	Use:     "create",
	Short:   "Write a starter spider.yaml in the current directory",
	Aliases: []string{"init"},
	Args:    cobra.NoArgs,
	RunE:    runCreateCommand,
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func runCreateCommand(cmd *cobra.Command, args []string) error {
	fs := afero.NewOsFs()

	const target = "spider.yaml"
	exists, err := afero.Exists(fs, target)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s already exists, refusing to overwrite", target)
	}

	if err := afero.WriteFile(fs, target, []byte(generator.StarterConfig), 0o644); err != nil {
		return err
	}

	cmd.Printf("Created %s; edit it and run \"spider build\"\n", target)
	return nil
}
