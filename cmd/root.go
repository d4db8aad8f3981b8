// Package cmd provides the command-line interface for spider.
//
// Configuration precedence, highest to lowest:
//  1. Command-line flags (--config, --log-level, ...)
//  2. SPIDER_CONFIG_FILE environment variable for the config path,
//     SPIDER_<OPTION> for the remaining options
//  3. spider.yaml / spider.yml / spider.json in the working directory
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spiderkit/spider/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "spider",
	Short: "Generate compile-time-safe references for bundled assets",
	Long: `Spider generates reference classes for the asset files of a project so
build pipelines get compile-time-safe string constants instead of
hand-typed paths.

Declare asset directories in a spider.yaml (or spider.json) config file,
then run "spider build" to generate one class per declared group, an
optional export/part aggregation file, and optional existence-check tests.

Quick Start:
  spider create                   Write a starter spider.yaml
  spider validate                 Check the config without generating
  spider build                    Validate and generate reference classes`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default probes spider.yaml, spider.yml, spider.json; can also use SPIDER_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "emit logs as JSON")
	bindFlags(rootCmd.PersistentFlags(), "log-level", "json-logs")
}

// initConfig wires environment overrides with the SPIDER_ prefix, e.g.
// SPIDER_LOG_LEVEL=debug or SPIDER_CONFIG_FILE=./configs/spider.yml.
func initConfig() {
	if cfgFile == "" {
		cfgFile = os.Getenv("SPIDER_CONFIG_FILE")
	}

	viper.SetEnvPrefix("SPIDER")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
}

func newLogger() logging.Logger {
	return logging.NewLogger(&logging.Config{
		Level: viper.GetString("log-level"),
		JSON:  viper.GetBool("json-logs"),
	})
}
