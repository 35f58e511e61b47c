// Package cmd provides the command-line interface for forge with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration with clear precedence:
//	1. Command-line flags (--config, --official, etc.) - highest priority
//	2. FORGE_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (FORGE_OFFICIAL_SCOPE, etc.)
//	4. Configuration files (.forge.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Scaffold new weblint rule and parser packages",
	Long: `Forge scaffolds new plugin packages for the weblint web-page auditor.
It walks you through a short interactive flow and generates a complete,
correctly-named package: source stubs, test stubs, docs, package manifest,
and shared configuration.

Quick Start:
  forge rule                      Scaffold a new rule package
  forge parser                    Scaffold a new parser package
  forge list                      List categories, use cases, and scopes
  forge version                   Show version information

Command Aliases (for faster typing):
  rule (r), parser (p), list (l)`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .forge.yml, can also use FORGE_CONFIG_FILE env var)")
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. FORGE_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .forge.yml in current directory
//
// Environment variables with the FORGE_ prefix override file values, e.g.
// FORGE_COMMUNITY_PREFIX=mylint.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("FORGE_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".forge")
	}

	viper.SetEnvPrefix("FORGE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing config files are fine: defaults cover everything.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
