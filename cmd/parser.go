package cmd

import (
	"github.com/spf13/cobra"

	"github.com/weblint/forge/internal/entity"
	"github.com/weblint/forge/internal/generator"
)

var parserCmd = &cobra.Command{
	Use:     "parser",
	Aliases: []string{"p"},
	Short:   "Scaffold a new parser package",
	Long: `Scaffold a new weblint parser package in the current directory.

The interactive flow asks for the package name and description, then collects
the host events the parser subscribes to, one (event, element) pair per
round. Duplicate pairs are dropped silently.

Examples:
  forge parser                    # Interactive flow with defaults
  forge parser --official         # Default to an official (in-repo) package`,
	RunE: runParser,
}

var parserOfficial bool

func init() {
	rootCmd.AddCommand(parserCmd)

	parserCmd.Flags().BoolVar(&parserOfficial, "official", false, "Default to an official (in-repo) package")
}

func runParser(cmd *cobra.Command, args []string) error {
	return runGeneration(entity.KindParser, generator.Defaults{
		Official: parserOfficial,
	})
}
