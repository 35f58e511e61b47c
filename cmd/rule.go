package cmd

import (
	"github.com/spf13/cobra"

	"github.com/weblint/forge/internal/entity"
	forgeerrors "github.com/weblint/forge/internal/errors"
	"github.com/weblint/forge/internal/generator"
)

var ruleCmd = &cobra.Command{
	Use:     "rule",
	Aliases: []string{"r"},
	Short:   "Scaffold a new rule package",
	Long: `Scaffold a new weblint rule package in the current directory.

The interactive flow asks for the package name and description, whether the
package bundles multiple rules, and the classification of each rule
(category, use case, scope). Official packages are generated under the host
scope; community packages get a community-prefixed name plus a local
.weblintrc extending a shared configuration.

Examples:
  forge rule                      # Interactive flow with defaults
  forge rule --multi              # Default to a multi-rule package
  forge rule --official           # Default to an official (in-repo) package`,
	RunE: runRule,
}

var (
	ruleMulti    bool
	ruleOfficial bool
)

func init() {
	rootCmd.AddCommand(ruleCmd)

	ruleCmd.Flags().BoolVar(&ruleMulti, "multi", false, "Default to a package containing multiple rules")
	ruleCmd.Flags().BoolVar(&ruleOfficial, "official", false, "Default to an official (in-repo) package")
}

func runRule(cmd *cobra.Command, args []string) error {
	return runGeneration(entity.KindRule, generator.Defaults{
		Multi:    ruleMulti,
		Official: ruleOfficial,
	})
}

// runGeneration wires the driver's collaborators together and maps the soft
// no-resource outcome to a clean exit.
func runGeneration(kind entity.Kind, defaults generator.Defaults) error {
	driver, err := newDriver()
	if err != nil {
		return err
	}

	if _, err := driver.Run(kind, defaults); err != nil {
		// The driver already told the user nothing could be generated.
		if forgeerrors.IsResourceUnavailable(err) {
			return nil
		}

		return err
	}

	return nil
}
