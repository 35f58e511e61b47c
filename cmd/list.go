package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/weblint/forge/internal/usecase"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List the classification choices for generated packages",
	Long: `List the closed sets a generated rule is classified with: categories,
use cases (with the events they subscribe to), and scopes.

Examples:
  forge list                      # Show all classification choices`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	registry := usecase.New()
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	fmt.Fprintln(w, "CATEGORIES")
	for _, category := range registry.CategoryMenu() {
		fmt.Fprintf(w, "  %s\n", category)
	}

	fmt.Fprintln(w, "\nUSE CASES\tEVENTS")
	for _, tag := range registry.UseCaseMenu() {
		events := registry.EventsFor(usecase.UseCase(tag), "")
		fmt.Fprintf(w, "  %s\t%s\n", tag, strings.Join(events, ", "))
	}

	fmt.Fprintln(w, "\nSCOPES")
	for _, scope := range registry.ScopeMenu() {
		fmt.Fprintf(w, "  %s\n", scope)
	}

	return w.Flush()
}
