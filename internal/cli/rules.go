package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/herniqeu/version-guard/internal/rules"
)

func NewRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the validators that run against changed files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Package manager validators:")
			printSpecs(out, rules.PackageValidators())
			fmt.Fprintln(out, "Container validators:")
			printSpecs(out, rules.ContainerValidators())
			fmt.Fprintln(out, "Migration checks apply to *.sql, *.psql and files under a migrations/ directory.")
			return nil
		},
	}
	return cmd
}

func printSpecs(out io.Writer, specs []rules.Spec) {
	for _, spec := range specs {
		var matches []string
		if len(spec.Extensions) > 0 {
			matches = append(matches, "extensions: "+strings.Join(spec.Extensions, ", "))
		}
		if len(spec.Patterns) > 0 {
			matches = append(matches, "patterns: "+strings.Join(spec.Patterns, ", "))
		}
		fmt.Fprintf(out, "  %-12s %s\n", spec.Name, strings.Join(matches, "; "))
	}
}
