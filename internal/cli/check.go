package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/herniqeu/version-guard/internal/diff"
	"github.com/herniqeu/version-guard/internal/github"
	"github.com/herniqeu/version-guard/internal/redact"
	"github.com/herniqeu/version-guard/internal/report"
	"github.com/herniqeu/version-guard/internal/rules"
)

var (
	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Scan the pull request diff and post a report when issues are found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd.Context())
			if err != nil {
				return err
			}
			if !app.Mock && app.Config.Token == "" {
				return fmt.Errorf("GITHUB_TOKEN is required")
			}

			ev, err := github.ReadEvent()
			if err != nil {
				return err
			}

			ctx := context.Background()
			diffText, err := app.Diffs.PRDiff(ctx, ev)
			if err != nil {
				return err
			}
			if strings.TrimSpace(diffText) == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Empty diff; nothing to check.")
				return nil
			}

			files, err := diff.ParseUnified(diffText)
			if err != nil {
				return err
			}

			issues := rules.NewEngine(app.RepoConfig.Ignore).Run(files)
			if len(issues) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), greenStyle.Render("No floating versions or unsafe migrations found."))
				return nil
			}

			body := redact.RedactOptional(report.Render(issues), app.Config.Redaction.Enabled)
			fmt.Fprintln(cmd.OutOrStdout(), body)
			if err := app.Comments.PostComment(ctx, ev, body); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), redStyle.Render(fmt.Sprintf("Posted report with %d issue(s).", len(issues))))
			return fmt.Errorf("found %d issue(s); failing the run to block the merge", len(issues))
		},
	}
	return cmd
}
