package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/herniqeu/version-guard/internal/github"
)

func NewDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check credentials and event metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "version-guard doctor")

			if app.Mock {
				fmt.Fprintln(out, "- mode: mock fixtures")
			} else if app.Config.Token == "" {
				return fmt.Errorf("GITHUB_TOKEN is not set")
			} else {
				fmt.Fprintln(out, "- token: ok")
			}

			ev, err := github.ReadEvent()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "- event: %s/%s#%d\n", ev.Owner, ev.Repo, ev.PRNumber)
			fmt.Fprintln(out, "doctor checks passed")
			return nil
		},
	}
	return cmd
}
