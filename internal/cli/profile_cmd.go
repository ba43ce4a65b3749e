package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssamant/pathway/internal/cli/formatter"
	"github.com/ssamant/pathway/internal/repository"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect or reset the saved applicant profile",
	}
	cmd.AddCommand(newProfileShowCmd(app), newProfileResetCmd(app))
	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved profile draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if app.Profiles == nil {
				return fmt.Errorf("no profile store configured")
			}

			draft, err := app.Profiles.Get(cmd.Context())
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(out, formatter.Dim("No saved profile. Run 'pathway' to create one."))
				return nil
			}
			if err != nil {
				return fmt.Errorf("loading profile: %w", err)
			}

			row := func(label, value string) {
				if value == "" {
					value = formatter.Dim("(not set)")
				}
				// pad before styling so ANSI codes don't skew alignment
				padded := fmt.Sprintf("%-14s", label)
				fmt.Fprintf(out, "  %s %s\n", formatter.Dim(padded), value)
			}

			fmt.Fprintln(out, formatter.Header("Saved Profile"))
			row("Education", string(draft.Degree))
			row("GPA", draft.GPA)
			row("Major", draft.Major)
			row("Budget", formatter.FormatLakhsFromRupees(draft.BudgetMax))
			row("Priority", string(draft.Priority))
			row("Funding", string(draft.FundingSource))
			row("Countries", strings.Join(draft.PreferredCountries, ", "))
			row("Intake", string(draft.TargetIntake))
			return nil
		},
	}
}

func newProfileResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved profile draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Profiles == nil {
				return fmt.Errorf("no profile store configured")
			}
			if err := app.Profiles.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("resetting profile: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile reset.")
			return nil
		},
	}
}
