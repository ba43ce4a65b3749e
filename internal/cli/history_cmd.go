package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssamant/pathway/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if app.Submissions == nil {
				return fmt.Errorf("no submission log configured")
			}

			records, err := app.Submissions.ListRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			if len(records) == 0 {
				fmt.Fprintln(out, formatter.Dim("No submissions yet."))
				return nil
			}

			for _, r := range records {
				when := r.SubmittedAt.Local().Format("2006-01-02 15:04")
				profile := fmt.Sprintf("%s %s, %s", r.Degree, formatter.Dim("·"), r.Major)
				if r.Failed {
					fmt.Fprintf(out, "%s  %s  %s\n",
						formatter.Dim(when), profile,
						formatter.StyleRed.Render("failed: "+r.FailureReason))
					continue
				}
				summary := fmt.Sprintf("%d options (%s)", r.OptionCount, r.ResultShape)
				if r.TopCountry != "" {
					summary += ", top: " + r.TopCountry
				}
				fmt.Fprintf(out, "%s  %s  %s\n", formatter.Dim(when), profile, summary)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show")
	return cmd
}
