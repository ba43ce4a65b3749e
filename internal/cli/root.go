package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ssamant/pathway/internal/advisor"
	"github.com/ssamant/pathway/internal/contract"
	"github.com/ssamant/pathway/internal/domain"
	"github.com/ssamant/pathway/internal/repository"
)

// App holds the dependencies used by CLI commands and TUI views.
type App struct {
	Advisor     advisor.Client
	Profiles    repository.ProfileRepo
	Submissions repository.SubmissionLogRepo

	// IsInteractive reports whether stdin is a terminal. Set by main.
	IsInteractive func() bool
}

// loadDraft returns the saved profile draft, or a fresh default when
// nothing has been saved yet.
func (a *App) loadDraft() domain.ProfileDraft {
	if a.Profiles == nil {
		return domain.DefaultDraft()
	}
	draft, err := a.Profiles.Get(context.Background())
	if err != nil {
		return domain.DefaultDraft()
	}
	return draft
}

// logSubmission records a submission attempt. Best effort: history is a
// convenience, never a reason to fail the submission itself.
func (a *App) logSubmission(ctx context.Context, req contract.RecommendRequest, rs *contract.ResultSet, callErr error) {
	if a.Submissions == nil {
		return
	}
	rec := &repository.SubmissionRecord{
		Degree:      req.Degree,
		Major:       req.Major,
		BudgetLakhs: req.Budget,
	}
	if callErr != nil {
		rec.Failed = true
		rec.FailureReason = callErr.Error()
	} else {
		rec.OptionCount = rs.Len()
		if rs.Shape == contract.ShapeBuckets {
			rec.ResultShape = "buckets"
			if len(rs.Buckets.SafeBets) > 0 {
				rec.TopCountry = rs.Buckets.SafeBets[0].Key()
			}
		} else {
			rec.ResultShape = "ranked"
			if len(rs.Ranked) > 0 {
				rec.TopCountry = rs.Ranked[0].Key()
			}
		}
	}
	_ = a.Submissions.Record(ctx, rec)
}

// NewRootCmd creates the top-level "pathway" command. Running it without
// a subcommand starts the interactive intake TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pathway",
		Short: "Study-abroad pathway advisor",
		Long: `Interactive advisor for study-abroad planning: build your
applicant profile, submit it for analysis, and explore the
recommended country pathways.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	root.AddCommand(
		newRecommendCmd(app),
		newProfileCmd(app),
		newHistoryCmd(app),
		newFixtureServerCmd(),
	)

	return root
}

func runTUI(app *App) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return fmt.Errorf("not a terminal; use 'pathway recommend' for one-shot output")
	}
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
