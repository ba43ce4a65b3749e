package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ssamant/pathway/internal/cli/formatter"
	"github.com/ssamant/pathway/internal/contract"
	"github.com/ssamant/pathway/internal/domain"
)

// recommendFlags holds the one-shot overrides. Unset flags fall back to
// the saved profile draft.
type recommendFlags struct {
	degree    string
	gpa       string
	major     string
	budget    float64 // lakhs
	priority  string
	funding   string
	countries []string
	intake    string
	asJSON    bool
}

func newRecommendCmd(app *App) *cobra.Command {
	var flags recommendFlags

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Run a one-shot recommendation from the saved profile",
		Long: `Submits the saved profile (with any flag overrides applied) to the
recommendation service and prints the resulting pathways. Useful for
scripting and non-terminal environments; the interactive TUI is the
default when "pathway" runs without a subcommand.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.degree, "degree", "", "education level (HS, Bachelors, Masters)")
	cmd.Flags().StringVar(&flags.gpa, "gpa", "", "GPA on a 0-10 scale")
	cmd.Flags().StringVar(&flags.major, "major", "", "field of study")
	cmd.Flags().Float64Var(&flags.budget, "budget", 0, "maximum budget in lakhs")
	cmd.Flags().StringVar(&flags.priority, "priority", "", "directive (High ROI, Low Cost, Immigration)")
	cmd.Flags().StringVar(&flags.funding, "funding", "", "funding source (Self, Education Loan, Scholarship)")
	cmd.Flags().StringSliceVar(&flags.countries, "country", nil, "preferred country (repeatable)")
	cmd.Flags().StringVar(&flags.intake, "intake", "", "target intake term (Fall, Spring, Summer)")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print the raw result as JSON")

	return cmd
}

func runRecommend(cmd *cobra.Command, app *App, flags recommendFlags) error {
	draft := applyOverrides(app.loadDraft(), flags)

	if err := contract.ValidateForSubmit(draft); err != nil {
		return err
	}

	ctx := cmd.Context()
	if app.Profiles != nil {
		_ = app.Profiles.Save(ctx, draft)
	}

	req := contract.Normalize(draft)
	rs, err := app.Advisor.Recommend(ctx, req)
	app.logSubmission(ctx, req, rs, err)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if flags.asJSON {
		return json.NewEncoder(out).Encode(resultJSON(rs))
	}
	printResultSet(cmd, rs)
	return nil
}

func applyOverrides(draft domain.ProfileDraft, flags recommendFlags) domain.ProfileDraft {
	if flags.degree != "" {
		draft = draft.WithDegree(domain.Degree(flags.degree))
	}
	if flags.gpa != "" {
		draft = draft.WithGPA(flags.gpa)
	}
	if flags.major != "" {
		draft = draft.WithMajor(flags.major)
	}
	if flags.budget > 0 {
		draft = draft.WithBudget(int(flags.budget * 100_000))
	}
	if flags.priority != "" {
		draft = draft.WithPriority(domain.Priority(flags.priority))
	}
	if flags.funding != "" {
		draft = draft.WithFunding(domain.FundingSource(flags.funding))
	}
	if flags.intake != "" {
		draft = draft.WithIntake(domain.IntakeTerm(flags.intake))
	}
	if len(flags.countries) > 0 {
		draft.PreferredCountries = nil
		for _, c := range flags.countries {
			draft = draft.ToggleCountry(c)
		}
	}
	return draft
}

func printResultSet(cmd *cobra.Command, rs *contract.ResultSet) {
	out := cmd.OutOrStdout()

	if rs.Shape == contract.ShapeBuckets {
		buckets := []struct {
			label string
			opts  []contract.PathwayOption
		}{
			{"Safe Bets", rs.Buckets.SafeBets},
			{"Fast Track", rs.Buckets.FastTrack},
			{"Moonshots", rs.Buckets.Moonshots},
		}
		for _, bucket := range buckets {
			fmt.Fprintln(out, formatter.BucketHeading(bucket.label, len(bucket.opts)))
			if len(bucket.opts) == 0 {
				fmt.Fprintln(out, formatter.EmptyBucket())
				fmt.Fprintln(out)
				continue
			}
			for _, o := range bucket.opts {
				printOption(cmd, o)
			}
			fmt.Fprintln(out)
		}
		if rs.Meta != nil {
			fmt.Fprintln(out, formatter.Dim(strconv.Itoa(rs.Meta.TotalOptions)+" pathways evaluated"))
		}
	} else {
		for i, o := range rs.Ranked {
			if i == 0 {
				fmt.Fprintln(out, formatter.StyleGreen.Render("★ BEST MATCH"))
			}
			printOption(cmd, o)
		}
	}

	if rs.ConsultantNote != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, formatter.StylePurple.Render("Consultant: ")+rs.ConsultantNote)
	}
	if rs.RiskAdvisory != "" {
		fmt.Fprintln(out, formatter.Dim(rs.RiskAdvisory))
	}
}

func printOption(cmd *cobra.Command, o contract.PathwayOption) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.OptionLine(o, false))
	fmt.Fprint(out, formatter.OptionCard(o))
}

// resultJSON re-wraps a ResultSet in its wire layout for --json output,
// so scripted consumers see the same shape the service sent.
func resultJSON(rs *contract.ResultSet) map[string]any {
	doc := map[string]any{"status": "success"}
	if rs.Shape == contract.ShapeBuckets {
		doc["strategies"] = rs.Buckets
	} else {
		doc["recommendations"] = rs.Ranked
	}
	if rs.ConsultantNote != "" {
		doc["consultant_note"] = rs.ConsultantNote
	}
	if rs.RiskAdvisory != "" {
		doc["risk_advisory"] = rs.RiskAdvisory
	}
	if rs.Meta != nil {
		doc["meta"] = rs.Meta
	}
	return doc
}
