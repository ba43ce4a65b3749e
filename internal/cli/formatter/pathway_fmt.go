package formatter

import (
	"fmt"
	"strings"

	"github.com/ssamant/pathway/internal/contract"
)

// OptionLine renders the one-line summary of a pathway option, used in
// ranked lists and bucket columns.
func OptionLine(o contract.PathwayOption, selected bool) string {
	cursor := "  "
	if selected {
		cursor = StyleGreen.Render("▸ ")
	}
	score := ScoreStyle(o.MatchScore).Render(fmt.Sprintf("%d%%", o.MatchScore))
	return fmt.Sprintf("%s%s %s  %s  %s",
		cursor,
		o.Flag,
		Bold(o.Country),
		score,
		Dim(o.Tagline),
	)
}

// OptionCard renders the expanded detail block for a pathway option.
func OptionCard(o contract.PathwayOption) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("    %s  %s\n",
		Dim("Total Cost:"), FormatLakhs(o.TotalCost)))
	b.WriteString(fmt.Sprintf("    %s  %s\n",
		Dim("Funding:"), FormatGap(o.FinancialGap)))
	b.WriteString(fmt.Sprintf("    %s  %s %s\n",
		Dim("PR Outlook:"), RiskIndicator(o.PRRiskColor), Dim(o.PRTimeline)))

	if len(o.TimelineSteps) > 0 {
		b.WriteString("    " + Dim("Timeline:") + "  " + Timeline(o.TimelineSteps) + "\n")
	}
	if o.ROIVerdict != "" {
		b.WriteString("    " + Dim("Verdict:") + "   " + StylePurple.Render(o.ROIVerdict) + "\n")
	}
	if o.InsiderInsight != "" {
		b.WriteString("    " + Dim("Insight:") + "   " + o.InsiderInsight + "\n")
	}
	for _, a := range o.PolicyAlerts {
		b.WriteString("    " + alertLine(a) + "\n")
	}
	for _, r := range o.Reasoning {
		b.WriteString("    " + Dim("• "+r) + "\n")
	}

	return b.String()
}

// Timeline joins journey steps with arrows: "Masters (2y) → Job Search (1y)".
func Timeline(steps []string) string {
	return strings.Join(steps, " "+Dim("→")+" ")
}

func alertLine(a contract.PolicyAlert) string {
	switch a.Tone {
	case "positive":
		return StyleGreen.Render("▲ " + a.Text)
	case "negative":
		return StyleRed.Render("▼ " + a.Text)
	default:
		return Dim("• " + a.Text)
	}
}

// BucketHeading renders a bucket column heading with its option count.
func BucketHeading(label string, count int) string {
	return StyleHeader.Render(strings.ToUpper(label)) + " " + Dim(fmt.Sprintf("(%d)", count))
}

// EmptyBucket is the placeholder rendered for a bucket with no options.
func EmptyBucket() string {
	return Dim("  — none for this profile —")
}
