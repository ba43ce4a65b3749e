package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ssamant/pathway/internal/contract"
	"github.com/ssamant/pathway/internal/domain"
)

func sampleOption() contract.PathwayOption {
	return contract.PathwayOption{
		Country:       "Germany",
		Flag:          "🇩🇪",
		Tagline:       "Zero Tuition, High Security",
		MatchScore:    92,
		TotalCost:     12,
		FinancialGap:  0,
		PRTimeline:    "Fast (21 Months)",
		PRRiskColor:   domain.RiskGreen,
		TimelineSteps: []string{"Masters (2y)", "Job Search (18m)", "PR (Guaranteed)"},
		ROIVerdict:    "Highest Safety",
	}
}

func TestOptionLine(t *testing.T) {
	line := OptionLine(sampleOption(), false)
	assert.Contains(t, line, "Germany")
	assert.Contains(t, line, "92%")
	assert.Contains(t, line, "Zero Tuition")
	assert.NotContains(t, line, "▸")

	selected := OptionLine(sampleOption(), true)
	assert.Contains(t, selected, "▸")
}

func TestOptionCard(t *testing.T) {
	card := OptionCard(sampleOption())
	assert.Contains(t, card, "₹ 12 Lakhs")
	assert.Contains(t, card, "fits budget")
	assert.Contains(t, card, "LOW RISK")
	assert.Contains(t, card, "Masters (2y)")
	assert.Contains(t, card, "Highest Safety")
}

func TestOptionCard_AlertsAndReasoning(t *testing.T) {
	o := sampleOption()
	o.PolicyAlerts = []contract.PolicyAlert{
		{Tone: domain.TonePositive, Text: "Opportunity Card introduced"},
		{Tone: domain.ToneNegative, Text: "Dependent restrictions"},
	}
	o.Reasoning = []string{"Budget fits"}

	card := OptionCard(o)
	assert.Contains(t, card, "▲ Opportunity Card introduced")
	assert.Contains(t, card, "▼ Dependent restrictions")
	assert.Contains(t, card, "• Budget fits")
}

func TestTimeline(t *testing.T) {
	out := Timeline([]string{"Masters (2y)", "OPT (3y)", "H1B (Lottery)"})
	assert.Contains(t, out, "Masters (2y)")
	assert.Contains(t, out, "→")
	assert.Contains(t, out, "H1B (Lottery)")
}

func TestBucketHeading(t *testing.T) {
	out := BucketHeading("Safe Bets", 2)
	assert.Contains(t, out, "SAFE BETS")
	assert.Contains(t, out, "(2)")
}
