// Package fixture serves canned advisor responses for local development
// and demos, so the intake flow can be exercised without the real
// recommendation service.
package fixture

import (
	"github.com/ssamant/pathway/internal/contract"
	"github.com/ssamant/pathway/internal/domain"
)

// Options is the canned catalog, one entry per supported destination.
// Figures are in lakhs and match the advisor's published country table.
var Options = []contract.PathwayOption{
	{
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
		Reasoning: []string{
			"Budget fits (Cost: 12L)",
			"Policy Win: New 'Chancenkarte' (Opportunity Card) makes job seeking easier.",
		},
	},
	{
		Country:       "Australia",
		Flag:          "🇦🇺",
		Tagline:       "Points-Based PR System",
		MatchScore:    78,
		TotalCost:     43,
		FinancialGap:  18,
		PRTimeline:    "Medium (2-3 Years)",
		PRRiskColor:   domain.RiskYellow,
		TimelineSteps: []string{"Masters (2y)", "Job Search (1y)", "Points Test"},
		ROIVerdict:    "Balanced Option",
		Reasoning: []string{
			"Partial Budget. Living costs need loan.",
			"Stricter English tests and Genuine Student tests introduced in 2024.",
		},
	},
	{
		Country:       "Ireland",
		Flag:          "🇮🇪",
		Tagline:       "Tech Hub, 1-Year Masters",
		MatchScore:    84,
		TotalCost:     33,
		FinancialGap:  8,
		PRTimeline:    "Fast (2 Years)",
		PRRiskColor:   domain.RiskGreen,
		TimelineSteps: []string{"Masters (1y)", "Job Search (1y)", "PR (Stamp 4)"},
		ROIVerdict:    "Speed Leader",
		Reasoning: []string{
			"Growing tech sector with Google, Meta, Amazon presence.",
		},
	},
	{
		Country:       "UK",
		Flag:          "🇬🇧",
		Tagline:       "1-Year Masters, Established Universities",
		MatchScore:    70,
		TotalCost:     48,
		FinancialGap:  23,
		PRTimeline:    "Long (5 Years)",
		PRRiskColor:   domain.RiskYellow,
		TimelineSteps: []string{"Masters (1y)", "Work Visa (5y)", "ILR"},
		ROIVerdict:    "Brand Value",
		Reasoning: []string{
			"Restrictions on bringing dependents (family) enforced.",
		},
	},
	{
		Country:       "USA",
		Flag:          "🇺🇸",
		Tagline:       "Highest Salaries, H1B Lottery",
		MatchScore:    61,
		TotalCost:     60,
		FinancialGap:  35,
		PRTimeline:    "Very Long (7+ Years)",
		PRRiskColor:   domain.RiskRed,
		TimelineSteps: []string{"Masters (2y)", "OPT (3y)", "H1B (Lottery)"},
		ROIVerdict:    "High Risk, High Reward",
		Reasoning: []string{
			"Budget Mismatch for most profiles.",
			"H-1B lottery remains highly competitive.",
		},
	},
}

// bucketOf maps each destination to its strategy bucket.
var bucketOf = map[string]string{
	"Germany":   "safe_bets",
	"Australia": "safe_bets",
	"Ireland":   "fast_track",
	"UK":        "fast_track",
	"USA":       "moonshots",
}

const consultantNote = "Strong profile! Favor the lowest-cost green-risk option; check visa rules before committing."

const riskAdvisory = "Policy climates shift quickly. Re-check visa rules close to your application date."
