package domain

import (
	"strconv"
	"strings"
)

// Budget slider bounds, in whole rupees.
const (
	BudgetMin  = 500_000
	BudgetMax  = 10_000_000
	BudgetStep = 100_000
)

// GPAMaxChars limits the GPA field as typed ("10.0" is the longest value).
const GPAMaxChars = 4

// ProfileDraft is the mutable draft of applicant input for one session.
// All With* updates are total: out-of-range numeric input is clamped at
// the boundary, never rejected. Submit-time validation lives in the
// contract package.
type ProfileDraft struct {
	Degree             Degree
	GPA                string // decimal string on a 0-10 scale
	Major              string
	BudgetMax          int // whole rupees, snapped to BudgetStep
	Priority           Priority
	FundingSource      FundingSource
	PreferredCountries []string
	TargetIntake       IntakeTerm
}

// DefaultDraft returns a fresh draft with the slider at 25 lakhs and the
// directive preset to High ROI, matching the intake form's initial state.
func DefaultDraft() ProfileDraft {
	return ProfileDraft{
		BudgetMax: 2_500_000,
		Priority:  PriorityHighROI,
	}
}

// ClampGPA normalizes a raw GPA string: truncates to GPAMaxChars and, when
// the value parses as a number, clamps it into [0,10]. Non-numeric input is
// passed through untouched for submit-time validation. Idempotent.
func ClampGPA(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) > GPAMaxChars {
		s = s[:GPAMaxChars]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if v < 0 {
		v = 0
	}
	if v > 10 {
		v = 10
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ClampBudget snaps a rupee amount into [BudgetMin,BudgetMax] on the
// BudgetStep grid.
func ClampBudget(v int) int {
	if v < BudgetMin {
		return BudgetMin
	}
	if v > BudgetMax {
		return BudgetMax
	}
	return (v / BudgetStep) * BudgetStep
}

func (p ProfileDraft) WithDegree(d Degree) ProfileDraft {
	p.Degree = d
	return p
}

func (p ProfileDraft) WithGPA(raw string) ProfileDraft {
	p.GPA = ClampGPA(raw)
	return p
}

func (p ProfileDraft) WithMajor(m string) ProfileDraft {
	p.Major = strings.TrimSpace(m)
	return p
}

func (p ProfileDraft) WithBudget(rupees int) ProfileDraft {
	p.BudgetMax = ClampBudget(rupees)
	return p
}

func (p ProfileDraft) WithPriority(g Priority) ProfileDraft {
	p.Priority = g
	return p
}

func (p ProfileDraft) WithFunding(f FundingSource) ProfileDraft {
	p.FundingSource = f
	return p
}

func (p ProfileDraft) WithIntake(t IntakeTerm) ProfileDraft {
	p.TargetIntake = t
	return p
}

// ToggleCountry adds the country to the preference set, or removes it when
// already present. Unknown countries are ignored. Relative order of the
// remaining selections is preserved.
func (p ProfileDraft) ToggleCountry(country string) ProfileDraft {
	if !ValidCountries[country] {
		return p
	}
	out := make([]string, 0, len(p.PreferredCountries)+1)
	removed := false
	for _, c := range p.PreferredCountries {
		if c == country {
			removed = true
			continue
		}
		out = append(out, c)
	}
	if !removed {
		out = append(out, country)
	}
	p.PreferredCountries = out
	return p
}

// HasCountry reports whether the country is in the preference set.
func (p ProfileDraft) HasCountry(country string) bool {
	for _, c := range p.PreferredCountries {
		if c == country {
			return true
		}
	}
	return false
}
