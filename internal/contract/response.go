package contract

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ssamant/pathway/internal/domain"
)

// ErrBadStatus is returned when the service answered but did not report
// success. Anything other than status "success" is uniform failure.
var ErrBadStatus = errors.New("recommendation service reported failure")

// CostBreakdown itemizes a pathway's cost estimate, in lakhs.
type CostBreakdown struct {
	Tuition   float64 `json:"tuition"`
	Living    float64 `json:"living"`
	VisaFees  float64 `json:"visa_fees"`
	Insurance float64 `json:"insurance"`
}

// PRBranch is one permanent-residency route within a pathway.
type PRBranch struct {
	Path     string           `json:"path"`
	Timeline string           `json:"timeline"`
	Success  string           `json:"success"`
	Color    domain.RiskColor `json:"color"`
}

// PolicyAlert is an upstream immigration-policy note.
type PolicyAlert struct {
	Tone domain.AlertTone `json:"type"`
	Text string           `json:"text"`
}

// Deadline is one dated task in a pathway's application calendar.
type Deadline struct {
	Task string `json:"task"`
	Date string `json:"date"`
}

// PathwayOption is one candidate country/strategy returned by the service.
// The client treats it as an opaque value object: fields are carried,
// reordered and filtered, never recomputed.
type PathwayOption struct {
	Country         string           `json:"country"`
	Flag            string           `json:"flag"`
	Tagline         string           `json:"tagline"`
	MatchScore      int              `json:"match_score"`
	FinancialGap    float64          `json:"financial_gap"` // lakhs short of total cost
	FinancialHealth string           `json:"financial_health,omitempty"`
	FinancialStatus string           `json:"financial_status,omitempty"`
	TimelineSteps   []string         `json:"timeline_steps"`
	PRTimeline      string           `json:"pr_timeline"`
	PRRiskColor     domain.RiskColor `json:"pr_risk_color"`
	Costs           CostBreakdown    `json:"costs"`
	TotalCost       float64          `json:"total_cost"`
	PRBranches      []PRBranch       `json:"pr_branches,omitempty"`
	PolicyAlerts    []PolicyAlert    `json:"policy_alerts,omitempty"`
	Deadlines       []Deadline       `json:"deadlines,omitempty"`
	InsiderInsight  string           `json:"insider_insight,omitempty"`
	ROIVerdict      string           `json:"roi_verdict,omitempty"`
	Reasoning       []string         `json:"reasoning,omitempty"`
}

// Key identifies the option across reorders and re-fetches.
func (o PathwayOption) Key() string { return o.Country }

// ResultShape tags which of the two response shapes a ResultSet holds.
type ResultShape int

const (
	ShapeRanked ResultShape = iota
	ShapeBuckets
)

// Buckets is the three-column categorized shape. Each bucket is
// independently ordered by the service; there is no cross-bucket order.
type Buckets struct {
	SafeBets  []PathwayOption `json:"safe_bets"`
	FastTrack []PathwayOption `json:"fast_track"`
	Moonshots []PathwayOption `json:"moonshots"`
}

// Meta carries the service's own option counts, when present.
type Meta struct {
	TotalOptions  int `json:"total_options"`
	SafeCount     int `json:"safe_count"`
	FastCount     int `json:"fast_count"`
	MoonshotCount int `json:"moonshot_count"`
}

// ResultSet is the immutable snapshot of one successful submission. It is
// replaced wholesale on the next success, never mutated field by field.
// Shape is decided by which top-level field the response carried, not by
// probing sub-fields.
type ResultSet struct {
	Shape          ResultShape
	Ranked         []PathwayOption // ShapeRanked: index 0 is the primary recommendation
	Buckets        Buckets         // ShapeBuckets
	ConsultantNote string
	RiskAdvisory   string
	Meta           *Meta
}

// Len returns the number of options in the set, across shapes.
func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	if rs.Shape == ShapeRanked {
		return len(rs.Ranked)
	}
	return len(rs.Buckets.SafeBets) + len(rs.Buckets.FastTrack) + len(rs.Buckets.Moonshots)
}

// recommendEnvelope is the raw wire shape of a recommend response.
// Exactly one of Recommendations / Strategies is expected.
type recommendEnvelope struct {
	Status          string           `json:"status"`
	Recommendations []PathwayOption  `json:"recommendations"`
	Strategies      *Buckets         `json:"strategies"`
	ConsultantNote  string           `json:"consultant_note"`
	RiskAdvisory    string           `json:"risk_advisory"`
	Meta            *Meta            `json:"meta"`
}

// DecodeRecommendResponse parses a recommend response body into a ResultSet.
// A non-success status, a malformed body, or a body with neither shape field
// all fail the same way for the caller.
func DecodeRecommendResponse(body []byte) (*ResultSet, error) {
	var env recommendEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding recommend response: %w", err)
	}
	if env.Status != "success" {
		return nil, fmt.Errorf("%w: status %q", ErrBadStatus, env.Status)
	}

	rs := &ResultSet{
		ConsultantNote: env.ConsultantNote,
		RiskAdvisory:   env.RiskAdvisory,
		Meta:           env.Meta,
	}
	switch {
	case env.Strategies != nil:
		rs.Shape = ShapeBuckets
		rs.Buckets = *env.Strategies
	case env.Recommendations != nil:
		rs.Shape = ShapeRanked
		rs.Ranked = env.Recommendations
	default:
		return nil, fmt.Errorf("recommend response has neither recommendations nor strategies")
	}
	return rs, nil
}
