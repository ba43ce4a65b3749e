package contract

import (
	"strconv"

	"github.com/ssamant/pathway/internal/domain"
)

// RecommendRequest is the JSON body for POST /api/recommend. One value is
// built per submission; it is never mutated after construction.
type RecommendRequest struct {
	Degree        string   `json:"degree"`
	GPA           float64  `json:"gpa"`
	Major         string   `json:"major"`
	Budget        float64  `json:"budget"` // lakhs
	Priority      string   `json:"priority"`
	FundingSource string   `json:"funding_source"`
	Countries     []string `json:"countries,omitempty"`
	TargetIntake  string   `json:"target_intake,omitempty"`
}

// Field codes for validation failures.
type ValidationCode string

const (
	MissingRequiredField ValidationCode = "MISSING_REQUIRED_FIELD"
	InvalidNumericField  ValidationCode = "INVALID_NUMERIC_FIELD"
)

// ValidationError blocks a submission at the form boundary. It never
// reaches the submission controller.
type ValidationError struct {
	Field   string
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// ValidateForSubmit checks the draft's submit preconditions. The caller
// decides whether to proceed; no side effects here.
func ValidateForSubmit(p domain.ProfileDraft) error {
	if p.Major == "" {
		return &ValidationError{
			Field:   "major",
			Code:    MissingRequiredField,
			Message: "major / field of interest is required",
		}
	}
	gpa, err := strconv.ParseFloat(p.GPA, 64)
	if err != nil || gpa <= 0 {
		return &ValidationError{
			Field:   "gpa",
			Code:    InvalidNumericField,
			Message: "enter a GPA above 0 on the 0-10 scale",
		}
	}
	return nil
}

// Normalize maps a profile draft onto the service contract. Pure and
// idempotent: the same draft always yields the same request, which is what
// makes resubmission after a transport failure safe.
func Normalize(p domain.ProfileDraft) RecommendRequest {
	degree := string(p.Degree)
	if degree == "" {
		degree = string(domain.DegreeBachelors)
	}
	major := p.Major
	if major == "" {
		major = "General"
	}
	gpa, _ := strconv.ParseFloat(p.GPA, 64)

	req := RecommendRequest{
		Degree:        degree,
		GPA:           gpa,
		Major:         major,
		Budget:        float64(p.BudgetMax) / 100_000,
		Priority:      string(p.Priority),
		FundingSource: string(p.FundingSource),
		TargetIntake:  string(p.TargetIntake),
	}
	if len(p.PreferredCountries) > 0 {
		req.Countries = append([]string(nil), p.PreferredCountries...)
	}
	return req
}
