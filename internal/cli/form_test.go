package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ssamant/pathway/internal/domain"
)

func TestFieldsFromDraft_Defaults(t *testing.T) {
	f := fieldsFromDraft(domain.DefaultDraft())

	assert.Equal(t, string(domain.DegreeBachelors), f.degree)
	assert.Equal(t, string(domain.PriorityHighROI), f.priority)
	assert.Equal(t, string(domain.FundingSelf), f.funding)
	assert.Equal(t, "25", f.budget)
	assert.Empty(t, f.major)
}

func TestFieldsFromDraft_RoundTrip(t *testing.T) {
	draft := domain.DefaultDraft().
		WithDegree(domain.DegreeMasters).
		WithGPA("8.5").
		WithMajor("Data Science").
		WithBudget(4_000_000).
		WithPriority(domain.PriorityImmigration).
		WithFunding(domain.FundingLoan).
		WithIntake(domain.IntakeFall).
		ToggleCountry("Germany").
		ToggleCountry("Ireland")

	got := fieldsFromDraft(draft).toDraft()

	assert.Equal(t, draft, got)
}

func TestToDraft_ClampsAndDefaults(t *testing.T) {
	f := &intakeFields{
		degree:   string(domain.DegreeBachelors),
		gpa:      "12.5", // clamped to 10
		major:    "  CS  ",
		budget:   "not-a-number", // falls back to 25 lakhs
		priority: string(domain.PriorityHighROI),
		funding:  string(domain.FundingSelf),
	}

	d := f.toDraft()

	assert.Equal(t, "10", d.GPA)
	assert.Equal(t, "CS", d.Major)
	assert.Equal(t, 2_500_000, d.BudgetMax)
}

func TestToDraft_IgnoresUnknownCountry(t *testing.T) {
	f := fieldsFromDraft(domain.DefaultDraft())
	f.countries = []string{"Germany", "Atlantis"}

	d := f.toDraft()

	assert.Equal(t, []string{"Germany"}, d.PreferredCountries)
}

func TestValidateGPA(t *testing.T) {
	assert.Error(t, validateGPA(""))
	assert.Error(t, validateGPA("abc"))
	assert.Error(t, validateGPA("0"))
	assert.Error(t, validateGPA("10.5"))
	assert.NoError(t, validateGPA("8.5"))
	assert.NoError(t, validateGPA("10"))
}

func TestValidateBudgetLakhs(t *testing.T) {
	assert.NoError(t, validateBudgetLakhs(""))
	assert.NoError(t, validateBudgetLakhs("40"))
	assert.Error(t, validateBudgetLakhs("forty"))
}
