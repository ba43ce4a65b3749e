package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ssamant/pathway/internal/cli/formatter"
	"github.com/ssamant/pathway/internal/domain"
)

// pathwayHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func pathwayHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// intakeFields holds form-bound values for the intake form. Strings,
// because huh inputs bind to strings; conversion happens at submit.
type intakeFields struct {
	degree    string
	gpa       string
	major     string
	budget    string // lakhs
	priority  string
	funding   string
	countries []string
	intake    string
}

// fieldsFromDraft pre-populates the form from a saved draft.
func fieldsFromDraft(d domain.ProfileDraft) *intakeFields {
	f := &intakeFields{
		degree:    string(d.Degree),
		gpa:       d.GPA,
		major:     d.Major,
		budget:    strconv.Itoa(d.BudgetMax / 100_000),
		priority:  string(d.Priority),
		funding:   string(d.FundingSource),
		countries: append([]string(nil), d.PreferredCountries...),
		intake:    string(d.TargetIntake),
	}
	if f.degree == "" {
		f.degree = string(domain.DegreeBachelors)
	}
	if f.priority == "" {
		f.priority = string(domain.PriorityHighROI)
	}
	if f.funding == "" {
		f.funding = string(domain.FundingSelf)
	}
	return f
}

// toDraft converts form values back to a draft, clamping numeric fields.
func (f *intakeFields) toDraft() domain.ProfileDraft {
	d := domain.ProfileDraft{
		Degree:        domain.Degree(f.degree),
		Priority:      domain.Priority(f.priority),
		FundingSource: domain.FundingSource(f.funding),
		TargetIntake:  domain.IntakeTerm(f.intake),
	}
	d = d.WithGPA(f.gpa).WithMajor(f.major)
	lakhs, err := strconv.Atoi(f.budget)
	if err != nil {
		lakhs = 25
	}
	d = d.WithBudget(lakhs * 100_000)
	for _, c := range f.countries {
		d = d.ToggleCountry(c)
	}
	return d
}

// newIntakeForm builds the multi-group intake form over the bound fields.
func newIntakeForm(f *intakeFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Current Education").
				Options(
					huh.NewOption("High School / 12th", string(domain.DegreeHighSchool)),
					huh.NewOption("Bachelors", string(domain.DegreeBachelors)),
					huh.NewOption("Masters", string(domain.DegreeMasters)),
				).
				Value(&f.degree),
			huh.NewInput().
				Title("GPA (0-10 scale)").
				Placeholder("8.5").
				Value(&f.gpa).
				Validate(validateGPA),
			huh.NewInput().
				Title("Field of Study").
				Placeholder("Computer Science").
				Value(&f.major).
				Validate(validateRequired("field of study")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Budget (Lakhs, 5-100)").
				Placeholder("25").
				Value(&f.budget).
				Validate(validateBudgetLakhs),
			huh.NewSelect[string]().
				Title("What matters most?").
				Options(
					huh.NewOption("High ROI", string(domain.PriorityHighROI)),
					huh.NewOption("Low Cost", string(domain.PriorityLowCost)),
					huh.NewOption("Immigration / PR", string(domain.PriorityImmigration)),
				).
				Value(&f.priority),
			huh.NewSelect[string]().
				Title("Funding Source").
				Options(
					huh.NewOption("Self / Family", string(domain.FundingSelf)),
					huh.NewOption("Education Loan", string(domain.FundingLoan)),
					huh.NewOption("Scholarship", string(domain.FundingScholarship)),
				).
				Value(&f.funding),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Preferred Countries (optional)").
				Options(
					huh.NewOption("USA", "USA"),
					huh.NewOption("UK", "UK"),
					huh.NewOption("Germany", "Germany"),
					huh.NewOption("Canada", "Canada"),
					huh.NewOption("Australia", "Australia"),
					huh.NewOption("Ireland", "Ireland"),
				).
				Value(&f.countries),
			huh.NewSelect[string]().
				Title("Target Intake (optional)").
				Options(
					huh.NewOption("No preference", ""),
					huh.NewOption("Fall", string(domain.IntakeFall)),
					huh.NewOption("Spring", string(domain.IntakeSpring)),
					huh.NewOption("Summer", string(domain.IntakeSummer)),
				).
				Value(&f.intake),
		),
	).WithTheme(pathwayHuhTheme()).WithShowHelp(false)
}

// validateGPA accepts a number in (0,10]. The same rule the submit path
// enforces, surfaced early at the field.
func validateGPA(s string) error {
	if s == "" {
		return fmt.Errorf("GPA is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 || v > 10 {
		return fmt.Errorf("enter a GPA between 0 and 10")
	}
	return nil
}

// validateBudgetLakhs accepts empty (default applies) or an integer
// amount of lakhs; out-of-range values are clamped later, not rejected.
func validateBudgetLakhs(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("enter a whole number of lakhs")
	}
	return nil
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
