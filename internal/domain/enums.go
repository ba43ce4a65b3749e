package domain

type Degree string

const (
	DegreeUnset      Degree = ""
	DegreeHighSchool Degree = "HS"
	DegreeBachelors  Degree = "Bachelors"
	DegreeMasters    Degree = "Masters"
)

type FundingSource string

const (
	FundingUnset       FundingSource = ""
	FundingSelf        FundingSource = "Self"
	FundingLoan        FundingSource = "Education Loan"
	FundingScholarship FundingSource = "Scholarship"
)

type Priority string

const (
	PriorityHighROI     Priority = "High ROI"
	PriorityLowCost     Priority = "Low Cost"
	PriorityImmigration Priority = "Immigration"
)

type IntakeTerm string

const (
	IntakeUnset  IntakeTerm = ""
	IntakeFall   IntakeTerm = "Fall"
	IntakeSpring IntakeTerm = "Spring"
	IntakeSummer IntakeTerm = "Summer"
)

// RiskColor is the traffic-light rating the service attaches to a
// pathway's permanent-residency outlook.
type RiskColor string

const (
	RiskGreen  RiskColor = "green"
	RiskYellow RiskColor = "yellow"
	RiskRed    RiskColor = "red"
)

// AlertTone classifies a policy alert attached to a pathway option.
type AlertTone string

const (
	TonePositive AlertTone = "positive"
	ToneNegative AlertTone = "negative"
	ToneNeutral  AlertTone = "neutral"
)

// ValidCountries is the canonical set of selectable preference countries.
var ValidCountries = map[string]bool{
	"USA": true, "UK": true, "Germany": true,
	"Canada": true, "Australia": true, "Ireland": true,
}
