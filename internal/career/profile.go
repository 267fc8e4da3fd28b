package career

import "strings"

// Experience buckets offered by the form.
const (
	ExperienceNone    = "0"
	ExperienceJunior  = "1-2"
	ExperienceMiddle  = "3-5"
	ExperienceSenior  = "6-10"
	ExperienceVeteran = "10+"
)

const (
	SalaryAny    = "any"
	SalaryLow    = "low"
	SalaryMedium = "medium"
	SalaryHigh   = "high"
)

const (
	EnvironmentRemote = "remote"
	EnvironmentOffice = "office"
	EnvironmentHybrid = "hybrid"
)

// Domain labels as shown on the form.
const (
	DomainTechnology   = "Technology"
	DomainBusiness     = "Business & Finance"
	DomainHealthcare   = "Healthcare"
	DomainArts         = "Arts & Design"
	DomainEntrepreneur = "Entrepreneurship"
)

// Profile is a single form submission. The zero value is a valid, empty profile.
type Profile struct {
	// AgeGroup is shown back to the user but never matched.
	AgeGroup        string   `mapstructure:"age_group" json:"age_group,omitempty" validate:"omitempty,oneof='Below 18' 18–25 26–35 36–45 45+"`
	Education       string   `mapstructure:"education" json:"education,omitempty"`
	PreviousField   string   `mapstructure:"previous_field" json:"previous_field,omitempty"`
	TechnicalSkills string   `mapstructure:"technical_skills" json:"technical_skills,omitempty"`
	SoftSkills      string   `mapstructure:"soft_skills" json:"soft_skills,omitempty"`
	Experience      string   `mapstructure:"experience" json:"experience,omitempty" validate:"omitempty,oneof=0 1-2 3-5 6-10 10+"`
	Domains         []string `mapstructure:"domains" json:"domains,omitempty" validate:"dive,domain"`
	// Motivation is kept for display only.
	Motivation      string   `mapstructure:"motivation" json:"motivation,omitempty"`
	Personality     string   `mapstructure:"personality" json:"personality,omitempty"`
	LongTermGoal    string   `mapstructure:"long_term_goal" json:"long_term_goal,omitempty"`
	WorkEnvironment string   `mapstructure:"work_environment" json:"work_environment,omitempty" validate:"omitempty,oneof=remote office hybrid"`
	DesiredSalary   string   `mapstructure:"desired_salary" json:"desired_salary,omitempty" validate:"omitempty,oneof=any low medium high"`
	Strengths       string   `mapstructure:"strengths" json:"strengths,omitempty"`
}

// AgeGroups returns the age group choices in form order.
func AgeGroups() []string {
	return []string{"Below 18", "18–25", "26–35", "36–45", "45+"}
}

// ExperienceLevels returns the experience buckets in form order.
func ExperienceLevels() []string {
	return []string{ExperienceNone, ExperienceJunior, ExperienceMiddle, ExperienceSenior, ExperienceVeteran}
}

// WorkEnvironments returns the work environment choices in form order.
func WorkEnvironments() []string {
	return []string{EnvironmentRemote, EnvironmentOffice, EnvironmentHybrid}
}

// SalaryLevels returns the desired salary choices in form order.
func SalaryLevels() []string {
	return []string{SalaryAny, SalaryLow, SalaryMedium, SalaryHigh}
}

// Domains returns the selectable domain labels in form order.
func Domains() []string {
	return []string{DomainTechnology, DomainBusiness, DomainHealthcare, DomainArts, DomainEntrepreneur}
}

// IsKnownDomain reports whether label names one of the selectable domains, ignoring case.
func IsKnownDomain(label string) bool {
	for _, d := range Domains() {
		if strings.EqualFold(d, label) {
			return true
		}
	}
	return false
}

// Input is the lowercased view of a Profile that rules match against.
type Input struct {
	Education       string
	PreviousField   string
	TechnicalSkills string
	SoftSkills      string
	Personality     string
	LongTermGoal    string
	WorkEnvironment string
	Strengths       string

	// Experience and DesiredSalary are compared verbatim.
	Experience    string
	DesiredSalary string
	// Domains keeps the caller's labels and order.
	Domains []string

	domainText string
}

func newInput(p Profile) *Input {
	return &Input{
		Education:       strings.ToLower(p.Education),
		PreviousField:   strings.ToLower(p.PreviousField),
		TechnicalSkills: strings.ToLower(p.TechnicalSkills),
		SoftSkills:      strings.ToLower(p.SoftSkills),
		Personality:     strings.ToLower(p.Personality),
		LongTermGoal:    strings.ToLower(p.LongTermGoal),
		WorkEnvironment: strings.ToLower(p.WorkEnvironment),
		Strengths:       strings.ToLower(p.Strengths),
		Experience:      p.Experience,
		DesiredSalary:   p.DesiredSalary,
		Domains:         append([]string(nil), p.Domains...),
		domainText:      strings.ToLower(strings.Join(p.Domains, " ")),
	}
}
