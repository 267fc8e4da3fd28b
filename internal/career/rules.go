package career

// Rule is a single matching step. Apply returns the titles the rule contributes for in,
// or nil when it does not match. Rules never see each other's output.
type Rule interface {
	Name() string
	Apply(in *Input) []string
}

type matchRule struct {
	name    string
	match   func(in *Input) bool
	careers []string
}

func (r *matchRule) Name() string { return r.name }

func (r *matchRule) Apply(in *Input) []string {
	if !r.match(in) {
		return nil
	}
	return r.careers
}

// gateRule evaluates its nested rules only when cond holds.
type gateRule struct {
	name   string
	cond   func(in *Input) bool
	nested []Rule
}

func (r *gateRule) Name() string { return r.name }

func (r *gateRule) Apply(in *Input) []string {
	if !r.cond(in) {
		return nil
	}

	var out []string
	for _, rule := range r.nested {
		out = append(out, rule.Apply(in)...)
	}
	return out
}

func (r *gateRule) Nested() []Rule { return r.nested }

type domainRule struct {
	categories CategoryTable
}

func (r *domainRule) Name() string { return "domains" }

func (r *domainRule) Apply(in *Input) []string {
	var out []string
	for _, label := range in.Domains {
		if careers, ok := r.categories.Lookup(label); ok {
			out = append(out, careers...)
		}
	}
	return out
}

func defaultRules(categories CategoryTable) []Rule {
	return []Rule{
		&matchRule{
			name:    "education_advanced",
			match:   func(in *Input) bool { return containsAny(in.Education, advancedEducationKeywords) },
			careers: advancedEducationCareers,
		},
		&gateRule{
			name: "education_basic",
			cond: func(in *Input) bool { return containsAny(in.Education, basicEducationKeywords) },
			nested: []Rule{
				&matchRule{
					name:    "tech",
					match:   func(in *Input) bool { return containsAny(in.TechnicalSkills, techSkillKeywords) },
					careers: techCareers,
				},
				&matchRule{
					name:    "finance",
					match:   func(in *Input) bool { return containsAny(in.PreviousField, financeFieldKeywords) },
					careers: financeCareers,
				},
				&matchRule{
					name: "design",
					match: func(in *Input) bool {
						return containsAny(in.PreviousField, designFieldKeywords) || containsAny(in.TechnicalSkills, designToolKeywords)
					},
					careers: designCareers,
				},
				&matchRule{
					name:    "health",
					match:   func(in *Input) bool { return containsAny(in.PreviousField, healthFieldKeywords) },
					careers: healthCareers,
				},
			},
		},
		&matchRule{
			name:    "experience_senior",
			match:   func(in *Input) bool { return ExperienceYears(in.Experience) >= seniorYears },
			careers: seniorCareers,
		},
		&matchRule{
			name:    "personality_creative",
			match:   func(in *Input) bool { return containsAny(in.Personality, creativeKeywords) },
			careers: creativeCareers,
		},
		&matchRule{
			name: "personality_analytical",
			match: func(in *Input) bool {
				return containsAny(in.Personality, analyticalKeywords) || containsAny(in.Strengths, []string{problemSolvingKeyword})
			},
			careers: analyticalCareers,
		},
		&matchRule{
			name: "personality_extrovert",
			match: func(in *Input) bool {
				return containsAny(in.Personality, extrovertKeywords) && containsAny(in.SoftSkills, []string{communicationKeyword})
			},
			careers: extrovertCareers,
		},
		&matchRule{
			name: "personality_introvert",
			match: func(in *Input) bool {
				return containsAny(in.Personality, []string{introvertKeyword}) || containsAny(in.Strengths, []string{researchKeyword})
			},
			careers: introvertCareers,
		},
		&matchRule{
			name:    "goal_leadership",
			match:   func(in *Input) bool { return containsAny(in.LongTermGoal, leadershipKeywords) },
			careers: leadershipCareers,
		},
		&matchRule{
			name:    "goal_entrepreneur",
			match:   func(in *Input) bool { return containsAny(in.LongTermGoal, entrepreneurKeywords) },
			careers: entrepreneurCareers,
		},
		&domainRule{categories: categories},
		&matchRule{
			name:    "work_remote",
			match:   func(in *Input) bool { return containsAny(in.WorkEnvironment, []string{remoteKeyword}) },
			careers: remoteCareers,
		},
		&gateRule{
			name: "salary_high",
			cond: func(in *Input) bool { return in.DesiredSalary == SalaryHigh },
			nested: []Rule{
				&matchRule{
					name:    "technology",
					match:   func(in *Input) bool { return containsAny(in.domainText, highSalaryTechnology) },
					careers: highSalaryTechCareers,
				},
				&matchRule{
					name:    "finance",
					match:   func(in *Input) bool { return containsAny(in.domainText, highSalaryFinance) },
					careers: highSalaryFinanceCareers,
				},
			},
		},
	}
}

// describeRules flattens rule names, joining nested rules to their parent with a dot.
func describeRules(rules []Rule, prefix string) []string {
	names := make([]string, 0, len(rules))
	for _, rule := range rules {
		name := prefix + rule.Name()
		names = append(names, name)
		if parent, ok := rule.(interface{ Nested() []Rule }); ok {
			names = append(names, describeRules(parent.Nested(), name+".")...)
		}
	}
	return names
}
