package career

import "strings"

// Keyword sets. A set matches when the text contains any member as a substring.
var (
	advancedEducationKeywords = []string{"phd", "doctorate", "post doc", "master", "m.tech", "ms", "mba"}
	basicEducationKeywords    = []string{"bachelor", "diploma", "high school", "b.tech", "b.e", "bsc", "degree", "undergrad"}

	techSkillKeywords     = []string{"coding", "programming", "python", "java", "c++", "html", "sql", "data"}
	financeFieldKeywords  = []string{"finance", "account", "banking", "commerce", "economics"}
	designFieldKeywords   = []string{"design", "art"}
	designToolKeywords    = []string{"photoshop", "figma"}
	healthFieldKeywords   = []string{"bio", "health", "medical", "pharma"}
	creativeKeywords      = []string{"creative", "artistic", "imaginative"}
	analyticalKeywords    = []string{"analytical", "logical", "detail"}
	extrovertKeywords     = []string{"extrovert", "outgoing", "social"}
	leadershipKeywords    = []string{"manager", "lead", "director", "vp"}
	entrepreneurKeywords  = []string{"startup", "business", "own company", "entrepreneur"}
	highSalaryTechnology  = []string{"technology"}
	highSalaryFinance     = []string{"business", "finance"}
	problemSolvingKeyword = "problem solving"
	communicationKeyword  = "communication"
	introvertKeyword      = "introvert"
	researchKeyword       = "research"
	remoteKeyword         = "remote"
)

// Titles appended by each rule.
var (
	advancedEducationCareers = []string{"Research Scientist", "University Lecturer", "Senior Consultant"}
	techCareers              = []string{"Software Developer", "Data Analyst", "Web Developer"}
	financeCareers           = []string{"Financial Analyst"}
	designCareers            = []string{"Graphic Designer"}
	healthCareers            = []string{"Healthcare Administrator"}
	seniorCareers            = []string{"Senior Specialist", "Management Consultant"}
	creativeCareers          = []string{"Content Creator", "Digital Marketer", "UX Designer"}
	analyticalCareers        = []string{"Business Analyst", "Data Scientist", "Quality Assurance Engineer"}
	extrovertCareers         = []string{"Public Relations Manager", "Sales Manager", "HR Specialist"}
	introvertCareers         = []string{"Research Analyst"}
	leadershipCareers        = []string{"Project Manager", "Team Lead"}
	entrepreneurCareers      = []string{"Entrepreneur / Founder"}
	remoteCareers            = []string{"Freelance Developer", "Remote Content Writer"}
	highSalaryTechCareers    = []string{"Machine Learning Engineer"}
	highSalaryFinanceCareers = []string{"Investment Banker"}
	fallbackCareers          = []string{"General Consultant", "Freelancer", "Office Administrator", "Career Counselor"}
)

// experienceYears maps an experience bucket to a representative year count.
var experienceYears = map[string]int{
	ExperienceNone:    0,
	ExperienceJunior:  2,
	ExperienceMiddle:  4,
	ExperienceSenior:  8,
	ExperienceVeteran: 12,
}

// seniorYears is the mapped year count from which senior careers are suggested.
const seniorYears = 5

// ExperienceYears returns the representative year count for a bucket; unknown buckets map to 0.
func ExperienceYears(bucket string) int {
	return experienceYears[bucket]
}

// FallbackCareers returns the suggestions used when no rule matches.
func FallbackCareers() []string {
	return append([]string(nil), fallbackCareers...)
}

// IsFallback reports whether careers is exactly the fallback list.
func IsFallback(careers []string) bool {
	if len(careers) != len(fallbackCareers) {
		return false
	}
	for i := range careers {
		if careers[i] != fallbackCareers[i] {
			return false
		}
	}
	return true
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
