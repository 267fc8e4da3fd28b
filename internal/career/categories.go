package career

import "strings"

// CategoryTable maps a lowercased domain label to its career titles.
type CategoryTable map[string][]string

var defaultCategories = CategoryTable{
	"technology":         {"IT Consultant", "Network Administrator", "Systems Engineer"},
	"business & finance": {"Accountant", "Financial Planner", "Investment Banker"},
	"healthcare":         {"Medical Researcher", "Health Informatics Specialist"},
	"arts & design":      {"UX/UI Designer", "Illustrator", "Art Director"},
	"entrepreneurship":   {"Business Developer", "Product Manager"},
}

// DefaultCategories returns a copy of the built-in domain table.
func DefaultCategories() CategoryTable {
	return defaultCategories.Clone()
}

// Clone returns a deep copy of the table with keys lowercased.
func (t CategoryTable) Clone() CategoryTable {
	out := make(CategoryTable, len(t))
	for label, careers := range t {
		out[strings.ToLower(label)] = append([]string(nil), careers...)
	}
	return out
}

// Lookup returns the careers for a domain label, ignoring case.
func (t CategoryTable) Lookup(label string) ([]string, bool) {
	careers, ok := t[strings.ToLower(label)]
	return careers, ok
}
