// Package career maps a user profile to suggested career titles using fixed keyword rules.
package career

// Step records what a single rule contributed, before deduplication.
type Step struct {
	Rule  string   `json:"rule"`
	Added []string `json:"added,omitempty"`
}

// Result is the outcome of evaluating a profile.
type Result struct {
	// Careers is ordered, unique and never empty.
	Careers []string `json:"careers"`
	Steps   []Step   `json:"steps"`
	// Fallback is set when no rule matched and Careers is the default list.
	Fallback bool `json:"fallback"`
}

// Engine evaluates profiles against an ordered rule list.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	rules []Rule
}

var defaultEngine = New(defaultCategories)

// New creates an engine that resolves domains through categories.
// The table is copied; later changes to it have no effect.
func New(categories CategoryTable) *Engine {
	return &Engine{rules: defaultRules(categories.Clone())}
}

// Default returns the engine backed by the built-in domain table.
func Default() *Engine {
	return defaultEngine
}

// Suggest returns career suggestions for p using the built-in domain table.
func Suggest(p Profile) []string {
	return defaultEngine.Suggest(p)
}

// Suggest returns the ordered, deduplicated career suggestions for p.
func (e *Engine) Suggest(p Profile) []string {
	return e.Evaluate(p).Careers
}

// Evaluate runs every rule against p in order and returns the suggestions with a per-rule trace.
func (e *Engine) Evaluate(p Profile) Result {
	in := newInput(p)

	steps := make([]Step, 0, len(e.rules))
	var collected []string
	for _, rule := range e.rules {
		added := rule.Apply(in)
		steps = append(steps, Step{Rule: rule.Name(), Added: append([]string(nil), added...)})
		collected = append(collected, added...)
	}

	careers := dedupe(collected)
	if len(careers) == 0 {
		return Result{Careers: FallbackCareers(), Steps: steps, Fallback: true}
	}

	return Result{Careers: careers, Steps: steps}
}

// Rules returns the rule names in evaluation order, nested rules as parent.child.
func (e *Engine) Rules() []string {
	return describeRules(e.rules, "")
}

// dedupe keeps the first occurrence of every title.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
