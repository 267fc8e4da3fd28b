// Package report renders career suggestions for the user.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spigell/career-buddy/internal/career"
)

const (
	matchedHeader  = "Based on your profile:"
	fallbackHeader = "No specific matches found. Try entering keywords like 'Python' or 'Creative'! Meanwhile, consider:"
)

// Report is one rendered submission.
type Report struct {
	ID       string         `json:"id"`
	Profile  career.Profile `json:"profile"`
	Careers  []string       `json:"careers"`
	Fallback bool           `json:"fallback"`
	Steps    []career.Step  `json:"steps,omitempty"`
}

// New creates a report for the result of evaluating p.
func New(id string, p career.Profile, r career.Result) *Report {
	return &Report{
		ID:       id,
		Profile:  p,
		Careers:  r.Careers,
		Fallback: r.Fallback || career.IsFallback(r.Careers),
		Steps:    r.Steps,
	}
}

func (r *Report) Len() int {
	return len(r.Careers)
}

// Text writes the suggestions as a bulleted list.
func (r *Report) Text(w io.Writer) error {
	header := matchedHeader
	if r.Fallback {
		header = fallbackHeader
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	for _, c := range r.Careers {
		fmt.Fprintf(&b, "  • %s\n", c)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes the report as indented JSON.
func (r *Report) JSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Explain writes which rule contributed which titles. Rules that matched nothing are skipped.
func (r *Report) Explain(w io.Writer) error {
	var b strings.Builder
	matched := 0
	for _, step := range r.Steps {
		if len(step.Added) == 0 {
			continue
		}
		matched++
		fmt.Fprintf(&b, "%s: %s\n", step.Rule, strings.Join(step.Added, ", "))
	}

	if matched == 0 {
		b.WriteString("no rule matched, showing the general list\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Write renders the report in the named format, "text" or "json".
func (r *Report) Write(w io.Writer, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return r.Text(w)
	case FormatJSON:
		return r.JSON(w)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// Output formats understood by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DumpToTmpFile writes the JSON report to a new file in the OS temp dir and returns its name.
func (r *Report) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "suggestions_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := r.JSON(file); err != nil {
		return "", err
	}
	return file.Name(), nil
}
