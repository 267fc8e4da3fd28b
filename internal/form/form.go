// Package form asks the user for a career profile in the terminal.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/spigell/career-buddy/internal/career"
)

// Prompter is the set of questions the form can ask.
type Prompter interface {
	// Text asks for free text, def is prefilled.
	Text(label, def string) (string, error)
	// Select asks to choose one of items, def is preselected when present.
	Select(label string, items []string, def string) (string, error)
	// Confirm asks a yes/no question. "No" is not an error.
	Confirm(label string, def bool) (bool, error)
}

// Terminal is a Prompter backed by promptui.
type Terminal struct{}

func (Terminal) Text(label, def string) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
	}
	value, err := p.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (Terminal) Select(label string, items []string, def string) (string, error) {
	cursor := 0
	for i, item := range items {
		if item == def {
			cursor = i
			break
		}
	}

	p := promptui.Select{
		Label:     label,
		Items:     items,
		CursorPos: cursor,
		Size:      len(items),
	}
	_, value, err := p.Run()
	return value, err
}

func (Terminal) Confirm(label string, def bool) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if def {
		p.Default = "y"
	}

	value, err := p.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}

	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return def, nil
	}
	return value == "y" || value == "yes", nil
}

// Defaults returns the answers preselected when nothing else is configured.
func Defaults() career.Profile {
	return career.Profile{
		AgeGroup:        "18–25",
		Experience:      career.ExperienceNone,
		WorkEnvironment: career.EnvironmentOffice,
		DesiredSalary:   career.SalaryMedium,
	}
}

// Collect asks every profile question in form order. Any prompter error,
// including an interrupt, aborts the form.
func Collect(p Prompter, defaults career.Profile) (career.Profile, error) {
	var (
		out career.Profile
		err error
	)

	selectField := func(dst *string, label string, items []string, def string) {
		if err != nil {
			return
		}
		*dst, err = p.Select(label, items, def)
		if err != nil {
			err = fmt.Errorf("%s: %w", label, err)
		}
	}

	textField := func(dst *string, label, def string) {
		if err != nil {
			return
		}
		*dst, err = p.Text(label, def)
		if err != nil {
			err = fmt.Errorf("%s: %w", label, err)
		}
	}

	selectField(&out.AgeGroup, "Age Group", career.AgeGroups(), defaults.AgeGroup)
	textField(&out.Education, "Education (e.g., B.Tech, MBA, High School)", defaults.Education)
	textField(&out.PreviousField, "Previous Field (e.g., Finance, IT, Sales)", defaults.PreviousField)
	textField(&out.TechnicalSkills, "Technical Skills (e.g., Python, Excel, Design)", defaults.TechnicalSkills)
	textField(&out.SoftSkills, "Soft Skills (e.g., Communication, Leadership)", defaults.SoftSkills)
	selectField(&out.Experience, "Experience Level", career.ExperienceLevels(), defaults.Experience)
	if err != nil {
		return out, err
	}

	out.Domains, err = collectDomains(p, defaults.Domains)
	if err != nil {
		return out, err
	}

	textField(&out.Motivation, "Motivation", defaults.Motivation)
	textField(&out.Personality, "Personality (e.g., Creative, Logical, Introvert)", defaults.Personality)
	textField(&out.LongTermGoal, "Long Term Goal (e.g., Manager, Business Owner)", defaults.LongTermGoal)
	selectField(&out.WorkEnvironment, "Preferred Work Environment", career.WorkEnvironments(), defaults.WorkEnvironment)
	selectField(&out.DesiredSalary, "Desired Salary", career.SalaryLevels(), defaults.DesiredSalary)
	textField(&out.Strengths, "Key Strengths", defaults.Strengths)

	return out, err
}

func collectDomains(p Prompter, preselected []string) ([]string, error) {
	var selected []string
	for _, domain := range career.Domains() {
		def := false
		for _, pre := range preselected {
			if strings.EqualFold(pre, domain) {
				def = true
				break
			}
		}

		ok, err := p.Confirm(fmt.Sprintf("Interested in %s", domain), def)
		if err != nil {
			return nil, fmt.Errorf("domains: %w", err)
		}
		if ok {
			selected = append(selected, domain)
		}
	}
	return selected, nil
}
