// Package profile turns user supplied data into career.Profile records and
// validates them before they reach the engine.
package profile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/spigell/career-buddy/internal/career"
)

// Decode builds a profile from a loosely typed map such as a parsed YAML document.
// Numbers are accepted for text fields and domains may be a comma separated string.
func Decode(raw map[string]any) (career.Profile, error) {
	var p career.Profile
	if len(raw) == 0 {
		return p, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &p,
	})
	if err != nil {
		return p, fmt.Errorf("create profile decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return p, fmt.Errorf("decode profile: %w", err)
	}

	p.Domains = trimAll(p.Domains)
	return p, nil
}

// Load reads a profile from a YAML, JSON or TOML file.
func Load(path string) (career.Profile, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return career.Profile{}, errors.New("profile file path is empty")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		return career.Profile{}, fmt.Errorf("reading profile file %q: %w", path, err)
	}

	p, err := Decode(v.AllSettings())
	if err != nil {
		return p, fmt.Errorf("profile file %q: %w", path, err)
	}

	return p, nil
}

// Merge fills empty fields of p from defaults.
func Merge(p, defaults career.Profile) career.Profile {
	fill := func(dst *string, src string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = src
		}
	}

	fill(&p.AgeGroup, defaults.AgeGroup)
	fill(&p.Education, defaults.Education)
	fill(&p.PreviousField, defaults.PreviousField)
	fill(&p.TechnicalSkills, defaults.TechnicalSkills)
	fill(&p.SoftSkills, defaults.SoftSkills)
	fill(&p.Experience, defaults.Experience)
	fill(&p.Motivation, defaults.Motivation)
	fill(&p.Personality, defaults.Personality)
	fill(&p.LongTermGoal, defaults.LongTermGoal)
	fill(&p.WorkEnvironment, defaults.WorkEnvironment)
	fill(&p.DesiredSalary, defaults.DesiredSalary)
	fill(&p.Strengths, defaults.Strengths)

	if len(p.Domains) == 0 {
		p.Domains = append([]string(nil), defaults.Domains...)
	}

	return p
}

func trimAll(items []string) []string {
	if items == nil {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
