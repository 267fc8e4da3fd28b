package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/career-buddy/internal/career"
	"github.com/spigell/career-buddy/internal/report"
)

type scriptedPrompter struct {
	education string
}

func (p *scriptedPrompter) Text(label, def string) (string, error) {
	if strings.HasPrefix(label, "Education") {
		return p.education, nil
	}
	return def, nil
}

func (p *scriptedPrompter) Select(_ string, _ []string, def string) (string, error) {
	return def, nil
}

func (p *scriptedPrompter) Confirm(_ string, def bool) (bool, error) {
	return def, nil
}

func newTestSession(t *testing.T, cfg *Config) (*session, *bytes.Buffer, *observer.ObservedLogs) {
	t.Helper()

	core, observed := observer.New(zapcore.DebugLevel)
	out := &bytes.Buffer{}
	if cfg == nil {
		cfg = &Config{Output: report.FormatText, Batch: &BatchConfig{Concurrency: 2}}
	}

	return &session{
		engine:   career.Default(),
		config:   cfg,
		logger:   zap.New(core),
		out:      out,
		prompter: &scriptedPrompter{education: "PhD"},
	}, out, observed
}

func TestSessionEvaluateLenient(t *testing.T) {
	s, _, observed := newTestSession(t, nil)

	rep, err := s.evaluate(career.Profile{Domains: []string{"Astrology"}}, sourceFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !rep.Fallback {
		t.Fatalf("expected fallback for unknown domain, got %q", rep.Careers)
	}

	warnings := observed.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 validation warning, got %d", len(warnings))
	}

	ready := observed.FilterMessage("suggestions ready").All()
	if len(ready) != 1 {
		t.Fatalf("expected suggestions ready entry, got %d", len(ready))
	}

	ctx := ready[0].ContextMap()
	if ctx["submission_id"] != rep.ID || ctx["profile_source"] != sourceFile {
		t.Fatalf("unexpected submission fields: %v", ctx)
	}
}

func TestSessionEvaluateStrict(t *testing.T) {
	s, _, _ := newTestSession(t, &Config{Strict: true, Batch: &BatchConfig{}})

	if _, err := s.evaluate(career.Profile{Experience: "100"}, sourceForm); err == nil {
		t.Fatalf("expected strict validation error")
	}

	rep, err := s.evaluate(career.Profile{Experience: career.ExperienceVeteran}, sourceForm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rep.Careers[0] != "Senior Specialist" {
		t.Fatalf("unexpected careers: %q", rep.Careers)
	}
}

func TestSessionEvaluateLogsMatchedRules(t *testing.T) {
	s, _, observed := newTestSession(t, nil)

	if _, err := s.evaluate(career.Profile{Education: "MBA", WorkEnvironment: "remote"}, sourceForm); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matched := observed.FilterMessage("rule matched").All()
	if len(matched) != 2 {
		t.Fatalf("expected 2 matched rules, got %d", len(matched))
	}

	if matched[0].ContextMap()["rule"] != "education_advanced" {
		t.Fatalf("unexpected first rule: %v", matched[0].ContextMap())
	}
}

func TestSessionShow(t *testing.T) {
	s, out, _ := newTestSession(t, nil)

	if _, err := s.show(career.Profile{Strengths: "research"}, sourceForm, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expect := "Based on your profile:\n\n  • Research Analyst\npersonality_introvert: Research Analyst\n"
	if out.String() != expect {
		t.Fatalf("expected %q, got %q", expect, out.String())
	}
}

func TestHandleAction(t *testing.T) {
	s, out, _ := newTestSession(t, nil)
	last := career.Profile{Strengths: "research"}
	rep, err := s.evaluate(last, sourceForm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	next, done, err := s.handleAction(PromptStartOver, rep, last)
	if err != nil || !done {
		t.Fatalf("expected start over to finish, got done=%v err=%v", done, err)
	}
	if next.Education != "PhD" || next.Strengths != "research" {
		t.Fatalf("expected new answers over previous ones, got %+v", next)
	}

	if _, done, err = s.handleAction(PromptExplain, rep, last); err != nil || done {
		t.Fatalf("unexpected explain result: done=%v err=%v", done, err)
	}
	if !strings.Contains(out.String(), "personality_introvert") {
		t.Fatalf("expected explanation output, got %q", out.String())
	}

	if _, _, err = s.handleAction(PromptExplain, nil, last); err == nil {
		t.Fatalf("expected error without a report")
	}

	if _, _, err = s.handleAction(PromptExit, rep, last); !errors.Is(err, errExit) {
		t.Fatalf("expected errExit, got %v", err)
	}

	if _, _, err = s.handleAction("dance", rep, last); err == nil {
		t.Fatalf("expected error for unknown action")
	}
}

func TestEvaluateFiles(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	paths := []string{
		write("phd.yaml", "education: PhD\n"),
		filepath.Join(dir, "missing.yaml"),
		write("remote.json", `{"work_environment": "remote"}`),
		write("empty.yaml", "personality: quiet\n"),
	}

	results := s.evaluateFiles(paths, 3)
	if len(results) != len(paths) {
		t.Fatalf("expected %d results, got %d", len(paths), len(results))
	}

	for i, res := range results {
		if res.path != paths[i] {
			t.Fatalf("result %d: expected path %q, got %q", i, paths[i], res.path)
		}
	}

	if results[0].err != nil || results[0].report.Careers[0] != "Research Scientist" {
		t.Fatalf("unexpected first result: %+v", results[0])
	}

	if results[1].err == nil {
		t.Fatalf("expected error for missing file")
	}

	if results[2].err != nil || results[2].report.Careers[0] != "Freelance Developer" {
		t.Fatalf("unexpected third result: %+v", results[2])
	}

	if results[3].err != nil || !results[3].report.Fallback {
		t.Fatalf("expected fallback for last result: %+v", results[3])
	}

	var text bytes.Buffer
	if err := writeBatch(&text, results, report.FormatText); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text.String(), "== "+paths[1]+"\nerror: ") {
		t.Fatalf("expected error entry in text output, got %q", text.String())
	}

	var raw bytes.Buffer
	if err := writeBatch(&raw, results, report.FormatJSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []struct {
		Path   string          `json:"path"`
		Error  string          `json:"error"`
		Report json.RawMessage `json:"report"`
	}
	if err := json.Unmarshal(raw.Bytes(), &decoded); err != nil {
		t.Fatalf("decode batch json: %v", err)
	}
	if len(decoded) != 4 || decoded[1].Error == "" || len(decoded[0].Report) == 0 {
		t.Fatalf("unexpected batch json: %s", raw.String())
	}
}

func TestWriteCatalog(t *testing.T) {
	var out bytes.Buffer
	if err := writeCatalog(&out, career.DefaultCategories(), career.Default()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := out.String()
	for _, fragment := range []string{
		"  Technology: IT Consultant, Network Administrator, Systems Engineer\n",
		"  Entrepreneurship: Business Developer, Product Manager\n",
		"    education_basic.tech\n",
		"  salary_high\n",
	} {
		if !strings.Contains(text, fragment) {
			t.Fatalf("expected %q in catalog, got %q", fragment, text)
		}
	}
}

func TestFormDefaults(t *testing.T) {
	cfg := &Config{Defaults: map[string]any{"desired_salary": "high", "domains": "Healthcare"}}

	defaults, err := cfg.FormDefaults()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if defaults.DesiredSalary != career.SalaryHigh || defaults.Experience != career.ExperienceNone {
		t.Fatalf("unexpected defaults: %+v", defaults)
	}

	if len(defaults.Domains) != 1 || defaults.Domains[0] != career.DomainHealthcare {
		t.Fatalf("unexpected domains: %q", defaults.Domains)
	}

	bad := &Config{Defaults: map[string]any{"favourite_colour": "blue"}}
	if _, err := bad.FormDefaults(); err == nil {
		t.Fatalf("expected error for unknown default key")
	}
}
