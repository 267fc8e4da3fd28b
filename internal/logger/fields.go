package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/career-buddy/internal/career"
	"github.com/spigell/career-buddy/internal/utils"
)

const (
	// FieldSubmissionID is the structured log field key for a single form submission.
	FieldSubmissionID = "submission_id"
	// FieldSource tells whether a profile came from the form or a file.
	FieldSource = "profile_source"
)

// DefaultPreviewLength limits free text copied into log entries.
const DefaultPreviewLength = 80

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// WithSubmission attaches the submission id and profile source to the logger.
func WithSubmission(logger *zap.Logger, id, source string) *zap.Logger {
	return WithFields(logger, StringFields(
		StringField{Key: FieldSubmissionID, Value: id},
		StringField{Key: FieldSource, Value: source},
	)...)
}

// ProfileFields describes a profile for debug logs. Free text is flattened to one line
// and cut to limit runes; empty fields are omitted.
func ProfileFields(p career.Profile, limit int) []zap.Field {
	if limit <= 0 {
		limit = DefaultPreviewLength
	}

	preview := func(s string) string {
		return utils.TruncateForLog(utils.SingleLine(s), limit)
	}

	fields := StringFields(
		StringField{Key: "age_group", Value: p.AgeGroup},
		StringField{Key: "education", Value: preview(p.Education)},
		StringField{Key: "previous_field", Value: preview(p.PreviousField)},
		StringField{Key: "technical_skills", Value: preview(p.TechnicalSkills)},
		StringField{Key: "soft_skills", Value: preview(p.SoftSkills)},
		StringField{Key: "experience", Value: p.Experience},
		StringField{Key: "motivation", Value: preview(p.Motivation)},
		StringField{Key: "personality", Value: preview(p.Personality)},
		StringField{Key: "long_term_goal", Value: preview(p.LongTermGoal)},
		StringField{Key: "work_environment", Value: p.WorkEnvironment},
		StringField{Key: "desired_salary", Value: p.DesiredSalary},
		StringField{Key: "strengths", Value: preview(p.Strengths)},
	)

	if len(p.Domains) > 0 {
		fields = append(fields, zap.Strings("domains", p.Domains))
	}

	return fields
}

// StepFields describes one rule contribution.
func StepFields(step career.Step) []zap.Field {
	return []zap.Field{
		zap.String("rule", step.Rule),
		zap.Strings("added", step.Added),
	}
}
