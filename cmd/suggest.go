package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-buddy/internal/career"
	"github.com/spigell/career-buddy/internal/form"
	"github.com/spigell/career-buddy/internal/logger"
	"github.com/spigell/career-buddy/internal/profile"
	"github.com/spigell/career-buddy/internal/report"
)

const (
	PromptStartOver = "Start over"
	PromptExplain   = "Explain matches"
	PromptDump      = "Dump suggestions to file"
	PromptExit      = "Exit"

	sourceForm = "form"
	sourceFile = "file"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptStartOver, PromptExplain, PromptDump, PromptExit},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Fill in your profile and get career suggestions",
	Run: func(cmd *cobra.Command, _ []string) {
		suggest(cmd)
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().StringP("profile", "p", "", "read the profile from a yaml/json file instead of asking")
	suggestCmd.Flags().BoolP("no-menu", "y", false, "print the suggestions once and exit")
	suggestCmd.Flags().Bool("explain", false, "also print which rule suggested what")
}

// session holds everything one run of the command needs to evaluate profiles.
type session struct {
	engine   *career.Engine
	config   *Config
	logger   *zap.Logger
	out      io.Writer
	prompter form.Prompter
}

// suggest is the interactive entry point: ask, evaluate, render, repeat.
func suggest(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the career-buddy", zap.String("version", version))

	defaults, err := config.FormDefaults()
	if err != nil {
		logger.Fatal("preparing form defaults", zap.Error(err))
	}

	s := &session{
		engine:   career.Default(),
		config:   config,
		logger:   logger,
		out:      cmd.OutOrStdout(),
		prompter: form.Terminal{},
	}

	noMenu, _ := cmd.Flags().GetBool("no-menu")
	explain, _ := cmd.Flags().GetBool("explain")

	var (
		p      career.Profile
		source = sourceForm
	)

	if path, _ := cmd.Flags().GetString("profile"); path != "" {
		p, err = profile.Load(path)
		if err != nil {
			logger.Fatal("loading the profile", zap.Error(err))
		}
		source = sourceFile
	} else if p, err = form.Collect(s.prompter, defaults); err != nil {
		logger.Info("exiting", zap.String("reason", err.Error()))
		return
	}

	for {
		rep, err := s.show(p, source, explain)
		if err != nil {
			// A failed submission is reported and the user may try again.
			logger.Warn("could not generate suggestions", zap.Error(err))
		}

		if noMenu {
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
			return
		}

		next, err := s.menu(rep, p)
		if err != nil {
			if errors.Is(err, errExit) || errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				logger.Info("exiting", zap.String("reason", "requested by user"))
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		p, source = next, sourceForm
	}
}

// show evaluates p and writes the rendered report.
func (s *session) show(p career.Profile, source string, explain bool) (*report.Report, error) {
	rep, err := s.evaluate(p, source)
	if err != nil {
		return nil, err
	}

	if err := rep.Write(s.out, s.config.Output); err != nil {
		return rep, fmt.Errorf("render suggestions: %w", err)
	}

	if explain {
		if err := rep.Explain(s.out); err != nil {
			return rep, fmt.Errorf("render explanation: %w", err)
		}
	}

	return rep, nil
}

// evaluate validates p at the boundary and runs the engine. It is safe for concurrent use.
func (s *session) evaluate(p career.Profile, source string) (*report.Report, error) {
	id := uuid.NewString()
	subLogger := logger.WithSubmission(s.logger, id, source)

	if err := profile.Validate(p); err != nil {
		if s.config.Strict {
			return nil, err
		}
		subLogger.Warn("profile has values outside the offered choices, continuing", zap.Error(err))
	}

	subLogger.Debug("profile received", logger.ProfileFields(p, logger.DefaultPreviewLength)...)

	result := s.engine.Evaluate(p)
	for _, step := range result.Steps {
		if len(step.Added) == 0 {
			continue
		}
		subLogger.Debug("rule matched", logger.StepFields(step)...)
	}

	rep := report.New(id, p, result)
	subLogger.Info("suggestions ready",
		zap.Int("count", rep.Len()),
		zap.Bool("fallback", rep.Fallback),
	)

	return rep, nil
}

// menu runs the action prompt until the user starts over or leaves.
// Starting over returns the newly collected profile.
func (s *session) menu(rep *report.Report, last career.Profile) (career.Profile, error) {
	for {
		_, action, err := prompt.Run()
		if err != nil {
			return last, err
		}

		next, done, err := s.handleAction(action, rep, last)
		if err != nil {
			if errors.Is(err, errExit) {
				return last, err
			}
			// Keep the menu alive, the user can pick something else.
			s.logger.Warn("action failed", zap.String("action", action), zap.Error(err))
			continue
		}

		if done {
			return next, nil
		}
	}
}

func (s *session) handleAction(action string, rep *report.Report, last career.Profile) (career.Profile, bool, error) {
	switch action {
	case PromptStartOver:
		next, err := form.Collect(s.prompter, last)
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				return last, false, errExit
			}
			return last, false, err
		}
		return next, true, nil
	case PromptExplain:
		if rep == nil {
			return last, false, errors.New("there are no suggestions to explain")
		}
		return last, false, rep.Explain(s.out)
	case PromptDump:
		if rep == nil {
			return last, false, errors.New("there are no suggestions to dump")
		}
		filename, err := rep.DumpToTmpFile()
		if err != nil {
			return last, false, fmt.Errorf("dump suggestions to file: %w", err)
		}
		s.logger.Info("dumping suggestions to file", zap.String("filename", filename))
		return last, false, nil
	case PromptExit:
		return last, false, errExit
	default:
		return last, false, fmt.Errorf("invalid action: %s", action)
	}
}
