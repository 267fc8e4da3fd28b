package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-buddy/internal/career"
	"github.com/spigell/career-buddy/internal/logger"
	"github.com/spigell/career-buddy/internal/profile"
	"github.com/spigell/career-buddy/internal/report"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "Evaluate several profile files at once",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		batch(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntP("concurrency", "c", defaultConcurrency, "how many profiles to evaluate at the same time")

	viper.BindPFlag("batch.concurrency", batchCmd.Flags().Lookup("concurrency"))
}

type batchResult struct {
	path   string
	report *report.Report
	err    error
}

func batch(cmd *cobra.Command, paths []string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	s := &session{
		engine: career.Default(),
		config: config,
		logger: logger,
		out:    cmd.OutOrStdout(),
	}

	logger.Info("starting the batch",
		zap.Int("profiles", len(paths)),
		zap.Int("concurrency", config.Batch.Concurrency),
	)

	results := s.evaluateFiles(paths, config.Batch.Concurrency)

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			logger.Error("evaluating profile", zap.String("path", res.path), zap.Error(res.err))
		}
	}

	if err := writeBatch(s.out, results, config.Output); err != nil {
		logger.Fatal("rendering suggestions", zap.Error(err))
	}

	if failed > 0 {
		logger.Fatal("batch finished with errors", zap.Int("failed", failed), zap.Int("total", len(results)))
	}

	logger.Info("batch finished", zap.Int("total", len(results)))
}

// evaluateFiles loads and evaluates every file. Results keep the order of paths.
func (s *session) evaluateFiles(paths []string, concurrency int) []batchResult {
	results := make([]batchResult, len(paths))

	p := pool.New().WithMaxGoroutines(concurrency)
	for idx, path := range paths {
		idx, path := idx, path
		p.Go(func() {
			results[idx] = s.evaluateFile(path)
		})
	}
	p.Wait()

	return results
}

func (s *session) evaluateFile(path string) batchResult {
	p, err := profile.Load(path)
	if err != nil {
		return batchResult{path: path, err: err}
	}

	rep, err := s.evaluate(p, sourceFile)
	if err != nil {
		return batchResult{path: path, err: fmt.Errorf("profile file %q: %w", path, err)}
	}

	return batchResult{path: path, report: rep}
}

func writeBatch(w io.Writer, results []batchResult, format string) error {
	if strings.EqualFold(strings.TrimSpace(format), report.FormatJSON) {
		type entry struct {
			Path   string         `json:"path"`
			Error  string         `json:"error,omitempty"`
			Report *report.Report `json:"report,omitempty"`
		}

		entries := make([]entry, 0, len(results))
		for _, res := range results {
			e := entry{Path: res.path, Report: res.report}
			if res.err != nil {
				e.Error = res.err.Error()
			}
			entries = append(entries, e)
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for i, res := range results {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "== %s\n", res.path); err != nil {
			return err
		}

		if res.err != nil {
			if _, err := fmt.Fprintf(w, "error: %s\n", res.err); err != nil {
				return err
			}
			continue
		}

		if err := res.report.Write(w, format); err != nil {
			return err
		}
	}

	return nil
}
