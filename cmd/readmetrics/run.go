package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tsawler/readmetrics"
	"github.com/tsawler/readmetrics/config"
	"github.com/tsawler/readmetrics/fetch"
	"github.com/tsawler/readmetrics/table"
)

var flags struct {
	configPath       string
	input            string
	output           string
	timeoutSecs      int
	logLevel         string
	builtinStopwords string
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	logger = logger.With("run_id", runID)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lex := readmetrics.NewLoader(readmetrics.WithLoaderLogger(logger)).LoadAll(cfg.LexiconPaths())
	logger.Info("lexicons loaded",
		"positive", lex.Positive.Len(),
		"negative", lex.Negative.Len(),
		"stop", lex.Stop.Len(),
	)

	rows, err := table.ReadRows(cfg.Input)
	if err != nil {
		return fmt.Errorf("read input %s: %w", cfg.Input, err)
	}
	logger.Info("input loaded", "path", cfg.Input, "rows", len(rows))

	timeout := cfg.FetchTimeout()
	fetchOpts := []fetch.Option{fetch.WithTimeout(timeout)}
	if cfg.UserAgent != "" {
		fetchOpts = append(fetchOpts, fetch.WithUserAgent(cfg.UserAgent))
	}
	if cfg.MaxBodyBytes > 0 {
		fetchOpts = append(fetchOpts, fetch.WithMaxBodyBytes(cfg.MaxBodyBytes))
	}

	pipelineOpts := []readmetrics.PipelineOpt{
		readmetrics.WithLogger(logger),
		readmetrics.WithFetchTimeout(timeout),
	}
	if cfg.BuiltinStopwords != "" {
		builtin, err := readmetrics.NewLanguageStopwords(cfg.BuiltinStopwords)
		if err != nil {
			return err
		}
		pipelineOpts = append(pipelineOpts, readmetrics.WithExtraStopwords(builtin))
		logger.Info("builtin stop words enabled", "language", cfg.BuiltinStopwords)
	}

	pipeline, err := readmetrics.NewPipeline(fetch.New(fetchOpts...), lex, pipelineOpts...)
	if err != nil {
		return err
	}

	results, runErr := pipeline.Run(ctx, rows)

	// The output is written even after cancellation; the rows not reached
	// are zeroed.
	if err := table.WriteFile(context.Background(), cfg.Output, runID, results); err != nil {
		return fmt.Errorf("write output %s: %w", cfg.Output, err)
	}
	logger.Info("results saved", "path", cfg.Output, "summary", readmetrics.Summarize(results))
	return runErr
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := flags.configPath
	if path == "" {
		path = config.GetConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("input") {
		cfg.Input = flags.input
	}
	if fs.Changed("output") {
		cfg.Output = flags.output
	}
	if fs.Changed("timeout") {
		cfg.FetchTimeoutSecs = flags.timeoutSecs
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if fs.Changed("builtin-stopwords") {
		cfg.BuiltinStopwords = flags.builtinStopwords
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
