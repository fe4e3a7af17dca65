package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/khanhnv2901/scorecheck/internal/checker"
	"github.com/khanhnv2901/scorecheck/internal/config"
)

var (
	checksFile  string
	outputPath  string
	skipInvalid bool
	failOnError bool
	noResults   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every check in a definitions file",
	Long: `Load checks from a YAML or CSV file, run them concurrently and report
one result per check. A check either passes, fails, or errors; errors
(bad arguments, unknown types, network failures on HTTP checks) never stop
the rest of the batch.`,
	Example: `  scorecheck run --checks checks.yaml
  scorecheck run --checks hosts.csv --concurrency 50 --retries 2 --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appCtx := getAppContext(cmd)
		cfg := appCtx.Config
		if err := validateFormat(cfg.Output.Format); err != nil {
			return err
		}

		checks, err := loadChecks(appCtx, checksFile, skipInvalid)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// An interrupted run still reports what completed before the signal.
		out, runErr := executeRun(ctx, appCtx, checks, cmd.ErrOrStderr())

		if !noResults {
			path, err := resultsPath(appCtx.ResultsDir, outputPath, out.Metadata.RunID)
			if err != nil {
				return err
			}
			if err := writeRunOutput(path, out); err != nil {
				return err
			}
			appCtx.Logger.Infow("results written", "path", path, "run_id", out.Metadata.RunID)
		}

		if err := renderResults(cmd.OutOrStdout(), cfg.Output.Format, out); err != nil {
			return err
		}

		if runErr != nil {
			return runErr
		}
		if failOnError && out.Summary.Errors > 0 {
			return &RunFailedError{Errored: out.Summary.Errors, Total: out.Summary.Total}
		}
		return nil
	},
}

// loadChecks reads the definitions file. With skipInvalid, bad definitions
// are logged and the valid ones are returned.
func loadChecks(appCtx *AppContext, path string, skipInvalid bool) ([]*checker.Check, error) {
	checks, err := config.LoadFile(path)
	if err != nil {
		if !skipInvalid || checks == nil {
			return nil, &ChecksFileError{Path: path, Err: err}
		}
		appCtx.Logger.Warnw("skipping invalid check definitions", "path", path, "error", err.Error())
	}
	appCtx.Logger.Debugw("checks loaded", "path", path, "count", len(checks))
	return checks, nil
}

func executeRun(ctx context.Context, appCtx *AppContext, checks []*checker.Check, progressOut io.Writer) (RunOutput, error) {
	cfg := appCtx.Config
	runID := uuid.NewString()
	logger := appCtx.Logger.With("run_id", runID)

	prober := checker.NewProber(cfg.Probes.ProbeOptions()).WithLogger(logger)
	runner := &checker.Runner{
		Concurrency: cfg.Runner.Concurrency,
		RateLimit:   cfg.Runner.RateLimit,
		Retries:     cfg.Runner.Retries,
		RetryDelay:  cfg.Runner.RetryDelay,
		Prober:      prober,
		Logger:      logger,
	}

	var onResult checker.ResultFunc
	if cfg.Output.Progress {
		progress := newProgressPrinter(progressOut, len(checks), "run")
		progress.Start()
		defer progress.Stop()
		onResult = progress.Observe
	}

	logger.Infow("run started", "checks", len(checks), "concurrency", runner.Concurrency, "rate_limit", runner.RateLimit)
	started := time.Now()
	results := runner.Run(ctx, checks, onResult)
	finished := time.Now()

	out := newRunOutput(RunMetadata{
		RunID:      runID,
		ChecksFile: checksFile,
		StartedAt:  started.UTC(),
		FinishedAt: finished.UTC(),
		Version:    Version,
	}, results)
	logger.Infow("run finished",
		"passed", out.Summary.Passed,
		"failed", out.Summary.Failed,
		"errored", out.Summary.Errors,
		"duration", finished.Sub(started).String())

	if cfg.Output.Telemetry {
		if err := recordTelemetry(appCtx, "run", runID, results, finished.Sub(started)); err != nil {
			logger.Warnw("telemetry not recorded", "error", err.Error())
		}
	}

	if err := ctx.Err(); err != nil {
		return out, fmt.Errorf("run interrupted: %w", err)
	}
	return out, nil
}

func init() {
	flags := runCmd.Flags()
	cfg := cliConfig

	flags.StringVarP(&checksFile, "checks", "c", "", "check definitions file (.yaml, .yml or .csv)")
	_ = runCmd.MarkFlagRequired("checks")

	flags.IntVar(&cfg.Runner.Concurrency, "concurrency", cfg.Runner.Concurrency, "maximum checks in flight")
	flags.IntVar(&cfg.Runner.RateLimit, "rate-limit", cfg.Runner.RateLimit, "check starts per second, 0 for unlimited")
	flags.IntVar(&cfg.Runner.Retries, "retries", cfg.Runner.Retries, "extra attempts for checks that hit a network error")
	flags.DurationVar(&cfg.Runner.RetryDelay, "retry-delay", cfg.Runner.RetryDelay, "pause between retry attempts")

	flags.DurationVar(&cfg.Probes.PingTimeout, "ping-timeout", cfg.Probes.PingTimeout, "TCP connect timeout for ping checks")
	flags.DurationVar(&cfg.Probes.HTTPTimeout, "http-timeout", cfg.Probes.HTTPTimeout, "request timeout for url, content and pageExists checks")
	flags.DurationVar(&cfg.Probes.DNSTimeout, "dns-timeout", cfg.Probes.DNSTimeout, "query timeout for dns checks")
	flags.DurationVar(&cfg.Probes.SMBTimeout, "smb-timeout", cfg.Probes.SMBTimeout, "session timeout for smb checks")
	flags.DurationVar(&cfg.Probes.FTPTimeout, "ftp-timeout", cfg.Probes.FTPTimeout, "session timeout for ftp checks")
	flags.BoolVar(&cfg.Probes.InsecureTLS, "insecure-tls", cfg.Probes.InsecureTLS, "skip TLS certificate verification on https checks")

	flags.StringVar(&cfg.Output.ResultsDir, "results-dir", cfg.Output.ResultsDir, "directory for results files and telemetry")
	flags.StringVarP(&cfg.Output.Format, "format", "f", cfg.Output.Format, "output format: table or json")
	flags.BoolVar(&cfg.Output.Progress, "progress", cfg.Output.Progress, "show live progress on stderr")
	flags.BoolVar(&cfg.Output.Telemetry, "telemetry", cfg.Output.Telemetry, "append run metrics to telemetry.jsonl")

	flags.StringVarP(&outputPath, "output", "o", "", "results file path (default <results-dir>/run-<id>.json)")
	flags.BoolVar(&noResults, "no-results", false, "do not write a results file")
	flags.BoolVar(&skipInvalid, "skip-invalid", false, "run the valid checks when some definitions are invalid")
	flags.BoolVar(&failOnError, "fail-on-error", false, "exit with status 2 when any check errors")
}
