package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/khanhnv2901/scorecheck/internal/checker"
	"github.com/khanhnv2901/scorecheck/internal/shared/constants"
)

const (
	defaultConcurrency = 10
	defaultRetryDelay  = 500 * time.Millisecond
	defaultResultsDir  = "./results"
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	Runner RunnerConfig
	Probes ProbeConfig
	Output OutputConfig
}

// RunnerConfig controls how a batch is scheduled.
type RunnerConfig struct {
	Concurrency int
	RateLimit   int
	Retries     int
	RetryDelay  time.Duration
}

// ProbeConfig holds per-protocol probe settings.
type ProbeConfig struct {
	PingTimeout  time.Duration
	HTTPTimeout  time.Duration
	DNSTimeout   time.Duration
	SMBTimeout   time.Duration
	FTPTimeout   time.Duration
	InsecureTLS  bool
	MaxBodyBytes int64
	DNSCanary    string
}

// OutputConfig controls where and how results are reported.
type OutputConfig struct {
	ResultsDir string
	Format     string
	Telemetry  bool
	Progress   bool
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	probes := checker.DefaultProbeOptions()
	return &CLIConfig{
		Runner: RunnerConfig{
			Concurrency: defaultConcurrency,
			RetryDelay:  defaultRetryDelay,
		},
		Probes: ProbeConfig{
			PingTimeout:  probes.PingTimeout,
			HTTPTimeout:  probes.HTTPTimeout,
			DNSTimeout:   probes.DNSTimeout,
			SMBTimeout:   probes.SMBTimeout,
			FTPTimeout:   probes.FTPTimeout,
			InsecureTLS:  probes.InsecureSkipVerify,
			MaxBodyBytes: probes.MaxBodyBytes,
			DNSCanary:    constants.DNSCanaryDomain,
		},
		Output: OutputConfig{
			ResultsDir: defaultResultsDir,
			Format:     formatTable,
		},
	}
}

// ProbeOptions converts the probe settings for checker.NewProber.
func (c ProbeConfig) ProbeOptions() checker.ProbeOptions {
	return checker.ProbeOptions{
		PingTimeout:        c.PingTimeout,
		HTTPTimeout:        c.HTTPTimeout,
		DNSTimeout:         c.DNSTimeout,
		SMBTimeout:         c.SMBTimeout,
		FTPTimeout:         c.FTPTimeout,
		InsecureSkipVerify: c.InsecureTLS,
		MaxBodyBytes:       c.MaxBodyBytes,
		DNSCanaryDomain:    c.DNSCanary,
	}
}

// applyConfigDefaults merges config file and environment values into the
// runtime config when the user did not explicitly set the corresponding flag.
func applyConfigDefaults(cmd *cobra.Command) {
	flags := cmd.Flags()
	cfg := cliConfig

	applyIntDefault(flags, "concurrency", "runner.concurrency", func(v int) { cfg.Runner.Concurrency = v })
	applyIntDefault(flags, "rate-limit", "runner.rate_limit", func(v int) { cfg.Runner.RateLimit = v })
	applyIntDefault(flags, "retries", "runner.retries", func(v int) { cfg.Runner.Retries = v })
	applyDurationDefault(flags, "retry-delay", "runner.retry_delay", func(v time.Duration) { cfg.Runner.RetryDelay = v })

	applyDurationDefault(flags, "ping-timeout", "probes.ping_timeout", func(v time.Duration) { cfg.Probes.PingTimeout = v })
	applyDurationDefault(flags, "http-timeout", "probes.http_timeout", func(v time.Duration) { cfg.Probes.HTTPTimeout = v })
	applyDurationDefault(flags, "dns-timeout", "probes.dns_timeout", func(v time.Duration) { cfg.Probes.DNSTimeout = v })
	applyDurationDefault(flags, "smb-timeout", "probes.smb_timeout", func(v time.Duration) { cfg.Probes.SMBTimeout = v })
	applyDurationDefault(flags, "ftp-timeout", "probes.ftp_timeout", func(v time.Duration) { cfg.Probes.FTPTimeout = v })
	applyBoolDefault(flags, "insecure-tls", "probes.insecure_tls", func(v bool) { cfg.Probes.InsecureTLS = v })
	if viper.IsSet("probes.max_body_bytes") {
		cfg.Probes.MaxBodyBytes = viper.GetInt64("probes.max_body_bytes")
	}
	if viper.IsSet("probes.dns_canary") {
		cfg.Probes.DNSCanary = viper.GetString("probes.dns_canary")
	}

	applyStringDefault(flags, "results-dir", "output.results_dir", func(v string) { cfg.Output.ResultsDir = v })
	applyStringDefault(flags, "format", "output.format", func(v string) { cfg.Output.Format = v })
	applyBoolDefault(flags, "telemetry", "output.telemetry", func(v bool) { cfg.Output.Telemetry = v })
	applyBoolDefault(flags, "progress", "output.progress", func(v bool) { cfg.Output.Progress = v })
}

// flagChanged reports whether the user set the flag on the command line.
// Commands that do not define the flag never block the config value.
func flagChanged(flags *pflag.FlagSet, name string) bool {
	if flags == nil {
		return false
	}
	flag := flags.Lookup(name)
	return flag != nil && flag.Changed
}

func applyIntDefault(flags *pflag.FlagSet, name, key string, setter func(int)) {
	if setter == nil || flagChanged(flags, name) || !viper.IsSet(key) {
		return
	}
	setter(viper.GetInt(key))
}

func applyBoolDefault(flags *pflag.FlagSet, name, key string, setter func(bool)) {
	if setter == nil || flagChanged(flags, name) || !viper.IsSet(key) {
		return
	}
	setter(viper.GetBool(key))
}

func applyDurationDefault(flags *pflag.FlagSet, name, key string, setter func(time.Duration)) {
	if setter == nil || flagChanged(flags, name) || !viper.IsSet(key) {
		return
	}
	setter(viper.GetDuration(key))
}

func applyStringDefault(flags *pflag.FlagSet, name, key string, setter func(string)) {
	if setter == nil || flagChanged(flags, name) || !viper.IsSet(key) {
		return
	}
	if v := viper.GetString(key); v != "" {
		setter(v)
	}
}
