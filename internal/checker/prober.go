package checker

import (
	"time"

	"go.uber.org/zap"

	consts "github.com/khanhnv2901/scorecheck/internal/shared/constants"
)

// ProbeOptions bounds and tunes every protocol probe.
type ProbeOptions struct {
	PingTimeout time.Duration
	HTTPTimeout time.Duration
	DNSTimeout  time.Duration
	SMBTimeout  time.Duration
	FTPTimeout  time.Duration

	// InsecureSkipVerify disables TLS certificate validation for https
	// fetches. Scored targets routinely present self-signed certificates.
	InsecureSkipVerify bool

	MaxBodyBytes    int64
	DNSCanaryDomain string
	UserAgent       string
}

// DefaultProbeOptions returns the stock timeouts with TLS verification off.
func DefaultProbeOptions() ProbeOptions {
	return ProbeOptions{
		PingTimeout:        consts.PingTimeout,
		HTTPTimeout:        consts.HTTPTimeout,
		DNSTimeout:         consts.DNSTimeout,
		SMBTimeout:         consts.SMBTimeout,
		FTPTimeout:         consts.FTPTimeout,
		InsecureSkipVerify: true,
		MaxBodyBytes:       consts.MaxBodyBytes,
		DNSCanaryDomain:    consts.DNSCanaryDomain,
		UserAgent:          consts.DefaultUserAgent,
	}
}

// Prober performs the network side of checks. It holds configuration only;
// every probe call opens and releases its own connections.
type Prober struct {
	opts   ProbeOptions
	logger *zap.SugaredLogger
}

// NewProber fills zero-valued options from DefaultProbeOptions.
func NewProber(opts ProbeOptions) *Prober {
	def := DefaultProbeOptions()
	if opts.PingTimeout <= 0 {
		opts.PingTimeout = def.PingTimeout
	}
	if opts.HTTPTimeout <= 0 {
		opts.HTTPTimeout = def.HTTPTimeout
	}
	if opts.DNSTimeout <= 0 {
		opts.DNSTimeout = def.DNSTimeout
	}
	if opts.SMBTimeout <= 0 {
		opts.SMBTimeout = def.SMBTimeout
	}
	if opts.FTPTimeout <= 0 {
		opts.FTPTimeout = def.FTPTimeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = def.MaxBodyBytes
	}
	if opts.DNSCanaryDomain == "" {
		opts.DNSCanaryDomain = def.DNSCanaryDomain
	}
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}
	return &Prober{opts: opts, logger: zap.NewNop().Sugar()}
}

// WithLogger returns a copy of p that logs probe details at debug level.
func (p *Prober) WithLogger(logger *zap.SugaredLogger) *Prober {
	cp := *p
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	cp.logger = logger
	return &cp
}

// Options returns the effective options.
func (p *Prober) Options() ProbeOptions {
	return p.opts
}
