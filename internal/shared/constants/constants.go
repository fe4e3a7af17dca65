package constants

import (
	"io/fs"
	"time"
)

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// PingTimeout bounds a reachability connect attempt.
	PingTimeout = 4 * time.Second
	// HTTPTimeout bounds a whole HTTP fetch including the body read.
	HTTPTimeout = 10 * time.Second
	DNSTimeout  = 5 * time.Second
	SMBTimeout  = 10 * time.Second
	FTPTimeout  = 10 * time.Second
)

const (
	// MaxBodyBytes caps how much of an HTTP response body a fetch keeps.
	MaxBodyBytes = 1 << 20
	// DNSCanaryDomain is resolved by a dns check that carries no arguments.
	DNSCanaryDomain = "google.com"
	// DefaultUserAgent is sent with every HTTP fetch.
	DefaultUserAgent = "scorecheck"
)

const (
	DefaultDNSPort = 53
	DefaultSMBPort = 445
	DefaultFTPPort = 21
)
