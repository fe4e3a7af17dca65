// Package constants centralizes defaults shared between the CLI and the check engine.
//
// Probe timeouts, default service ports, and file permissions live here so the
// cmd/ layer can expose them as flags without importing probe internals.
package constants
