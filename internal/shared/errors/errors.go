package errors

import "errors"

// Domain errors
var (
	// Check construction errors
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidPort    = errors.New("invalid port")

	// Dispatch and argument errors
	ErrUnknownCheckType      = errors.New("unknown check type")
	ErrInsufficientArguments = errors.New("insufficient arguments")
	ErrInvalidArguments      = errors.New("invalid arguments")
	ErrNotImplemented        = errors.New("check type not implemented")

	// Probe errors
	ErrProtocolRequired = errors.New("protocol required")
	ErrNetwork          = errors.New("network error")
	ErrProbePanic       = errors.New("probe panicked")

	// Loader errors
	ErrUnsupportedFormat = errors.New("unsupported check file format")
	ErrInvalidDefinition = errors.New("invalid check definition")
)
