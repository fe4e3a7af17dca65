package checker

import (
	"context"
	"errors"
	"fmt"

	sharedErrors "github.com/khanhnv2901/scorecheck/internal/shared/errors"
)

// Kind classifies a failure for reporting.
type Kind string

const (
	KindInvalidAddress        Kind = "InvalidAddress"
	KindInvalidPort           Kind = "InvalidPort"
	KindUnknownCheckType      Kind = "UnknownCheckType"
	KindInsufficientArguments Kind = "InsufficientArguments"
	KindInvalidArguments      Kind = "InvalidArguments"
	KindProtocolRequired      Kind = "ProtocolRequired"
	KindNetworkError          Kind = "NetworkError"
	KindNotImplemented        Kind = "NotImplemented"
	KindCancelled             Kind = "Cancelled"
	KindInternal              Kind = "Internal"
)

var kindSentinels = []struct {
	kind Kind
	err  error
}{
	{KindInvalidAddress, sharedErrors.ErrInvalidAddress},
	{KindInvalidPort, sharedErrors.ErrInvalidPort},
	{KindUnknownCheckType, sharedErrors.ErrUnknownCheckType},
	{KindInsufficientArguments, sharedErrors.ErrInsufficientArguments},
	{KindInvalidArguments, sharedErrors.ErrInvalidArguments},
	{KindProtocolRequired, sharedErrors.ErrProtocolRequired},
	{KindNetworkError, sharedErrors.ErrNetwork},
	{KindNotImplemented, sharedErrors.ErrNotImplemented},
}

// KindOf maps err onto the failure taxonomy. Errors outside it are Internal;
// a nil error has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return KindCancelled
	}
	for _, ks := range kindSentinels {
		if errors.Is(err, ks.err) {
			return ks.kind
		}
	}
	return KindInternal
}

// Error is returned by New and Execute. It names the check it belongs to and
// wraps one of the shared sentinel errors.
type Error struct {
	Check string
	Type  Type
	Err   error
}

func (e *Error) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("check %q: %v", e.Check, e.Err)
	}
	return fmt.Sprintf("check %q (%s): %v", e.Check, e.Type, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Kind is shorthand for KindOf(e).
func (e *Error) Kind() Kind {
	return KindOf(e.Err)
}

func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
