package checker

import (
	"context"

	sharedErrors "github.com/khanhnv2901/scorecheck/internal/shared/errors"
)

// Check is one verifiable assertion against one target. It is immutable once
// built, so a single Check may be executed any number of times, concurrently.
type Check struct {
	name      string
	address   string
	port      int
	checkType Type
	arguments []string
}

// New validates the target and stores the remaining fields verbatim. The type
// is not checked here; an unrecognized type fails at Execute.
func New(name, address string, port int, checkType string, args ...string) (*Check, error) {
	if _, err := ParseAddress(address); err != nil {
		return nil, &Error{Check: name, Type: Type(checkType), Err: err}
	}
	if !validPort(port) {
		return nil, &Error{Check: name, Type: Type(checkType),
			Err: wrapf(sharedErrors.ErrInvalidPort, "%d is outside 0-65535", port)}
	}
	return &Check{
		name:      name,
		address:   address,
		port:      port,
		checkType: Type(checkType),
		arguments: append([]string(nil), args...),
	}, nil
}

func (c *Check) Name() string    { return c.name }
func (c *Check) Address() string { return c.address }
func (c *Check) Port() int       { return c.port }
func (c *Check) Type() Type      { return c.checkType }

// Arguments returns a copy of the positional arguments as given to New.
func (c *Check) Arguments() []string {
	return append([]string(nil), c.arguments...)
}

// Args parses the positional arguments into the typed payload for the
// check's type.
func (c *Check) Args() (Args, error) {
	a, err := ParseArgs(c.checkType, c.arguments)
	if err != nil {
		return nil, c.errorf(err)
	}
	return a, nil
}

// Execute runs the probe for the check's type. Boolean-style probes return
// Result.Passed; the url type also fills Result.Response.
func (c *Check) Execute(ctx context.Context, p *Prober) (Result, error) {
	if p == nil {
		p = NewProber(DefaultProbeOptions())
	}
	args, err := c.Args()
	if err != nil {
		return Result{}, err
	}

	switch a := args.(type) {
	case PingArgs:
		return passed(p.Ping(ctx, c.address, c.port)), nil
	case FetchArgs:
		resp, err := p.Fetch(ctx, c.address, c.port, a)
		if err != nil {
			return Result{}, c.errorf(err)
		}
		return Result{Passed: true, Response: resp}, nil
	case ContentArgs:
		ok, err := p.Content(ctx, c.address, c.port, a)
		if err != nil {
			return Result{}, c.errorf(err)
		}
		return passed(ok), nil
	case PageExistsArgs:
		ok, err := p.PageExists(ctx, c.address, c.port, a)
		if err != nil {
			return Result{}, c.errorf(err)
		}
		return passed(ok), nil
	case DNSArgs:
		return passed(p.DNS(ctx, c.address, c.port, a)), nil
	case SMBArgs:
		return passed(p.SMB(ctx, c.address, c.port, a)), nil
	case FTPArgs:
		return passed(p.FTP(ctx, c.address, c.port, a)), nil
	case ReservedArgs:
		return Result{}, c.errorf(wrapf(sharedErrors.ErrNotImplemented, "%s checks are recognized but have no probe yet", a.Of))
	default:
		return Result{}, c.errorf(wrapf(sharedErrors.ErrUnknownCheckType, "no probe for %T", args))
	}
}

func (c *Check) errorf(err error) error {
	if _, ok := err.(*Error); ok {
		return err
	}
	return &Error{Check: c.name, Type: c.checkType, Err: err}
}

func passed(ok bool) Result {
	return Result{Passed: ok}
}
