package checker

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/miekg/dns"

	sharedErrors "github.com/khanhnv2901/scorecheck/internal/shared/errors"
)

// Args is the parsed, typed argument payload of a check. Each check type has
// exactly one variant.
type Args interface {
	Type() Type
	args()
}

// PingArgs carries nothing; a reachability check only needs the target.
type PingArgs struct{}

// FetchArgs addresses an HTTP resource on the target.
// An empty Protocol is inferred from the port (443 https, 80 http).
type FetchArgs struct {
	Path     string
	Protocol string
}

// ContentArgs passes when Needle is a substring of the fetched body.
type ContentArgs struct {
	Fetch  FetchArgs
	Needle string
}

// PageExistsArgs passes when the fetched status equals ExpectedStatus.
type PageExistsArgs struct {
	Fetch          FetchArgs
	ExpectedStatus int
}

// DNSArgs queries Domain/RecordType on the target resolver and passes when
// Expected is among the answers. The zero value is a canary lookup.
type DNSArgs struct {
	Domain     string
	RecordType string
	Expected   string
}

// Canary reports whether a is the zero-argument reachability form.
func (a DNSArgs) Canary() bool {
	return a == DNSArgs{}
}

// SMBArgs authenticates and opens \\target\Share, or \\target\Share\File.
type SMBArgs struct {
	Username string
	Password string
	Share    string
	File     string
}

// FTPArgs logs in to the target; empty Username means anonymous.
type FTPArgs struct {
	Username string
	Password string
}

// ReservedArgs stands in for recognized types that have no probe yet.
type ReservedArgs struct {
	Of Type
}

func (PingArgs) Type() Type       { return TypePing }
func (FetchArgs) Type() Type      { return TypeURL }
func (ContentArgs) Type() Type    { return TypeContent }
func (PageExistsArgs) Type() Type { return TypePageExists }
func (DNSArgs) Type() Type        { return TypeDNS }
func (SMBArgs) Type() Type        { return TypeSMB }
func (FTPArgs) Type() Type        { return TypeFTP }
func (a ReservedArgs) Type() Type { return a.Of }

func (PingArgs) args()       {}
func (FetchArgs) args()      {}
func (ContentArgs) args()    {}
func (PageExistsArgs) args() {}
func (DNSArgs) args()        {}
func (SMBArgs) args()        {}
func (FTPArgs) args()        {}
func (ReservedArgs) args()   {}

// ParseArgs converts the positional argument sequence of a check of type t
// into its typed payload. Missing required arguments yield
// ErrInsufficientArguments; optional ones take their documented defaults.
func ParseArgs(t Type, raw []string) (Args, error) {
	switch t {
	case TypePing:
		return PingArgs{}, nil

	case TypeURL:
		if len(raw) < 1 {
			return nil, insufficient(t, 1, raw, "path")
		}
		return fetchArgs(raw), nil

	case TypeContent:
		if len(raw) < 3 {
			return nil, insufficient(t, 3, raw, "path, protocol, needle")
		}
		return ContentArgs{Fetch: fetchArgs(raw), Needle: raw[2]}, nil

	case TypePageExists:
		if len(raw) < 1 {
			return nil, insufficient(t, 1, raw, "path")
		}
		status := http.StatusOK
		if len(raw) > 2 && strings.TrimSpace(raw[2]) != "" {
			n, err := strconv.Atoi(strings.TrimSpace(raw[2]))
			if err != nil || n < 100 || n > 999 {
				return nil, wrapf(sharedErrors.ErrInvalidArguments, "expected status %q is not an HTTP status code", raw[2])
			}
			status = n
		}
		return PageExistsArgs{Fetch: fetchArgs(raw), ExpectedStatus: status}, nil

	case TypeDNS:
		if len(raw) == 0 {
			return DNSArgs{}, nil
		}
		if len(raw) < 3 {
			return nil, insufficient(t, 3, raw, "domain, record type, expected value")
		}
		recordType := strings.ToUpper(strings.TrimSpace(raw[1]))
		if _, ok := dns.StringToType[recordType]; !ok {
			return nil, wrapf(sharedErrors.ErrInvalidArguments, "unknown DNS record type %q", raw[1])
		}
		return DNSArgs{Domain: strings.TrimSpace(raw[0]), RecordType: recordType, Expected: raw[2]}, nil

	case TypeSMB:
		if len(raw) < 3 {
			return nil, insufficient(t, 3, raw, "username, password, share")
		}
		a := SMBArgs{Username: raw[0], Password: raw[1], Share: strings.Trim(raw[2], `\/`)}
		if len(raw) > 3 {
			a.File = strings.Trim(raw[3], `\/`)
		}
		return a, nil

	case TypeFTP:
		a := FTPArgs{}
		if len(raw) > 0 {
			a.Username = raw[0]
		}
		if len(raw) > 1 {
			a.Password = raw[1]
		}
		return a, nil
	}

	if t.Reserved() {
		return ReservedArgs{Of: t}, nil
	}
	return nil, wrapf(sharedErrors.ErrUnknownCheckType, "%q is not a recognized check type", string(t))
}

func fetchArgs(raw []string) FetchArgs {
	a := FetchArgs{Path: raw[0]}
	if len(raw) > 1 {
		a.Protocol = strings.TrimSpace(raw[1])
	}
	return a
}

func insufficient(t Type, want int, raw []string, names string) error {
	return wrapf(sharedErrors.ErrInsufficientArguments, "%s needs at least %d argument(s) (%s), got %d", t, want, names, len(raw))
}
