package checker

import (
	"errors"
	"reflect"
	"testing"

	sharedErrors "github.com/khanhnv2901/scorecheck/internal/shared/errors"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		raw     []string
		want    Args
		wantErr error
	}{
		{"ping ignores args", TypePing, []string{"extra"}, PingArgs{}, nil},
		{"url path only", TypeURL, []string{"/admin/"}, FetchArgs{Path: "/admin/"}, nil},
		{"url path and protocol", TypeURL, []string{"", "https"}, FetchArgs{Path: "", Protocol: "https"}, nil},
		{"url needs path", TypeURL, nil, nil, sharedErrors.ErrInsufficientArguments},
		{"content", TypeContent, []string{"/", "http", "Welcome"},
			ContentArgs{Fetch: FetchArgs{Path: "/", Protocol: "http"}, Needle: "Welcome"}, nil},
		{"content two args", TypeContent, []string{"/", "http"}, nil, sharedErrors.ErrInsufficientArguments},
		{"pageExists default status", TypePageExists, []string{"", "http"},
			PageExistsArgs{Fetch: FetchArgs{Protocol: "http"}, ExpectedStatus: 200}, nil},
		{"pageExists blank status", TypePageExists, []string{"", "http", " "},
			PageExistsArgs{Fetch: FetchArgs{Protocol: "http"}, ExpectedStatus: 200}, nil},
		{"pageExists explicit status", TypePageExists, []string{"missing", "https", "404"},
			PageExistsArgs{Fetch: FetchArgs{Path: "missing", Protocol: "https"}, ExpectedStatus: 404}, nil},
		{"pageExists bad status", TypePageExists, []string{"", "http", "ok"}, nil, sharedErrors.ErrInvalidArguments},
		{"pageExists status out of range", TypePageExists, []string{"", "http", "42"}, nil, sharedErrors.ErrInvalidArguments},
		{"pageExists needs path", TypePageExists, nil, nil, sharedErrors.ErrInsufficientArguments},
		{"dns canary", TypeDNS, nil, DNSArgs{}, nil},
		{"dns lookup", TypeDNS, []string{"www.team1.local", "a", "10.1.1.5"},
			DNSArgs{Domain: "www.team1.local", RecordType: "A", Expected: "10.1.1.5"}, nil},
		{"dns partial", TypeDNS, []string{"www.team1.local", "A"}, nil, sharedErrors.ErrInsufficientArguments},
		{"dns bad record type", TypeDNS, []string{"www.team1.local", "BOGUS", "x"}, nil, sharedErrors.ErrInvalidArguments},
		{"smb share", TypeSMB, []string{"alice", "secret", `\public\`},
			SMBArgs{Username: "alice", Password: "secret", Share: "public"}, nil},
		{"smb file", TypeSMB, []string{"alice", "secret", "public", "/flag.txt"},
			SMBArgs{Username: "alice", Password: "secret", Share: "public", File: "flag.txt"}, nil},
		{"smb missing share", TypeSMB, []string{"alice", "secret"}, nil, sharedErrors.ErrInsufficientArguments},
		{"ftp anonymous", TypeFTP, nil, FTPArgs{}, nil},
		{"ftp user", TypeFTP, []string{"bob"}, FTPArgs{Username: "bob"}, nil},
		{"ftp user and password", TypeFTP, []string{"bob", "hunter2"}, FTPArgs{Username: "bob", Password: "hunter2"}, nil},
		{"reserved", TypeNTP, []string{"anything"}, ReservedArgs{Of: TypeNTP}, nil},
		{"unknown", Type("index"), nil, nil, sharedErrors.ErrUnknownCheckType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.typ, tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseArgs() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArgs() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseArgs() = %#v, want %#v", got, tt.want)
			}
			if got.Type() != tt.typ {
				t.Errorf("Args.Type() = %q, want %q", got.Type(), tt.typ)
			}
		})
	}
}

func TestDNSArgs_Canary(t *testing.T) {
	if !(DNSArgs{}).Canary() {
		t.Error("zero DNSArgs should be a canary lookup")
	}
	if (DNSArgs{Domain: "x", RecordType: "A", Expected: "1.2.3.4"}).Canary() {
		t.Error("populated DNSArgs is not a canary lookup")
	}
}
