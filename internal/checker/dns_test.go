package checker

import (
	"context"
	"net"
	"strings"
	"testing"

	"github.com/miekg/dns"
)

var testZone = map[string][]string{
	"google.com. A":            {"google.com. 60 IN A 142.250.80.46"},
	"www.example.test. A":      {"www.example.test. 60 IN A 10.0.0.80", "www.example.test. 60 IN A 10.0.0.81"},
	"example.test. TXT":        {`example.test. 60 IN TXT "v=spf1 -all"`, `example.test. 60 IN TXT "part one " "part two"`},
	"mail.example.test. CNAME": {"mail.example.test. 60 IN CNAME MX.Example.Test."},
	"example.test. MX":         {"example.test. 60 IN MX 10 mx.example.test."},
	"empty.example.test. A":    {},
}

func serveZone(w dns.ResponseWriter, r *dns.Msg) {
	m := new(dns.Msg)
	m.SetReply(r)

	q := r.Question[0]
	records, ok := testZone[strings.ToLower(q.Name)+" "+dns.TypeToString[q.Qtype]]
	if !ok {
		m.Rcode = dns.RcodeNameError
	}
	for _, s := range records {
		rr, err := dns.NewRR(s)
		if err == nil {
			m.Answer = append(m.Answer, rr)
		}
	}
	_ = w.WriteMsg(m)
}

func startDNSServer(t *testing.T) int {
	t.Helper()
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen udp: %v", err)
	}

	started := make(chan struct{})
	srv := &dns.Server{
		PacketConn:        pc,
		Handler:           dns.HandlerFunc(serveZone),
		NotifyStartedFunc: func() { close(started) },
	}
	go func() { _ = srv.ActivateAndServe() }()
	<-started
	t.Cleanup(func() { _ = srv.Shutdown() })

	return pc.LocalAddr().(*net.UDPAddr).Port
}

func TestDNS_Canary(t *testing.T) {
	port := startDNSServer(t)

	if !testProber().DNS(context.Background(), "127.0.0.1", port, DNSArgs{}) {
		t.Error("canary lookup against a working resolver should pass")
	}

	opts := DefaultProbeOptions()
	opts.DNSCanaryDomain = "nowhere.example.test"
	if NewProber(opts).DNS(context.Background(), "127.0.0.1", port, DNSArgs{}) {
		t.Error("canary lookup answered with NXDOMAIN should fail")
	}

	opts.DNSCanaryDomain = "empty.example.test"
	if NewProber(opts).DNS(context.Background(), "127.0.0.1", port, DNSArgs{}) {
		t.Error("canary lookup with no answers should fail")
	}
}

func TestDNS_RecordLookup(t *testing.T) {
	port := startDNSServer(t)

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"first A record", []string{"www.example.test", "A", "10.0.0.80"}, true},
		{"second A record", []string{"www.example.test", "a", "10.0.0.81"}, true},
		{"wrong A record", []string{"www.example.test", "A", "10.0.0.99"}, false},
		{"nxdomain", []string{"missing.example.test", "A", "10.0.0.80"}, false},
		{"txt unquoted", []string{"example.test", "TXT", "v=spf1 -all"}, true},
		{"txt multi-string joined", []string{"example.test", "TXT", "part one part two"}, true},
		{"cname without dot any case", []string{"mail.example.test", "CNAME", "mx.example.test"}, true},
		{"cname with dot", []string{"mail.example.test.", "CNAME", "mx.example.test."}, true},
		{"mx host", []string{"example.test", "MX", "mx.example.test"}, true},
		{"mx full rdata", []string{"example.test", "MX", "10 mx.example.test."}, true},
		{"type with no records", []string{"www.example.test", "AAAA", "::1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New("dns", "127.0.0.1", port, "dns", tt.args...)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			res, err := c.Execute(context.Background(), testProber())
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if res.Passed != tt.want {
				t.Errorf("Passed = %v, want %v", res.Passed, tt.want)
			}
		})
	}
}

func TestDNS_NoResolverIsFalse(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen udp: %v", err)
	}
	port := pc.LocalAddr().(*net.UDPAddr).Port
	_ = pc.Close()

	c, err := New("dns", "127.0.0.1", port, "dns")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	res, err := c.Execute(context.Background(), testProber())
	if err != nil {
		t.Fatalf("Execute() should swallow resolver errors, got %v", err)
	}
	if res.Passed {
		t.Error("dns check against a dead resolver should fail")
	}
}
