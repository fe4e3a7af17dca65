package checker

import (
	"context"
	"strings"

	"github.com/miekg/dns"

	consts "github.com/khanhnv2901/scorecheck/internal/shared/constants"
)

// DNS uses the target as a resolver. With zero-valued args it resolves the
// canary domain's A record and passes on any answer; otherwise it passes when
// args.Expected matches one of the returned records. Timeouts, NXDOMAIN,
// SERVFAIL and empty answers all read as false.
func (p *Prober) DNS(ctx context.Context, address string, port int, args DNSArgs) bool {
	server := hostPort(address, port, consts.DefaultDNSPort)

	domain, qtype := p.opts.DNSCanaryDomain, dns.TypeA
	if !args.Canary() {
		domain = args.Domain
		t, ok := dns.StringToType[strings.ToUpper(args.RecordType)]
		if !ok {
			p.logger.Debugw("dns record type unknown", "type", args.RecordType)
			return false
		}
		qtype = t
	}

	answers, ok := p.exchange(ctx, server, domain, qtype)
	if !ok {
		return false
	}
	if args.Canary() {
		return len(answers) > 0
	}

	for _, rr := range answers {
		if rr.Header().Rrtype != qtype {
			continue
		}
		if recordMatches(rr, args.Expected) {
			return true
		}
	}
	p.logger.Debugw("dns expected value not found", "server", server, "domain", domain,
		"type", dns.TypeToString[qtype], "expected", args.Expected, "answers", len(answers))
	return false
}

func (p *Prober) exchange(ctx context.Context, server, domain string, qtype uint16) ([]dns.RR, bool) {
	ctx, cancel := context.WithTimeout(ctx, p.opts.DNSTimeout)
	defer cancel()

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), qtype)
	m.RecursionDesired = true

	client := &dns.Client{Net: "udp", Timeout: p.opts.DNSTimeout}
	resp, _, err := client.ExchangeContext(ctx, m, server)
	if err == nil && resp.Truncated {
		client.Net = "tcp"
		resp, _, err = client.ExchangeContext(ctx, m, server)
	}
	if err != nil {
		p.logger.Debugw("dns exchange failed", "server", server, "domain", domain, "error", err)
		return nil, false
	}
	if resp.Rcode != dns.RcodeSuccess {
		p.logger.Debugw("dns query rejected", "server", server, "domain", domain,
			"rcode", dns.RcodeToString[resp.Rcode])
		return nil, false
	}
	return resp.Answer, true
}

// recordMatches compares expected against the textual rdata of rr. Names are
// compared case-insensitively without the trailing root dot; TXT strings are
// compared unquoted, both per string and joined.
func recordMatches(rr dns.RR, expected string) bool {
	expected = strings.TrimSpace(expected)

	if txt, ok := rr.(*dns.TXT); ok {
		if strings.Join(txt.Txt, "") == expected {
			return true
		}
		for _, s := range txt.Txt {
			if s == expected {
				return true
			}
		}
		return false
	}

	for _, candidate := range rdataForms(rr) {
		if strings.EqualFold(strings.TrimSuffix(candidate, "."), strings.TrimSuffix(expected, ".")) {
			return true
		}
	}
	return false
}

func rdataForms(rr dns.RR) []string {
	forms := []string{strings.TrimSpace(strings.TrimPrefix(rr.String(), rr.Header().String()))}
	switch v := rr.(type) {
	case *dns.A:
		forms = append(forms, v.A.String())
	case *dns.AAAA:
		forms = append(forms, v.AAAA.String())
	case *dns.CNAME:
		forms = append(forms, v.Target)
	case *dns.NS:
		forms = append(forms, v.Ns)
	case *dns.PTR:
		forms = append(forms, v.Ptr)
	case *dns.MX:
		forms = append(forms, v.Mx)
	case *dns.SRV:
		forms = append(forms, v.Target)
	}
	return forms
}
