package checker

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	sharedErrors "github.com/khanhnv2901/scorecheck/internal/shared/errors"
)

// Fetch GETs {protocol}://{address}:{port}/{path} and returns the status code
// and body. Transport failures surface as ErrNetwork rather than a false
// result, so an operator can tell "errored" apart from "failed".
func (p *Prober) Fetch(ctx context.Context, address string, port int, args FetchArgs) (*HTTPResponse, error) {
	protocol, err := resolveProtocol(args.Protocol, port)
	if err != nil {
		return nil, err
	}
	u := fetchURL(protocol, address, port, args.Path)

	// One transport per fetch so no connection outlives the probe.
	transport := &http.Transport{
		DisableKeepAlives: true,
		TLSClientConfig:   &tls.Config{InsecureSkipVerify: p.opts.InsecureSkipVerify}, //nolint:gosec // self-signed targets are expected
	}
	defer transport.CloseIdleConnections()

	client := &http.Client{
		Timeout:   p.opts.HTTPTimeout,
		Transport: transport,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, wrapf(sharedErrors.ErrNetwork, "create request for %s: %v", u, err)
	}
	req.Header.Set("User-Agent", p.opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		p.logger.Debugw("fetch failed", "url", u, "error", err)
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, fmt.Errorf("GET %s: %w", u, ctx.Err())
		}
		return nil, wrapf(sharedErrors.ErrNetwork, "GET %s: %v", u, err)
	}
	// Anything past the cap is dropped with the connection on Close.
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.opts.MaxBodyBytes))
	if err != nil {
		return nil, wrapf(sharedErrors.ErrNetwork, "read body from %s: %v", u, err)
	}

	p.logger.Debugw("fetched", "url", u, "status", resp.StatusCode, "bytes", len(body))
	return &HTTPResponse{StatusCode: resp.StatusCode, Body: string(body)}, nil
}

// Content reports whether args.Needle occurs in the fetched body.
func (p *Prober) Content(ctx context.Context, address string, port int, args ContentArgs) (bool, error) {
	resp, err := p.Fetch(ctx, address, port, args.Fetch)
	if err != nil {
		return false, err
	}
	return strings.Contains(resp.Body, args.Needle), nil
}

// PageExists reports whether the fetched status equals args.ExpectedStatus,
// which means 200 when left at zero.
func (p *Prober) PageExists(ctx context.Context, address string, port int, args PageExistsArgs) (bool, error) {
	want := args.ExpectedStatus
	if want == 0 {
		want = http.StatusOK
	}
	resp, err := p.Fetch(ctx, address, port, args.Fetch)
	if err != nil {
		return false, err
	}
	if resp.StatusCode != want {
		p.logger.Debugw("unexpected status", "address", address, "port", port,
			"want", want, "got", resp.StatusCode)
	}
	return resp.StatusCode == want, nil
}

func (r *HTTPResponse) String() string {
	return fmt.Sprintf("%d (%d bytes)", r.StatusCode, len(r.Body))
}
