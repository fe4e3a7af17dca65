package checker

import (
	"net"
	"net/url"
	"strconv"
	"testing"
	"time"
)

// testProber keeps every probe timeout short so failure paths finish fast.
func testProber() *Prober {
	opts := DefaultProbeOptions()
	opts.PingTimeout = time.Second
	opts.HTTPTimeout = 2 * time.Second
	opts.DNSTimeout = time.Second
	opts.SMBTimeout = time.Second
	opts.FTPTimeout = time.Second
	return NewProber(opts)
}

func splitServerURL(t *testing.T, raw string) (string, int) {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse server URL %q: %v", raw, err)
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("split host %q: %v", u.Host, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("parse port %q: %v", portStr, err)
	}
	return host, port
}

// closedPort returns a loopback port that had a listener a moment ago and
// now refuses connections.
func closedPort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	_ = ln.Close()
	return port
}

// serveTCP accepts connections on loopback and hands each to handle.
func serveTCP(t *testing.T, handle func(net.Conn)) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func() {
				defer conn.Close()
				handle(conn)
			}()
		}
	}()
	return ln.Addr().(*net.TCPAddr).Port
}
