package cmd

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"go.uber.org/zap/zaptest"
)

// listenTCP returns the port of a local listener that accepts and closes
// every connection.
func listenTCP(t *testing.T) int {
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
			_ = conn.Close()
		}
	}()
	return ln.Addr().(*net.TCPAddr).Port
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newTestAppContext(t *testing.T) *AppContext {
	t.Helper()
	cfg := newCLIConfig()
	cfg.Output.ResultsDir = t.TempDir()
	return &AppContext{
		Logger:     zaptest.NewLogger(t).Sugar(),
		ResultsDir: cfg.Output.ResultsDir,
		Config:     cfg,
	}
}

// executeRoot runs the root command with args and returns its stdout.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeRootContext(t, context.Background(), args...)
}

func executeRootContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}
