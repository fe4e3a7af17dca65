package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/khanhnv2901/scorecheck/internal/checker"
	sharedErrors "github.com/khanhnv2901/scorecheck/internal/shared/errors"
)

func sampleOutput() RunOutput {
	return newRunOutput(RunMetadata{RunID: "abc"}, []checker.BatchResult{
		{Name: "web1", Address: "10.0.0.5", Port: 443, Type: checker.TypeURL, Attempts: 1,
			Result:   &checker.Result{Passed: true, Response: &checker.HTTPResponse{StatusCode: 200, Body: "hello"}},
			Duration: 1500 * time.Microsecond},
		{Name: "gw", Address: "10.0.0.1", Port: 22, Type: checker.TypePing, Attempts: 1,
			Result: &checker.Result{Passed: false}},
		{Name: "sql", Address: "10.0.0.7", Port: 80, Type: checker.TypeContent, Attempts: 3,
			Failure: &checker.Failure{Kind: checker.KindNetworkError, Message: "connection refused"}},
	})
}

func TestRenderTable(t *testing.T) {
	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = original })

	var buf bytes.Buffer
	if err := renderResults(&buf, formatTable, sampleOutput()); err != nil {
		t.Fatalf("renderResults: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"NAME", "10.0.0.5:443", "200 (5 bytes)", "pass",
		"fail", "NetworkError: connection refused", "error",
		"Summary: 3 checks: 1 passed, 1 failed, 1 errored",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := renderResults(&buf, formatJSON, sampleOutput()); err != nil {
		t.Fatalf("renderResults: %v", err)
	}
	var got RunOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Summary.Total != 3 || got.Results[2].Failure.Kind != checker.KindNetworkError {
		t.Errorf("unexpected decoded output: %+v", got)
	}
}

func TestValidateFormat(t *testing.T) {
	if err := validateFormat("json"); err != nil {
		t.Errorf("json: %v", err)
	}
	if err := validateFormat("xml"); !errors.Is(err, sharedErrors.ErrUnsupportedFormat) {
		t.Errorf("xml: error = %v", err)
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("é", maxDetailLen+10)
	got := truncate(long)
	if n := len([]rune(got)); n != maxDetailLen {
		t.Errorf("truncated to %d runes, want %d", n, maxDetailLen)
	}
	if got := truncate("multi\nline   body"); got != "multi line body" {
		t.Errorf("truncate() = %q", got)
	}
}

func TestNewRunOutputEmpty(t *testing.T) {
	data, err := json.Marshal(newRunOutput(RunMetadata{}, nil))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"results":[]`) {
		t.Errorf("empty run should encode results as []: %s", data)
	}
}

func TestResultsPath(t *testing.T) {
	dir := t.TempDir()

	got, err := resultsPath(dir, "", "abc")
	if err != nil || got != filepath.Join(dir, "run-abc.json") {
		t.Fatalf("resultsPath default = %q, %v", got, err)
	}

	explicit := filepath.Join(dir, "custom.json")
	if got, err := resultsPath(dir, explicit, "abc"); err != nil || got != explicit {
		t.Fatalf("resultsPath explicit = %q, %v", got, err)
	}
}

func TestWriteRunOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	if err := writeRunOutput(path, sampleOutput()); err != nil {
		t.Fatalf("writeRunOutput: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got RunOutput
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("results file is not JSON: %v", err)
	}
	if got.Metadata.RunID != "abc" || len(got.Results) != 3 {
		t.Errorf("unexpected results file: %+v", got)
	}
}
