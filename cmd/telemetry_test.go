package cmd

import (
	"bufio"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/khanhnv2901/scorecheck/internal/checker"
)

func TestRecordTelemetry_WritesMetrics(t *testing.T) {
	appCtx := &AppContext{ResultsDir: t.TempDir()}

	results := []checker.BatchResult{
		{Result: &checker.Result{Passed: true}},
		{Result: &checker.Result{Passed: false}},
		{Failure: &checker.Failure{Kind: checker.KindNetworkError}},
		{Result: &checker.Result{Passed: true}},
	}

	for i := 0; i < 2; i++ {
		if err := recordTelemetry(appCtx, "run", "run-123", results, 4*time.Second); err != nil {
			t.Fatalf("recordTelemetry returned error: %v", err)
		}
	}

	f, err := os.Open(filepath.Join(appCtx.ResultsDir, telemetryFileName))
	if err != nil {
		t.Fatalf("failed to open telemetry file: %v", err)
	}
	defer f.Close()

	var records []telemetryRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec telemetryRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("failed to unmarshal record: %v", err)
		}
		records = append(records, rec)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 appended records, got %d", len(records))
	}

	rec := records[0]
	if rec.RunID != "run-123" || rec.Command != "run" {
		t.Errorf("unexpected identity: %+v", rec)
	}
	if rec.CheckCount != 4 || rec.PassCount != 2 || rec.FailCount != 1 || rec.ErrorCount != 1 {
		t.Errorf("unexpected counts: %+v", rec)
	}
	if math.Abs(rec.PassRate-50) > 0.0001 {
		t.Errorf("expected pass rate 50, got %.6f", rec.PassRate)
	}
	if rec.DurationSeconds != 4 || rec.AvgDurationPerCheck != 1 {
		t.Errorf("unexpected durations: %+v", rec)
	}
}

func TestNewTelemetryRecord_Empty(t *testing.T) {
	rec := newTelemetryRecord("run", "id", nil, time.Second)
	if rec.CheckCount != 0 || rec.PassRate != 0 || rec.AvgDurationPerCheck != 0 {
		t.Errorf("unexpected record for empty run: %+v", rec)
	}
}
