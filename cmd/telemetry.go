package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/khanhnv2901/scorecheck/internal/checker"
	"github.com/khanhnv2901/scorecheck/internal/shared/fsutil"
)

const telemetryFileName = "telemetry.jsonl"

type telemetryRecord struct {
	Timestamp           time.Time `json:"timestamp"`
	Command             string    `json:"command"`
	RunID               string    `json:"run_id"`
	CheckCount          int       `json:"check_count"`
	PassCount           int       `json:"pass_count"`
	FailCount           int       `json:"fail_count"`
	ErrorCount          int       `json:"error_count"`
	PassRate            float64   `json:"pass_rate"`
	DurationSeconds     float64   `json:"duration_seconds"`
	AvgDurationPerCheck float64   `json:"avg_duration_per_check"`
}

func newTelemetryRecord(command, runID string, results []checker.BatchResult, duration time.Duration) telemetryRecord {
	summary := checker.Summarize(results)

	passRate, avgDuration := 0.0, 0.0
	if summary.Total > 0 {
		passRate = (float64(summary.Passed) / float64(summary.Total)) * 100
		avgDuration = duration.Seconds() / float64(summary.Total)
	}

	return telemetryRecord{
		Timestamp:           time.Now().UTC(),
		Command:             command,
		RunID:               runID,
		CheckCount:          summary.Total,
		PassCount:           summary.Passed,
		FailCount:           summary.Failed,
		ErrorCount:          summary.Errors,
		PassRate:            passRate,
		DurationSeconds:     duration.Seconds(),
		AvgDurationPerCheck: avgDuration,
	}
}

// recordTelemetry appends one line per run to telemetry.jsonl in the results
// directory.
func recordTelemetry(appCtx *AppContext, command, runID string, results []checker.BatchResult, duration time.Duration) error {
	data, err := json.Marshal(newTelemetryRecord(command, runID, results, duration))
	if err != nil {
		return fmt.Errorf("marshal telemetry: %w", err)
	}
	if err := fsutil.AppendLine(filepath.Join(appCtx.ResultsDir, telemetryFileName), data); err != nil {
		return fmt.Errorf("record telemetry: %w", err)
	}
	return nil
}
