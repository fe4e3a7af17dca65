package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/khanhnv2901/scorecheck/internal/checker"
	"github.com/khanhnv2901/scorecheck/internal/shared/fsutil"
)

// RunMetadata describes one invocation of the run command.
type RunMetadata struct {
	RunID      string    `json:"run_id"`
	ChecksFile string    `json:"checks_file"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Version    string    `json:"version"`
}

// RunOutput is the results file layout.
type RunOutput struct {
	Metadata RunMetadata           `json:"metadata"`
	Summary  checker.Summary       `json:"summary"`
	Results  []checker.BatchResult `json:"results"`
}

func newRunOutput(meta RunMetadata, results []checker.BatchResult) RunOutput {
	if results == nil {
		results = []checker.BatchResult{}
	}
	return RunOutput{
		Metadata: meta,
		Summary:  checker.Summarize(results),
		Results:  results,
	}
}

// resultsPath returns where a run's results file goes. An explicit path is
// used as given; otherwise the file is named after the run inside resultsDir.
func resultsPath(resultsDir, explicit, runID string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	return fsutil.ResolveWithin(resultsDir, "run-"+runID+".json")
}

func writeRunOutput(path string, out RunOutput) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := fsutil.WriteFile(path, append(data, '\n')); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
