package checker

import "time"

// HTTPResponse is what a url check returns.
type HTTPResponse struct {
	StatusCode int    `json:"status_code"`
	Body       string `json:"body"`
}

// Result is the success payload of one Execute call.
type Result struct {
	Passed   bool          `json:"passed"`
	Response *HTTPResponse `json:"response,omitempty"`
}

// Failure describes why a check errored instead of producing a Result.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// BatchResult pairs a check's identity with its outcome. Exactly one of
// Result and Failure is set.
type BatchResult struct {
	Name      string        `json:"name"`
	Address   string        `json:"address"`
	Port      int           `json:"port"`
	Type      Type          `json:"type"`
	Result    *Result       `json:"result,omitempty"`
	Failure   *Failure      `json:"failure,omitempty"`
	CheckedAt time.Time     `json:"checked_at"`
	Duration  time.Duration `json:"duration_ns"`
	Attempts  int           `json:"attempts"`
}

// OK reports whether the check produced a Result rather than a Failure.
func (b BatchResult) OK() bool {
	return b.Failure == nil && b.Result != nil
}

// Passed reports whether the check produced a passing Result.
func (b BatchResult) Passed() bool {
	return b.OK() && b.Result.Passed
}

// Status returns "pass", "fail" or "error".
func (b BatchResult) Status() string {
	switch {
	case !b.OK():
		return "error"
	case b.Result.Passed:
		return "pass"
	default:
		return "fail"
	}
}

// Summary counts outcomes across a batch.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
	Errors int `json:"errors"`
}

// Summarize tallies results by Status.
func Summarize(results []BatchResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status() {
		case "pass":
			s.Passed++
		case "fail":
			s.Failed++
		default:
			s.Errors++
		}
	}
	return s
}
