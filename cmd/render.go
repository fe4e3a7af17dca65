package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/khanhnv2901/scorecheck/internal/checker"
	sharedErrors "github.com/khanhnv2901/scorecheck/internal/shared/errors"
)

const (
	formatTable = "table"
	formatJSON  = "json"

	maxDetailLen = 60
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	}
	return fmt.Errorf("%w: output format %q (want %s or %s)", sharedErrors.ErrUnsupportedFormat, format, formatTable, formatJSON)
}

func renderResults(w io.Writer, format string, out RunOutput) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	return renderTable(w, out)
}

func renderTable(w io.Writer, out RunOutput) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTARGET\tTYPE\tSTATUS\tATTEMPTS\tDURATION\tDETAIL")
	for _, res := range out.Results {
		fmt.Fprintf(tw, "%s\t%s:%d\t%s\t%s\t%d\t%s\t%s\n",
			res.Name, res.Address, res.Port, res.Type,
			formatStatusWithColor(res.Status()), res.Attempts,
			res.Duration.Round(time.Millisecond), resultDetail(res))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := out.Summary
	_, err := fmt.Fprintf(w, "\n%s %d checks: %s passed, %s failed, %s errored\n",
		colorInfo("Summary:"), s.Total,
		colorSuccess(s.Passed), colorError(s.Failed), colorWarn(s.Errors))
	return err
}

func resultDetail(res checker.BatchResult) string {
	switch {
	case res.Failure != nil:
		return truncate(fmt.Sprintf("%s: %s", res.Failure.Kind, res.Failure.Message))
	case res.Result != nil && res.Result.Response != nil:
		return truncate(res.Result.Response.String())
	}
	return ""
}

func truncate(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= maxDetailLen {
		return s
	}
	return string(r[:maxDetailLen-3]) + "..."
}
