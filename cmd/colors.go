package cmd

import (
	"strings"

	"github.com/fatih/color"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

// formatStatusWithColor colors a BatchResult status: pass green, fail red,
// error yellow.
func formatStatusWithColor(status string) string {
	switch strings.ToLower(status) {
	case "pass", "ok", "yes":
		return colorSuccess(status)
	case "fail", "failed", "no":
		return colorError(status)
	case "error":
		return colorWarn(status)
	default:
		return status
	}
}
