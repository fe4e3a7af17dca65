package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khanhnv2901/scorecheck/internal/checker"
	"github.com/khanhnv2901/scorecheck/internal/config"
)

var validateChecksFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a definitions file without running any probe",
	RunE: func(cmd *cobra.Command, args []string) error {
		checks, loadErr := config.LoadFile(validateChecksFile)
		out := cmd.OutOrStdout()

		for _, c := range checks {
			fmt.Fprintf(out, "%s %-20s %s:%d %s %s\n",
				formatStatusWithColor("ok"), c.Name(), c.Address(), c.Port(), c.Type(), describeArgs(c))
		}
		if loadErr != nil {
			return &ChecksFileError{Path: validateChecksFile, Err: loadErr}
		}
		fmt.Fprintf(out, "%s %d checks valid\n", colorInfo("Summary:"), len(checks))
		return nil
	},
}

func describeArgs(c *checker.Check) string {
	a, err := c.Args()
	if err != nil {
		return err.Error()
	}
	if r, ok := a.(checker.ReservedArgs); ok {
		return colorWarn(fmt.Sprintf("(%s is not implemented and will error at run time)", r.Of))
	}
	raw := c.Arguments()
	if len(raw) == 0 {
		return ""
	}
	quoted := make([]string, len(raw))
	for i, s := range raw {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(quoted, " ") + "]"
}

func init() {
	validateCmd.Flags().StringVarP(&validateChecksFile, "checks", "c", "", "check definitions file (.yaml, .yml or .csv)")
	_ = validateCmd.MarkFlagRequired("checks")
}
