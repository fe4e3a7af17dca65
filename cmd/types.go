package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/khanhnv2901/scorecheck/internal/checker"
)

// typeUsage documents the positional arguments of each implemented type.
var typeUsage = map[checker.Type]string{
	checker.TypePing:       "(none)",
	checker.TypeURL:        "path [protocol]",
	checker.TypeContent:    "path protocol needle",
	checker.TypePageExists: "path [protocol] [status]",
	checker.TypeDNS:        "(none) | domain recordType expected",
	checker.TypeSMB:        "username password share [file]",
	checker.TypeFTP:        "[username] [password]",
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the recognized check types",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "TYPE\tIMPLEMENTED\tARGUMENTS")
		for _, t := range checker.Types() {
			implemented, usage := "yes", typeUsage[t]
			if t.Reserved() {
				implemented, usage = "no", "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", t, formatStatusWithColor(implemented), usage)
		}
		return tw.Flush()
	},
}
