package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/talent-traits/internal/catalog"
	"github.com/KirkDiggler/talent-traits/internal/domain/traits"
)

func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load the rule catalog and list rejected rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cleanup, err := openEnv()
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d rules loaded\n", e.cfg.Rules.Path, e.report.Loaded)

			for _, category := range traits.Categories() {
				if n := len(e.catalog.Rules(category)); n > 0 {
					fmt.Fprintf(out, "  %-16s %3d\n", category.Key, n)
				}
			}

			printReport(cmd, e.report)

			if strict && !e.report.Clean() {
				return fmt.Errorf("catalog has %d rejected rules", len(e.report.Skipped)+len(e.report.Unknown)+len(e.report.Unreadable))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any rule was rejected")
	return cmd
}

func printReport(cmd *cobra.Command, report *catalog.Report) {
	out := cmd.OutOrStdout()
	for _, skip := range report.Skipped {
		fmt.Fprintf(out, "skipped %s #%d: %s\n", skip.Category.Key, skip.Index, skip.Reason)
	}
	for _, name := range report.Unknown {
		fmt.Fprintf(out, "unknown category %q\n", name)
	}
	for _, name := range report.Unreadable {
		fmt.Fprintf(out, "unreadable category %q\n", name)
	}
}
