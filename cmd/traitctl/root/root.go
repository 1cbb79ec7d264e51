package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rulesPath string

var rootCmd = &cobra.Command{
	Use:           "traitctl",
	Short:         "Inspect talent trait rule catalogs",
	Long:          "traitctl loads a trait rule catalog, reports rejected rules and resolves talent snapshots against it.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.PersistentFlags().StringVarP(&rulesPath, "rules", "r", "", "Rule catalog file, overrides TRAITS_RULES_PATH")

	rootCmd.AddCommand(
		newCheckCmd(),
		newResolveCmd(),
		newStateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(exitCode(err))
	}
}
