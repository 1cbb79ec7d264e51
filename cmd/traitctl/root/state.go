package root

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	traiterr "github.com/KirkDiggler/talent-traits/internal/errors"
	"github.com/KirkDiggler/talent-traits/internal/repositories/rulestate"
)

func newStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect persisted rule state",
	}
	cmd.AddCommand(newStateShowCmd(), newStateDeleteCmd())
	return cmd
}

func newStateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <save-id>",
		Short: "Print the rule state stored for a save slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state, err := repo.Get(ctx, args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(state)
		},
	}
}

func newStateDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <save-id>",
		Short: "Remove the rule state stored for a save slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return repo.Delete(ctx, args[0])
		},
	}
}

func openRepository(ctx context.Context) (rulestate.Repository, func(), error) {
	e, cleanup, err := openEnv()
	if err != nil {
		return nil, nil, err
	}

	repo, err := e.repository(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if repo == nil {
		cleanup()
		return nil, nil, traiterr.InvalidArgument("rule state persistence is disabled, set TRAITS_PERSIST_RULE_STATE=true")
	}
	return repo, cleanup, nil
}
