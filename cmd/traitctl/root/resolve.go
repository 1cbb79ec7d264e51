package root

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/talent-traits/internal/domain/actor"
	"github.com/KirkDiggler/talent-traits/internal/domain/talents"
	traiterr "github.com/KirkDiggler/talent-traits/internal/errors"
)

func newResolveCmd() *cobra.Command {
	var (
		asJSON bool
		loadID string
		saveID string
	)

	cmd := &cobra.Command{
		Use:     "resolve <talent=rank>...",
		Short:   "Resolve talent ranks into traits and preview upcoming unlocks",
		Example: "traitctl resolve armor=3 fire=1",
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := parseRanks(args)
			if err != nil {
				return err
			}

			ctx := context.Background()
			e, cleanup, err := openEnv()
			if err != nil {
				return err
			}
			defer cleanup()

			svc, err := e.service(ctx)
			if err != nil {
				return err
			}

			if loadID != "" {
				err := svc.Load(ctx, loadID)
				switch {
				case traiterr.IsNotFound(err):
					fmt.Fprintf(cmd.ErrOrStderr(), "no rule state saved for %s, starting fresh\n", loadID)
				case err != nil:
					return err
				}
			}

			a := actor.New("traitctl", "traitctl", ledger)
			if err := svc.SetupActor(a); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(a.TalentTraits()); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "%d traits\n", len(a.TalentTraits()))
				for _, t := range a.TalentTraits() {
					fmt.Fprintln(out, "  "+t.String())
				}

				for _, r := range ledger.TalentSnapshot() {
					upcoming := svc.Upcoming(r.Key, r.Rank)
					if len(upcoming) == 0 {
						continue
					}
					fmt.Fprintf(out, "%s (rank %d) next:\n", r.Key, r.Rank)
					for _, entry := range upcoming {
						fmt.Fprintf(out, "  rank %d: %s\n", entry.Rank, entry.DisplayName)
					}
				}
			}

			if saveID != "" {
				return svc.Save(ctx, saveID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print traits as JSON")
	cmd.Flags().StringVar(&loadID, "load", "", "Load rule state from a save slot first (needs TRAITS_PERSIST_RULE_STATE)")
	cmd.Flags().StringVar(&saveID, "save", "", "Save rule state to a save slot afterwards (needs TRAITS_PERSIST_RULE_STATE)")
	return cmd
}

func parseRanks(args []string) (*talents.Ledger, error) {
	ledger := talents.NewLedger(nil)
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, traiterr.InvalidArgumentf("expected talent=rank, got %q", arg)
		}
		rank, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, traiterr.WrapWithCode(err, traiterr.CodeInvalidArgument, "invalid rank").WithMeta("talent", key)
		}
		ledger.SetRank(key, rank)
	}
	return ledger, nil
}
