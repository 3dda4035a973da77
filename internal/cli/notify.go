package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/ledger/internal/application/usecase/recurrence"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
)

func newNotifyCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Recurring transaction notifications",
	}

	var dedupeTTL time.Duration
	sweep := &cobra.Command{
		Use:   "sweep",
		Short: "Publish reminders for missed and upcoming recurring transactions once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dedupeTTL <= 0 {
				dedupeTTL = a.cfg.Notifier.DedupeTTL
			}
			return a.withInjector(func(inj *dependency.Injector) error {
				out, err := inj.Sweep.Execute(cmd.Context(), recurrence.SweepInput{DedupeTTL: dedupeTTL})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "published=%d duplicates=%d failed=%d\n",
					out.Published, out.Duplicates, out.Failed)
				return nil
			})
		},
	}
	sweep.Flags().DurationVar(&dedupeTTL, "dedupe-ttl", 0, "how long a sent reminder suppresses repeats (default from NOTIFIER_DEDUPE_TTL)")

	cmd.AddCommand(sweep)
	return cmd
}
