package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/ledger/internal/application/usecase/report"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
)

const cliDateLayout = "2006-01-02"

type scopeFlags struct {
	user string
	all  bool
}

func (f *scopeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.user, "user", "", "owner id to report on")
	cmd.Flags().BoolVar(&f.all, "all", false, "report across every user")
}

// scope runs as an admin so that --user and --all are honored.
func (f *scopeFlags) scope() (transaction.Scope, error) {
	if f.all {
		return transaction.Scope{IsAdmin: true, AllUsers: true}, nil
	}
	id, err := uuid.Parse(f.user)
	if err != nil {
		return transaction.Scope{}, fmt.Errorf("--user must be a UUID (or pass --all)")
	}
	return transaction.Scope{UserID: id, IsAdmin: true, OwnerID: &id}, nil
}

func newReportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Ledger reports",
	}
	cmd.AddCommand(newSummaryCommand(a), newMonthlyBudgetCommand(a))
	return cmd
}

func newSummaryCommand(a *app) *cobra.Command {
	var (
		scope      scopeFlags
		start, end string
		category   string
		tags       []string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print income, expenses and balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scope.scope()
			if err != nil {
				return err
			}
			filter := report.Filter{Scope: s, Tags: tags}
			if filter.StartDate, err = optionalDate(start, false); err != nil {
				return err
			}
			if filter.EndDate, err = optionalDate(end, true); err != nil {
				return err
			}
			if c := strings.TrimSpace(category); c != "" {
				filter.Category = &c
			}

			return a.withInjector(func(inj *dependency.Injector) error {
				out, err := inj.Financial.Execute(cmd.Context(), report.FinancialReportInput{Filter: filter})
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "transactions: %d\n", len(out.Transactions))
				fmt.Fprintf(w, "income:       %s\n", out.TotalIncome.StringFixed(2))
				fmt.Fprintf(w, "expenses:     %s\n", out.TotalExpenses.StringFixed(2))
				fmt.Fprintf(w, "balance:      %s\n", out.Balance.StringFixed(2))
				return nil
			})
		},
	}
	scope.register(cmd)
	cmd.Flags().StringVar(&start, "start", "", "first day included (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "last day included (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "only this category")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "only rows carrying every tag")
	return cmd
}

func newMonthlyBudgetCommand(a *app) *cobra.Command {
	var (
		scope  scopeFlags
		budget string
		month  int
		year   int
	)

	cmd := &cobra.Command{
		Use:   "monthly-budget",
		Short: "Compare one month of expenses with a budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scope.scope()
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(budget)
			if err != nil {
				return fmt.Errorf("--budget must be a number")
			}

			return a.withInjector(func(inj *dependency.Injector) error {
				out, err := inj.MonthlyBudget.Execute(cmd.Context(), report.MonthlyBudgetInput{
					Scope:  s,
					Budget: amount,
					Month:  month,
					Year:   year,
				})
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "period:    %s\n", out.Period)
				fmt.Fprintf(w, "expenses:  %s\n", out.TotalExpenses.StringFixed(2))
				fmt.Fprintf(w, "remaining: %s\n", out.RemainingBudget.StringFixed(2))
				fmt.Fprintln(w, out.Recommendation)
				return nil
			})
		},
	}
	now := time.Now()
	scope.register(cmd)
	cmd.Flags().StringVar(&budget, "budget", "", "budget amount for the month")
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "month 1-12")
	cmd.Flags().IntVar(&year, "year", now.Year(), "year")
	_ = cmd.MarkFlagRequired("budget")
	return cmd
}

func optionalDate(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(cliDateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
