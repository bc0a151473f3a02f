package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/subcommands"
)

type summaryCmd struct {
	env *Env
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show totals, balance and expenses by category" }
func (*summaryCmd) Usage() string {
	return `fintrack summary

  Displays total income, total expenses, the balance and the expense breakdown.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, ok := c.env.open()
	if !ok {
		return subcommands.ExitFailure
	}
	defer closeApp(c.env, a)

	summary := a.Summary.GetSummary()

	w := c.env.table()
	row(w, "Transactions", fmt.Sprint(summary.TransactionCount))
	row(w, "Income", c.env.money(summary.TotalIncome))
	row(w, "Expenses", c.env.money(summary.TotalExpenses))
	row(w, "Balance", c.env.money(summary.Balance))
	_ = w.Flush()

	shares := a.Summary.GetCategoryBreakdown()
	if len(shares) == 0 {
		return subcommands.ExitSuccess
	}

	c.env.printf("\n")
	w = c.env.table()
	row(w, "CATEGORY", "AMOUNT", "SHARE")
	for _, share := range shares {
		row(w, share.Category, c.env.money(share.Amount), fmt.Sprintf("%d%%", share.Percentage))
	}
	_ = w.Flush()

	return subcommands.ExitSuccess
}

type monthCmd struct {
	env   *Env
	month string
}

func (*monthCmd) Name() string     { return "month" }
func (*monthCmd) Synopsis() string { return "show income and expenses for one month" }
func (*monthCmd) Usage() string {
	return `fintrack month [-m YYYY-MM]

  Displays the totals of a calendar month. Defaults to the current month.
`
}

func (c *monthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month in YYYY-MM format. Defaults to the current month.")
}

func (c *monthCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period := c.env.Now()
	if c.month != "" {
		parsed, err := time.Parse("2006-01", c.month)
		if err != nil {
			c.env.errorf("Error: month must be in YYYY-MM format: %q\n", c.month)
			return subcommands.ExitUsageError
		}
		period = parsed
	}

	a, ok := c.env.open()
	if !ok {
		return subcommands.ExitFailure
	}
	defer closeApp(c.env, a)

	summary, err := a.Summary.GetMonthlySummary(period.Year(), int(period.Month()))
	if err != nil {
		c.env.errorf("Error: %v\n", err)
		return subcommands.ExitFailure
	}

	c.env.printf("%s\n", period.Format("January 2006"))
	w := c.env.table()
	row(w, "Transactions", fmt.Sprint(summary.TransactionCount))
	row(w, "Income", c.env.money(summary.TotalIncome))
	row(w, "Expenses", c.env.money(summary.TotalExpenses))
	row(w, "Net", c.env.money(summary.TotalIncome.Sub(summary.TotalExpenses)))
	_ = w.Flush()

	return subcommands.ExitSuccess
}

type categoriesCmd struct {
	env *Env
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the transaction categories" }
func (*categoriesCmd) Usage() string {
	return `fintrack categories

  Lists the categories accepted by 'fintrack add'.
`
}

func (*categoriesCmd) SetFlags(*flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.env.printf("Income:   %s\n", strings.Join(models.IncomeCategories(), ", "))
	c.env.printf("Expenses: %s\n", strings.Join(models.ExpenseCategories(), ", "))
	return subcommands.ExitSuccess
}
