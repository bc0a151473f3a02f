package cli

import (
	"context"
	"encoding/json"
	"flag"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/validation"

	"github.com/google/subcommands"
)

type addCmd struct {
	env         *Env
	txType      string
	amount      string
	category    string
	date        string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense" }
func (*addCmd) Usage() string {
	return `fintrack add -type <income|expense> -amount <n> -category <name> [-date YYYY-MM-DD] [-desc <text>]

  Records a transaction. The date defaults to today.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "type", models.TransactionTypeExpense, "Transaction type: income or expense.")
	f.StringVar(&c.amount, "amount", "", "Positive amount with at most 2 decimal places.")
	f.StringVar(&c.category, "category", "", "Category, see 'fintrack categories'.")
	f.StringVar(&c.date, "date", "", "Date in YYYY-MM-DD format. Defaults to today.")
	f.StringVar(&c.description, "desc", "", "Optional description, up to 100 characters.")
}

func (c *addCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	req := dto.CreateTransactionRequest{
		Type:        c.txType,
		Amount:      json.Number(c.amount),
		Category:    c.category,
		Date:        c.date,
		Description: c.description,
	}
	req.Normalize()
	if err := validation.GetValidator().Struct(req); err != nil {
		for _, detail := range validation.FormatErrors(err) {
			c.env.errorf("Error: %s\n", detail)
		}
		return subcommands.ExitUsageError
	}

	input, err := req.ToInput()
	if err != nil {
		c.env.errorf("Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, ok := c.env.open()
	if !ok {
		return subcommands.ExitFailure
	}
	defer closeApp(c.env, a)

	t, added := a.Store.Add(input)
	if !added {
		c.env.errorf("Error: transaction was rejected\n")
		return subcommands.ExitFailure
	}

	c.env.printf("Added %s %s %s on %s (%s)\n", t.Type, c.env.money(t.Amount), t.Category, t.Date, t.ID)
	return subcommands.ExitSuccess
}

type rmCmd struct {
	env *Env
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete transactions by id" }
func (*rmCmd) Usage() string {
	return `fintrack rm <id> [<id>...]

  Deletes the given transactions. Unknown ids are reported and ignored.
`
}

func (*rmCmd) SetFlags(*flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		c.env.errorf("Error: at least one transaction id is required\n")
		return subcommands.ExitUsageError
	}

	a, ok := c.env.open()
	if !ok {
		return subcommands.ExitFailure
	}
	defer closeApp(c.env, a)

	for _, id := range f.Args() {
		if a.Store.Remove(id) {
			c.env.printf("Removed %s\n", id)
		} else {
			c.env.printf("No transaction %s\n", id)
		}
	}
	return subcommands.ExitSuccess
}

type lsCmd struct {
	env      *Env
	txType   string
	category string
	month    string
	limit    int
}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list transactions, newest first" }
func (*lsCmd) Usage() string {
	return `fintrack ls [-type <income|expense>] [-category <name>] [-month YYYY-MM] [-n <limit>]

  Lists transactions, newest first.
`
}

func (c *lsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "type", "", "Only show income or expense.")
	f.StringVar(&c.category, "category", "", "Only show this category.")
	f.StringVar(&c.month, "month", "", "Only show this month (YYYY-MM).")
	f.IntVar(&c.limit, "n", 0, "Show at most n transactions. 0 shows all.")
}

func (c *lsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filters := dto.TransactionFilters{Type: c.txType, Category: c.category, Month: c.month, Limit: c.limit}
	if err := validation.GetValidator().Struct(filters); err != nil {
		for _, detail := range validation.FormatErrors(err) {
			c.env.errorf("Error: %s\n", detail)
		}
		return subcommands.ExitUsageError
	}

	a, ok := c.env.open()
	if !ok {
		return subcommands.ExitFailure
	}
	defer closeApp(c.env, a)

	all := a.Store.Transactions()
	matched := filters.ToModel().Apply(all)
	if len(matched) == 0 {
		c.env.printf("No transactions.\n")
		return subcommands.ExitSuccess
	}

	w := c.env.table()
	row(w, "DATE", "TYPE", "CATEGORY", "AMOUNT", "DESCRIPTION", "ID")
	for _, t := range matched {
		row(w, t.Date, t.Type, t.Category, models.FormatSignedAmount(t, c.env.Config.Currency), t.Description, t.ID)
	}
	_ = w.Flush()

	if len(matched) < len(all) {
		c.env.printf("Showing %d of %d transactions\n", len(matched), len(all))
	}
	return subcommands.ExitSuccess
}
