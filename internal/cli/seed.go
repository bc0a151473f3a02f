package cli

import (
	"context"
	"flag"
	"time"

	"finance-tracker/internal/services"

	"github.com/google/subcommands"
)

type seedCmd struct {
	env    *Env
	count  int
	months int
	seed   uint64
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "add generated sample transactions" }
func (*seedCmd) Usage() string {
	return `fintrack seed [-n <count>] [-months <m>] [-seed <s>]

  Adds a monthly salary plus n random transactions spread over the last m months.
`
}

func (c *seedCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 50, "Number of random transactions besides salaries.")
	f.IntVar(&c.months, "months", 6, "Number of months of history to generate.")
	f.Uint64Var(&c.seed, "seed", 0, "Random seed. 0 picks a random one.")
}

func (c *seedCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.count < 0 || c.months < 1 {
		c.env.errorf("Error: -n must not be negative and -months must be at least 1\n")
		return subcommands.ExitUsageError
	}

	end := c.env.Now()
	start := end.AddDate(0, -c.months, 0)
	history := services.NewTransactionGenerator(c.seed).GenerateHistory(start, end, c.count)

	a, ok := c.env.open()
	if !ok {
		return subcommands.ExitFailure
	}
	defer closeApp(c.env, a)

	began := time.Now()
	added := 0
	for _, input := range history {
		if _, ok := a.Store.Add(input); ok {
			added++
			a.Metrics.IncrementCounter("store.seeded", nil)
		}
	}
	a.Metrics.RecordProcessingTime("store.seed", time.Since(began))

	c.env.printf("Seeded %d transactions from %s to %s\n", added, start.Format("2006-01-02"), end.Format("2006-01-02"))
	return subcommands.ExitSuccess
}
