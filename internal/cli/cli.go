package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"finance-tracker/internal/app"
	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Env is shared by every command: the loaded configuration and where to write.
type Env struct {
	Config *config.Config
	Out    io.Writer
	Err    io.Writer
	Now    func() time.Time
}

// NewEnv returns an Env writing to stdout and stderr
func NewEnv(cfg *config.Config) *Env {
	return &Env{Config: cfg, Out: os.Stdout, Err: os.Stderr, Now: time.Now}
}

// Register adds all fintrack commands to the commander.
func Register(c *subcommands.Commander, env *Env) {
	c.Register(&addCmd{env: env}, "transactions")
	c.Register(&rmCmd{env: env}, "transactions")
	c.Register(&lsCmd{env: env}, "transactions")
	c.Register(&seedCmd{env: env}, "transactions")

	c.Register(&summaryCmd{env: env}, "reports")
	c.Register(&monthCmd{env: env}, "reports")
	c.Register(&categoriesCmd{env: env}, "reports")

	c.Register(&tokenCmd{env: env}, "api")
}

// open loads the store from the configured backend; callers must Close the App.
func (e *Env) open() (*app.App, bool) {
	a, err := app.Open(e.Config, nil)
	if err != nil {
		e.errorf("Error opening storage: %v\n", err)
		return nil, false
	}
	return a, true
}

func (e *Env) printf(format string, args ...interface{}) {
	fmt.Fprintf(e.Out, format, args...)
}

func (e *Env) errorf(format string, args ...interface{}) {
	fmt.Fprintf(e.Err, format, args...)
}

func (e *Env) table() *tabwriter.Writer {
	return tabwriter.NewWriter(e.Out, 0, 0, 2, ' ', 0)
}

func (e *Env) money(amount decimal.Decimal) string {
	return models.FormatAmount(amount, e.Config.Currency)
}

func row(w io.Writer, cols ...string) {
	fmt.Fprintln(w, strings.Join(cols, "\t"))
}

func closeApp(e *Env, a *app.App) {
	if err := a.Close(); err != nil {
		e.errorf("Error closing storage: %v\n", err)
	}
}
