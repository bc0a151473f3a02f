package cli

import (
	"context"
	"flag"
	"time"

	"finance-tracker/internal/services"

	"github.com/google/subcommands"
)

type tokenCmd struct {
	env     *Env
	subject string
}

func (*tokenCmd) Name() string     { return "token" }
func (*tokenCmd) Synopsis() string { return "issue a bearer token for the HTTP API" }
func (*tokenCmd) Usage() string {
	return `fintrack token [-sub <subject>]

  Prints a signed access token. Requires AUTH_TOKEN_SECRET.
`
}

func (c *tokenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.subject, "sub", "fintrack", "Subject to embed in the token.")
}

func (c *tokenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.env.Config.AuthEnabled() {
		c.env.errorf("Error: AUTH_TOKEN_SECRET is not set, the API does not require tokens\n")
		return subcommands.ExitFailure
	}

	tokens := services.NewTokenService(&c.env.Config.Auth)
	token, _, err := tokens.GenerateAccessToken(c.subject)
	if err != nil {
		c.env.errorf("Error: %v\n", err)
		return subcommands.ExitFailure
	}

	expiresAt, err := tokens.GetTokenExpiry(token)
	if err != nil {
		c.env.errorf("Error: %v\n", err)
		return subcommands.ExitFailure
	}

	c.env.printf("%s\n", token)
	c.env.errorf("expires %s\n", expiresAt.Format(time.RFC3339))
	return subcommands.ExitSuccess
}
