package commands

import (
	"context"
	"fmt"
	"io"

	"itdash/internal/exitcode"
)

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd implements the logout command.
type LogoutCmd struct{ static }

func (c *LogoutCmd) Name() string     { return "logout" }
func (c *LogoutCmd) Synopsis() string { return "Remove stored Google credentials" }
func (c *LogoutCmd) Usage() string    { return "itdash logout [common flags]" }

func (c *LogoutCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	cfg := env.Config
	// Check if token.json exists
	if !cfg.HasToken() {
		if !cfg.Quiet {
			fmt.Fprintln(out, "not logged in")
		}
		return exitcode.Success
	}

	// Delete token.json
	if err := cfg.RemoveToken(); err != nil {
		fmt.Fprintf(errOut, "error: failed to remove token: %v\n", err)
		return exitcode.AuthError
	}

	return printOK(cfg, out)
}
