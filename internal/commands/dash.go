package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"itdash/internal/exitcode"
	"itdash/internal/tui"
)

func init() {
	Register(&DashCmd{})
}

// DashCmd implements the dash command.
type DashCmd struct{ local }

func (c *DashCmd) Name() string      { return "dash" }
func (c *DashCmd) Aliases() []string { return []string{"ui"} }
func (c *DashCmd) Synopsis() string  { return "Open the interactive dashboard" }
func (c *DashCmd) Usage() string     { return "itdash dash" }

func (c *DashCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	prompt := tui.NewPrompter()
	sess := env.OpenSession(prompt, nil)

	err := tui.Run(ctx, sess, prompt)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}

	// Let removals confirmed just before quitting land.
	if err := sess.Scheduler().Drain(context.WithoutCancel(ctx)); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	if err := sess.Err(); err != nil {
		return reportError(errOut, err)
	}
	return exitcode.Success
}
