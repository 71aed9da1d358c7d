package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"itdash/internal/exitcode"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	local
	yes bool
}

// SetYes skips the confirmation prompt (for testing).
func (c *RmCmd) SetYes(yes bool) {
	c.yes = yes
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "itdash rm [--yes] <n>" }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *RmCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	index, rest, err := ParseTaskNum(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if len(rest) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", rest[0])
		return exitcode.UserError
	}

	sess := env.OpenSession(newLinePrompter(env.In, errOut, c.yes), nil)
	scheduled, err := sess.Remove(index)
	if err != nil {
		return reportError(errOut, err)
	}
	if !scheduled {
		if !env.Config.Quiet {
			fmt.Fprintln(out, "cancelled")
		}
		return exitcode.Success
	}

	// The removal lands after the acknowledgment delay.
	if err := sess.Scheduler().Drain(ctx); err != nil {
		fmt.Fprintln(errOut, "error: cancelled")
		return exitcode.UserError
	}
	if err := sess.Err(); err != nil {
		return reportError(errOut, err)
	}
	return printOK(env.Config, out)
}
