package commands

import (
	"context"
	"fmt"
	"io"

	"itdash/internal/exitcode"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. It toggles, so running it on a
// done task unchecks it.
type DoneCmd struct{ local }

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle a task's done state" }
func (c *DoneCmd) Usage() string     { return "itdash done <n>" }

func (c *DoneCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	index, rest, err := ParseTaskNum(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if len(rest) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", rest[0])
		return exitcode.UserError
	}
	sess := env.OpenSession(newLinePrompter(env.In, errOut, false), nil)
	rec, err := sess.ToggleDone(index)
	if err != nil {
		return reportError(errOut, err)
	}
	if !env.Config.Quiet {
		if rec.Done {
			fmt.Fprintln(out, "done")
		} else {
			fmt.Fprintln(out, "unchecked")
		}
	}
	return exitcode.Success
}
