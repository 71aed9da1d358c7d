package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"itdash/internal/exitcode"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{ local }

func (c *EditCmd) Name() string     { return "edit" }
func (c *EditCmd) Synopsis() string { return "Change the text of a task" }
func (c *EditCmd) Usage() string    { return "itdash edit <n> <text...>" }

func (c *EditCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	index, rest, err := ParseTaskNum(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	sess := env.OpenSession(newLinePrompter(env.In, errOut, false), nil)
	// An empty replacement goes through the session so the user sees
	// the revert notice.
	changed, err := sess.Edit(index, strings.Join(rest, " "))
	if err != nil {
		return reportError(errOut, err)
	}
	if !changed {
		if !env.Config.Quiet {
			fmt.Fprintln(out, "unchanged")
		}
		return exitcode.Success
	}
	return printOK(env.Config, out)
}
