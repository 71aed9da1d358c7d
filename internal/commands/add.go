package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"itdash/internal/exitcode"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{ local }

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "itdash add <text...>" }

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}
	sess := env.OpenSession(newLinePrompter(env.In, errOut, false), nil)
	if _, err := sess.Add(strings.Join(args, " ")); err != nil {
		return reportError(errOut, err)
	}
	return printOK(env.Config, out)
}
