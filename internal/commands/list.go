package commands

import (
	"context"
	"fmt"
	"io"

	"itdash/internal/exitcode"
	"itdash/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `itdash` (no args) and `itdash list`.
type ListCmd struct{ local }

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "itdash list" }

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	sess := env.OpenSession(newLinePrompter(env.In, errOut, false), nil)
	tasks := sess.Tasks()
	if len(tasks) == 0 {
		if !env.Config.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}
	for i, rec := range tasks {
		output.FormatTask(out, i+1, rec)
	}
	return exitcode.Success
}
