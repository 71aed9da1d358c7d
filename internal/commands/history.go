package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"itdash/internal/exitcode"
	"itdash/internal/output"
)

func init() {
	Register(&HistoryCmd{})
}

// HistoryCmd implements the history command.
type HistoryCmd struct {
	local
	limit int
}

func (c *HistoryCmd) Name() string      { return "history" }
func (c *HistoryCmd) Aliases() []string { return []string{"log"} }
func (c *HistoryCmd) Synopsis() string  { return "Show recent actions, newest first" }
func (c *HistoryCmd) Usage() string     { return "itdash history [--limit <n>]" }

func (c *HistoryCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.limit, "limit", 0, "")
}

func (c *HistoryCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if c.limit < 0 {
		fmt.Fprintf(errOut, "error: invalid limit: %d\n", c.limit)
		return exitcode.UserError
	}
	sess := env.OpenSession(newLinePrompter(env.In, errOut, false), nil)
	entries := sess.History()
	if len(entries) == 0 {
		if !env.Config.Quiet {
			fmt.Fprintln(out, "no history")
		}
		return exitcode.Success
	}
	if c.limit > 0 && c.limit < len(entries) {
		entries = entries[:c.limit]
	}
	for _, e := range entries {
		output.FormatHistory(out, e)
	}
	return exitcode.Success
}
