package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"itdash/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{ static }

func (c *HelpCmd) Name() string     { return "help" }
func (c *HelpCmd) Synopsis() string { return "Print usage" }
func (c *HelpCmd) Usage() string    { return "itdash help" }

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, HelpText(DefaultRegistry))
	return exitcode.Success
}

// HelpText renders usage for every command in r.
func HelpText(r *Registry) string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	b.WriteString("  itdash                     Same as itdash list\n")
	for _, cmd := range r.All() {
		fmt.Fprintf(&b, "  %-26s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	b.WriteString(`
Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`)
	return b.String()
}
