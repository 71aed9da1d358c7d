package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"itdash/internal/exitcode"
	"itdash/internal/tasksync"
)

func init() {
	Register(&SyncCmd{})
}

// SyncCmd implements the sync command.
type SyncCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *SyncCmd) SetListName(name string) {
	c.listName = name
}

func (c *SyncCmd) Name() string      { return "sync" }
func (c *SyncCmd) Aliases() []string { return nil }
func (c *SyncCmd) Synopsis() string  { return "Push tasks to Google Tasks" }
func (c *SyncCmd) Usage() string     { return "itdash sync [--list <list-name>]" }
func (c *SyncCmd) NeedsAuth() bool   { return true }
func (c *SyncCmd) NeedsStore() bool  { return true }

func (c *SyncCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *SyncCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	listName := strings.TrimSpace(c.listName)
	if listName == "" {
		listName = env.Config.Settings.SyncList
	}
	if listName == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	sess := env.OpenSession(newLinePrompter(env.In, errOut, false), nil)
	res, err := tasksync.Push(ctx, env.Remote, listName, sess.Tasks(), env.Logger)
	if err != nil {
		if strings.Contains(err.Error(), "ambiguous") {
			fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", listName)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	if !env.Config.Quiet {
		fmt.Fprintln(out, res)
	}
	return exitcode.Success
}
