// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"itdash/internal/config"
	"itdash/internal/exitcode"
	"itdash/internal/service"
	"itdash/internal/session"
	"itdash/internal/store"
	"itdash/internal/task"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command talks to Google Tasks.
	NeedsAuth() bool

	// NeedsStore returns true if the command reads or writes local state.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// env.Config and env.Logger are always set. env.Store is nil unless
	// NeedsStore returns true; env.Remote is nil unless NeedsAuth does.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}

// Env is what the dispatcher hands a command.
type Env struct {
	Config *config.Config
	Logger *slog.Logger
	In     io.Reader
	Store  store.KV
	Remote service.Service
}

// OpenSession builds and loads a session controller over env.Store.
func (e *Env) OpenSession(prompt session.Prompter, onChange func()) *session.Controller {
	s := e.Config.Settings
	sess := session.New(e.Store, prompt, session.Options{
		FlashDuration: s.FlashDuration,
		AckDelay:      s.AckDelay,
		Logger:        e.Logger,
		OnChange:      onChange,
	})
	sess.Load()
	return sess
}

// reportError prints err and maps it to an exit code. Errors the session
// already showed as a notice are not printed again.
func reportError(errOut io.Writer, err error) int {
	switch {
	case session.Noticed(err):
		return exitcode.UserError
	case errors.Is(err, task.ErrOutOfRange):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
}

func printOK(cfg *config.Config, out io.Writer) int {
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// local embeds the common answers for commands that only touch the store.
type local struct{}

func (local) Aliases() []string              { return nil }
func (local) NeedsAuth() bool                { return false }
func (local) NeedsStore() bool               { return true }
func (local) RegisterFlags(fs *flag.FlagSet) {}

// static embeds the common answers for commands needing neither store nor auth.
type static struct{}

func (static) Aliases() []string              { return nil }
func (static) NeedsAuth() bool                { return false }
func (static) NeedsStore() bool               { return false }
func (static) RegisterFlags(fs *flag.FlagSet) {}
