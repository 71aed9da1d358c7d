package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"itdash/internal/commands"
	"itdash/internal/config"
	"itdash/internal/exitcode"
	"itdash/internal/logging"
	"itdash/internal/service"
	"itdash/internal/store"
	"itdash/internal/store/jsonfile"
	"itdash/internal/store/sqlite"
)

// SQLiteFile is the database filename used by the sqlite store.
const SQLiteFile = "itdash.sqlite"

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// StoreFactory opens the persistent store from config.
type StoreFactory func(cfg *config.Config) (store.KV, error)

// OpenStore opens the store backend named in config.yaml.
func OpenStore(cfg *config.Config) (store.KV, error) {
	switch cfg.Settings.Store {
	case config.StoreSQLite:
		return sqlite.New(filepath.Join(cfg.DataDir(), SQLiteFile))
	case config.StoreJSONFile, "":
		return jsonfile.New(cfg.DataDir())
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Settings.Store)
	}
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	services ServiceFactory
	stores   StoreFactory
	in       io.Reader
}

// NewDispatcher creates a new dispatcher with the given registry and
// factories. A nil stores factory means OpenStore.
func NewDispatcher(registry *commands.Registry, services ServiceFactory, stores StoreFactory) *Dispatcher {
	if stores == nil {
		stores = OpenStore
	}
	return &Dispatcher{
		registry: registry,
		services: services,
		stores:   stores,
	}
}

// SetInput sets the reader confirmations are read from.
func (d *Dispatcher) SetInput(r io.Reader) {
	d.in = r
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	env := &commands.Env{
		Config: cfg,
		Logger: logging.New(errOut, debug).With("command", cmd.Name()),
		In:     d.in,
	}

	if cmd.NeedsAuth() {
		if code := d.connect(ctx, env, errOut); code != exitcode.Success {
			return code
		}
	}

	if cmd.NeedsStore() {
		kv, err := d.stores(cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: storage error: %v\n", err)
			return exitcode.BackendError
		}
		defer kv.Close()
		env.Store = kv
		env.Logger.Debug("store opened", "backend", cfg.Settings.Store, "dir", cfg.DataDir())
	}

	return cmd.Run(ctx, env, positionalArgs, out, errOut)
}

// connect fills env.Remote, reporting missing credentials the way the
// login command explains them.
func (d *Dispatcher) connect(ctx context.Context, env *commands.Env, errOut io.Writer) int {
	cfg := env.Config
	if d.services == nil {
		switch {
		case !cfg.HasOAuthClient():
			fmt.Fprintf(errOut, "error: %s not found in %s\n", config.OAuthClientFile, cfg.Dir)
			return exitcode.AuthError
		case !cfg.HasToken():
			fmt.Fprintf(errOut, "error: not logged in (run: %s login)\n", config.AppName)
			return exitcode.AuthError
		}
		fmt.Fprintln(errOut, "error: backend error: no remote service configured")
		return exitcode.BackendError
	}
	// The factory handles credential files itself, so tests can inject
	// a FakeService without any on disk.
	svc, err := d.services(ctx, cfg)
	if err != nil {
		if strings.Contains(err.Error(), "token") || strings.Contains(err.Error(), "auth") {
			fmt.Fprintf(errOut, "error: auth error: %s\n", err)
			return exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %s\n", err)
		return exitcode.BackendError
	}
	env.Remote = svc
	return exitcode.Success
}

// flagError rewrites flag package errors into the CLI's wording.
func flagError(err error) string {
	errStr := err.Error()

	// Unknown flag
	if name, ok := strings.CutPrefix(errStr, "flag provided but not defined: "); ok {
		return "unknown flag: " + name
	}

	return errStr
}
