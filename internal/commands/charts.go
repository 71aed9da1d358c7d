package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"itdash/internal/charts"
	"itdash/internal/exitcode"
)

func init() {
	Register(&ChartsCmd{})
}

// ChartsCmd implements the charts command.
type ChartsCmd struct {
	outDir string
}

func (c *ChartsCmd) Name() string      { return "charts" }
func (c *ChartsCmd) Aliases() []string { return nil }
func (c *ChartsCmd) Synopsis() string  { return "Show status charts" }
func (c *ChartsCmd) Usage() string     { return "itdash charts [--out <dir>]" }
func (c *ChartsCmd) NeedsAuth() bool   { return false }
func (c *ChartsCmd) NeedsStore() bool  { return false }

func (c *ChartsCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.outDir, "out", "", "")
}

func (c *ChartsCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	all := charts.All()
	if c.outDir == "" {
		fmt.Fprint(out, charts.Summary(all, 20))
		return exitcode.Success
	}
	paths, err := charts.ExportPNG(c.outDir, all)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	if !env.Config.Quiet {
		for _, p := range paths {
			fmt.Fprintln(out, p)
		}
	}
	return exitcode.Success
}
