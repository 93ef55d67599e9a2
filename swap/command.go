package swap

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/kxue43/recolor/palette"
	"github.com/kxue43/recolor/recolor"
	"github.com/kxue43/recolor/terminal"
)

type (
	Cmd struct {
		tables     recolor.Tables
		Root       string           `arg:"" required:"" name:"root" help:"Directory to scan."`
		Extension  string           `name:"ext" default:".tsx" help:"Only files whose name ends with this suffix are rewritten."`
		Exclude    string           `name:"exclude" default:"node_modules" help:"Skip every directory whose path contains this name."`
		TablesFile string           `name:"tables" placeholder:"PATH" help:"YAML or TOML file with colors and classes tables. Replaces the built-in green to pink tables."`
		Mode       recolor.Mode     `name:"mode" enum:"sequential,simultaneous" default:"sequential" help:"sequential lets a later entry rewrite text produced by an earlier one; simultaneous matches against the original text only."`
		DryRun     bool             `name:"dry-run" help:"Report the files that would change without writing them."`
		Debug      bool             `name:"debug" help:"Dump the resolved options and the run summary to stderr."`
		Version    kong.VersionFlag `name:"version" help:"Show version information and quit."`
	}
)

// AfterApply resolves the replacement tables once flags are parsed.
// Non-nil returned error wraps [palette.ErrPalette].
func (c *Cmd) AfterApply() (err error) {
	if c.TablesFile == "" {
		c.tables = palette.Default()

		return nil
	}

	c.tables, err = palette.Load(c.TablesFile)

	return err
}

// Run performs one pass over Root. Per-file failures are reported but do not fail the command.
func (c *Cmd) Run(ctx context.Context, console *terminal.Console) error {
	colorizer, err := recolor.New(recolor.Options{
		Tables:    c.tables,
		Extension: c.Extension,
		Exclude:   c.Exclude,
		Mode:      c.Mode,
		DryRun:    c.DryRun,
	}, console, console)
	if err != nil {
		return err
	}

	if c.Mode != recolor.Simultaneous {
		for _, cascade := range c.tables.Cascades() {
			console.Printf("Warning: not idempotent: %s\n", cascade)
		}
	}

	if c.Debug {
		console.Dump(colorizer.Options())
	}

	summary, err := colorizer.Run(ctx, c.Root)
	if err != nil {
		return fmt.Errorf("failed to recolor %q: %w", c.Root, err)
	}

	console.Total(len(summary.Changed), c.DryRun)

	if c.Debug {
		console.Dump(summary)
	}

	return nil
}
