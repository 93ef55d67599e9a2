// Package recolor rewrites fixed color codes and utility class names in source files.
// Files are discovered under a root directory by extension, rewritten in place, and only when their contents change.
package recolor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

type (
	Logger interface {
		Printf(string, ...any)
		Print(...any)
	}

	Reporter interface {
		Found(n int, ext string)
		Updated(path string, dryRun bool)
	}

	Options struct {
		Tables    Tables
		Extension string
		Exclude   string
		Mode      Mode
		DryRun    bool
	}

	Colorizer struct {
		logger   Logger
		reporter Reporter
		opts     Options
	}

	FileResult struct {
		Err     error
		Path    string
		Changed bool
	}

	Summary struct {
		Changed    []string
		Failed     []FileResult
		Discovered int
	}
)

var (
	ErrDiscovery = errors.New("discovery failure")
	ErrRead      = errors.New("read failure")
	ErrWrite     = errors.New("write failure")
)

// The reporter may be nil.
// Non-nil returned error wraps [ErrInvalidTable].
func New(opts Options, logger Logger, reporter Reporter) (*Colorizer, error) {
	if err := opts.Tables.Validate(); err != nil {
		return nil, err
	}

	if opts.Extension == "" {
		return nil, fmt.Errorf("%w: file extension must not be empty", ErrInvalidTable)
	}

	if opts.Mode == "" {
		opts.Mode = Sequential
	}

	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Colorizer{logger: logger, reporter: reporter, opts: opts}, nil
}

func (c *Colorizer) Options() Options {
	return c.opts
}

// Discover lists every file under root that carries the extension, in traversal order.
// Directories whose path relative to root contains the excluded name are skipped with everything below them.
// Non-nil returned error wraps [ErrDiscovery].
func (c *Colorizer) Discover(root string) (paths []string, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path at %q: %s", path, err.Error())
		}

		if d.IsDir() {
			if c.excluded(root, path) {
				return fs.SkipDir
			}

			return nil
		}

		if strings.HasSuffix(d.Name(), c.opts.Extension) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDiscovery, err.Error())
	}

	return paths, nil
}

func (c *Colorizer) excluded(root, dir string) bool {
	if c.opts.Exclude == "" {
		return false
	}

	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return false
	}

	return strings.Contains(filepath.ToSlash(rel), c.opts.Exclude)
}

// Transform rewrites the file at path and reports whether its contents changed.
// In dry-run mode nothing is written but the return value is the same.
// Non-nil returned error wraps [ErrRead] or [ErrWrite].
func (c *Colorizer) Transform(path string) (changed bool, err error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrRead, err.Error())
	}

	if !utf8.Valid(raw) {
		return false, fmt.Errorf("%w: %q is not valid UTF-8", ErrRead, path)
	}

	original := string(raw)

	updated := c.opts.Tables.Apply(original, c.opts.Mode)
	if updated == original {
		return false, nil
	}

	if c.opts.DryRun {
		return true, nil
	}

	if err = replaceFile(path, []byte(updated)); err != nil {
		return false, fmt.Errorf("%w: %s", ErrWrite, err.Error())
	}

	return true, nil
}

// Run discovers files under root and transforms them one at a time.
// Per-file failures are logged and collected in the summary; only discovery errors and cancellation abort the run.
func (c *Colorizer) Run(ctx context.Context, root string) (summary Summary, err error) {
	paths, err := c.Discover(root)
	if err != nil {
		return summary, err
	}

	summary.Discovered = len(paths)

	if c.reporter != nil {
		c.reporter.Found(summary.Discovered, c.opts.Extension)
	}

	for _, path := range paths {
		if err = ctx.Err(); err != nil {
			return summary, fmt.Errorf("run stopped before %q: %w", path, context.Cause(ctx))
		}

		result := c.transformOne(path)

		switch {
		case result.Err != nil:
			summary.Failed = append(summary.Failed, result)
		case result.Changed:
			summary.Changed = append(summary.Changed, path)

			if c.reporter != nil {
				c.reporter.Updated(path, c.opts.DryRun)
			}
		}
	}

	return summary, nil
}

func (c *Colorizer) transformOne(path string) FileResult {
	changed, err := c.Transform(path)
	if err != nil {
		c.logger.Printf("Error processing %s: %s\n", path, err)
	}

	return FileResult{Path: path, Changed: changed, Err: err}
}
