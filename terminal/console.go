package terminal

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

type (
	// Console writes the run report to out and log lines to errOut.
	// Report lines are styled only when out is a color-capable terminal.
	Console struct {
		out    io.Writer
		errOut io.Writer
		logger *log.Logger
		styles styles
		mux    sync.Mutex
	}

	styles struct {
		found   lipgloss.Style
		updated lipgloss.Style
		total   lipgloss.Style
	}
)

var palette = struct {
	magenta lipgloss.Color
	yellow  lipgloss.Color
	gray    lipgloss.Color
}{
	magenta: lipgloss.Color("212"),
	yellow:  lipgloss.Color("184"),
	gray:    lipgloss.Color("245"),
}

func NewConsole(out, errOut io.Writer, prefix string) *Console {
	r := lipgloss.NewRenderer(out)

	return &Console{
		out:    out,
		errOut: errOut,
		logger: log.New(errOut, prefix, 0),
		styles: styles{
			found:   r.NewStyle().Foreground(palette.gray),
			updated: r.NewStyle().Foreground(palette.magenta),
			total:   r.NewStyle().Bold(true).Foreground(palette.yellow),
		},
	}
}

func (c *Console) Printf(format string, v ...any) {
	c.mux.Lock()
	defer c.mux.Unlock()

	c.logger.Printf(format, v...)
}

func (c *Console) Print(v ...any) {
	c.mux.Lock()
	defer c.mux.Unlock()

	c.logger.Print(v...)
}

// Dump writes a deep dump of each value to the log destination.
func (c *Console) Dump(v ...any) {
	c.mux.Lock()
	defer c.mux.Unlock()

	spew.Fdump(c.errOut, v...)
}

func (c *Console) Found(n int, ext string) {
	c.line(c.styles.found, fmt.Sprintf("Found %d %s files", n, ext))
}

func (c *Console) Updated(path string, dryRun bool) {
	if dryRun {
		c.line(c.styles.updated, "Would update: "+path)

		return
	}

	c.line(c.styles.updated, "Updated: "+path)
}

func (c *Console) Total(n int, dryRun bool) {
	msg := fmt.Sprintf("Total files updated: %d", n)
	if dryRun {
		msg = fmt.Sprintf("Total files that would be updated: %d", n)
	}

	c.mux.Lock()
	_, _ = fmt.Fprintln(c.out)
	c.mux.Unlock()

	c.line(c.styles.total, msg)
}

func (c *Console) line(style lipgloss.Style, s string) {
	c.mux.Lock()
	defer c.mux.Unlock()

	_, _ = fmt.Fprintln(c.out, style.Render(s))
}
