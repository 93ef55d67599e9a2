package recolor

import (
	"errors"
	"fmt"
	"strings"
)

type (
	Replacement struct {
		Old string `yaml:"old" toml:"old"`
		New string `yaml:"new" toml:"new"`
	}

	// Table is applied entry by entry, in declared order.
	Table []Replacement

	Tables struct {
		Colors  Table `yaml:"colors" toml:"colors"`
		Classes Table `yaml:"classes" toml:"classes"`
	}

	Mode string

	// Cascade records that the replacement text of one entry contains the search key of another,
	// which makes a second pass over the same file change it again.
	Cascade struct {
		From Replacement
		Into Replacement
	}
)

const (
	Sequential   Mode = "sequential"
	Simultaneous Mode = "simultaneous"
)

var (
	ErrInvalidTable = errors.New("invalid replacement table")
)

func (t Table) Apply(s string) string {
	for _, r := range t {
		s = strings.ReplaceAll(s, r.Old, r.New)
	}

	return s
}

func (ts Tables) all() []Replacement {
	all := make([]Replacement, 0, len(ts.Colors)+len(ts.Classes))
	all = append(all, ts.Colors...)

	return append(all, ts.Classes...)
}

func (ts Tables) Len() int {
	return len(ts.Colors) + len(ts.Classes)
}

// Apply runs colors then classes. In Sequential mode a later entry sees text inserted by an earlier one;
// in Simultaneous mode every match is taken from the original text in a single left-to-right pass,
// with earlier entries winning ties at the same position.
func (ts Tables) Apply(s string, mode Mode) string {
	if mode == Simultaneous {
		all := ts.all()
		if len(all) == 0 {
			return s
		}

		pairs := make([]string, 0, 2*len(all))
		for _, r := range all {
			pairs = append(pairs, r.Old, r.New)
		}

		return strings.NewReplacer(pairs...).Replace(s)
	}

	return ts.Classes.Apply(ts.Colors.Apply(s))
}

// Non-nil returned error wraps [ErrInvalidTable].
func (ts Tables) Validate() error {
	named := []struct {
		name  string
		table Table
	}{
		{name: "colors", table: ts.Colors},
		{name: "classes", table: ts.Classes},
	}

	for _, n := range named {
		for i, r := range n.table {
			if r.Old == "" {
				return fmt.Errorf("%w: entry %d of the %s table has an empty search key", ErrInvalidTable, i, n.name)
			}
		}
	}

	return nil
}

// Cascades lists every pair of entries where text inserted by the first one can form the second one's key:
// either the replacement contains the key, or the key straddles the edge of the replacement and
// the text next to it. Straddling pairs only cascade when the neighboring text happens to complete the key.
func (ts Tables) Cascades() []Cascade {
	var found []Cascade

	all := ts.all()

	for _, from := range all {
		for _, into := range all {
			if into.Old == "" || (from == into && from.Old == from.New) {
				continue
			}

			if strings.Contains(from.New, into.Old) || straddles(from.New, into.Old) {
				found = append(found, Cascade{From: from, Into: into})
			}
		}
	}

	return found
}

// straddles reports whether key can begin inside inserted and end after it, or begin before it and end inside it.
func straddles(inserted, key string) bool {
	for i := range len(inserted) {
		if tail := inserted[i:]; len(tail) < len(key) && strings.HasPrefix(key, tail) {
			return true
		}

		if head := inserted[:i+1]; len(head) < len(key) && strings.HasSuffix(key, head) {
			return true
		}
	}

	return false
}

func (c Cascade) String() string {
	return fmt.Sprintf("%q -> %q produces %q, which is rewritten again to %q", c.From.Old, c.From.New, c.Into.Old, c.Into.New)
}

func (m *Mode) UnmarshalText(text []byte) error {
	switch v := Mode(strings.ToLower(string(text))); v {
	case Sequential, Simultaneous:
		*m = v

		return nil
	default:
		return fmt.Errorf("%q is not one of %q or %q", string(text), Sequential, Simultaneous)
	}
}
