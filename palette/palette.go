// Package palette provides the built-in green to pink replacement tables and loads alternate tables from disk.
package palette

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/kxue43/recolor/recolor"
)

const (
	DefaultExtension = ".tsx"
	DefaultExclude   = "node_modules"
)

var (
	ErrPalette = errors.New("palette failure")

	colors = recolor.Table{
		{Old: "#006A4E", New: "#D91976"}, // primary
		{Old: "#005a42", New: "#A8145A"}, // dark
		{Old: "#005239", New: "#A8145A"},
		{Old: "#004d39", New: "#A8145A"},
		{Old: "#004835", New: "#A8145A"},
		{Old: "#008f69", New: "#E84A9C"}, // light
		{Old: "#008866", New: "#E84A9C"},
	}

	classes = recolor.Table{
		{Old: "hover:bg-green-800", New: "hover:bg-pink-800"},
		{Old: "hover:bg-green-700", New: "hover:bg-pink-700"},
		{Old: "bg-green-50", New: "bg-pink-50"},
		{Old: "shadow-green-100", New: "shadow-pink-100"},
		{Old: "from-green-50", New: "from-pink-50"},
		{Old: "to-emerald-50", New: "to-pink-50"},
		{Old: "via-green-50", New: "via-pink-50"},
		{Old: "to-green-700", New: "to-pink-700"},
		{Old: "to-green-600", New: "to-pink-600"},
		{Old: "from-green-500", New: "from-pink-500"},
	}
)

// Default returns a fresh copy of the built-in tables.
func Default() recolor.Tables {
	return recolor.Tables{
		Colors:  append(recolor.Table(nil), colors...),
		Classes: append(recolor.Table(nil), classes...),
	}
}

// Load reads tables from a YAML (.yaml, .yml) or TOML (.toml) file.
// Both formats use a "colors" and a "classes" list of {old, new} entries.
// Non-nil returned error wraps [ErrPalette].
func Load(path string) (tables recolor.Tables, err error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return tables, fmt.Errorf("%w: failed to read tables file: %s", ErrPalette, err.Error())
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(contents, &tables)
	case ".toml":
		err = toml.Unmarshal(contents, &tables)
	default:
		return tables, fmt.Errorf("%w: %q has unsupported extension %q, use .yaml, .yml or .toml", ErrPalette, path, ext)
	}

	if err != nil {
		return recolor.Tables{}, fmt.Errorf("%w: failed to decode %q: %s", ErrPalette, path, err.Error())
	}

	if tables.Len() == 0 {
		return recolor.Tables{}, fmt.Errorf("%w: %q defines no replacements", ErrPalette, path)
	}

	if err = tables.Validate(); err != nil {
		return recolor.Tables{}, fmt.Errorf("%w: %s", ErrPalette, err.Error())
	}

	return tables, nil
}
