// Package swap implements the recolor command: one pass over a directory tree that swaps a color palette in place.
// The built-in tables turn a green palette pink; alternate tables can be loaded from a YAML or TOML file.
package swap
