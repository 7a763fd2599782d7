// Package probe asks a base interpreter for the facts an environment is built from.
package probe

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Version is the (major, minor, micro) version tuple of a base interpreter.
type Version struct {
	Major int
	Minor int
	Micro int
}

// Components returns the first n components of the version tuple.
// n is clamped to [0, 3].
func (v Version) Components(n int) []int {
	all := []int{v.Major, v.Minor, v.Micro}
	if n < 0 {
		n = 0
	}
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// Join formats the first n components joined with dots; Join(0) is empty.
func (v Version) Join(n int) string {
	parts := v.Components(n)
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strconv.Itoa(p)
	}
	return strings.Join(out, ".")
}

// String returns the full dotted version.
func (v Version) String() string {
	return v.Join(3)
}

// MarshalJSON encodes the version as the [major, minor, micro] array used on the wire.
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Components(3))
}

// Info is an immutable snapshot of a base interpreter. Every path is absolute
// with symlinks resolved, because the generated startup module compares them
// as string prefixes.
type Info struct {
	Version    Version `json:"version"`
	Executable string  `json:"executable"`
	Prefix     string  `json:"prefix"`
	ExecPrefix string  `json:"exec_prefix"`
	// Lib is the directory holding the base standard library (the sentinel's directory).
	Lib string `json:"lib"`
	// SitePath is the base installation's startup module source file.
	SitePath string `json:"startup_module_path"`
}
