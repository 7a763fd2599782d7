// Package stage copies the interpreter and the bootstrap part of the base
// standard library into a new environment.
package stage

import "slices"

// SentinelModule is the file the interpreter looks for to locate its library directory.
const SentinelModule = "os.py"

// fixedModules is the set of base library files the interpreter imports
// before it can run the generated startup module. It is specific to the 2.x
// line and must be re-derived when a new base version is supported.
// Kept sorted so staging order is deterministic.
var fixedModules = []string{
	"UserDict.py",
	"_abcoll.py",
	"_weakrefset.py",
	"abc.py",
	"copy_reg.py",
	"genericpath.py",
	"linecache.py",
	"posixpath.py",
	"stat.py",
	"types.py",
	"warnings.py",
}

// FixedModules returns a copy of the bootstrap module set in staging order.
// It never contains SentinelModule or the startup module.
func FixedModules() []string {
	return slices.Clone(fixedModules)
}
