// Package layout computes where the parts of a new environment live.
package layout

import (
	"fmt"
	"path/filepath"

	"github.com/conn-castle/lvenv/internal/probe"
)

const (
	// BinDirName holds the interpreter aliases.
	BinDirName = "bin"
	// LibDirName is the parent of the versioned library directory.
	LibDirName = "lib"
	// SitePackagesDirName is the private package directory inside the library directory.
	SitePackagesDirName = "site-packages"
)

// Layout is the set of absolute directories that make up an environment.
type Layout struct {
	Root            string
	BinDir          string
	LibDir          string
	SitePackagesDir string
}

// Plan derives the layout of an environment rooted at destination.
// Only the major and minor version select the library directory.
func Plan(info probe.Info, destination string) Layout {
	lib := filepath.Join(destination, LibDirName, LibVersionDir(info.Version))
	return Layout{
		Root:            destination,
		BinDir:          filepath.Join(destination, BinDirName),
		LibDir:          lib,
		SitePackagesDir: filepath.Join(lib, SitePackagesDirName),
	}
}

// LibVersionDir returns the versioned library directory name, e.g. python2.7.
func LibVersionDir(v probe.Version) string {
	return fmt.Sprintf("python%d.%d", v.Major, v.Minor)
}
