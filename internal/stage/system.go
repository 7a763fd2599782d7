package stage

import (
	"os"

	"github.com/conn-castle/lvenv/internal/fsutil"
)

// System is the filesystem surface the stager needs.
type System interface {
	MkdirAll(path string, perm os.FileMode) error
	CopyFile(src string, dst string) error
	Stat(name string) (os.FileInfo, error)
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// MkdirAll creates a directory and all parent directories.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CopyFile copies src to dst atomically, following symlinks on src.
func (RealSystem) CopyFile(src string, dst string) error {
	return fsutil.CopyFile(src, dst)
}

// Stat returns file info for name.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}
