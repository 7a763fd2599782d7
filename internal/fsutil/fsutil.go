// Package fsutil holds the file primitives shared by the stager and the startup module generator.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/conn-castle/lvenv/internal/messages"
)

// WriteFileAtomic writes data to filename by writing a temp file in the same
// directory and renaming it into place. An existing file is replaced.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return writeAtomic(filename, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// CopyFile copies src to dst, replacing dst atomically.
// Symlinks on src are followed; dst is always a regular file carrying the
// permission bits of the resolved source, executable bits included.
func CopyFile(src string, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf(messages.FsutilStatSourceFmt, src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf(messages.FsutilSourceNotRegularFmt, src)
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf(messages.FsutilOpenSourceFmt, src, err)
	}
	defer func() { _ = in.Close() }()

	err = writeAtomic(dst, info.Mode().Perm(), func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
	if err != nil {
		return fmt.Errorf(messages.FsutilCopyFmt, src, dst, err)
	}
	return nil
}

// EnsureDir creates path and any missing parents. An existing directory is not an error.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

func writeAtomic(filename string, perm os.FileMode, fill func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFileFmt, filename, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	// Chmod is not subject to the umask, so the copy ends up with exactly perm.
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf(messages.FsutilSetPermissionsFmt, filename, err)
	}
	if err := fill(tmp); err != nil {
		return fmt.Errorf(messages.FsutilWriteTempFileFmt, filename, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf(messages.FsutilSyncTempFileFmt, filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FsutilCloseTempFileFmt, filename, err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		_ = os.Remove(tmpName)
		committed = true
		return fmt.Errorf(messages.FsutilRenameTempFileFmt, filename, err)
	}
	committed = true
	return syncDir(dir)
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf(messages.FsutilOpenDirFmt, dir, err)
	}
	defer func() { _ = d.Close() }()
	if err := d.Sync(); err != nil {
		return fmt.Errorf(messages.FsutilSyncDirFmt, dir, err)
	}
	return nil
}
