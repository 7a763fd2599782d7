package builder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/sys/unix"

	"github.com/conn-castle/lvenv/internal/messages"
)

var (
	// ErrInterpreterNotFound means the base interpreter does not exist or is not on PATH.
	ErrInterpreterNotFound = errors.New(messages.InterpreterNotFound)
	// ErrInterpreterNotExecutable means the base interpreter exists but cannot be executed.
	ErrInterpreterNotExecutable = errors.New(messages.InterpreterNotExecutable)
)

var (
	lookPath    = exec.LookPath
	accessCheck = unix.Access
)

// ResolveInterpreter turns name into an absolute path to an executable file.
// Names without a separator are looked up on PATH; a leading ~ is expanded.
func ResolveInterpreter(name string) (string, error) {
	expanded, err := homedir.Expand(name)
	if err != nil {
		return "", fmt.Errorf(messages.InterpreterResolveFmt, name, err)
	}
	if !strings.ContainsRune(expanded, filepath.Separator) {
		found, err := lookPath(expanded)
		if err != nil {
			if errors.Is(err, exec.ErrNotFound) {
				return "", fmt.Errorf(messages.InterpreterNotFoundFmt, ErrInterpreterNotFound, name)
			}
			return "", fmt.Errorf(messages.InterpreterResolveFmt, name, err)
		}
		expanded = found
	}
	path, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.InterpreterResolveFmt, name, err)
	}
	if err := checkExecutable(path); err != nil {
		return "", err
	}
	return path, nil
}

// checkExecutable reports whether path is a regular file the caller may execute.
func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf(messages.InterpreterNotFoundFmt, ErrInterpreterNotFound, path)
		}
		return fmt.Errorf(messages.InterpreterResolveFmt, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf(messages.InterpreterNotExecutableFmt, ErrInterpreterNotExecutable, path)
	}
	if err := accessCheck(path, unix.X_OK); err != nil {
		return fmt.Errorf(messages.InterpreterNotExecutableFmt, ErrInterpreterNotExecutable, path)
	}
	return nil
}
