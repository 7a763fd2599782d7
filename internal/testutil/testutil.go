// Package testutil provides helpers for tests that need fake interpreters and base installations.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return writeScript(t, dir, name, fmt.Sprintf("exit %d\n", exitCode))
}

// WriteStubOutput writes an executable shell stub that prints stdout verbatim,
// prints stderr to standard error and exits with exitCode.
func WriteStubOutput(t *testing.T, dir string, name string, stdout string, stderr string, exitCode int) string {
	t.Helper()
	var body strings.Builder
	if stdout != "" {
		body.WriteString("cat <<'LVENV_STDOUT'\n")
		body.WriteString(strings.TrimSuffix(stdout, "\n"))
		body.WriteString("\nLVENV_STDOUT\n")
	}
	if stderr != "" {
		body.WriteString("cat >&2 <<'LVENV_STDERR'\n")
		body.WriteString(strings.TrimSuffix(stderr, "\n"))
		body.WriteString("\nLVENV_STDERR\n")
	}
	fmt.Fprintf(&body, "exit %d\n", exitCode)
	return writeScript(t, dir, name, body.String())
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}

// FakeBase is a fake base installation laid out like a POSIX Python install.
type FakeBase struct {
	Prefix  string
	Python  string
	Lib     string
	Site    string
	Version [3]int
}

// NewFakeBase creates a base installation under root with a python stub that
// answers the lvenv probe with this installation's paths. modules are written
// into the library directory next to os.py and site.py.
func NewFakeBase(t *testing.T, root string, version [3]int, modules []string) FakeBase {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatalf("resolve root: %v", err)
	}
	prefix := filepath.Join(resolved, "base")
	lib := filepath.Join(prefix, "lib", fmt.Sprintf("python%d.%d", version[0], version[1]))
	bin := filepath.Join(prefix, "bin")
	for _, dir := range []string{lib, bin} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	for _, name := range append([]string{"os.py", "site.py"}, modules...) {
		WriteModule(t, lib, name)
	}

	base := FakeBase{
		Prefix:  prefix,
		Python:  filepath.Join(bin, "python"),
		Lib:     lib,
		Site:    filepath.Join(lib, "site.py"),
		Version: version,
	}
	WriteStubOutput(t, bin, "python", base.Record(t), "", 0)
	return base
}

// Record returns the probe record the fake interpreter prints.
func (b FakeBase) Record(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(map[string]any{
		"version":             b.Version[:],
		"executable":          b.Python,
		"prefix":              b.Prefix,
		"exec_prefix":         b.Prefix,
		"lib":                 b.Lib,
		"startup_module_path": b.Site,
	})
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	return string(data)
}

// WriteModule writes a placeholder module source file named name into dir.
func WriteModule(t *testing.T, dir string, name string) {
	t.Helper()
	content := fmt.Sprintf("# %s from the fake base library\n", name)
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write module %s: %v", name, err)
	}
}

func writeScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte("#!/bin/sh\n" + body)
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}
