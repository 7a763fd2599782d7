package stage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/lvenv/internal/layout"
	"github.com/conn-castle/lvenv/internal/probe"
	"github.com/conn-castle/lvenv/internal/testutil"
)

func fakeInfo(base testutil.FakeBase) probe.Info {
	return probe.Info{
		Version:    probe.Version{Major: base.Version[0], Minor: base.Version[1], Micro: base.Version[2]},
		Executable: base.Python,
		Prefix:     base.Prefix,
		ExecPrefix: base.Prefix,
		Lib:        base.Lib,
		SitePath:   base.Site,
	}
}

func TestFixedModulesExcludeSentinelAndStartupModule(t *testing.T) {
	modules := FixedModules()
	require.NotContains(t, modules, SentinelModule)
	require.NotContains(t, modules, "site.py")
	require.True(t, slices.IsSorted(modules))
	require.Len(t, modules, 11)

	modules[0] = "mutated.py"
	require.Equal(t, "UserDict.py", FixedModules()[0])
}

func TestBinaryNames(t *testing.T) {
	v := probe.Version{Major: 2, Minor: 7, Micro: 18}
	require.Equal(t, []string{"python", "python2", "python2.7"}, BinaryNames("python", v))
	require.Equal(t, []string{"pypy", "pypy2", "pypy2.7"}, BinaryNames("pypy", v))
}

func TestStepsOrder(t *testing.T) {
	info := probe.Info{
		Version:    probe.Version{Major: 2, Minor: 7, Micro: 18},
		Executable: "/usr/bin/python2.7",
		Lib:        "/usr/lib/python2.7",
	}
	l := layout.Plan(info, "/tmp/env")

	steps := Steps(l, info, "")
	require.Equal(t, Step{Kind: StepMkdir, Target: "/tmp/env/bin"}, steps[0])
	require.Equal(t, "/tmp/env/bin/python", steps[1].Target)
	require.Equal(t, "/tmp/env/bin/python2", steps[2].Target)
	require.Equal(t, "/tmp/env/bin/python2.7", steps[3].Target)
	require.Equal(t, Step{Kind: StepMkdir, Target: "/tmp/env/lib/python2.7"}, steps[4])
	require.Equal(t, Step{Kind: StepMkdir, Target: "/tmp/env/lib/python2.7/site-packages"}, steps[5])
	require.Equal(t, Step{
		Kind:   StepCopy,
		Source: "/usr/lib/python2.7/os.py",
		Target: "/tmp/env/lib/python2.7/os.py",
		Module: SentinelModule,
	}, steps[6])
	require.Len(t, steps, 7+len(fixedModules))
	for i, module := range fixedModules {
		require.Equal(t, module, steps[7+i].Module)
	}
}

func TestStageProducesAliasesAndModules(t *testing.T) {
	base := testutil.NewFakeBase(t, t.TempDir(), [3]int{2, 7, 18}, FixedModules())
	info := fakeInfo(base)
	l := layout.Plan(info, filepath.Join(t.TempDir(), "env"))

	err := New(RealSystem{}, "", nil).Stage(l, info)
	require.NoError(t, err)

	want, err := os.ReadFile(base.Python)
	require.NoError(t, err)
	for _, name := range []string{"python", "python2", "python2.7"} {
		path := filepath.Join(l.BinDir, name)
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, want, got, name)

		fi, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o755), fi.Mode().Perm(), name)
	}

	for _, module := range append([]string{SentinelModule}, FixedModules()...) {
		_, err := os.Stat(filepath.Join(l.LibDir, module))
		require.NoError(t, err, module)
	}
	_, err = os.Stat(filepath.Join(l.LibDir, "site.py"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	entries, err := os.ReadDir(l.SitePackagesDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestStageMissingModuleKeepsEarlierFiles(t *testing.T) {
	modules := FixedModules()
	missing := "linecache.py"
	present := slices.DeleteFunc(slices.Clone(modules), func(m string) bool { return m == missing })
	base := testutil.NewFakeBase(t, t.TempDir(), [3]int{2, 7, 18}, present)
	info := fakeInfo(base)
	l := layout.Plan(info, filepath.Join(t.TempDir(), "env"))

	err := New(RealSystem{}, "python", nil).Stage(l, info)
	require.ErrorIs(t, err, ErrMissingModule)
	require.ErrorIs(t, err, fs.ErrNotExist)

	var missingErr *MissingModuleError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, missing, missingErr.Name)
	require.Equal(t, filepath.Join(base.Lib, missing), missingErr.Path)
	require.Contains(t, err.Error(), missing)

	for _, module := range []string{SentinelModule, "UserDict.py", "genericpath.py"} {
		_, err := os.Stat(filepath.Join(l.LibDir, module))
		require.NoError(t, err, module)
	}
	_, err = os.Stat(filepath.Join(l.LibDir, "posixpath.py"))
	require.ErrorIs(t, err, fs.ErrNotExist)
	_, err = os.Stat(filepath.Join(l.BinDir, "python2.7"))
	require.NoError(t, err)
}

func TestStageMissingSentinel(t *testing.T) {
	base := testutil.NewFakeBase(t, t.TempDir(), [3]int{2, 7, 18}, FixedModules())
	require.NoError(t, os.Remove(filepath.Join(base.Lib, SentinelModule)))
	info := fakeInfo(base)
	l := layout.Plan(info, filepath.Join(t.TempDir(), "env"))

	err := New(RealSystem{}, "", nil).Stage(l, info)
	var missingErr *MissingModuleError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, SentinelModule, missingErr.Name)
}

func TestStageCopiesThroughSymlinkedInterpreter(t *testing.T) {
	base := testutil.NewFakeBase(t, t.TempDir(), [3]int{2, 7, 18}, FixedModules())
	link := filepath.Join(filepath.Dir(base.Python), "python-link")
	require.NoError(t, os.Symlink("python", link))
	info := fakeInfo(base)
	info.Executable = link
	l := layout.Plan(info, filepath.Join(t.TempDir(), "env"))

	require.NoError(t, New(RealSystem{}, "", nil).Stage(l, info))

	fi, err := os.Lstat(filepath.Join(l.BinDir, "python"))
	require.NoError(t, err)
	require.True(t, fi.Mode().IsRegular())
}

func TestStageRepeatedRunsAreIdempotent(t *testing.T) {
	base := testutil.NewFakeBase(t, t.TempDir(), [3]int{2, 7, 18}, FixedModules())
	info := fakeInfo(base)
	l := layout.Plan(info, filepath.Join(t.TempDir(), "env"))
	stager := New(RealSystem{}, "", nil)

	require.NoError(t, stager.Stage(l, info))
	first, err := os.ReadFile(filepath.Join(l.LibDir, "stat.py"))
	require.NoError(t, err)
	require.NoError(t, stager.Stage(l, info))
	second, err := os.ReadFile(filepath.Join(l.LibDir, "stat.py"))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

type failingSystem struct {
	RealSystem
	mkdirErr error
	statErr  error
}

func (f failingSystem) MkdirAll(path string, perm os.FileMode) error {
	if f.mkdirErr != nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: f.mkdirErr}
	}
	return f.RealSystem.MkdirAll(path, perm)
}

func (f failingSystem) Stat(name string) (os.FileInfo, error) {
	if f.statErr != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: f.statErr}
	}
	return f.RealSystem.Stat(name)
}

func TestStageFilesystemErrorsUnwrap(t *testing.T) {
	base := testutil.NewFakeBase(t, t.TempDir(), [3]int{2, 7, 18}, FixedModules())
	info := fakeInfo(base)
	l := layout.Plan(info, filepath.Join(t.TempDir(), "env"))

	err := New(failingSystem{mkdirErr: fs.ErrPermission}, "", nil).Stage(l, info)
	require.ErrorIs(t, err, fs.ErrPermission)
	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	require.Equal(t, l.BinDir, pathErr.Path)
	require.False(t, errors.Is(err, ErrMissingModule))

	err = New(failingSystem{statErr: fs.ErrPermission}, "", nil).Stage(l, info)
	require.ErrorIs(t, err, fs.ErrPermission)
	require.False(t, errors.Is(err, ErrMissingModule))
}

func TestStageUnknownStepKind(t *testing.T) {
	err := New(RealSystem{}, "", nil).run(Step{Kind: "link"})
	require.ErrorContains(t, err, `unknown stage step kind "link"`)
}
