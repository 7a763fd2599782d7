package builder

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/lvenv/internal/probe"
	"github.com/conn-castle/lvenv/internal/stage"
	"github.com/conn-castle/lvenv/internal/testutil"
)

type fileSnapshot struct {
	mode    fs.FileMode
	content string
}

func snapshotTree(t *testing.T, root string) map[string]fileSnapshot {
	t.Helper()
	out := map[string]fileSnapshot{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		snap := fileSnapshot{mode: info.Mode()}
		if !d.IsDir() {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			snap.content = string(data)
		}
		out[rel] = snap
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestCreateBuildsEnvironment(t *testing.T) {
	base := testutil.NewFakeBase(t, t.TempDir(), [3]int{2, 7, 18}, stage.FixedModules())
	dest := filepath.Join(t.TempDir(), "my env")

	err := NewLegacy(Options{}).Create(context.Background(), base.Python, dest)
	require.NoError(t, err)

	for _, rel := range []string{"bin/python", "bin/python2", "bin/python2.7", "lib/python2.7/os.py", "lib/python2.7/site.py"} {
		_, err := os.Stat(filepath.Join(dest, rel))
		require.NoError(t, err, rel)
	}
	entries, err := os.ReadDir(filepath.Join(dest, "lib", "python2.7", "site-packages"))
	require.NoError(t, err)
	require.Empty(t, entries)

	siteContent, err := os.ReadFile(filepath.Join(dest, "lib", "python2.7", "site.py"))
	require.NoError(t, err)
	require.Contains(t, string(siteContent), `sys.prefix = "`+dest+`"`)
	require.Contains(t, string(siteContent), `sys.base_prefix = "`+base.Prefix+`"`)
	require.Contains(t, string(siteContent), `open("`+base.Site+`")`)
}

func TestCreateIsIdempotent(t *testing.T) {
	base := testutil.NewFakeBase(t, t.TempDir(), [3]int{2, 7, 18}, stage.FixedModules())
	dest := filepath.Join(t.TempDir(), "env")
	b := NewLegacy(Options{})

	require.NoError(t, b.Create(context.Background(), base.Python, dest))
	first := snapshotTree(t, dest)
	require.NoError(t, b.Create(context.Background(), base.Python, dest))
	second := snapshotTree(t, dest)

	require.Equal(t, first, second)
}

func TestCreateResolvesRelativeDestination(t *testing.T) {
	base := testutil.NewFakeBase(t, t.TempDir(), [3]int{2, 7, 18}, stage.FixedModules())
	work := t.TempDir()

	var abs string
	testutil.WithWorkingDir(t, work, func() {
		var err error
		abs, err = filepath.Abs("env")
		require.NoError(t, err)
		require.NoError(t, NewLegacy(Options{}).Create(context.Background(), base.Python, "env"))
	})

	content, err := os.ReadFile(filepath.Join(abs, "lib", "python2.7", "site.py"))
	require.NoError(t, err)
	require.Contains(t, string(content), `sys.prefix = "`+abs+`"`)
}

func TestCreateProbeFailureLeavesNoTree(t *testing.T) {
	dir := t.TempDir()
	python := testutil.WriteStubOutput(t, dir, "python", "", "boom", 3)
	dest := filepath.Join(t.TempDir(), "env")

	err := NewLegacy(Options{}).Create(context.Background(), python, dest)
	var failure *probe.Failure
	require.ErrorAs(t, err, &failure)
	require.Equal(t, probe.StageExit, failure.Stage)

	_, err = os.Stat(dest)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCreateMissingModuleKeepsPartialTree(t *testing.T) {
	base := testutil.NewFakeBase(t, t.TempDir(), [3]int{2, 7, 18}, []string{"UserDict.py"})
	dest := filepath.Join(t.TempDir(), "env")

	err := NewLegacy(Options{}).Create(context.Background(), base.Python, dest)
	require.ErrorIs(t, err, stage.ErrMissingModule)

	var missing *stage.MissingModuleError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "_abcoll.py", missing.Name)

	_, err = os.Stat(filepath.Join(dest, "lib", "python2.7", "UserDict.py"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dest, "lib", "python2.7", "site.py"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCreateUsesAliasName(t *testing.T) {
	base := testutil.NewFakeBase(t, t.TempDir(), [3]int{2, 7, 18}, stage.FixedModules())
	dest := filepath.Join(t.TempDir(), "env")

	require.NoError(t, NewLegacy(Options{Name: "pypy"}).Create(context.Background(), base.Python, dest))

	for _, name := range []string{"pypy", "pypy2", "pypy2.7"} {
		_, err := os.Stat(filepath.Join(dest, "bin", name))
		require.NoError(t, err, name)
	}
}
