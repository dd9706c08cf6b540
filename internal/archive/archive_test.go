package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
	"time"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(sec int64) func() time.Time {
	return func() time.Time { return time.Unix(sec, 0) }
}

func readFile(t *testing.T, fs billy.Filesystem, path string) []byte {
	t.Helper()
	f, err := fs.Open(path)
	require.NoError(t, err, "expected %s to exist", path)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	return data
}

func readZip(t *testing.T, fs billy.Filesystem, path string) map[string]string {
	t.Helper()
	data := readFile(t, fs, path)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	entries := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[f.Name] = string(content)
	}
	return entries
}

func TestSnapshot(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "assets/blockstates/raw/granite.json", []byte(`{"a":1}`), 0o644))
	require.NoError(t, util.WriteFile(fs, "assets/models/item/powder/flux.json", []byte(`{"b":2}`), 0o644))

	a := New(fs, "assets_backups")
	a.Now = fixedClock(1500000000)

	name, err := a.Snapshot("assets")
	require.NoError(t, err)
	assert.Equal(t, "assets_backups/1500000000.zip", name)

	t.Run("archive holds the full tree with relative slash paths", func(t *testing.T) {
		entries := readZip(t, fs, name)
		assert.Equal(t, map[string]string{
			"blockstates/raw/granite.json": `{"a":1}`,
			"models/item/powder/flux.json": `{"b":2}`,
		}, entries)
	})

	t.Run("backup dir is marked ignore-everything", func(t *testing.T) {
		ignore := string(readFile(t, fs, "assets_backups/.gitignore"))
		assert.Contains(t, ignore, "does not belong on git")
		assert.Contains(t, ignore, "\n*\n")
	})
}

func TestSnapshotTwiceProducesDistinctArchives(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "assets/x.json", []byte("x"), 0o644))

	a := New(fs, "assets_backups")

	a.Now = fixedClock(100)
	first, err := a.Snapshot("assets")
	require.NoError(t, err)

	a.Now = fixedClock(101)
	second, err := a.Snapshot("assets")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, readZip(t, fs, first), readZip(t, fs, second))
}

func TestSnapshotMissingTree(t *testing.T) {
	fs := memfs.New()
	a := New(fs, "assets_backups")
	a.Now = fixedClock(42)

	// First ever run: nothing to back up yet, but the archive must still
	// be produced so the run's failure semantics stay uniform.
	name, err := a.Snapshot("assets")
	require.NoError(t, err)
	assert.Empty(t, readZip(t, fs, name))
}
