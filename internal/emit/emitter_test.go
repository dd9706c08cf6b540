package emit

import (
	"io"
	"testing"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfcraft/assetgen/internal/descriptor"
)

func readJSON(t *testing.T, fs billy.Filesystem, path string) any {
	t.Helper()
	f, err := fs.Open(path)
	require.NoError(t, err, "expected %s to exist", path)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	root, err := oj.Parse(data)
	require.NoError(t, err)
	return root
}

func query(t *testing.T, root any, selector string) []any {
	t.Helper()
	x, err := jp.ParseString(selector)
	require.NoError(t, err)
	return x.Get(root)
}

func TestEmitterPaths(t *testing.T) {
	fs := memfs.New()
	e := New(fs, "assets")

	t.Run("blockstate path joins root, category and segments", func(t *testing.T) {
		err := e.CubeAll(descriptor.NamingPath{"raw", "granite"}, "tfc:blocks/stonetypes/raw/granite", nil, "")
		require.NoError(t, err)

		root := readJSON(t, fs, "assets/blockstates/raw/granite.json")
		assert.Equal(t, []any{"tfc:blocks/stonetypes/raw/granite"}, query(t, root, "$.defaults.textures.all"))
		assert.Equal(t, []any{"cube_all"}, query(t, root, "$.defaults.model"))
	})

	t.Run("item path gets the item prefix", func(t *testing.T) {
		err := e.Item(descriptor.NamingPath{"powder", "flux"}, "tfc:items/powder/flux")
		require.NoError(t, err)

		root := readJSON(t, fs, "assets/models/item/powder/flux.json")
		assert.Equal(t, []any{descriptor.ParentGenerated}, query(t, root, "$.parent"))
		assert.Equal(t, []any{"tfc:items/powder/flux"}, query(t, root, "$.textures.layer0"))
	})
}

func TestEmitterDuplicatePath(t *testing.T) {
	fs := memfs.New()
	e := New(fs, "assets")

	require.NoError(t, e.CubeAll(descriptor.NamingPath{"raw", "granite"}, "t", nil, ""))
	err := e.CubeAll(descriptor.NamingPath{"raw", "granite"}, "other", nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate output path")
	assert.Equal(t, 1, e.Count())
}

func TestEmitterItemLayers(t *testing.T) {
	fs := memfs.New()
	e := New(fs, "assets")

	t.Run("zero layers omits textures entirely", func(t *testing.T) {
		require.NoError(t, e.Item(descriptor.NamingPath{"bare"}))
		root := readJSON(t, fs, "assets/models/item/bare.json")
		assert.Empty(t, query(t, root, "$.textures"))
	})

	t.Run("two layers are keyed positionally", func(t *testing.T) {
		require.NoError(t, e.Item(descriptor.NamingPath{"ceramics", "fired", "vessel_glazed"},
			"tfc:items/ceramics/fired/vessel",
			"tfc:items/ceramics/fired/vessel_overlay"))

		root := readJSON(t, fs, "assets/models/item/ceramics/fired/vessel_glazed.json")
		assert.Equal(t, []any{"tfc:items/ceramics/fired/vessel"}, query(t, root, "$.textures.layer0"))
		assert.Equal(t, []any{"tfc:items/ceramics/fired/vessel_overlay"}, query(t, root, "$.textures.layer1"))
	})

	t.Run("explicit parent overrides the flat icon", func(t *testing.T) {
		require.NoError(t, e.ItemWithParent("item/handheld", descriptor.NamingPath{"metal", "pick", "copper"}, "tfc:items/metal/pick/copper"))
		root := readJSON(t, fs, "assets/models/item/metal/pick/copper.json")
		assert.Equal(t, []any{"item/handheld"}, query(t, root, "$.parent"))
	})
}

func TestEmitterProvenance(t *testing.T) {
	fs := memfs.New()
	e := New(fs, "assets")

	require.NoError(t, e.CubeAll(descriptor.NamingPath{"raw", "granite"}, "t", nil, ""))
	require.NoError(t, e.Item(descriptor.NamingPath{"powder", "flux"}, "t"))

	block := readJSON(t, fs, "assets/blockstates/raw/granite.json")
	assert.Equal(t, []any{descriptor.BlockstateComment}, query(t, block, `$['__comment']`))
	assert.Equal(t, []any{int64(1)}, query(t, block, "$.forge_marker"))

	item := readJSON(t, fs, "assets/models/item/powder/flux.json")
	assert.Equal(t, []any{descriptor.ModelComment}, query(t, item, `$['__comment']`))
}
