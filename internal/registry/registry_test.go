package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertUnique fails when an identifier appears twice in a table. A
// duplicate would silently overwrite its own output files rather than
// error at generation time.
func assertUnique(t *testing.T, table string, names []string) {
	t.Helper()
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		assert.False(t, seen[n], "%s: duplicate identifier %q", table, n)
		seen[n] = true
	}
}

func TestDefaultTablesAreUnique(t *testing.T) {
	r := Default()

	assertUnique(t, "Rocks", r.Rocks)
	assertUnique(t, "RockCategories", r.RockCategories)
	assertUnique(t, "Fullblocks", r.Fullblocks)
	assertUnique(t, "GrassTypes", r.GrassTypes)
	assertUnique(t, "Powders", r.Powders)
	assertUnique(t, "Woods", r.Woods)
	assertUnique(t, "Gems", r.Gems)
	assertUnique(t, "GemGrades", r.GemGrades)
	assertUnique(t, "Steels", r.Steels)
	assertUnique(t, "Tools", r.Tools)
	assertUnique(t, "WallBlocks", r.WallBlocks)
	assertUnique(t, "StairBlocks", r.StairBlocks)
	assertUnique(t, "OreGrades", r.OreGrades)
	assertUnique(t, "RockItems", r.RockItems)
	assertUnique(t, "StoneTools", r.StoneTools)
	assertUnique(t, "GoldpanTypes", r.GoldpanTypes)
	assertUnique(t, "MoldMetals", r.MoldMetals)

	ores := make([]string, len(r.Ores))
	for i, o := range r.Ores {
		ores[i] = o.Name
	}
	assertUnique(t, "Ores", ores)

	metals := make([]string, len(r.Metals))
	for i, m := range r.Metals {
		metals[i] = m.Name
	}
	assertUnique(t, "Metals", metals)

	items := make([]string, len(r.MetalItems))
	for i, m := range r.MetalItems {
		items[i] = m.Name
	}
	assertUnique(t, "MetalItems", items)

	fluids := make([]string, len(r.Fluids))
	for i, f := range r.Fluids {
		fluids[i] = f.Name
	}
	assertUnique(t, "Fluids", fluids)
}

func TestDefaultTableSizes(t *testing.T) {
	r := Default()

	assert.Len(t, r.Rocks, 21)
	assert.Len(t, r.RockCategories, 4)
	assert.Len(t, r.Fullblocks, 8)
	assert.Len(t, r.GrassTypes, 2)
	assert.Len(t, r.Ores, 35)
	assert.Len(t, r.Powders, 12)
	assert.Len(t, r.Woods, 19)
	assert.Len(t, r.Gems, 13)
	assert.Len(t, r.GemGrades, 5)
	assert.Len(t, r.Metals, 21)
	assert.Len(t, r.MetalItems, 44)
	assert.Len(t, r.Steels, 4)
	assert.Len(t, r.Tools, 13)
	assert.Len(t, r.Fluids, 22)
}

func TestDefaultAttributes(t *testing.T) {
	r := Default()

	byOre := make(map[string]bool, len(r.Ores))
	for _, o := range r.Ores {
		byOre[o.Name] = o.MetalBearing
	}
	assert.True(t, byOre["native_copper"])
	assert.True(t, byOre["tetrahedrite"])
	assert.False(t, byOre["bituminous_coal"])
	assert.False(t, byOre["lapis_lazuli"])

	byMetal := make(map[string]bool, len(r.Metals))
	for _, m := range r.Metals {
		byMetal[m.Name] = m.ToolMetal
	}
	assert.True(t, byMetal["copper"])
	assert.True(t, byMetal["red_steel"])
	assert.False(t, byMetal["gold"])
	assert.False(t, byMetal["pig_iron"])

	// Every steel must also be a registered metal.
	for _, s := range r.Steels {
		_, ok := byMetal[s]
		assert.True(t, ok, "steel %q missing from Metals", s)
	}

	// Finite fluids render their infinite counterpart's fluid.
	byFluid := make(map[string]string, len(r.Fluids))
	for _, f := range r.Fluids {
		byFluid[f.Name] = f.Fluid
	}
	assert.Equal(t, "salt_water", byFluid["finite_salt_water"])
	assert.Equal(t, "hot_water", byFluid["finite_hot_water"])
}
