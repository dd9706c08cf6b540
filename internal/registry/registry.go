// Package registry holds the enumeration tables that describe the content
// set's variant space.
//
// Tables are ordered slices rather than maps so that generation order, and
// with it logging and archive-to-archive diffs, stays identical from run
// to run. A Registry is immutable configuration: build one with Default
// and pass it into the driver.
package registry

// Ore is one ore column. Metal-bearing ores additionally get graded
// (poor/rich/small) item icons.
type Ore struct {
	Name         string
	MetalBearing bool
}

// Metal is one smeltable metal. Tool metals get the full set of tool
// shapes; the others only get stock shapes (ingots, sheets, ...).
type Metal struct {
	Name      string
	ToolMetal bool
}

// MetalItem is one metal item shape. ToolOnly shapes are skipped for
// metals that are not tool metals.
type MetalItem struct {
	Name     string
	ToolOnly bool
}

// Fluid maps a registered fluid block name to the fluid it renders.
// Finite variants share the texture set of their infinite counterpart.
type Fluid struct {
	Name  string
	Fluid string
}

// Registry is the full variant space for one generation run.
type Registry struct {
	Rocks          []string
	RockCategories []string
	Fullblocks     []string
	GrassTypes     []string
	Ores           []Ore
	Powders        []string
	Woods          []string
	Gems           []string
	GemGrades      []string
	Metals         []Metal
	MetalItems     []MetalItem
	Steels         []string
	Tools          []string
	Fluids         []Fluid

	// Sub-enumerations for categories that only exist for some materials.
	WallBlocks   []string
	StairBlocks  []string
	OreGrades    []string
	RockItems    []string
	StoneTools   []string
	GoldpanTypes []string
	MoldMetals   []string
}

// Default returns the canonical content set.
func Default() *Registry {
	return &Registry{
		Rocks: []string{
			"granite",
			"diorite",
			"gabbro",
			"shale",
			"claystone",
			"rocksalt",
			"limestone",
			"conglomerate",
			"dolomite",
			"chert",
			"chalk",
			"rhyolite",
			"basalt",
			"andesite",
			"dacite",
			"quartzite",
			"slate",
			"phyllite",
			"schist",
			"gneiss",
			"marble",
		},
		RockCategories: []string{
			"sedimentary",
			"metamorphic",
			"igneous_intrusive",
			"igneous_extrusive",
		},
		Fullblocks: []string{
			"raw",
			"smooth",
			"cobble",
			"bricks",
			"sand",
			"gravel",
			"dirt",
			"clay",
		},
		GrassTypes: []string{
			"grass",
			"dry_grass",
		},
		Ores: []Ore{
			{"native_copper", true},
			{"native_gold", true},
			{"native_platinum", true},
			{"hematite", true},
			{"native_silver", true},
			{"cassiterite", true},
			{"galena", true},
			{"bismuthinite", true},
			{"garnierite", true},
			{"malachite", true},
			{"magnetite", true},
			{"limonite", true},
			{"sphalerite", true},
			{"tetrahedrite", true},
			{"bituminous_coal", false},
			{"lignite", false},
			{"kaolinite", false},
			{"gypsum", false},
			{"satinspar", false},
			{"selenite", false},
			{"graphite", false},
			{"kimberlite", false},
			{"petrified_wood", false},
			{"sulfur", false},
			{"jet", false},
			{"microcline", false},
			{"pitchblende", false},
			{"cinnabar", false},
			{"cryolite", false},
			{"saltpeter", false},
			{"serpentine", false},
			{"sylvite", false},
			{"borax", false},
			{"olivine", false},
			{"lapis_lazuli", false},
		},
		Powders: []string{
			"flux",
			"coke",
			"kaolinite_powder",
			"graphite_powder",
			"sulfur_powder",
			"saltpeter_powder",
			"hematite_powder",
			"lapis_lazuli_powder",
			"limonite_powder",
			"malachite_powder",
			"salt",
			"fertilizer",
		},
		Woods: []string{
			"ash",
			"aspen",
			"birch",
			"chestnut",
			"douglas_fir",
			"hickory",
			"maple",
			"oak",
			"pine",
			"sequoia",
			"spruce",
			"sycamore",
			"white_cedar",
			"willow",
			"kapok",
			"acacia",
			"rosewood",
			"blackwood",
			"palm",
		},
		Gems: []string{
			"agate",
			"amethyst",
			"beryl",
			"diamond",
			"emerald",
			"garnet",
			"jade",
			"jasper",
			"opal",
			"ruby",
			"sapphire",
			"topaz",
			"tourmaline",
		},
		GemGrades: []string{
			"normal",
			"flawed",
			"flawless",
			"chipped",
			"exquisite",
		},
		Metals: []Metal{
			{"bismuth", false},
			{"bismuth_bronze", true},
			{"black_bronze", true},
			{"brass", false},
			{"bronze", true},
			{"copper", true},
			{"gold", false},
			{"lead", false},
			{"nickel", false},
			{"rose_gold", false},
			{"silver", false},
			{"tin", false},
			{"zinc", false},
			{"sterling_silver", false},
			{"wrought_iron", true},
			{"pig_iron", false},
			{"steel", true},
			{"platinum", false},
			{"black_steel", true},
			{"blue_steel", true},
			{"red_steel", true},
		},
		MetalItems: []MetalItem{
			{"ingot", false},
			{"double_ingot", false},
			{"scrap", false},
			{"dust", false},
			{"nugget", false},
			{"sheet", false},
			{"double_sheet", false},
			{"anvil", true},
			{"tuyere", true},
			{"lamp", false},
			{"pick", true},
			{"pick_head", true},
			{"shovel", true},
			{"shovel_head", true},
			{"axe", true},
			{"axe_head", true},
			{"hoe", true},
			{"hoe_head", true},
			{"chisel", true},
			{"chisel_head", true},
			{"sword", true},
			{"sword_blade", true},
			{"mace", true},
			{"mace_head", true},
			{"saw", true},
			{"saw_blade", true},
			{"javelin", true},
			{"javelin_head", true},
			{"hammer", true},
			{"hammer_head", true},
			{"propick", true},
			{"propick_head", true},
			{"knife", true},
			{"knife_blade", true},
			{"scythe", true},
			{"scythe_blade", true},
			{"unfinished_chestplate", true},
			{"chestplate", true},
			{"unfinished_greaves", true},
			{"greaves", true},
			{"unfinished_boots", true},
			{"boots", true},
			{"unfinished_helmet", true},
			{"helmet", true},
		},
		Steels: []string{
			"steel",
			"blue_steel",
			"red_steel",
			"black_steel",
		},
		Tools: []string{
			"pick", "propick", "shovel", "axe", "hoe", "chisel", "sword",
			"mace", "saw", "javelin", "hammer", "knife", "scythe",
		},
		Fluids: []Fluid{
			{"salt_water", "salt_water"},
			{"fresh_water", "fresh_water"},
			{"hot_water", "hot_water"},
			{"finite_salt_water", "salt_water"},
			{"finite_fresh_water", "fresh_water"},
			{"finite_hot_water", "hot_water"},
			{"rum", "rum"},
			{"beer", "beer"},
			{"whiskey", "whiskey"},
			{"rye_whiskey", "rye_whiskey"},
			{"corn_whiskey", "corn_whiskey"},
			{"sake", "sake"},
			{"vodka", "vodka"},
			{"cider", "cider"},
			{"vinegar", "vinegar"},
			{"brine", "brine"},
			{"milk", "milk"},
			{"olive_oil", "olive_oil"},
			{"tannin", "tannin"},
			{"limewater", "limewater"},
			{"milk_curdled", "milk_curdled"},
			{"milk_vinegar", "milk_vinegar"},
		},

		WallBlocks:   []string{"cobble", "bricks"},
		StairBlocks:  []string{"smooth", "cobble", "bricks"},
		OreGrades:    []string{"poor", "rich", "small"},
		RockItems:    []string{"rock", "brick"},
		StoneTools:   []string{"axe", "shovel", "hoe", "knife", "javelin", "hammer"},
		GoldpanTypes: []string{"empty", "sand", "gravel", "clay", "dirt"},
		MoldMetals:   []string{"empty", "unfired", "copper", "bronze", "black_bronze", "bismuth_bronze"},
	}
}
