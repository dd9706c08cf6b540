package gen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tfcraft/assetgen/internal/descriptor"
)

// Parent models for held items. Knives and javelins use a mirrored
// handheld template so the blade points the right way in first person.
const (
	parentHandheld        = "item/handheld"
	parentHandheldFlipped = "tfc:item/handheld_flipped"
)

// itemModels emits every flat item icon: ores, rocks, wood items, gems,
// metal items, stone tools, powders, goldpans, ceramics and the flat
// placed-item sprites.
func (r *Runner) itemModels() error {
	for _, fn := range []func() error{
		r.oreItems,
		r.rockItems,
		r.woodItems,
		r.gemItems,
		r.metalItems,
		r.stoneToolItems,
		r.powderItems,
		r.goldpanItems,
		r.ceramicItems,
		r.flatItems,
	} {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

// oreItems emits graded icons (poor/rich/small) for metal-bearing ores
// and the ungraded icon for every ore.
func (r *Runner) oreItems() error {
	for _, ore := range r.Registry.Ores {
		if ore.MetalBearing {
			for _, grade := range r.Registry.OreGrades {
				if err := r.Emitter.Item(np{"ore", grade, ore.Name}, fmt.Sprintf("tfc:items/ore/%s/%s", grade, ore.Name)); err != nil {
					return err
				}
			}
		}
		if err := r.Emitter.Item(np{"ore", "normal", ore.Name}, "tfc:items/ore/"+ore.Name); err != nil {
			return err
		}
	}
	return nil
}

// rockItems emits the loose rock and brick icons per rock.
func (r *Runner) rockItems() error {
	for _, rock := range r.Registry.Rocks {
		for _, item := range r.Registry.RockItems {
			if err := r.Emitter.Item(np{item, rock}, fmt.Sprintf("tfc:items/stonetypes/%s/%s", item, rock)); err != nil {
				return err
			}
		}
	}
	return nil
}

// woodItems emits the log, door and lumber icons per wood.
func (r *Runner) woodItems() error {
	for _, wood := range r.Registry.Woods {
		for _, item := range []string{"log", "door", "lumber"} {
			if err := r.Emitter.Item(np{"wood", item, wood}, fmt.Sprintf("tfc:items/wood/%s/%s", item, wood)); err != nil {
				return err
			}
		}
	}
	return nil
}

// gemItems emits one icon per gem per grade.
func (r *Runner) gemItems() error {
	for _, gem := range r.Registry.Gems {
		for _, grade := range r.Registry.GemGrades {
			if err := r.Emitter.Item(np{"gem", grade, gem}, fmt.Sprintf("tfc:items/gem/%s/%s", grade, gem)); err != nil {
				return err
			}
		}
	}
	return nil
}

// metalItems emits every metal item shape for every metal it exists in,
// plus the high-carbon/weak steel ingots and the unknown ingot. Tool
// shapes are skipped for metals that cannot make tools; unfinished armor
// shares the finished piece's texture.
func (r *Runner) metalItems() error {
	e, reg := r.Emitter, r.Registry
	for _, item := range reg.MetalItems {
		for _, metal := range reg.Metals {
			if item.ToolOnly && !metal.ToolMetal {
				continue
			}
			parent := itemParent(reg.Tools, item.Name)
			texture := fmt.Sprintf("tfc:items/metal/%s/%s", strings.TrimPrefix(item.Name, "unfinished_"), metal.Name)
			if err := e.ItemWithParent(parent, np{"metal", item.Name, metal.Name}, texture); err != nil {
				return err
			}
		}
	}

	for _, steel := range reg.Steels {
		for _, kind := range []string{"high_carbon", "weak"} {
			if err := e.Item(np{"metal", "ingot", kind + "_" + steel}, "tfc:items/metal/ingot/"+steel); err != nil {
				return err
			}
		}
	}
	return e.Item(np{"metal", "ingot", "unknown"}, "tfc:items/metal/ingot/unknown")
}

// stoneToolItems emits the knapped stone tools, one per rock category.
func (r *Runner) stoneToolItems() error {
	for _, category := range r.Registry.RockCategories {
		for _, tool := range r.Registry.StoneTools {
			parent := itemParent(r.Registry.Tools, tool)
			if err := r.Emitter.ItemWithParent(parent, np{"stone", tool, category}, "tfc:items/stone/"+tool); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) powderItems() error {
	for _, powder := range r.Registry.Powders {
		if err := r.Emitter.Item(np{"powder", powder}, "tfc:items/powder/"+powder); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) goldpanItems() error {
	for _, fill := range r.Registry.GoldpanTypes {
		if err := r.Emitter.Item(np{"goldpan", fill}, "tfc:items/goldpan/"+fill); err != nil {
			return err
		}
	}
	return nil
}

// ceramicItems emits the mold icons (tool head and blade molds for the
// castable metals, ingot molds for everything) and the fired/unfired
// pottery.
func (r *Runner) ceramicItems() error {
	e, reg := r.Emitter, r.Registry

	heads := make(map[string]bool, 2*len(reg.Tools))
	for _, tool := range reg.Tools {
		heads[tool+"_head"] = true
		heads[tool+"_blade"] = true
	}
	for _, metal := range reg.MoldMetals {
		for _, item := range reg.MetalItems {
			if !heads[item.Name] {
				continue
			}
			tool, _, _ := strings.Cut(item.Name, "_")
			if err := e.Item(np{"mold", item.Name, metal}, fmt.Sprintf("tfc:items/mold/%s/%s", metal, tool)); err != nil {
				return err
			}
		}
	}

	for _, metal := range reg.Metals {
		if err := e.Item(np{"mold", "ingot", metal.Name}, "tfc:items/mold/ingot/"+metal.Name); err != nil {
			return err
		}
	}
	for _, metal := range []string{"unfired", "empty", "unknown"} {
		if err := e.Item(np{"mold", "ingot", metal}, "tfc:items/mold/ingot/"+metal); err != nil {
			return err
		}
	}
	for _, steel := range reg.Steels {
		for _, kind := range []string{"high_carbon", "weak"} {
			if err := e.Item(np{"mold", "ingot", kind + "_" + steel}, "tfc:items/mold/ingot/"+steel); err != nil {
				return err
			}
		}
	}

	for _, pottery := range []string{"vessel", "spindle", "pot", "bowl", "fire_brick", "jug"} {
		for _, state := range []string{"unfired", "fired"} {
			if err := e.Item(np{"ceramics", state, pottery}, fmt.Sprintf("tfc:items/ceramics/%s/%s", state, pottery)); err != nil {
				return err
			}
		}
	}

	// Glazed vessels carry the overlay as a second layer; the unfired one
	// still shows the fired overlay sprite.
	err := e.Item(np{"ceramics", "unfired", "vessel_glazed"},
		"tfc:items/ceramics/unfired/vessel",
		"tfc:items/ceramics/fired/vessel_overlay")
	if err != nil {
		return err
	}
	err = e.Item(np{"ceramics", "fired", "vessel_glazed"},
		"tfc:items/ceramics/fired/vessel",
		"tfc:items/ceramics/fired/vessel_overlay")
	if err != nil {
		return err
	}

	return e.Item(np{"ceramics", "fire_clay"}, "tfc:items/ceramics/fire_clay")
}

// flatItems emits the flat placed-item sprites per rock plus the special
// leather, clay and fire clay sprites.
func (r *Runner) flatItems() error {
	for _, rock := range r.Registry.Rocks {
		if err := r.Emitter.Item(np{"flat", rock}, "tfc:items/flat/"+rock); err != nil {
			return err
		}
	}
	for _, special := range []string{"leather", "clay", "fire_clay"} {
		if err := r.Emitter.Item(np{"flat", special}, "tfc:items/flat/"+special); err != nil {
			return err
		}
	}
	return nil
}

// itemParent picks the parent model for an item shape: handheld for tool
// shapes, mirrored handheld for knives and javelins, flat icon otherwise.
func itemParent(tools []string, name string) string {
	switch {
	case name == "knife" || name == "javelin":
		return parentHandheldFlipped
	case slices.Contains(tools, name):
		return parentHandheld
	default:
		return descriptor.ParentGenerated
	}
}
