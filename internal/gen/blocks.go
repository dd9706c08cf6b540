package gen

import (
	"fmt"

	"github.com/tfcraft/assetgen/internal/descriptor"
)

// fluids emits one forge fluid blockstate per registered fluid block.
// Finite variants point at the same fluid as their infinite counterpart.
func (r *Runner) fluids() error {
	for _, f := range r.Registry.Fluids {
		err := r.Emitter.Blockstate(np{"fluid", f.Name}, "forge:fluid", descriptor.TextureMap{}, descriptor.Variants{
			v("normal", obj(
				"transform", "forge:default-item",
				"custom", obj("fluid", f.Fluid),
			)),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// fullblocks emits the plain six-sided rock blocks (raw, smooth, cobble,
// bricks, sand, gravel, dirt, clay).
func (r *Runner) fullblocks() error {
	for _, rock := range r.Registry.Rocks {
		for _, block := range r.Registry.Fullblocks {
			texture := fmt.Sprintf("tfc:blocks/stonetypes/%s/%s", block, rock)
			if err := r.Emitter.CubeAll(np{block, rock}, texture, nil, ""); err != nil {
				return err
			}
		}
	}
	return nil
}

// ores emits one blockstate per ore per host rock: the raw rock on all
// faces with the ore texture overlaid.
func (r *Runner) ores() error {
	for _, rock := range r.Registry.Rocks {
		for _, ore := range r.Registry.Ores {
			err := r.Emitter.Blockstate(np{"ore", ore.Name, rock}, "tfc:ore", descriptor.TextureMap{
				descriptor.TexAll([]string{"all", "particle"}, "tfc:blocks/stonetypes/raw/"+rock),
				descriptor.Tex("overlay", "tfc:blocks/ores/"+ore.Name),
			}, nil)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// grass emits the grass and dry-grass covered dirt blocks, plus the
// grass-covered clay block, each with per-side overlay variants.
func (r *Runner) grass() error {
	for _, rock := range r.Registry.Rocks {
		dirt := "tfc:blocks/stonetypes/dirt/" + rock
		for _, grass := range r.Registry.GrassTypes {
			top := fmt.Sprintf("tfc:blocks/%s_top", grass)
			err := r.Emitter.Blockstate(np{grass, rock}, "tfc:grass", descriptor.TextureMap{
				descriptor.TexAll([]string{"all", "particle"}, dirt),
				descriptor.Tex("particle", dirt),
				descriptor.Tex("top", top),
				descriptor.TexAll(sides, fmt.Sprintf("tfc:blocks/%s_side", grass)),
			}, sideOverlayVariants(top))
			if err != nil {
				return err
			}
		}

		err := r.Emitter.Blockstate(np{"clay_grass", rock}, "tfc:grass", descriptor.TextureMap{
			descriptor.TexAll([]string{"all", "particle"}, "tfc:blocks/stonetypes/clay/"+rock),
			descriptor.Tex("top", "tfc:blocks/grass_top"),
			descriptor.TexAll(sides, "tfc:blocks/grass_side"),
		}, sideOverlayVariants("tfc:blocks/grass_top"))
		if err != nil {
			return err
		}
	}
	return nil
}

// walls emits the wall blocks for the wall-capable rock finishes.
func (r *Runner) walls() error {
	for _, rock := range r.Registry.Rocks {
		for _, block := range r.Registry.WallBlocks {
			texture := fmt.Sprintf("tfc:blocks/stonetypes/%s/%s", block, rock)
			err := r.Emitter.Blockstate(np{"wall", block, rock}, "tfc:empty", descriptor.TextureMap{
				descriptor.TexAll([]string{"wall", "particle"}, texture),
			}, wallVariants)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// rockStairsSlabs emits stairs, half slabs and full slabs for the
// stair-capable rock finishes.
func (r *Runner) rockStairsSlabs() error {
	for _, rock := range r.Registry.Rocks {
		for _, block := range r.Registry.StairBlocks {
			texture := fmt.Sprintf("tfc:blocks/stonetypes/%s/%s", block, rock)
			if err := r.Emitter.Blockstate(np{"stairs", block, rock}, nil, topBottomSide(texture), stairVariants); err != nil {
				return err
			}
			if err := r.Emitter.Blockstate(np{"slab", "half", block, rock}, "half_slab", topBottomSide(texture), slabVariants); err != nil {
				return err
			}
			if err := r.Emitter.CubeAll(np{"slab", "full", block, rock}, texture, nil, ""); err != nil {
				return err
			}
		}
	}
	return nil
}

// stoneButtons emits one rotatable button per rock, textured as raw stone.
func (r *Runner) stoneButtons() error {
	for _, rock := range r.Registry.Rocks {
		err := r.Emitter.Blockstate(np{"stone", "button", rock}, "button", descriptor.TextureMap{
			descriptor.TexAll([]string{"texture", "particle"}, "tfc:blocks/stonetypes/raw/"+rock),
		}, buttonVariants)
		if err != nil {
			return err
		}
	}
	return nil
}

// woodBlocks emits every per-wood block family: logs, planks, leaves,
// fences, fence gates, saplings, doors, stairs, slabs, trapdoors, chests,
// buttons, bookshelves and workbenches.
func (r *Runner) woodBlocks() error {
	e := r.Emitter
	for _, wood := range r.Registry.Woods {
		planks := "tfc:blocks/wood/planks/" + wood

		err := e.Blockstate(np{"wood", "log", wood}, "cube_column", descriptor.TextureMap{
			descriptor.TexAll([]string{"particle", "side"}, "tfc:blocks/wood/log/"+wood),
			descriptor.Tex("end", "tfc:blocks/wood/top/"+wood),
			descriptor.Tex("layer0", "tfc:items/wood/log/"+wood),
		}, logVariants(wood))
		if err != nil {
			return err
		}

		if err := e.CubeAll(np{"wood", "planks", wood}, planks, nil, ""); err != nil {
			return err
		}
		if err := e.CubeAll(np{"wood", "leaves", wood}, "tfc:blocks/wood/leaves/"+wood, nil, "leaves"); err != nil {
			return err
		}

		err = e.Blockstate(np{"wood", "fence", wood}, "fence_post", descriptor.TextureMap{
			descriptor.Tex("texture", planks),
		}, fenceVariants)
		if err != nil {
			return err
		}

		err = e.Blockstate(np{"wood", "fence_gate", wood}, "fence_gate_closed", descriptor.TextureMap{
			descriptor.Tex("texture", planks),
		}, fenceGateVariants)
		if err != nil {
			return err
		}

		err = e.Blockstate(np{"wood", "sapling", wood}, "cross", descriptor.TextureMap{
			descriptor.TexAll([]string{"cross", "layer0"}, "tfc:blocks/saplings/"+wood),
		}, saplingVariants)
		if err != nil {
			return err
		}

		err = e.Blockstate(np{"wood", "door", wood}, nil, descriptor.TextureMap{
			descriptor.Tex("bottom", "tfc:blocks/wood/door/lower/"+wood),
			descriptor.Tex("top", "tfc:blocks/wood/door/upper/"+wood),
		}, doorVariants)
		if err != nil {
			return err
		}

		if err := e.Blockstate(np{"stairs", "wood", wood}, nil, topBottomSide(planks), stairVariants); err != nil {
			return err
		}
		if err := e.Blockstate(np{"slab", "half", "wood", wood}, "half_slab", topBottomSide(planks), slabVariants); err != nil {
			return err
		}
		if err := e.CubeAll(np{"slab", "full", "wood", wood}, planks, nil, ""); err != nil {
			return err
		}

		err = e.Blockstate(np{"wood", "trapdoor", wood}, nil, descriptor.TextureMap{
			descriptor.Tex("texture", "tfc:blocks/wood/trapdoor/"+wood),
		}, trapdoorVariants)
		if err != nil {
			return err
		}

		for _, chest := range []string{"chest", "chest_trap"} {
			err = e.Blockstate(np{"wood", chest, wood}, "tfc:chest", descriptor.TextureMap{
				descriptor.Tex("texture", fmt.Sprintf("tfc:model/wood/%s/%s", chest, wood)),
				descriptor.Tex("particle", planks),
			}, nil)
			if err != nil {
				return err
			}
		}

		err = e.Blockstate(np{"wood", "button", wood}, "button", descriptor.TextureMap{
			descriptor.TexAll([]string{"texture", "particle"}, planks),
		}, buttonVariants)
		if err != nil {
			return err
		}

		err = e.Blockstate(np{"wood", "bookshelf", wood}, "tfc:bookshelf", descriptor.TextureMap{
			descriptor.TexAll([]string{"all", "particle"}, planks),
			descriptor.TexAll(sides, "tfc:blocks/wood/bookshelf"),
		}, nil)
		if err != nil {
			return err
		}

		err = e.Blockstate(np{"wood", "workbench", wood}, "tfc:workbench", descriptor.TextureMap{
			descriptor.TexAll([]string{"all", "particle"}, planks),
			descriptor.Tex("top", "tfc:blocks/wood/workbench_top"),
			descriptor.TexAll([]string{"north", "south"}, "tfc:blocks/wood/workbench_front"),
			descriptor.TexAll([]string{"east", "west"}, "tfc:blocks/wood/workbench_side"),
		}, nil)
		if err != nil {
			return err
		}
	}
	return nil
}
