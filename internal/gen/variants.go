package gen

import (
	"github.com/tfcraft/assetgen/internal/descriptor"
)

// Shorthands for the literal tables below.
type np = descriptor.NamingPath

var obj = descriptor.Obj

func v(key string, value any) descriptor.VariantEntry {
	return descriptor.VariantEntry{Key: key, Value: value}
}

var sides = []string{"north", "south", "east", "west"}

// Hand-authored variant tables for multi-state blocks. Every model name
// and rotation below is literal reference data; none of it is derived.
// Do not "simplify" the rotation values.

var doorVariants = descriptor.Variants{
	v("normal", nil),
	v("facing=east,half=lower,hinge=left,open=false", obj("model", "door_bottom")),
	v("facing=south,half=lower,hinge=left,open=false", obj("model", "door_bottom", "y", 90)),
	v("facing=west,half=lower,hinge=left,open=false", obj("model", "door_bottom", "y", 180)),
	v("facing=north,half=lower,hinge=left,open=false", obj("model", "door_bottom", "y", 270)),
	v("facing=east,half=lower,hinge=right,open=false", obj("model", "door_bottom_rh")),
	v("facing=south,half=lower,hinge=right,open=false", obj("model", "door_bottom_rh", "y", 90)),
	v("facing=west,half=lower,hinge=right,open=false", obj("model", "door_bottom_rh", "y", 180)),
	v("facing=north,half=lower,hinge=right,open=false", obj("model", "door_bottom_rh", "y", 270)),
	v("facing=east,half=lower,hinge=left,open=true", obj("model", "door_bottom_rh", "y", 90)),
	v("facing=south,half=lower,hinge=left,open=true", obj("model", "door_bottom_rh", "y", 180)),
	v("facing=west,half=lower,hinge=left,open=true", obj("model", "door_bottom_rh", "y", 270)),
	v("facing=north,half=lower,hinge=left,open=true", obj("model", "door_bottom_rh")),
	v("facing=east,half=lower,hinge=right,open=true", obj("model", "door_bottom", "y", 270)),
	v("facing=south,half=lower,hinge=right,open=true", obj("model", "door_bottom")),
	v("facing=west,half=lower,hinge=right,open=true", obj("model", "door_bottom", "y", 90)),
	v("facing=north,half=lower,hinge=right,open=true", obj("model", "door_bottom", "y", 180)),
	v("facing=east,half=upper,hinge=left,open=false", obj("model", "door_top")),
	v("facing=south,half=upper,hinge=left,open=false", obj("model", "door_top", "y", 90)),
	v("facing=west,half=upper,hinge=left,open=false", obj("model", "door_top", "y", 180)),
	v("facing=north,half=upper,hinge=left,open=false", obj("model", "door_top", "y", 270)),
	v("facing=east,half=upper,hinge=right,open=false", obj("model", "door_top_rh")),
	v("facing=south,half=upper,hinge=right,open=false", obj("model", "door_top_rh", "y", 90)),
	v("facing=west,half=upper,hinge=right,open=false", obj("model", "door_top_rh", "y", 180)),
	v("facing=north,half=upper,hinge=right,open=false", obj("model", "door_top_rh", "y", 270)),
	v("facing=east,half=upper,hinge=left,open=true", obj("model", "door_top_rh", "y", 90)),
	v("facing=south,half=upper,hinge=left,open=true", obj("model", "door_top_rh", "y", 180)),
	v("facing=west,half=upper,hinge=left,open=true", obj("model", "door_top_rh", "y", 270)),
	v("facing=north,half=upper,hinge=left,open=true", obj("model", "door_top_rh")),
	v("facing=east,half=upper,hinge=right,open=true", obj("model", "door_top", "y", 270)),
	v("facing=south,half=upper,hinge=right,open=true", obj("model", "door_top")),
	v("facing=west,half=upper,hinge=right,open=true", obj("model", "door_top", "y", 90)),
	v("facing=north,half=upper,hinge=right,open=true", obj("model", "door_top", "y", 180)),
}

var trapdoorVariants = descriptor.Variants{
	v("normal", nil),
	v("facing=north,half=bottom,open=false", obj("model", "trapdoor_bottom")),
	v("facing=south,half=bottom,open=false", obj("model", "trapdoor_bottom")),
	v("facing=east,half=bottom,open=false", obj("model", "trapdoor_bottom")),
	v("facing=west,half=bottom,open=false", obj("model", "trapdoor_bottom")),
	v("facing=north,half=top,open=false", obj("model", "trapdoor_top")),
	v("facing=south,half=top,open=false", obj("model", "trapdoor_top")),
	v("facing=east,half=top,open=false", obj("model", "trapdoor_top")),
	v("facing=west,half=top,open=false", obj("model", "trapdoor_top")),
	v("facing=north,half=bottom,open=true", obj("model", "trapdoor_open")),
	v("facing=south,half=bottom,open=true", obj("model", "trapdoor_open", "y", 180)),
	v("facing=east,half=bottom,open=true", obj("model", "trapdoor_open", "y", 90)),
	v("facing=west,half=bottom,open=true", obj("model", "trapdoor_open", "y", 270)),
	v("facing=north,half=top,open=true", obj("model", "trapdoor_open")),
	v("facing=south,half=top,open=true", obj("model", "trapdoor_open", "y", 180)),
	v("facing=east,half=top,open=true", obj("model", "trapdoor_open", "y", 90)),
	v("facing=west,half=top,open=true", obj("model", "trapdoor_open", "y", 270)),
}

var stairVariants = descriptor.Variants{
	v("normal", obj("model", "stairs")),
	v("facing=east,half=bottom,shape=straight", obj("model", "stairs")),
	v("facing=west,half=bottom,shape=straight", obj("model", "stairs", "y", 180)),
	v("facing=south,half=bottom,shape=straight", obj("model", "stairs", "y", 90)),
	v("facing=north,half=bottom,shape=straight", obj("model", "stairs", "y", 270)),
	v("facing=east,half=bottom,shape=outer_right", obj("model", "outer_stairs")),
	v("facing=west,half=bottom,shape=outer_right", obj("model", "outer_stairs", "y", 180)),
	v("facing=south,half=bottom,shape=outer_right", obj("model", "outer_stairs", "y", 90)),
	v("facing=north,half=bottom,shape=outer_right", obj("model", "outer_stairs", "y", 270)),
	v("facing=east,half=bottom,shape=outer_left", obj("model", "outer_stairs", "y", 270)),
	v("facing=west,half=bottom,shape=outer_left", obj("model", "outer_stairs", "y", 90)),
	v("facing=south,half=bottom,shape=outer_left", obj("model", "outer_stairs")),
	v("facing=north,half=bottom,shape=outer_left", obj("model", "outer_stairs", "y", 180)),
	v("facing=east,half=bottom,shape=inner_right", obj("model", "inner_stairs")),
	v("facing=west,half=bottom,shape=inner_right", obj("model", "inner_stairs", "y", 180)),
	v("facing=south,half=bottom,shape=inner_right", obj("model", "inner_stairs", "y", 90)),
	v("facing=north,half=bottom,shape=inner_right", obj("model", "inner_stairs", "y", 270)),
	v("facing=east,half=bottom,shape=inner_left", obj("model", "inner_stairs", "y", 270)),
	v("facing=west,half=bottom,shape=inner_left", obj("model", "inner_stairs", "y", 90)),
	v("facing=south,half=bottom,shape=inner_left", obj("model", "inner_stairs")),
	v("facing=north,half=bottom,shape=inner_left", obj("model", "inner_stairs", "y", 180)),
	v("facing=east,half=top,shape=straight", obj("model", "stairs", "x", 180)),
	v("facing=west,half=top,shape=straight", obj("model", "stairs", "x", 180, "y", 180)),
	v("facing=south,half=top,shape=straight", obj("model", "stairs", "x", 180, "y", 90)),
	v("facing=north,half=top,shape=straight", obj("model", "stairs", "x", 180, "y", 270)),
	v("facing=east,half=top,shape=outer_right", obj("model", "outer_stairs", "x", 180, "y", 90)),
	v("facing=west,half=top,shape=outer_right", obj("model", "outer_stairs", "x", 180, "y", 270)),
	v("facing=south,half=top,shape=outer_right", obj("model", "outer_stairs", "x", 180, "y", 180)),
	v("facing=north,half=top,shape=outer_right", obj("model", "outer_stairs", "x", 180)),
	v("facing=east,half=top,shape=outer_left", obj("model", "outer_stairs", "x", 180)),
	v("facing=west,half=top,shape=outer_left", obj("model", "outer_stairs", "x", 180, "y", 180)),
	v("facing=south,half=top,shape=outer_left", obj("model", "outer_stairs", "x", 180, "y", 90)),
	v("facing=north,half=top,shape=outer_left", obj("model", "outer_stairs", "x", 180, "y", 270)),
	v("facing=east,half=top,shape=inner_right", obj("model", "inner_stairs", "x", 180, "y", 90)),
	v("facing=west,half=top,shape=inner_right", obj("model", "inner_stairs", "x", 180, "y", 270)),
	v("facing=south,half=top,shape=inner_right", obj("model", "inner_stairs", "x", 180, "y", 180)),
	v("facing=north,half=top,shape=inner_right", obj("model", "inner_stairs", "x", 180)),
	v("facing=east,half=top,shape=inner_left", obj("model", "inner_stairs", "x", 180)),
	v("facing=west,half=top,shape=inner_left", obj("model", "inner_stairs", "x", 180, "y", 180)),
	v("facing=south,half=top,shape=inner_left", obj("model", "inner_stairs", "x", 180, "y", 90)),
	v("facing=north,half=top,shape=inner_left", obj("model", "inner_stairs", "x", 180, "y", 270)),
}

// Inline-constructed tables shared by several categories.

var wallVariants = descriptor.Variants{
	v("normal", nil),
	v("inventory", obj("model", "wall_inventory")),
	v("north", obj("true", obj("submodel", "wall_side"), "false", obj())),
	v("east", obj("true", obj("submodel", "wall_side", "y", 90), "false", obj())),
	v("south", obj("true", obj("submodel", "wall_side", "y", 180), "false", obj())),
	v("west", obj("true", obj("submodel", "wall_side", "y", 270), "false", obj())),
	v("up", obj("true", obj("submodel", "wall_post", "y", 270), "false", obj())),
}

var fenceVariants = descriptor.Variants{
	v("inventory", obj("model", "fence_inventory")),
	v("north", obj("true", obj("submodel", "fence_side"), "false", obj())),
	v("east", obj("true", obj("submodel", "fence_side", "y", 90), "false", obj())),
	v("south", obj("true", obj("submodel", "fence_side", "y", 180), "false", obj())),
	v("west", obj("true", obj("submodel", "fence_side", "y", 270), "false", obj())),
}

var fenceGateVariants = descriptor.Variants{
	v("inventory", []any{obj()}),
	v("facing", obj(
		"south", obj(),
		"west", obj("y", 90),
		"north", obj("y", 180),
		"east", obj("y", 270),
	)),
	v("open", obj("true", obj("model", "fence_gate_open"), "false", obj())),
	v("in_wall", obj("true", obj("transform", obj("translation", []any{0, -0.1875, 0})), "false", obj())),
}

var saplingVariants = descriptor.Variants{
	v("inventory", obj(
		"model", "builtin/generated",
		"transform", "forge:default-item",
	)),
}

var slabVariants = descriptor.Variants{
	v("half", obj(
		"bottom", obj(),
		"top", obj("model", "upper_slab"),
	)),
}

var buttonVariants = descriptor.Variants{
	v("powered", obj(
		"false", obj(),
		"true", obj("model", "button_pressed"),
	)),
	v("facing", obj(
		"up", obj(),
		"down", obj("x", 180),
		"east", obj("x", 90, "y", 90),
		"west", obj("x", 90, "y", 270),
		"south", obj("x", 90, "y", 180),
		"north", obj("x", 90),
	)),
	v("inventory", []any{obj("model", "button_inventory")}),
}

// sideOverlayVariants overlays the grass top texture on each connected
// side of a grass-covered block.
func sideOverlayVariants(top string) descriptor.Variants {
	out := make(descriptor.Variants, 0, len(sides))
	for _, side := range sides {
		out = append(out, v(side, obj(
			"true", obj("textures", obj(side, top)),
			"false", obj(),
		)))
	}
	return out
}

// logVariants renders a log by axis, with an extra small-log model state.
func logVariants(wood string) descriptor.Variants {
	return descriptor.Variants{
		v("axis", obj(
			"y", obj(),
			"z", obj("x", 90),
			"x", obj("x", 90, "y", 90),
			"none", obj("textures", obj("end", "tfc:blocks/wood/log/"+wood)),
		)),
		v("small", obj(
			"true", obj("model", "tfc:small_log"),
			"false", obj(),
		)),
	}
}

// topBottomSide assigns one texture to the top, bottom and side slots.
func topBottomSide(texture string) descriptor.TextureMap {
	return descriptor.TextureMap{
		descriptor.TexAll([]string{"top", "bottom", "side"}, texture),
	}
}
