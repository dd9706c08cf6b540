// Package descriptor assembles the nested records that get serialized as
// blockstate and model JSON files.
//
// Descriptors are built as insertion-ordered maps so the emitted JSON keeps
// the order the driver wrote the keys in, run after run. A nil value is the
// null marker: it means "inherit from the parent model" and is stripped
// before serialization, because the consuming engine treats an explicit
// null very differently from an absent key.
package descriptor

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"
)

// Provenance values for the __comment field carried by every generated
// file, so generated output can be told apart from hand-authored files.
const (
	BlockstateComment = "Generated by assetgen function: blockstate"
	ModelComment      = "Generated by assetgen function: model"
)

// ForgeMarker is the format marker the engine expects on every blockstate.
const ForgeMarker = 1

// ParentGenerated is the stock flat-icon parent for item models.
const ParentGenerated = "item/generated"

// NamingPath is the ordered sequence of path segments naming one output
// artifact, relative to its category root.
type NamingPath []string

// Obj builds an insertion-ordered JSON object from alternating key/value
// pairs. Keys must be strings; a nil value is the null marker.
func Obj(kv ...any) *orderedmap.OrderedMap {
	if len(kv)%2 != 0 {
		panic("descriptor.Obj: odd number of arguments")
	}
	m := orderedmap.New()
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("descriptor.Obj: key %d is %T, want string", i/2, kv[i]))
		}
		m.Set(k, kv[i+1])
	}
	return m
}

// PruneNulls returns a copy of m with every null-marked key removed, at any
// depth. It recurses into nested objects only; array values are kept as-is.
func PruneNulls(m *orderedmap.OrderedMap) *orderedmap.OrderedMap {
	out := orderedmap.New()
	for _, k := range m.Keys() {
		val, _ := m.Get(k)
		switch v := val.(type) {
		case nil:
		case *orderedmap.OrderedMap:
			if v == nil {
				continue
			}
			out.Set(k, PruneNulls(v))
		default:
			out.Set(k, val)
		}
	}
	return out
}

// TextureEntry assigns one texture path to one or more texture slots.
type TextureEntry struct {
	Slots []string
	Value string
}

// Tex assigns value to a single slot.
func Tex(slot, value string) TextureEntry {
	return TextureEntry{Slots: []string{slot}, Value: value}
}

// TexAll assigns value to every named slot.
func TexAll(slots []string, value string) TextureEntry {
	return TextureEntry{Slots: slots, Value: value}
}

// TextureMap is an ordered texture assignment list. A nil map means "no
// textures at all"; an empty non-nil map serializes as an empty object.
type TextureMap []TextureEntry

// Expand flattens the map into individual slot-to-value entries. A later
// assignment to an already-seen slot overwrites its value but keeps the
// slot's original position.
func (tm TextureMap) Expand() *orderedmap.OrderedMap {
	if tm == nil {
		return nil
	}
	m := orderedmap.New()
	for _, e := range tm {
		for _, slot := range e.Slots {
			m.Set(slot, e.Value)
		}
	}
	return m
}

// VariantEntry is one blockstate variant: a state key (or "normal") mapped
// to the override that renders it. A nil Value is the null marker, which
// lets a table disable the default "normal" entry.
type VariantEntry struct {
	Key   string
	Value any
}

// Variants is an ordered variant table.
type Variants []VariantEntry

// Blockstate assembles a blockstate descriptor. model is a string
// reference or nil. The variants object starts as {"normal": {}} and the
// caller's table is merged over it entry by entry, so a table can override
// "normal", add state keys, or remove "normal" by mapping it to nil.
// The result is already null-pruned.
func Blockstate(model any, textures TextureMap, variants Variants) *orderedmap.OrderedMap {
	vs := orderedmap.New()
	vs.Set("normal", Obj())
	for _, e := range variants {
		vs.Set(e.Key, e.Value)
	}

	d := orderedmap.New()
	d.Set("__comment", BlockstateComment)
	d.Set("forge_marker", ForgeMarker)
	d.Set("defaults", Obj(
		"model", model,
		"textures", textures.Expand(),
	))
	d.Set("variants", vs)
	return PruneNulls(d)
}

// Model assembles a model descriptor. A nil textures map is pruned away so
// the textures key is absent from the output. The result is already
// null-pruned.
func Model(parent string, textures *orderedmap.OrderedMap) *orderedmap.OrderedMap {
	d := orderedmap.New()
	d.Set("__comment", ModelComment)
	d.Set("parent", parent)
	d.Set("textures", textures)
	return PruneNulls(d)
}

// ItemTextures builds the positional layer mapping for an item model,
// keyed layer0..layerN-1, or nil when there are no layers.
func ItemTextures(layers ...string) *orderedmap.OrderedMap {
	if len(layers) == 0 {
		return nil
	}
	m := orderedmap.New()
	for i, layer := range layers {
		m.Set(fmt.Sprintf("layer%d", i), layer)
	}
	return m
}

// Marshal renders a descriptor as two-space-indented JSON with a trailing
// newline.
func Marshal(d *orderedmap.OrderedMap) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
