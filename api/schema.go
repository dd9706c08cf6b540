// Package api describes the on-disk formats the generator emits.
//
// The generator itself assembles insertion-ordered maps rather than these
// structs — key order and the null-pruning rules are easier to honor that
// way. These types are the stable, documentable shape of the output, and
// the schema command reflects them into JSON Schema for downstream
// tooling that consumes the generated tree.
package api

// BlockstateDoc is the shape of every blockstates/<path>.json file.
type BlockstateDoc struct {
	Comment     string             `json:"__comment" jsonschema:"required,description=Provenance marker identifying the file as machine-generated"`
	ForgeMarker int                `json:"forge_marker" jsonschema:"required"`
	Defaults    BlockstateDefaults `json:"defaults" jsonschema:"required"`
	Variants    map[string]any     `json:"variants" jsonschema:"required,description=State key (or 'normal') mapped to a rendering override object or a one-element override array"`
}

// BlockstateDefaults carries the model reference and texture slots shared
// by every variant of the block. An absent key means "inherit".
type BlockstateDefaults struct {
	Model    string            `json:"model,omitempty"`
	Textures map[string]string `json:"textures,omitempty"`
}

// ModelDoc is the shape of every models/<path>.json file, item icons
// included. Textures is absent for models that only reference a parent.
type ModelDoc struct {
	Comment  string            `json:"__comment" jsonschema:"required,description=Provenance marker identifying the file as machine-generated"`
	Parent   string            `json:"parent" jsonschema:"required"`
	Textures map[string]string `json:"textures,omitempty"`
}
