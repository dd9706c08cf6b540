// Package emit writes descriptors into the assets tree.
package emit

import (
	"fmt"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/iancoleman/orderedmap"

	"github.com/tfcraft/assetgen/internal/descriptor"
)

// Emitter writes blockstate and model descriptors under a single assets
// root. It remembers every path written during the run and refuses to
// write the same path twice, so a careless new category cannot silently
// overwrite another category's output.
type Emitter struct {
	fs   billy.Filesystem
	root string
	seen map[string]bool
}

// New returns an Emitter writing under root on fs.
func New(fs billy.Filesystem, root string) *Emitter {
	return &Emitter{fs: fs, root: root, seen: make(map[string]bool)}
}

// Root is the assets root the emitter writes under.
func (e *Emitter) Root() string { return e.root }

// Count is the number of files written so far this run.
func (e *Emitter) Count() int { return len(e.seen) }

// Blockstate writes a blockstate descriptor at
// <root>/blockstates/<parts...>.json.
func (e *Emitter) Blockstate(parts descriptor.NamingPath, model any, textures descriptor.TextureMap, variants descriptor.Variants) error {
	d := descriptor.Blockstate(model, textures, variants)
	return e.write(append([]string{"blockstates"}, parts...), d)
}

// CubeAll writes a blockstate for a block whose six faces share a single
// texture. An empty model means the stock "cube_all" model.
func (e *Emitter) CubeAll(parts descriptor.NamingPath, texture string, variants descriptor.Variants, model string) error {
	if model == "" {
		model = "cube_all"
	}
	textures := descriptor.TextureMap{descriptor.Tex("all", texture)}
	return e.Blockstate(parts, model, textures, variants)
}

// Model writes a model descriptor at <root>/models/<parts...>.json.
func (e *Emitter) Model(parts descriptor.NamingPath, parent string, textures *orderedmap.OrderedMap) error {
	d := descriptor.Model(parent, textures)
	return e.write(append([]string{"models"}, parts...), d)
}

// Item writes a flat item icon under models/item/ with one texture entry
// per layer, keyed layer0..layerN-1. No layers means no textures key.
func (e *Emitter) Item(parts descriptor.NamingPath, layers ...string) error {
	return e.ItemWithParent(descriptor.ParentGenerated, parts, layers...)
}

// ItemWithParent is Item with an explicit parent model.
func (e *Emitter) ItemWithParent(parent string, parts descriptor.NamingPath, layers ...string) error {
	return e.Model(append(descriptor.NamingPath{"item"}, parts...), parent, descriptor.ItemTextures(layers...))
}

func (e *Emitter) write(parts []string, d *orderedmap.OrderedMap) error {
	p := e.fs.Join(append([]string{e.root}, parts...)...) + ".json"
	if e.seen[p] {
		return fmt.Errorf("emit: duplicate output path %s", p)
	}
	e.seen[p] = true

	data, err := descriptor.Marshal(d)
	if err != nil {
		return fmt.Errorf("emit: marshal %s: %w", p, err)
	}
	if err := e.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("emit: creating directory for %s: %w", p, err)
	}
	if err := util.WriteFile(e.fs, p, data, 0o644); err != nil {
		return fmt.Errorf("emit: writing %s: %w", p, err)
	}
	return nil
}
