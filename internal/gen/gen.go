// Package gen drives a generation run: snapshot the previous assets tree,
// then emit every blockstate and item model descriptor for the content
// set. The run is a single synchronous pass; the first error aborts it.
package gen

import (
	"fmt"
	"io"
	"time"

	"github.com/tfcraft/assetgen/internal/archive"
	"github.com/tfcraft/assetgen/internal/emit"
	"github.com/tfcraft/assetgen/internal/registry"
)

// Runner owns one generation run.
type Runner struct {
	Emitter  *emit.Emitter
	Archiver *archive.Archiver
	Registry *registry.Registry

	// Log receives progress lines. Use io.Discard to silence them.
	Log io.Writer
}

type step struct {
	name string
	fn   func(*Runner) error
}

// Emission order across steps carries no meaning; generated files are
// independent of each other. The grouping exists for timing logs.
var steps = []step{
	{"fluids", (*Runner).fluids},
	{"fullblocks", (*Runner).fullblocks},
	{"ores", (*Runner).ores},
	{"grass", (*Runner).grass},
	{"walls", (*Runner).walls},
	{"rock_stairs_slabs", (*Runner).rockStairsSlabs},
	{"stone_buttons", (*Runner).stoneButtons},
	{"wood_blocks", (*Runner).woodBlocks},
	{"item_models", (*Runner).itemModels},
}

// Run archives the previous assets tree, then regenerates everything
// under it.
func (r *Runner) Run() error {
	name, err := r.Archiver.Snapshot(r.Emitter.Root())
	if err != nil {
		return err
	}
	fmt.Fprintf(r.Log, "assetgen: backed up %s to %s\n", r.Emitter.Root(), name)

	for _, s := range steps {
		start := time.Now()
		if err := s.fn(r); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		fmt.Fprintf(r.Log, "  %s: done (%s)\n", s.name, time.Since(start).Round(time.Millisecond))
	}

	fmt.Fprintf(r.Log, "assetgen: wrote %d files\n", r.Emitter.Count())
	return nil
}
