package domain

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/emoryluqian/LumosX-Generator/internal/adapter"
	"github.com/emoryluqian/LumosX-Generator/internal/controller"
	m "github.com/emoryluqian/LumosX-Generator/internal/model"
)

// EncodeArgs configures a batch encode run.
type EncodeArgs struct {
	Sequences []string
	Threads   int
	Bars      bool
}

// RegionsArgs configures region derivation from a saved layout.
type RegionsArgs struct {
	Layout m.Path
	Width  float64
	Height float64
}

// EditArgs configures an interactive grid session.
type EditArgs struct {
	Rows   int
	Cols   int
	Width  float64
	Height float64
	Layout m.Path
}

// Workflow defines the interface for marker generation operations.
type Workflow interface {
	Encode(args EncodeArgs) error
	Regions(args RegionsArgs) error
	EditGrid(args EditArgs) error
}

type workflow struct {
	layouts adapter.LayoutStore
	ui      controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided store and UI.
func NewWorkflow(layouts adapter.LayoutStore, ui controller.UI) Workflow {
	return &workflow{
		layouts: layouts,
		ui:      ui,
	}
}

// Encode encodes every sequence into its module string on a bounded worker
// pool and hands the results, in input order, to the UI. A failed sequence
// does not abort the batch; its error kind is reported alongside the rest.
func (w *workflow) Encode(args EncodeArgs) error {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	results := make([]m.EncodeResult, len(args.Sequences))

	var group errgroup.Group

	group.SetLimit(threads)

	for i, sequence := range args.Sequences {
		i, sequence := i, sequence
		group.Go(func() error {
			results[i] = encodeSequence(sequence)
			return nil
		})
	}

	// Workers record per-sequence failures in their result slot, so Wait
	// only surfaces an error if that contract is ever broken.
	if err := group.Wait(); err != nil {
		return err
	}

	if err := w.ui.DisplayEncodeResults(results, args.Bars); err != nil {
		return err
	}

	failed := 0

	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sequences failed to encode", failed, len(results))
	}

	return nil
}

func encodeSequence(sequence string) m.EncodeResult {
	result := m.EncodeResult{Sequence: sequence}

	modules, err := Encode(sequence)
	if err != nil {
		result.Err = err
		return result
	}

	// Encode already validated the sequence, so this cannot fail.
	result.Checksum, _ = Checksum(sequence[:12])
	result.Modules = modules

	return result
}

// Regions loads a saved layout, replays it onto a fresh grid and hands the
// derived regions to the UI.
func (w *workflow) Regions(args RegionsArgs) error {
	layout, err := w.layouts.Load(args.Layout)
	if err != nil {
		return err
	}

	grid := NewGrid(layout.Rows, layout.Cols)
	if err := ApplyLayout(grid, layout); err != nil {
		return fmt.Errorf("layout %s: %w", args.Layout, err)
	}

	return w.ui.DisplayRegions(string(args.Layout), grid.Regions(args.Width, args.Height))
}

// EditGrid runs an interactive grid session, optionally seeded from and
// saved back to a layout file.
func (w *workflow) EditGrid(args EditArgs) error {
	grid := NewGrid(args.Rows, args.Cols)

	if args.Layout != "" {
		if _, err := os.Stat(string(args.Layout)); err == nil {
			layout, err := w.layouts.Load(args.Layout)
			if err != nil {
				return err
			}

			if err := ApplyLayout(grid, layout); err != nil {
				return fmt.Errorf("layout %s: %w", args.Layout, err)
			}
		}
	}

	if err := w.ui.EditGrid(grid, args.Width, args.Height); err != nil {
		return err
	}

	if args.Layout != "" {
		return w.layouts.Save(args.Layout, grid.Layout())
	}

	return nil
}
