// Package permute applies the keyed row-swap chain to a pixel grid.
//
// Both directions derive the same working key: the user key shifted into
// the box's row range and extended to cover its row span. Term k of the
// working key is the swap partner for absolute row minRow+k. Scrambling
// walks k upward; unscrambling replays the identical pairs downward.
// Because partners may repeat, the chain is not a permutation with a
// closed-form inverse: each swap is only undone when replayed against
// the exact accumulated state that produced it, so reverse replay with
// the same key and box is the only correct undo.
//
// The engine keeps no memory between calls. Unscrambling with a key or
// box that differs from the scrambling pair silently yields a wrong,
// generally non-restorable grid; it cannot be detected here and remains
// a caller responsibility.
package permute

import (
	"github.com/pixelveil/pixelveil/internal/key"
	"github.com/pixelveil/pixelveil/internal/pixgrid"
	"github.com/pixelveil/pixelveil/internal/region"
)

// Shuffler scrambles and unscrambles a grid region in place. The caller
// picks the implementation explicitly; there is no implicit default.
type Shuffler interface {
	Scramble(g *pixgrid.Grid, box region.Box, k key.Vector) error
	Unscramble(g *pixgrid.Grid, box region.Box, k key.Vector) error
}

// Derive builds the working key for a box: the user key shifted into
// [box.MinRow, box.MaxRow] and extended to the box's row span. It is
// deterministic, so scramble and unscramble land on the same sequence.
func Derive(box region.Box, k key.Vector) (key.Vector, error) {
	if err := box.Validate(); err != nil {
		return key.Vector{}, err
	}
	shifted, err := k.ShiftToRange(box.MinRow, box.MaxRow)
	if err != nil {
		return key.Vector{}, err
	}
	return shifted.Extend(box.RowSpan()), nil
}

// KeyBased is the keyed row-permutation shuffler.
type KeyBased struct{}

// Scramble applies the swap chain in ascending order. All validation
// happens before the first swap; a failed call leaves the grid untouched.
func (KeyBased) Scramble(g *pixgrid.Grid, box region.Box, k key.Vector) error {
	working, err := prepare(g, box, k)
	if err != nil {
		return err
	}
	for i := 0; i < box.RowSpan(); i++ {
		g.SwapRows(box.MinRow+i, working.At(i), box.MinCol, box.MaxCol)
	}
	return nil
}

// Unscramble replays the identical swap chain in descending order,
// restoring every intermediate state the forward pass went through.
func (KeyBased) Unscramble(g *pixgrid.Grid, box region.Box, k key.Vector) error {
	working, err := prepare(g, box, k)
	if err != nil {
		return err
	}
	for i := box.RowSpan() - 1; i >= 0; i-- {
		g.SwapRows(box.MinRow+i, working.At(i), box.MinCol, box.MaxCol)
	}
	return nil
}

func prepare(g *pixgrid.Grid, box region.Box, k key.Vector) (key.Vector, error) {
	if err := box.CheckWithin(g.Rows(), g.Cols()); err != nil {
		return key.Vector{}, err
	}
	return Derive(box, k)
}

// NoOp leaves the grid unchanged in both directions.
type NoOp struct{}

func (NoOp) Scramble(*pixgrid.Grid, region.Box, key.Vector) error   { return nil }
func (NoOp) Unscramble(*pixgrid.Grid, region.Box, key.Vector) error { return nil }
