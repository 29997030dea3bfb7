// Package region derives and validates the rectangular pixel area the
// permutation operates within.
package region

import (
	"errors"
	"fmt"

	"github.com/pixelveil/pixelveil/internal/landmarks"
)

// ErrUndefined reports that no region could be derived because the
// landmark set was empty. "No face found" is a distinct outcome from
// malformed input and must never degrade to a defaulted box.
var ErrUndefined = errors.New("region undefined: no landmarks")

// ErrBounds reports a box whose axes are inverted or that falls outside
// the pixel grid it is applied to.
var ErrBounds = errors.New("region out of bounds")

// Box is an axis-aligned region with inclusive bounds into a pixel grid.
type Box struct {
	MinRow int `json:"min_row"`
	MaxRow int `json:"max_row"`
	MinCol int `json:"min_col"`
	MaxCol int `json:"max_col"`
}

// FromLandmarks computes the bounding box of a landmark set: rows from
// the y extrema, columns from the x extrema. An empty set yields
// ErrUndefined.
func FromLandmarks(set landmarks.Set) (Box, error) {
	if len(set) == 0 {
		return Box{}, ErrUndefined
	}
	var b Box
	first := true
	for _, pt := range set {
		if first {
			b = Box{MinRow: pt.Y, MaxRow: pt.Y, MinCol: pt.X, MaxCol: pt.X}
			first = false
			continue
		}
		if pt.Y < b.MinRow {
			b.MinRow = pt.Y
		}
		if pt.Y > b.MaxRow {
			b.MaxRow = pt.Y
		}
		if pt.X < b.MinCol {
			b.MinCol = pt.X
		}
		if pt.X > b.MaxCol {
			b.MaxCol = pt.X
		}
	}
	return b, nil
}

// Validate checks the axis ordering invariants.
func (b Box) Validate() error {
	if b.MinRow > b.MaxRow {
		return fmt.Errorf("%w: rows [%d, %d] inverted", ErrBounds, b.MinRow, b.MaxRow)
	}
	if b.MinCol > b.MaxCol {
		return fmt.Errorf("%w: columns [%d, %d] inverted", ErrBounds, b.MinCol, b.MaxCol)
	}
	return nil
}

// CheckWithin validates the box and confirms it fits a grid of the given
// dimensions.
func (b Box) CheckWithin(rows, cols int) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.MinRow < 0 || b.MinCol < 0 || b.MaxRow >= rows || b.MaxCol >= cols {
		return fmt.Errorf("%w: box rows [%d, %d] cols [%d, %d] exceeds %dx%d grid",
			ErrBounds, b.MinRow, b.MaxRow, b.MinCol, b.MaxCol, rows, cols)
	}
	return nil
}

// RowSpan is the inclusive number of rows the box covers.
func (b Box) RowSpan() int { return b.MaxRow - b.MinRow + 1 }

// ColSpan is the inclusive number of columns the box covers.
func (b Box) ColSpan() int { return b.MaxCol - b.MinCol + 1 }

// String renders the box for diagnostics and reports.
func (b Box) String() string {
	return fmt.Sprintf("rows [%d, %d] cols [%d, %d]", b.MinRow, b.MaxRow, b.MinCol, b.MaxCol)
}
