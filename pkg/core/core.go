package core

import (
	"image"

	"github.com/pixelveil/pixelveil/internal/key"
	"github.com/pixelveil/pixelveil/internal/landmarks"
	"github.com/pixelveil/pixelveil/internal/permute"
	"github.com/pixelveil/pixelveil/internal/pixgrid"
	"github.com/pixelveil/pixelveil/internal/region"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Box = region.Box
type Landmarks = landmarks.Set
type Point = landmarks.Point

// ErrUndefinedRegion is returned when a landmark set holds no points.
var ErrUndefinedRegion = region.ErrUndefined

// Scramble is the stable entrypoint for other programs. It copies img,
// permutes the rows of the landmark bounding box using keyValues, and
// returns the scrambled raster together with the box an unscramble of
// it will need.
func Scramble(img image.Image, set Landmarks, keyValues []int) (*image.NRGBA, Box, error) {
	box, err := region.FromLandmarks(set)
	if err != nil {
		return nil, Box{}, err
	}
	out, err := ScrambleRegion(img, box, keyValues)
	return out, box, err
}

// ScrambleRegion scrambles an explicit box instead of deriving one from
// landmarks.
func ScrambleRegion(img image.Image, box Box, keyValues []int) (*image.NRGBA, error) {
	return apply(img, box, keyValues, false)
}

// Unscramble reverses a scramble. The box and keyValues must be exactly
// those the scramble used; a mismatch is not detectable here and yields
// a differently-garbled image rather than an error.
func Unscramble(img image.Image, box Box, keyValues []int) (*image.NRGBA, error) {
	return apply(img, box, keyValues, true)
}

func apply(img image.Image, box Box, keyValues []int, reverse bool) (*image.NRGBA, error) {
	k, err := key.New(keyValues)
	if err != nil {
		return nil, err
	}
	grid := pixgrid.FromImage(img)
	var sh permute.KeyBased
	if reverse {
		err = sh.Unscramble(grid, box, k)
	} else {
		err = sh.Scramble(grid, box, k)
	}
	if err != nil {
		return nil, err
	}
	return grid.Image(), nil
}
