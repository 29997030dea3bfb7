// Package pixgrid wraps an NRGBA raster as a mutable grid addressed by
// (row, col). The permutation engine only ever touches pixels through
// coordinate get/set and bounded row swaps; the grid owns no state
// beyond the raster the caller handed it.
package pixgrid

import (
	"image"
	"image/color"
	"image/draw"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/pixelveil/pixelveil/internal/region"
)

const bytesPerPixel = 4

// Grid is a row/col view over an NRGBA image. Mutations go straight to
// the backing raster.
type Grid struct {
	img *image.NRGBA
}

// New allocates a zeroed grid of the given dimensions.
func New(rows, cols int) *Grid {
	return &Grid{img: image.NewNRGBA(image.Rect(0, 0, cols, rows))}
}

// FromImage copies src into a fresh NRGBA raster anchored at the origin,
// so rows and columns index from zero regardless of the source bounds.
func FromImage(src image.Image) *Grid {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Grid{img: dst}
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.img.Rect.Dy() }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.img.Rect.Dx() }

// At returns the pixel at (row, col).
func (g *Grid) At(row, col int) color.NRGBA {
	return g.img.NRGBAAt(col, row)
}

// Set writes the pixel at (row, col).
func (g *Grid) Set(row, col int, c color.NRGBA) {
	g.img.SetNRGBA(col, row, c)
}

// SwapRows exchanges the pixels of rows r1 and r2 across columns
// [minCol, maxCol] inclusive. Swapping a row with itself is a no-op.
func (g *Grid) SwapRows(r1, r2, minCol, maxCol int) {
	if r1 == r2 || maxCol < minCol {
		return
	}
	n := (maxCol - minCol + 1) * bytesPerPixel
	a := g.img.Pix[g.img.PixOffset(minCol, r1):][:n]
	b := g.img.Pix[g.img.PixOffset(minCol, r2):][:n]
	tmp := make([]byte, n)
	copy(tmp, a)
	copy(a, b)
	copy(b, tmp)
}

// Image exposes the backing raster for encoding.
func (g *Grid) Image() *image.NRGBA { return g.img }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	dup := image.NewNRGBA(g.img.Rect)
	copy(dup.Pix, g.img.Pix)
	return &Grid{img: dup}
}

// RegionDigest hashes the pixel bytes of box row-major. Two grids agree
// on a region iff their digests match; the caller is responsible for the
// box being within bounds.
func (g *Grid) RegionDigest(b region.Box) uint64 {
	h := xxhash.New()
	n := (b.MaxCol - b.MinCol + 1) * bytesPerPixel
	for row := b.MinRow; row <= b.MaxRow; row++ {
		_, _ = h.Write(g.img.Pix[g.img.PixOffset(b.MinCol, row):][:n])
	}
	return h.Sum64()
}
