// Package key implements the bounded integer sequences that drive the
// row permutation. A Vector pairs an ordered list of values with the
// absolute range every element must lie in, and supports two pure
// derivations: shifting into a new range by modular wrap, and extending
// to a target length from the original terms. Derived vectors are new
// values; the source is never mutated.
package key

import (
	"errors"
	"fmt"
	"math/rand"
)

// Defaults for randomly generated keys. The range and length follow the
// reference scrambling scheme.
const (
	DefaultMin    = 1
	DefaultMax    = 200
	DefaultLength = 100
)

// ErrValidation reports a key that breaks a structural invariant: empty
// values, a value outside its declared bounds, or an inverted range.
var ErrValidation = errors.New("invalid key")

// Vector is an ordered, bounded sequence of integers. The bounds are the
// absolute legal range for every element, not the observed extrema.
type Vector struct {
	values []int
	min    int
	max    int
}

// New builds a Vector from explicit values, taking the observed minimum
// and maximum as its bounds.
func New(values []int) (Vector, error) {
	if len(values) == 0 {
		return Vector{}, fmt.Errorf("%w: no values", ErrValidation)
	}
	lo, hi := values[0], values[0]
	for _, t := range values[1:] {
		if t < lo {
			lo = t
		}
		if t > hi {
			hi = t
		}
	}
	return Vector{values: clone(values), min: lo, max: hi}, nil
}

// NewBounded builds a Vector from explicit values and explicit bounds.
// Every value must lie in [min, max].
func NewBounded(values []int, min, max int) (Vector, error) {
	if len(values) == 0 {
		return Vector{}, fmt.Errorf("%w: no values", ErrValidation)
	}
	if min > max {
		return Vector{}, fmt.Errorf("%w: bounds [%d, %d] are inverted", ErrValidation, min, max)
	}
	for i, t := range values {
		if t < min || t > max {
			return Vector{}, fmt.Errorf("%w: value %d at index %d outside [%d, %d]", ErrValidation, t, i, min, max)
		}
	}
	return Vector{values: clone(values), min: min, max: max}, nil
}

// NewRandom draws length independent uniform values from [min, max],
// sampling with replacement. Repeats are expected and meaningful.
// The source is supplied by the caller so tests can pin outputs.
func NewRandom(rng *rand.Rand, min, max, length int) (Vector, error) {
	if min > max {
		return Vector{}, fmt.Errorf("%w: bounds [%d, %d] are inverted", ErrValidation, min, max)
	}
	if length < 1 {
		return Vector{}, fmt.Errorf("%w: length %d < 1", ErrValidation, length)
	}
	values := make([]int, length)
	span := max - min + 1
	for i := range values {
		values[i] = min + rng.Intn(span)
	}
	return Vector{values: values, min: min, max: max}, nil
}

// Values returns a copy of the sequence.
func (v Vector) Values() []int { return clone(v.values) }

// Len returns the number of terms.
func (v Vector) Len() int { return len(v.values) }

// Bounds returns the absolute range of the vector.
func (v Vector) Bounds() (min, max int) { return v.min, v.max }

// At returns the term at index i.
func (v Vector) At(i int) int { return v.values[i] }

// ShiftToRange remaps every term into [newMin, newMax], preserving
// length and order. Terms already inside the range stay unchanged; a term
// below the range wraps as (t mod span)+newMin, one above as
// ((t-newMin) mod span)+newMin. The result's bounds become the new range.
func (v Vector) ShiftToRange(newMin, newMax int) (Vector, error) {
	if newMin > newMax {
		return Vector{}, fmt.Errorf("%w: shift range [%d, %d] is inverted", ErrValidation, newMin, newMax)
	}
	span := newMax - newMin + 1
	shifted := make([]int, len(v.values))
	for i, t := range v.values {
		switch {
		case t < newMin:
			shifted[i] = floorMod(t, span) + newMin
		case t > newMax:
			shifted[i] = floorMod(t-newMin, span) + newMin
		default:
			shifted[i] = t
		}
	}
	return Vector{values: shifted, min: newMin, max: newMax}, nil
}

// Extend returns a vector of at least newSize terms. The first Len()
// terms are unchanged; each appended term is values[i mod L] + i div L
// (L being the original length), wrapped back into the bounds when it
// falls outside them. Appended terms are pure functions of the original
// values and the index. A newSize at or below the current length yields
// an unchanged copy.
func (v Vector) Extend(newSize int) Vector {
	n := len(v.values)
	size := newSize
	if size < n {
		size = n
	}
	out := make([]int, n, size)
	copy(out, v.values)
	span := v.max - v.min + 1
	for i := n; i < newSize; i++ {
		term := v.values[i%n] + i/n
		if term < v.min || term > v.max {
			term = floorMod(term-v.min, span) + v.min
		}
		out = append(out, term)
	}
	return Vector{values: out, min: v.min, max: v.max}
}

// String renders the vector for diagnostics.
func (v Vector) String() string {
	return fmt.Sprintf("Key(%v in [%d, %d])", v.values, v.min, v.max)
}

// floorMod is the non-negative remainder of x by m. Go's % truncates
// toward zero, which would wrap negative terms the wrong way.
func floorMod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

func clone(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	return out
}
