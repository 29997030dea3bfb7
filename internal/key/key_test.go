package key

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, values []int) Vector {
	t.Helper()
	v, err := New(values)
	require.NoError(t, err)
	return v
}

func TestNew_BoundsFromObservedExtrema(t *testing.T) {
	v := mustNew(t, []int{7, 2, 9, 2})
	lo, hi := v.Bounds()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 9, hi)
	assert.Equal(t, 4, v.Len())
}

func TestNew_Empty(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrValidation)
}

func TestNewBounded(t *testing.T) {
	v, err := NewBounded([]int{3, 5, 7}, 1, 10)
	require.NoError(t, err)
	lo, hi := v.Bounds()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 10, hi)

	_, err = NewBounded([]int{3, 11}, 1, 10)
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewBounded([]int{3}, 10, 1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestNewRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	v, err := NewRandom(rng, 1, 200, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, v.Len())
	for _, term := range v.Values() {
		assert.GreaterOrEqual(t, term, 1)
		assert.LessOrEqual(t, term, 200)
	}

	// Same seed, same key.
	again, err := NewRandom(rand.New(rand.NewSource(42)), 1, 200, 100)
	require.NoError(t, err)
	assert.Equal(t, v.Values(), again.Values())
}

func TestNewRandom_Invalid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := NewRandom(rng, 10, 1, 5)
	require.ErrorIs(t, err, ErrValidation)
	_, err = NewRandom(rng, 1, 10, 0)
	require.ErrorIs(t, err, ErrValidation)
}

func TestShiftToRange_ReferenceVectors(t *testing.T) {
	cases := []struct {
		name   string
		values []int
		lo, hi int
		want   []int
	}{
		{"below range", []int{4, 5, 6}, 11, 14, []int{11, 12, 13}},
		{"above range", []int{93, 68, 76, 88, 96, 93, 80}, 1, 3, []int{3, 2, 1, 1, 3, 3, 2}},
		{"straddling", []int{20, 16, 13, 20, 16, 18, 20, 21, 17, 22}, 12, 19, []int{12, 16, 13, 12, 16, 18, 12, 13, 17, 14}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			shifted, err := mustNew(t, tc.values).ShiftToRange(tc.lo, tc.hi)
			require.NoError(t, err)
			assert.Equal(t, tc.want, shifted.Values())
			lo, hi := shifted.Bounds()
			assert.Equal(t, tc.lo, lo)
			assert.Equal(t, tc.hi, hi)
		})
	}
}

func TestShiftToRange_AllWithinTarget(t *testing.T) {
	v := mustNew(t, []int{-17, 0, 3, 57, 200, 1000})
	shifted, err := v.ShiftToRange(5, 9)
	require.NoError(t, err)
	assert.Equal(t, v.Len(), shifted.Len())
	for _, term := range shifted.Values() {
		assert.GreaterOrEqual(t, term, 5)
		assert.LessOrEqual(t, term, 9)
	}
}

func TestShiftToRange_Inverted(t *testing.T) {
	_, err := mustNew(t, []int{1, 2}).ShiftToRange(9, 5)
	require.ErrorIs(t, err, ErrValidation)
}

func TestExtend_ReferenceVectors(t *testing.T) {
	cases := []struct {
		name   string
		values []int
		size   int
		want   []int
	}{
		{"short", []int{1, 2, 3}, 5, []int{1, 2, 3, 2, 3}},
		{"wrapping", []int{3, 3, 2, 1}, 10, []int{3, 3, 2, 1, 1, 1, 3, 2, 2, 2}},
		{
			"shifted source",
			[]int{19, 15, 12, 19, 15, 17, 19},
			17,
			[]int{19, 15, 12, 19, 15, 17, 19, 12, 16, 13, 12, 16, 18, 12, 13, 17, 14},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			extended := mustNew(t, tc.values).Extend(tc.size)
			assert.Equal(t, tc.want, extended.Values())
		})
	}
}

func TestExtend_PrefixPreserved(t *testing.T) {
	v := mustNew(t, []int{8, 3, 6, 1})
	extended := v.Extend(23)
	assert.Equal(t, 23, extended.Len())
	assert.Equal(t, v.Values(), extended.Values()[:v.Len()])

	lo, hi := v.Bounds()
	elo, ehi := extended.Bounds()
	assert.Equal(t, lo, elo)
	assert.Equal(t, hi, ehi)
	for _, term := range extended.Values() {
		assert.GreaterOrEqual(t, term, lo)
		assert.LessOrEqual(t, term, hi)
	}
}

func TestExtend_SmallerOrEqualSizeCopies(t *testing.T) {
	v := mustNew(t, []int{5, 6, 7})
	assert.Equal(t, v.Values(), v.Extend(2).Values())
	assert.Equal(t, v.Values(), v.Extend(3).Values())
}

func TestDerivationsAreDeterministicAndNonMutating(t *testing.T) {
	v := mustNew(t, []int{42, 17, 99, 3})
	before := v.Values()

	a, err := v.ShiftToRange(0, 6)
	require.NoError(t, err)
	b, err := v.ShiftToRange(0, 6)
	require.NoError(t, err)
	assert.Equal(t, a.Values(), b.Values())

	assert.Equal(t, v.Extend(11).Values(), v.Extend(11).Values())
	assert.Equal(t, before, v.Values())
}

func TestValuesReturnsCopy(t *testing.T) {
	v := mustNew(t, []int{1, 2, 3})
	got := v.Values()
	got[0] = 99
	assert.Equal(t, []int{1, 2, 3}, v.Values())
}
