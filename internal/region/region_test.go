package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelveil/pixelveil/internal/landmarks"
)

func TestFromLandmarks(t *testing.T) {
	set := landmarks.Set{
		1: {X: 40, Y: 12},
		2: {X: 8, Y: 30},
		3: {X: 25, Y: 4},
	}
	b, err := FromLandmarks(set)
	require.NoError(t, err)
	assert.Equal(t, Box{MinRow: 4, MaxRow: 30, MinCol: 8, MaxCol: 40}, b)
	assert.Equal(t, 27, b.RowSpan())
	assert.Equal(t, 33, b.ColSpan())
}

func TestFromLandmarks_SinglePoint(t *testing.T) {
	b, err := FromLandmarks(landmarks.Set{17: {X: 9, Y: 9}})
	require.NoError(t, err)
	assert.Equal(t, Box{MinRow: 9, MaxRow: 9, MinCol: 9, MaxCol: 9}, b)
	assert.Equal(t, 1, b.RowSpan())
}

func TestFromLandmarks_EmptyIsUndefined(t *testing.T) {
	_, err := FromLandmarks(landmarks.Set{})
	require.ErrorIs(t, err, ErrUndefined)

	_, err = FromLandmarks(nil)
	require.ErrorIs(t, err, ErrUndefined)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Box{MinRow: 1, MaxRow: 5, MinCol: 2, MaxCol: 2}.Validate())

	err := Box{MinRow: 6, MaxRow: 5, MinCol: 0, MaxCol: 1}.Validate()
	require.ErrorIs(t, err, ErrBounds)

	err = Box{MinRow: 0, MaxRow: 5, MinCol: 3, MaxCol: 1}.Validate()
	require.ErrorIs(t, err, ErrBounds)
}

func TestCheckWithin(t *testing.T) {
	b := Box{MinRow: 2, MaxRow: 9, MinCol: 0, MaxCol: 7}
	require.NoError(t, b.CheckWithin(10, 8))

	require.ErrorIs(t, b.CheckWithin(9, 8), ErrBounds)
	require.ErrorIs(t, b.CheckWithin(10, 7), ErrBounds)
	require.ErrorIs(t, Box{MinRow: -1, MaxRow: 2, MinCol: 0, MaxCol: 2}.CheckWithin(10, 10), ErrBounds)
}
