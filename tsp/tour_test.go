package tsp_test

import (
	"testing"

	"github.com/meshgeo/flipout/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePermutationAcceptsIdentity(t *testing.T) {
	assert.NoError(t, tsp.ValidatePermutation([]int{0, 1, 2, 3}, 4))
}

func TestValidatePermutationRejectsWrongLength(t *testing.T) {
	assert.ErrorIs(t, tsp.ValidatePermutation([]int{0, 1, 2}, 4), tsp.ErrDimensionMismatch)
}

func TestValidatePermutationRejectsDuplicate(t *testing.T) {
	assert.ErrorIs(t, tsp.ValidatePermutation([]int{0, 1, 1, 3}, 4), tsp.ErrDimensionMismatch)
}

func TestValidatePermutationRejectsOutOfRange(t *testing.T) {
	assert.ErrorIs(t, tsp.ValidatePermutation([]int{0, 1, 2, 9}, 4), tsp.ErrDimensionMismatch)
}

func TestMakeTourFromPermutationRotatesAndCloses(t *testing.T) {
	tour, err := tsp.MakeTourFromPermutation([]int{2, 3, 0, 1}, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, tour)
}

func TestMakeTourFromPermutationRejectsBadStart(t *testing.T) {
	_, err := tsp.MakeTourFromPermutation([]int{0, 1, 2, 3}, 4, 9)
	assert.ErrorIs(t, err, tsp.ErrStartOutOfRange)
}

func TestValidateTourAcceptsClosedCycle(t *testing.T) {
	assert.NoError(t, tsp.ValidateTour([]int{0, 1, 2, 3, 0}, 4, 0))
}

func TestValidateTourRejectsOpenCycle(t *testing.T) {
	assert.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 2, 3, 1}, 4, 0), tsp.ErrDimensionMismatch)
}

func TestValidateTourRejectsWrongStart(t *testing.T) {
	assert.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 2, 3, 0}, 4, 1), tsp.ErrDimensionMismatch)
}

func TestCanonicalizeOrientationInPlaceFlipsWhenRightNeighborLarger(t *testing.T) {
	tour := []int{0, 3, 1, 2, 0}
	require.NoError(t, tsp.CanonicalizeOrientationInPlace(tour))
	assert.True(t, tour[1] <= tour[len(tour)-2])
}

func TestCanonicalizeOrientationInPlaceLeavesAlreadyCanonical(t *testing.T) {
	tour := []int{0, 1, 2, 3, 0}
	require.NoError(t, tsp.CanonicalizeOrientationInPlace(tour))
	assert.Equal(t, []int{0, 1, 2, 3, 0}, tour)
}
