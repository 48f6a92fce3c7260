package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateColourVisionScore(t *testing.T) {
	score, err := CalculateColourVisionScore(12, 14)
	require.NoError(t, err)
	assert.Equal(t, 85, score)

	score, err = CalculateColourVisionScore(14, 14)
	require.NoError(t, err)
	assert.Equal(t, 100, score)

	score, err = CalculateColourVisionScore(0, 14)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestCalculateColourVisionScoreRejectsBadInput(t *testing.T) {
	_, err := CalculateColourVisionScore(5, 0)
	assert.Error(t, err)

	_, err = CalculateColourVisionScore(-1, 14)
	assert.Error(t, err)

	_, err = CalculateColourVisionScore(15, 14)
	assert.Error(t, err)
}

func TestClassifyScreeningControlCheckOverrides(t *testing.T) {
	// A failed control plate invalidates even a perfect score.
	assert.Equal(t, ScreeningUnreliable, ClassifyScreening(100, true))
	assert.Equal(t, ScreeningUnreliable, ClassifyScreening(0, true))
	assert.Equal(t, "Normal Color Vision", ClassifyScreening(100, false))
}
