package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netracare-go/internal/models"
)

// dispersedFixation builds a fixation run centered on (500, 500) whose gaze
// positions alternate +/- spread on both axes.
func dispersedFixation(n int, spread float64) []models.GazeSample {
	samples := make([]models.GazeSample, n)
	for i := range samples {
		offset := spread
		if i%2 == 1 {
			offset = -spread
		}
		samples[i] = models.GazeSample{
			Timestamp:        float64(i),
			GazeX:            500 + offset,
			GazeY:            500 + offset,
			FixationDuration: 0.3,
		}
	}
	return samples
}

func stabilitySession() *models.Session {
	return &models.Session{ScreenWidth: 1000, ScreenHeight: 1000, Duration: 40}
}

func TestFixationStabilityPerfectlySteady(t *testing.T) {
	score, stats := calculateFixationStability(stabilitySession(), dispersedFixation(10, 0), DefaultScoringOptions())
	assert.Equal(t, 100.0, score)
	assert.Equal(t, 1, stats.RunCount)
	assert.Equal(t, 10, stats.SampleCount)
	assert.Equal(t, 0.0, stats.MeanDispersion)
}

func TestFixationStabilityMonotonicInDispersion(t *testing.T) {
	opts := DefaultScoringOptions()
	session := stabilitySession()

	var last = 101.0
	for _, spread := range []float64{0, 10, 40, 90, 200} {
		score, _ := calculateFixationStability(session, dispersedFixation(10, spread), opts)
		assert.LessOrEqual(t, score, last, "spread %v", spread)
		last = score
	}
}

func TestFixationStabilityNoFixationsScoresZero(t *testing.T) {
	samples := []models.GazeSample{
		{Timestamp: 0, GazeX: 500, GazeY: 500, FixationDuration: 0},
		{Timestamp: 1, GazeX: 500, GazeY: 500, FixationDuration: 0.05}, // below minimum
	}
	score, stats := calculateFixationStability(stabilitySession(), samples, DefaultScoringOptions())
	assert.Equal(t, 0.0, score)
	assert.Equal(t, 0, stats.RunCount)
	assert.Equal(t, 0, stats.SampleCount)
}

func TestFixationStabilitySplitsRunsOnGaps(t *testing.T) {
	samples := append(dispersedFixation(5, 0), models.GazeSample{Timestamp: 5, GazeX: 900, GazeY: 900})
	samples = append(samples, dispersedFixation(5, 0)...)

	score, stats := calculateFixationStability(stabilitySession(), samples, DefaultScoringOptions())
	assert.Equal(t, 100.0, score)
	assert.Equal(t, 2, stats.RunCount)
	assert.Equal(t, 10, stats.SampleCount)
}

func TestFixationStabilityCustomNormalization(t *testing.T) {
	opts := DefaultScoringOptions()
	samples := dispersedFixation(10, 50)

	opts.StabilityNormalizationConstant = 1000
	lenient, _ := calculateFixationStability(stabilitySession(), samples, opts)
	opts.StabilityNormalizationConstant = 100
	strict, _ := calculateFixationStability(stabilitySession(), samples, opts)

	require.Greater(t, lenient, strict)
	assert.GreaterOrEqual(t, strict, 0.0)
	assert.LessOrEqual(t, lenient, 100.0)
}

func TestFixationStabilityDurationStats(t *testing.T) {
	samples := dispersedFixation(4, 0)
	samples[1].FixationDuration = 0.5
	samples[2].FixationDuration = 0.7

	_, stats := calculateFixationStability(stabilitySession(), samples, DefaultScoringOptions())
	assert.Equal(t, 0.45, stats.MeanDuration)
	assert.Equal(t, 0.3, stats.MinDuration)
	assert.Equal(t, 0.7, stats.MaxDuration)
}
