package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefaultsFillsZeroValues(t *testing.T) {
	opts := ScoringOptions{}.withDefaults()
	assert.Equal(t, DefaultScoringOptions(), opts)
}

func TestWithDefaultsKeepsExplicitValues(t *testing.T) {
	opts := ScoringOptions{
		MinValidSamples:          5,
		PupilDiameterMin:         1,
		PupilDiameterMax:         10,
		FixationMinDuration:      0.2,
		SaccadeVelocityThreshold: 50,
		ConsistencyScaleFactor:   80,
		AccuracyWeight:           0.5,
		StabilityWeight:          0.25,
		ConsistencyWeight:        0.25,
	}
	assert.Equal(t, opts, opts.withDefaults())
}

func TestWithDefaultsLeavesPartialWeightsAlone(t *testing.T) {
	opts := ScoringOptions{AccuracyWeight: 0.5}.withDefaults()
	assert.Equal(t, 0.5, opts.AccuracyWeight)
	assert.Zero(t, opts.StabilityWeight)
	require.Error(t, opts.Validate())
}

func TestValidateRejectsBadOptions(t *testing.T) {
	base := DefaultScoringOptions()

	tests := []struct {
		name   string
		mutate func(*ScoringOptions)
		field  string
	}{
		{"zero min samples", func(o *ScoringOptions) { o.MinValidSamples = 0 }, "min_valid_samples"},
		{"negative pupil bound", func(o *ScoringOptions) { o.PupilDiameterMin = -1 }, "pupil_diameter_range"},
		{"inverted pupil range", func(o *ScoringOptions) { o.PupilDiameterMin = 9; o.PupilDiameterMax = 2 }, "pupil_diameter_range"},
		{"negative fixation minimum", func(o *ScoringOptions) { o.FixationMinDuration = -0.1 }, "fixation_min_duration"},
		{"negative saccade threshold", func(o *ScoringOptions) { o.SaccadeVelocityThreshold = -1 }, "saccade_velocity_threshold"},
		{"negative normalization", func(o *ScoringOptions) { o.StabilityNormalizationConstant = -5 }, "stability_normalization_constant"},
		{"non-positive scale factor", func(o *ScoringOptions) { o.ConsistencyScaleFactor = -1 }, "consistency_scale_factor"},
		{"negative weight", func(o *ScoringOptions) { o.AccuracyWeight = -0.5; o.StabilityWeight = 1.5 }, "weights"},
		{"weights sum too high", func(o *ScoringOptions) { o.AccuracyWeight = 0.5 }, "weights"},
		{"weights sum too low", func(o *ScoringOptions) { o.ConsistencyWeight = 0.1 }, "weights"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := base
			tc.mutate(&opts)
			err := opts.Validate()
			var configErr *ConfigurationError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tc.field, configErr.Field)
		})
	}
}

func TestValidateAcceptsWeightsWithinTolerance(t *testing.T) {
	opts := DefaultScoringOptions()
	opts.AccuracyWeight = 0.333333
	opts.StabilityWeight = 0.333333
	opts.ConsistencyWeight = 0.333334
	assert.NoError(t, opts.Validate())
}

func TestValidateAcceptsDefaults(t *testing.T) {
	assert.NoError(t, DefaultScoringOptions().Validate())
}
