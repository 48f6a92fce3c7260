package metrics

import "math"

// Defaults for ScoringOptions. MinValidSamples assumes a nominal 20 Hz
// capture rate and a one second minimum phase duration.
const (
	DefaultMinValidSamples          = 20
	DefaultPupilDiameterMin         = 2.0
	DefaultPupilDiameterMax         = 9.0
	DefaultFixationMinDuration      = 0.1
	DefaultSaccadeVelocityThreshold = 100.0
	DefaultConsistencyScaleFactor   = 100.0

	// Fraction of the screen diagonal used as the stability normalization
	// constant when none is configured.
	defaultStabilityNormFraction = 0.1

	weightTolerance = 1e-6
)

// ScoringOptions configures one scoring call. Zero values fall back to the
// documented defaults, so the zero ScoringOptions is usable as-is.
type ScoringOptions struct {
	// MinValidSamples is the smallest number of samples that must survive
	// validation for the session to be scoreable.
	MinValidSamples int `json:"min_valid_samples"`

	// Plausible pupil diameter range in millimeters. Samples reporting a
	// diameter outside it are dropped.
	PupilDiameterMin float64 `json:"pupil_diameter_min"`
	PupilDiameterMax float64 `json:"pupil_diameter_max"`

	// FixationMinDuration is the smallest fixation duration, in seconds,
	// for a sample to count toward stability.
	FixationMinDuration float64 `json:"fixation_min_duration"`

	// SaccadeVelocityThreshold is the smallest velocity, in px/s, for a
	// sample to count as a saccade.
	SaccadeVelocityThreshold float64 `json:"saccade_velocity_threshold"`

	// StabilityNormalizationConstant is the dispersion, in pixels, that maps
	// to a stability score of 0. When 0 it derives from the screen diagonal.
	StabilityNormalizationConstant float64 `json:"stability_normalization_constant"`

	// ConsistencyScaleFactor converts the coefficient of variation of
	// saccade velocities into score points.
	ConsistencyScaleFactor float64 `json:"consistency_scale_factor"`

	// Sub-score weights for the overall performance score. Must sum to 1.
	AccuracyWeight    float64 `json:"accuracy_weight"`
	StabilityWeight   float64 `json:"stability_weight"`
	ConsistencyWeight float64 `json:"consistency_weight"`
}

// DefaultScoringOptions returns the documented default configuration with
// equal sub-score weights.
func DefaultScoringOptions() ScoringOptions {
	return ScoringOptions{
		MinValidSamples:          DefaultMinValidSamples,
		PupilDiameterMin:         DefaultPupilDiameterMin,
		PupilDiameterMax:         DefaultPupilDiameterMax,
		FixationMinDuration:      DefaultFixationMinDuration,
		SaccadeVelocityThreshold: DefaultSaccadeVelocityThreshold,
		ConsistencyScaleFactor:   DefaultConsistencyScaleFactor,
		AccuracyWeight:           1.0 / 3.0,
		StabilityWeight:          1.0 / 3.0,
		ConsistencyWeight:        1.0 / 3.0,
	}
}

// withDefaults fills unset fields. All-zero weights mean "use equal weights";
// a partially set weight vector is left alone so Validate can reject it.
func (o ScoringOptions) withDefaults() ScoringOptions {
	if o.MinValidSamples == 0 {
		o.MinValidSamples = DefaultMinValidSamples
	}
	if o.PupilDiameterMin == 0 && o.PupilDiameterMax == 0 {
		o.PupilDiameterMin = DefaultPupilDiameterMin
		o.PupilDiameterMax = DefaultPupilDiameterMax
	}
	if o.FixationMinDuration == 0 {
		o.FixationMinDuration = DefaultFixationMinDuration
	}
	if o.SaccadeVelocityThreshold == 0 {
		o.SaccadeVelocityThreshold = DefaultSaccadeVelocityThreshold
	}
	if o.ConsistencyScaleFactor == 0 {
		o.ConsistencyScaleFactor = DefaultConsistencyScaleFactor
	}
	if o.AccuracyWeight == 0 && o.StabilityWeight == 0 && o.ConsistencyWeight == 0 {
		o.AccuracyWeight = 1.0 / 3.0
		o.StabilityWeight = 1.0 / 3.0
		o.ConsistencyWeight = 1.0 / 3.0
	}
	return o
}

// Validate checks the options for self-consistency. It runs before any
// sample data is touched.
func (o ScoringOptions) Validate() error {
	if o.MinValidSamples < 1 {
		return &ConfigurationError{Field: "min_valid_samples", Reason: "must be at least 1"}
	}
	if o.PupilDiameterMin < 0 || o.PupilDiameterMax < 0 {
		return &ConfigurationError{Field: "pupil_diameter_range", Reason: "bounds must be non-negative"}
	}
	if o.PupilDiameterMin >= o.PupilDiameterMax {
		return &ConfigurationError{Field: "pupil_diameter_range", Reason: "min must be below max"}
	}
	if o.FixationMinDuration < 0 {
		return &ConfigurationError{Field: "fixation_min_duration", Reason: "must be non-negative"}
	}
	if o.SaccadeVelocityThreshold < 0 {
		return &ConfigurationError{Field: "saccade_velocity_threshold", Reason: "must be non-negative"}
	}
	if o.StabilityNormalizationConstant < 0 {
		return &ConfigurationError{Field: "stability_normalization_constant", Reason: "must be non-negative"}
	}
	if o.ConsistencyScaleFactor <= 0 {
		return &ConfigurationError{Field: "consistency_scale_factor", Reason: "must be positive"}
	}
	if o.AccuracyWeight < 0 || o.StabilityWeight < 0 || o.ConsistencyWeight < 0 {
		return &ConfigurationError{Field: "weights", Reason: "weights must be non-negative"}
	}
	sum := o.AccuracyWeight + o.StabilityWeight + o.ConsistencyWeight
	if math.Abs(sum-1) > weightTolerance {
		return &ConfigurationError{Field: "weights", Reason: "accuracy, stability and consistency weights must sum to 1"}
	}
	return nil
}
