package models

// FixationStats summarizes the fixation-tagged samples of a session.
type FixationStats struct {
	MeanDuration   float64 `json:"mean_duration"`
	StdDeviation   float64 `json:"std_deviation"`
	MinDuration    float64 `json:"min_duration"`
	MaxDuration    float64 `json:"max_duration"`
	RunCount       int     `json:"run_count"`
	MeanDispersion float64 `json:"mean_dispersion"`
	SampleCount    int     `json:"sample_count"`
}

// SaccadeStats summarizes the detected rapid eye movements of a session.
type SaccadeStats struct {
	MeanVelocity float64 `json:"mean_velocity"`
	StdVelocity  float64 `json:"std_velocity"`
	MaxVelocity  float64 `json:"max_velocity"`
	SaccadeCount int     `json:"saccade_count"`
}

// PupilStats summarizes pupil diameter observations for one eye.
type PupilStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// MetricsResult is the complete output of one scoring call. All score fields
// are clamped to [0, 100]; Classification is derived from
// OverallPerformanceScore alone. The result is created once per call and
// owned by the caller.
type MetricsResult struct {
	GazeAccuracy            float64 `json:"gaze_accuracy"`
	FixationStabilityScore  float64 `json:"fixation_stability_score"`
	SaccadeConsistencyScore float64 `json:"saccade_consistency_score"`
	OverallPerformanceScore float64 `json:"overall_performance_score"`
	Classification          string  `json:"classification"`

	ValidSamples      int             `json:"valid_samples"`
	DroppedSamples    int             `json:"dropped_samples"`
	PhaseSampleCounts [PhaseCount]int `json:"phase_sample_counts"`

	Fixation   FixationStats `json:"fixation"`
	Saccade    SaccadeStats  `json:"saccade"`
	LeftPupil  PupilStats    `json:"left_pupil"`
	RightPupil PupilStats    `json:"right_pupil"`
}
