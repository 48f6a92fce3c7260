package metrics

import "netracare-go/internal/models"

// ScoreSession runs the full scoring pipeline over one validated recording:
// validation, phase segmentation, the three analyzers, aggregation and
// classification. It is a pure function of its inputs: it owns no state,
// never mutates the session or trajectory, and is safe to call from any
// number of goroutines at once. It either returns a fully populated result
// or a typed error; it never guesses a classification from partial data.
func ScoreSession(session *models.Session, trajectory *models.TargetTrajectory, opts ScoringOptions) (*models.MetricsResult, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	samples, dropped, err := validateSamples(session, opts)
	if err != nil {
		return nil, err
	}

	phases, err := segmentPhases(session, samples)
	if err != nil {
		return nil, err
	}

	accuracy, err := calculateGazeAccuracy(session, phases, trajectory)
	if err != nil {
		return nil, err
	}
	stability, fixationStats := calculateFixationStability(session, samples, opts)
	consistency, saccadeStats := calculateSaccadeConsistency(samples, opts)
	leftPupil, rightPupil := calculatePupilStats(samples)

	overall := accuracy*opts.AccuracyWeight +
		stability*opts.StabilityWeight +
		consistency*opts.ConsistencyWeight

	result := &models.MetricsResult{
		GazeAccuracy:            round2(accuracy),
		FixationStabilityScore:  round2(stability),
		SaccadeConsistencyScore: round2(consistency),
		OverallPerformanceScore: round2(clampScore(overall)),
		ValidSamples:            len(samples),
		DroppedSamples:          dropped,
		Fixation:                fixationStats,
		Saccade:                 saccadeStats,
		LeftPupil:               leftPupil,
		RightPupil:              rightPupil,
	}
	for i := range phases {
		result.PhaseSampleCounts[i] = len(phases[i])
	}
	result.Classification = PerformanceLevels.Classify(result.OverallPerformanceScore)

	return result, nil
}
