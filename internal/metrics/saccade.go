package metrics

import "netracare-go/internal/models"

// calculateSaccadeConsistency measures regularity of rapid eye movements via
// the coefficient of variation of detected saccade velocities. No detected
// saccades, or a zero mean velocity, is a valid low-scoring outcome, not an
// error, matching the fixation analyzer's no-signal policy.
func calculateSaccadeConsistency(samples []models.GazeSample, opts ScoringOptions) (float64, models.SaccadeStats) {
	var velocities []float64
	for _, s := range samples {
		if s.SaccadeVelocity > opts.SaccadeVelocityThreshold {
			velocities = append(velocities, s.SaccadeVelocity)
		}
	}

	stats := models.SaccadeStats{SaccadeCount: len(velocities)}
	if len(velocities) == 0 {
		return 0, stats
	}

	avg := mean(velocities)
	sd := stddev(velocities)
	stats.MeanVelocity = round2(avg)
	stats.StdVelocity = round2(sd)
	stats.MaxVelocity = round2(maxOf(velocities))

	if avg == 0 {
		return 0, stats
	}
	score := 100 - (sd/avg)*opts.ConsistencyScaleFactor
	return clampScore(score), stats
}
