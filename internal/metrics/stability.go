package metrics

import (
	"math"

	"netracare-go/internal/models"
)

// calculateFixationStability measures how steady gaze position is while the
// protocol expects the eye to hold still. Fixation-tagged samples are grouped
// into contiguous runs; each run's dispersion is the Euclidean norm of the
// per-axis standard deviations, and the score falls linearly as the average
// dispersion grows. No qualifying fixation at all is itself informative and
// scores 0 rather than failing.
func calculateFixationStability(session *models.Session, samples []models.GazeSample, opts ScoringOptions) (float64, models.FixationStats) {
	normalization := opts.StabilityNormalizationConstant
	if normalization == 0 {
		normalization = defaultStabilityNormFraction * session.Diagonal()
	}

	var runs [][]models.GazeSample
	var current []models.GazeSample
	var durations []float64
	for _, s := range samples {
		if s.FixationDuration >= opts.FixationMinDuration && s.FixationDuration > 0 {
			current = append(current, s)
			durations = append(durations, s.FixationDuration)
			continue
		}
		if len(current) > 0 {
			runs = append(runs, current)
			current = nil
		}
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}

	stats := models.FixationStats{RunCount: len(runs), SampleCount: len(durations)}
	if len(durations) == 0 {
		return 0, stats
	}

	stats.MeanDuration = round2(mean(durations))
	stats.StdDeviation = round2(stddev(durations))
	stats.MinDuration = round2(minOf(durations))
	stats.MaxDuration = round2(maxOf(durations))

	var dispersionSum float64
	for _, run := range runs {
		xs := make([]float64, len(run))
		ys := make([]float64, len(run))
		for i, s := range run {
			xs[i] = s.GazeX
			ys[i] = s.GazeY
		}
		dispersionSum += math.Hypot(stddev(xs), stddev(ys))
	}
	dispersion := dispersionSum / float64(len(runs))
	stats.MeanDispersion = round2(dispersion)

	if normalization == 0 {
		return 0, stats
	}
	score := 100 - (dispersion/normalization)*100
	return clampScore(score), stats
}
