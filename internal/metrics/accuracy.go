package metrics

import (
	"math"

	"netracare-go/internal/models"
)

// calculateGazeAccuracy compares observed gaze against the expected target
// trajectory across all four phases. Per-sample Euclidean distances are
// normalized by the screen diagonal so the score is resolution-independent,
// then averaged: accuracy = 100 × (1 − mean). A gaze that never approaches
// the target floors at 0 rather than going negative.
func calculateGazeAccuracy(session *models.Session, phases [models.PhaseCount][]models.GazeSample, trajectory *models.TargetTrajectory) (float64, error) {
	diagonal := session.Diagonal()
	if diagonal == 0 {
		return 0, &DegenerateGeometryError{Width: session.ScreenWidth, Height: session.ScreenHeight}
	}

	var sum float64
	var count int
	for p := models.Phase(0); p < models.PhaseCount; p++ {
		start := session.PhaseStarts[p]
		for _, s := range phases[p] {
			// Observed samples pair with the trajectory value at their own
			// elapsed time; capture is irregular, so equal-length pairing
			// is never assumed.
			tx, ty, ok := trajectory.TargetAt(p, s.Timestamp-start)
			if !ok {
				return 0, &ConfigurationError{Field: "trajectory", Reason: "no waypoints for phase " + p.String()}
			}
			distance := math.Hypot(s.GazeX-tx, s.GazeY-ty) / diagonal
			if distance > 1 {
				distance = 1
			}
			sum += distance
			count++
		}
	}

	accuracy := 100 * (1 - sum/float64(count))
	return clampScore(accuracy), nil
}

// clampScore bounds a score to [0, 100].
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
