package metrics

import (
	"math"

	"netracare-go/internal/models"
)

// validateSamples filters the raw sequence into a clean, time-ordered one.
// Samples are dropped, never re-sorted: re-sorting would fake a causal order
// the capture layer never observed, corrupting the velocity fields. Returns
// the accepted samples in original order and the number of drops.
func validateSamples(session *models.Session, opts ScoringOptions) ([]models.GazeSample, int, error) {
	accepted := make([]models.GazeSample, 0, len(session.Samples))
	dropped := 0
	lastTimestamp := math.Inf(-1)

	for _, s := range session.Samples {
		if !sampleWellFormed(s) {
			dropped++
			continue
		}
		// Out-of-order samples are dropped relative to the last ACCEPTED
		// timestamp, so one rogue clock jump cannot shadow the rest.
		if s.Timestamp < lastTimestamp {
			dropped++
			continue
		}
		if s.GazeX < 0 || s.GazeX > session.ScreenWidth || s.GazeY < 0 || s.GazeY > session.ScreenHeight {
			dropped++
			continue
		}
		if !pupilPlausible(s.LeftPupilDiameter, opts) || !pupilPlausible(s.RightPupilDiameter, opts) {
			dropped++
			continue
		}
		if s.SaccadeVelocity < 0 {
			dropped++
			continue
		}

		lastTimestamp = s.Timestamp
		accepted = append(accepted, s)
	}

	if len(accepted) < opts.MinValidSamples {
		return nil, dropped, &InsufficientDataError{Got: len(accepted), Minimum: opts.MinValidSamples}
	}
	return accepted, dropped, nil
}

// sampleWellFormed rejects samples with non-finite fields or a negative
// timestamp or fixation duration.
func sampleWellFormed(s models.GazeSample) bool {
	for _, v := range []float64{s.Timestamp, s.GazeX, s.GazeY, s.LeftPupilDiameter, s.RightPupilDiameter, s.FixationDuration, s.SaccadeVelocity} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return s.Timestamp >= 0 && s.FixationDuration >= 0
}

// pupilPlausible accepts a pupil diameter inside the configured range. A zero
// diameter means the tracker reported nothing for that eye, which is fine.
func pupilPlausible(d float64, opts ScoringOptions) bool {
	if d == 0 {
		return true
	}
	return d >= opts.PupilDiameterMin && d <= opts.PupilDiameterMax
}
