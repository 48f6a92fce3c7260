package metrics

import "netracare-go/internal/models"

// segmentPhases partitions validated samples into the four ordered test
// phases by the session's phase start timestamps. A sample exactly at a
// boundary belongs to the phase it starts. Every phase must end up with at
// least one sample, otherwise its analyzer has nothing to work on.
func segmentPhases(session *models.Session, samples []models.GazeSample) ([models.PhaseCount][]models.GazeSample, error) {
	var phases [models.PhaseCount][]models.GazeSample

	starts := session.PhaseStarts
	for i := 1; i < models.PhaseCount; i++ {
		if starts[i] <= starts[i-1] {
			return phases, &ConfigurationError{Field: "phase_starts", Reason: "phase start timestamps must be strictly increasing"}
		}
	}
	if starts[0] < 0 {
		return phases, &ConfigurationError{Field: "phase_starts", Reason: "first phase cannot start before the session"}
	}
	if session.Duration > 0 && starts[models.PhaseCount-1] >= session.Duration {
		return phases, &ConfigurationError{Field: "phase_starts", Reason: "last phase starts at or after the declared duration"}
	}

	for _, s := range samples {
		p := models.Phase(models.PhaseCount - 1)
		for ; p > 0; p-- {
			if s.Timestamp >= starts[p] {
				break
			}
		}
		if s.Timestamp < starts[0] {
			continue
		}
		phases[p] = append(phases[p], s)
	}

	for i := range phases {
		if len(phases[i]) == 0 {
			return phases, &InsufficientDataError{Phase: models.Phase(i).String(), Got: 0, Minimum: 1}
		}
	}
	return phases, nil
}
