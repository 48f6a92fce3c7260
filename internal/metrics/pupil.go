package metrics

import "netracare-go/internal/models"

// calculatePupilStats summarizes pupil diameters per eye over the validated
// samples. Zero diameters mean the tracker reported nothing and are skipped.
// Pupil behavior feeds no sub-score; the stats ride along for clinicians.
func calculatePupilStats(samples []models.GazeSample) (left, right models.PupilStats) {
	var leftDiameters, rightDiameters []float64
	for _, s := range samples {
		if s.LeftPupilDiameter > 0 {
			leftDiameters = append(leftDiameters, s.LeftPupilDiameter)
		}
		if s.RightPupilDiameter > 0 {
			rightDiameters = append(rightDiameters, s.RightPupilDiameter)
		}
	}
	return summarizePupil(leftDiameters), summarizePupil(rightDiameters)
}

func summarizePupil(diameters []float64) models.PupilStats {
	if len(diameters) == 0 {
		return models.PupilStats{}
	}
	return models.PupilStats{
		Mean: round2(mean(diameters)),
		Std:  round2(stddev(diameters)),
		Min:  round2(minOf(diameters)),
		Max:  round2(maxOf(diameters)),
	}
}
