package metrics

import "fmt"

// ScreeningUnreliable is returned when the control plate was answered wrong:
// the user either did not understand the task or could not see the plates at
// all, so the score means nothing.
const ScreeningUnreliable = "Test Unreliable - Please Retake"

// CalculateColourVisionScore converts plate answers into a 0-100 percentage.
func CalculateColourVisionScore(correctCount, totalPlates int) (int, error) {
	if totalPlates <= 0 {
		return 0, fmt.Errorf("total plates must be greater than zero")
	}
	if correctCount < 0 || correctCount > totalPlates {
		return 0, fmt.Errorf("correct count out of range")
	}
	return correctCount * 100 / totalPlates, nil
}

// ClassifyScreening maps a colour-vision score to its five-level label. The
// control check overrides the table entirely.
func ClassifyScreening(score float64, controlPlateFailed bool) string {
	if controlPlateFailed {
		return ScreeningUnreliable
	}
	return ScreeningLevels.Classify(score)
}
