package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerformanceLevelsBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "Excellent"},
		{90, "Excellent"},
		{89.99, "Good"},
		{75, "Good"},
		{74.99, "Fair"},
		{60, "Fair"},
		{59.99, "Poor"},
		{0, "Poor"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, PerformanceLevels.Classify(tc.score), "score %v", tc.score)
	}
}

func TestScreeningLevelsBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "Normal Color Vision"},
		{90, "Normal Color Vision"},
		{89, "Borderline - Possible Mild Deficiency"},
		{80, "Borderline - Possible Mild Deficiency"},
		{79, "Mild Color Vision Deficiency"},
		{60, "Mild Color Vision Deficiency"},
		{59, "Moderate Color Vision Deficiency"},
		{40, "Moderate Color Vision Deficiency"},
		{39, "Severe Color Vision Deficiency"},
		{0, "Severe Color Vision Deficiency"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ScreeningLevels.Classify(tc.score), "score %v", tc.score)
	}
}
