package repository

import (
	"context"
	"time"

	"netracare-go/internal/database"
)

type TimelineDataPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// timelineColumns maps chart metric keys onto result columns. Only scored
// columns are exposed; raw jsonb never feeds a chart.
var timelineColumns = map[string]string{
	"gaze_accuracy":       "gaze_accuracy",
	"fixation_stability":  "fixation_stability_score",
	"saccade_consistency": "saccade_consistency_score",
	"overall_performance": "overall_performance_score",
}

// TimelineMetricValid reports whether a metric key can be charted.
func TimelineMetricValid(metricKey string) bool {
	_, ok := timelineColumns[metricKey]
	return ok
}

// GetScoreTimeline returns one user's history of a single score, oldest
// first, for the results chart.
func GetScoreTimeline(ctx context.Context, userID int, metricKey string) ([]TimelineDataPoint, error) {
	column, ok := timelineColumns[metricKey]
	if !ok {
		column = "overall_performance_score"
	}

	var data []TimelineDataPoint
	err := database.DB.WithContext(ctx).Raw(`
		SELECT created_at AS date, `+column+` AS value
		FROM eye_tracking_tests
		WHERE user_id = ?
		ORDER BY created_at`, userID).Scan(&data).Error
	return data, err
}
