package repository

import (
	"context"
	"time"

	"netracare-go/internal/database"
	"netracare-go/internal/models"
)

func SaveEyeTrackingTest(ctx context.Context, test *models.EyeTrackingTest) error {
	return database.DB.WithContext(ctx).Create(test).Error
}

func ListEyeTrackingTests(ctx context.Context, userID, limit, offset int) ([]models.EyeTrackingTest, int64, error) {
	var tests []models.EyeTrackingTest
	var total int64

	if err := database.DB.WithContext(ctx).Model(&models.EyeTrackingTest{}).
		Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&tests).Error
	return tests, total, err
}

func GetEyeTrackingTest(ctx context.Context, testID, userID int) (*models.EyeTrackingTest, error) {
	test := &models.EyeTrackingTest{}
	err := database.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", testID, userID).
		First(test).Error
	if err != nil {
		return nil, err
	}
	return test, nil
}

func GetLatestEyeTrackingTest(ctx context.Context, userID int) (*models.EyeTrackingTest, error) {
	test := &models.EyeTrackingTest{}
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(test).Error
	if err != nil {
		return nil, err
	}
	return test, nil
}

func DeleteEyeTrackingTest(ctx context.Context, testID, userID int) (bool, error) {
	result := database.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", testID, userID).
		Delete(&models.EyeTrackingTest{})
	return result.RowsAffected > 0, result.Error
}

// UserTestStatistics aggregates a user's eye-tracking history for the
// statistics endpoint.
type UserTestStatistics struct {
	TotalTests           int64      `json:"total_tests"`
	AverageAccuracy      float64    `json:"average_accuracy"`
	BestAccuracy         float64    `json:"best_accuracy"`
	LatestClassification string     `json:"latest_classification"`
	LatestDate           *time.Time `json:"latest_date"`
}

func GetUserTestStatistics(ctx context.Context, userID int) (*UserTestStatistics, error) {
	stats := &UserTestStatistics{}

	row := struct {
		Total int64
		Avg   float64
		Best  float64
	}{}
	err := database.DB.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total,
		       COALESCE(AVG(gaze_accuracy), 0) AS avg,
		       COALESCE(MAX(gaze_accuracy), 0) AS best
		FROM eye_tracking_tests
		WHERE user_id = ?`, userID).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	stats.TotalTests = row.Total
	stats.AverageAccuracy = row.Avg
	stats.BestAccuracy = row.Best

	if row.Total > 0 {
		latest, err := GetLatestEyeTrackingTest(ctx, userID)
		if err != nil {
			return nil, err
		}
		stats.LatestClassification = latest.PerformanceClassification
		stats.LatestDate = &latest.CreatedAt
	}
	return stats, nil
}

// StripRawDataBefore clears raw sample payloads from tests older than the
// cutoff. Scores and summary stats stay; only the bulky jsonb goes.
func StripRawDataBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := database.DB.WithContext(ctx).Model(&models.EyeTrackingTest{}).
		Where("created_at < ? AND raw_data IS NOT NULL", cutoff).
		Update("raw_data", nil)
	return result.RowsAffected, result.Error
}

func SaveColourVisionTest(ctx context.Context, test *models.ColourVisionTest) error {
	return database.DB.WithContext(ctx).Create(test).Error
}

func SaveVisualAcuityTest(ctx context.Context, test *models.VisualAcuityTest) error {
	return database.DB.WithContext(ctx).Create(test).Error
}
