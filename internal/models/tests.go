package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// EyeTrackingTest is the persisted record of one scored eye-movement session.
type EyeTrackingTest struct {
	ID     int  `gorm:"primaryKey"`
	UserID int  `gorm:"not null;index"`
	User   User `gorm:"foreignKey:UserID"`

	TestName     string          `gorm:"size:120"`
	TestDuration float64         `gorm:"not null"`
	ScreenWidth  int             `gorm:"default:1920"`
	ScreenHeight int             `gorm:"default:1080"`
	PhaseStarts  pq.Float64Array `gorm:"type:double precision[]"`

	GazeAccuracy              float64
	FixationStabilityScore    float64
	SaccadeConsistencyScore   float64
	OverallPerformanceScore   float64
	PerformanceClassification string `gorm:"size:20"`

	ValidSamples   int
	DroppedSamples int

	PupilMetrics json.RawMessage `gorm:"type:jsonb"`
	RawData      json.RawMessage `gorm:"type:jsonb"`

	Status    string `gorm:"size:20;default:completed"`
	CreatedAt time.Time
}

// SetPupilMetrics serializes per-eye pupil statistics into the jsonb column.
func (t *EyeTrackingTest) SetPupilMetrics(left, right PupilStats) error {
	data, err := json.Marshal(map[string]PupilStats{"left_pupil": left, "right_pupil": right})
	if err != nil {
		return err
	}
	t.PupilMetrics = data
	return nil
}

// ColourVisionTest is the persisted record of one Ishihara-style plate test.
type ColourVisionTest struct {
	ID     int  `gorm:"primaryKey"`
	UserID int  `gorm:"not null;index"`
	User   User `gorm:"foreignKey:UserID"`

	CorrectCount       int
	TotalPlates        int
	Score              int
	ControlPlateFailed bool
	Classification     string `gorm:"size:80"`

	CreatedAt time.Time
}

// VisualAcuityTest is the persisted record of one acuity chart test.
type VisualAcuityTest struct {
	ID     int  `gorm:"primaryKey"`
	UserID int  `gorm:"not null;index"`
	User   User `gorm:"foreignKey:UserID"`

	CorrectCount int
	TotalShown   int
	LogMAR       float64
	Snellen      string `gorm:"size:10"`
	Severity     string `gorm:"size:40"`

	CreatedAt time.Time
}
