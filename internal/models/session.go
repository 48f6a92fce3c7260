package models

import "math"

// Phase identifies one of the four ordered stages of the guided eye test.
type Phase int

const (
	PhaseCalibration Phase = iota // center fixation
	PhaseHorizontal               // horizontal sweep
	PhaseVertical                 // vertical sweep
	PhaseCircular                 // circular sweep

	PhaseCount = 4
)

var phaseNames = [PhaseCount]string{"calibration", "horizontal", "vertical", "circular"}

func (p Phase) String() string {
	if p < 0 || p >= PhaseCount {
		return "unknown"
	}
	return phaseNames[p]
}

// GazeSample is a single observation from the capture layer. Timestamp is
// seconds from session start. FixationDuration and SaccadeVelocity are 0 when
// the sample is not part of a fixation or saccade. Pupil diameters are in
// millimeters; 0 means the eye tracker did not report one.
type GazeSample struct {
	Timestamp          float64 `json:"timestamp"`
	GazeX              float64 `json:"gaze_x"`
	GazeY              float64 `json:"gaze_y"`
	LeftPupilDiameter  float64 `json:"left_pupil_diameter"`
	RightPupilDiameter float64 `json:"right_pupil_diameter"`
	FixationDuration   float64 `json:"fixation_duration"`
	SaccadeVelocity    float64 `json:"saccade_velocity"`
}

// Session is one complete recording of a guided eye test, assembled by the
// transport layer. PhaseStarts holds the start timestamp of each phase; the
// first entry is the session start and the last phase runs to Duration. The
// scoring engine never mutates a Session.
type Session struct {
	TestName     string              `json:"test_name"`
	ScreenWidth  float64             `json:"screen_width"`
	ScreenHeight float64             `json:"screen_height"`
	Duration     float64             `json:"test_duration"`
	PhaseStarts  [PhaseCount]float64 `json:"phase_starts"`
	Samples      []GazeSample        `json:"data_points"`
}

// Diagonal returns the screen diagonal in pixels, the normalization base for
// all resolution-independent metrics.
func (s *Session) Diagonal() float64 {
	return math.Hypot(s.ScreenWidth, s.ScreenHeight)
}

// PhaseEnd returns the timestamp at which the given phase ends.
func (s *Session) PhaseEnd(p Phase) float64 {
	if p >= PhaseCount-1 {
		return s.Duration
	}
	return s.PhaseStarts[p+1]
}
