package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netracare-go/internal/models"
)

// flatTrajectory builds a trajectory whose target sits at a fixed point for
// the whole of every phase.
func flatTrajectory(x, y, phaseDuration float64) *models.TargetTrajectory {
	tr := &models.TargetTrajectory{}
	for p := 0; p < models.PhaseCount; p++ {
		tr.Phases[p] = []models.TrajectoryPoint{
			{T: 0, X: x, Y: y},
			{T: phaseDuration, X: x, Y: y},
		}
	}
	return tr
}

// steadySession builds a 40 second recording on a 1000x1000 screen with n
// evenly spaced samples, all fixating the screen center with identical
// saccade velocities. Every analyzer sees a perfect signal.
func steadySession(n int) *models.Session {
	session := &models.Session{
		TestName:     "Eye Movement Screening",
		ScreenWidth:  1000,
		ScreenHeight: 1000,
		Duration:     40,
		PhaseStarts:  [models.PhaseCount]float64{0, 10, 20, 30},
	}
	step := session.Duration / float64(n)
	for i := 0; i < n; i++ {
		session.Samples = append(session.Samples, models.GazeSample{
			Timestamp:          float64(i) * step,
			GazeX:              500,
			GazeY:              500,
			LeftPupilDiameter:  4,
			RightPupilDiameter: 4,
			FixationDuration:   0.2,
			SaccadeVelocity:    300,
		})
	}
	return session
}

func TestScoreSessionPerfectRecording(t *testing.T) {
	session := steadySession(40)
	trajectory := flatTrajectory(500, 500, 10)

	result, err := ScoreSession(session, trajectory, ScoringOptions{})
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.GazeAccuracy)
	assert.Equal(t, 100.0, result.FixationStabilityScore)
	assert.Equal(t, 100.0, result.SaccadeConsistencyScore)
	assert.Equal(t, 100.0, result.OverallPerformanceScore)
	assert.Equal(t, "Excellent", result.Classification)
	assert.Equal(t, 40, result.ValidSamples)
	assert.Equal(t, 0, result.DroppedSamples)
	for p := 0; p < models.PhaseCount; p++ {
		assert.Equal(t, 10, result.PhaseSampleCounts[p], "phase %d", p)
	}
}

func TestScoreSessionScoresStayInRange(t *testing.T) {
	// A noisy recording: gaze far from target, jittery fixations, wildly
	// varying saccade velocities.
	session := steadySession(40)
	for i := range session.Samples {
		session.Samples[i].GazeX = float64((i * 137) % 1000)
		session.Samples[i].GazeY = float64((i * 211) % 1000)
		session.Samples[i].SaccadeVelocity = 150 + float64(i%7)*400
	}
	trajectory := flatTrajectory(500, 500, 10)

	result, err := ScoreSession(session, trajectory, ScoringOptions{})
	require.NoError(t, err)

	for name, score := range map[string]float64{
		"accuracy":    result.GazeAccuracy,
		"stability":   result.FixationStabilityScore,
		"consistency": result.SaccadeConsistencyScore,
		"overall":     result.OverallPerformanceScore,
	} {
		assert.GreaterOrEqual(t, score, 0.0, name)
		assert.LessOrEqual(t, score, 100.0, name)
	}
}

func TestScoreSessionDeterministic(t *testing.T) {
	session := steadySession(40)
	for i := range session.Samples {
		session.Samples[i].GazeX = float64((i * 137) % 1000)
		session.Samples[i].SaccadeVelocity = 150 + float64(i%5)*123.4
	}
	trajectory := flatTrajectory(500, 500, 10)

	first, err := ScoreSession(session, trajectory, ScoringOptions{})
	require.NoError(t, err)
	second, err := ScoreSession(session, trajectory, ScoringOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScoreSessionAccuracyOnlyWeights(t *testing.T) {
	session := steadySession(40)
	// Fixed offset from the target so accuracy lands strictly below 100.
	for i := range session.Samples {
		session.Samples[i].GazeX = 600
	}
	trajectory := flatTrajectory(500, 500, 10)

	opts := ScoringOptions{AccuracyWeight: 1}
	result, err := ScoreSession(session, trajectory, opts)
	require.NoError(t, err)

	assert.Less(t, result.GazeAccuracy, 100.0)
	assert.Equal(t, result.GazeAccuracy, result.OverallPerformanceScore)
}

func TestScoreSessionWeightedAggregationExample(t *testing.T) {
	overall := round2(80*0.34 + 70*0.33 + 60*0.33)
	assert.Equal(t, 70.1, overall)
	assert.Equal(t, "Fair", PerformanceLevels.Classify(overall))
}

func TestScoreSessionEmptyPhaseFails(t *testing.T) {
	session := steadySession(40)
	// Cram every sample into the calibration window.
	step := 10.0 / float64(len(session.Samples))
	for i := range session.Samples {
		session.Samples[i].Timestamp = float64(i) * step
	}
	trajectory := flatTrajectory(500, 500, 10)

	result, err := ScoreSession(session, trajectory, ScoringOptions{})
	require.Error(t, err)
	assert.Nil(t, result)

	var insufficient *InsufficientDataError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "horizontal", insufficient.Phase)
}

func TestScoreSessionAllSamplesInvalid(t *testing.T) {
	session := steadySession(40)
	for i := range session.Samples {
		session.Samples[i].GazeX = -5
	}
	trajectory := flatTrajectory(500, 500, 10)

	_, err := ScoreSession(session, trajectory, ScoringOptions{})
	var insufficient *InsufficientDataError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, insufficient.Got)
	assert.Equal(t, DefaultMinValidSamples, insufficient.Minimum)
}

func TestScoreSessionDegenerateGeometry(t *testing.T) {
	session := steadySession(40)
	session.ScreenWidth = 0
	session.ScreenHeight = 0
	for i := range session.Samples {
		session.Samples[i].GazeX = 0
		session.Samples[i].GazeY = 0
	}
	trajectory := flatTrajectory(0, 0, 10)

	_, err := ScoreSession(session, trajectory, ScoringOptions{})
	var degenerate *DegenerateGeometryError
	require.ErrorAs(t, err, &degenerate)
}

func TestScoreSessionMissingTrajectoryPhase(t *testing.T) {
	session := steadySession(40)
	trajectory := flatTrajectory(500, 500, 10)
	trajectory.Phases[models.PhaseCircular] = nil

	_, err := ScoreSession(session, trajectory, ScoringOptions{})
	var configErr *ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "trajectory", configErr.Field)
}

func TestScoreSessionRejectsBadWeights(t *testing.T) {
	session := steadySession(40)
	trajectory := flatTrajectory(500, 500, 10)

	opts := ScoringOptions{AccuracyWeight: 0.5, StabilityWeight: 0.5, ConsistencyWeight: 0.5}
	_, err := ScoreSession(session, trajectory, opts)
	var configErr *ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "weights", configErr.Field)
}

func TestScoreSessionReportsPupilStats(t *testing.T) {
	session := steadySession(40)
	for i := range session.Samples {
		session.Samples[i].LeftPupilDiameter = 3 + float64(i%3)
		session.Samples[i].RightPupilDiameter = 0 // tracker silent on the right eye
	}
	trajectory := flatTrajectory(500, 500, 10)

	result, err := ScoreSession(session, trajectory, ScoringOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3.0, result.LeftPupil.Min)
	assert.Equal(t, 5.0, result.LeftPupil.Max)
	assert.Equal(t, models.PupilStats{}, result.RightPupil)
}

func TestScoreSessionNoPartialResultOnError(t *testing.T) {
	session := steadySession(5)
	trajectory := flatTrajectory(500, 500, 10)

	result, err := ScoreSession(session, trajectory, ScoringOptions{})
	require.True(t, errors.As(err, new(*InsufficientDataError)))
	assert.Nil(t, result)
}
