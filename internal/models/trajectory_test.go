package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetAtInterpolates(t *testing.T) {
	tr := &TargetTrajectory{}
	tr.Phases[PhaseHorizontal] = []TrajectoryPoint{
		{T: 0, X: 100, Y: 500},
		{T: 4, X: 900, Y: 500},
	}

	x, y, ok := tr.TargetAt(PhaseHorizontal, 2)
	require.True(t, ok)
	assert.Equal(t, 500.0, x)
	assert.Equal(t, 500.0, y)

	x, _, ok = tr.TargetAt(PhaseHorizontal, 1)
	require.True(t, ok)
	assert.Equal(t, 300.0, x)
}

func TestTargetAtClampsToEndpoints(t *testing.T) {
	tr := &TargetTrajectory{}
	tr.Phases[PhaseCalibration] = []TrajectoryPoint{
		{T: 1, X: 100, Y: 200},
		{T: 3, X: 300, Y: 400},
	}

	x, y, ok := tr.TargetAt(PhaseCalibration, -5)
	require.True(t, ok)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 200.0, y)

	x, y, ok = tr.TargetAt(PhaseCalibration, 10)
	require.True(t, ok)
	assert.Equal(t, 300.0, x)
	assert.Equal(t, 400.0, y)
}

func TestTargetAtEmptyPhase(t *testing.T) {
	tr := &TargetTrajectory{}
	_, _, ok := tr.TargetAt(PhaseVertical, 1)
	assert.False(t, ok)
}

func TestTargetAtExactWaypoint(t *testing.T) {
	tr := &TargetTrajectory{}
	tr.Phases[PhaseCircular] = []TrajectoryPoint{
		{T: 0, X: 0, Y: 0},
		{T: 1, X: 10, Y: 10},
		{T: 2, X: 20, Y: 0},
	}

	x, y, ok := tr.TargetAt(PhaseCircular, 1)
	require.True(t, ok)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 10.0, y)
}

func TestSessionDiagonal(t *testing.T) {
	s := &Session{ScreenWidth: 3, ScreenHeight: 4}
	assert.Equal(t, 5.0, s.Diagonal())

	s = &Session{}
	assert.Equal(t, 0.0, s.Diagonal())
}

func TestSessionPhaseEnd(t *testing.T) {
	s := &Session{Duration: 40, PhaseStarts: [PhaseCount]float64{0, 10, 20, 30}}
	assert.Equal(t, 10.0, s.PhaseEnd(PhaseCalibration))
	assert.Equal(t, 30.0, s.PhaseEnd(PhaseVertical))
	assert.Equal(t, 40.0, s.PhaseEnd(PhaseCircular))
}
