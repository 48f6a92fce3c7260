package models

// TrajectoryPoint is one waypoint of the expected target path. T is elapsed
// time within the phase, in seconds.
type TrajectoryPoint struct {
	T float64 `json:"t"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TargetTrajectory holds, per phase, the ordered waypoints of the on-screen
// target the user was asked to follow. Waypoints are sorted by T. Read-only
// input to the scoring engine.
type TargetTrajectory struct {
	Phases [PhaseCount][]TrajectoryPoint
}

// TargetAt returns the expected target position at the given elapsed time
// within a phase, interpolating linearly between waypoints. Times before the
// first or after the last waypoint clamp to the nearest endpoint. The second
// return is false when the phase has no waypoints at all.
func (tr *TargetTrajectory) TargetAt(p Phase, elapsed float64) (float64, float64, bool) {
	pts := tr.Phases[p]
	if len(pts) == 0 {
		return 0, 0, false
	}
	if elapsed <= pts[0].T {
		return pts[0].X, pts[0].Y, true
	}
	last := pts[len(pts)-1]
	if elapsed >= last.T {
		return last.X, last.Y, true
	}

	// Find the first waypoint at or after the elapsed time.
	lo, hi := 0, len(pts)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if pts[mid].T < elapsed {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	b := pts[lo]
	a := pts[lo-1]
	span := b.T - a.T
	if span <= 0 {
		return b.X, b.Y, true
	}
	f := (elapsed - a.T) / span
	return a.X + (b.X-a.X)*f, a.Y + (b.Y-a.Y)*f, true
}
