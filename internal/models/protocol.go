package models

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ProtocolPhase describes one stage of the guided test as configured in
// protocol.yaml.
type ProtocolPhase struct {
	Name           string  `yaml:"name"`
	Pattern        string  `yaml:"pattern"`
	Duration       float64 `yaml:"duration"`
	Sweeps         int     `yaml:"sweeps,omitempty"`
	RadiusFraction float64 `yaml:"radius_fraction,omitempty"`
	Revolutions    float64 `yaml:"revolutions,omitempty"`
}

// Protocol is the test definition loaded at startup. It fixes the phase
// timing and the on-screen target pattern the client renders, so the server
// can reconstruct the expected trajectory for any screen size.
type Protocol struct {
	TestName   string          `yaml:"test_name"`
	SampleStep float64         `yaml:"sample_step"`
	Margin     float64         `yaml:"margin_fraction"`
	Phases     []ProtocolPhase `yaml:"phases"`
}

// LoadProtocol reads and parses the protocol.yaml file.
func LoadProtocol(path string) (*Protocol, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read protocol file: %w", err)
	}

	var protocol Protocol
	if err := yaml.Unmarshal(data, &protocol); err != nil {
		return nil, fmt.Errorf("failed to unmarshal protocol YAML: %w", err)
	}

	if len(protocol.Phases) != PhaseCount {
		return nil, fmt.Errorf("protocol must define exactly %d phases, got %d", PhaseCount, len(protocol.Phases))
	}
	for i, ph := range protocol.Phases {
		if ph.Duration <= 0 {
			return nil, fmt.Errorf("phase %q has non-positive duration", ph.Name)
		}
		if _, err := patternFunc(ph, 1, 1); err != nil {
			return nil, fmt.Errorf("phase %d: %w", i, err)
		}
	}
	if protocol.SampleStep <= 0 {
		protocol.SampleStep = 0.05
	}
	if protocol.Margin <= 0 {
		protocol.Margin = 0.1
	}

	return &protocol, nil
}

// TotalDuration returns the declared length of the whole test.
func (p *Protocol) TotalDuration() float64 {
	var total float64
	for _, ph := range p.Phases {
		total += ph.Duration
	}
	return total
}

// PhaseStarts returns the start timestamp of each phase, session start at 0.
func (p *Protocol) PhaseStarts() [PhaseCount]float64 {
	var starts [PhaseCount]float64
	var t float64
	for i, ph := range p.Phases {
		starts[i] = t
		t += ph.Duration
	}
	return starts
}

// BuildTrajectory samples the protocol's target patterns into per-phase
// waypoint lists for the given screen dimensions.
func (p *Protocol) BuildTrajectory(screenWidth, screenHeight float64) (*TargetTrajectory, error) {
	tr := &TargetTrajectory{}
	for i, ph := range p.Phases {
		fn, err := patternFunc(ph, screenWidth, screenHeight)
		if err != nil {
			return nil, err
		}
		var pts []TrajectoryPoint
		for t := 0.0; t <= ph.Duration; t += p.SampleStep {
			x, y := fn(t, p.Margin)
			pts = append(pts, TrajectoryPoint{T: t, X: x, Y: y})
		}
		tr.Phases[i] = pts
	}
	return tr, nil
}

// patternFunc maps a configured pattern name to a position function of
// elapsed phase time.
func patternFunc(ph ProtocolPhase, w, h float64) (func(t, margin float64) (float64, float64), error) {
	switch ph.Pattern {
	case "center":
		return func(t, margin float64) (float64, float64) {
			return w / 2, h / 2
		}, nil
	case "horizontal_sweep":
		sweeps := ph.Sweeps
		if sweeps <= 0 {
			sweeps = 1
		}
		return func(t, margin float64) (float64, float64) {
			lo, hi := w*margin, w*(1-margin)
			return lo + (hi-lo)*triangle(t/ph.Duration*float64(sweeps)), h / 2
		}, nil
	case "vertical_sweep":
		sweeps := ph.Sweeps
		if sweeps <= 0 {
			sweeps = 1
		}
		return func(t, margin float64) (float64, float64) {
			lo, hi := h*margin, h*(1-margin)
			return w / 2, lo + (hi-lo)*triangle(t/ph.Duration*float64(sweeps))
		}, nil
	case "circle":
		radius := ph.RadiusFraction
		if radius <= 0 {
			radius = 0.35
		}
		revs := ph.Revolutions
		if revs <= 0 {
			revs = 1
		}
		return func(t, margin float64) (float64, float64) {
			r := radius * math.Min(w, h) / 2
			angle := 2 * math.Pi * revs * (t / ph.Duration)
			return w/2 + r*math.Cos(angle), h/2 + r*math.Sin(angle)
		}, nil
	default:
		return nil, fmt.Errorf("unknown trajectory pattern %q", ph.Pattern)
	}
}

// triangle maps a phase fraction onto a 0→1→0 sweep, one full out-and-back
// per unit.
func triangle(u float64) float64 {
	u = math.Mod(u, 1)
	if u < 0 {
		u += 1
	}
	if u < 0.5 {
		return u * 2
	}
	return 2 - u*2
}
