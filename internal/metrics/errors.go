package metrics

import "fmt"

// InvalidSampleError marks a single structurally malformed sample. The
// validator drops such samples rather than failing the call; the type is
// surfaced only when the transport payload itself cannot be decoded into a
// sample at all.
type InvalidSampleError struct {
	Index  int
	Reason string
}

func (e *InvalidSampleError) Error() string {
	return fmt.Sprintf("invalid sample at index %d: %s", e.Index, e.Reason)
}

// InsufficientDataError means the surviving sample count, for the whole
// session or for one phase, is too small to score reliably. Phase is empty
// when the session as a whole is too sparse.
type InsufficientDataError struct {
	Phase   string
	Got     int
	Minimum int
}

func (e *InsufficientDataError) Error() string {
	if e.Phase != "" {
		return fmt.Sprintf("insufficient data: phase %q has %d samples, need at least %d", e.Phase, e.Got, e.Minimum)
	}
	return fmt.Sprintf("insufficient data: %d valid samples, need at least %d", e.Got, e.Minimum)
}

// DegenerateGeometryError means the session metadata makes distance
// normalization undefined.
type DegenerateGeometryError struct {
	Width  float64
	Height float64
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate screen geometry: %gx%g has zero diagonal", e.Width, e.Height)
}

// ConfigurationError means the supplied options or session structure are
// self-inconsistent. It is raised before any sample data is processed.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %s", e.Field, e.Reason)
}
