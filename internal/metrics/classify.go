package metrics

// ThresholdBand maps a minimum score to a label.
type ThresholdBand struct {
	Min   float64
	Label string
}

// ThresholdTable is an ordered set of classification bands, evaluated high to
// low with the first match winning. Every score in [0, 100] maps to exactly
// one label: the last band acts as the catch-all.
type ThresholdTable []ThresholdBand

// Classify returns the label of the first band whose minimum the score meets.
func (t ThresholdTable) Classify(score float64) string {
	for _, band := range t {
		if score >= band.Min {
			return band.Label
		}
	}
	return t[len(t)-1].Label
}

// PerformanceLevels is the four-level table for eye-movement performance.
var PerformanceLevels = ThresholdTable{
	{Min: 90, Label: "Excellent"},
	{Min: 75, Label: "Good"},
	{Min: 60, Label: "Fair"},
	{Min: 0, Label: "Poor"},
}

// ScreeningLevels is the five-level table used by the colour-vision screening
// elsewhere in the app. Deliberately kept separate from PerformanceLevels;
// the two tests never shared a scheme.
var ScreeningLevels = ThresholdTable{
	{Min: 90, Label: "Normal Color Vision"},
	{Min: 80, Label: "Borderline - Possible Mild Deficiency"},
	{Min: 60, Label: "Mild Color Vision Deficiency"},
	{Min: 40, Label: "Moderate Color Vision Deficiency"},
	{Min: 0, Label: "Severe Color Vision Deficiency"},
}
