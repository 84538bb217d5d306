package wire

import "math"

// Gauge pairs an AWG number with its bare wire diameter.
type Gauge struct {
	AWG        int     `json:"awg"`
	DiameterMM float64 `json:"diameter_mm"`
}

var gauges = [...]Gauge{
	{20, 0.812},
	{22, 0.644},
	{24, 0.511},
	{26, 0.405},
	{28, 0.321},
	{30, 0.255},
	{32, 0.202},
	{34, 0.160},
	{36, 0.127},
	{38, 0.101},
	{40, 0.0799},
}

func Gauges() []Gauge {
	out := make([]Gauge, len(gauges))
	copy(out, gauges[:])
	return out
}

// DiameterForGauge returns the diameter in mm for a tabulated AWG.
func DiameterForGauge(awg int) (float64, bool) {
	for _, g := range gauges {
		if g.AWG == awg {
			return g.DiameterMM, true
		}
	}
	return 0, false
}

// GaugeForDiameter returns the tabulated gauge closest to mm.
// On a tie the entry declared first wins.
func GaugeForDiameter(mm float64) Gauge {
	best := gauges[0]
	bestDiff := math.Abs(best.DiameterMM - mm)
	for _, g := range gauges[1:] {
		if d := math.Abs(g.DiameterMM - mm); d < bestDiff {
			best, bestDiff = g, d
		}
	}
	return best
}
