package coil

// CoilType is the build topology. Its multiplier scales the single-strand
// resistance.
type CoilType string

const (
	Single   CoilType = "single"
	Dual     CoilType = "dual"
	Parallel CoilType = "parallel"
	Twisted  CoilType = "twisted"
	// Clapton uses a flat 0.8 factor, not a composite wire model.
	Clapton CoilType = "clapton"
)

var coilTypes = [...]struct {
	t    CoilType
	name string
	mult float64
}{
	{Single, "Single Coil", 1.0},
	{Dual, "Dual Coil", 0.5},
	{Parallel, "Parallel", 0.5},
	{Twisted, "Twisted", 0.5},
	{Clapton, "Clapton", 0.8},
}

// CoilTypes lists every topology in declaration order.
func CoilTypes() []CoilType {
	out := make([]CoilType, 0, len(coilTypes))
	for _, c := range coilTypes {
		out = append(out, c.t)
	}
	return out
}

func (t CoilType) Valid() bool {
	_, ok := t.lookup()
	return ok
}

// Multiplier returns 0 for an unknown topology.
func (t CoilType) Multiplier() float64 {
	m, _ := t.lookup()
	return m
}

func (t CoilType) DisplayName() string {
	for _, c := range coilTypes {
		if c.t == t {
			return c.name
		}
	}
	return string(t)
}

func (t CoilType) lookup() (float64, bool) {
	for _, c := range coilTypes {
		if c.t == t {
			return c.mult, true
		}
	}
	return 0, false
}

// VapingStyle is a draw style with a characteristic resistance band.
type VapingStyle string

const (
	MTL VapingStyle = "MTL"
	RDL VapingStyle = "RDL"
	DL  VapingStyle = "DL"
)

// StyleRange is the inclusive resistance band and suggested power band of a style.
type StyleRange struct {
	Style         VapingStyle `json:"style"`
	ResistanceMin float64     `json:"resistance_min_ohm"`
	ResistanceMax float64     `json:"resistance_max_ohm"`
	PowerMin      float64     `json:"power_min_w"`
	PowerMax      float64     `json:"power_max_w"`
}

var styles = [...]StyleRange{
	{MTL, 0.6, 2.8, 8, 18},
	{RDL, 0.5, 0.9, 15, 35},
	{DL, 0.1, 0.6, 40, 120},
}

// Styles returns the style table in declaration order.
func Styles() []StyleRange {
	out := make([]StyleRange, len(styles))
	copy(out, styles[:])
	return out
}

// Range returns the band for s; ok is false for an unknown style.
func (s VapingStyle) Range() (StyleRange, bool) {
	for _, r := range styles {
		if r.Style == s {
			return r, true
		}
	}
	return StyleRange{}, false
}

func (r StyleRange) Contains(ohms float64) bool {
	return ohms >= r.ResistanceMin && ohms <= r.ResistanceMax
}

// ClassifyStyle returns the style whose band contains ohms. The bands
// overlap, so the narrowest containing band wins and declaration order
// breaks ties. The shared 0.6 boundary goes to RDL.
func ClassifyStyle(ohms float64) (VapingStyle, bool) {
	var best StyleRange
	found := false
	for _, r := range styles {
		if !r.Contains(ohms) {
			continue
		}
		if !found || r.ResistanceMax-r.ResistanceMin < best.ResistanceMax-best.ResistanceMin {
			best, found = r, true
		}
	}
	return best.Style, found
}
