package coil

import (
	"math"

	"Coilcalc/internal/calc/battery"
	"Coilcalc/internal/calc/calcerr"
	"Coilcalc/internal/calc/wire"
)

const (
	// DefaultLegLengthMM is used when Specs.LegLengthMM is zero.
	DefaultLegLengthMM = 5.0
	// MinWraps is the floor returned by WrapsForResistance.
	MinWraps = 0.1
)

type Specs struct {
	Material       wire.Material
	WireDiameterMM float64
	CoilIDMM       float64
	Wraps          float64
	Type           CoilType
	// LegLengthMM is the straight lead on each side of the coil body.
	LegLengthMM float64
}

// Drive selects how the coil is fired: Power or Voltage. A nil Drive
// leaves the electrical fields of the result empty.
type Drive interface {
	drive()
}

// Power fires the coil in wattage mode.
type Power struct{ Watts float64 }

// Voltage fires the coil in mechanical/voltage mode.
type Voltage struct{ Volts float64 }

func (Power) drive()   {}
func (Voltage) drive() {}

type Result struct {
	Resistance    float64             `json:"resistance_ohm"`
	WrapsNeeded   *float64            `json:"wraps_needed,omitempty"`
	WireLength    float64             `json:"wire_length_mm"`
	SurfaceArea   float64             `json:"surface_area_mm2"`
	Current       *float64            `json:"current_a,omitempty"`
	Voltage       *float64            `json:"voltage_v,omitempty"`
	Power         *float64            `json:"power_w,omitempty"`
	HeatFlux      *float64            `json:"heat_flux_w_mm2,omitempty"`
	Style         *VapingStyle        `json:"style,omitempty"`
	SafetyLevel   battery.SafetyLevel `json:"safety_level"`
	SafetyMargin  *float64            `json:"safety_margin,omitempty"`
	SafetyMessage string              `json:"safety_message"`
}

// CalculateResistance returns the net coil resistance in ohms.
func CalculateResistance(specs Specs) (float64, error) {
	specs, err := specs.normalize()
	if err != nil {
		return 0, err
	}
	return resistance(specs), nil
}

// WrapsForResistance solves the resistance formula for the wrap count that
// yields targetOhms. The answer is never below MinWraps, which is what
// targets too small to cover the two leads produce.
func WrapsForResistance(m wire.Material, wireDiameterMM, coilIDMM, targetOhms float64, t CoilType, legLengthMM float64) (float64, error) {
	if err := calcerr.Positive("resistivity", m.Resistivity); err != nil {
		return 0, err
	}
	if err := calcerr.Positive("wire_diameter_mm", wireDiameterMM); err != nil {
		return 0, err
	}
	if err := calcerr.Positive("coil_id_mm", coilIDMM); err != nil {
		return 0, err
	}
	if err := calcerr.Positive("target_resistance_ohm", targetOhms); err != nil {
		return 0, err
	}
	if !t.Valid() {
		return 0, calcerr.Invalid("coil_type", string(t))
	}
	leg, err := legLength(legLengthMM)
	if err != nil {
		return 0, err
	}

	adjusted := targetOhms / t.Multiplier()
	area := crossSection(wireDiameterMM)
	// ρ stays in Ω·mm²/m and area in mm², so lengths are in metres.
	legsM := 2 * leg / 1000.0
	circumferenceM := math.Pi * (coilIDMM + wireDiameterMM) / 1000.0

	wraps := (adjusted*area/m.Resistivity - legsM) / circumferenceM
	return math.Max(wraps, MinWraps), nil
}

// Calculate evaluates a build. Power takes precedence over Voltage by
// construction of Drive; batteryCDR, when set, rates the resulting current.
func Calculate(specs Specs, d Drive, batteryCDR *float64) (Result, error) {
	specs, err := specs.normalize()
	if err != nil {
		return Result{}, err
	}
	if batteryCDR != nil {
		if err := calcerr.Positive("battery_cdr_a", *batteryCDR); err != nil {
			return Result{}, err
		}
	}

	ohms := resistance(specs)
	length := wireLength(specs)
	area := surfaceArea(specs)

	res := Result{
		Resistance:  round(ohms, 3),
		WireLength:  round(length, 2),
		SurfaceArea: round(area, 2),
		SafetyLevel: battery.LevelUnknown,
	}

	var current, voltage, power float64
	switch d := d.(type) {
	case Power:
		if err := calcerr.Positive("power_w", d.Watts); err != nil {
			return Result{}, err
		}
		power = d.Watts
		voltage = math.Sqrt(power * ohms)
		current = power / voltage
	case Voltage:
		if err := calcerr.Positive("voltage_v", d.Volts); err != nil {
			return Result{}, err
		}
		voltage = d.Volts
		power = voltage * voltage / ohms
		current = voltage / ohms
	}

	if d != nil {
		res.Current = ptr(round(current, 2))
		res.Voltage = ptr(round(voltage, 2))
		res.Power = ptr(round(power, 1))
		res.HeatFlux = ptr(round(power/area, 3))
	}

	if style, ok := ClassifyStyle(ohms); ok {
		res.Style = &style
	}

	if d != nil && batteryCDR != nil {
		check, err := battery.CheckCurrent(*batteryCDR, current)
		if err != nil {
			return Result{}, err
		}
		res.SafetyLevel = check.Level
		res.SafetyMargin = ptr(check.SafetyMargin)
	}

	return res, nil
}

// Target describes the inverse problem: a build with a resistance goal
// instead of a wrap count.
type Target struct {
	Material       wire.Material
	WireDiameterMM float64
	CoilIDMM       float64
	ResistanceOhm  float64
	Type           CoilType
	LegLengthMM    float64
}

// SolveForResistance solves the wrap count for t and evaluates the
// resulting build. WrapsNeeded carries the unrounded solution.
func SolveForResistance(t Target, d Drive, batteryCDR *float64) (Result, error) {
	wraps, err := WrapsForResistance(t.Material, t.WireDiameterMM, t.CoilIDMM, t.ResistanceOhm, t.Type, t.LegLengthMM)
	if err != nil {
		return Result{}, err
	}
	res, err := Calculate(Specs{
		Material:       t.Material,
		WireDiameterMM: t.WireDiameterMM,
		CoilIDMM:       t.CoilIDMM,
		Wraps:          wraps,
		Type:           t.Type,
		LegLengthMM:    t.LegLengthMM,
	}, d, batteryCDR)
	if err != nil {
		return Result{}, err
	}
	res.WrapsNeeded = &wraps
	return res, nil
}

func (s Specs) normalize() (Specs, error) {
	if err := calcerr.Positive("resistivity", s.Material.Resistivity); err != nil {
		return s, err
	}
	if err := calcerr.Positive("wire_diameter_mm", s.WireDiameterMM); err != nil {
		return s, err
	}
	if err := calcerr.Positive("coil_id_mm", s.CoilIDMM); err != nil {
		return s, err
	}
	if err := calcerr.Positive("wraps", s.Wraps); err != nil {
		return s, err
	}
	if !s.Type.Valid() {
		return s, calcerr.Invalid("coil_type", string(s.Type))
	}
	leg, err := legLength(s.LegLengthMM)
	if err != nil {
		return s, err
	}
	s.LegLengthMM = leg
	return s, nil
}

func legLength(mm float64) (float64, error) {
	if mm == 0 {
		return DefaultLegLengthMM, nil
	}
	if err := calcerr.Positive("leg_length_mm", mm); err != nil {
		return 0, err
	}
	return mm, nil
}

func resistance(s Specs) float64 {
	lengthM := wireLength(s) / 1000.0
	single := s.Material.Resistivity * lengthM / crossSection(s.WireDiameterMM)
	return single * s.Type.Multiplier()
}

// wireLength follows the wire centreline: each wrap spans the inner
// diameter plus one wire diameter, plus both leads.
func wireLength(s Specs) float64 {
	circumference := math.Pi * (s.CoilIDMM + s.WireDiameterMM)
	return s.Wraps*circumference + 2*s.LegLengthMM
}

func crossSection(diameterMM float64) float64 {
	r := diameterMM / 2.0
	return math.Pi * r * r
}

// surfaceArea treats the coil body as a cylinder wraps*d tall.
func surfaceArea(s Specs) float64 {
	radius := (s.CoilIDMM + s.WireDiameterMM) / 2.0
	height := s.Wraps * s.WireDiameterMM
	return 2 * math.Pi * radius * height
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.RoundToEven(v*p) / p
}

func ptr[T any](v T) *T { return &v }
