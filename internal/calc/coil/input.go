package coil

import (
	"Coilcalc/internal/calc/calcerr"
	"Coilcalc/internal/calc/wire"
)

type Mode string

const (
	// FromWraps computes resistance from a wrap count.
	FromWraps Mode = "wraps"
	// FromResistance computes the wrap count for a target resistance.
	FromResistance Mode = "resistance"
)

// Input is the loosely typed request a caller fills from form or JSON
// fields. Evaluate validates it field by field.
type Input struct {
	Mode             Mode     `json:"mode"`
	MaterialID       string   `json:"material_id"`
	WireDiameterMM   float64  `json:"wire_diameter_mm"`
	AWG              int      `json:"awg"`
	CoilIDMM         float64  `json:"coil_id_mm"`
	Wraps            float64  `json:"wraps"`
	TargetResistance float64  `json:"target_resistance_ohm"`
	CoilType         CoilType `json:"coil_type"`
	LegLengthMM      float64  `json:"leg_length_mm"`
	PowerW           *float64 `json:"power_w,omitempty"`
	VoltageV         *float64 `json:"voltage_v,omitempty"`
	BatteryCDR       *float64 `json:"battery_cdr_a,omitempty"`
}

// Evaluate runs the calculation selected by in.Mode. An empty mode means
// FromWraps and an empty coil type means Single. A set WireDiameterMM wins
// over AWG.
func Evaluate(in Input) (Result, error) {
	m, ok := wire.LookupMaterial(in.MaterialID)
	if !ok {
		return Result{}, calcerr.Invalid("material_id", in.MaterialID)
	}
	diameter, err := in.wireDiameter()
	if err != nil {
		return Result{}, err
	}
	if err := calcerr.Positive("coil_id_mm", in.CoilIDMM); err != nil {
		return Result{}, err
	}
	t := in.CoilType
	if t == "" {
		t = Single
	}

	switch in.Mode {
	case FromWraps, "":
		if err := calcerr.Positive("wraps", in.Wraps); err != nil {
			return Result{}, err
		}
		return Calculate(Specs{
			Material:       m,
			WireDiameterMM: diameter,
			CoilIDMM:       in.CoilIDMM,
			Wraps:          in.Wraps,
			Type:           t,
			LegLengthMM:    in.LegLengthMM,
		}, in.Drive(), in.BatteryCDR)
	case FromResistance:
		if err := calcerr.Positive("target_resistance_ohm", in.TargetResistance); err != nil {
			return Result{}, err
		}
		return SolveForResistance(Target{
			Material:       m,
			WireDiameterMM: diameter,
			CoilIDMM:       in.CoilIDMM,
			ResistanceOhm:  in.TargetResistance,
			Type:           t,
			LegLengthMM:    in.LegLengthMM,
		}, in.Drive(), in.BatteryCDR)
	default:
		return Result{}, calcerr.Invalid("mode", string(in.Mode))
	}
}

// Drive maps the optional power and voltage fields onto a Drive.
// Power wins when both are present.
func (in Input) Drive() Drive {
	switch {
	case in.PowerW != nil:
		return Power{Watts: *in.PowerW}
	case in.VoltageV != nil:
		return Voltage{Volts: *in.VoltageV}
	default:
		return nil
	}
}

func (in Input) wireDiameter() (float64, error) {
	if in.WireDiameterMM != 0 {
		if err := calcerr.Positive("wire_diameter_mm", in.WireDiameterMM); err != nil {
			return 0, err
		}
		return in.WireDiameterMM, nil
	}
	if in.AWG != 0 {
		d, ok := wire.DiameterForGauge(in.AWG)
		if !ok {
			return 0, calcerr.Invalid("awg", in.AWG)
		}
		return d, nil
	}
	return 0, calcerr.Invalid("wire_diameter_mm", in.WireDiameterMM)
}
