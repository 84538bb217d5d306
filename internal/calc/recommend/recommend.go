package recommend

import (
	"math"

	"Coilcalc/internal/calc/calcerr"
	"Coilcalc/internal/calc/coil"
	"Coilcalc/internal/calc/wire"
)

type BuildInput struct {
	Style          coil.VapingStyle `json:"style"`
	MaterialID     string           `json:"material_id"`
	WireDiameterMM float64          `json:"wire_diameter_mm"`
	AWG            int              `json:"awg"`
	CoilIDMM       float64          `json:"coil_id_mm"`
	CoilType       coil.CoilType    `json:"coil_type"`
	LegLengthMM    float64          `json:"leg_length_mm"`
	BatteryCDR     *float64         `json:"battery_cdr_a,omitempty"`
}

type BuildResult struct {
	Style            coil.VapingStyle `json:"style"`
	TargetResistance float64          `json:"target_resistance_ohm"`
	ExactWraps       float64          `json:"exact_wraps"`
	Wraps            float64          `json:"wraps"`
	PowerMinW        float64          `json:"power_min_w"`
	PowerMaxW        float64          `json:"power_max_w"`
	Build            coil.Result      `json:"build"`
	Notes            string           `json:"notes"`
}

// Build sizes a coil for a vaping style: it aims at the middle of the
// style's resistance band, rounds the wrap count to a half wrap and
// evaluates the result at the middle of the style's power band.
func Build(in BuildInput) (BuildResult, error) {
	band, ok := in.Style.Range()
	if !ok {
		return BuildResult{}, calcerr.Invalid("style", string(in.Style))
	}
	m, ok := wire.LookupMaterial(in.MaterialID)
	if !ok {
		return BuildResult{}, calcerr.Invalid("material_id", in.MaterialID)
	}
	if in.CoilType == "" {
		in.CoilType = coil.Single
	}

	probe := coil.Input{
		MaterialID:     in.MaterialID,
		WireDiameterMM: in.WireDiameterMM,
		AWG:            in.AWG,
		CoilIDMM:       in.CoilIDMM,
		CoilType:       in.CoilType,
		LegLengthMM:    in.LegLengthMM,
		BatteryCDR:     in.BatteryCDR,
	}
	diameter := in.WireDiameterMM
	if diameter == 0 {
		d, ok := wire.DiameterForGauge(in.AWG)
		if !ok {
			return BuildResult{}, calcerr.Invalid("awg", in.AWG)
		}
		diameter = d
	}

	target := (band.ResistanceMin + band.ResistanceMax) / 2
	exact, err := coil.WrapsForResistance(m, diameter, in.CoilIDMM, target, in.CoilType, in.LegLengthMM)
	if err != nil {
		return BuildResult{}, err
	}
	wraps := math.Max(math.Round(exact*2)/2, 0.5)

	power := (band.PowerMin + band.PowerMax) / 2
	probe.Wraps = wraps
	probe.PowerW = &power
	res, err := coil.Evaluate(probe)
	if err != nil {
		return BuildResult{}, err
	}

	notes := "Wraps rounded to the nearest half wrap."
	if res.Style == nil || *res.Style != in.Style {
		notes = "Rounded build falls outside the style's resistance band; adjust the inner diameter or gauge."
	}

	return BuildResult{
		Style:            in.Style,
		TargetResistance: target,
		ExactWraps:       exact,
		Wraps:            wraps,
		PowerMinW:        band.PowerMin,
		PowerMaxW:        band.PowerMax,
		Build:            res,
		Notes:            notes,
	}, nil
}
