package battery

import (
	"math"

	"Coilcalc/internal/calc/calcerr"
)

// NominalVoltage converts mAh ratings to energy for a single Li-ion cell.
const NominalVoltage = 3.7

type LifeInput struct {
	CapacityMAh float64 `json:"capacity_mah"`
	CapacityWh  float64 `json:"capacity_wh"`
	PowerW      float64 `json:"power_w"`
	PuffSeconds float64 `json:"puff_seconds"`
}

type LifeResult struct {
	EnergyWh       float64 `json:"energy_wh"`
	RuntimeSeconds int     `json:"runtime_seconds"`
	Puffs          *int    `json:"puffs,omitempty"`
}

// Life estimates how long a cell lasts at a constant output power.
// A non-zero CapacityWh takes precedence over CapacityMAh.
func Life(in LifeInput) (LifeResult, error) {
	var energy float64
	switch {
	case in.CapacityWh != 0:
		if err := calcerr.Positive("capacity_wh", in.CapacityWh); err != nil {
			return LifeResult{}, err
		}
		energy = in.CapacityWh
	case in.CapacityMAh != 0:
		if err := calcerr.Positive("capacity_mah", in.CapacityMAh); err != nil {
			return LifeResult{}, err
		}
		energy = in.CapacityMAh * NominalVoltage / 1000.0
	default:
		return LifeResult{}, calcerr.Invalid("capacity_mah", in.CapacityMAh)
	}
	if err := calcerr.Positive("power_w", in.PowerW); err != nil {
		return LifeResult{}, err
	}
	if in.PuffSeconds != 0 {
		if err := calcerr.Positive("puff_seconds", in.PuffSeconds); err != nil {
			return LifeResult{}, err
		}
	}

	runtime := int(math.Round(energy / in.PowerW * 3600))
	res := LifeResult{EnergyWh: energy, RuntimeSeconds: runtime}
	if in.PuffSeconds > 0 {
		puffs := int(math.Round(float64(runtime) / in.PuffSeconds))
		res.Puffs = &puffs
	}
	return res, nil
}
