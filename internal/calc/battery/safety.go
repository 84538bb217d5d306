package battery

import (
	"math"

	"Coilcalc/internal/calc/calcerr"
)

// SafetyLevel rates a current draw against a cell's continuous discharge rating.
type SafetyLevel string

const (
	LevelSafe    SafetyLevel = "SAFE"
	LevelWarning SafetyLevel = "WARNING"
	LevelDanger  SafetyLevel = "DANGER"
	LevelUnknown SafetyLevel = "UNKNOWN"
)

// SafeFraction is the share of the CDR that may be drawn before WARNING,
// leaving a 20% reserve.
const SafeFraction = 0.80

var levelColors = map[SafetyLevel]string{
	LevelSafe:    "#4CAF50",
	LevelWarning: "#FF9800",
	LevelDanger:  "#F44336",
	LevelUnknown: "#9E9E9E",
}

// Color returns the display color as a hex string.
func (l SafetyLevel) Color() string {
	if c, ok := levelColors[l]; ok {
		return c
	}
	return levelColors[LevelUnknown]
}

// Severity orders the levels; UNKNOWN ranks below SAFE.
func (l SafetyLevel) Severity() int {
	switch l {
	case LevelSafe:
		return 1
	case LevelWarning:
		return 2
	case LevelDanger:
		return 3
	default:
		return 0
	}
}

type Check struct {
	BatteryCDR   float64     `json:"battery_cdr_a"`
	Current      float64     `json:"current_a"`
	SafeLimit    float64     `json:"safe_limit_a"`
	SafetyMargin float64     `json:"safety_margin"`
	Level        SafetyLevel `json:"level"`
}

// CheckCurrent compares current against cdr. The margin goes negative when
// current exceeds the rating. The safe limit is cdr*SafeFraction in binary
// floating point, so a current exactly at 80% of a decimal rating such as
// 0.7 A may land just above the limit and rate WARNING.
func CheckCurrent(cdr, current float64) (Check, error) {
	if err := calcerr.Positive("battery_cdr_a", cdr); err != nil {
		return Check{}, err
	}
	if current < 0 || math.IsNaN(current) {
		return Check{}, calcerr.Invalid("current_a", current)
	}

	limit := cdr * SafeFraction
	level := LevelSafe
	switch {
	case current > cdr:
		level = LevelDanger
	case current > limit:
		level = LevelWarning
	}

	return Check{
		BatteryCDR:   cdr,
		Current:      current,
		SafeLimit:    limit,
		SafetyMargin: (cdr - current) / cdr,
		Level:        level,
	}, nil
}
