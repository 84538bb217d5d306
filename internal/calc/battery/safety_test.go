package battery

import (
	"testing"

	"Coilcalc/internal/calc/calcerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCurrent_Thresholds(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		want    SafetyLevel
	}{
		{"idle", 0, LevelSafe},
		{"light draw", 4.24, LevelSafe},
		{"at safe limit", 16, LevelSafe},
		{"just over safe limit", 16.01, LevelWarning},
		{"at rating", 20, LevelWarning},
		{"just over rating", 20.01, LevelDanger},
		{"far over rating", 45, LevelDanger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := CheckCurrent(20, tt.current)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Level)
		})
	}
}

func TestCheckCurrent_Monotonic(t *testing.T) {
	const cdr = 25.0
	prev := 0
	for i := 0; i <= 400; i++ {
		c, err := CheckCurrent(cdr, float64(i)*0.1)
		require.NoError(t, err)
		sev := c.Level.Severity()
		assert.GreaterOrEqual(t, sev, prev, "current %.1f", c.Current)
		prev = sev
	}
	assert.Equal(t, LevelDanger.Severity(), prev)
}

func TestCheckCurrent_DecimalRatingAtLimit(t *testing.T) {
	// 0.7*0.8 is 0.5599999999999999 in float64
	c, err := CheckCurrent(0.7, 0.56)
	require.NoError(t, err)
	assert.Less(t, c.SafeLimit, 0.56)
	assert.Equal(t, LevelWarning, c.Level)

	c, err = CheckCurrent(0.7, 0.55)
	require.NoError(t, err)
	assert.Equal(t, LevelSafe, c.Level)
}

func TestCheckCurrent_Margin(t *testing.T) {
	c, err := CheckCurrent(20, 4.24)
	require.NoError(t, err)
	assert.InDelta(t, 0.788, c.SafetyMargin, 1e-9)
	assert.InDelta(t, 16.0, c.SafeLimit, 1e-9)

	c, err = CheckCurrent(10, 15)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, c.SafetyMargin, 1e-9)
}

func TestCheckCurrent_InvalidInput(t *testing.T) {
	_, err := CheckCurrent(0, 5)
	assert.ErrorIs(t, err, calcerr.ErrInvalidInput)
	assert.Equal(t, "battery_cdr_a", calcerr.Field(err))

	_, err = CheckCurrent(-20, 5)
	assert.ErrorIs(t, err, calcerr.ErrInvalidInput)

	_, err = CheckCurrent(20, -1)
	assert.ErrorIs(t, err, calcerr.ErrInvalidInput)
	assert.Equal(t, "current_a", calcerr.Field(err))
}

func TestSafetyLevel_Color(t *testing.T) {
	assert.Equal(t, "#4CAF50", LevelSafe.Color())
	assert.Equal(t, "#FF9800", LevelWarning.Color())
	assert.Equal(t, "#F44336", LevelDanger.Color())
	assert.Equal(t, "#9E9E9E", LevelUnknown.Color())
	assert.Equal(t, "#9E9E9E", SafetyLevel("bogus").Color())
}
