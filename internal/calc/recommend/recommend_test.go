package recommend

import (
	"testing"

	"Coilcalc/internal/calc/calcerr"
	"Coilcalc/internal/calc/coil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		in        BuildInput
		wantWraps float64
		wantOhms  float64
	}{
		{
			name:      "MTL kanthal",
			in:        BuildInput{Style: coil.MTL, MaterialID: "kanthal_a1", AWG: 26, CoilIDMM: 3.0},
			wantWraps: 13,
			wantOhms:  1.678,
		},
		{
			name:      "RDL nichrome",
			in:        BuildInput{Style: coil.RDL, MaterialID: "ni80", AWG: 28, CoilIDMM: 2.5},
			wantWraps: 4.5,
			wantOhms:  0.672,
		},
		{
			name:      "DL dual stainless",
			in:        BuildInput{Style: coil.DL, MaterialID: "ss316l", AWG: 24, CoilIDMM: 3.0, CoilType: coil.Dual},
			wantWraps: 16.5,
			wantOhms:  0.351,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Build(tt.in)
			require.NoError(t, err)

			assert.Equal(t, tt.wantWraps, res.Wraps)
			assert.InDelta(t, tt.wantWraps, res.ExactWraps, 0.5)
			assert.Equal(t, tt.wantOhms, res.Build.Resistance)
			require.NotNil(t, res.Build.Style)
			assert.Equal(t, tt.in.Style, *res.Build.Style)
			assert.Equal(t, "Wraps rounded to the nearest half wrap.", res.Notes)

			band, _ := tt.in.Style.Range()
			assert.Equal(t, (band.PowerMin+band.PowerMax)/2, *res.Build.Power)
		})
	}
}

func TestBuild_OutOfBand(t *testing.T) {
	// Two 5 mm leads of 32 AWG kanthal already exceed the DL band.
	res, err := Build(BuildInput{Style: coil.DL, MaterialID: "kanthal_a1", AWG: 32, CoilIDMM: 3.0})
	require.NoError(t, err)

	assert.Equal(t, coil.MinWraps, res.ExactWraps)
	assert.Equal(t, 0.5, res.Wraps)
	require.NotNil(t, res.Build.Style)
	assert.NotEqual(t, coil.DL, *res.Build.Style)
	assert.Contains(t, res.Notes, "outside")
}

func TestBuild_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		in    BuildInput
		field string
	}{
		{"unknown style", BuildInput{Style: "sub-ohm", MaterialID: "ni80", AWG: 26, CoilIDMM: 3}, "style"},
		{"unknown material", BuildInput{Style: coil.MTL, MaterialID: "gold", AWG: 26, CoilIDMM: 3}, "material_id"},
		{"unknown gauge", BuildInput{Style: coil.MTL, MaterialID: "ni80", AWG: 25, CoilIDMM: 3}, "awg"},
		{"no inner diameter", BuildInput{Style: coil.MTL, MaterialID: "ni80", AWG: 26}, "coil_id_mm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.in)
			assert.ErrorIs(t, err, calcerr.ErrInvalidInput)
			assert.Equal(t, tt.field, calcerr.Field(err))
		})
	}
}
