package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Summary(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-material", "kanthal_a1", "-awg", "26", "-id", "3", "-wraps", "6", "-power", "15", "-cdr", "20"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "Resistance:    0.835 ohm")
	assert.Contains(t, out, "Voltage:       3.54 V")
	assert.Contains(t, out, "Current:       4.24 A")
	assert.Contains(t, out, "Style:         RDL")
	assert.Contains(t, out, "Safety:        SAFE (margin 79%)")
	assert.NotContains(t, out, "Wraps needed")
}

func TestRun_TargetSwitchesMode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-material", "ni80", "-diameter", "0.321", "-target", "0.7", "-json"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var res map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &res))
	assert.Contains(t, res, "wraps_needed")
	assert.Equal(t, "UNKNOWN", res["safety_level"])
	assert.NotContains(t, res, "power_w")
}

func TestRun_ValidationError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-awg", "26", "-wraps", "6", "-type", "quad"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "invalid coil_type")
	assert.Empty(t, stdout.String())
}

func TestRun_UnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-ohms", "1"}, &stdout, &stderr))
}
