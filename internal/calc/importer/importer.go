package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"Coilcalc/internal/calc/coil"
	"github.com/xuri/excelize/v2"
)

// Expected columns, after one header row:
// material_id, wire_diameter_mm (or "26awg"), coil_id_mm, wraps,
// coil_type, leg_length_mm, power_w, voltage_v, battery_cdr_a.
// Only the first four are required.
const minColumns = 4

type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ParseBuilds reads coil builds from the first sheet of an xlsx workbook.
// Rows that cannot be parsed are returned as RowErrors with their
// 1-based sheet row number.
func ParseBuilds(r io.Reader) ([]coil.Input, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("empty sheet")
	}

	var builds []coil.Input
	var rowErrs []RowError
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		in, err := parseRow(row)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: i + 1, Error: err.Error()})
			continue
		}
		builds = append(builds, in)
	}
	return builds, rowErrs, nil
}

func parseRow(row []string) (coil.Input, error) {
	if len(row) < minColumns {
		return coil.Input{}, fmt.Errorf("expected at least %d columns, got %d", minColumns, len(row))
	}
	in := coil.Input{MaterialID: strings.TrimSpace(row[0])}

	wireCell := strings.ToLower(strings.TrimSpace(row[1]))
	if awg, ok := strings.CutSuffix(wireCell, "awg"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(awg))
		if err != nil {
			return coil.Input{}, fmt.Errorf("wire gauge %q: %w", row[1], err)
		}
		in.AWG = n
	} else {
		d, err := toFloat(wireCell)
		if err != nil {
			return coil.Input{}, fmt.Errorf("wire_diameter_mm: %w", err)
		}
		in.WireDiameterMM = d
	}

	var err error
	if in.CoilIDMM, err = toFloat(row[2]); err != nil {
		return coil.Input{}, fmt.Errorf("coil_id_mm: %w", err)
	}
	if in.Wraps, err = toFloat(row[3]); err != nil {
		return coil.Input{}, fmt.Errorf("wraps: %w", err)
	}
	if v := cell(row, 4); v != "" {
		in.CoilType = coil.CoilType(strings.ToLower(v))
	}
	if in.LegLengthMM, err = optional(row, 5); err != nil {
		return coil.Input{}, fmt.Errorf("leg_length_mm: %w", err)
	}
	if in.PowerW, err = optionalPtr(row, 6); err != nil {
		return coil.Input{}, fmt.Errorf("power_w: %w", err)
	}
	if in.VoltageV, err = optionalPtr(row, 7); err != nil {
		return coil.Input{}, fmt.Errorf("voltage_v: %w", err)
	}
	if in.BatteryCDR, err = optionalPtr(row, 8); err != nil {
		return coil.Input{}, fmt.Errorf("battery_cdr_a: %w", err)
	}
	return in, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func optional(row []string, i int) (float64, error) {
	v := cell(row, i)
	if v == "" {
		return 0, nil
	}
	return toFloat(v)
}

func optionalPtr(row []string, i int) (*float64, error) {
	v := cell(row, i)
	if v == "" {
		return nil, nil
	}
	f, err := toFloat(v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// toFloat accepts a decimal comma as well as a decimal point.
func toFloat(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
