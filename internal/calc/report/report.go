package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"Coilcalc/internal/calc/coil"
	"Coilcalc/internal/calc/wire"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string     `json:"project"`
	Author  string     `json:"author"`
	Title   string     `json:"title"`
	Notes   string     `json:"notes"`
	Build   coil.Input `json:"build"`
}

// Render writes a one-page build sheet for an evaluated build.
func Render(w io.Writer, in Input, res coil.Result, date time.Time) error {
	if in.Title == "" {
		in.Title = "Coil Build Sheet"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(in.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", in.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", in.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Build")
	for _, row := range buildRows(in.Build, res) {
		tableRow(pdf, tr(row[0]), tr(row[1]))
	}
	pdf.Ln(4)

	section(pdf, "Results")
	for _, row := range resultRows(res) {
		tableRow(pdf, tr(row[0]), tr(row[1]))
	}
	safetyRow(pdf, res)
	pdf.Ln(6)

	if in.Notes != "" {
		section(pdf, "Notes")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(in.Notes), "", "L", false)
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
}

func tableRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(70, 6, label, "1", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "1", 1, "L", false, 0, "")
}

func safetyRow(pdf *gofpdf.Fpdf, res coil.Result) {
	r, g, b := hexRGB(res.SafetyLevel.Color())
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(70, 6, "Battery safety", "1", 0, "L", false, 0, "")
	pdf.SetFillColor(r, g, b)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(0, 6, string(res.SafetyLevel), "1", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func buildRows(in coil.Input, res coil.Result) [][2]string {
	material := in.MaterialID
	if m, ok := wire.LookupMaterial(in.MaterialID); ok {
		material = m.Name
	}
	wireSize := fmt.Sprintf("%s mm", num(in.WireDiameterMM))
	if in.WireDiameterMM == 0 {
		wireSize = fmt.Sprintf("%d AWG", in.AWG)
	}
	coilType := in.CoilType
	if coilType == "" {
		coilType = coil.Single
	}
	wraps := num(in.Wraps)
	if res.WrapsNeeded != nil {
		wraps = fmt.Sprintf("%.2f (solved for %s ohm)", *res.WrapsNeeded, num(in.TargetResistance))
	}
	return [][2]string{
		{"Material", material},
		{"Wire", wireSize},
		{"Inner diameter", num(in.CoilIDMM) + " mm"},
		{"Wraps", wraps},
		{"Coil type", coilType.DisplayName()},
	}
}

func resultRows(res coil.Result) [][2]string {
	rows := [][2]string{
		{"Resistance", num(res.Resistance) + " ohm"},
		{"Wire length", num(res.WireLength) + " mm"},
		{"Surface area", num(res.SurfaceArea) + " mm²"},
	}
	optional := []struct {
		label string
		v     *float64
		unit  string
	}{
		{"Power", res.Power, " W"},
		{"Voltage", res.Voltage, " V"},
		{"Current", res.Current, " A"},
		{"Heat flux", res.HeatFlux, " W/mm²"},
	}
	for _, o := range optional {
		if o.v != nil {
			rows = append(rows, [2]string{o.label, num(*o.v) + o.unit})
		}
	}
	if res.Style != nil {
		band, _ := res.Style.Range()
		rows = append(rows, [2]string{"Style", fmt.Sprintf("%s (%s-%s W)", *res.Style, num(band.PowerMin), num(band.PowerMax))})
	}
	return rows
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func hexRGB(hex string) (int, int, int) {
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 158, 158, 158
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
