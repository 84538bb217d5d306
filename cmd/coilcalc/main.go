package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"Coilcalc/internal/calc/calcerr"
	"Coilcalc/internal/calc/coil"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("coilcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	material := fs.String("material", "kanthal_a1", "Wire material id (kanthal_a1, ni80, ss316l, ni200, ti_g1)")
	awg := fs.Int("awg", 0, "Wire gauge, used when -diameter is not set")
	diameter := fs.Float64("diameter", 0, "Wire diameter in mm")
	coilID := fs.Float64("id", 3.0, "Coil inner diameter in mm")
	wraps := fs.Float64("wraps", 0, "Number of wraps")
	target := fs.Float64("target", 0, "Target resistance in ohm; solves for wraps instead")
	coilType := fs.String("type", string(coil.Single), "Coil type (single, dual, parallel, twisted, clapton)")
	leg := fs.Float64("leg", coil.DefaultLegLengthMM, "Leg length in mm")
	power := fs.Float64("power", 0, "Output power in W")
	voltage := fs.Float64("voltage", 0, "Output voltage in V, ignored when -power is set")
	cdr := fs.Float64("cdr", 0, "Battery continuous discharge rating in A")
	asJSON := fs.Bool("json", false, "Print the result as JSON")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	in := coil.Input{
		Mode:           coil.FromWraps,
		MaterialID:     *material,
		WireDiameterMM: *diameter,
		AWG:            *awg,
		CoilIDMM:       *coilID,
		Wraps:          *wraps,
		CoilType:       coil.CoilType(*coilType),
		LegLengthMM:    *leg,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "target":
			in.Mode = coil.FromResistance
			in.TargetResistance = *target
		case "power":
			in.PowerW = power
		case "voltage":
			in.VoltageV = voltage
		case "cdr":
			in.BatteryCDR = cdr
		}
	})

	res, err := coil.Evaluate(in)
	if err != nil {
		if field := calcerr.Field(err); field != "" {
			fmt.Fprintf(stderr, "Error: invalid %s\n", field)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}
	printSummary(stdout, res)
	return 0
}

func printSummary(w io.Writer, res coil.Result) {
	fmt.Fprintf(w, "Resistance:    %.3f ohm\n", res.Resistance)
	if res.WrapsNeeded != nil {
		fmt.Fprintf(w, "Wraps needed:  %.2f\n", *res.WrapsNeeded)
	}
	fmt.Fprintf(w, "Wire length:   %.2f mm\n", res.WireLength)
	fmt.Fprintf(w, "Surface area:  %.2f mm2\n", res.SurfaceArea)
	if res.Power != nil {
		fmt.Fprintf(w, "Power:         %.1f W\n", *res.Power)
	}
	if res.Voltage != nil {
		fmt.Fprintf(w, "Voltage:       %.2f V\n", *res.Voltage)
	}
	if res.Current != nil {
		fmt.Fprintf(w, "Current:       %.2f A\n", *res.Current)
	}
	if res.HeatFlux != nil {
		fmt.Fprintf(w, "Heat flux:     %.3f W/mm2\n", *res.HeatFlux)
	}
	if res.Style != nil {
		fmt.Fprintf(w, "Style:         %s\n", *res.Style)
	}
	fmt.Fprintf(w, "Safety:        %s", res.SafetyLevel)
	if res.SafetyMargin != nil {
		fmt.Fprintf(w, " (margin %.0f%%)", *res.SafetyMargin*100)
	}
	fmt.Fprintln(w)
}
