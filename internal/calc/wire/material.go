package wire

// Material is a heating wire alloy. Resistivity is in Ω·mm²/m at 20°C.
type Material struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Resistivity     float64 `json:"resistivity"`
	TempCoefficient float64 `json:"temp_coefficient"`
	TCCapable       bool    `json:"tc_capable"`
	WattOnly        bool    `json:"watt_only"`
	Description     string  `json:"description"`
}

var (
	KanthalA1 = Material{
		ID:          "kanthal_a1",
		Name:        "Kanthal A1",
		Resistivity: 1.45,
		WattOnly:    true,
		Description: "FeCrAl alloy, high heat resistance, stable resistance, ideal for watt mode",
	}
	Nichrome80 = Material{
		ID:          "ni80",
		Name:        "Nichrome 80",
		Resistivity: 1.09,
		WattOnly:    true,
		Description: "NiCr alloy, fast ramp-up, lower resistance, popular for performance builds",
	}
	SS316L = Material{
		ID:              "ss316l",
		Name:            "Stainless Steel 316L",
		Resistivity:     0.75,
		TempCoefficient: 0.00088,
		TCCapable:       true,
		Description:     "Versatile wire, works in watt and TC mode, clean flavor",
	}
	Nickel200 = Material{
		ID:              "ni200",
		Name:            "Nickel 200",
		Resistivity:     0.096,
		TempCoefficient: 0.006,
		TCCapable:       true,
		Description:     "Pure nickel, TC only, high temperature coefficient",
	}
	TitaniumG1 = Material{
		ID:              "ti_g1",
		Name:            "Titanium Grade 1",
		Resistivity:     0.56,
		TempCoefficient: 0.0035,
		TCCapable:       true,
		Description:     "Titanium wire, TC capable, do not dry burn",
	}
)

var materials = [...]Material{KanthalA1, Nichrome80, SS316L, Nickel200, TitaniumG1}

// Materials returns the catalog in display order.
func Materials() []Material {
	out := make([]Material, len(materials))
	copy(out, materials[:])
	return out
}

// LookupMaterial finds a material by id.
func LookupMaterial(id string) (Material, bool) {
	for _, m := range materials {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}
