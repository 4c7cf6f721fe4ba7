package vehicledata

import "testing"

func TestClassifyFuelType(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		hybrid bool
	}{
		{"בנזין", FuelGasoline, false},
		{"דיזל", FuelDiesel, false},
		{"סולר", FuelDiesel, false},
		{"חשמל", FuelElectric, false},
		{"היבריד בנזין", FuelGasoline, true},
		{"היבריד דיזל", FuelDiesel, true},
		{"חשמל/בנזין היבריד", FuelGasoline, true},
		{"היברידי", FuelGasoline, true},
		{"Electric", FuelElectric, false},
		{"diesel", FuelDiesel, false},
		{"", FuelUnknown, false},
		{"גפ\"מ", FuelUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			fuel, hybrid := ClassifyFuelType(tt.raw)
			if fuel != tt.want || hybrid != tt.hybrid {
				t.Fatalf("ClassifyFuelType(%q) = %q, %v; want %q, %v", tt.raw, fuel, hybrid, tt.want, tt.hybrid)
			}
		})
	}
}
