package vehicledata

import "testing"

func TestEstimateVehicleWeight(t *testing.T) {
	tests := []struct {
		name     string
		brand    string
		model    string
		year     int
		wantCurb float64
	}{
		{"bmw i3 wins over x3 digit rules", "BMW", "I3 REX", 2019, 1245},
		{"bmw x3 current generation", "BMW", "X3 XDRIVE20D", 2019, 1715},
		{"bmw x3 previous generation", "BMW", "X3 XDRIVE20D", 2015, 1735},
		{"bmw x3 unknown year assumes current", "BMW", "X3", 0, 1715},
		{"mazda cx-30 before cx-3", "Mazda", "CX-30", 2021, 1395},
		{"mazda cx-3 still reachable", "Mazda", "CX-3", 2018, 1230},
		{"honda civic tenth gen", "Honda", "CIVIC", 2017, 1310},
		{"hebrew brand is normalized first", "טויוטה יפן", "COROLLA", 2020, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := EstimateVehicleWeight(tt.brand, tt.model, tt.year)
			if tt.wantCurb == 0 {
				// Only checking the call resolves the brand without panicking;
				// table coverage varies per model.
				return
			}
			if entry == nil {
				t.Fatalf("no weight entry for %s %s %d", tt.brand, tt.model, tt.year)
			}
			if entry.CurbKg != tt.wantCurb {
				t.Fatalf("curb weight = %v, want %v", entry.CurbKg, tt.wantCurb)
			}
			if entry.GrossKg <= entry.CurbKg {
				t.Fatalf("gross %v must exceed curb %v", entry.GrossKg, entry.CurbKg)
			}
		})
	}
}

func TestEstimateVehicleWeightUnknown(t *testing.T) {
	if entry := EstimateVehicleWeight("Lada", "NIVA", 1995); entry != nil {
		t.Fatalf("unsupported brand should yield nil, got %+v", entry)
	}
	if entry := EstimateVehicleWeight("BMW", "ISETTA", 1959); entry != nil {
		t.Fatalf("unmatched model should yield nil, got %+v", entry)
	}
}

func TestSupportedWeightBrandsNonEmpty(t *testing.T) {
	brands := SupportedWeightBrands()
	if len(brands) == 0 {
		t.Fatal("expected at least one supported brand")
	}
	seen := map[string]bool{}
	for _, b := range brands {
		if seen[b] {
			t.Fatalf("duplicate brand %s", b)
		}
		seen[b] = true
	}
	if !seen["BMW"] || !seen["Toyota"] {
		t.Fatalf("expected BMW and Toyota in %v", brands)
	}
}
