package vehicledata

import "testing"

func TestLookupEngineCC(t *testing.T) {
	tests := []struct {
		code  string
		want  int
		found bool
	}{
		{"CJZA", 1197, true},
		{"cjza", 1197, true},
		{" B48B20 ", 1998, true},
		{"2ZR-FE", 1798, true},
		{"K9K", 1461, true},
		{"NOPE123", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			cc, ok := LookupEngineCC(tt.code)
			if ok != tt.found || cc != tt.want {
				t.Fatalf("LookupEngineCC(%q) = %d, %v; want %d, %v", tt.code, cc, ok, tt.want, tt.found)
			}
		})
	}
}

func TestEstimateEngineCC(t *testing.T) {
	tests := []struct {
		name  string
		brand string
		model string
		want  int
		found bool
	}{
		{"toyota corolla", "Toyota", "COROLLA HYBRID", 1798, true},
		{"hebrew brand normalized", "טויוטה", "YARIS", 1490, true},
		{"honda crv before civic", "Honda", "CR-V", 1993, true},
		{"unknown brand", "Lada", "NIVA", 0, false},
		{"known brand unknown model", "Toyota", "SUPRA", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc, ok := EstimateEngineCC(tt.brand, tt.model)
			if ok != tt.found || cc != tt.want {
				t.Fatalf("EstimateEngineCC(%q, %q) = %d, %v; want %d, %v", tt.brand, tt.model, cc, ok, tt.want, tt.found)
			}
		})
	}
}
