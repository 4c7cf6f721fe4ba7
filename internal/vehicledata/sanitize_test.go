package vehicledata

import "testing"

func TestParseFloatSafe(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  float64
		valid bool
	}{
		{"plain integer", "1500", 1500, true},
		{"decimal point", "1234.5", 1234.5, true},
		{"comma as decimal", "7,5", 7.5, true},
		{"comma as thousands", "1,500.0", 1500, true},
		{"vin in weight column", "WBA8E310XHA055062", 0, false},
		{"letters mixed in", "12A4", 0, false},
		{"empty", "", 0, false},
		{"whitespace", "   ", 0, false},
		{"weight too small", "350", 0, false},
		{"weight too large", "25000", 0, false},
		{"small value short string passes", "75", 75, true},
		{"boundary min weight", "500", 500, true},
		{"boundary max weight", "10000", 10000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFloatSafe(tt.raw)
			if ok != tt.valid {
				t.Fatalf("ParseFloatSafe(%q) valid = %v, want %v", tt.raw, ok, tt.valid)
			}
			if ok && got != tt.want {
				t.Fatalf("ParseFloatSafe(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseIntSafeTruncates(t *testing.T) {
	got, ok := ParseIntSafe("1598.7")
	if !ok || got != 1598 {
		t.Fatalf("ParseIntSafe(\"1598.7\") = %d, %v; want 1598, true", got, ok)
	}
}

func TestValidRanges(t *testing.T) {
	if ValidEngineCC(49) || !ValidEngineCC(50) || !ValidEngineCC(15000) || ValidEngineCC(15001) {
		t.Fatal("engine cc bounds wrong")
	}
	if ValidWeightKg(499) || !ValidWeightKg(500) || !ValidWeightKg(10000) || ValidWeightKg(10001) {
		t.Fatal("weight bounds wrong")
	}
}
