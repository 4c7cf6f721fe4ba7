package vehicledata

import "testing"

func TestTranslateBrandToEnglish(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"hebrew exact", "טויוטה", "Toyota"},
		{"hebrew with country suffix", "טויוטה יפן", "Toyota"},
		{"hebrew bmw punctuation variant", "ב.מ.וו", "BMW"},
		{"hebrew extra whitespace", "  מרצדס   בנץ ", "Mercedes"},
		{"english lowercase", "tesla", "Tesla"},
		{"english abbreviation", "vw", "Volkswagen"},
		{"truncated hebrew prefix", "פולקסוו", "Volkswagen"},
		{"motorcycle brand", "ימאהה", "Yamaha"},
		{"unknown passes through trimmed", "  דגם נדיר  ", "דגם נדיר"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateBrandToEnglish(tt.raw); got != tt.want {
				t.Fatalf("TranslateBrandToEnglish(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTranslateBrandToEnglishIdempotent(t *testing.T) {
	inputs := []string{"טויוטה יפן", "BMW", "mercedes", "פיג'ו", "unknown brand"}
	for _, raw := range inputs {
		once := TranslateBrandToEnglish(raw)
		twice := TranslateBrandToEnglish(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestTranslateBrandToEnglishShortInputNoPrefixMatch(t *testing.T) {
	// Two bytes (one Hebrew letter) must not trigger the prefix matcher.
	if got := TranslateBrandToEnglish("ט"); got != "ט" {
		t.Fatalf("single letter should pass through, got %q", got)
	}
}
