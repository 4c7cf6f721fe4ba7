package vehicledata

import "strings"

// WeightEntry is reference curb/gross weight in kg for one platform
// generation.
type WeightEntry struct {
	CurbKg  float64
	GrossKg float64
}

// platformRule matches a free-text model description (upper-cased) and
// optional manufacture year against one platform generation. Rules are
// evaluated in order; the first hit wins.
type platformRule struct {
	match func(model string, year int) bool
	code  string
}

// has matches a substring regardless of year.
func has(sub string) func(string, int) bool {
	return func(m string, _ int) bool { return strings.Contains(m, sub) }
}

// hasAny matches any of several substrings.
func hasAny(subs ...string) func(string, int) bool {
	return func(m string, _ int) bool {
		for _, sub := range subs {
			if strings.Contains(m, sub) {
				return true
			}
		}
		return false
	}
}

// hasFrom matches a substring for model years >= from. An unknown year (0)
// also matches, so rules must be ordered newest generation first: when the
// registry omits the year we assume the current generation.
func hasFrom(sub string, from int) func(string, int) bool {
	return func(m string, y int) bool {
		return strings.Contains(m, sub) && (y == 0 || y >= from)
	}
}

// hasAnyFrom is hasFrom over several substrings.
func hasAnyFrom(from int, subs ...string) func(string, int) bool {
	anyOf := hasAny(subs...)
	return func(m string, y int) bool {
		return anyOf(m, y) && (y == 0 || y >= from)
	}
}

// EstimateVehicleWeight resolves reference curb/gross weight from brand,
// model text and optional year (0 = unknown). The brand is normalized first;
// a brand without a weight table, a model no extractor rule matches, or a
// platform code missing from the table all yield nil; weights are never
// guessed or interpolated.
func EstimateVehicleWeight(brand, model string, year int) *WeightEntry {
	canonical := TranslateBrandToEnglish(brand)
	table, ok := brandWeights[canonical]
	if !ok {
		return nil
	}
	rules, ok := platformRules[canonical]
	if !ok {
		return nil
	}

	upper := strings.ToUpper(strings.TrimSpace(model))
	for _, r := range rules {
		if !r.match(upper, year) {
			continue
		}
		if entry, ok := table[r.code]; ok {
			return &entry
		}
		return nil
	}
	return nil
}

// SupportedWeightBrands lists brands with a reference weight table.
func SupportedWeightBrands() []string {
	brands := make([]string, 0, len(brandWeights))
	for brand := range brandWeights {
		brands = append(brands, brand)
	}
	return brands
}
