package vehicledata

import (
	"strconv"
	"strings"
	"unicode"
)

// Plausibility bounds for registry numeric fields. Values outside are treated
// as corrupt source data and rejected, not clamped.
const (
	MinWeightKg = 500
	MaxWeightKg = 10000
	MinEngineCC = 50
	MaxEngineCC = 15000
)

// ParseFloatSafe parses a raw registry field into a float. It returns false
// for anything containing a letter (VINs leak into the weight columns), and
// normalizes decimal separators: a comma with no dot is a decimal point,
// otherwise commas are thousands separators.
//
// Fields that look like weight data are additionally range-checked: a string
// of length >= 3 whose value is >= 100 is assumed to carry kilograms and must
// fall in [500, 10000]. The heuristic is deliberately coarse; tightening it
// would change which registry records are accepted.
func ParseFloatSafe(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if unicode.IsLetter(r) {
			return 0, false
		}
	}

	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	s = strings.ReplaceAll(s, ",", "")

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	if looksLikeWeight(raw, value) && (value < MinWeightKg || value > MaxWeightKg) {
		return 0, false
	}
	return value, true
}

// ParseIntSafe is ParseFloatSafe truncated to an int.
func ParseIntSafe(raw string) (int, bool) {
	value, ok := ParseFloatSafe(raw)
	if !ok {
		return 0, false
	}
	return int(value), true
}

// looksLikeWeight classifies a field as weight data when the raw string has at
// least three characters and the parsed value is at least 100.
func looksLikeWeight(raw string, value float64) bool {
	return len(strings.TrimSpace(raw)) >= 3 && value >= 100
}

// ValidEngineCC reports whether a displacement value is in the plausible
// range for a road vehicle.
func ValidEngineCC(cc int) bool {
	return cc >= MinEngineCC && cc <= MaxEngineCC
}

// ValidWeightKg reports whether a weight value is in the plausible range.
func ValidWeightKg(kg float64) bool {
	return kg >= MinWeightKg && kg <= MaxWeightKg
}
