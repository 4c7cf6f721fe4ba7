package vehicledata

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// hebrewBrands maps manufacturer names as they appear in the government
// registry (Hebrew, sometimes with punctuation variants) to canonical English
// brand names. Registry values frequently carry a trailing country-of-origin
// word ("טויוטה יפן"); countrySuffixes covers those.
var hebrewBrands = map[string]string{
	"טויוטה":        "Toyota",
	"הונדה":         "Honda",
	"מזדה":          "Mazda",
	"ניסאן":         "Nissan",
	"ניסן":          "Nissan",
	"סובארו":        "Subaru",
	"סוזוקי":        "Suzuki",
	"מיצובישי":      "Mitsubishi",
	"לקסוס":         "Lexus",
	"דייהטסו":       "Daihatsu",
	"יונדאי":        "Hyundai",
	"הונדאי":        "Hyundai",
	"קיה":           "Kia",
	"סאנגיונג":      "SsangYong",
	"ב.מ.וו":        "BMW",
	"ב מ וו":        "BMW",
	"במוו":          "BMW",
	"מרצדס":         "Mercedes",
	"מרצדס בנץ":     "Mercedes",
	"אאודי":         "Audi",
	"פולקסווגן":     "Volkswagen",
	"פולקסוואגן":    "Volkswagen",
	"אופל":          "Opel",
	"פורשה":         "Porsche",
	"סמארט":         "Smart",
	"פורד":          "Ford",
	"שברולט":        "Chevrolet",
	"קאדילק":        "Cadillac",
	"ביואיק":        "Buick",
	"ג'יפ":          "Jeep",
	"קרייזלר":       "Chrysler",
	"דודג'":         "Dodge",
	"טסלה":          "Tesla",
	"פיג'ו":         "Peugeot",
	"פיגו":          "Peugeot",
	"סיטרואן":       "Citroen",
	"רנו":           "Renault",
	"דאצ'יה":        "Dacia",
	"פיאט":          "Fiat",
	"אלפא רומיאו":   "Alfa Romeo",
	"לנצ'יה":        "Lancia",
	"סקודה":         "Skoda",
	"סיאט":          "Seat",
	"וולוו":         "Volvo",
	"וולבו":         "Volvo",
	"מיני":          "Mini",
	"לנד רובר":      "Land Rover",
	"יגואר":         "Jaguar",
	"מ.ג":           "MG",
	"אם ג'י":        "MG",
	"בי ווי די":     "BYD",
	"ביי וואי די":   "BYD",
	"גילי":          "Geely",
	"צ'רי":          "Chery",
	"ליפמוטור":      "Leapmotor",
	"איווייס":       "Aiways",
	"סרס":           "Seres",
	"ניו":           "NIO",
	"אקספנג":        "XPeng",
	"ימאהה":         "Yamaha",
	"קוואסקי":       "Kawasaki",
	"ק.ט.מ":         "KTM",
	"הארלי דוידסון": "Harley-Davidson",
	"דוקאטי":        "Ducati",
	"פיאג'יו":       "Piaggio",
	"וספה":          "Vespa",
	"אפריליה":       "Aprilia",
	"טריומף":        "Triumph",
	"סאן יאנג":      "SYM",
	"קימקו":         "Kymco",
}

// englishBrands canonicalizes casing for names that are already English.
// Keys are lowercase.
var englishBrands = map[string]string{
	"toyota":     "Toyota",
	"honda":      "Honda",
	"mazda":      "Mazda",
	"nissan":     "Nissan",
	"subaru":     "Subaru",
	"suzuki":     "Suzuki",
	"mitsubishi": "Mitsubishi",
	"lexus":      "Lexus",
	"hyundai":    "Hyundai",
	"kia":        "Kia",
	"bmw":        "BMW",
	"mercedes":   "Mercedes",
	"audi":       "Audi",
	"volkswagen": "Volkswagen",
	"vw":         "Volkswagen",
	"opel":       "Opel",
	"ford":       "Ford",
	"chevrolet":  "Chevrolet",
	"tesla":      "Tesla",
	"peugeot":    "Peugeot",
	"citroen":    "Citroen",
	"renault":    "Renault",
	"fiat":       "Fiat",
	"skoda":      "Skoda",
	"seat":       "Seat",
	"volvo":      "Volvo",
	"mini":       "Mini",
	"byd":        "BYD",
	"mg":         "MG",
	"yamaha":     "Yamaha",
	"kawasaki":   "Kawasaki",
	"ktm":        "KTM",
	"ducati":     "Ducati",
	"piaggio":    "Piaggio",
	"vespa":      "Vespa",
	"aprilia":    "Aprilia",
}

// countrySuffixes are trailing country-of-origin words the registry appends
// after the manufacturer name.
var countrySuffixes = []string{
	"יפן", "גרמניה", "קוריאה", "צרפת", "איטליה", "ספרד", "צכיה", "צ'כיה",
	"בריטניה", "אנגליה", "שבדיה", "ארהב", `ארה"ב`, "סין", "הודו", "טורקיה",
	"רומניה", "סלובקיה", "הונגריה", "פולין", "בלגיה", "הולנד", "אוסטריה",
	"מקסיקו", "תאילנד", "דרום אפריקה",
}

// cleanMarks strips combining marks (niqqud) and normalizes the string so
// registry values with stray vowel points still hit the alias table.
var cleanMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// TranslateBrandToEnglish maps a free-text manufacturer name from the registry
// to a canonical English brand. Lookup order: exact alias, alias after
// stripping a trailing country word, then prefix match in either direction
// (the registry truncates long names). Unknown input is returned trimmed,
// never an error. Idempotent: canonical output maps back to itself.
func TranslateBrandToEnglish(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	if cleaned, _, err := transform.String(cleanMarks, s); err == nil {
		s = cleaned
	}
	s = strings.Join(strings.Fields(s), " ")

	if english, ok := englishBrands[strings.ToLower(s)]; ok {
		return english
	}
	if english, ok := hebrewBrands[s]; ok {
		return english
	}

	if stripped := stripCountrySuffix(s); stripped != s {
		if english, ok := hebrewBrands[stripped]; ok {
			return english
		}
		s = stripped
	}

	// Prefix match tolerates truncated registry strings in either direction.
	// The longest alias wins (ties broken lexicographically) so the result
	// does not depend on map iteration order.
	var bestAlias, bestEnglish string
	if len(s) >= prefixMatchMin {
		for alias, english := range hebrewBrands {
			if !strings.HasPrefix(alias, s) && !strings.HasPrefix(s, alias) {
				continue
			}
			if bestAlias == "" || len(alias) > len(bestAlias) || (len(alias) == len(bestAlias) && alias < bestAlias) {
				bestAlias, bestEnglish = alias, english
			}
		}
	}
	if bestEnglish != "" {
		return bestEnglish
	}

	return s
}

// prefixMatchMin is in bytes; Hebrew letters are two bytes each, so this
// requires at least two letters before a prefix match is trusted.
const prefixMatchMin = 4

func stripCountrySuffix(s string) string {
	for _, suffix := range countrySuffixes {
		if strings.HasSuffix(s, " "+suffix) {
			return strings.TrimSpace(strings.TrimSuffix(s, suffix))
		}
	}
	return s
}
