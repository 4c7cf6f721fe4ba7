package vehicledata

import "strings"

// engineCodes maps manufacturer engine family codes, as they appear in the
// registry's degem_manoa field, to displacement in cc. Reference data only;
// lookup is exact (case-insensitive, trimmed), never fuzzy: a code one
// character off may be a different engine entirely.
var engineCodes = map[string]int{
	// Volkswagen group (EA111/EA211/EA888/diesel families)
	"BSE": 1595, "BUD": 1390, "CAXA": 1390, "CBZB": 1197, "CJZA": 1197,
	"CJZB": 1197, "CYVB": 1197, "CHPA": 1395, "CZCA": 1395, "CZDA": 1395,
	"CZEA": 1395, "DADA": 1498, "DACA": 1498, "DPCA": 1498, "DXDB": 999,
	"CHYB": 999, "DKRF": 999, "DLAA": 1498, "CCZA": 1984, "CJXB": 1984,
	"CNCD": 1984, "DKZA": 1984, "DNFC": 1984, "CUNA": 1968, "DFGA": 1968,
	"CRLB": 1968, "DTSB": 1968, "CFFB": 1968, "CAYC": 1598, "DDYA": 1598,
	// BMW (N/B/S families)
	"N13B16": 1598, "N20B20": 1997, "N46B20": 1995, "N47D20": 1995,
	"N55B30": 2979, "N57D30": 2993, "N63B44": 4395, "B37C15": 1496,
	"B38A12": 1198, "B38B15": 1499, "B46B20": 1998, "B47D20": 1995,
	"B48A20": 1998, "B48B20": 1998, "B58B30": 2998, "S55B30": 2979,
	"S58B30": 2993, "S63B44": 4395,
	// Mercedes (M/OM families)
	"M270910": 1595, "M270920": 1991, "M274920": 1991, "M264920": 1991,
	"M260920": 1332, "M282914": 1332, "M254920": 1999, "M256930": 2999,
	"M276821": 2996, "M177980": 3982, "OM607951": 1461, "OM608915": 1461,
	"OM626951": 1598, "OM651921": 2143, "OM654920": 1950, "OM656929": 2925,
	// Toyota
	"1KR-FE": 996, "1NR-FE": 1329, "1NZ-FE": 1497, "2NZ-FE": 1298,
	"2NR-FKE": 1496, "2ZR-FE": 1798, "2ZR-FXE": 1798, "3ZR-FAE": 1986,
	"8NR-FTS": 1197, "M15A-FKS": 1490, "M15A-FXE": 1490, "M20A-FKS": 1987,
	"M20A-FXS": 1987, "A25A-FKS": 2487, "A25A-FXS": 2487, "2GR-FE": 3456,
	"2GR-FKS": 3456, "1GD-FTV": 2755, "2GD-FTV": 2393, "1ZZ-FE": 1794,
	"3ZZ-FE": 1598, "4ZZ-FE": 1398,
	// Honda
	"L12B": 1198, "L13A": 1339, "L13B": 1318, "L15A": 1497, "L15B": 1498,
	"L15B7": 1498, "L15BE": 1498, "R18A": 1799, "R18Z": 1798, "R20A": 1997,
	"K20C1": 1996, "K20Z2": 1998, "K24W": 2356, "LEB": 1496, "LFA": 1993,
	// Hyundai / Kia
	"G3LA": 998, "G3LC": 998, "G4LC": 1368, "G4FA": 1396, "G4FC": 1591,
	"G4FG": 1591, "G4FJ": 1591, "G4FL": 1598, "G4FM": 1598, "G4KD": 1998,
	"G4KH": 1998, "G4KJ": 2359, "G4NA": 1999, "G4ND": 1999, "G4KM": 2497,
	"D4FB": 1582, "D4FC": 1396, "D4HA": 1995, "D4HB": 2199, "G4LE": 1580,
	"G4LF": 1598,
	// Mazda (Skyactiv)
	"P3-VPS": 1298, "P5-VPS": 1496, "PE-VPS": 1998, "PY-VPS": 2488,
	"SH-VPTS": 2191, "S8-DPTS": 1759, "ZJ-VE": 1349, "ZY-VE": 1498,
	// Nissan / Renault alliance
	"HR10DET": 999, "HR12DE": 1198, "HR13DDT": 1332, "HR16DE": 1598,
	"MR16DDT": 1618, "MR20DE": 1997, "QR25DE": 2488, "KR20DDET": 1970,
	"K9K": 1461, "M9R": 1995, "H4B": 898, "H5F": 1197, "H5H": 1333,
	"M5M": 1618, "TCE90": 898,
	// Ford
	"M1DA": 999, "M2DA": 999, "SFJA": 999, "YZJA": 999, "B7JA": 1084,
	"UEJA": 1497, "M8DA": 1498, "M9DA": 1498, "JQDA": 1596, "JQDB": 1596,
	"R9DA": 1999, "T7CJ": 1499, "T8CC": 1995, "XQDA": 1999,
	// GM / Chevrolet
	"LUJ": 1364, "LUV": 1364, "L2B": 1399, "LDE": 1598, "LWC": 1490,
	"LFV": 1490, "LE2": 1399, "LTG": 1998,
	// Fiat / PSA
	"312A2000": 875, "169A4000": 1242, "55282151": 999, "EB2": 1199,
	"EB2ADT": 1199, "EP6": 1598, "HN05": 1199, "DV5R": 1499,
	// Suzuki
	"K10B": 998, "K10C": 998, "K12B": 1242, "K12C": 1242, "K14C": 1373,
	"K14D": 1373, "M16A": 1586,
	// Subaru
	"FB16": 1600, "FB20": 1995, "FB25": 2498, "CB18": 1795, "EJ20": 1994,
	// Mitsubishi
	"3A90": 999, "3A92": 1193, "4A91": 1499, "4B10": 1798, "4B11": 1998,
	"4J10": 1798, "4N14": 2268,
	// Motorcycles (common registry engine codes)
	"G343": 124, "M450": 449, "KF31E": 279, "NC51E": 471, "NC56E": 745,
	"SC59E": 999, "J509E": 124, "G3B6": 321, "N527E": 689, "B655": 652,
}

// LookupEngineCC resolves an engine family code to displacement in cc.
// Unknown codes return false; callers fall back to brand/model heuristics
// or user input.
func LookupEngineCC(engineCode string) (int, bool) {
	code := strings.ToUpper(strings.TrimSpace(engineCode))
	if code == "" {
		return 0, false
	}
	cc, ok := engineCodes[code]
	if !ok || !ValidEngineCC(cc) {
		return 0, false
	}
	return cc, true
}

// ccPattern maps a model-name substring to a typical displacement for that
// model line. Ordered: earlier entries win, so specific trims precede the
// plain model name.
type ccPattern struct {
	substr string
	cc     int
}

// brandCCPatterns is the brand/model fallback tier used when the registry
// carries neither a numeric displacement nor a known engine code.
var brandCCPatterns = map[string][]ccPattern{
	"Toyota": {
		{"LAND CRUISER", 3346}, {"HILUX", 2393}, {"RAV4", 2487},
		{"CAMRY", 2487}, {"C-HR", 1987}, {"COROLLA", 1798}, {"YARIS", 1490},
		{"AYGO", 996},
	},
	"Honda": {
		{"CR-V", 1993}, {"CRV", 1993}, {"ACCORD", 1993}, {"TYPE R", 1996},
		{"CIVIC", 1498}, {"HR-V", 1498}, {"JAZZ", 1318},
	},
	"Mazda": {
		{"CX-9", 2488}, {"CX-5", 1998}, {"CX-30", 1998}, {"MAZDA6", 1998},
		{"MAZDA3", 1998}, {"MAZDA2", 1496}, {"MX-5", 1998},
	},
	"Hyundai": {
		{"SANTA FE", 2199}, {"TUCSON", 1598}, {"KONA", 1598},
		{"ELANTRA", 1598}, {"I30", 1498}, {"I20", 1197}, {"I10", 998},
	},
	"Kia": {
		{"SORENTO", 2199}, {"SPORTAGE", 1598}, {"NIRO", 1580},
		{"CEED", 1482}, {"STONIC", 998}, {"RIO", 1248}, {"PICANTO", 998},
	},
	"Volkswagen": {
		{"TOUAREG", 2967}, {"PASSAT", 1984}, {"TIGUAN", 1498},
		{"GOLF", 1498}, {"POLO", 999}, {"UP", 999},
	},
	"Skoda": {
		{"KODIAQ", 1984}, {"SUPERB", 1984}, {"OCTAVIA", 1498},
		{"KAROQ", 1498}, {"SCALA", 999}, {"FABIA", 999}, {"KAMIQ", 999},
	},
	"Seat": {
		{"TARRACO", 1984}, {"LEON", 1498}, {"ATECA", 1498},
		{"IBIZA", 999}, {"ARONA", 999},
	},
	"BMW": {
		{"X5", 2998}, {"X3", 1998}, {"X1", 1499}, {"M3", 2993}, {"M4", 2993},
		{"530", 2998}, {"520", 1998}, {"330", 1998}, {"320", 1998},
		{"318", 1499}, {"118", 1499}, {"116", 1499},
	},
	"Mercedes": {
		{"GLE", 2999}, {"GLC", 1991}, {"E-CLASS", 1991}, {"C-CLASS", 1991},
		{"CLA", 1332}, {"GLA", 1332}, {"A-CLASS", 1332},
	},
	"Audi": {
		{"Q7", 2967}, {"Q5", 1984}, {"A6", 1984}, {"A4", 1984},
		{"Q3", 1498}, {"A3", 1498}, {"Q2", 999}, {"A1", 999},
	},
	"Nissan": {
		{"X-TRAIL", 1332}, {"QASHQAI", 1332}, {"JUKE", 999},
		{"MICRA", 999}, {"LEAF", 0},
	},
	"Ford": {
		{"RANGER", 1996}, {"KUGA", 1499}, {"FOCUS", 999}, {"PUMA", 999},
		{"FIESTA", 999},
	},
	"Chevrolet": {
		{"TRAVERSE", 3564}, {"EQUINOX", 1490}, {"TRAX", 1364},
		{"CRUZE", 1399}, {"SPARK", 1399},
	},
	"Suzuki": {
		{"VITARA", 1373}, {"S-CROSS", 1373}, {"SWIFT", 1197},
		{"IGNIS", 1197}, {"CELERIO", 998},
	},
}

// EstimateEngineCC guesses displacement from brand and model text. This is a
// lower-confidence tier than LookupEngineCC; a zero return means the model
// line is electric or unknown.
func EstimateEngineCC(brand, model string) (int, bool) {
	patterns, ok := brandCCPatterns[TranslateBrandToEnglish(brand)]
	if !ok {
		return 0, false
	}
	upper := strings.ToUpper(model)
	for _, p := range patterns {
		if strings.Contains(upper, p.substr) {
			if p.cc == 0 || !ValidEngineCC(p.cc) {
				return 0, false
			}
			return p.cc, true
		}
	}
	return 0, false
}
