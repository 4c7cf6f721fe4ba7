package vehicledata

// platformRules holds the per-brand model-code extractors, keyed by canonical
// brand name. Rule order is load-bearing:
//
//   - Electric sub-brands come before numeric series so "i3"/"i4"/"iX" are
//     not swallowed by the 3-series or X-line patterns ("I3" is a substring
//     hazard for "X3 M40I" style trim text too, hence the X rules sit between
//     the i rules and the plain series digits for BMW).
//   - Longer model names come before their prefixes (CX-30 before CX-3,
//     COROLLA CROSS before COROLLA, CLA/GLA before the A-class digits).
//   - Within one model line, newer generations come first; hasFrom treats an
//     unknown year as current generation.
var platformRules = map[string][]platformRule{
	"BMW": {
		{has("IX3"), "G08-IX3"},
		{has("IX1"), "U11-IX1"},
		{has("IX"), "I20-IX"},
		{has("I3"), "I01-I3"},
		{has("I4"), "G26-I4"},
		{has("I5"), "G60-I5"},
		{has("I7"), "G70-I7"},
		{has("I8"), "I12-I8"},
		{hasFrom("X1", 2022), "U11-X1"},
		{has("X1"), "F48-X1"},
		{hasFrom("X3", 2017), "G01-X3"},
		{has("X3"), "F25-X3"},
		{hasFrom("X5", 2018), "G05-X5"},
		{has("X5"), "F15-X5"},
		{has("X7"), "G07-X7"},
		{has("M3"), "G80-M3"},
		{has("M4"), "G82-M4"},
		{hasAnyFrom(2019, "316", "318", "320", "330"), "G20-3"},
		{hasAny("316", "318", "320", "330"), "F30-3"},
		{hasAnyFrom(2017, "520", "530", "540"), "G30-5"},
		{hasAny("520", "530", "540"), "F10-5"},
		{hasAnyFrom(2019, "116", "118", "120"), "F40-1"},
		{hasAny("116", "118", "120"), "F20-1"},
	},
	"Mercedes": {
		{has("EQA"), "H243-EQA"},
		{has("EQB"), "X243-EQB"},
		{has("EQC"), "N293-EQC"},
		{has("EQE"), "V295-EQE"},
		{has("EQS"), "V297-EQS"},
		{hasFrom("GLC", 2022), "X254-GLC"},
		{has("GLC"), "X253-GLC"},
		{has("GLE"), "V167-GLE"},
		{hasFrom("GLA", 2020), "H247-GLA"},
		{has("GLA"), "X156-GLA"},
		{has("GLB"), "X247-GLB"},
		{has("CLA"), "C118-CLA"},
		{has("VITO"), "W447-VITO"},
		{has("SPRINTER"), "W907-SPRINTER"},
		{hasAnyFrom(2021, "C180", "C200", "C220", "C300"), "W206-C"},
		{hasAny("C180", "C200", "C220", "C300"), "W205-C"},
		{hasAny("E200", "E220", "E300", "E350"), "W213-E"},
		{hasAny("S350", "S400", "S500", "S580"), "W223-S"},
		{hasAnyFrom(2018, "A150", "A160", "A180", "A200", "A250"), "W177-A"},
		{hasAny("A150", "A160", "A180", "A200", "A250"), "W176-A"},
		{hasAny("B180", "B200", "B250"), "W247-B"},
	},
	"Audi": {
		{has("Q4"), "F4-Q4ETRON"},
		{has("E-TRON"), "GE-ETRON"},
		{has("ETRON"), "GE-ETRON"},
		{has("Q8"), "4M-Q8"},
		{has("Q7"), "4M-Q7"},
		{hasFrom("Q5", 2017), "FY-Q5"},
		{has("Q5"), "8R-Q5"},
		{hasFrom("Q3", 2019), "F3-Q3"},
		{has("Q3"), "8U-Q3"},
		{has("Q2"), "GA-Q2"},
		{has("A1"), "GB-A1"},
		{hasFrom("A3", 2020), "8Y-A3"},
		{has("A3"), "8V-A3"},
		{has("A4"), "B9-A4"},
		{has("A5"), "F5-A5"},
		{hasFrom("A6", 2018), "C8-A6"},
		{has("A6"), "C7-A6"},
	},
	"Toyota": {
		{has("BZ4X"), "EA10-BZ4X"},
		{has("LAND CRUISER"), "J150-LANDCRUISER"},
		{has("HILUX"), "AN120-HILUX"},
		{hasFrom("RAV4", 2019), "XA50-RAV4"},
		{has("RAV4"), "XA40-RAV4"},
		{hasAny("C-HR", "CHR"), "AX10-CHR"},
		{has("COROLLA CROSS"), "XG10-COROLLACROSS"},
		{hasFrom("COROLLA", 2019), "E210-COROLLA"},
		{has("COROLLA"), "E170-COROLLA"},
		{has("CAMRY"), "XV70-CAMRY"},
		{has("YARIS CROSS"), "MXPB10-YARISCROSS"},
		{hasFrom("YARIS", 2020), "XP210-YARIS"},
		{has("YARIS"), "XP130-YARIS"},
		{has("PRIUS"), "XW50-PRIUS"},
		{has("AYGO"), "AB40-AYGO"},
	},
	"Volkswagen": {
		{hasAny("ID.3", "ID3"), "E11-ID3"},
		{hasAny("ID.4", "ID4"), "E21-ID4"},
		{hasAny("ID.5", "ID5"), "E39-ID5"},
		{has("E-GOLF"), "BE1-EGOLF"},
		{has("TOUAREG"), "CR-TOUAREG"},
		{hasFrom("TIGUAN", 2016), "AD1-TIGUAN"},
		{has("TIGUAN"), "5N-TIGUAN"},
		{has("PASSAT"), "B8-PASSAT"},
		{hasFrom("GOLF", 2020), "MK8-GOLF"},
		{has("GOLF"), "MK7-GOLF"},
		{hasFrom("POLO", 2017), "AW-POLO"},
		{has("POLO"), "6R-POLO"},
		{has("TOURAN"), "5T-TOURAN"},
		{has("TRANSPORTER"), "T6-TRANSPORTER"},
		{has("UP"), "AA-UP"},
	},
	"Hyundai": {
		{has("IONIQ 5"), "NE-IONIQ5"},
		{has("IONIQ 6"), "CE-IONIQ6"},
		{has("IONIQ"), "AE-IONIQ"},
		{hasFrom("KONA", 2023), "SX2-KONA"},
		{has("KONA"), "OS-KONA"},
		{hasFrom("TUCSON", 2021), "NX4-TUCSON"},
		{has("TUCSON"), "TL-TUCSON"},
		{has("SANTA FE"), "TM-SANTAFE"},
		{hasFrom("ELANTRA", 2021), "CN7-ELANTRA"},
		{has("ELANTRA"), "AD-ELANTRA"},
		{has("I30"), "PD-I30"},
		{has("I20"), "BC3-I20"},
		{has("I10"), "AC3-I10"},
		{has("VENUE"), "QX-VENUE"},
		{has("PALISADE"), "LX2-PALISADE"},
	},
	"Kia": {
		{has("EV6"), "CV-EV6"},
		{has("EV9"), "MV-EV9"},
		{hasFrom("NIRO", 2022), "SG2-NIRO"},
		{has("NIRO"), "DE-NIRO"},
		{hasFrom("SPORTAGE", 2021), "NQ5-SPORTAGE"},
		{has("SPORTAGE"), "QL-SPORTAGE"},
		{hasFrom("SORENTO", 2020), "MQ4-SORENTO"},
		{has("SORENTO"), "UM-SORENTO"},
		{has("CEED"), "CD-CEED"},
		{has("PICANTO"), "JA-PICANTO"},
		{has("STONIC"), "YB-STONIC"},
		{has("RIO"), "YB-RIO"},
		{has("SELTOS"), "SP2-SELTOS"},
		{has("CARNIVAL"), "KA4-CARNIVAL"},
	},
	"Mazda": {
		{has("MX-30"), "DR-MX30"},
		{has("CX-30"), "DM-CX30"},
		{has("CX-3"), "DK-CX3"},
		{hasFrom("CX-5", 2017), "KF-CX5"},
		{has("CX-5"), "KE-CX5"},
		{has("CX-60"), "KH-CX60"},
		{has("CX-9"), "TC-CX9"},
		{has("MX-5"), "ND-MX5"},
		{hasAnyFrom(2019, "MAZDA3", "MAZDA 3"), "BP-MAZDA3"},
		{hasAny("MAZDA3", "MAZDA 3"), "BM-MAZDA3"},
		{hasAny("MAZDA6", "MAZDA 6"), "GJ-MAZDA6"},
		{hasAny("MAZDA2", "MAZDA 2", "DEMIO"), "DJ-MAZDA2"},
	},
	"Honda": {
		{hasAny("E:NY1", "ENY1"), "ZC5-ENY1"},
		{hasAnyFrom(2023, "CR-V", "CRV"), "RS-CRV"},
		{hasAny("CR-V", "CRV"), "RW-CRV"},
		{hasAnyFrom(2021, "HR-V", "HRV"), "RZ-HRV"},
		{hasAny("HR-V", "HRV"), "RU-HRV"},
		{hasAnyFrom(2020, "JAZZ", "FIT"), "GR-JAZZ"},
		{hasAny("JAZZ", "FIT"), "GK-JAZZ"},
		{has("ACCORD"), "CV-ACCORD"},
		{hasFrom("CIVIC", 2022), "FL-CIVIC"},
		{has("CIVIC"), "FC-CIVIC"},
	},
	"Nissan": {
		{has("ARIYA"), "FE0-ARIYA"},
		{hasFrom("LEAF", 2018), "ZE1-LEAF"},
		{has("LEAF"), "ZE0-LEAF"},
		{hasFrom("QASHQAI", 2021), "J12-QASHQAI"},
		{has("QASHQAI"), "J11-QASHQAI"},
		{hasAnyFrom(2022, "X-TRAIL", "XTRAIL"), "T33-XTRAIL"},
		{hasAny("X-TRAIL", "XTRAIL"), "T32-XTRAIL"},
		{hasFrom("JUKE", 2019), "F16-JUKE"},
		{has("JUKE"), "F15-JUKE"},
		{has("MICRA"), "K14-MICRA"},
		{has("NAVARA"), "D23-NAVARA"},
	},
	"Ford": {
		{has("MACH-E"), "CX727-MACHE"},
		{has("MUSTANG"), "S550-MUSTANG"},
		{has("RANGER"), "T6-RANGER"},
		{has("TRANSIT"), "V363-TRANSIT"},
		{has("KUGA"), "CX482-KUGA"},
		{has("PUMA"), "CE1-PUMA"},
		{hasFrom("FOCUS", 2018), "C519-FOCUS"},
		{has("FOCUS"), "C346-FOCUS"},
		{has("FIESTA"), "B479-FIESTA"},
	},
	"Chevrolet": {
		{has("BOLT"), "BEV2-BOLT"},
		{has("SPARK"), "M400-SPARK"},
		{has("CRUZE"), "D2LC-CRUZE"},
		{has("MALIBU"), "E2LB-MALIBU"},
		{has("TRAX"), "U200-TRAX"},
		{has("EQUINOX"), "D2UC-EQUINOX"},
		{has("CAMARO"), "A1XC-CAMARO"},
		{has("SILVERADO"), "T1XX-SILVERADO"},
	},
}
