package vehicledata

// brandWeights holds reference curb/gross weights (kg) per platform code,
// keyed by canonical brand. Values are typical for the volume trim of each
// generation. Reference data; correctness is verified by spot checks.
var brandWeights = map[string]map[string]WeightEntry{
	"BMW": {
		"G08-IX3": {2185, 2725}, "U11-IX1": {2010, 2505}, "I20-IX": {2440, 3010},
		"I01-I3": {1245, 1730}, "G26-I4": {2125, 2605}, "G60-I5": {2205, 2700},
		"G70-I7": {2640, 3250}, "I12-I8": {1485, 1930},
		"U11-X1": {1575, 2125}, "F48-X1": {1475, 2005},
		"G01-X3": {1715, 2335}, "F25-X3": {1735, 2350},
		"G05-X5": {2135, 2895}, "F15-X5": {2070, 2840}, "G07-X7": {2370, 3150},
		"G80-M3": {1730, 2230}, "G82-M4": {1725, 2225},
		"G20-3": {1470, 2000}, "F30-3": {1420, 1955},
		"G30-5": {1605, 2155}, "F10-5": {1625, 2165},
		"F40-1": {1365, 1880}, "F20-1": {1320, 1835},
	},
	"Mercedes": {
		"H243-EQA": {2040, 2530}, "X243-EQB": {2110, 2640}, "N293-EQC": {2420, 2930},
		"V295-EQE": {2355, 2880}, "V297-EQS": {2480, 3010},
		"X254-GLC": {1860, 2480}, "X253-GLC": {1735, 2350}, "V167-GLE": {2165, 2890},
		"H247-GLA": {1555, 2085}, "X156-GLA": {1470, 1990}, "X247-GLB": {1605, 2185},
		"C118-CLA": {1460, 1985}, "W447-VITO": {2045, 3050}, "W907-SPRINTER": {2345, 3500},
		"W206-C": {1645, 2185}, "W205-C": {1505, 2040}, "W213-E": {1680, 2250},
		"W223-S": {2065, 2685}, "W177-A": {1375, 1900}, "W176-A": {1345, 1855},
		"W247-B": {1425, 1965},
	},
	"Audi": {
		"F4-Q4ETRON": {2135, 2660}, "GE-ETRON": {2490, 3080},
		"4M-Q8": {2145, 2850}, "4M-Q7": {2135, 2845},
		"FY-Q5": {1720, 2320}, "8R-Q5": {1770, 2345},
		"F3-Q3": {1535, 2090}, "8U-Q3": {1460, 2000}, "GA-Q2": {1355, 1865},
		"GB-A1": {1165, 1660}, "8Y-A3": {1350, 1880}, "8V-A3": {1320, 1840},
		"B9-A4": {1445, 1990}, "F5-A5": {1505, 2045},
		"C8-A6": {1675, 2260}, "C7-A6": {1645, 2230},
	},
	"Toyota": {
		"EA10-BZ4X": {1920, 2450}, "J150-LANDCRUISER": {2265, 2990},
		"AN120-HILUX": {2095, 3050},
		"XA50-RAV4": {1630, 2190}, "XA40-RAV4": {1565, 2090},
		"AX10-CHR": {1420, 1945}, "XG10-COROLLACROSS": {1420, 1975},
		"E210-COROLLA": {1320, 1840}, "E170-COROLLA": {1285, 1805},
		"XV70-CAMRY": {1590, 2100},
		"MXPB10-YARISCROSS": {1175, 1685},
		"XP210-YARIS": {1090, 1565}, "XP130-YARIS": {1055, 1525},
		"XW50-PRIUS": {1380, 1845}, "AB40-AYGO": {855, 1240},
	},
	"Volkswagen": {
		"E11-ID3": {1805, 2280}, "E21-ID4": {2050, 2660}, "E39-ID5": {2117, 2710},
		"BE1-EGOLF": {1615, 2020}, "CR-TOUAREG": {2070, 2810},
		"AD1-TIGUAN": {1520, 2080}, "5N-TIGUAN": {1490, 2040},
		"B8-PASSAT": {1455, 2000},
		"MK8-GOLF": {1320, 1830}, "MK7-GOLF": {1280, 1790},
		"AW-POLO": {1145, 1630}, "6R-POLO": {1090, 1570},
		"5T-TOURAN": {1505, 2080}, "T6-TRANSPORTER": {1895, 3000},
		"AA-UP": {940, 1340},
	},
	"Hyundai": {
		"NE-IONIQ5": {1985, 2470}, "CE-IONIQ6": {1985, 2465}, "AE-IONIQ": {1475, 1920},
		"SX2-KONA": {1415, 1930}, "OS-KONA": {1345, 1830},
		"NX4-TUCSON": {1545, 2120}, "TL-TUCSON": {1500, 2065},
		"TM-SANTAFE": {1720, 2350},
		"CN7-ELANTRA": {1290, 1790}, "AD-ELANTRA": {1260, 1760},
		"PD-I30": {1275, 1790}, "BC3-I20": {1105, 1585}, "AC3-I10": {955, 1390},
		"QX-VENUE": {1160, 1640}, "LX2-PALISADE": {1925, 2575},
	},
	"Kia": {
		"CV-EV6": {1985, 2480}, "MV-EV9": {2555, 3130},
		"SG2-NIRO": {1415, 1910}, "DE-NIRO": {1430, 1930},
		"NQ5-SPORTAGE": {1505, 2090}, "QL-SPORTAGE": {1475, 2050},
		"MQ4-SORENTO": {1730, 2370}, "UM-SORENTO": {1700, 2330},
		"CD-CEED": {1270, 1790}, "JA-PICANTO": {945, 1380},
		"YB-STONIC": {1125, 1590}, "YB-RIO": {1110, 1575},
		"SP2-SELTOS": {1335, 1850}, "KA4-CARNIVAL": {2025, 2730},
	},
	"Mazda": {
		"DR-MX30": {1675, 2108}, "DM-CX30": {1395, 1910}, "DK-CX3": {1230, 1725},
		"KF-CX5": {1510, 2065}, "KE-CX5": {1460, 2015}, "KH-CX60": {1845, 2460},
		"TC-CX9": {1965, 2615}, "ND-MX5": {1025, 1265},
		"BP-MAZDA3": {1335, 1850}, "BM-MAZDA3": {1280, 1790},
		"GJ-MAZDA6": {1430, 1975}, "DJ-MAZDA2": {1045, 1510},
	},
	"Honda": {
		"ZC5-ENY1": {1730, 2190},
		"RS-CRV": {1625, 2195}, "RW-CRV": {1560, 2130},
		"RZ-HRV": {1380, 1880}, "RU-HRV": {1320, 1810},
		"GR-JAZZ": {1205, 1680}, "GK-JAZZ": {1130, 1595},
		"CV-ACCORD": {1465, 1985},
		"FL-CIVIC": {1390, 1895}, "FC-CIVIC": {1310, 1810},
	},
	"Nissan": {
		"FE0-ARIYA": {2180, 2690},
		"ZE1-LEAF": {1580, 2030}, "ZE0-LEAF": {1475, 1945},
		"J12-QASHQAI": {1425, 1980}, "J11-QASHQAI": {1380, 1925},
		"T33-XTRAIL": {1620, 2210}, "T32-XTRAIL": {1555, 2140},
		"F16-JUKE": {1220, 1705}, "F15-JUKE": {1185, 1660},
		"K14-MICRA": {1005, 1485}, "D23-NAVARA": {1995, 2910},
	},
	"Ford": {
		"CX727-MACHE": {2145, 2670}, "S550-MUSTANG": {1680, 2110},
		"T6-RANGER": {2100, 3130}, "V363-TRANSIT": {2040, 3500},
		"CX482-KUGA": {1575, 2150}, "CE1-PUMA": {1280, 1765},
		"C519-FOCUS": {1320, 1850}, "C346-FOCUS": {1285, 1810},
		"B479-FIESTA": {1130, 1600},
	},
	"Chevrolet": {
		"BEV2-BOLT": {1625, 2050}, "M400-SPARK": {1015, 1435},
		"D2LC-CRUZE": {1290, 1795}, "E2LB-MALIBU": {1430, 1950},
		"U200-TRAX": {1350, 1860}, "D2UC-EQUINOX": {1540, 2090},
		"A1XC-CAMARO": {1680, 2105}, "T1XX-SILVERADO": {2260, 3265},
	},
}
