package estimation

import "fuelmeter/internal/vehicledata"

// Motorcycle displacement-to-energy brackets in kWh/100km. Used when a
// motorcycle's registry fuel type is ambiguous and an energy-equivalent
// figure is needed for comparison. Policy constants without a published
// derivation; preserved exactly, not re-derived.
var motorcycleEnergyBrackets = []struct {
	maxCC  int
	factor float64
}{
	{125, 4.2},
	{250, 5.0},
	{500, 6.0},
	{750, 7.0},
	{1000, 8.0},
	{1300, 9.0},
}

// MotorcycleEnergyFactor maps engine displacement to an assumed kWh/100km
// equivalent. Displacements above the top threshold use the largest
// bracket's factor.
func MotorcycleEnergyFactor(cc int) float64 {
	for _, bracket := range motorcycleEnergyBrackets {
		if cc <= bracket.maxCC {
			return bracket.factor
		}
	}
	return motorcycleEnergyBrackets[len(motorcycleEnergyBrackets)-1].factor
}

// EstimateMotorcycleEnergy builds the estimate for a motorcycle whose
// registry fuel type could not be classified. The ambiguous fuel already
// costs one confidence tier; a missing displacement costs another.
func EstimateMotorcycleEnergy(cc int) Estimate {
	basedOn := []string{"energyFactorTable"}
	defaulted := 1
	if cc > 0 && vehicledata.ValidEngineCC(cc) {
		basedOn = append(basedOn, "engineCC")
	} else {
		cc = defaultMotorcycleCC
		basedOn = append(basedOn, "defaultCC")
		defaulted++
	}

	value := MotorcycleEnergyFactor(cc)
	confidence := confidenceFromDefaults(defaulted)
	spread := spreadFor(confidence)
	return Estimate{
		Value:      value,
		Unit:       UnitKWhPer100Km,
		Confidence: confidence,
		BasedOn:    basedOn,
		Range: Range{
			Min: round1(value * (1 - spread)),
			Max: round1(value * (1 + spread)),
		},
	}
}
