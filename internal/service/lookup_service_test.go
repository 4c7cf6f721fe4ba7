package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"

	"fuelmeter/internal/clients"
	"fuelmeter/internal/estimation"
	"fuelmeter/internal/vehicledata"
)

type fakeRegistry struct {
	records map[string]*clients.RegistryRecord // keyed by category
	errs    map[string]error
}

func (f *fakeRegistry) FetchByPlate(_ context.Context, category, _ string) (*clients.RegistryRecord, error) {
	if err := f.errs[category]; err != nil {
		return nil, err
	}
	return f.records[category], nil
}

type fakeWeights struct {
	record *clients.ModelWeightRecord
	err    error
	calls  int
}

func (f *fakeWeights) FetchByModelCode(_ context.Context, _ string) (*clients.ModelWeightRecord, error) {
	f.calls++
	return f.record, f.err
}

type fakeLookupStore struct {
	saved map[string][]byte
}

func newFakeLookupStore() *fakeLookupStore {
	return &fakeLookupStore{saved: map[string][]byte{}}
}

func (f *fakeLookupStore) Save(_ context.Context, plate string, result any) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	f.saved[plate] = data
	return nil
}

func (f *fakeLookupStore) Get(_ context.Context, plate string, out any) error {
	data, ok := f.saved[plate]
	if !ok {
		return errors.New("miss")
	}
	return json.Unmarshal(data, out)
}

func TestLookupHondaCivicEndToEnd(t *testing.T) {
	registry := &fakeRegistry{
		records: map[string]*clients.RegistryRecord{
			estimation.VehicleTypeCar: {
				Plate:        "1234567",
				TozeretNm:    "הונדה",
				SugDelekNm:   "בנזין",
				DegemNm:      "CIVIC FC",
				ShnatYitzur:  "2017",
				Misgeret:     "1300",
				MishkalKolel: "JHMFC1550HX012345", // VIN leaked into the weight column
				DegemManoa:   "L15B7",
				DegemCd:      "411",
			},
		},
	}
	weights := &fakeWeights{
		record: &clients.ModelWeightRecord{
			DegemCd:      "411",
			MishkalKolel: "1810",
		},
	}
	store := newFakeLookupStore()
	svc := NewLookupService(registry, weights, store, zap.NewNop())

	result, err := svc.Lookup(context.Background(), "12-345-67")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	v := result.Vehicle
	if v.Brand != "Honda" {
		t.Fatalf("brand = %q, want Honda", v.Brand)
	}
	if v.VehicleType != estimation.VehicleTypeCar {
		t.Fatalf("vehicle type = %q, want car", v.VehicleType)
	}
	if v.Year != 2017 {
		t.Fatalf("year = %d, want 2017", v.Year)
	}
	if v.FuelType != vehicledata.FuelGasoline || v.Hybrid {
		t.Fatalf("fuel = %q hybrid=%v, want Gasoline non-hybrid", v.FuelType, v.Hybrid)
	}
	if v.EngineCC != 1498 {
		t.Fatalf("engine cc = %d, want 1498 from engine code", v.EngineCC)
	}
	if v.CurbWeightKg != 1300 {
		t.Fatalf("curb = %v, want 1300 from primary registry", v.CurbWeightKg)
	}
	if v.GrossWeightKg != 1810 {
		t.Fatalf("gross = %v, want 1810 from secondary after VIN rejection", v.GrossWeightKg)
	}

	if result.Estimate.Unit != estimation.UnitKmPerLiter {
		t.Fatalf("estimate unit = %q, want km/L", result.Estimate.Unit)
	}
	if result.Estimate.Confidence != estimation.ConfidenceHigh {
		t.Fatalf("confidence = %q, want high", result.Estimate.Confidence)
	}

	if _, ok := store.saved["1234567"]; !ok {
		t.Fatal("result was not cached under the normalized plate")
	}
}

func TestLookupPriorityCarBeatsTruck(t *testing.T) {
	registry := &fakeRegistry{
		records: map[string]*clients.RegistryRecord{
			estimation.VehicleTypeCar:   {Plate: "7654321", TozeretNm: "טויוטה", SugDelekNm: "בנזין", KinuyMishari: "COROLLA"},
			estimation.VehicleTypeTruck: {Plate: "7654321", TozeretNm: "איווקו", SugDelekNm: "דיזל"},
		},
	}
	svc := NewLookupService(registry, &fakeWeights{}, nil, zap.NewNop())

	result, err := svc.Lookup(context.Background(), "7654321")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if result.Vehicle.VehicleType != estimation.VehicleTypeCar {
		t.Fatalf("vehicle type = %q, want car to win over truck", result.Vehicle.VehicleType)
	}
}

func TestLookupMotorcycleSurvivesCarBranchFailure(t *testing.T) {
	registry := &fakeRegistry{
		records: map[string]*clients.RegistryRecord{
			estimation.VehicleTypeMotorcycle: {
				Plate:        "5554443",
				TozeretNm:    "ימאהה",
				SugDelekNm:   "בנזין",
				KinuyMishari: "MT-07",
				NefachManoa:  "689",
				Misgeret:     "184",
			},
		},
		errs: map[string]error{
			estimation.VehicleTypeCar: errors.New("upstream timeout"),
		},
	}
	weights := &fakeWeights{}
	svc := NewLookupService(registry, weights, nil, zap.NewNop())

	result, err := svc.Lookup(context.Background(), "5554443")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if result.Vehicle.VehicleType != estimation.VehicleTypeMotorcycle {
		t.Fatalf("vehicle type = %q, want motorcycle", result.Vehicle.VehicleType)
	}
	if result.Vehicle.EngineCC != 689 {
		t.Fatalf("engine cc = %d, want 689 from registry column", result.Vehicle.EngineCC)
	}
	// The coarse weight sanitizer rejects 3-digit values below 500 kg, so a
	// real motorcycle curb weight is dropped and the estimator's per-type
	// default takes over.
	if result.Vehicle.CurbWeightKg != 0 {
		t.Fatalf("curb = %v, want 0 after sanitizer rejection", result.Vehicle.CurbWeightKg)
	}
	if result.Estimate.Confidence != estimation.ConfidenceMedium {
		t.Fatalf("confidence = %q, want medium with defaulted weight", result.Estimate.Confidence)
	}
	if weights.calls != 0 {
		t.Fatal("secondary weight registry must not be consulted for motorcycles")
	}
}

func TestLookupMediumConfidenceWhenEngineCCUnresolved(t *testing.T) {
	// Same shape as the Civic lookup but with no displacement column, no
	// engine code and a model line outside the displacement-pattern table,
	// so the estimator defaults the CC and drops one confidence tier.
	registry := &fakeRegistry{
		records: map[string]*clients.RegistryRecord{
			estimation.VehicleTypeCar: {
				Plate:        "2345678",
				TozeretNm:    "הונדה",
				SugDelekNm:   "בנזין",
				DegemNm:      "STEPWGN",
				ShnatYitzur:  "2017",
				Misgeret:     "1350",
				MishkalKolel: "JHMRP3850HX054321",
			},
		},
	}
	svc := NewLookupService(registry, &fakeWeights{}, nil, zap.NewNop())

	result, err := svc.Lookup(context.Background(), "2345678")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if result.Vehicle.EngineCC != 0 {
		t.Fatalf("engine cc = %d, want 0 unresolved", result.Vehicle.EngineCC)
	}
	if result.Vehicle.CurbWeightKg != 1350 {
		t.Fatalf("curb = %v, want 1350 from primary registry", result.Vehicle.CurbWeightKg)
	}
	if result.Estimate.Confidence != estimation.ConfidenceMedium {
		t.Fatalf("confidence = %q, want medium with defaulted CC", result.Estimate.Confidence)
	}
}

func TestLookupMotorcycleAmbiguousFuelUsesEnergyBrackets(t *testing.T) {
	registry := &fakeRegistry{
		records: map[string]*clients.RegistryRecord{
			estimation.VehicleTypeMotorcycle: {
				Plate:        "4445556",
				TozeretNm:    "ימאהה",
				KinuyMishari: "MT-07",
				NefachManoa:  "689",
			},
		},
	}
	svc := NewLookupService(registry, &fakeWeights{}, nil, zap.NewNop())

	result, err := svc.Lookup(context.Background(), "4445556")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if result.Vehicle.FuelType != vehicledata.FuelUnknown {
		t.Fatalf("fuel = %q, want Unknown with empty registry fuel text", result.Vehicle.FuelType)
	}
	if result.Estimate.Unit != estimation.UnitKWhPer100Km {
		t.Fatalf("estimate unit = %q, want energy-equivalent kWh/100km", result.Estimate.Unit)
	}
	if result.Estimate.Value != 7.0 {
		t.Fatalf("estimate = %v, want 7.0 from the 689cc bracket", result.Estimate.Value)
	}
}

func TestLookupElectricSkipsModelNameDisplacement(t *testing.T) {
	// The IX1 model text contains "X1"; the combustion pattern tier must not
	// stamp the X1's displacement onto an electric vehicle.
	registry := &fakeRegistry{
		records: map[string]*clients.RegistryRecord{
			estimation.VehicleTypeCar: {
				Plate:        "8887776",
				TozeretNm:    "ב.מ.וו",
				SugDelekNm:   "חשמל",
				KinuyMishari: "IX1",
				ShnatYitzur:  "2023",
				Misgeret:     "1940",
			},
		},
	}
	svc := NewLookupService(registry, &fakeWeights{}, nil, zap.NewNop())

	result, err := svc.Lookup(context.Background(), "8887776")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if result.Vehicle.Brand != "BMW" {
		t.Fatalf("brand = %q, want BMW", result.Vehicle.Brand)
	}
	if result.Vehicle.EngineCC != 0 {
		t.Fatalf("engine cc = %d, want 0 for an electric vehicle", result.Vehicle.EngineCC)
	}
	if result.Estimate.Unit != estimation.UnitKWhPer100Km {
		t.Fatalf("estimate unit = %q, want kWh/100km", result.Estimate.Unit)
	}
}

func TestLookupElectricVehicle(t *testing.T) {
	registry := &fakeRegistry{
		records: map[string]*clients.RegistryRecord{
			estimation.VehicleTypeCar: {
				Plate:        "9998887",
				TozeretNm:    "טסלה",
				SugDelekNm:   "חשמל",
				KinuyMishari: "MODEL 3",
				ShnatYitzur:  "2021",
				Misgeret:     "1765",
			},
		},
	}
	svc := NewLookupService(registry, &fakeWeights{}, nil, zap.NewNop())

	result, err := svc.Lookup(context.Background(), "9998887")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if result.Vehicle.FuelType != vehicledata.FuelElectric {
		t.Fatalf("fuel = %q, want Electric", result.Vehicle.FuelType)
	}
	if result.Estimate.Unit != estimation.UnitKWhPer100Km {
		t.Fatalf("estimate unit = %q, want kWh/100km", result.Estimate.Unit)
	}
	if result.Estimate.Value < 10 || result.Estimate.Value > 35 {
		t.Fatalf("estimate %v escaped the EV clamp band", result.Estimate.Value)
	}
}

func TestLookupNotFound(t *testing.T) {
	svc := NewLookupService(&fakeRegistry{}, &fakeWeights{}, nil, zap.NewNop())
	if _, err := svc.Lookup(context.Background(), "1112223"); !errors.Is(err, ErrPlateNotFound) {
		t.Fatalf("err = %v, want ErrPlateNotFound", err)
	}
}

func TestLookupInvalidPlate(t *testing.T) {
	svc := NewLookupService(&fakeRegistry{}, &fakeWeights{}, nil, zap.NewNop())
	for _, plate := range []string{"", "12", "123456789", "12345AB"} {
		if _, err := svc.Lookup(context.Background(), plate); !errors.Is(err, ErrInvalidPlate) {
			t.Fatalf("plate %q: err = %v, want ErrInvalidPlate", plate, err)
		}
	}
}

func TestLookupCacheHitSkipsRegistry(t *testing.T) {
	store := newFakeLookupStore()
	cached := &LookupResult{}
	cached.Vehicle.Plate = "3334445"
	cached.Vehicle.Brand = "Kia"
	if err := store.Save(context.Background(), "3334445", cached); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	registry := &fakeRegistry{errs: map[string]error{
		estimation.VehicleTypeCar:        errors.New("must not be called"),
		estimation.VehicleTypeMotorcycle: errors.New("must not be called"),
		estimation.VehicleTypeTruck:      errors.New("must not be called"),
	}}
	svc := NewLookupService(registry, &fakeWeights{}, store, zap.NewNop())

	result, err := svc.Lookup(context.Background(), "3334445")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if result.Vehicle.Brand != "Kia" {
		t.Fatalf("brand = %q, want cached Kia", result.Vehicle.Brand)
	}
}
