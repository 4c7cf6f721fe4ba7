package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"unicode"

	"go.uber.org/zap"

	"fuelmeter/internal/clients"
	"fuelmeter/internal/estimation"
	"fuelmeter/internal/models"
	"fuelmeter/internal/vehicledata"
)

// ErrPlateNotFound is returned when no registry category knows the plate.
var ErrPlateNotFound = errors.New("lookup: plate not found in any registry")

// ErrInvalidPlate is returned for plates that cannot be a license number.
var ErrInvalidPlate = errors.New("lookup: invalid plate")

// RegistryFetcher is the primary registry contract (one resource per
// vehicle category).
type RegistryFetcher interface {
	FetchByPlate(ctx context.Context, category, plate string) (*clients.RegistryRecord, error)
}

// WeightFetcher is the secondary weight-by-model-code registry contract.
type WeightFetcher interface {
	FetchByModelCode(ctx context.Context, modelCode string) (*clients.ModelWeightRecord, error)
}

// LookupStore caches resolved lookups. Any Get error is treated as a miss.
type LookupStore interface {
	Save(ctx context.Context, plate string, result any) error
	Get(ctx context.Context, plate string, out any) error
}

// LookupResult is the full answer for one plate: the canonical vehicle data
// plus the consumption estimate the client can prefill.
type LookupResult struct {
	Vehicle  models.CanonicalVehicle `json:"vehicle"`
	Estimate estimation.Estimate     `json:"estimate"`
}

// LookupService resolves a license plate into canonical vehicle data and a
// consumption estimate. It queries all registry categories concurrently and
// never fails on estimation: missing inputs degrade confidence instead.
type LookupService struct {
	registry RegistryFetcher
	weights  WeightFetcher
	cache    LookupStore
	logger   *zap.Logger
}

// NewLookupService builds LookupService. cache may be nil.
func NewLookupService(registry RegistryFetcher, weights WeightFetcher, cache LookupStore, logger *zap.Logger) *LookupService {
	return &LookupService{
		registry: registry,
		weights:  weights,
		cache:    cache,
		logger:   logger,
	}
}

// Categories in priority order. A plate that appears in several registries
// (re-registered numbers) resolves to the highest-priority hit.
var lookupCategories = []string{
	estimation.VehicleTypeCar,
	estimation.VehicleTypeMotorcycle,
	estimation.VehicleTypeTruck,
}

// Lookup resolves a plate. Registry branch failures are logged and treated
// as empty; only all-empty results produce ErrPlateNotFound.
func (s *LookupService) Lookup(ctx context.Context, plate string) (*LookupResult, error) {
	plate, err := normalizePlate(plate)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		var cached LookupResult
		if err := s.cache.Get(ctx, plate, &cached); err == nil {
			return &cached, nil
		}
	}

	category, record := s.fetchAllCategories(ctx, plate)
	if record == nil {
		return nil, ErrPlateNotFound
	}

	result := s.resolve(ctx, category, record)

	if s.cache != nil {
		if err := s.cache.Save(ctx, plate, result); err != nil {
			s.logger.Warn("lookup cache save failed", zap.String("plate", plate), zap.Error(err))
		}
	}
	return result, nil
}

// fetchAllCategories queries every registry category in parallel and picks
// the highest-priority record. Branches are independent: a timeout or decode
// failure in one does not discard hits from the others.
func (s *LookupService) fetchAllCategories(ctx context.Context, plate string) (string, *clients.RegistryRecord) {
	records := make([]*clients.RegistryRecord, len(lookupCategories))

	var wg sync.WaitGroup
	for i, category := range lookupCategories {
		wg.Add(1)
		go func(i int, category string) {
			defer wg.Done()
			record, err := s.registry.FetchByPlate(ctx, category, plate)
			if err != nil {
				s.logger.Warn("registry branch failed",
					zap.String("category", category),
					zap.String("plate", plate),
					zap.Error(err))
				return
			}
			records[i] = record
		}(i, category)
	}
	wg.Wait()

	for i, record := range records {
		if record != nil {
			return lookupCategories[i], record
		}
	}
	return "", nil
}

// resolve turns a raw registry record into canonical vehicle data plus an
// estimate. It never returns an error: every unresolved field falls back to
// a default and shows up in the estimate's confidence.
func (s *LookupService) resolve(ctx context.Context, category string, record *clients.RegistryRecord) *LookupResult {
	brand := vehicledata.TranslateBrandToEnglish(record.TozeretNm)
	model := record.ModelText()
	year := record.Year()
	fuelType, hybrid := vehicledata.ClassifyFuelType(record.SugDelekNm)

	engineCC := s.resolveEngineCC(record, brand, model, fuelType)
	curb, gross := s.resolveWeights(ctx, category, record, brand, model, year)

	vehicle := models.CanonicalVehicle{
		Plate:         record.Plate.String(),
		Brand:         brand,
		Model:         model,
		VehicleType:   category,
		Year:          year,
		FuelType:      fuelType,
		Hybrid:        hybrid,
		EngineCC:      engineCC,
		CurbWeightKg:  curb,
		GrossWeightKg: gross,
	}

	var estimate estimation.Estimate
	switch {
	case category == estimation.VehicleTypeMotorcycle && fuelType == vehicledata.FuelUnknown:
		// Ambiguous fuel on a motorcycle: report the energy-equivalent
		// figure from the displacement bracket table.
		estimate = estimation.EstimateMotorcycleEnergy(engineCC)
	case fuelType == vehicledata.FuelElectric:
		estimate = estimation.EstimateEVAdvanced(estimation.EVParams{
			VehicleType: category,
			WeightKg:    curb,
			Year:        year,
		})
	default:
		estimate = estimation.EstimateICE(estimation.ICEParams{
			VehicleType: category,
			EngineCC:    engineCC,
			WeightKg:    curb,
			Year:        year,
			FuelType:    fuelType,
			Hybrid:      hybrid,
		})
	}

	return &LookupResult{Vehicle: vehicle, Estimate: estimate}
}

// resolveEngineCC works down the displacement tiers: the registry's numeric
// column, then the engine family code, then brand/model heuristics. Zero
// means unresolved and lets the estimator apply its per-type default.
func (s *LookupService) resolveEngineCC(record *clients.RegistryRecord, brand, model, fuelType string) int {
	if cc, ok := vehicledata.ParseIntSafe(record.NefachManoa.String()); ok && vehicledata.ValidEngineCC(cc) {
		return cc
	}
	if cc, ok := vehicledata.LookupEngineCC(record.DegemManoa); ok {
		return cc
	}
	// The model-name tier describes combustion lines only; an electric trim
	// sharing the name (IX1 contains X1) must not inherit a displacement.
	if fuelType == vehicledata.FuelElectric {
		return 0
	}
	if cc, ok := vehicledata.EstimateEngineCC(brand, model); ok {
		return cc
	}
	return 0
}

// resolveWeights resolves curb and gross weight in kg (0 = unknown).
//
// Motorcycles use only the primary registry: the secondary has negligible
// coverage for them and its car-centric rows would poison the result. Cars
// and trucks take curb from the primary, then consult the secondary by model
// code for gross, with the primary's gross column and the secondary's curb
// column as fallbacks, and the reference platform table as the last tier.
func (s *LookupService) resolveWeights(ctx context.Context, category string, record *clients.RegistryRecord, brand, model string, year int) (curb, gross float64) {
	curb, _ = vehicledata.ParseFloatSafe(record.Misgeret.String())
	gross, _ = vehicledata.ParseFloatSafe(record.MishkalKolel.String())

	if category == estimation.VehicleTypeMotorcycle {
		return curb, gross
	}

	var secondary *clients.ModelWeightRecord
	if s.weights != nil {
		var err error
		secondary, err = s.weights.FetchByModelCode(ctx, record.DegemCd.String())
		if err != nil {
			s.logger.Warn("weight registry failed",
				zap.String("model_code", record.DegemCd.String()),
				zap.Error(err))
			secondary = nil
		}
	}

	if secondary != nil {
		if v, ok := vehicledata.ParseFloatSafe(secondary.MishkalKolel.String()); ok && vehicledata.ValidWeightKg(v) {
			gross = v
		}
		if curb == 0 {
			if v, ok := vehicledata.ParseFloatSafe(secondary.MishkalAzmi.String()); ok && vehicledata.ValidWeightKg(v) {
				curb = v
			}
		}
	}

	if curb == 0 || gross == 0 {
		if entry := vehicledata.EstimateVehicleWeight(brand, model, year); entry != nil {
			if curb == 0 {
				curb = entry.CurbKg
			}
			if gross == 0 {
				gross = entry.GrossKg
			}
		}
	}
	return curb, gross
}

// normalizePlate strips separators and validates the remaining digits.
// Israeli plates are 7 or 8 digits; older registrations go down to 5.
func normalizePlate(raw string) (string, error) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == ' ' || r == '.':
			// separator noise from manual entry
		default:
			return "", ErrInvalidPlate
		}
	}
	plate := b.String()
	if len(plate) < 5 || len(plate) > 8 {
		return "", ErrInvalidPlate
	}
	return plate, nil
}
