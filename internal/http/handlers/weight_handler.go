package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"fuelmeter/internal/vehicledata"
)

// NewWeightEstimateHandler returns GET /api/weight handler. Resolves
// reference curb/gross weight from brand, model and optional year query
// parameters; unknown combinations yield 404 rather than a guess.
func NewWeightEstimateHandler() http.HandlerFunc {
	type response struct {
		Brand   string  `json:"brand"`
		CurbKg  float64 `json:"curbKg"`
		GrossKg float64 `json:"grossKg"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		brand := query.Get("brand")
		model := query.Get("model")
		if brand == "" || model == "" {
			writeError(w, http.StatusBadRequest, "brand and model are required")
			return
		}
		year, _ := strconv.Atoi(query.Get("year"))

		entry := vehicledata.EstimateVehicleWeight(brand, model, year)
		if entry == nil {
			writeError(w, http.StatusNotFound, "no reference weight for this model")
			return
		}
		writeJSON(w, http.StatusOK, response{
			Brand:   vehicledata.TranslateBrandToEnglish(brand),
			CurbKg:  entry.CurbKg,
			GrossKg: entry.GrossKg,
		})
	}
}

// NewWeightBrandsHandler returns GET /api/weight/brands handler listing
// brands with reference weight coverage.
func NewWeightBrandsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brands := vehicledata.SupportedWeightBrands()
		sort.Strings(brands)
		writeJSON(w, http.StatusOK, map[string][]string{"brands": brands})
	}
}
