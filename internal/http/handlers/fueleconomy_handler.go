package handlers

import (
	"context"
	"net/http"
	"strconv"

	"fuelmeter/internal/clients"
	"fuelmeter/internal/vehicledata"
)

// FuelEconomyFetcher is the trim-database contract.
type FuelEconomyFetcher interface {
	FetchByTrim(ctx context.Context, brand, model string, year int) (*clients.FuelEconomy, error)
}

// NewFuelEconomyHandler returns GET /api/fuel-economy handler, a thin proxy
// over the trim database with brand normalization applied first.
func NewFuelEconomyHandler(economy FuelEconomyFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		brand := query.Get("brand")
		model := query.Get("model")
		if brand == "" || model == "" {
			writeError(w, http.StatusBadRequest, "brand and model are required")
			return
		}
		year, _ := strconv.Atoi(query.Get("year"))

		result, err := economy.FetchByTrim(r.Context(), vehicledata.TranslateBrandToEnglish(brand), model, year)
		if err != nil {
			writeError(w, http.StatusBadGateway, "fuel economy lookup failed")
			return
		}
		if result == nil {
			writeError(w, http.StatusNotFound, "no fuel economy data for this trim")
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
