package handlers

import (
	"net/http"

	"fuelmeter/internal/service"
)

// NewFuelPricesHandler returns GET /api/prices handler. Always answers with
// usable prices; the service falls back to configured defaults.
func NewFuelPricesHandler(prices *service.FuelPriceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, prices.Current(r.Context()))
	}
}
