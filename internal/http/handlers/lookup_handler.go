package handlers

import (
	"errors"
	"net/http"

	"fuelmeter/internal/service"
)

// NewLookupHandler returns GET /api/lookup/{plate} handler. The response is
// the canonical vehicle plus a consumption estimate the client can prefill
// into the add-vehicle form.
func NewLookupHandler(lookup *service.LookupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := lookup.Lookup(r.Context(), r.PathValue("plate"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidPlate):
				writeError(w, http.StatusBadRequest, "invalid plate")
			case errors.Is(err, service.ErrPlateNotFound):
				writeError(w, http.StatusNotFound, "plate not found")
			default:
				writeError(w, http.StatusBadGateway, "registry lookup failed")
			}
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
