package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fuelmeter/internal/models"
	"fuelmeter/internal/repository"
	"fuelmeter/internal/service"
)

// NewTripsListHandler returns GET /api/trips handler. Accepts an optional
// ?limit= query.
func NewTripsListHandler(trips *service.TripsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		list, err := trips.List(r.Context(), uid, limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list trips")
			return
		}
		if list == nil {
			list = []models.Trip{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// NewTripsCreateHandler returns POST /api/trips handler.
func NewTripsCreateHandler(trips *service.TripsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		var input service.CreateTripInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		trip, err := trips.Create(r.Context(), uid, input)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidTrip):
				writeError(w, http.StatusBadRequest, "distance and unit price must be positive")
			case errors.Is(err, service.ErrMissingConsumption):
				writeError(w, http.StatusUnprocessableEntity, "vehicle has no consumption figure")
			case errors.Is(err, repository.ErrVehicleNotFound):
				writeError(w, http.StatusNotFound, "vehicle not found")
			default:
				writeError(w, http.StatusInternalServerError, "failed to record trip")
			}
			return
		}
		writeJSON(w, http.StatusCreated, trip)
	}
}

// NewTripsDeleteHandler returns DELETE /api/trips/{id} handler.
func NewTripsDeleteHandler(trips *service.TripsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		if err := trips.Delete(r.Context(), uid, id); err != nil {
			if errors.Is(err, repository.ErrTripNotFound) {
				writeError(w, http.StatusNotFound, "trip not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to delete trip")
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}
