package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fuelmeter/internal/models"
	"fuelmeter/internal/repository"
	"fuelmeter/internal/service"
)

// NewVehiclesListHandler returns GET /api/vehicles handler.
func NewVehiclesListHandler(vehicles *service.VehiclesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		list, err := vehicles.List(r.Context(), uid)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list vehicles")
			return
		}
		if list == nil {
			list = []models.Vehicle{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// NewVehiclesCreateHandler returns POST /api/vehicles handler.
func NewVehiclesCreateHandler(vehicles *service.VehiclesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		var vehicle models.Vehicle
		if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		created, err := vehicles.Create(r.Context(), uid, &vehicle)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// NewVehiclesGetHandler returns GET /api/vehicles/{id} handler.
func NewVehiclesGetHandler(vehicles *service.VehiclesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		vehicle, err := vehicles.Get(r.Context(), uid, id)
		if err != nil {
			if errors.Is(err, repository.ErrVehicleNotFound) {
				writeError(w, http.StatusNotFound, "vehicle not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to load vehicle")
			return
		}
		writeJSON(w, http.StatusOK, vehicle)
	}
}

// NewVehiclesUpdateHandler returns PUT /api/vehicles/{id} handler.
func NewVehiclesUpdateHandler(vehicles *service.VehiclesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		var vehicle models.Vehicle
		if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		vehicle.ID = id
		updated, err := vehicles.Update(r.Context(), uid, &vehicle)
		if err != nil {
			if errors.Is(err, repository.ErrVehicleNotFound) {
				writeError(w, http.StatusNotFound, "vehicle not found")
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// NewVehiclesDeleteHandler returns DELETE /api/vehicles/{id} handler.
func NewVehiclesDeleteHandler(vehicles *service.VehiclesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		if err := vehicles.Delete(r.Context(), uid, id); err != nil {
			if errors.Is(err, repository.ErrVehicleNotFound) {
				writeError(w, http.StatusNotFound, "vehicle not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to delete vehicle")
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}
