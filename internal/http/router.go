package httpserver

import "net/http"

// Routes groups handlers. Everything under /api except auth requires a
// bearer token.
type Routes struct {
	Health http.HandlerFunc

	Signup http.HandlerFunc
	Login  http.HandlerFunc

	Lookup         http.HandlerFunc
	WeightEstimate http.HandlerFunc
	WeightBrands   http.HandlerFunc
	FuelPrices     http.HandlerFunc
	FuelEconomy    http.HandlerFunc

	VehiclesList   http.HandlerFunc
	VehiclesCreate http.HandlerFunc
	VehiclesGet    http.HandlerFunc
	VehiclesUpdate http.HandlerFunc
	VehiclesDelete http.HandlerFunc

	TripsList   http.HandlerFunc
	TripsCreate http.HandlerFunc
	TripsDelete http.HandlerFunc
}

// NewRouter registers endpoints. authn wraps the protected API surface.
func NewRouter(routes Routes, authn func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	register := func(pattern string, handler http.HandlerFunc, protected bool) {
		if handler == nil {
			return
		}
		if protected && authn != nil {
			mux.Handle(pattern, authn(handler))
			return
		}
		mux.Handle(pattern, handler)
	}

	register("GET /health", routes.Health, false)

	register("POST /auth/signup", routes.Signup, false)
	register("POST /auth/login", routes.Login, false)

	register("GET /api/lookup/{plate}", routes.Lookup, true)
	register("GET /api/weight", routes.WeightEstimate, true)
	register("GET /api/weight/brands", routes.WeightBrands, true)
	register("GET /api/prices", routes.FuelPrices, true)
	register("GET /api/fuel-economy", routes.FuelEconomy, true)

	register("GET /api/vehicles", routes.VehiclesList, true)
	register("POST /api/vehicles", routes.VehiclesCreate, true)
	register("GET /api/vehicles/{id}", routes.VehiclesGet, true)
	register("PUT /api/vehicles/{id}", routes.VehiclesUpdate, true)
	register("DELETE /api/vehicles/{id}", routes.VehiclesDelete, true)

	register("GET /api/trips", routes.TripsList, true)
	register("POST /api/trips", routes.TripsCreate, true)
	register("DELETE /api/trips/{id}", routes.TripsDelete, true)

	return mux
}
