package app

import (
	"context"
	"database/sql"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"fuelmeter/internal/cache"
	"fuelmeter/internal/clients"
	"fuelmeter/internal/config"
	"fuelmeter/internal/db"
	httpserver "fuelmeter/internal/http"
	"fuelmeter/internal/http/handlers"
	"fuelmeter/internal/http/middleware"
	"fuelmeter/internal/migration"
	"fuelmeter/internal/password"
	redisstore "fuelmeter/internal/redis"
	"fuelmeter/internal/repository"
	"fuelmeter/internal/service"
)

// App wires fuelmeter dependencies.
type App struct {
	server      *httpserver.Server
	db          *sql.DB
	redisClient *redis.Client
	logger      *zap.Logger
}

// New constructs the application graph and applies pending migrations.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := db.NewPostgres(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	if err := migration.Run(ctx, sqlDB, logger); err != nil {
		sqlDB.Close()
		return nil, err
	}

	redisClient, err := redisstore.NewClient(cfg.Redis.Addr, cfg.Redis.Password)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	userRepo := repository.NewUserRepository(sqlDB)
	vehicleRepo := repository.NewVehicleRepository(sqlDB)
	tripRepo := repository.NewTripRepository(sqlDB)

	registryClient := clients.NewRegistryClient(cfg.Registry.BaseURL, clients.RegistryResources{
		Car:        cfg.Registry.CarResource,
		Motorcycle: cfg.Registry.MotorcycleResource,
		Truck:      cfg.Registry.TruckResource,
	}, cfg.RegistryTimeout())
	weightClient := clients.NewWeightClient(cfg.Registry.BaseURL, cfg.Registry.WeightResource, cfg.RegistryTimeout())
	priceClient := clients.NewFuelPriceClient(cfg.FuelPrice.BaseURL, cfg.FuelPrice.Resource, cfg.RegistryTimeout())
	economyClient := clients.NewFuelEconomyClient(cfg.FuelEconomy.BaseURL, cfg.RegistryTimeout())

	lookupCache := cache.NewLookupCache(redisClient, cfg.LookupCacheTTL())
	priceCache := cache.NewPriceCache(redisClient, cfg.PriceCacheTTL())

	hasher := password.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.TokenTTL())

	authService := service.NewAuthService(userRepo, hasher, tokens, logger)
	lookupService := service.NewLookupService(registryClient, weightClient, lookupCache, logger)
	vehiclesService := service.NewVehiclesService(vehicleRepo, logger)
	tripsService := service.NewTripsService(tripRepo, vehicleRepo, logger)
	priceService := service.NewFuelPriceService(priceClient, priceCache, clients.FuelPrices{
		Gasoline: cfg.FuelPrice.FallbackGasoline,
		Diesel:   cfg.FuelPrice.FallbackDiesel,
	}, logger)

	routes := httpserver.Routes{
		Health: handlers.NewHealthHandler(),

		Signup: handlers.NewSignupHandler(authService),
		Login:  handlers.NewLoginHandler(authService),

		Lookup:         handlers.NewLookupHandler(lookupService),
		WeightEstimate: handlers.NewWeightEstimateHandler(),
		WeightBrands:   handlers.NewWeightBrandsHandler(),
		FuelPrices:     handlers.NewFuelPricesHandler(priceService),
		FuelEconomy:    handlers.NewFuelEconomyHandler(economyClient),

		VehiclesList:   handlers.NewVehiclesListHandler(vehiclesService),
		VehiclesCreate: handlers.NewVehiclesCreateHandler(vehiclesService),
		VehiclesGet:    handlers.NewVehiclesGetHandler(vehiclesService),
		VehiclesUpdate: handlers.NewVehiclesUpdateHandler(vehiclesService),
		VehiclesDelete: handlers.NewVehiclesDeleteHandler(vehiclesService),

		TripsList:   handlers.NewTripsListHandler(tripsService),
		TripsCreate: handlers.NewTripsCreateHandler(tripsService),
		TripsDelete: handlers.NewTripsDeleteHandler(tripsService),
	}

	router := httpserver.NewRouter(routes, middleware.Auth(tokens))
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server:      server,
		db:          sqlDB,
		redisClient: redisClient,
		logger:      logger,
	}, nil
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
}
