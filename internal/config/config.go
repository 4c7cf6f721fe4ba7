package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config defines the fuelmeter service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"FUELMETER_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn" env:"FUELMETER_POSTGRES_DSN"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr" env:"FUELMETER_REDIS_ADDR"`
		Password string `yaml:"password" env:"FUELMETER_REDIS_PASSWORD"`
	} `yaml:"redis"`
	Auth struct {
		JWTSecret   string `yaml:"jwtSecret" env:"FUELMETER_JWT_SECRET"`
		TokenTTLMin int    `yaml:"tokenTtlMinutes" env:"FUELMETER_TOKEN_TTL_MINUTES"`
		BcryptCost  int    `yaml:"bcryptCost" env:"FUELMETER_BCRYPT_COST"`
	} `yaml:"auth"`
	Registry struct {
		BaseURL            string `yaml:"baseUrl" env:"FUELMETER_REGISTRY_BASE_URL"`
		CarResource        string `yaml:"carResource" env:"FUELMETER_REGISTRY_CAR_RESOURCE"`
		MotorcycleResource string `yaml:"motorcycleResource" env:"FUELMETER_REGISTRY_MOTORCYCLE_RESOURCE"`
		TruckResource      string `yaml:"truckResource" env:"FUELMETER_REGISTRY_TRUCK_RESOURCE"`
		WeightResource     string `yaml:"weightResource" env:"FUELMETER_REGISTRY_WEIGHT_RESOURCE"`
		TimeoutSeconds     int    `yaml:"timeoutSeconds" env:"FUELMETER_REGISTRY_TIMEOUT_SECONDS"`
	} `yaml:"registry"`
	FuelPrice struct {
		BaseURL          string  `yaml:"baseUrl" env:"FUELMETER_FUELPRICE_BASE_URL"`
		Resource         string  `yaml:"resource" env:"FUELMETER_FUELPRICE_RESOURCE"`
		FallbackGasoline float64 `yaml:"fallbackGasoline" env:"FUELMETER_FUELPRICE_FALLBACK_GASOLINE"`
		FallbackDiesel   float64 `yaml:"fallbackDiesel" env:"FUELMETER_FUELPRICE_FALLBACK_DIESEL"`
		CacheTTLMinutes  int     `yaml:"cacheTtlMinutes" env:"FUELMETER_FUELPRICE_CACHE_TTL_MINUTES"`
	} `yaml:"fuelPrice"`
	FuelEconomy struct {
		BaseURL string `yaml:"baseUrl" env:"FUELMETER_FUELECONOMY_BASE_URL"`
	} `yaml:"fuelEconomy"`
	Lookup struct {
		CacheTTLHours int `yaml:"cacheTtlHours" env:"FUELMETER_LOOKUP_CACHE_TTL_HOURS"`
	} `yaml:"lookup"`
}

// Load reads configuration and applies defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8080"
	cfg.Redis.Addr = "localhost:6379"
	cfg.Auth.TokenTTLMin = 60 * 24
	cfg.Registry.BaseURL = "https://data.gov.il"
	cfg.Registry.CarResource = "053cea08-09bc-40ec-8f7a-156f0677aff3"
	cfg.Registry.MotorcycleResource = "bf9df4e2-d90d-4c0a-a400-19e15af8e95f"
	cfg.Registry.TruckResource = "cd3acc5c-03c3-4c89-9c54-d40f93c0d790"
	cfg.Registry.WeightResource = "142afde2-6228-49f9-8a29-9b6c3a0cbe40"
	cfg.Registry.TimeoutSeconds = 5
	cfg.FuelPrice.BaseURL = "https://data.gov.il"
	cfg.FuelPrice.Resource = "64b71729-6dca-4b23-a3e2-6ad4b39f2a45"
	cfg.FuelPrice.FallbackGasoline = 7.10
	cfg.FuelPrice.FallbackDiesel = 7.80
	cfg.FuelPrice.CacheTTLMinutes = 180
	cfg.Lookup.CacheTTLHours = 24

	if err := loadInto(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, errors.New("config: database dsn required")
	}
	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		return nil, errors.New("config: jwt secret required")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// TokenTTL returns the JWT lifetime.
func (c *Config) TokenTTL() time.Duration {
	if c.Auth.TokenTTLMin <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.Auth.TokenTTLMin) * time.Minute
}

// RegistryTimeout returns the per-request upstream timeout.
func (c *Config) RegistryTimeout() time.Duration {
	if c.Registry.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.Registry.TimeoutSeconds) * time.Second
}

// PriceCacheTTL returns how long averaged prices stay cached.
func (c *Config) PriceCacheTTL() time.Duration {
	if c.FuelPrice.CacheTTLMinutes <= 0 {
		return 3 * time.Hour
	}
	return time.Duration(c.FuelPrice.CacheTTLMinutes) * time.Minute
}

// LookupCacheTTL returns how long plate-lookup results stay cached.
func (c *Config) LookupCacheTTL() time.Duration {
	if c.Lookup.CacheTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.Lookup.CacheTTLHours) * time.Hour
}
