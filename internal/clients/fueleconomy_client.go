package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// FuelEconomy holds consumption figures converted to km/L.
type FuelEconomy struct {
	CityKmL     float64 `json:"cityKmL"`
	HighwayKmL  float64 `json:"highwayKmL"`
	CombinedKmL float64 `json:"combinedKmL"`
}

// FuelEconomyClient queries the third-party trim database by brand/model/
// year. Used as a cross-check source for combustion consumption; the
// upstream reports L/100km, which is converted here.
type FuelEconomyClient struct {
	base *BaseClient
}

// NewFuelEconomyClient returns client.
func NewFuelEconomyClient(baseURL string, timeout time.Duration) *FuelEconomyClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &FuelEconomyClient{base: NewBaseClient(baseURL, NewDefaultHTTPClient(timeout))}
}

// FetchByTrim fetches consumption for a brand/model/year. Unknown trims
// yield (nil, nil).
func (c *FuelEconomyClient) FetchByTrim(ctx context.Context, brand, model string, year int) (*FuelEconomy, error) {
	query := url.Values{
		"make":  {brand},
		"model": {model},
	}
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}

	status, body, err := c.base.Get(ctx, "/vehicles", query)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("fuel economy: status %d", status)
	}

	var decoded struct {
		City     float64 `json:"city"`     // L/100km
		Highway  float64 `json:"highway"`  // L/100km
		Combined float64 `json:"combined"` // L/100km
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("fuel economy: decode: %w", err)
	}
	if decoded.Combined <= 0 && decoded.City <= 0 && decoded.Highway <= 0 {
		return nil, nil
	}

	return &FuelEconomy{
		CityKmL:     litersPer100ToKmL(decoded.City),
		HighwayKmL:  litersPer100ToKmL(decoded.Highway),
		CombinedKmL: litersPer100ToKmL(decoded.Combined),
	}, nil
}

// litersPer100ToKmL converts L/100km to km/L (100/value).
func litersPer100ToKmL(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Round(100.0/v*10) / 10
}
