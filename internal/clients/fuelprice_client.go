package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fuelmeter/internal/vehicledata"
)

// FuelPrices holds national-average pump prices per liter.
type FuelPrices struct {
	Gasoline float64 `json:"gasoline"`
	Diesel   float64 `json:"diesel"`
}

// FuelPriceClient queries the government fuel-price dataset. Station rows
// mix numeric formats (commas, currency suffixes); prices are normalized and
// averaged per fuel type.
type FuelPriceClient struct {
	base     *BaseClient
	resource string
}

// NewFuelPriceClient returns client.
func NewFuelPriceClient(baseURL, resource string, timeout time.Duration) *FuelPriceClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &FuelPriceClient{
		base:     NewBaseClient(baseURL, NewDefaultHTTPClient(timeout)),
		resource: resource,
	}
}

type priceRecord struct {
	SugDelek string     `json:"sug_delek"`
	Mehir    FlexString `json:"mehir"`
}

// FetchPrices returns the arithmetic mean price across all station records,
// split by fuel type. Zero values mean the upstream had no usable rows for
// that fuel; the caller decides on fallbacks.
func (c *FuelPriceClient) FetchPrices(ctx context.Context) (*FuelPrices, error) {
	query := url.Values{
		"resource_id": {c.resource},
		"limit":       {"500"},
	}
	status, body, err := c.base.Get(ctx, "/api/3/action/datastore_search", query)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("fuel price: status %d", status)
	}

	var decoded struct {
		Success bool `json:"success"`
		Result  struct {
			Records []priceRecord `json:"records"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("fuel price: decode: %w", err)
	}
	if !decoded.Success {
		return nil, fmt.Errorf("fuel price: upstream reported failure")
	}

	var gasSum, dieselSum float64
	var gasN, dieselN int
	for _, rec := range decoded.Result.Records {
		price, ok := normalizePrice(rec.Mehir.String())
		if !ok {
			continue
		}
		fuelType, _ := vehicledata.ClassifyFuelType(rec.SugDelek)
		switch fuelType {
		case vehicledata.FuelGasoline:
			gasSum += price
			gasN++
		case vehicledata.FuelDiesel:
			dieselSum += price
			dieselN++
		}
	}

	prices := &FuelPrices{}
	if gasN > 0 {
		prices.Gasoline = math.Round(gasSum/float64(gasN)*100) / 100
	}
	if dieselN > 0 {
		prices.Diesel = math.Round(dieselSum/float64(dieselN)*100) / 100
	}
	return prices, nil
}

// normalizePrice strips currency symbols and heterogeneous separators from a
// station price field. Plausible pump prices per liter sit in (0, 100).
func normalizePrice(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	s = strings.ReplaceAll(s, ",", "")

	price, err := strconv.ParseFloat(s, 64)
	if err != nil || price <= 0 || price >= 100 {
		return 0, false
	}
	return price, true
}
