package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchPricesAveragesPerFuel(t *testing.T) {
	const response = `{
		"success": true,
		"result": {"records": [
			{"sug_delek": "בנזין 95", "mehir": "7.40"},
			{"sug_delek": "בנזין 95", "mehir": 7.60},
			{"sug_delek": "סולר", "mehir": "8,10"},
			{"sug_delek": "סולר", "mehir": "₪7.90"},
			{"sug_delek": "בנזין 95", "mehir": "free"},
			{"sug_delek": "גפ\"מ", "mehir": "4.50"}
		]}
	}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(response))
	}))
	defer server.Close()

	client := NewFuelPriceClient(server.URL, "price-res", time.Second)
	prices, err := client.FetchPrices(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if prices.Gasoline != 7.50 { // (7.40 + 7.60) / 2, unparseable row skipped
		t.Fatalf("gasoline = %v, want 7.50", prices.Gasoline)
	}
	if prices.Diesel != 8.00 { // (8.10 + 7.90) / 2, currency symbol stripped
		t.Fatalf("diesel = %v, want 8.00", prices.Diesel)
	}
}

func TestFetchPricesNoUsableRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "result": {"records": []}}`))
	}))
	defer server.Close()

	client := NewFuelPriceClient(server.URL, "price-res", time.Second)
	prices, err := client.FetchPrices(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if prices.Gasoline != 0 || prices.Diesel != 0 {
		t.Fatalf("prices = %+v, want zeros for the caller's fallback logic", prices)
	}
}

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		raw   string
		want  float64
		valid bool
	}{
		{"7.43", 7.43, true},
		{"7,43", 7.43, true},
		{"₪8.10", 8.10, true},
		{"1,234.5", 0, false}, // not a plausible pump price
		{"0", 0, false},
		{"", 0, false},
		{"n/a", 0, false},
	}
	for _, tt := range tests {
		got, ok := normalizePrice(tt.raw)
		if ok != tt.valid || (ok && got != tt.want) {
			t.Fatalf("normalizePrice(%q) = %v, %v; want %v, %v", tt.raw, got, ok, tt.want, tt.valid)
		}
	}
}
