package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newRegistryTestServer(t *testing.T, response string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/3/action/datastore_search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("resource_id") == "" {
			t.Error("missing resource_id")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(response))
	}))
}

func testResources() RegistryResources {
	return RegistryResources{Car: "car-res", Motorcycle: "moto-res", Truck: "truck-res"}
}

func TestFetchByPlateDecodesMixedFieldTypes(t *testing.T) {
	// The datastore returns some fields as numbers and some as strings,
	// inconsistently between records.
	const response = `{
		"success": true,
		"result": {"records": [{
			"mispar_rechev": 1234567,
			"tozeret_nm": "טויוטה יפן",
			"sug_delek_nm": "בנזין",
			"kinuy_mishari": "COROLLA",
			"shnat_yitzur": "2020",
			"mishkal_kolel": "1790",
			"misgeret": 1285,
			"degem_manoa": "2ZR-FE",
			"nefach_manoa": 1798,
			"degem_cd": 155
		}]}
	}`
	server := newRegistryTestServer(t, response)
	defer server.Close()

	client := NewRegistryClient(server.URL, testResources(), time.Second)
	record, err := client.FetchByPlate(context.Background(), "car", "1234567")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if record == nil {
		t.Fatal("expected a record")
	}

	if record.Plate.String() != "1234567" {
		t.Fatalf("plate = %q", record.Plate)
	}
	if record.Year() != 2020 {
		t.Fatalf("year = %d, want 2020", record.Year())
	}
	if record.Misgeret.String() != "1285" {
		t.Fatalf("misgeret = %q, want numeric field as string", record.Misgeret)
	}
	if cc, ok := record.NefachManoa.Int(); !ok || cc != 1798 {
		t.Fatalf("nefach = %d, %v; want 1798", cc, ok)
	}
	if record.ModelText() != "COROLLA" {
		t.Fatalf("model text = %q", record.ModelText())
	}
}

func TestFetchByPlateMissingPlate(t *testing.T) {
	server := newRegistryTestServer(t, `{"success": true, "result": {"records": []}}`)
	defer server.Close()

	client := NewRegistryClient(server.URL, testResources(), time.Second)
	record, err := client.FetchByPlate(context.Background(), "motorcycle", "9999999")
	if err != nil {
		t.Fatalf("missing plate must not error: %v", err)
	}
	if record != nil {
		t.Fatalf("expected nil record, got %+v", record)
	}
}

func TestFetchByPlateUnknownCategory(t *testing.T) {
	client := NewRegistryClient("http://unused", testResources(), time.Second)
	if _, err := client.FetchByPlate(context.Background(), "bicycle", "1234567"); err == nil {
		t.Fatal("unknown category must error")
	}
}

func TestFetchByPlateUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewRegistryClient(server.URL, testResources(), time.Second)
	if _, err := client.FetchByPlate(context.Background(), "car", "1234567"); err == nil {
		t.Fatal("non-200 status must error")
	}
}

func TestRecordModelTextJoinsTrim(t *testing.T) {
	record := &RegistryRecord{KinuyMishari: "CIVIC", DegemNm: "FC1"}
	if got := record.ModelText(); got != "CIVIC FC1" {
		t.Fatalf("model text = %q, want joined", got)
	}

	record = &RegistryRecord{KinuyMishari: "CIVIC", DegemNm: "CIVIC"}
	if got := record.ModelText(); got != "CIVIC" {
		t.Fatalf("model text = %q, want deduplicated", got)
	}
}

func TestRecordYearRejectsImplausible(t *testing.T) {
	for _, raw := range []string{"", "0", "1776", "3000", "not-a-year"} {
		record := &RegistryRecord{ShnatYitzur: FlexString(raw)}
		if got := record.Year(); got != 0 {
			t.Fatalf("Year() for %q = %d, want 0", raw, got)
		}
	}
}
