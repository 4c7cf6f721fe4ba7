package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// RegistryRecord mirrors the fields of interest from the government vehicle
// registry. Keys are the registry's Hebrew-transliterated column names. The
// weight-like columns are untrusted: they regularly carry VINs or unrelated
// codes and must pass the numeric sanitizer before use.
type RegistryRecord struct {
	Plate         FlexString `json:"mispar_rechev"`
	TozeretNm     string     `json:"tozeret_nm"`     // manufacturer, free text Hebrew
	SugDelekNm    string     `json:"sug_delek_nm"`   // fuel type, free text
	DegemNm       string     `json:"degem_nm"`       // model/trim code text
	KinuyMishari  string     `json:"kinuy_mishari"`  // commercial model name
	ShnatYitzur   FlexString `json:"shnat_yitzur"`   // manufacture year
	MishkalKolel  FlexString `json:"mishkal_kolel"`  // gross weight; unreliable
	Misgeret      FlexString `json:"misgeret"`       // curb weight; unreliable
	DegemManoa    string     `json:"degem_manoa"`    // engine family code
	NefachManoa   FlexString `json:"nefach_manoa"`   // displacement cc, when present
	DegemCd       FlexString `json:"degem_cd"`       // model code, key into secondary registry
}

// Year returns the manufacture year or 0.
func (r *RegistryRecord) Year() int {
	y, ok := r.ShnatYitzur.Int()
	if !ok || y < 1900 || y > 2100 {
		return 0
	}
	return y
}

// ModelText joins the commercial name and trim text for model matching.
func (r *RegistryRecord) ModelText() string {
	if r.KinuyMishari != "" && r.DegemNm != "" && r.KinuyMishari != r.DegemNm {
		return r.KinuyMishari + " " + r.DegemNm
	}
	if r.KinuyMishari != "" {
		return r.KinuyMishari
	}
	return r.DegemNm
}

// RegistryResources fixes the datastore resource id per vehicle category.
type RegistryResources struct {
	Car        string
	Motorcycle string
	Truck      string
}

// RegistryClient queries the primary government registry (datastore_search,
// one resource per vehicle category).
type RegistryClient struct {
	base      *BaseClient
	resources RegistryResources
}

// NewRegistryClient returns client.
func NewRegistryClient(baseURL string, resources RegistryResources, timeout time.Duration) *RegistryClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RegistryClient{
		base:      NewBaseClient(baseURL, NewDefaultHTTPClient(timeout)),
		resources: resources,
	}
}

// ResourceFor maps a vehicle category to its resource id ("" = unsupported).
func (c *RegistryClient) ResourceFor(category string) string {
	switch category {
	case "car":
		return c.resources.Car
	case "motorcycle":
		return c.resources.Motorcycle
	case "truck":
		return c.resources.Truck
	default:
		return ""
	}
}

type datastoreResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Records []json.RawMessage `json:"records"`
	} `json:"result"`
}

// FetchByPlate queries one category resource for a license plate. A missing
// plate yields (nil, nil); transport and decode problems surface as errors
// for the caller to treat as an empty branch.
func (c *RegistryClient) FetchByPlate(ctx context.Context, category, plate string) (*RegistryRecord, error) {
	resource := c.ResourceFor(category)
	if resource == "" {
		return nil, fmt.Errorf("registry: unknown category %q", category)
	}

	filters, err := json.Marshal(map[string]string{"mispar_rechev": plate})
	if err != nil {
		return nil, err
	}
	query := url.Values{
		"resource_id": {resource},
		"filters":     {string(filters)},
		"limit":       {"1"},
	}

	status, body, err := c.base.Get(ctx, "/api/3/action/datastore_search", query)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("registry: status %d for category %s", status, category)
	}

	var decoded datastoreResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("registry: decode: %w", err)
	}
	if !decoded.Success || len(decoded.Result.Records) == 0 {
		return nil, nil
	}

	var record RegistryRecord
	if err := json.Unmarshal(decoded.Result.Records[0], &record); err != nil {
		return nil, fmt.Errorf("registry: decode record: %w", err)
	}
	if record.Plate == "" {
		record.Plate = FlexString(plate)
	}
	return &record, nil
}
