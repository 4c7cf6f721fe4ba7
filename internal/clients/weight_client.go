package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ModelWeightRecord is one row of the secondary weight-by-model-code
// registry. More consistently populated than the primary's weight columns
// for cars and trucks, but has negligible motorcycle coverage.
type ModelWeightRecord struct {
	DegemCd      FlexString `json:"degem_cd"`
	MishkalKolel FlexString `json:"mishkal_kolel"` // gross weight kg
	MishkalAzmi  FlexString `json:"mishkal_azmi"`  // curb weight kg
}

// WeightClient queries the secondary registry by vehicle model code.
type WeightClient struct {
	base     *BaseClient
	resource string
}

// NewWeightClient returns client.
func NewWeightClient(baseURL, resource string, timeout time.Duration) *WeightClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &WeightClient{
		base:     NewBaseClient(baseURL, NewDefaultHTTPClient(timeout)),
		resource: resource,
	}
}

// FetchByModelCode looks up weight data for a model code. Missing codes
// yield (nil, nil).
func (c *WeightClient) FetchByModelCode(ctx context.Context, modelCode string) (*ModelWeightRecord, error) {
	if modelCode == "" {
		return nil, nil
	}
	filters, err := json.Marshal(map[string]string{"degem_cd": modelCode})
	if err != nil {
		return nil, err
	}
	query := url.Values{
		"resource_id": {c.resource},
		"filters":     {string(filters)},
		"limit":       {"1"},
	}

	status, body, err := c.base.Get(ctx, "/api/3/action/datastore_search", query)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("weight registry: status %d", status)
	}

	var decoded struct {
		Success bool `json:"success"`
		Result  struct {
			Records []ModelWeightRecord `json:"records"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("weight registry: decode: %w", err)
	}
	if !decoded.Success || len(decoded.Result.Records) == 0 {
		return nil, nil
	}
	return &decoded.Result.Records[0], nil
}
