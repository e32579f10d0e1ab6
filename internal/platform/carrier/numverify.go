// Package carrier implements the optional live carrier lookup through
// the NumVerify API (free tier, 100 lookups/month). It resolves the
// current carrier of ported numbers, which the embedded numbering-plan
// data cannot do.
package carrier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rgdevment/phone-tracer/internal/service"
)

const numverifyURL = "http://apilayer.net/api/validate"

type numverify struct {
	apiKey string
	client *http.Client
}

// NewNumVerify builds the lookup client. Returns nil when no API key is
// configured so the caller cleanly skips live lookups.
func NewNumVerify(apiKey string) service.CarrierLookup {
	if apiKey == "" {
		return nil
	}
	return &numverify{
		apiKey: apiKey,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

type numverifyResponse struct {
	Valid    bool   `json:"valid"`
	Carrier  string `json:"carrier"`
	LineType string `json:"line_type"`
}

// Lookup queries NumVerify. Any failure is reported as a miss rather
// than an error: live data is an enhancement, never a requirement.
func (n *numverify) Lookup(ctx context.Context, e164 string) (*service.LiveCarrier, error) {
	params := url.Values{}
	params.Set("access_key", n.apiKey)
	params.Set("number", strings.TrimPrefix(e164, "+"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, numverifyURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, nil
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var data numverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil || !data.Valid {
		return nil, nil
	}

	return &service.LiveCarrier{
		Carrier:  data.Carrier,
		LineType: data.LineType,
	}, nil
}
