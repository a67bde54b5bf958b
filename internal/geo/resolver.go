// Package geo resolves a pickup address into the state/district jurisdiction
// used to address admin notifications. Coordinates go through a best-effort
// reverse geocoding service; free-text addresses are matched against a static
// state/district table. Callers must treat resolution failure as a degraded
// result, never as a reason to fail the request.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Region is a resolved jurisdiction. The zero value means unresolved.
type Region struct {
	State    string
	District string
}

// Resolved reports whether the region carries at least a state.
func (r Region) Resolved() bool {
	return r.State != ""
}

// RegionResolver is injected into the server so the matching strategy can be
// swapped or faked in tests.
type RegionResolver interface {
	Resolve(ctx context.Context, pickupAddress string) (Region, error)
}

var latLngRe = regexp.MustCompile(`^\s*(-?\d{1,3}(?:\.\d+)?)\s*,\s*(-?\d{1,3}(?:\.\d+)?)\s*$`)

// IsCoordinate reports whether the address is a "lat,lng" pair.
func IsCoordinate(address string) bool {
	lat, lng, ok := parseCoordinate(address)
	return ok && lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func parseCoordinate(address string) (lat, lng float64, ok bool) {
	m := latLngRe.FindStringSubmatch(address)
	if m == nil {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// Resolver resolves coordinates through a Nominatim-compatible reverse
// geocoding endpoint and everything else through the gazetteer.
type Resolver struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

func NewResolver(baseURL string, timeout time.Duration, log zerolog.Logger) *Resolver {
	return &Resolver{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Resolve implements RegionResolver. Only the coordinate path can return an
// error; free-text matching degrades silently to the zero Region.
func (r *Resolver) Resolve(ctx context.Context, pickupAddress string) (Region, error) {
	if lat, lng, ok := parseCoordinate(pickupAddress); ok {
		return r.reverseGeocode(ctx, lat, lng)
	}
	return MatchAddress(pickupAddress), nil
}

type nominatimResponse struct {
	Address struct {
		State         string `json:"state"`
		StateDistrict string `json:"state_district"`
		County        string `json:"county"`
	} `json:"address"`
}

func (r *Resolver) reverseGeocode(ctx context.Context, lat, lng float64) (Region, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("zoom", "10")
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Region{}, err
	}
	req.Header.Set("User-Agent", "careline-dispatch-api")

	resp, err := r.client.Do(req)
	if err != nil {
		return Region{}, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return Region{}, fmt.Errorf("reverse geocoder returned %d: %s", resp.StatusCode, string(body))
	}

	var data nominatimResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return Region{}, fmt.Errorf("parsing geocoder response: %w", err)
	}

	district := data.Address.StateDistrict
	if district == "" {
		district = data.Address.County
	}
	return Region{
		State:    CanonicalState(data.Address.State),
		District: district,
	}, nil
}
