package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"gramin/internal/config"
	"gramin/internal/models"
	"gramin/internal/util"
)

// OverpassClient queries an Overpass API instance for OpenStreetMap amenities
type OverpassClient struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

// NewOverpassClient creates a new Overpass client
func NewOverpassClient(cfg *config.Config) *OverpassClient {
	return &OverpassClient{
		endpoint:  cfg.OverpassURL,
		userAgent: cfg.OverpassUserAgent,
		httpClient: &http.Client{
			Timeout: cfg.OverpassTimeout,
		},
	}
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *overpassCenter   `json:"center,omitempty"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// addressKeys are joined in this order to build a display address.
var addressKeys = []string{"addr:street", "addr:suburb", "addr:city"}

// FindNearby returns named amenities of the given category within radiusMeters
// of the point, in the order the server returned them. Elements without a
// position are skipped.
func (oc *OverpassClient) FindNearby(ctx context.Context, lat, lon float64, category string, radiusMeters int) ([]models.Place, error) {
	form := url.Values{}
	form.Set("data", BuildNearbyQuery(lat, lon, category, radiusMeters))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, oc.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if oc.userAgent != "" {
		req.Header.Set("User-Agent", oc.userAgent)
	}

	resp, err := oc.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query overpass: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass query failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var apiResp overpassResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return toPlaces(apiResp.Elements), nil
}

// BuildNearbyQuery renders the Overpass QL for nodes, ways and relations
// tagged amenity=category around the point. Ways and relations are returned
// with a center coordinate.
func BuildNearbyQuery(lat, lon float64, category string, radiusMeters int) string {
	around := fmt.Sprintf("(around:%d,%f,%f)", radiusMeters, lat, lon)
	filter := fmt.Sprintf(`["amenity"=%q]`, category)

	var b strings.Builder
	b.WriteString("[out:json][timeout:25];\n(\n")
	for _, kind := range []string{"node", "way", "relation"} {
		b.WriteString("  " + kind + filter + around + ";\n")
	}
	b.WriteString(");\nout center;")
	return b.String()
}

func toPlaces(elements []overpassElement) []models.Place {
	places := make([]models.Place, 0, len(elements))
	for _, el := range elements {
		name := strings.TrimSpace(el.Tags["name"])
		if name == "" {
			continue
		}

		lat, lon, ok := el.position()
		if !ok {
			continue
		}

		places = append(places, models.Place{
			Name:    name,
			Address: formatAddress(el.Tags),
			Rating:  util.RatingUnavailable,
			Lat:     lat,
			Lon:     lon,
		})
	}
	return places
}

// position prefers the center Overpass adds to ways and relations.
func (el overpassElement) position() (lat, lon float64, ok bool) {
	if el.Center != nil {
		return el.Center.Lat, el.Center.Lon, true
	}
	if el.Lat == nil || el.Lon == nil {
		return 0, 0, false
	}
	return *el.Lat, *el.Lon, true
}

func formatAddress(tags map[string]string) string {
	parts := make([]string, 0, len(addressKeys))
	for _, key := range addressKeys {
		if v := strings.TrimSpace(tags[key]); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return util.AddressUnavailable
	}
	return strings.Join(parts, ", ")
}
