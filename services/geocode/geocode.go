package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Provider resolves coordinates to a human-readable address, used only to
// prefill the pickup address field. Failures are surfaced as warnings by
// callers and never block the booking flow.
type Provider interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// HTTPProvider queries the Nominatim reverse-geocoding API.
type HTTPProvider struct {
	Client  *http.Client
	BaseURL string
}

// NewHTTPProvider returns a provider with a hard request timeout.
func NewHTTPProvider() *HTTPProvider {
	return &HTTPProvider{
		Client:  &http.Client{Timeout: 5 * time.Second},
		BaseURL: "https://nominatim.openstreetmap.org",
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// ReverseGeocode returns the display address for the given coordinates.
func (p *HTTPProvider) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%s&lon=%s",
		p.BaseURL,
		url.QueryEscape(fmt.Sprintf("%.6f", lat)),
		url.QueryEscape(fmt.Sprintf("%.6f", lng)),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build reverse geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "ezero-pickup-service")

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode API returned status %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode reverse geocode response: %w", err)
	}
	if body.DisplayName == "" {
		return "", fmt.Errorf("reverse geocode returned no address")
	}
	return body.DisplayName, nil
}
