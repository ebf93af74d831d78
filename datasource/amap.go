package datasource

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"

	"weather-mcp/models"
)

// AmapProvider queries the AMap weather API. It is safe for concurrent
// use; the embedded http.Client is shared across in-flight requests.
type AmapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewAmapProvider creates a provider from the given configuration.
func NewAmapProvider(cfg Config) *AmapProvider {
	return &AmapProvider{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Name returns the provider name
func (p *AmapProvider) Name() string {
	return "AMap"
}

// GetLiveWeather fetches current conditions for a city code.
func (p *AmapProvider) GetLiveWeather(ctx context.Context, cityCode string) (models.LiveResponse, error) {
	requestURL := p.buildURL(cityCode, false)

	body, err := p.doGet(ctx, requestURL)
	if err != nil {
		return models.LiveResponse{}, err
	}

	var response models.LiveResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.LiveResponse{}, &FetchError{Kind: KindDecode, URL: requestURL, Err: err}
	}

	return response, nil
}

// GetForecast fetches the multi-day forecast for a city code.
func (p *AmapProvider) GetForecast(ctx context.Context, cityCode string) (models.ForecastResponse, error) {
	requestURL := p.buildURL(cityCode, true)

	body, err := p.doGet(ctx, requestURL)
	if err != nil {
		return models.ForecastResponse{}, err
	}

	var response models.ForecastResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.ForecastResponse{}, &FetchError{Kind: KindDecode, URL: requestURL, Err: err}
	}

	return response, nil
}

// buildURL assembles the query string. extensions=all asks the API for
// full multi-day detail instead of the current-day summary.
func (p *AmapProvider) buildURL(cityCode string, allExtensions bool) string {
	params := url.Values{}
	params.Add("key", p.apiKey)
	params.Add("city", cityCode)
	params.Add("output", "json")
	if allExtensions {
		params.Add("extensions", "all")
	}
	return p.baseURL + "?" + params.Encode()
}

// doGet issues the request and returns the body of a 200 response. Any
// other outcome is a *FetchError.
func (p *AmapProvider) doGet(ctx context.Context, requestURL string) ([]byte, error) {
	log.Printf("Making request to %s", requestURL)

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, URL: requestURL, Err: err}
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	log.Printf("Received response from %s: %s", requestURL, resp.Status)

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Kind: KindStatus, URL: requestURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, URL: requestURL, Err: err}
	}

	return body, nil
}

// Verify that the provider implements the source interface
var _ WeatherSource = (*AmapProvider)(nil)
