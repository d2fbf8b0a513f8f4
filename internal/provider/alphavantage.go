package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"PairLens/internal/model"
)

const defaultAlphaVantageBaseURL = "https://www.alphavantage.co"

// AlphaVantageProvider fetches daily closes from the Alpha Vantage
// TIME_SERIES_DAILY endpoint.
type AlphaVantageProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAlphaVantageProvider creates an Alpha Vantage provider with optional
// proxy support. An empty baseURL selects the public endpoint.
func NewAlphaVantageProvider(baseURL, apiKey, proxyURL string) *AlphaVantageProvider {
	if baseURL == "" {
		baseURL = defaultAlphaVantageBaseURL
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &AlphaVantageProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *AlphaVantageProvider) Name() string { return "alphavantage" }

// avDailyResponse is the expected JSON shape. Error Message appears for
// unknown symbols, Note when the request was throttled.
type avDailyResponse struct {
	ErrorMessage string                       `json:"Error Message"`
	Note         string                       `json:"Note"`
	Series       map[string]map[string]string `json:"Time Series (Daily)"`
}

// FetchDailyCloses retrieves daily closing prices for [start, end] inclusive.
func (f *AlphaVantageProvider) FetchDailyCloses(ctx context.Context, symbol string, start, end time.Time) (*model.PriceSeries, error) {
	u := fmt.Sprintf("%s/query?function=TIME_SERIES_DAILY&symbol=%s&outputsize=full&apikey=%s",
		f.BaseURL, url.QueryEscape(symbol), url.QueryEscape(f.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch %s: %w", symbol, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage: status %d", resp.StatusCode)
	}

	var payload avDailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}
	if payload.ErrorMessage != "" {
		return nil, fmt.Errorf("alphavantage: %s: %w", symbol, ErrNoData)
	}
	if payload.Note != "" {
		return nil, fmt.Errorf("alphavantage throttled: %s", payload.Note)
	}

	points := make([]model.PricePoint, 0, len(payload.Series))
	for dateStr, bar := range payload.Series {
		d, err := time.Parse(model.DateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("alphavantage: bad date %q: %w", dateStr, err)
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		closeStr, ok := bar["4. close"]
		if !ok {
			return nil, fmt.Errorf("alphavantage: %s: missing close for %s", symbol, dateStr)
		}
		c, err := strconv.ParseFloat(closeStr, 64)
		if err != nil {
			return nil, fmt.Errorf("alphavantage: bad close %q for %s: %w", closeStr, dateStr, err)
		}
		points = append(points, model.PricePoint{Date: d, Close: c})
	}
	points = normalizePoints(points)
	if len(points) == 0 {
		return nil, fmt.Errorf("alphavantage: %s: %w", symbol, ErrNoData)
	}

	return &model.PriceSeries{Symbol: symbol, Points: points, FetchedAt: time.Now()}, nil
}
