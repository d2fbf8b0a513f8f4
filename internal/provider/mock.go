package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"PairLens/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
// With no canned series configured it generates a deterministic weekday
// series over the requested range.
type MockProvider struct {
	Series    map[string][]model.PricePoint
	Errs      map[string]error
	FailFirst int // number of initial calls that fail with a transient error

	mu    sync.Mutex
	calls int
}

func (m *MockProvider) Name() string { return "mock" }

// Calls reports how many fetches have been issued.
func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockProvider) FetchDailyCloses(_ context.Context, symbol string, start, end time.Time) (*model.PriceSeries, error) {
	m.mu.Lock()
	m.calls++
	n := m.calls
	m.mu.Unlock()

	if n <= m.FailFirst {
		return nil, fmt.Errorf("mock: transient failure on call %d", n)
	}
	if err, ok := m.Errs[symbol]; ok {
		return nil, fmt.Errorf("mock: %s: %w", symbol, err)
	}
	if pts, ok := m.Series[symbol]; ok {
		return &model.PriceSeries{
			Symbol:    symbol,
			Points:    normalizePoints(append([]model.PricePoint(nil), pts...)),
			FetchedAt: time.Now(),
		}, nil
	}
	return &model.PriceSeries{
		Symbol:    symbol,
		Points:    generateMockPoints(symbol, start, end),
		FetchedAt: time.Now(),
	}, nil
}

// generateMockPoints builds a weekday-only drifting series seeded by the
// symbol so different tickers do not produce identical returns.
func generateMockPoints(symbol string, start, end time.Time) []model.PricePoint {
	var seed int
	for _, r := range symbol {
		seed = seed*31 + int(r)
	}
	base := 50.0 + float64(seed%200)
	drift := 0.001 + float64(seed%7)*0.0005

	var points []model.PricePoint
	i := 0
	for d := truncateUTC(start); !d.After(truncateUTC(end)); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		wobble := 1.0
		if i%2 == 1 {
			wobble = 0.997
		}
		points = append(points, model.PricePoint{
			Date:  d,
			Close: base * (1 + drift*float64(i)) * wobble,
		})
		i++
	}
	return points
}
