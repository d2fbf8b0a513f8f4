// Package provider retrieves daily price history from external market-data
// APIs behind a single abstract capability: closing prices for one ticker
// over an inclusive date range.
package provider

import (
	"context"
	"errors"
	"sort"
	"time"

	"PairLens/internal/model"
)

// ErrNoData reports that the provider answered successfully but returned zero
// rows for the ticker and range. Callers must treat it as a legitimate empty
// result, not a transient failure.
var ErrNoData = errors.New("no price data")

// Provider fetches the daily closing-price history for one ticker. Retrieval
// must be idempotent: a retried call has no ticker-specific side effects.
type Provider interface {
	FetchDailyCloses(ctx context.Context, symbol string, start, end time.Time) (*model.PriceSeries, error)
	Name() string
}

// normalizePoints sorts observations ascending by time and collapses
// duplicate calendar dates, keeping the last value per date. Timestamps are
// truncated to UTC midnight.
func normalizePoints(points []model.PricePoint) []model.PricePoint {
	if len(points) == 0 {
		return nil
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	out := make([]model.PricePoint, 0, len(points))
	for _, p := range points {
		d := truncateUTC(p.Date)
		if n := len(out); n > 0 && out[n-1].Date.Equal(d) {
			out[n-1].Close = p.Close
			continue
		}
		out = append(out, model.PricePoint{Date: d, Close: p.Close})
	}
	return out
}

func truncateUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
