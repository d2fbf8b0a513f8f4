package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PairLens/internal/model"
)

var testNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

func TestNormalizeRequest_Defaults(t *testing.T) {
	t1, t2, rng, err := NormalizeRequest(model.AnalysisRequest{
		Ticker1: "aapl",
		Ticker2: "msft",
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, "AAPL", t1)
	assert.Equal(t, "MSFT", t2)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), rng.End)
	assert.Equal(t, time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), rng.Start)
}

func TestNormalizeRequest_EndOnly(t *testing.T) {
	_, _, rng, err := NormalizeRequest(model.AnalysisRequest{
		Ticker1: "AAPL",
		Ticker2: "MSFT",
		EndDate: "2023-03-01",
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), rng.End)
	assert.Equal(t, time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC), rng.Start)
}

func TestNormalizeRequest_StartOnly(t *testing.T) {
	_, _, rng, err := NormalizeRequest(model.AnalysisRequest{
		Ticker1:   "AAPL",
		Ticker2:   "MSFT",
		StartDate: "2024-01-02",
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), rng.End)
}

func TestNormalizeRequest_ValidTickerShapes(t *testing.T) {
	for _, ticker := range []string{"BRK.B", "BTC-USD", "^GSPC", " nvda "} {
		_, _, _, err := NormalizeRequest(model.AnalysisRequest{
			Ticker1: ticker,
			Ticker2: "MSFT",
		}, testNow)
		assert.NoError(t, err, "ticker %q should be accepted", ticker)
	}
}

func TestNormalizeRequest_InvalidTickers(t *testing.T) {
	tests := []struct {
		name    string
		ticker1 string
		ticker2 string
	}{
		{"empty ticker1", "", "MSFT"},
		{"empty ticker2", "AAPL", ""},
		{"whitespace only", "   ", "MSFT"},
		{"embedded space", "AA PL", "MSFT"},
		{"disallowed char", "AAPL$", "MSFT"},
		{"too long", "ABCDEFGHIJK", "MSFT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := NormalizeRequest(model.AnalysisRequest{
				Ticker1: tt.ticker1,
				Ticker2: tt.ticker2,
			}, testNow)
			require.Error(t, err)
			assert.Equal(t, KindInvalidTicker, KindOf(err))
		})
	}
}

func TestNormalizeRequest_InvalidDates(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"unparseable start", "not-a-date", ""},
		{"unparseable end", "", "2024/01/01"},
		{"end before start", "2024-02-01", "2024-01-01"},
		{"start after today", "2024-07-01", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := NormalizeRequest(model.AnalysisRequest{
				Ticker1:   "AAPL",
				Ticker2:   "MSFT",
				StartDate: tt.start,
				EndDate:   tt.end,
			}, testNow)
			require.Error(t, err)
			assert.Equal(t, KindInvalidDateRange, KindOf(err))
		})
	}
}

func TestNormalizeRequest_TickerErrorsBeforeDateErrors(t *testing.T) {
	_, _, _, err := NormalizeRequest(model.AnalysisRequest{
		Ticker1:   "",
		Ticker2:   "MSFT",
		StartDate: "garbage",
	}, testNow)
	require.Error(t, err)
	assert.Equal(t, KindInvalidTicker, KindOf(err))
}
