package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const avBody = `{
	"Meta Data": {"2. Symbol": "AAPL"},
	"Time Series (Daily)": {
		"2023-01-06": {"1. open": "102.5", "4. close": "103.0"},
		"2023-01-04": {"1. open": "101.0", "4. close": "102.0"},
		"2023-01-05": {"1. open": "102.0", "4. close": "101.0"},
		"2023-01-03": {"1. open": "99.5", "4. close": "100.0"},
		"2022-12-30": {"1. open": "98.0", "4. close": "99.0"}
	}
}`

func TestAlphaVantageProvider_FiltersAndSorts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "TIME_SERIES_DAILY", r.URL.Query().Get("function"))
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		fmt.Fprint(w, avBody)
	}))
	defer srv.Close()

	f := NewAlphaVantageProvider(srv.URL, "test-key", "")
	series, err := f.FetchDailyCloses(context.Background(), "AAPL",
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// 2022-12-30 falls outside the range; the rest come back date-ascending.
	require.Len(t, series.Points, 4)
	assert.Equal(t, time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC), series.Points[0].Date)
	assert.Equal(t, 100.0, series.Points[0].Close)
	assert.Equal(t, time.Date(2023, 1, 6, 0, 0, 0, 0, time.UTC), series.Points[3].Date)
	assert.Equal(t, 103.0, series.Points[3].Close)
}

func TestAlphaVantageProvider_UnknownSymbolIsNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Error Message": "Invalid API call."}`)
	}))
	defer srv.Close()

	f := NewAlphaVantageProvider(srv.URL, "test-key", "")
	_, err := f.FetchDailyCloses(context.Background(), "NOPE",
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestAlphaVantageProvider_ThrottleIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Note": "Thank you for using Alpha Vantage! Please slow down."}`)
	}))
	defer srv.Close()

	f := NewAlphaVantageProvider(srv.URL, "test-key", "")
	_, err := f.FetchDailyCloses(context.Background(), "AAPL",
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)
}

func TestAlphaVantageProvider_EmptyRangeIsNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, avBody)
	}))
	defer srv.Close()

	f := NewAlphaVantageProvider(srv.URL, "test-key", "")
	_, err := f.FetchDailyCloses(context.Background(), "AAPL",
		time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 1, 10, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoData)
}
