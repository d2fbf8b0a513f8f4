package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format(DateLayout))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	t, err := time.Parse(DateLayout, s[1:len(s)-1])
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// DateRange is an inclusive pair of calendar dates with Start <= End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// AnalysisRequest is the inbound contract from the web layer.
// Date fields are ISO date strings; empty means unset.
type AnalysisRequest struct {
	Ticker1   string `json:"ticker1"`
	Ticker2   string `json:"ticker2"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// AlignedReturnSeries holds the periodic returns of two tickers over their
// shared trading dates. Returns1, Returns2 and Dates have equal length; the
// date at index i is the later day of the return pair.
type AlignedReturnSeries struct {
	Symbol1  string
	Symbol2  string
	Dates    []time.Time
	Returns1 []float64
	Returns2 []float64

	// PricePoints is the number of aligned price observations the returns
	// were derived from; FirstAligned/LastAligned bound the aligned series.
	PricePoints  int
	FirstAligned time.Time
	LastAligned  time.Time
}

// AnalysisResult is the outcome of one correlation analysis. It is built once
// per request and never persisted.
type AnalysisResult struct {
	Correlation float64 `json:"correlation"`
	Covariance  float64 `json:"covariance"`
	StartDate   Date    `json:"start_date"`
	EndDate     Date    `json:"end_date"`
	Ticker1     string  `json:"ticker1"`
	Ticker2     string  `json:"ticker2"`
	DataPoints  int     `json:"data_points"`
	FirstDate   Date    `json:"first_date"`
	LastDate    Date    `json:"last_date"`
	TradingDays int     `json:"trading_days"`
}
