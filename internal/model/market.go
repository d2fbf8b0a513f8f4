package model

import "time"

// PricePoint is a single daily closing-price observation.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds the daily close history for one ticker.
// Points are ordered by date ascending with unique dates.
type PriceSeries struct {
	Symbol    string
	Points    []PricePoint
	FetchedAt time.Time
}

// Closes returns the closing prices in date order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}
