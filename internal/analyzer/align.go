package analyzer

import (
	"time"

	"PairLens/internal/model"
)

// minReturnObservations is the floor for a defined sample correlation.
const minReturnObservations = 2

// AlignSeries intersects two price series on their shared trading dates and
// derives periodic returns for each. Dates present in only one series are
// dropped; missing prices are never filled in.
func AlignSeries(s1, s2 *model.PriceSeries) (*model.AlignedReturnSeries, error) {
	byDate := make(map[string]float64, len(s2.Points))
	for _, p := range s2.Points {
		byDate[dateKey(p.Date)] = p.Close
	}

	var points []model.PricePoint
	var closes2 []float64
	for _, p := range s1.Points {
		c2, ok := byDate[dateKey(p.Date)]
		if !ok {
			continue
		}
		points = append(points, p)
		closes2 = append(closes2, c2)
	}

	if len(points) < minReturnObservations+1 {
		return nil, newError(KindInsufficientData, "",
			"only %d aligned price points between %s and %s (need at least %d)",
			len(points), s1.Symbol, s2.Symbol, minReturnObservations+1)
	}

	out := &model.AlignedReturnSeries{
		Symbol1:      s1.Symbol,
		Symbol2:      s2.Symbol,
		PricePoints:  len(points),
		FirstAligned: points[0].Date,
		LastAligned:  points[len(points)-1].Date,
	}
	for i := 1; i < len(points); i++ {
		// A zero divisor would fabricate a non-finite return; drop the
		// observation instead.
		if points[i-1].Close == 0 || closes2[i-1] == 0 {
			continue
		}
		out.Dates = append(out.Dates, points[i].Date)
		out.Returns1 = append(out.Returns1, (points[i].Close-points[i-1].Close)/points[i-1].Close)
		out.Returns2 = append(out.Returns2, (closes2[i]-closes2[i-1])/closes2[i-1])
	}

	if len(out.Returns1) < minReturnObservations {
		return nil, newError(KindInsufficientData, "",
			"only %d usable return observations between %s and %s (need at least %d)",
			len(out.Returns1), s1.Symbol, s2.Symbol, minReturnObservations)
	}
	return out, nil
}

// CountTradingDays returns the size of the union of trading dates across both
// raw series, a pre-alignment data-quality signal.
func CountTradingDays(s1, s2 *model.PriceSeries) int {
	seen := make(map[string]struct{}, len(s1.Points)+len(s2.Points))
	for _, p := range s1.Points {
		seen[dateKey(p.Date)] = struct{}{}
	}
	for _, p := range s2.Points {
		seen[dateKey(p.Date)] = struct{}{}
	}
	return len(seen)
}

func dateKey(t time.Time) string {
	return t.Format(model.DateLayout)
}
