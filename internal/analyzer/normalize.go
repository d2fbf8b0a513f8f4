package analyzer

import (
	"regexp"
	"strings"
	"time"

	"PairLens/internal/model"
)

// tickerPattern accepts exchange symbols such as AAPL, BRK.B, BTC-USD and
// index symbols like ^GSPC. Max length follows the original 10-char limit.
var tickerPattern = regexp.MustCompile(`^[A-Z0-9^][A-Z0-9.^-]{0,9}$`)

// defaultLookbackYears is applied when no start date is supplied.
const defaultLookbackYears = 1

// NormalizeRequest validates the two tickers and resolves the date range.
// Tickers are trimmed and uppercased. A missing end date defaults to the
// current date (from now), a missing start date to one year before the end.
// It performs no I/O.
func NormalizeRequest(req model.AnalysisRequest, now time.Time) (ticker1, ticker2 string, rng model.DateRange, err error) {
	ticker1, err = normalizeTicker("ticker1", req.Ticker1)
	if err != nil {
		return "", "", model.DateRange{}, err
	}
	ticker2, err = normalizeTicker("ticker2", req.Ticker2)
	if err != nil {
		return "", "", model.DateRange{}, err
	}

	end := truncateToDate(now)
	if req.EndDate != "" {
		end, err = parseDate("end_date", req.EndDate)
		if err != nil {
			return "", "", model.DateRange{}, err
		}
	}

	start := end.AddDate(-defaultLookbackYears, 0, 0)
	if req.StartDate != "" {
		start, err = parseDate("start_date", req.StartDate)
		if err != nil {
			return "", "", model.DateRange{}, err
		}
	}

	if end.Before(start) {
		return "", "", model.DateRange{}, newError(KindInvalidDateRange, "",
			"end_date %s precedes start_date %s",
			end.Format(model.DateLayout), start.Format(model.DateLayout))
	}

	return ticker1, ticker2, model.DateRange{Start: start, End: end}, nil
}

func normalizeTicker(field, raw string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(raw))
	if t == "" {
		return "", newError(KindInvalidTicker, "", "%s is required", field)
	}
	if !tickerPattern.MatchString(t) {
		return "", newError(KindInvalidTicker, t, "%s contains disallowed characters", field)
	}
	return t, nil
}

func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, raw)
	if err != nil {
		return time.Time{}, newError(KindInvalidDateRange, "", "%s %q is not a valid date (want YYYY-MM-DD)", field, raw)
	}
	return t, nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
