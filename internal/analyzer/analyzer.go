// Package analyzer implements the correlation pipeline: input normalization,
// market-data retrieval, series alignment with return computation, and
// statistical summarization. The pipeline is stateless per invocation.
package analyzer

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"PairLens/internal/model"
	"PairLens/internal/provider"
)

const defaultFetchTimeout = 10 * time.Second

// Analyzer runs the full pipeline for one ticker pair.
type Analyzer struct {
	Provider     provider.Provider
	FetchTimeout time.Duration
	Log          zerolog.Logger
}

// New creates an Analyzer. A non-positive fetchTimeout falls back to the
// default.
func New(p provider.Provider, fetchTimeout time.Duration, log zerolog.Logger) *Analyzer {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &Analyzer{
		Provider:     p,
		FetchTimeout: fetchTimeout,
		Log:          log.With().Str("component", "analyzer").Logger(),
	}
}

// Analyze validates the request, fetches both price histories concurrently,
// aligns them on shared trading dates, and computes correlation and
// covariance over the derived returns. Failures carry a Kind; see KindOf.
func (a *Analyzer) Analyze(ctx context.Context, req model.AnalysisRequest) (*model.AnalysisResult, error) {
	ticker1, ticker2, rng, err := NormalizeRequest(req, time.Now())
	if err != nil {
		return nil, err
	}

	// The two fetches are independent; both must complete before alignment.
	var s1, s2 *model.PriceSeries
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		s1, err = a.fetch(gctx, ticker1, rng)
		return err
	})
	g.Go(func() error {
		var err error
		s2, err = a.fetch(gctx, ticker2, rng)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	aligned, err := AlignSeries(s1, s2)
	if err != nil {
		return nil, err
	}

	correlation, covariance, err := Summarize(aligned)
	if err != nil {
		return nil, err
	}

	a.Log.Debug().
		Str("ticker1", ticker1).
		Str("ticker2", ticker2).
		Int("data_points", aligned.PricePoints).
		Float64("correlation", correlation).
		Msg("analysis complete")

	return &model.AnalysisResult{
		Correlation: roundTo(correlation, 4),
		Covariance:  roundTo(covariance, 6),
		StartDate:   model.NewDate(rng.Start),
		EndDate:     model.NewDate(rng.End),
		Ticker1:     ticker1,
		Ticker2:     ticker2,
		DataPoints:  aligned.PricePoints,
		FirstDate:   model.NewDate(aligned.FirstAligned),
		LastDate:    model.NewDate(aligned.LastAligned),
		TradingDays: CountTradingDays(s1, s2),
	}, nil
}

// fetch retrieves one price series with a bounded timeout, retrying a
// transient provider failure exactly once. A zero-row answer is terminal.
func (a *Analyzer) fetch(ctx context.Context, symbol string, rng model.DateRange) (*model.PriceSeries, error) {
	series, err := a.fetchOnce(ctx, symbol, rng)
	if err == nil {
		return series, nil
	}
	if errors.Is(err, provider.ErrNoData) {
		return nil, &Error{Kind: KindDataUnavailable, Ticker: symbol,
			Msg: "no price data in requested range", Err: err}
	}
	if ctx.Err() != nil {
		return nil, &Error{Kind: KindProviderError, Ticker: symbol,
			Msg: "market data fetch failed", Err: err}
	}

	a.Log.Warn().Err(err).Str("ticker", symbol).Msg("fetch failed, retrying once")
	series, retryErr := a.fetchOnce(ctx, symbol, rng)
	if retryErr == nil {
		return series, nil
	}
	if errors.Is(retryErr, provider.ErrNoData) {
		return nil, &Error{Kind: KindDataUnavailable, Ticker: symbol,
			Msg: "no price data in requested range", Err: retryErr}
	}
	return nil, &Error{Kind: KindProviderError, Ticker: symbol,
		Msg: "market data fetch failed after retry", Err: retryErr}
}

func (a *Analyzer) fetchOnce(ctx context.Context, symbol string, rng model.DateRange) (*model.PriceSeries, error) {
	fctx, cancel := context.WithTimeout(ctx, a.FetchTimeout)
	defer cancel()
	return a.Provider.FetchDailyCloses(fctx, symbol, rng.Start, rng.End)
}
