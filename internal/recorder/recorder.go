package recorder

import "time"

// AnalysisEvent is one audit row for a served analysis request. It carries
// operational metadata only; computed statistics are never persisted.
type AnalysisEvent struct {
	Ticker1    string
	Ticker2    string
	StartDate  time.Time
	EndDate    time.Time
	Outcome    string // "ok" or the failure kind
	DataPoints int
	DurationMS int64
	Provider   string
}

// Recorder persists request audit events for operational analysis.
type Recorder interface {
	RecordAnalysis(evt *AnalysisEvent) error
	PruneBefore(cutoff time.Time) (int64, error)
	Close() error
}
