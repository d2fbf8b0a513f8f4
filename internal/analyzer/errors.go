package analyzer

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure so callers can branch on it.
type Kind string

const (
	KindInvalidTicker    Kind = "invalid_ticker"
	KindInvalidDateRange Kind = "invalid_date_range"
	KindDataUnavailable  Kind = "data_unavailable"
	KindProviderError    Kind = "provider_error"
	KindInsufficientData Kind = "insufficient_data"
	KindDegenerateSeries Kind = "degenerate_series"
)

// ClientError reports whether the kind is caused by the request itself rather
// than an upstream or internal failure.
func (k Kind) ClientError() bool {
	switch k {
	case KindInvalidTicker, KindInvalidDateRange, KindInsufficientData, KindDegenerateSeries:
		return true
	}
	return false
}

// Error is a classified pipeline failure. Ticker is set when the failure
// relates to one instrument specifically.
type Error struct {
	Kind   Kind
	Ticker string
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Ticker != "" {
		msg = fmt.Sprintf("%s: %s", e.Ticker, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, ticker, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Ticker: ticker, Msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the classification of err. It returns the empty Kind for
// unclassified errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}
