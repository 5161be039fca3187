package price

import "time"

type Quote struct {
	Token     string // as the user typed it
	ID        string
	Price     float64 // in USD
	Change24h float64 // percent, 0 when the API has none
	UpdatedAt time.Time
}

type Status int

const (
	StatusOK Status = iota
	StatusNotFound
	StatusUpstreamFailed
	StatusNetworkFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not found"
	case StatusUpstreamFailed:
		return "upstream failed"
	case StatusNetworkFailed:
		return "network failed"
	}
	return "unknown"
}

// Result is the outcome of one lookup, Quote is only set on StatusOK and
// Err keeps the cause of a failure for logging.
type Result struct {
	Token  string
	ID     string
	Status Status
	Quote  *Quote
	Err    error
}

type Looker interface {
	Lookup(token string) Result
}
