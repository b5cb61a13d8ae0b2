package timepiece

import (
	"strings"
	"time"

	"github.com/benbjohnson/clock"
)

// Ticker records the elapsed time between successive calls to Mark. The
// first Mark only establishes the baseline; every later Mark appends one
// interval to the bounded history. A Ticker has no stop operation, callers
// retire it by dropping the reference.
type Ticker struct {
	*IntervalHistory

	clk      clock.Clock
	lastMark time.Time
	armed    bool
}

// NewTicker creates a Ticker whose history retains up to capacity intervals.
func NewTicker(capacity int, opts ...Option) (*Ticker, error) {
	s, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	history, err := NewIntervalHistory(capacity)
	if err != nil {
		return nil, err
	}
	return &Ticker{IntervalHistory: history, clk: s.clk}, nil
}

// Mark registers one event. When a previous mark exists, the elapsed time
// since it is appended to the history; the mark is always re-armed with the
// current reading.
func (t *Ticker) Mark() {
	now := t.clk.Now()
	if t.armed {
		t.Append(now.Sub(t.lastMark).Seconds())
	}
	t.lastMark = now
	t.armed = true
}

// String renders the ticker and its statistics, for example:
//
//	<Ticker intervals=[0.0899, 0.0632, 0.0543] min=0.0543 mean=0.0691 max=0.0899>
//
// A ticker with no recorded intervals renders as <Ticker>.
func (t *Ticker) String() string {
	parts := append([]string{"Ticker"}, t.statProps()...)
	return "<" + strings.Join(parts, " ") + ">"
}
