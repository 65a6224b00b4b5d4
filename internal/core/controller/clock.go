package controller

import (
	"sync"
	"time"
)

// Clock is a restartable periodic tick source.
type Clock interface {
	Start()
	Stop()
	C() <-chan time.Time
}

// Ticker is a Clock backed by time.Ticker.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	ticker   *time.Ticker
	ticks    chan time.Time
	stop     chan struct{}
	exited   chan struct{}
}

// NewTicker creates a stopped Ticker. Non-positive intervals default to one second.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{
		interval: interval,
		ticks:    make(chan time.Time, 1),
	}
}

// Start begins ticking one full interval from now.
func (clock *Ticker) Start() {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if clock.ticker != nil {
		return
	}
	clock.ticker = time.NewTicker(clock.interval)
	clock.stop = make(chan struct{})
	clock.exited = make(chan struct{})
	go forward(clock.ticker, clock.stop, clock.exited, clock.ticks)
}

// Stop halts ticking and drops any tick not yet received.
func (clock *Ticker) Stop() {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if clock.ticker == nil {
		return
	}
	clock.ticker.Stop()
	close(clock.stop)
	<-clock.exited
	clock.ticker = nil
	select {
	case <-clock.ticks:
	default:
	}
}

// C returns the tick channel. It stays the same across Start and Stop.
func (clock *Ticker) C() <-chan time.Time {
	return clock.ticks
}

func forward(ticker *time.Ticker, stop <-chan struct{}, exited chan<- struct{}, out chan<- time.Time) {
	defer close(exited)
	for {
		select {
		case <-stop:
			return
		case tickTime := <-ticker.C:
			select {
			case out <- tickTime:
			case <-stop:
				return
			default:
			}
		}
	}
}
