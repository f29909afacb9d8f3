package breaker

import (
	"errors"
	"sync"
	"time"
)

type state uint8

const (
	closed state = iota
	open
	halfOpen
)

// ErrOpen is returned without invoking the call while the breaker is open.
var ErrOpen = errors.New("breaker is open")

// Breaker trips after the failure rate over a sliding window of calls
// crosses a threshold, rejects calls for a cool-down period, then probes
// in half-open mode until enough consecutive successes close it again.
type Breaker interface {
	Call(fn func() error) error
	Reset()
}

type breaker struct {
	mu sync.Mutex

	state state
	// window holds the outcome of the last len(window) calls, true = failed.
	window []bool
	pos    int
	// failureRate at which the breaker opens, e.g. 0.5.
	failureRate float64
	// coolDown before an open breaker lets a probe through.
	coolDown time.Duration
	openedAt time.Time
	// probes needed in half-open before closing.
	probes   int
	probesOK int
}

func New(windowSize int, coolDown time.Duration, failureRate float64, probes int) Breaker {
	return &breaker{
		state:       closed,
		window:      make([]bool, windowSize),
		failureRate: failureRate,
		coolDown:    coolDown,
		probes:      probes,
	}
}

func (b *breaker) Call(fn func() error) error {
	b.mu.Lock()
	if b.state == open {
		if time.Since(b.openedAt) <= b.coolDown {
			b.mu.Unlock()
			return ErrOpen
		}
		b.state = halfOpen
		b.probesOK = 0
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.window[b.pos] = err != nil
	b.pos = (b.pos + 1) % len(b.window)

	if b.state == halfOpen {
		if err != nil {
			b.trip()
		} else {
			b.probesOK++
			if b.probesOK >= b.probes {
				b.reset()
			}
		}
		return err
	}

	fails := 0
	for _, failed := range b.window {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(b.window)) >= b.failureRate {
		b.trip()
	}

	return err
}

func (b *breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
}

func (b *breaker) trip() {
	b.state = open
	b.probesOK = 0
	b.openedAt = time.Now()
}

func (b *breaker) reset() {
	for i := range b.window {
		b.window[i] = false
	}
	b.pos = 0
	b.probesOK = 0
	b.state = closed
}
