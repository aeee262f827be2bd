package clock

import (
	"context"
	"sync"
	"time"

	"github.com/ekimwerac/observable-clock-demo/internal/util"
)

const (
	DefaultPeriod = time.Second
	DefaultLayout = "15:04:05"
)

// Source produces a formatted wall-clock timestamp once per period for the
// handler registered at activation. A Source holds no state of its own: each
// Activate call starts an independent timer that runs until its Activation
// is deactivated.
type Source struct {
	clock  Clock
	period time.Duration
	layout string
}

func NewSource(clock Clock, period time.Duration, layout string) *Source {
	if clock == nil {
		clock = System
	}
	if period <= 0 {
		period = DefaultPeriod
	}
	if layout == "" {
		layout = DefaultLayout
	}
	return &Source{
		clock:  clock,
		period: period,
		layout: layout,
	}
}

func (s *Source) Period() time.Duration {
	return s.period
}

func (s *Source) Clock() Clock {
	return s.clock
}

// Activate registers onValue as the sole consumer of a new timer and starts
// ticking. Each tick formats the current time and invokes onValue on the
// activation's own goroutine, so invocations never overlap.
func (s *Source) Activate(onValue func(value string)) *Activation {
	ctx, cancel := context.WithCancel(context.Background())
	a := &Activation{cancel: cancel}
	a.done.Add(1)
	go func() {
		defer a.done.Done()
		util.RunPeriodically(ctx, s.period, func(context.Context) {
			onValue(s.clock.Now().Format(s.layout))
		})
	}()
	return a
}

// Activation is the handle for one active run of a Source.
type Activation struct {
	cancel context.CancelFunc
	once   sync.Once
	done   sync.WaitGroup
}

// Deactivate stops the activation's timer and waits for the tick loop to
// exit, so the handler receives no invocations after it returns. Safe to
// call multiple times.
func (a *Activation) Deactivate() {
	a.once.Do(a.cancel)
	a.done.Wait()
}
