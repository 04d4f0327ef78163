package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/movisimple/internal/logger"
)

// HealthStatus is the last observed server availability.
type HealthStatus int32

const (
	HealthUnknown HealthStatus = iota
	HealthUp
	HealthDown
)

func (s HealthStatus) String() string {
	switch s {
	case HealthUp:
		return "online"
	case HealthDown:
		return "offline"
	default:
		return "checking"
	}
}

const defaultProbeInterval = 30 * time.Second

// HealthProbe polls a [HealthChecker] on a ticker and remembers the result.
type HealthProbe struct {
	checker  HealthChecker
	interval time.Duration
	onChange func(HealthStatus)

	status atomic.Int32

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewHealthProbe creates an idle probe. A non-positive interval falls back to
// 30 seconds. onChange may be nil; when set it is called from the probe
// goroutine each time the status changes.
func NewHealthProbe(checker HealthChecker, interval time.Duration, onChange func(HealthStatus), logger *logger.Logger) *HealthProbe {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	return &HealthProbe{
		checker:  checker,
		interval: interval,
		onChange: onChange,
		logger:   logger,
	}
}

// Status returns the result of the latest probe.
func (p *HealthProbe) Status() HealthStatus {
	return HealthStatus(p.status.Load())
}

// Start stops a running probe, then probes once immediately and again on
// every tick until ctx is cancelled or Stop is called.
func (p *HealthProbe) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	probeCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.probe(probeCtx)
		for {
			select {
			case <-probeCtx.Done():
				return
			case <-t.C:
				p.probe(probeCtx)
			}
		}
	}()
}

// Stop cancels the probe goroutine and waits for it to exit.
func (p *HealthProbe) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *HealthProbe) probe(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	next := HealthUp
	if err := p.checker.Check(checkCtx); err != nil {
		// shutting down, keep the last known status
		if ctx.Err() != nil {
			return
		}
		p.logger.Debug().Err(err).Msg("health probe failed")
		next = HealthDown
	}

	prev := HealthStatus(p.status.Swap(int32(next)))
	if prev != next && p.onChange != nil {
		p.onChange(next)
	}
}
