// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingWorker appends "start:<id>" and "stop:<id>" to a shared log.
type recordingWorker struct {
	id  string
	log *[]string
}

func (w *recordingWorker) Start(context.Context) { *w.log = append(*w.log, "start:"+w.id) }
func (w *recordingWorker) Stop()                 { *w.log = append(*w.log, "stop:"+w.id) }

func TestWorkers_StartStopOrder(t *testing.T) {
	var log []string
	ws := NewWorkers(
		&recordingWorker{id: "a", log: &log},
		&recordingWorker{id: "b", log: &log},
	)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start:a", "start:b", "stop:b", "stop:a"}, log)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

// fakeChecker returns the errors queued in results, then the last one forever.
type fakeChecker struct {
	mu      sync.Mutex
	results []error
	calls   atomic.Int32
}

func (c *fakeChecker) Check(context.Context) error {
	c.calls.Add(1)
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.results[0]
	if len(c.results) > 1 {
		c.results = c.results[1:]
	}
	return err
}

func TestHealthStatus_String(t *testing.T) {
	assert.Equal(t, "checking", HealthUnknown.String())
	assert.Equal(t, "online", HealthUp.String())
	assert.Equal(t, "offline", HealthDown.String())
}

func TestHealthProbe_ProbesImmediately(t *testing.T) {
	checker := &fakeChecker{results: []error{nil}}
	probe := NewHealthProbe(checker, time.Hour, nil, logger.Nop())
	assert.Equal(t, HealthUnknown, probe.Status())

	probe.Start(context.Background())
	defer probe.Stop()

	require.Eventually(t, func() bool { return probe.Status() == HealthUp }, time.Second, 5*time.Millisecond)
	assert.EqualValues(t, 1, checker.calls.Load())
}

func TestHealthProbe_ReportsChanges(t *testing.T) {
	down := errors.New("unavailable")
	checker := &fakeChecker{results: []error{nil, nil, down, down, nil}}

	var (
		mu      sync.Mutex
		changes []HealthStatus
	)
	onChange := func(s HealthStatus) {
		mu.Lock()
		changes = append(changes, s)
		mu.Unlock()
	}

	probe := NewHealthProbe(checker, 5*time.Millisecond, onChange, logger.Nop())
	probe.Start(context.Background())

	require.Eventually(t, func() bool { return checker.calls.Load() >= 5 }, time.Second, 5*time.Millisecond)
	probe.Stop()

	mu.Lock()
	defer mu.Unlock()
	// repeated results do not produce a callback
	assert.Equal(t, []HealthStatus{HealthUp, HealthDown, HealthUp}, changes)
}

func TestHealthProbe_StopsOnContextCancel(t *testing.T) {
	checker := &fakeChecker{results: []error{nil}}
	probe := NewHealthProbe(checker, 5*time.Millisecond, nil, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	probe.Start(ctx)
	require.Eventually(t, func() bool { return checker.calls.Load() >= 2 }, time.Second, time.Millisecond)

	cancel()
	probe.Stop()
	calls := checker.calls.Load()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, checker.calls.Load())
}

func TestHealthProbe_StopWithoutStart(t *testing.T) {
	probe := NewHealthProbe(&fakeChecker{results: []error{nil}}, 0, nil, logger.Nop())

	assert.NotPanics(t, probe.Stop)
	assert.Equal(t, defaultProbeInterval, probe.interval)
}

func TestHealthProbe_RestartReplacesGoroutine(t *testing.T) {
	checker := &fakeChecker{results: []error{nil}}
	probe := NewHealthProbe(checker, time.Hour, nil, logger.Nop())

	probe.Start(context.Background())
	probe.Start(context.Background())
	probe.Stop()

	// each Start probes once; the first goroutine was stopped by the second Start
	assert.EqualValues(t, 2, checker.calls.Load())
}
