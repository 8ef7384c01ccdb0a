// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyTick считает вызовы tick.
type spyTick struct {
	calls atomic.Int64
}

func (s *spyTick) tick(_ context.Context) {
	s.calls.Add(1)
}

// ── NewScheduler ─────────────────────────────────────────────────────────────

func TestNewScheduler_ReturnsInterface(t *testing.T) {
	spy := &spyTick{}
	s := NewScheduler(spy.tick, time.Second)
	require.NotNil(t, s)

	var _ Scheduler = s
	assert.False(t, s.Running(), "до Start планировщик не работает")
}

func TestNewScheduler_DefaultPeriod(t *testing.T) {
	spy := &spyTick{}

	// period <= 0 → DefaultTickPeriod
	s := NewScheduler(spy.tick, 0).(*scheduler)
	assert.Equal(t, DefaultTickPeriod, s.period)

	s = NewScheduler(spy.tick, -time.Second).(*scheduler)
	assert.Equal(t, DefaultTickPeriod, s.period)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestScheduler_Start_TicksImmediately(t *testing.T) {
	spy := &spyTick{}
	s := NewScheduler(spy.tick, time.Hour)

	s.Start(context.Background())
	defer s.Stop()

	// первый тик не ждёт периода
	assert.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.True(t, s.Running())
}

func TestScheduler_Start_TicksEveryPeriod(t *testing.T) {
	spy := &spyTick{}
	s := NewScheduler(spy.tick, 10*time.Millisecond)

	s.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	s.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "tick должен быть вызван несколько раз, вызвано: %d", got)
}

func TestScheduler_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyTick{}
	s := NewScheduler(spy.tick, 10*time.Millisecond)

	s.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	s.Stop()

	assert.False(t, s.Running())

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestScheduler_Stop_BeforeStart_NoPanic(t *testing.T) {
	s := NewScheduler((&spyTick{}).tick, time.Second)

	assert.NotPanics(t, func() { s.Stop() })
}

func TestScheduler_DoubleStop_NoPanic(t *testing.T) {
	s := NewScheduler((&spyTick{}).tick, 10*time.Millisecond)

	s.Start(context.Background())
	s.Stop()

	assert.NotPanics(t, func() { s.Stop() })
}

func TestScheduler_DoubleStart_IsNoOp(t *testing.T) {
	spy := &spyTick{}
	s := NewScheduler(spy.tick, time.Hour)

	s.Start(context.Background())
	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	// второй Start не запускает вторую горутину и не делает лишний тик
	s.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestScheduler_RestartAfterStop(t *testing.T) {
	spy := &spyTick{}
	s := NewScheduler(spy.tick, time.Hour)

	s.Start(context.Background())
	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	s.Stop()

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool { return spy.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	assert.True(t, s.Running())
}

func TestScheduler_ContextCancel_StopsWorker(t *testing.T) {
	spy := &spyTick{}
	s := NewScheduler(spy.tick, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	s.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel() // отменяем родительский контекст

	assert.Eventually(t, func() bool { return !s.Running() }, time.Second, 5*time.Millisecond)

	// Stop должен вернуться без зависания
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

func TestScheduler_StartAfterWorkerExited(t *testing.T) {
	spy := &spyTick{}
	s := NewScheduler(spy.tick, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	s.Start(ctx)
	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	require.Eventually(t, func() bool { return !s.Running() }, time.Second, 5*time.Millisecond)

	// воркер завершился сам, новый Start должен поднять его снова
	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool { return spy.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_StopWaitsForRunningTick(t *testing.T) {
	release := make(chan struct{})
	var finished atomic.Bool

	s := NewScheduler(func(ctx context.Context) {
		<-release
		finished.Store(true)
	}, time.Hour)

	s.Start(context.Background())

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop вернулся до завершения тика")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	<-stopped
	assert.True(t, finished.Load())
}
