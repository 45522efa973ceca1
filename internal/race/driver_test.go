package race

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSimulateIsReproducible(t *testing.T) {
	run := func() Snapshot {
		cfg := fixedConfig(30, 0.001)
		cfg.Runner.BaseSpeedSpread = 0.0005
		cfg.Strategy.BoostChance = 0.007
		snap, err := Simulate(New(cfg, WithSeed(2024)), epoch, 10000)
		if err != nil {
			t.Fatalf("Simulate() failed: %v", err)
		}
		return snap
	}

	a, b := run(), run()
	if len(a.Ledger) != 30 {
		t.Fatalf("ledger has %d entries, expected 30", len(a.Ledger))
	}
	for i := range a.Ledger {
		if a.Ledger[i] != b.Ledger[i] {
			t.Fatalf("ledgers differ at %d: %v vs %v", i, a.Ledger, b.Ledger)
		}
	}
	if a.Ticks != b.Ticks {
		t.Errorf("tick counts differ: %d vs %d", a.Ticks, b.Ticks)
	}
}

func TestSimulateTickBudget(t *testing.T) {
	e := New(fixedConfig(3, 0.001), WithSeed(1))
	snap, err := Simulate(e, epoch, 10)
	if !errors.Is(err, ErrTickBudget) {
		t.Fatalf("Simulate() = %v, expected ErrTickBudget", err)
	}
	if snap.Status != StatusRacing || snap.Ticks != 10 {
		t.Errorf("snapshot = %s after %d ticks, expected RACING after 10", snap.Status, snap.Ticks)
	}
}

func TestTickerRunsToCompletion(t *testing.T) {
	e := New(fixedConfig(2, 0.05), WithSeed(1))
	tk := NewTicker(e, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var calls, finishers int
	err := tk.Run(ctx, func(snap Snapshot, res TickResult) {
		calls++
		finishers += len(res.Finishers)
	})
	if err != nil {
		t.Fatalf("Run() = %v, expected nil", err)
	}
	if e.Status() != StatusFinished {
		t.Errorf("status = %s, expected FINISHED", e.Status())
	}
	if calls == 0 || finishers != 2 {
		t.Errorf("got %d callbacks and %d finishers, expected >0 and 2", calls, finishers)
	}
}

func TestTickerStopsOnCancel(t *testing.T) {
	e := New(fixedConfig(2, 0.0001), WithSeed(1))
	tk := NewTicker(e, 0)
	if tk.interval != e.TickInterval() {
		t.Errorf("interval = %v, expected engine default %v", tk.interval, e.TickInterval())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := tk.Run(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, expected context.Canceled", err)
	}
	if e.Status() != StatusRacing {
		t.Errorf("status = %s, expected the race left RACING", e.Status())
	}
}
