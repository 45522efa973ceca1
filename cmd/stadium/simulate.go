package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stadium/internal/commentary"
	"github.com/vovakirdan/tui-stadium/internal/config"
	"github.com/vovakirdan/tui-stadium/internal/race"
)

var (
	flagMaxTicks int
	flagRealtime bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a race headless and print the standings",
	Long: `Run a full race without a terminal UI and print the final standings.

By default the race runs on a virtual clock as fast as possible, so the same
--seed always produces the same result. With --realtime the race runs on the
wall clock and lead changes, finishes and commentary are logged as they happen.

Examples:
  stadium simulate --seed 42
  stadium simulate --runners 100 --pace frantic
  stadium simulate --realtime --log-level debug`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 100000, "Give up after this many ticks")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run on the wall clock and stream events to the log")
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg, err := loadStadium()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("lined up", "runners", cfg.Race.Runners, "seed", seed)

	var snap race.Snapshot
	if flagRealtime {
		snap, err = simulateRealtime(race.New(cfg.Race, race.WithSeed(seed)), cfg, seed, logger)
	} else {
		snap, err = simulateVirtual(cfg.Race, seed, flagMaxTicks)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		closeLog()
		fail("simulating race: %v", err)
	}

	printStandings(os.Stdout, snap)
}

// simulationEpoch is where the virtual clock starts. The speed wobble reads
// the absolute clock, so the start must not depend on when the command runs.
var simulationEpoch = time.Unix(0, 0).UTC()

// simulateVirtual runs a seeded race on the virtual clock.
func simulateVirtual(cfg config.RaceConfig, seed int64, maxTicks int) (race.Snapshot, error) {
	return race.Simulate(race.New(cfg, race.WithSeed(seed)), simulationEpoch, maxTicks)
}

// simulateRealtime drives the race on the wall clock until it finishes or
// the process is interrupted.
func simulateRealtime(engine *race.Engine, cfg config.StadiumConfig, seed int64, logger *log.Logger) (race.Snapshot, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := commentary.Create(cfg.Commentary.Provider, seed)
	if err != nil {
		return race.Snapshot{}, err
	}
	feed := commentary.NewFeed(provider, cfg.Commentary, logger)

	leader := 0
	nextLine := time.Duration(0)
	err = race.NewTicker(engine, 0).Run(ctx, func(snap race.Snapshot, res race.TickResult) {
		if l, ok := snap.Leader(); ok && l.ID != leader && !l.Finished {
			leader = l.ID
			logger.Debug("lead change", "leader", l.Label(), "progress", fmt.Sprintf("%.1f%%", l.Progress*100))
		}
		for _, id := range res.Finishers {
			r, _ := snap.Runner(id)
			logger.Info("finish", "rank", r.Rank, "runner", r.Label(), "time", r.FinishTime.Sub(snap.StartedAt).Round(time.Millisecond))
		}
		for _, id := range res.Boosted {
			logger.Debug("booster", "runner", fmt.Sprintf("#%d", id))
		}
		if snap.Elapsed >= nextLine && snap.Status == race.StatusRacing {
			nextLine += cfg.Commentary.Interval
			logger.Info(feed.Next(ctx, snap))
		}
	})

	return engine.Snapshot(), err
}

// printStandings writes the finishing order followed by anyone still out.
func printStandings(w io.Writer, snap race.Snapshot) {
	fmt.Fprintf(w, "Race %s after %s (%d ticks)\n\n", snap.Status, snap.Elapsed.Round(time.Millisecond), snap.Ticks)
	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %s\n", "Rank", "Runner", "Color", "Time")
	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %s\n", "----", "------", "-----", "----")

	for _, r := range snap.Standings() {
		rank, finish := "-", fmt.Sprintf("%.1f%%", r.Progress*100)
		if r.HasRank() {
			rank = fmt.Sprintf("%d", r.Rank)
			finish = fmt.Sprintf("%.3fs", r.FinishTime.Sub(snap.StartedAt).Seconds())
		}
		fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %s\n", rank, r.Label(), r.Color, finish)
	}
}
