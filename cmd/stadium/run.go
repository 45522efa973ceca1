package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-stadium/internal/core"
	"github.com/vovakirdan/tui-stadium/internal/platform/tui"
)

var flagFPS int

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Watch a race in the terminal",
	Long: `Line up the runners and watch the race live.

Controls:
  S/Enter    - Start the race
  R          - Reset (new draw, same runner count)
  +/-        - One more / one fewer runner (before the start)
  C          - Type a runner count (before the start)
  ?          - Toggle full help
  Ctrl+S     - Save a text screenshot to ~/.stadium/screenshots
  Q/Ctrl+C   - Quit

Logs are discarded while the race owns the terminal unless --log-file is set.

Examples:
  stadium run
  stadium run --runners 12 --seed 7
  stadium run --pace calm --fps 30`,
	Run: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
}

func runRun(_ *cobra.Command, _ []string) {
	cfg, err := loadStadium()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.Runners = cfg.Race.Runners
	rt.Seed = flagSeed
	rt.FrameRate = cfg.Camera.FrameRate
	if flagFPS > 0 {
		rt.FrameRate = flagFPS
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	if err := tui.Run(tui.Options{Config: cfg, Runtime: rt, Logger: logger}); err != nil {
		closeLog()
		fail("running race: %v", err)
	}
}
