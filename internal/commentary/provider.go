// Package commentary produces the one-line race commentary shown in the banner.
//
// Providers register themselves in init() functions, the same way the
// built-in "broadcast" and "quiet" commentators do, and are wrapped in a
// Feed that bounds how long a line may take and falls back to canned lines.
package commentary

import (
	"context"

	"github.com/vovakirdan/tui-stadium/internal/race"
)

// Provider produces a commentary line for the current race.
type Provider interface {
	Commentary(ctx context.Context, runners []race.Runner, status race.Status) (string, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, runners []race.Runner, status race.Status) (string, error)

// Commentary calls f.
func (f ProviderFunc) Commentary(ctx context.Context, runners []race.Runner, status race.Status) (string, error) {
	return f(ctx, runners, status)
}

// Describer is implemented by providers that carry a one-line description.
type Describer interface {
	Description() string
}

// Canned lines for moments the race controls announce directly.
const (
	WelcomeLine = "Welcome to the Grand Stadium!"
	LinedUpLine = "The runners are lined up. The draw is set!"
	StartLine   = "And they're off! The dash for glory begins!"
)

// leaderOf returns the runner with the highest progress.
func leaderOf(runners []race.Runner) (race.Runner, bool) {
	return race.Snapshot{Runners: runners}.Leader()
}
