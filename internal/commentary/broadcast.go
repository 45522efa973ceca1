package commentary

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/tui-stadium/internal/race"
)

// Phase boundaries as whole percent of the leader's progress.
const (
	openingUntil = 30
	midUntil     = 85
)

const (
	getReadyLine = "The race is about to begin. The runners are getting ready!"
	openingLine  = "What a start! Every runner has burst off the line."
)

var midRaceLines = []string{
	"#%d leads the field! What a pace!",
	"#%d holds the lead into the bend!",
	"Halfway home and the battle for places is heating up!",
	"The crowd is roaring. What a thrilling race!",
	"The front runners are sizing each other up, waiting for a chance.",
}

var finalStretchLines = []string{
	"The home straight! #%d is pulling away!",
	"The finish line is in sight! Here comes the final kick!",
	"Who will take the glory today?",
	"Everything left on the track! A dramatic finish awaits!",
	"#%d in front, but the chasers are closing fast!",
}

// Broadcast is the local phrase engine. It picks a line for the race phase
// and names the current leader.
type Broadcast struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewBroadcast creates a broadcast commentator. A zero seed uses the clock.
func NewBroadcast(seed int64) *Broadcast {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Broadcast{rng: rand.New(rand.NewSource(seed))}
}

// Description implements Describer.
func (b *Broadcast) Description() string {
	return "Stadium announcer reacting to the leader"
}

// Commentary implements Provider.
func (b *Broadcast) Commentary(ctx context.Context, runners []race.Runner, status race.Status) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if status != race.StatusRacing {
		return getReadyLine, nil
	}

	leader, _ := leaderOf(runners)
	percent := int(math.Round(leader.Progress * 100))

	switch {
	case percent < openingUntil:
		return openingLine, nil
	case percent < midUntil:
		return b.pick(midRaceLines, leader.ID), nil
	default:
		return b.pick(finalStretchLines, leader.ID), nil
	}
}

func (b *Broadcast) pick(lines []string, leaderID int) string {
	b.mu.Lock()
	line := lines[b.rng.Intn(len(lines))]
	b.mu.Unlock()

	if strings.Contains(line, "%d") {
		return fmt.Sprintf(line, leaderID)
	}
	return line
}

// Quiet is a commentator with one fixed line per phase.
type Quiet struct{}

// Description implements Describer.
func (Quiet) Description() string {
	return "Minimal commentary, no chatter"
}

// Commentary implements Provider.
func (Quiet) Commentary(_ context.Context, runners []race.Runner, status race.Status) (string, error) {
	switch status {
	case race.StatusRacing:
		if leader, ok := leaderOf(runners); ok {
			return fmt.Sprintf("%s leads.", leader.Label()), nil
		}
		return "Racing.", nil
	case race.StatusFinished:
		return "Race over.", nil
	default:
		return "Waiting for the start.", nil
	}
}

func init() {
	Register("broadcast", func(seed int64) Provider { return NewBroadcast(seed) })
	Register("quiet", func(int64) Provider { return Quiet{} })
}
