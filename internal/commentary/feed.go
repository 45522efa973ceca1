package commentary

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stadium/internal/config"
	"github.com/vovakirdan/tui-stadium/internal/race"
)

// DefaultTimeout bounds a single provider call when none is configured.
const DefaultTimeout = 2 * time.Second

var (
	errEmptyLine = errors.New("empty commentary line")
	errPanicked  = errors.New("provider panicked")
)

// Feed wraps a provider so that a line is always available on time.
// Failed, slow or empty answers are replaced by the next fallback line.
type Feed struct {
	provider Provider
	timeout  time.Duration
	logger   *log.Logger

	mu       sync.Mutex
	fallback []string
	next     int
}

// NewFeed wraps p using the timeout and fallback lines from cfg.
// A nil logger uses the charmbracelet/log default logger.
func NewFeed(p Provider, cfg config.CommentaryConfig, logger *log.Logger) *Feed {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	fallback := cfg.Fallback
	if len(fallback) == 0 {
		fallback = config.DefaultCommentaryConfig().Fallback
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Feed{
		provider: p,
		timeout:  timeout,
		logger:   logger,
		fallback: append([]string(nil), fallback...),
	}
}

type answer struct {
	text string
	err  error
}

// Next asks the provider for a line about snap. It never blocks past the
// feed timeout and never fails: errors are logged and a fallback is returned.
func (f *Feed) Next(ctx context.Context, snap race.Snapshot) string {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	// Buffered so a late provider never blocks forever.
	ch := make(chan answer, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- answer{err: fmt.Errorf("%w: %v", errPanicked, r)}
			}
		}()
		text, err := f.provider.Commentary(ctx, snap.Runners, snap.Status)
		ch <- answer{text: text, err: err}
	}()

	var err error
	select {
	case a := <-ch:
		if a.err == nil && a.text == "" {
			a.err = errEmptyLine
		}
		if a.err == nil {
			return a.text
		}
		err = a.err
	case <-ctx.Done():
		err = ctx.Err()
	}

	line := f.nextFallback()
	if errors.Is(err, context.Canceled) {
		f.logger.Debug("commentary request cancelled", "status", snap.Status)
		return line
	}
	f.logger.Warn("commentary provider failed", "err", err, "status", snap.Status, "fallback", line)
	return line
}

func (f *Feed) nextFallback() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	line := f.fallback[f.next%len(f.fallback)]
	f.next++
	return line
}
