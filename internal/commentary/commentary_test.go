package commentary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stadium/internal/config"
	"github.com/vovakirdan/tui-stadium/internal/race"
)

func field(progress ...float64) []race.Runner {
	out := make([]race.Runner, len(progress))
	for i, p := range progress {
		out[i] = race.Runner{ID: i + 1, Progress: p}
	}
	return out
}

func withLeader(lines []string, id int) map[string]bool {
	out := make(map[string]bool, len(lines))
	for _, l := range lines {
		if strings.Contains(l, "%d") {
			l = fmt.Sprintf(l, id)
		}
		out[l] = true
	}
	return out
}

func TestBroadcastPhases(t *testing.T) {
	b := NewBroadcast(42)
	ctx := context.Background()

	tests := []struct {
		name    string
		runners []race.Runner
		status  race.Status
		allowed map[string]bool
	}{
		{"before the start", field(0, 0), race.StatusIdle, map[string]bool{getReadyLine: true}},
		{"after the finish", field(1.02, 1.01), race.StatusFinished, map[string]bool{getReadyLine: true}},
		{"opening", field(0.1, 0.29), race.StatusRacing, map[string]bool{openingLine: true}},
		{"mid race", field(0.3, 0.5, 0.2), race.StatusRacing, withLeader(midRaceLines, 2)},
		{"final stretch", field(0.7, 0.8, 0.9), race.StatusRacing, withLeader(finalStretchLines, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				line, err := b.Commentary(ctx, tc.runners, tc.status)
				if err != nil {
					t.Fatalf("Commentary() error: %v", err)
				}
				if !tc.allowed[line] {
					t.Fatalf("Commentary() = %q, not a line for this phase", line)
				}
			}
		})
	}
}

func TestBroadcastNamesLeader(t *testing.T) {
	b := NewBroadcast(7)
	named := false
	for i := 0; i < 50; i++ {
		line, _ := b.Commentary(context.Background(), field(0.2, 0.6), race.StatusRacing)
		if strings.Contains(line, "#2") {
			named = true
		}
		if strings.Contains(line, "%d") || strings.Contains(line, "#1 ") {
			t.Fatalf("line %q names the wrong runner", line)
		}
	}
	if !named {
		t.Error("mid-race commentary never named the leader")
	}
}

func TestBroadcastHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewBroadcast(1).Commentary(ctx, field(0.5), race.StatusRacing); !errors.Is(err, context.Canceled) {
		t.Errorf("Commentary() = %v, expected context.Canceled", err)
	}
}

func TestQuiet(t *testing.T) {
	line, _ := Quiet{}.Commentary(context.Background(), field(0.2, 0.4), race.StatusRacing)
	if line != "#2 leads." {
		t.Errorf("Commentary() = %q, expected \"#2 leads.\"", line)
	}
}

func TestRegistry(t *testing.T) {
	infos := List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
		if info.Description == "" {
			t.Errorf("provider %q has no description", info.Name)
		}
	}
	if len(names) < 2 || names[0] != "broadcast" || names[1] != "quiet" {
		t.Errorf("List() = %v, expected broadcast and quiet in order", names)
	}

	if !Exists("broadcast") || Exists("gemini") {
		t.Error("Exists() reported the wrong providers")
	}

	p, err := Create("quiet", 0)
	if err != nil || p == nil {
		t.Fatalf("Create(quiet) = %v, %v", p, err)
	}
	if _, err := Create("gemini", 0); !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("Create(gemini) = %v, expected ErrUnknownProvider", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate name should panic")
		}
	}()
	Register("quiet", func(int64) Provider { return Quiet{} })
}

func newTestFeed(p Provider, timeout time.Duration) *Feed {
	cfg := config.CommentaryConfig{
		Timeout:  timeout,
		Fallback: []string{"one", "two"},
	}
	return NewFeed(p, cfg, log.New(io.Discard))
}

func TestFeed(t *testing.T) {
	snap := race.Snapshot{Status: race.StatusRacing, Runners: field(0.5)}

	tests := []struct {
		name     string
		provider ProviderFunc
		expected string
	}{
		{
			name: "passes lines through",
			provider: func(context.Context, []race.Runner, race.Status) (string, error) {
				return "hello", nil
			},
			expected: "hello",
		},
		{
			name: "error falls back",
			provider: func(context.Context, []race.Runner, race.Status) (string, error) {
				return "", errors.New("quota exceeded")
			},
			expected: "one",
		},
		{
			name: "empty line falls back",
			provider: func(context.Context, []race.Runner, race.Status) (string, error) {
				return "", nil
			},
			expected: "one",
		},
		{
			name: "panic falls back",
			provider: func(context.Context, []race.Runner, race.Status) (string, error) {
				panic("boom")
			},
			expected: "one",
		},
		{
			name: "timeout falls back",
			provider: func(context.Context, []race.Runner, race.Status) (string, error) {
				time.Sleep(200 * time.Millisecond)
				return "too late", nil
			},
			expected: "one",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestFeed(tc.provider, 20*time.Millisecond)

			start := time.Now()
			got := f.Next(context.Background(), snap)
			if got != tc.expected {
				t.Errorf("Next() = %q, expected %q", got, tc.expected)
			}
			if elapsed := time.Since(start); elapsed > time.Second {
				t.Errorf("Next() took %v", elapsed)
			}
		})
	}
}

func TestFeedRotatesFallback(t *testing.T) {
	fail := ProviderFunc(func(context.Context, []race.Runner, race.Status) (string, error) {
		return "", errors.New("down")
	})
	f := newTestFeed(fail, time.Second)

	var got []string
	for i := 0; i < 3; i++ {
		got = append(got, f.Next(context.Background(), race.Snapshot{}))
	}
	if strings.Join(got, ",") != "one,two,one" {
		t.Errorf("fallback lines = %v, expected one,two,one", got)
	}
}

func TestFeedDefaults(t *testing.T) {
	f := NewFeed(Quiet{}, config.CommentaryConfig{}, nil)
	if f.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, expected %v", f.timeout, DefaultTimeout)
	}
	if len(f.fallback) == 0 {
		t.Error("feed should fall back to the stock lines")
	}
}
